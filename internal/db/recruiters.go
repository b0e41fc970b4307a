package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Recruiter is an account that can run candidate searches.
type Recruiter struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never serialize to JSON
	CreatedAt    time.Time `json:"created_at"`
}

// CreateRecruiter inserts a new recruiter account.
func (db *DB) CreateRecruiter(ctx context.Context, name, email, passwordHash string) (*Recruiter, error) {
	recruiter := &Recruiter{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}

	err := db.pool.QueryRow(ctx,
		`INSERT INTO recruiters (id, name, email, password_hash, created_at)
		 VALUES ($1, $2, $3, $4, NOW())
		 RETURNING created_at`,
		recruiter.ID, recruiter.Name, recruiter.Email, recruiter.PasswordHash,
	).Scan(&recruiter.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create recruiter: %w", err)
	}
	return recruiter, nil
}

// GetRecruiterByEmail looks up a recruiter account. Returns nil when no
// account has this email.
func (db *DB) GetRecruiterByEmail(ctx context.Context, email string) (*Recruiter, error) {
	var recruiter Recruiter
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, email, password_hash, created_at
		 FROM recruiters WHERE email = $1`,
		email,
	).Scan(&recruiter.ID, &recruiter.Name, &recruiter.Email, &recruiter.PasswordHash, &recruiter.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get recruiter: %w", err)
	}
	return &recruiter, nil
}

// GetRecruiterByID looks up a recruiter account by ID. Returns nil when the
// account does not exist.
func (db *DB) GetRecruiterByID(ctx context.Context, id uuid.UUID) (*Recruiter, error) {
	var recruiter Recruiter
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, email, password_hash, created_at
		 FROM recruiters WHERE id = $1`,
		id,
	).Scan(&recruiter.ID, &recruiter.Name, &recruiter.Email, &recruiter.PasswordHash, &recruiter.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get recruiter: %w", err)
	}
	return &recruiter, nil
}
