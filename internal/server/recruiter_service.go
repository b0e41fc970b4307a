package server

import (
	"context"
	"fmt"

	"github.com/jonathan/recruiter-agent/internal/config"
	"github.com/jonathan/recruiter-agent/internal/db"
	"github.com/jonathan/recruiter-agent/internal/types"
)

// RecruiterService handles recruiter account registration and login.
type RecruiterService struct {
	store      *db.DB
	passwords  *config.PasswordConfig
	jwtService *JWTService
}

// NewRecruiterService creates a recruiter service backed by the given store.
func NewRecruiterService(store *db.DB, passwords *config.PasswordConfig, jwtService *JWTService) *RecruiterService {
	return &RecruiterService{
		store:      store,
		passwords:  passwords,
		jwtService: jwtService,
	}
}

// Register creates a new recruiter account and returns it with a token.
func (s *RecruiterService) Register(ctx context.Context, req *types.RegisterRequest) (*types.LoginResponse, error) {
	if s.store == nil {
		return nil, &ErrAccountsUnavailable{}
	}

	existing, err := s.store.GetRecruiterByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}
	if existing != nil {
		return nil, &ErrEmailAlreadyExists{Email: req.Email}
	}

	hash, err := s.passwords.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	recruiter, err := s.store.CreateRecruiter(ctx, req.Name, req.Email, hash)
	if err != nil {
		return nil, fmt.Errorf("failed to create recruiter: %w", err)
	}

	token, err := s.jwtService.GenerateToken(recruiter.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &types.LoginResponse{
		Recruiter: toAPIRecruiter(recruiter),
		Token:     token,
	}, nil
}

// Login authenticates a recruiter and returns the account with a token.
func (s *RecruiterService) Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResponse, error) {
	if s.store == nil {
		return nil, &ErrAccountsUnavailable{}
	}

	recruiter, err := s.store.GetRecruiterByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if recruiter == nil {
		return nil, &ErrInvalidCredentials{}
	}

	if !s.passwords.VerifyPassword(req.Password, recruiter.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}

	token, err := s.jwtService.GenerateToken(recruiter.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &types.LoginResponse{
		Recruiter: toAPIRecruiter(recruiter),
		Token:     token,
	}, nil
}

func toAPIRecruiter(r *db.Recruiter) *types.Recruiter {
	return &types.Recruiter{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		CreatedAt: r.CreatedAt,
	}
}
