package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/recruiter-agent/internal/types"
)

// InsertProfile stores a scraped profile. Skills and experience are stored as
// JSONB in their canonical shapes.
func (db *DB) InsertProfile(ctx context.Context, record types.ProfileRecord, isComplete bool) error {
	skills, err := json.Marshal([]string(record.Skills))
	if err != nil {
		return fmt.Errorf("failed to marshal skills: %w", err)
	}

	experience, err := json.Marshal(record.Experiences)
	if err != nil {
		return fmt.Errorf("failed to marshal experience: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO profiles
		 (name, location, email, linkedin_url, headline, skills, about, experience, profile_pic, is_complete, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		 ON CONFLICT (linkedin_url) DO UPDATE SET
			name = EXCLUDED.name,
			location = EXCLUDED.location,
			email = EXCLUDED.email,
			headline = EXCLUDED.headline,
			skills = EXCLUDED.skills,
			about = EXCLUDED.about,
			experience = EXCLUDED.experience,
			profile_pic = EXCLUDED.profile_pic,
			is_complete = EXCLUDED.is_complete,
			created_at = NOW()`,
		record.FullName, record.AddressWithCountry, record.Email, record.LinkedinURL,
		record.Headline, skills, record.About, experience, record.ProfilePic, isComplete,
	)
	if err != nil {
		return fmt.Errorf("failed to insert profile: %w", err)
	}
	return nil
}

// ProfileExists reports whether a profile with this URL is already stored.
func (db *DB) ProfileExists(ctx context.Context, linkedinURL string) (bool, error) {
	var id int64
	err := db.pool.QueryRow(ctx,
		`SELECT id FROM profiles WHERE linkedin_url = $1`,
		linkedinURL,
	).Scan(&id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("failed to check profile existence: %w", err)
	}
	return true, nil
}

// FreshProfiles returns stored profiles for the given URLs whose rows are
// newer than the freshness window. URLs with no fresh row are simply absent
// from the result.
func (db *DB) FreshProfiles(ctx context.Context, linkedinURLs []string, window time.Duration) ([]types.ProfileRecord, error) {
	if len(linkedinURLs) == 0 {
		return nil, nil
	}
	if window <= 0 {
		window = DefaultFreshnessWindow
	}
	cutoff := time.Now().Add(-window)

	rows, err := db.pool.Query(ctx,
		`SELECT id, name, location, email, linkedin_url, headline, skills, about, experience, profile_pic, is_complete, created_at
		 FROM profiles
		 WHERE linkedin_url = ANY($1) AND created_at >= $2`,
		linkedinURLs, cutoff,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query fresh profiles: %w", err)
	}
	defer rows.Close()

	var records []types.ProfileRecord
	for rows.Next() {
		var stored StoredProfile
		if err := rows.Scan(
			&stored.ID, &stored.Name, &stored.Location, &stored.Email, &stored.LinkedinURL,
			&stored.Headline, &stored.Skills, &stored.About, &stored.Experience,
			&stored.ProfilePic, &stored.IsComplete, &stored.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		records = append(records, stored.ToRecord())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read profiles: %w", err)
	}
	return records, nil
}

// StaleProfileURLs returns URLs of stored profiles older than the freshness
// window, oldest first, for background re-scraping.
func (db *DB) StaleProfileURLs(ctx context.Context, window time.Duration, limit int) ([]string, error) {
	if window <= 0 {
		window = DefaultFreshnessWindow
	}
	if limit <= 0 {
		limit = 50
	}
	cutoff := time.Now().Add(-window)

	rows, err := db.pool.Query(ctx,
		`SELECT linkedin_url FROM profiles
		 WHERE created_at < $1 AND linkedin_url IS NOT NULL
		 ORDER BY created_at ASC
		 LIMIT $2`,
		cutoff, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query stale profiles: %w", err)
	}
	defer rows.Close()

	var urls []string
	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return nil, fmt.Errorf("failed to scan profile URL: %w", err)
		}
		urls = append(urls, url)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read profile URLs: %w", err)
	}
	return urls, nil
}
