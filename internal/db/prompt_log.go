package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/recruiter-agent/internal/types"
)

// InsertPromptLog records a recruiter query together with the criteria the
// extractor produced for it. Used for auditing extraction quality.
func (db *DB) InsertPromptLog(ctx context.Context, prompt string, criteria *types.SearchCriteria) (uuid.UUID, error) {
	id := uuid.New()

	var skills, location []byte
	var err error
	if len(criteria.Skills) > 0 {
		skills, err = json.Marshal(criteria.Skills)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to marshal skills: %w", err)
		}
	}
	if len(criteria.Location) > 0 {
		location, err = json.Marshal(criteria.Location)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to marshal location: %w", err)
		}
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO prompt_log
		 (id, prompt, job_title, skills, experience, location, work_preference, job_type, is_indian, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())`,
		id, prompt, criteria.JobTitle, skills, criteria.Experience.String(),
		location, criteria.WorkPreference, criteria.JobType, criteria.IsIndian,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert prompt log: %w", err)
	}
	return id, nil
}
