package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/openhire/matchengine/internal/types"
)

// GetCandidate retrieves a candidate profile by its ID. Returns nil when
// the profile does not exist.
func (db *DB) GetCandidate(ctx context.Context, id uuid.UUID) (*types.CandidateProfile, error) {
	var c types.CandidateProfile
	var skillsJSON, experienceJSON, portfolioJSON, proofJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, skills, location, experience, portfolio, proof_cards,
		        completeness, salary_expectation
		 FROM candidate_profiles WHERE id = $1`,
		id,
	).Scan(&c.ID, &skillsJSON, &c.Location, &experienceJSON, &portfolioJSON,
		&proofJSON, &c.Completeness, &c.SalaryExpectation)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}

	// Parse JSONB fields
	if skillsJSON != nil {
		_ = json.Unmarshal(skillsJSON, &c.Skills)
	}
	if experienceJSON != nil {
		_ = json.Unmarshal(experienceJSON, &c.Experience)
	}
	if portfolioJSON != nil {
		_ = json.Unmarshal(portfolioJSON, &c.Portfolio)
	}
	if proofJSON != nil {
		_ = json.Unmarshal(proofJSON, &c.ProofCards)
	}

	return &c, nil
}

// SaveTaskResult stores a scored proof task submission for a candidate.
func (db *DB) SaveTaskResult(ctx context.Context, candidateID uuid.UUID, taskType string, result *types.TaskResult) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO task_results (candidate_id, task_type, score, max_score, passed)
		 VALUES ($1, $2, $3, $4, $5)`,
		candidateID, taskType, result.Score, result.MaxScore, result.Passed)
	if err != nil {
		return fmt.Errorf("failed to save task result: %w", err)
	}
	return nil
}
