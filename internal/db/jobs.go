package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/openhire/matchengine/internal/types"
)

const jobPostingColumns = `id, title, company, url, description, tags, locations,
	 remote, employment_type, compensation, employer_id, active, created_at`

func scanJobPosting(row pgx.Row) (*types.JobPosting, error) {
	var p types.JobPosting
	var tagsJSON, locationsJSON, compJSON []byte

	err := row.Scan(&p.ID, &p.Title, &p.Company, &p.URL, &p.Description,
		&tagsJSON, &locationsJSON, &p.Remote, &p.EmploymentType, &compJSON,
		&p.EmployerID, &p.Active, &p.CreatedAt)
	if err != nil {
		return nil, err
	}

	// Parse JSONB fields
	if tagsJSON != nil {
		_ = json.Unmarshal(tagsJSON, &p.Tags)
	}
	if locationsJSON != nil {
		_ = json.Unmarshal(locationsJSON, &p.Locations)
	}
	if compJSON != nil {
		_ = json.Unmarshal(compJSON, &p.Compensation)
	}

	return &p, nil
}

// GetJobPosting retrieves a job posting by its ID. Returns nil when the
// posting does not exist.
func (db *DB) GetJobPosting(ctx context.Context, id uuid.UUID) (*types.JobPosting, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+jobPostingColumns+` FROM job_postings WHERE id = $1`, id)

	p, err := scanJobPosting(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job posting: %w", err)
	}
	return p, nil
}

// ListActiveJobs returns all active job postings, newest first.
func (db *DB) ListActiveJobs(ctx context.Context) ([]types.JobPosting, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+jobPostingColumns+`
		 FROM job_postings WHERE active = true
		 ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list active jobs: %w", err)
	}
	defer rows.Close()

	var jobs []types.JobPosting
	for rows.Next() {
		p, err := scanJobPosting(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job posting: %w", err)
		}
		jobs = append(jobs, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate job postings: %w", err)
	}

	return jobs, nil
}

// ListJobsByEmployer returns all postings for an employer, newest first.
func (db *DB) ListJobsByEmployer(ctx context.Context, employerID uuid.UUID) ([]types.JobPosting, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+jobPostingColumns+`
		 FROM job_postings WHERE employer_id = $1
		 ORDER BY created_at DESC`, employerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employer jobs: %w", err)
	}
	defer rows.Close()

	var jobs []types.JobPosting
	for rows.Next() {
		p, err := scanJobPosting(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job posting: %w", err)
		}
		jobs = append(jobs, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate job postings: %w", err)
	}

	return jobs, nil
}
