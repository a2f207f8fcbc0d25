package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/openhire/matchengine/internal/types"
)

// GetSavedSearch retrieves a saved search by its ID. Returns nil when the
// search does not exist.
func (db *DB) GetSavedSearch(ctx context.Context, id uuid.UUID) (*types.SavedSearch, error) {
	var s types.SavedSearch
	var filtersJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, query, filters, schedule, owner_id, last_run_at
		 FROM saved_searches WHERE id = $1`,
		id,
	).Scan(&s.ID, &s.Query, &filtersJSON, &s.Schedule, &s.OwnerID, &s.LastRunAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get saved search: %w", err)
	}

	if filtersJSON != nil {
		_ = json.Unmarshal(filtersJSON, &s.Filters)
	}

	return &s, nil
}

// ListSavedSearches returns every saved search, oldest first. Used by the
// scheduled digest runner to find searches that are due.
func (db *DB) ListSavedSearches(ctx context.Context) ([]types.SavedSearch, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, query, filters, schedule, owner_id, last_run_at
		 FROM saved_searches ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved searches: %w", err)
	}
	defer rows.Close()

	var searches []types.SavedSearch
	for rows.Next() {
		var s types.SavedSearch
		var filtersJSON []byte
		if err := rows.Scan(&s.ID, &s.Query, &filtersJSON, &s.Schedule, &s.OwnerID, &s.LastRunAt); err != nil {
			return nil, fmt.Errorf("failed to scan saved search: %w", err)
		}
		if filtersJSON != nil {
			_ = json.Unmarshal(filtersJSON, &s.Filters)
		}
		searches = append(searches, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate saved searches: %w", err)
	}

	return searches, nil
}

// SaveDigest stores a generated digest and advances the owning search's
// last-run timestamp in a single transaction. Either both writes land or
// neither does.
func (db *DB) SaveDigest(ctx context.Context, digest *types.Digest) error {
	rowsJSON, err := json.Marshal(digest.Rows)
	if err != nil {
		return fmt.Errorf("failed to marshal digest rows: %w", err)
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(ctx,
		`INSERT INTO digests (id, search_id, generated_at, rows)
		 VALUES ($1, $2, $3, $4)`,
		digest.ID, digest.SearchID, digest.GeneratedAt, rowsJSON); err != nil {
		return fmt.Errorf("failed to insert digest: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`UPDATE saved_searches SET last_run_at = $1 WHERE id = $2`,
		digest.GeneratedAt, digest.SearchID); err != nil {
		return fmt.Errorf("failed to update search last run: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit digest: %w", err)
	}
	return nil
}

// GetLatestDigest retrieves the most recent digest for a saved search.
// Returns nil when the search has never produced one.
func (db *DB) GetLatestDigest(ctx context.Context, searchID uuid.UUID) (*types.Digest, error) {
	var d types.Digest
	var rowsJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, search_id, generated_at, rows
		 FROM digests WHERE search_id = $1
		 ORDER BY generated_at DESC LIMIT 1`,
		searchID,
	).Scan(&d.ID, &d.SearchID, &d.GeneratedAt, &rowsJSON)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest digest: %w", err)
	}

	if rowsJSON != nil {
		_ = json.Unmarshal(rowsJSON, &d.Rows)
	}

	return &d, nil
}
