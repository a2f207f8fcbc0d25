package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/openhire/matchengine/internal/types"
)

// GetEmployer retrieves an employer account by its ID. Returns nil when
// the account does not exist.
func (db *DB) GetEmployer(ctx context.Context, id uuid.UUID) (*types.EmployerAccount, error) {
	var e types.EmployerAccount

	err := db.pool.QueryRow(ctx,
		`SELECT id, name, verification_tier, response_rate, avg_response_time, raw_trust
		 FROM employer_accounts WHERE id = $1`,
		id,
	).Scan(&e.ID, &e.Name, &e.VerificationTier, &e.ResponseRate, &e.AvgResponseTime, &e.RawTrust)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get employer: %w", err)
	}

	return &e, nil
}
