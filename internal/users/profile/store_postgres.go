// Copyright (c) 2026 Kreeda. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/kreeda/internal/platform/apperr"
	"github.com/taibuivan/kreeda/internal/platform/database/schema"
	"github.com/taibuivan/kreeda/internal/platform/dberr"
	"github.com/taibuivan/kreeda/pkg/pointer"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL implementation of the Repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
GetCombined retrieves the credential left-joined with its profile.

Description: The profile side is optional; nullable columns are scanned into
pointers and collapsed to zero values when absent.

Parameters:
  - context: context.Context
  - principalID: string

Returns:
  - *Combined: Joined view with the completeness flag computed
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresRepository) GetCombined(context context.Context, principalID string) (*Combined, error) {
	account := schema.RegAccount
	prof := schema.RegProfile

	query := fmt.Sprintf(`
		SELECT a.%s, a.%s, a.%s,
		       p.%s, p.%s, p.%s, p.%s
		FROM %s a
		LEFT JOIN %s p ON p.%s = a.%s
		WHERE a.%s = $1
	`,
		account.PrincipalID, account.RoleID, account.IsActive,
		prof.DisplayName, prof.SportID, prof.Year, prof.Gender,
		account.Table, prof.Table, prof.PrincipalID, account.PrincipalID,
		account.PrincipalID,
	)

	combined := &Combined{}
	var displayName *string
	var sportID *int64
	var year *int
	var gender *string

	err := repository.pool.QueryRow(context, query, principalID).Scan(
		&combined.PrincipalID,
		&combined.RoleID,
		&combined.IsActive,
		&displayName,
		&sportID,
		&year,
		&gender,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Account")
		}
		return nil, dberr.Wrap(err, "profile_get_combined")
	}

	combined.DisplayName = pointer.Val(displayName)
	combined.SportID = pointer.Val(sportID)
	combined.Year = pointer.Val(year)
	combined.Gender = pointer.Val(gender)

	combined.ProfileComplete = computeComplete(combined.DisplayName)
	return combined, nil
}

/*
Upsert creates or replaces the athlete profile for a principal.

Parameters:
  - context: context.Context
  - athleteProfile: *Profile

Returns:
  - error: Validation (missing credential, FK) or persistence failures
*/
func (repository *PostgresRepository) Upsert(context context.Context, athleteProfile *Profile) error {
	prof := schema.RegProfile

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s
	`,
		prof.Table, prof.PrincipalID, prof.DisplayName, prof.SportID, prof.Year, prof.Gender,
		prof.PrincipalID,
		prof.DisplayName, prof.DisplayName,
		prof.SportID, prof.SportID,
		prof.Year, prof.Year,
		prof.Gender, prof.Gender,
	)

	_, err := repository.pool.Exec(context, query,
		athleteProfile.PrincipalID,
		athleteProfile.DisplayName,
		athleteProfile.SportID,
		athleteProfile.Year,
		athleteProfile.Gender,
	)
	if err != nil {
		return dberr.Wrap(err, "profile_upsert")
	}

	return nil
}
