// Copyright (c) 2026 Kreeda. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// # Storage Layer
//
// Repositories in this file are strictly separated from domain logic. They
// implement the domain-defined interfaces using the [pgxpool.Pool] connection
// manager; storage-specific errors (pgx.ErrNoRows, SQLSTATE 23505) are mapped
// to domain-friendly [apperr.AppError] values before they leave this layer.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/kreeda/internal/platform/apperr"
	"github.com/taibuivan/kreeda/internal/platform/database/schema"
	"github.com/taibuivan/kreeda/internal/platform/dberr"
	"github.com/taibuivan/kreeda/internal/users/profile"
)

// # Credential Repository

// PostgresCredentialRepository implements [CredentialRepository] using pgx.
type PostgresCredentialRepository struct {
	pool *pgxpool.Pool
}

// NewCredentialRepository creates a new PostgreSQL implementation of the CredentialRepository.
func NewCredentialRepository(pool *pgxpool.Pool) *PostgresCredentialRepository {
	return &PostgresCredentialRepository{pool: pool}
}

/*
FindByPrincipal retrieves an account by its normalized principal identifier.

Parameters:
  - context: context.Context
  - principalID: string (lowercase)

Returns:
  - *Credential: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresCredentialRepository) FindByPrincipal(context context.Context, principalID string) (*Credential, error) {
	account := schema.RegAccount

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1`,
		account.PrincipalID, account.PasswordHash, account.IsActive, account.RoleID, account.CreatedAt,
		account.Table, account.PrincipalID,
	)

	credential := &Credential{}
	err := repository.pool.QueryRow(context, query, principalID).Scan(
		&credential.PrincipalID,
		&credential.PasswordHash,
		&credential.IsActive,
		&credential.RoleID,
		&credential.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Account")
		}
		return nil, dberr.Wrap(err, "credential_find_by_principal")
	}

	return credential, nil
}

/*
Create persists a new account, and its athlete profile when provided, inside
a single transaction.

Description: The transaction guarantees registration never leaves an orphaned
credential: either both rows commit or neither does. Duplicate principals are
detected by the unique constraint on the principal column, not by a prior
read, so concurrent registrations of the same identifier cannot both succeed.

Parameters:
  - context: context.Context
  - credential: *Credential
  - athleteProfile: *profile.Profile (may be nil)

Returns:
  - error: apperr.Conflict on duplicates, or persistence failures
*/
func (repository *PostgresCredentialRepository) Create(context context.Context, credential *Credential, athleteProfile *profile.Profile) error {
	account := schema.RegAccount
	prof := schema.RegProfile

	if credential.CreatedAt.IsZero() {
		credential.CreatedAt = time.Now()
	}

	tx, err := repository.pool.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "credential_create_begin")
	}
	// Rollback is a no-op after a successful commit.
	defer func() { _ = tx.Rollback(context) }()

	accountQuery := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)`,
		account.Table,
		account.PrincipalID, account.PasswordHash, account.IsActive, account.RoleID, account.CreatedAt,
	)

	_, err = tx.Exec(context, accountQuery,
		credential.PrincipalID,
		credential.PasswordHash,
		credential.IsActive,
		credential.RoleID,
		credential.CreatedAt,
	)
	if err != nil {
		if dberr.IsUniqueViolation(err) {
			return apperr.Conflict("An account with this identifier already exists")
		}
		return dberr.Wrap(err, "credential_create_account")
	}

	if athleteProfile != nil {
		profileQuery := fmt.Sprintf(`
			INSERT INTO %s (%s, %s, %s, %s, %s)
			VALUES ($1, $2, $3, $4, $5)`,
			prof.Table,
			prof.PrincipalID, prof.DisplayName, prof.SportID, prof.Year, prof.Gender,
		)

		_, err = tx.Exec(context, profileQuery,
			athleteProfile.PrincipalID,
			athleteProfile.DisplayName,
			athleteProfile.SportID,
			athleteProfile.Year,
			athleteProfile.Gender,
		)
		if err != nil {
			return dberr.Wrap(err, "credential_create_profile")
		}
	}

	if err := tx.Commit(context); err != nil {
		return dberr.Wrap(err, "credential_create_commit")
	}

	return nil
}
