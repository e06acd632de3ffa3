// Copyright (c) 2026 Kreeda. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"time"

	"github.com/taibuivan/kreeda/internal/users/profile"
)

// # Credential Data Access

// CredentialRepository defines the data access contract for accounts.
type CredentialRepository interface {

	/*
		FindByPrincipal returns the account with the given principal identifier.
		The identifier must already be lowercase-normalized by the caller.

		Parameters:
		  - context: context.Context
		  - principalID: string

		Returns:
		  - *Credential: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByPrincipal(context context.Context, principalID string) (*Credential, error)

	/*
		Create persists a new account and, when non-nil, its athlete profile
		inside one transaction. A failure anywhere rolls back both rows.

		Duplicate principals surface as a unique-constraint violation mapped
		to apperr.Conflict; no prior existence read is performed.

		Parameters:
		  - context: context.Context
		  - credential: *Credential
		  - athleteProfile: *profile.Profile (nil when the scheme defers profiles)

		Returns:
		  - error: apperr.Conflict or persistence failures
	*/
	Create(context context.Context, credential *Credential, athleteProfile *profile.Profile) error
}

// # Volatile Data Access

// SessionRepository defines the contract for the server-side session mirror.
//
// Tokens remain client-owned after issuance; the mirror only records the most
// recently issued token per principal for the token's lifetime.
type SessionRepository interface {

	/*
		Set stores the issued token under the principal's session slot.

		Parameters:
		  - context: context.Context
		  - principalID: string
		  - token: string
		  - ttl: time.Duration

		Returns:
		  - error: Persistence failures
	*/
	Set(context context.Context, principalID string, token string, ttl time.Duration) error

	/*
		Delete removes the session slot for a principal.

		Login clears the slot for deactivated accounts so the mirror never
		outlives the deactivation.

		Parameters:
		  - context: context.Context
		  - principalID: string

		Returns:
		  - error: Persistence failures
	*/
	Delete(context context.Context, principalID string) error
}
