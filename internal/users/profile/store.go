// Copyright (c) 2026 Kreeda. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile

import "context"

// # Profile Data Access

// Repository defines the data access contract for athlete profiles.
type Repository interface {

	/*
		GetCombined returns the credential joined with its profile via a left
		join; the profile side may be absent, which yields zero values and a
		false completeness flag.

		Parameters:
		  - context: context.Context
		  - principalID: string (lowercase-normalized)

		Returns:
		  - *Combined: Joined view
		  - error: apperr.NotFound when no credential exists, or database failures
	*/
	GetCombined(context context.Context, principalID string) (*Combined, error)

	/*
		Upsert creates or replaces the profile row for a principal.

		Parameters:
		  - context: context.Context
		  - athleteProfile: *Profile

		Returns:
		  - error: Persistence failures (foreign key failures when the
		    credential is missing)
	*/
	Upsert(context context.Context, athleteProfile *Profile) error
}
