// Copyright (c) 2026 Kreeda. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile

import (
	"context"
	"strings"

	"github.com/taibuivan/kreeda/internal/platform/constants"
	"github.com/taibuivan/kreeda/internal/platform/validate"
)

// Service implements athlete profile use cases.
type Service struct {
	repository Repository
}

// NewService constructs a new [Service] with its repository dependency.
func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

// UpsertInput holds the data for creating or completing a profile.
type UpsertInput struct {
	PrincipalID string
	DisplayName string
	SportID     int64
	Year        int
	Gender      string
}

/*
Upsert validates and persists the athlete profile of a principal.

Description: Completing a profile flips the account's completeness flag as
observed by login and token decoding.

Parameters:
  - context: context.Context
  - input: UpsertInput

Returns:
  - *Profile: Persisted entity
  - error: Validation or persistence failures
*/
func (service *Service) Upsert(context context.Context, input UpsertInput) (*Profile, error) {
	displayName := strings.TrimSpace(input.DisplayName)

	validator := &validate.Validator{}
	validator.Required(FieldDisplayName, displayName).
		MaxLen(FieldDisplayName, displayName, 120).
		Custom(FieldDisplayName, displayName == constants.ProfilePlaceholderName, "This name is reserved").
		RequiredID(FieldSportID, input.SportID).
		Range(FieldYear, input.Year, 1, 5).
		OneOf(FieldGender, input.Gender, "male", "female", "other")

	if err := validator.Err(); err != nil {
		return nil, err
	}

	athleteProfile := &Profile{
		PrincipalID: strings.ToLower(input.PrincipalID),
		DisplayName: displayName,
		SportID:     input.SportID,
		Year:        input.Year,
		Gender:      input.Gender,
	}

	if err := service.repository.Upsert(context, athleteProfile); err != nil {
		return nil, err
	}

	return athleteProfile, nil
}

/*
GetCombined returns the joined credential+profile view for a principal.

Parameters:
  - context: context.Context
  - principalID: string

Returns:
  - *Combined: Joined view
  - error: apperr.NotFound or database failures
*/
func (service *Service) GetCombined(context context.Context, principalID string) (*Combined, error) {
	return service.repository.GetCombined(context, strings.ToLower(principalID))
}
