// Copyright (c) 2026 Kreeda. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/taibuivan/kreeda/internal/platform/apperr"
	"github.com/taibuivan/kreeda/internal/platform/config"
	"github.com/taibuivan/kreeda/internal/platform/constants"
	"github.com/taibuivan/kreeda/internal/platform/sec"
	"github.com/taibuivan/kreeda/internal/platform/validate"
	"github.com/taibuivan/kreeda/internal/users/profile"
)

// # Contracts & Types

// TokenProvider defines the contract for generating security tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string for the given principal.
	GenerateAccessToken(principalID, role string, timeToLive time.Duration) (string, error)
}

// ProfileLookup resolves the combined credential+profile view of a principal.
type ProfileLookup interface {
	GetCombined(ctx context.Context, principalID string) (*profile.Combined, error)
}

// Service implements registration, login, and token decoding use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or login logic must be reviewed before merging.
type Service struct {
	credentialRepository CredentialRepository
	sessionRepository    SessionRepository
	profiles             ProfileLookup
	tokenProvider        TokenProvider
	identityScheme       string
	tokenTTL             time.Duration
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(
	credentialRepo CredentialRepository,
	sessionRepo SessionRepository,
	profiles ProfileLookup,
	tokenProv TokenProvider,
	identityScheme string,
	tokenTTL time.Duration,
) *Service {
	return &Service{
		credentialRepository: credentialRepo,
		sessionRepository:    sessionRepo,
		profiles:             profiles,
		tokenProvider:        tokenProv,
		identityScheme:       identityScheme,
		tokenTTL:             tokenTTL,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new account.
//
// The profile fields are consulted only under the roll-number scheme, where
// registration writes the athlete profile in the same transaction.
type RegisterInput struct {
	PrincipalID string
	Password    string
	DisplayName string
	SportID     int64
	Year        int
	Gender      string
}

/*
Register validates, hashes, and persists a brand new account.

Description: The principal identifier is lowercase-normalized before storage,
making uniqueness case-insensitive. Under the roll-number scheme the athlete
profile is written in the same transaction as the credential.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *Credential: Created entity
  - error: apperr.Conflict (duplicate principal), validation, or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*Credential, error) {
	principalID := strings.ToLower(strings.TrimSpace(input.PrincipalID))

	validator := &validate.Validator{}
	validator.Required(FieldPrincipalID, principalID).
		Required(FieldPassword, input.Password).
		MinLen(FieldPassword, input.Password, 6)

	switch service.identityScheme {
	case config.IdentitySchemeRollNo:
		if principalID != "" {
			validator.RollNumber(FieldRollNo, principalID)
		}
		validator.RequiredID(FieldSportID, input.SportID).
			Range(FieldYear, input.Year, 1, 5).
			OneOf(FieldGender, input.Gender, "male", "female", "other")
	case config.IdentitySchemeUsername:
		if principalID != "" {
			validator.MinLen(FieldUsername, principalID, 3).
				MaxLen(FieldUsername, principalID, 64).
				Username(FieldUsername, principalID)
		}
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Prevent storing plain-text passwords. Default cost is used for balance
	// between security and CPU utilization during registration spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	credential := &Credential{
		PrincipalID:  principalID,
		PasswordHash: hashedPassword,
		IsActive:     true,
		RoleID:       sec.RoleAthlete.ID(),
	}

	// Under the roll-number scheme the profile row rides the same transaction.
	var athleteProfile *profile.Profile
	if service.identityScheme == config.IdentitySchemeRollNo {
		displayName := strings.TrimSpace(input.DisplayName)
		if displayName == "" {
			displayName = constants.ProfilePlaceholderName
		}
		athleteProfile = &profile.Profile{
			PrincipalID: principalID,
			DisplayName: displayName,
			SportID:     input.SportID,
			Year:        input.Year,
			Gender:      input.Gender,
		}
	}

	// Duplicate detection happens inside Create via the unique constraint.
	if err := service.credentialRepository.Create(context, credential, athleteProfile); err != nil {
		return nil, err
	}

	return credential, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	PrincipalID string
	Password    string
}

// LoginResult represents a successfully established session.
type LoginResult struct {
	Token           string
	RoleID          int
	ProfileComplete bool
}

/*
Login validates credentials and issues a signed access token.

Description: Verifies identity, performs constant-time password comparison,
and mirrors the issued token into the server-side session slot.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *LoginResult: Transport-ready session identifiers
  - error: InvalidCredentials or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginResult, error) {
	principalID := strings.ToLower(strings.TrimSpace(input.PrincipalID))

	credential, err := service.credentialRepository.FindByPrincipal(context, principalID)

	// Unknown principal: generic message to prevent account enumeration.
	if err != nil {
		return nil, apperr.InvalidCredentials("Invalid login credentials")
	}

	// Deactivated accounts get a distinct message even with a correct password,
	// and any stale session mirror is cleared so the slot does not outlive the
	// deactivation.
	if !credential.IsActive {
		_ = service.sessionRepository.Delete(context, credential.PrincipalID)
		return nil, apperr.InvalidCredentials("Account is inactive")
	}

	// bcrypt comparison is constant-time, preventing timing attacks.
	if !sec.CheckPasswordHash(input.Password, credential.PasswordHash) {
		return nil, apperr.InvalidCredentials("Invalid login credentials")
	}

	role := sec.RoleFromID(credential.RoleID)
	token, err := service.tokenProvider.GenerateAccessToken(credential.PrincipalID, string(role), service.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	// Mirror the token into the session slot. Best-effort: the token itself is
	// the authority, the mirror only tracks the latest issuance per principal.
	_ = service.sessionRepository.Set(context, credential.PrincipalID, token, service.tokenTTL)

	combined, err := service.profiles.GetCombined(context, credential.PrincipalID)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:           token,
		RoleID:          credential.RoleID,
		ProfileComplete: combined.ProfileComplete,
	}, nil
}

// # Token Decoding

/*
Decode resolves the combined account view for an authenticated principal.

Description: Backs the decodeToken endpoint; the token was already verified
by the middleware, this step only hydrates the account and profile state.

Parameters:
  - context: context.Context
  - principalID: string

Returns:
  - *profile.Combined: Joined credential+profile view
  - error: apperr.NotFound when the principal vanished since issuance
*/
func (service *Service) Decode(context context.Context, principalID string) (*profile.Combined, error) {
	return service.profiles.GetCombined(context, strings.ToLower(principalID))
}
