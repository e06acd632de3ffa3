// Copyright (c) 2026 Kreeda. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
HTTP delivery layer for the authentication lifecycle.

The handler acts as a thin mediation layer between the web and domain services:
  - Protocol: Standard RESTful JSON interface.
  - Security: Delegates token verification to the middleware chain.
  - Verification: Enforces strict input validation before passing to [Service].

This layer is strictly responsible for transport concerns (status codes, headers, JSON).
*/
package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/kreeda/internal/platform/apperr"
	"github.com/taibuivan/kreeda/internal/platform/config"
	"github.com/taibuivan/kreeda/internal/platform/middleware"
	requestutil "github.com/taibuivan/kreeda/internal/platform/request"
	"github.com/taibuivan/kreeda/internal/platform/respond"
	"github.com/taibuivan/kreeda/internal/platform/validate"
	"github.com/taibuivan/kreeda/internal/users/profile"
)

// # Definitions & Constructors

// Handler implements authentication-related HTTP endpoints.
type Handler struct {
	authService    *Service
	verifier       middleware.TokenVerifier
	identityScheme string
}

// NewHandler constructs a new [Handler] with its service dependencies.
//
// The verifier backs the decodeToken body fallback, where older clients send
// the token in the request payload instead of the Authorization header.
func NewHandler(service *Service, verifier middleware.TokenVerifier, identityScheme string) *Handler {
	return &Handler{authService: service, verifier: verifier, identityScheme: identityScheme}
}

// Register attaches the authentication routes to the given router.
//
// The endpoints live flat under the API root because the mobile clients were
// shipped against these exact paths.
//
// # Endpoints
//   - POST /register    : Creates a new account.
//   - POST /login       : Authenticates and returns a JWT.
//   - POST /decodeToken : Resolves the current token to its account view.
func (handler *Handler) Register(router chi.Router) {
	router.Post("/register", handler.register)
	router.Post("/login", handler.login)

	// decodeToken stays outside the RequireAuth group: it accepts either the
	// bearer header or the legacy {token} body, so it gates itself.
	router.Post("/decodeToken", handler.decodeToken)
}

// # Request / Response Payloads

// registerRequest accepts the principal under either key; the active identity
// scheme decides which one is read.
type registerRequest struct {
	RollNo   string `json:"roll_no"`
	Username string `json:"username"`
	Password string `json:"password"`

	// Profile fields, consulted under the roll-number scheme only.
	DisplayName string `json:"name"`
	SportID     int64  `json:"sport_id"`
	Year        int    `json:"year"`
	Gender      string `json:"gender"`
}

type loginRequest struct {
	RollNo   string `json:"roll_no"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// decodeRequest carries the legacy body token accepted by decodeToken.
type decodeRequest struct {
	Token string `json:"token"`
}

// loginResponse preserves the wire shape consumed by the existing clients.
type loginResponse struct {
	IsValid bool   `json:"isValid"`
	Token   string `json:"token"`
	Profile int    `json:"profile"`
	RoleID  int    `json:"role_id"`
}

// decodeResponse is the combined account view plus the 0/1 profile flag.
type decodeResponse struct {
	*profile.Combined
	Profile int `json:"profile"`
}

// principal picks the identifier matching the deployment's identity scheme.
func (handler *Handler) principal(rollNo, username string) string {
	if handler.identityScheme == config.IdentitySchemeUsername {
		return username
	}
	return rollNo
}

// principalField names the JSON field clients must populate.
func (handler *Handler) principalField() string {
	if handler.identityScheme == config.IdentitySchemeUsername {
		return FieldUsername
	}
	return FieldRollNo
}

/*
register handles the creation of a new account.

POST /api/register

Description: Validates input, hashes the password, and persists the
credential (plus the athlete profile under the roll-number scheme) in one
transaction.

Request:
  - Body: registerRequest (roll_no|username, password, profile fields)

Response:
  - 200: {success, message}
  - 400: Validation failure or duplicate principal
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	principalID := handler.principal(input.RollNo, input.Username)
	if principalID == "" {
		respond.Error(writer, request, validate.RequiredError(handler.principalField(), "This field is required"))
		return
	}

	_, err := handler.authService.Register(request.Context(), RegisterInput{
		PrincipalID: principalID,
		Password:    input.Password,
		DisplayName: input.DisplayName,
		SportID:     input.SportID,
		Year:        input.Year,
		Gender:      input.Gender,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "User registered successfully")
}

/*
login authenticates an account and issues a session token.

POST /api/login

Description: Verifies credentials, generates the JWT, and reports whether the
athlete profile has been completed.

Request:
  - Body: loginRequest (roll_no|username, password)

Response:
  - 200: loginResponse (isValid, token, profile, role_id)
  - 400: Invalid credentials or inactive account
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	principalID := handler.principal(input.RollNo, input.Username)

	validator := &validate.Validator{}
	validator.Required(handler.principalField(), principalID)
	validator.Required(FieldPassword, input.Password)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.authService.Login(request.Context(), LoginInput{
		PrincipalID: principalID,
		Password:    input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	profileFlag := 0
	if result.ProfileComplete {
		profileFlag = 1
	}

	respond.JSON(writer, http.StatusOK, loginResponse{
		IsValid: true,
		Token:   result.Token,
		Profile: profileFlag,
		RoleID:  result.RoleID,
	})
}

/*
decodeToken resolves the caller's token to its account view.

POST /api/decodeToken

Description: Prefers the bearer token already verified by the middleware;
clients built before the Authorization header rollout send {token} in the
body instead, which is verified here with the same token service.

Request:
  - Body: decodeRequest (token, optional when the bearer header is present)

Response:
  - 200: decodeResponse (principal fields + profile flag)
  - 401: Missing or invalid token
  - 404: Principal no longer exists
*/
func (handler *Handler) decodeToken(writer http.ResponseWriter, request *http.Request) {
	principalID, err := handler.decodePrincipal(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	combined, err := handler.authService.Decode(request.Context(), principalID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.JSON(writer, http.StatusOK, decodeResponse{
		Combined: combined,
		Profile:  combined.Flag(),
	})
}

// decodePrincipal resolves the principal from the middleware claims or, for
// the legacy clients, from a token carried in the request body.
func (handler *Handler) decodePrincipal(request *http.Request) (string, error) {
	if principalID, err := requestutil.RequiredPrincipalID(request); err == nil {
		return principalID, nil
	}

	var input decodeRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil || input.Token == "" {
		return "", apperr.Unauthorized("Authentication required")
	}

	claims, err := handler.verifier.VerifyToken(input.Token)
	if err != nil {
		return "", apperr.Unauthorized("Authentication required")
	}

	return claims.PrincipalID, nil
}
