// Copyright (c) 2026 Kreeda. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kreeda/internal/platform/config"
	"github.com/taibuivan/kreeda/internal/platform/middleware"
	"github.com/taibuivan/kreeda/internal/platform/sec"
	"github.com/taibuivan/kreeda/internal/users/auth"
	"github.com/taibuivan/kreeda/internal/users/profile"
)

// # HTTP Fixture

// httpFixture serves the auth routes behind the real authentication
// middleware with real JWT signing, over the in-memory repositories.
type httpFixture struct {
	*serviceFixture
	tokens *sec.TokenService
	router chi.Router
}

func newHTTPFixture(t *testing.T, identityScheme string) *httpFixture {
	t.Helper()

	tokens, err := sec.NewTokenService("test-signing-secret", "kreeda.app")
	require.NoError(t, err)

	base := &serviceFixture{
		credentials: newFakeCredentialRepository(),
		sessions:    &fakeSessionRepository{},
		profiles:    &fakeProfileLookup{views: make(map[string]*profile.Combined)},
		tokens:      &fakeTokenProvider{},
	}
	base.service = auth.NewService(base.credentials, base.sessions, base.profiles, tokens, identityScheme, time.Hour)

	handler := auth.NewHandler(base.service, tokens, identityScheme)

	router := chi.NewRouter()
	router.Use(middleware.Authenticate(tokens))
	handler.Register(router)

	return &httpFixture{serviceFixture: base, tokens: tokens, router: router}
}

// post sends a JSON body to the given path, optionally with a bearer token.
func (fixture *httpFixture) post(path, body, bearer string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		request.Header.Set("Authorization", "Bearer "+bearer)
	}

	recorder := httptest.NewRecorder()
	fixture.router.ServeHTTP(recorder, request)
	return recorder
}

// # Registration Endpoint

/*
TestHTTP_Register verifies the success envelope and that a duplicate
principal reports 400 on the wire, matching the shipped client contract.
*/
func TestHTTP_Register(t *testing.T) {
	fixture := newHTTPFixture(t, config.IdentitySchemeRollNo)

	body := `{"roll_no":"21CS001","password":"hunter22","sport_id":3,"year":2,"gender":"female"}`

	recorder := fixture.post("/register", body, "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var success struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &success))
	assert.True(t, success.Success)
	assert.Equal(t, "User registered successfully", success.Message)

	// Same principal again: rejected as a bad request, not 409.
	recorder = fixture.post("/register", body, "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var failure struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &failure))
	assert.Equal(t, "CONFLICT", failure.Code)
}

// # Login Endpoint

/*
TestHTTP_Login verifies the legacy login wire shape and that credential
rejections report 400, reserving 401 for protected routes.
*/
func TestHTTP_Login(t *testing.T) {
	fixture := newHTTPFixture(t, config.IdentitySchemeRollNo)
	fixture.seedAccount(t, "21cs001", "hunter22", true, true)

	recorder := fixture.post("/login", `{"roll_no":"21cs001","password":"hunter22"}`, "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var response struct {
		IsValid bool   `json:"isValid"`
		Token   string `json:"token"`
		Profile int    `json:"profile"`
		RoleID  int    `json:"role_id"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.True(t, response.IsValid)
	assert.NotEmpty(t, response.Token)
	assert.Equal(t, 1, response.Profile)
	assert.Equal(t, sec.RoleAthlete.ID(), response.RoleID)

	// The issued token verifies against the same service.
	claims, err := fixture.tokens.VerifyToken(response.Token)
	require.NoError(t, err)
	assert.Equal(t, "21cs001", claims.PrincipalID)

	// Wrong password: 400 with the generic message.
	recorder = fixture.post("/login", `{"roll_no":"21cs001","password":"wrong"}`, "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var failure struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &failure))
	assert.Equal(t, "INVALID_CREDENTIALS", failure.Code)
	assert.Equal(t, "Invalid login credentials", failure.Error)
}

// # Token Decoding Endpoint

/*
TestHTTP_DecodeToken covers both accepted token carriers: the bearer header
and the legacy {token} body, plus the rejection of absent or invalid tokens.
*/
func TestHTTP_DecodeToken(t *testing.T) {
	fixture := newHTTPFixture(t, config.IdentitySchemeRollNo)
	fixture.seedAccount(t, "21cs001", "hunter22", true, true)

	token, err := fixture.tokens.GenerateAccessToken("21cs001", string(sec.RoleAthlete), time.Hour)
	require.NoError(t, err)

	t.Run("bearer_header", func(t *testing.T) {
		recorder := fixture.post("/decodeToken", `{}`, token)
		require.Equal(t, http.StatusOK, recorder.Code)

		var response struct {
			PrincipalID string `json:"principal_id"`
			Profile     int    `json:"profile"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, "21cs001", response.PrincipalID)
		assert.Equal(t, 1, response.Profile)
	})

	t.Run("body_token", func(t *testing.T) {
		recorder := fixture.post("/decodeToken", `{"token":"`+token+`"}`, "")
		require.Equal(t, http.StatusOK, recorder.Code)

		var response struct {
			PrincipalID string `json:"principal_id"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, "21cs001", response.PrincipalID)
	})

	t.Run("no_token", func(t *testing.T) {
		recorder := fixture.post("/decodeToken", `{}`, "")
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("invalid_body_token", func(t *testing.T) {
		recorder := fixture.post("/decodeToken", `{"token":"not-a-jwt"}`, "")
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}
