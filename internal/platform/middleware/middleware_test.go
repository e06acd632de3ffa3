// Copyright (c) 2026 Kreeda. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/kreeda/internal/platform/middleware"
)

// fakeAppConfig controls the environment and extra-origin list seen by CORS.
type fakeAppConfig struct {
	development  bool
	extraOrigins []string
}

func (cfg *fakeAppConfig) IsDevelopment() bool      { return cfg.development }
func (cfg *fakeAppConfig) AllowedOrigins() []string { return cfg.extraOrigins }

// corsRequest sends a GET with the given Origin through the CORS middleware.
func corsRequest(cfg middleware.AppConfig, origin string) *httptest.ResponseRecorder {
	okHandler := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	})

	request := httptest.NewRequest(http.MethodGet, "/test", nil)
	if origin != "" {
		request.Header.Set("Origin", origin)
	}

	recorder := httptest.NewRecorder()
	middleware.CORS(cfg)(okHandler).ServeHTTP(recorder, request)
	return recorder
}

/*
TestCORS_Production verifies the production allow-list: the first-party
domain, configured extra origins matched exactly, everything else denied.
*/
func TestCORS_Production(t *testing.T) {
	cfg := &fakeAppConfig{extraOrigins: []string{"https://staging.kreeda.dev"}}

	tests := []struct {
		name        string
		origin      string
		wantAllowed bool
	}{
		{"first_party", "https://kreeda.app", true},
		{"first_party_subdomain", "https://admin.kreeda.app", true},
		{"extra_origin", "https://staging.kreeda.dev", true},
		{"extra_origin_subpath_mismatch", "https://evil.staging.kreeda.dev", false},
		{"unknown_origin", "https://evil.example", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := corsRequest(cfg, tt.origin)
			assert.Equal(t, http.StatusOK, recorder.Code)

			allowOrigin := recorder.Header().Get("Access-Control-Allow-Origin")
			if tt.wantAllowed {
				assert.Equal(t, tt.origin, allowOrigin)
			} else {
				assert.Empty(t, allowOrigin)
			}
		})
	}
}

/*
TestCORS_Development verifies that development reflects any origin.
*/
func TestCORS_Development(t *testing.T) {
	cfg := &fakeAppConfig{development: true}

	recorder := corsRequest(cfg, "http://localhost:5173")
	assert.Equal(t, "http://localhost:5173", recorder.Header().Get("Access-Control-Allow-Origin"))
}

/*
TestCORS_Preflight verifies the OPTIONS short-circuit.
*/
func TestCORS_Preflight(t *testing.T) {
	cfg := &fakeAppConfig{extraOrigins: []string{"https://staging.kreeda.dev"}}

	okHandler := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	})

	request := httptest.NewRequest(http.MethodOptions, "/api/login", nil)
	request.Header.Set("Origin", "https://staging.kreeda.dev")

	recorder := httptest.NewRecorder()
	middleware.CORS(cfg)(okHandler).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, "https://staging.kreeda.dev", recorder.Header().Get("Access-Control-Allow-Origin"))
}

/*
TestCORS_NoOriginPassesThrough verifies same-origin requests are untouched.
*/
func TestCORS_NoOriginPassesThrough(t *testing.T) {
	recorder := corsRequest(&fakeAppConfig{}, "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
}
