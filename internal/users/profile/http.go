// Copyright (c) 2026 Kreeda. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/kreeda/internal/platform/middleware"
	requestutil "github.com/taibuivan/kreeda/internal/platform/request"
	"github.com/taibuivan/kreeda/internal/platform/respond"
	"github.com/taibuivan/kreeda/internal/platform/validate"
)

// Handler implements the athlete profile HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] for profile management.
//
// # Endpoints
//   - POST / : Creates or completes the caller's athlete profile.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/", handler.upsert)
	})

	return router
}

type upsertRequest struct {
	DisplayName string `json:"name"`
	SportID     int64  `json:"sport_id"`
	Year        int    `json:"year"`
	Gender      string `json:"gender"`
}

/*
upsert creates or completes the caller's athlete profile.

POST /api/profile

Request:
  - Body: upsertRequest (name, sport_id, year, gender)

Response:
  - 200: Success envelope with the stored profile
  - 400: Validation failure
  - 401: Missing or invalid token
*/
func (handler *Handler) upsert(writer http.ResponseWriter, request *http.Request) {
	principalID, err := requestutil.RequiredPrincipalID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input upsertRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	athleteProfile, err := handler.service.Upsert(request.Context(), UpsertInput{
		PrincipalID: principalID,
		DisplayName: input.DisplayName,
		SportID:     input.SportID,
		Year:        input.Year,
		Gender:      input.Gender,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Data(writer, athleteProfile)
}
