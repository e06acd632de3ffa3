// Copyright (c) 2026 Kreeda. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/kreeda/internal/platform/apperr"
	"github.com/taibuivan/kreeda/internal/platform/constants"
	"github.com/taibuivan/kreeda/internal/platform/middleware"
	"github.com/taibuivan/kreeda/internal/platform/respond"
	"github.com/taibuivan/kreeda/internal/platform/validate"
)

// Handler exposes the authenticated upload relay.
type Handler struct {
	uploader Uploader
}

func NewHandler(uploader Uploader) *Handler {
	return &Handler{uploader: uploader}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)
		protected.Post("/", handler.upload)
	})
	return router
}

type uploadResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
}

// upload accepts a multipart form with a "file" part and a "name" field and
// relays the binary to object storage.
func (handler *Handler) upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(constants.MaxUploadBytes); err != nil {
		respond.Error(w, r, apperr.ValidationError("Request must be multipart form data with a file part"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respond.Error(w, r, validate.RequiredError("file", "A file part is required"))
		return
	}
	defer file.Close()

	logicalName := strings.TrimSpace(r.FormValue("name"))
	if logicalName == "" {
		respond.Error(w, r, validate.RequiredError("name", "A logical file name is required"))
		return
	}

	url, err := handler.uploader.Upload(r.Context(), file, logicalName, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, uploadResponse{Success: true, URL: url})
}
