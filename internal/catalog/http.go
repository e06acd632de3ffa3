// Copyright (c) 2026 Kreeda. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/kreeda/internal/platform/request"
	"github.com/taibuivan/kreeda/internal/platform/respond"
	"github.com/taibuivan/kreeda/internal/platform/database/schema"
	"github.com/taibuivan/kreeda/internal/platform/validate"
)

// Handler implements the catalog HTTP endpoints for all ten levels.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register attaches one create and one display route per level to the given
// router. The endpoints live flat under the API root alongside the auth
// routes, matching the paths the shipped clients call.
//
// # Endpoints
//   - POST /level{N}      : Creates a level-N entry (p_id required for N>1).
//   - GET  /dislevel1     : Lists every root entry.
//   - POST /dislevel{N}   : Lists the level-N children of a parent (N>1).
//
// The routes are fixed literals generated from the level descriptors; the
// depth never comes from request input.
func (handler *Handler) Register(router chi.Router) {
	for _, level := range schema.CatalogLevels {
		depth := level.Depth

		router.Post(fmt.Sprintf("/level%d", depth), handler.createNode(depth))

		if level.HasParent {
			router.Post(fmt.Sprintf("/dislevel%d", depth), handler.listChildren(depth))
		} else {
			router.Get(fmt.Sprintf("/dislevel%d", depth), handler.listRoots)
		}
	}
}

// # Request Payloads

type createNodeRequest struct {
	ParentID    int64  `json:"p_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"img"`
}

type listChildrenRequest struct {
	ID int64 `json:"id"`
}

/*
createNode builds the create handler for one level.

POST /api/level{N}

Request:
  - Body: createNodeRequest (p_id for N>1, name, description?, img?)

Response:
  - 200: {success, message, id}
  - 400: Missing name or p_id
*/
func (handler *Handler) createNode(depth int) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		var input createNodeRequest

		if err := requestutil.DecodeJSON(request, &input); err != nil {
			respond.Error(writer, request, validate.ErrInvalidJSON)
			return
		}

		id, err := handler.service.CreateNode(request.Context(), depth, CreateNodeInput{
			ParentID:    input.ParentID,
			Name:        input.Name,
			Description: input.Description,
			Image:       input.Image,
		})
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		respond.Created(writer, fmt.Sprintf("Level %d entry created successfully", depth), id)
	}
}

/*
listRoots lists every root-level entry.

GET /api/dislevel1

Response:
  - 200: {success, data: [...]}
*/
func (handler *Handler) listRoots(writer http.ResponseWriter, request *http.Request) {
	nodes, err := handler.service.ListRoots(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Data(writer, nodes)
}

/*
listChildren builds the display handler for one non-root level.

POST /api/dislevel{N}

Request:
  - Body: listChildrenRequest (id = parent identifier)

Response:
  - 200: {success, data: [...]} (empty list when the parent has no children)
  - 400: Missing id
*/
func (handler *Handler) listChildren(depth int) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		var input listChildrenRequest

		if err := requestutil.DecodeJSON(request, &input); err != nil {
			respond.Error(writer, request, validate.ErrInvalidJSON)
			return
		}

		nodes, err := handler.service.ListChildren(request.Context(), depth, input.ID)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		respond.Data(writer, nodes)
	}
}
