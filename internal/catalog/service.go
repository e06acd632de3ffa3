// Copyright (c) 2026 Kreeda. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"strings"

	"github.com/taibuivan/kreeda/internal/platform/database/schema"
	"github.com/taibuivan/kreeda/internal/platform/validate"
	"github.com/taibuivan/kreeda/pkg/pointer"
)

// Service implements the catalog use cases for every level.
type Service struct {
	repository Repository
}

// NewService constructs a new [Service] with its repository dependency.
func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

// CreateNodeInput holds the data for a new catalog entry.
type CreateNodeInput struct {
	ParentID    int64
	Name        string
	Description string
	Image       string
}

/*
CreateNode validates and persists a new node at the given depth.

Description: Name is always required; p_id is required exactly when the level
carries a parent link (every level except the root). Parent existence is
delegated to the level table's foreign key.

Parameters:
  - context: context.Context
  - depth: int (1..schema.CatalogDepth)
  - input: CreateNodeInput

Returns:
  - int64: Generated id
  - error: Validation or persistence failures
*/
func (service *Service) CreateNode(context context.Context, depth int, input CreateNodeInput) (int64, error) {
	level, err := schema.CatalogLevel(depth)
	if err != nil {
		return 0, err
	}

	name := strings.TrimSpace(input.Name)

	validator := &validate.Validator{}
	validator.Required(FieldName, name).MaxLen(FieldName, name, 200)
	if level.HasParent {
		validator.RequiredID(FieldParentID, input.ParentID)
	}
	if err := validator.Err(); err != nil {
		return 0, err
	}

	node := &Node{Name: name}
	if level.HasParent {
		node.ParentID = pointer.To(input.ParentID)
	}
	if description := strings.TrimSpace(input.Description); description != "" {
		node.Description = pointer.To(description)
	}
	if image := strings.TrimSpace(input.Image); image != "" {
		node.Image = pointer.To(image)
	}

	return service.repository.Insert(context, level, node)
}

/*
ListRoots returns every entry of the root level.

Parameters:
  - context: context.Context

Returns:
  - []*Node: All root nodes, possibly empty
  - error: Database retrieval failures
*/
func (service *Service) ListRoots(context context.Context) ([]*Node, error) {
	return service.repository.ListRoots(context)
}

/*
ListChildren returns the entries of the given depth under one parent.

Description: An unknown or childless parent yields an empty list, not an
error.

Parameters:
  - context: context.Context
  - depth: int (2..schema.CatalogDepth)
  - parentID: int64

Returns:
  - []*Node: Matching nodes, possibly empty
  - error: Validation (missing id) or database failures
*/
func (service *Service) ListChildren(context context.Context, depth int, parentID int64) ([]*Node, error) {
	level, err := schema.CatalogLevel(depth)
	if err != nil {
		return nil, err
	}

	validator := &validate.Validator{}
	validator.Custom(FieldID, !level.HasParent, "Root level has no parent filter").
		RequiredID(FieldID, parentID)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	return service.repository.ListChildren(context, level, parentID)
}
