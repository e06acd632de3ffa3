// Copyright (c) 2026 Kreeda. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"

	"github.com/taibuivan/kreeda/internal/platform/database/schema"
)

// # Catalog Data Access

// Repository defines the data access contract shared by all ten level tables.
type Repository interface {

	/*
		Insert persists a new node into the level's table and returns the
		generated identifier. For levels with a parent link the node's
		ParentID must be set; parent existence is enforced by the foreign key.

		Parameters:
		  - context: context.Context
		  - level: schema.CatalogLevelTable
		  - node: *Node

		Returns:
		  - int64: Generated id
		  - error: Validation (FK) or persistence failures
	*/
	Insert(context context.Context, level schema.CatalogLevelTable, node *Node) (int64, error)

	/*
		ListRoots returns every node of the root level (full-table scan).

		Parameters:
		  - context: context.Context

		Returns:
		  - []*Node: All root nodes, possibly empty
		  - error: Database retrieval failures
	*/
	ListRoots(context context.Context) ([]*Node, error)

	/*
		ListChildren returns the nodes of the given level whose p_id matches
		parentID. A parent with no children yields an empty slice, not an error.

		Parameters:
		  - context: context.Context
		  - level: schema.CatalogLevelTable (must have a parent link)
		  - parentID: int64

		Returns:
		  - []*Node: Matching nodes, possibly empty
		  - error: Database retrieval failures
	*/
	ListChildren(context context.Context, level schema.CatalogLevelTable, parentID int64) ([]*Node, error)
}
