// Copyright (c) 2026 Kreeda. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog implements the fixed-depth hierarchical sport catalog.

Ten structurally identical tables (level1..level10) form a tree of depth ten:
level 1 rows are roots, every deeper row references a parent one level up via
p_id. One generic repository serves all ten tables, parameterized by the
compile-time level descriptors in the schema package — no table name is ever
interpolated from request input.
*/
package catalog

// Node is a single catalog entry at any level.
type Node struct {
	ID          int64   `json:"id"`
	ParentID    *int64  `json:"p_id,omitempty"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Image       *string `json:"img"`
}

// # Field Identifiers

const (
	FieldParentID    = "p_id"
	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldImage       = "img"
)
