// Copyright (c) 2026 Kreeda. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

import "fmt"

// CatalogDepth is the fixed depth of the catalog tree.
const CatalogDepth = 10

// CatalogLevelTable describes one of the ten parallel catalog tables.
//
// # Why ten tables instead of one self-referential table?
//
// Each level may later acquire level-specific columns, so the levels evolve
// independently. The descriptor keeps the storage layer generic: one
// repository serves all ten tables, parameterized by this value.
type CatalogLevelTable struct {
	Table       string
	Depth       int
	HasParent   bool
	ID          string
	ParentID    string
	Name        string
	Description string
	Image       string
}

// CatalogLevels holds the descriptors for catalog.level1 .. catalog.level10,
// indexed by depth-1. Level 1 is the root level and carries no parent link.
var CatalogLevels = buildCatalogLevels()

// CatalogLevel returns the descriptor for the given depth (1..CatalogDepth).
func CatalogLevel(depth int) (CatalogLevelTable, error) {
	if depth < 1 || depth > CatalogDepth {
		return CatalogLevelTable{}, fmt.Errorf("schema: catalog depth %d out of range [1,%d]", depth, CatalogDepth)
	}
	return CatalogLevels[depth-1], nil
}

// Columns returns all standard column names
func (t CatalogLevelTable) Columns() []string {
	if t.HasParent {
		return []string{t.ID, t.ParentID, t.Name, t.Description, t.Image}
	}
	return []string{t.ID, t.Name, t.Description, t.Image}
}

func buildCatalogLevels() [CatalogDepth]CatalogLevelTable {
	var levels [CatalogDepth]CatalogLevelTable
	for i := range levels {
		depth := i + 1
		levels[i] = CatalogLevelTable{
			Table:       fmt.Sprintf("catalog.level%d", depth),
			Depth:       depth,
			HasParent:   depth > 1,
			ID:          "id",
			ParentID:    "p_id",
			Name:        "name",
			Description: "description",
			Image:       "img",
		}
	}
	return levels
}
