// Copyright (c) 2026 Kreeda. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kreeda/internal/catalog"
	"github.com/taibuivan/kreeda/internal/platform/apperr"
	"github.com/taibuivan/kreeda/internal/platform/database/schema"
)

// fakeRepository records inserts and serves canned listings per level depth.
type fakeRepository struct {
	nextID       int64
	inserted     []*catalog.Node
	insertedAt   []int
	childrenByID map[int64][]*catalog.Node
	roots        []*catalog.Node
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		nextID:       100,
		childrenByID: make(map[int64][]*catalog.Node),
	}
}

func (repo *fakeRepository) Insert(_ context.Context, level schema.CatalogLevelTable, node *catalog.Node) (int64, error) {
	repo.nextID++
	node.ID = repo.nextID
	repo.inserted = append(repo.inserted, node)
	repo.insertedAt = append(repo.insertedAt, level.Depth)
	return repo.nextID, nil
}

func (repo *fakeRepository) ListRoots(_ context.Context) ([]*catalog.Node, error) {
	if repo.roots == nil {
		return []*catalog.Node{}, nil
	}
	return repo.roots, nil
}

func (repo *fakeRepository) ListChildren(_ context.Context, _ schema.CatalogLevelTable, parentID int64) ([]*catalog.Node, error) {
	children, ok := repo.childrenByID[parentID]
	if !ok {
		return []*catalog.Node{}, nil
	}
	return children, nil
}

/*
TestService_CreateNode_Root verifies root creation: no parent link, trimmed
name, blank optionals collapse to nil.
*/
func TestService_CreateNode_Root(t *testing.T) {
	repo := newFakeRepository()
	service := catalog.NewService(repo)

	id, err := service.CreateNode(context.Background(), 1, catalog.CreateNodeInput{
		Name:        "  Cricket  ",
		Description: "   ",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(101), id)

	require.Len(t, repo.inserted, 1)
	node := repo.inserted[0]
	assert.Equal(t, "Cricket", node.Name)
	assert.Nil(t, node.ParentID)
	assert.Nil(t, node.Description)
	assert.Nil(t, node.Image)
	assert.Equal(t, 1, repo.insertedAt[0])
}

/*
TestService_CreateNode_Child verifies that non-root levels require and carry
the parent identifier.
*/
func TestService_CreateNode_Child(t *testing.T) {
	repo := newFakeRepository()
	service := catalog.NewService(repo)

	id, err := service.CreateNode(context.Background(), 4, catalog.CreateNodeInput{
		ParentID:    7,
		Name:        "Under-19",
		Description: "Junior bracket",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(101), id)

	node := repo.inserted[0]
	require.NotNil(t, node.ParentID)
	assert.Equal(t, int64(7), *node.ParentID)
	require.NotNil(t, node.Description)
	assert.Equal(t, "Junior bracket", *node.Description)
	assert.Equal(t, 4, repo.insertedAt[0])
}

/*
TestService_CreateNode_Validation covers missing name, missing p_id on child
levels, and out-of-range depths.
*/
func TestService_CreateNode_Validation(t *testing.T) {
	tests := []struct {
		name  string
		depth int
		input catalog.CreateNodeInput
	}{
		{"missing_name", 1, catalog.CreateNodeInput{}},
		{"whitespace_name", 1, catalog.CreateNodeInput{Name: "   "}},
		{"child_missing_parent", 2, catalog.CreateNodeInput{Name: "Batting"}},
		{"depth_zero", 0, catalog.CreateNodeInput{Name: "X", ParentID: 1}},
		{"depth_beyond_max", 11, catalog.CreateNodeInput{Name: "X", ParentID: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepository()
			service := catalog.NewService(repo)

			_, err := service.CreateNode(context.Background(), tt.depth, tt.input)
			require.Error(t, err)
			assert.Empty(t, repo.inserted)
		})
	}
}

/*
TestService_CreateNode_RootIgnoresParent verifies that a stray p_id on a root
create neither fails nor stores a parent link.
*/
func TestService_CreateNode_RootIgnoresParent(t *testing.T) {
	repo := newFakeRepository()
	service := catalog.NewService(repo)

	_, err := service.CreateNode(context.Background(), 1, catalog.CreateNodeInput{
		ParentID: 99,
		Name:     "Football",
	})
	require.NoError(t, err)
	assert.Nil(t, repo.inserted[0].ParentID)
}

/*
TestService_ListChildren verifies the parent filter and the empty-list
behavior for childless parents.
*/
func TestService_ListChildren(t *testing.T) {
	repo := newFakeRepository()
	repo.childrenByID[7] = []*catalog.Node{
		{ID: 21, Name: "Spin"},
		{ID: 22, Name: "Pace"},
	}
	service := catalog.NewService(repo)

	nodes, err := service.ListChildren(context.Background(), 3, 7)
	require.NoError(t, err)
	assert.Len(t, nodes, 2)

	// A parent with no children yields an empty list, not an error.
	nodes, err = service.ListChildren(context.Background(), 3, 999)
	require.NoError(t, err)
	assert.NotNil(t, nodes)
	assert.Empty(t, nodes)
}

/*
TestService_ListChildren_Validation covers the missing id and the root level
having no parent filter at all.
*/
func TestService_ListChildren_Validation(t *testing.T) {
	repo := newFakeRepository()
	service := catalog.NewService(repo)

	_, err := service.ListChildren(context.Background(), 3, 0)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperr.As(err).HTTPStatus)

	_, err = service.ListChildren(context.Background(), 1, 7)
	require.Error(t, err)
}

/*
TestService_ListRoots verifies the pass-through of the root listing.
*/
func TestService_ListRoots(t *testing.T) {
	repo := newFakeRepository()
	repo.roots = []*catalog.Node{{ID: 1, Name: "Cricket"}}
	service := catalog.NewService(repo)

	nodes, err := service.ListRoots(context.Background())
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, "Cricket", nodes[0].Name)
}
