// Copyright (c) 2026 Kreeda. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/kreeda/internal/platform/database/schema"
	"github.com/taibuivan/kreeda/internal/platform/dberr"
)

// PostgresRepository implements [Repository] for all ten level tables.
//
// SQL text is assembled from the level descriptors only; request values are
// always bound through placeholders.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL implementation of the Repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (repository *PostgresRepository) Insert(context context.Context, level schema.CatalogLevelTable, node *Node) (int64, error) {
	var query string
	var args []interface{}

	if level.HasParent {
		query = fmt.Sprintf(`
			INSERT INTO %s (%s, %s, %s, %s)
			VALUES ($1, $2, $3, $4)
			RETURNING %s`,
			level.Table, level.ParentID, level.Name, level.Description, level.Image,
			level.ID,
		)
		args = []interface{}{node.ParentID, node.Name, node.Description, node.Image}
	} else {
		query = fmt.Sprintf(`
			INSERT INTO %s (%s, %s, %s)
			VALUES ($1, $2, $3)
			RETURNING %s`,
			level.Table, level.Name, level.Description, level.Image,
			level.ID,
		)
		args = []interface{}{node.Name, node.Description, node.Image}
	}

	var id int64
	if err := repository.pool.QueryRow(context, query, args...).Scan(&id); err != nil {
		return 0, dberr.Wrap(err, fmt.Sprintf("catalog_insert_level%d", level.Depth))
	}

	return id, nil
}

func (repository *PostgresRepository) ListRoots(context context.Context) ([]*Node, error) {
	level := schema.CatalogLevels[0]

	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s ORDER BY %s ASC`,
		level.ID, level.Name, level.Description, level.Image,
		level.Table, level.ID,
	)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "catalog_list_roots")
	}
	defer rows.Close()

	nodes := make([]*Node, 0)
	for rows.Next() {
		node := &Node{}
		if err := rows.Scan(&node.ID, &node.Name, &node.Description, &node.Image); err != nil {
			return nil, dberr.Wrap(err, "catalog_scan_root")
		}
		nodes = append(nodes, node)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "catalog_list_roots")
	}

	return nodes, nil
}

func (repository *PostgresRepository) ListChildren(context context.Context, level schema.CatalogLevelTable, parentID int64) ([]*Node, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC`,
		level.ID, level.ParentID, level.Name, level.Description, level.Image,
		level.Table, level.ParentID, level.ID,
	)

	rows, err := repository.pool.Query(context, query, parentID)
	if err != nil {
		return nil, dberr.Wrap(err, fmt.Sprintf("catalog_list_level%d", level.Depth))
	}
	defer rows.Close()

	nodes := make([]*Node, 0)
	for rows.Next() {
		node := &Node{}
		if err := rows.Scan(&node.ID, &node.ParentID, &node.Name, &node.Description, &node.Image); err != nil {
			return nil, dberr.Wrap(err, fmt.Sprintf("catalog_scan_level%d", level.Depth))
		}
		nodes = append(nodes, node)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, fmt.Sprintf("catalog_list_level%d", level.Depth))
	}

	return nodes, nil
}
