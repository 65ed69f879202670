package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// projectRepo implements ProjectRepo with raw SQL.
type projectRepo struct {
	db *sql.DB
}

func (r *projectRepo) Ensure(ctx context.Context, name string) (*Project, error) {
	return ensureProject(ctx, r.db, name)
}

func (r *projectRepo) List(ctx context.Context) ([]Project, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, location, notes, created_at FROM projects ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	defer rows.Close()

	var out []Project
	for rows.Next() {
		var p Project
		var created int64
		if err := rows.Scan(&p.ID, &p.Name, &p.Location, &p.Notes, &created); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		p.CreatedAt = time.UnixMilli(created).UTC()
		out = append(out, p)
	}
	return out, rows.Err()
}

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func ensureProject(ctx context.Context, q querier, name string) (*Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("project name must not be empty")
	}

	_, err := q.ExecContext(ctx,
		`INSERT OR IGNORE INTO projects (name, created_at) VALUES (?, ?)`,
		name, time.Now().UnixMilli())
	if err != nil {
		return nil, fmt.Errorf("insert project %q: %w", name, err)
	}

	var p Project
	var created int64
	err = q.QueryRowContext(ctx,
		`SELECT id, name, location, notes, created_at FROM projects WHERE name = ?`, name,
	).Scan(&p.ID, &p.Name, &p.Location, &p.Notes, &created)
	if err != nil {
		return nil, fmt.Errorf("load project %q: %w", name, err)
	}
	p.CreatedAt = time.UnixMilli(created).UTC()
	return &p, nil
}
