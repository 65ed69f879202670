package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dharanetra/dhara/internal/soil"
	"github.com/google/uuid"
)

// historyRepo implements HistoryRepo with raw SQL.
type historyRepo struct {
	db     *sql.DB
	seq    *sequenceCounter
	logger *slog.Logger
}

func (r *historyRepo) Append(ctx context.Context, rec *Record) error {
	if rec.Result == nil {
		return errors.New("append: record has no result")
	}

	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	rec.Sequence = seq
	rec.Kind = rec.Result.Kind
	rec.Code = rec.Result.Code

	sample, err := json.Marshal(rec.Sample)
	if err != nil {
		return fmt.Errorf("marshal sample: %w", err)
	}
	result, err := json.Marshal(rec.Result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	var projectID sql.NullInt64
	if rec.Project != "" {
		p, err := ensureProject(ctx, tx, rec.Project)
		if err != nil {
			return err
		}
		rec.Project = p.Name
		projectID = sql.NullInt64{Int64: p.ID, Valid: true}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO classifications
			(id, sequence, project_id, label, kind, code, sample, result, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Sequence, projectID, rec.Label, string(rec.Kind), rec.Code,
		string(sample), string(result), rec.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("insert classification: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	r.logger.Debug("classification stored", "id", rec.ID, "code", rec.Code, "sequence", rec.Sequence)
	return nil
}

const selectRecord = `SELECT c.id, c.sequence, COALESCE(p.name, ''), c.label, c.kind, c.code,
	c.sample, c.result, c.created_at
FROM classifications c LEFT JOIN projects p ON p.id = c.project_id`

func (r *historyRepo) Get(ctx context.Context, id string) (*Record, error) {
	row := r.db.QueryRowContext(ctx, selectRecord+` WHERE c.id = ?`, id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("classification %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *historyRepo) List(ctx context.Context, opts QueryOpts) ([]Record, error) {
	var where []string
	var args []any
	if opts.Kind != "" {
		where = append(where, "c.kind = ?")
		args = append(args, string(opts.Kind))
	}
	if opts.Project != "" {
		where = append(where, "p.name = ?")
		args = append(args, opts.Project)
	}
	if !opts.From.IsZero() {
		where = append(where, "c.created_at >= ?")
		args = append(args, opts.From.UnixMilli())
	}
	if !opts.To.IsZero() {
		where = append(where, "c.created_at <= ?")
		args = append(args, opts.To.UnixMilli())
	}

	query := selectRecord
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY c.sequence DESC"
	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query classifications: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

func (r *historyRepo) Clear(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM classifications`)
	if err != nil {
		return 0, fmt.Errorf("clear classifications: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	r.logger.Debug("history cleared", "deleted", n)
	return n, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (*Record, error) {
	var (
		rec            Record
		kind           string
		sample, result string
		created        int64
	)
	err := s.Scan(&rec.ID, &rec.Sequence, &rec.Project, &rec.Label, &kind, &rec.Code,
		&sample, &result, &created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan classification: %w", err)
	}

	rec.Kind = soil.Kind(kind)
	rec.CreatedAt = time.UnixMilli(created).UTC()
	if err := json.Unmarshal([]byte(sample), &rec.Sample); err != nil {
		return nil, fmt.Errorf("decode sample of %s: %w", rec.ID, err)
	}
	rec.Result = new(soil.Result)
	if err := json.Unmarshal([]byte(result), rec.Result); err != nil {
		return nil, fmt.Errorf("decode result of %s: %w", rec.ID, err)
	}
	return &rec, nil
}
