package store

import (
	"context"
	"errors"
	"time"

	"github.com/dharanetra/dhara/internal/soil"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("store: not found")

// QueryOpts configures history queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	Kind    soil.Kind // "" = any
	Project string    // project name, "" = any
	From    time.Time // created_at >= From
	To      time.Time // created_at <= To
}

// Record is one stored classification.
type Record struct {
	ID        string
	Sequence  int64
	Project   string
	Label     string
	Kind      soil.Kind
	Code      string
	Sample    soil.Sample
	Result    *soil.Result
	CreatedAt time.Time
}

// Project groups records taken for one site or job.
type Project struct {
	ID        int64
	Name      string
	Location  string
	Notes     string
	CreatedAt time.Time
}

// HistoryRepo stores classification results.
type HistoryRepo interface {
	// Append stores a record. ID, Sequence and CreatedAt are assigned when
	// empty; Kind and Code are taken from Result. A non-empty Project is
	// created on first use.
	Append(ctx context.Context, rec *Record) error

	// Get returns the record with the given ID or ErrNotFound.
	Get(ctx context.Context, id string) (*Record, error)

	// List returns matching records, newest first.
	List(ctx context.Context, opts QueryOpts) ([]Record, error)

	// Clear deletes every record and returns how many were removed.
	Clear(ctx context.Context) (int64, error)
}

// ProjectRepo manages projects.
type ProjectRepo interface {
	// Ensure returns the project with the given name, creating it if needed.
	Ensure(ctx context.Context, name string) (*Project, error)

	// List returns all projects ordered by name.
	List(ctx context.Context) ([]Project, error)
}
