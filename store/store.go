package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("store: record not found")

// GridViewRecord is the persisted form of a grid view.
type GridViewRecord struct {
	ID     string
	Stage  int
	Status int
	// Compressed is the compressed matrix in the matrix array format, nil before compression.
	Compressed []byte
	// Index is the presence index in the JSON index format, nil before compression.
	Index []byte
}

// RunRecord is the persisted form of one randomization run.
type RunRecord struct {
	ID         string
	GridViewID string
	Method     int
	Params     map[string]any
	Stage      int
	Status     int
	ErrorCode  int
	Matrix     []byte
	Index      []byte
	Vectors    map[string][]float64
	Scalars    map[string]float64
}

// Persistence saves and loads grid views and their runs.
// Save operations upsert by ID. DeleteRuns removes every run of a grid view
// and succeeds when there is nothing to delete.
type Persistence interface {
	SaveGridView(ctx context.Context, rec GridViewRecord) error
	LoadGridView(ctx context.Context, id string) (GridViewRecord, error)
	SaveRun(ctx context.Context, rec RunRecord) error
	LoadRun(ctx context.Context, id string) (RunRecord, error)
	ListRuns(ctx context.Context, gridViewID string) ([]RunRecord, error)
	DeleteRuns(ctx context.Context, gridViewID string) error
	Close() error
}
