// Package sqlite implements store.Persistence on an embedded SQLite database
// through the pure-Go modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/katalvlaran/pamsum/store"
)

// schema.sql creates the grid_views and randomization_runs tables.
//
//go:embed schema.sql
var schemaSQL string

var pragmas = []string{
	"PRAGMA busy_timeout = 5000",
	"PRAGMA synchronous = NORMAL",
}

// Store is a store.Persistence backed by SQLite.
type Store struct {
	db *sql.DB
}

var _ store.Persistence = (*Store)(nil)

// Open opens (creating if needed) the database at path and applies the schema.
// Use ":memory:" for a private in-memory database.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite.Open(%s): %w", path, err)
	}
	if path == ":memory:" {
		// every pooled connection would otherwise see its own empty database.
		db.SetMaxOpenConns(1)
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			db.Close()
			return nil, fmt.Errorf("sqlite.Open: %s: %w", p, err)
		}
	}
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite.Open: apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// DB exposes the underlying handle for inspection.
func (s *Store) DB() *sql.DB { return s.db }

// Close closes the database.
func (s *Store) Close() error { return s.db.Close() }

// SaveGridView upserts rec.
func (s *Store) SaveGridView(ctx context.Context, rec store.GridViewRecord) error {
	const q = `
		INSERT INTO grid_views (id, stage, status, compressed, presence_index)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			stage = excluded.stage,
			status = excluded.status,
			compressed = excluded.compressed,
			presence_index = excluded.presence_index,
			updated_at = UNIXEPOCH('subsec')
	`
	if _, err := s.db.ExecContext(ctx, q, rec.ID, rec.Stage, rec.Status, rec.Compressed, rec.Index); err != nil {
		return fmt.Errorf("SaveGridView(%s): %w", rec.ID, err)
	}
	return nil
}

// LoadGridView returns the grid view with the given id or store.ErrNotFound.
func (s *Store) LoadGridView(ctx context.Context, id string) (store.GridViewRecord, error) {
	const q = `SELECT id, stage, status, compressed, presence_index FROM grid_views WHERE id = ?`
	var rec store.GridViewRecord
	err := s.db.QueryRowContext(ctx, q, id).Scan(&rec.ID, &rec.Stage, &rec.Status, &rec.Compressed, &rec.Index)
	if errors.Is(err, sql.ErrNoRows) {
		return store.GridViewRecord{}, fmt.Errorf("LoadGridView(%s): %w", id, store.ErrNotFound)
	}
	if err != nil {
		return store.GridViewRecord{}, fmt.Errorf("LoadGridView(%s): %w", id, err)
	}
	return rec, nil
}

// SaveRun upserts rec. A run keeps its first-save position in ListRuns.
func (s *Store) SaveRun(ctx context.Context, rec store.RunRecord) error {
	params, err := marshalMap(rec.Params)
	if err != nil {
		return fmt.Errorf("SaveRun(%s): params: %w", rec.ID, err)
	}
	if params == nil {
		params = "{}"
	}
	vectors, err := marshalMap(rec.Vectors)
	if err != nil {
		return fmt.Errorf("SaveRun(%s): vectors: %w", rec.ID, err)
	}
	scalars, err := marshalMap(rec.Scalars)
	if err != nil {
		return fmt.Errorf("SaveRun(%s): scalars: %w", rec.ID, err)
	}

	const q = `
		INSERT INTO randomization_runs
			(id, grid_view_id, seq, method, params, stage, status, error_code,
			 matrix, presence_index, vectors, scalars)
		VALUES (?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM randomization_runs), ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			grid_view_id = excluded.grid_view_id,
			method = excluded.method,
			params = excluded.params,
			stage = excluded.stage,
			status = excluded.status,
			error_code = excluded.error_code,
			matrix = excluded.matrix,
			presence_index = excluded.presence_index,
			vectors = excluded.vectors,
			scalars = excluded.scalars,
			updated_at = UNIXEPOCH('subsec')
	`
	_, err = s.db.ExecContext(ctx, q,
		rec.ID, rec.GridViewID, rec.Method, params, rec.Stage, rec.Status, rec.ErrorCode,
		rec.Matrix, rec.Index, vectors, scalars)
	if err != nil {
		return fmt.Errorf("SaveRun(%s): %w", rec.ID, err)
	}
	return nil
}

const runColumns = `id, grid_view_id, method, params, stage, status, error_code,
	matrix, presence_index, vectors, scalars`

// LoadRun returns the run with the given id or store.ErrNotFound.
func (s *Store) LoadRun(ctx context.Context, id string) (store.RunRecord, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM randomization_runs WHERE id = ?`, id)
	rec, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return store.RunRecord{}, fmt.Errorf("LoadRun(%s): %w", id, store.ErrNotFound)
	}
	if err != nil {
		return store.RunRecord{}, fmt.Errorf("LoadRun(%s): %w", id, err)
	}
	return rec, nil
}

// ListRuns returns the runs of a grid view in first-save order.
func (s *Store) ListRuns(ctx context.Context, gridViewID string) ([]store.RunRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+runColumns+` FROM randomization_runs WHERE grid_view_id = ? ORDER BY seq`, gridViewID)
	if err != nil {
		return nil, fmt.Errorf("ListRuns(%s): %w", gridViewID, err)
	}
	defer rows.Close()

	var out []store.RunRecord
	for rows.Next() {
		rec, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("ListRuns(%s): %w", gridViewID, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListRuns(%s): %w", gridViewID, err)
	}
	return out, nil
}

// DeleteRuns removes every run of a grid view.
func (s *Store) DeleteRuns(ctx context.Context, gridViewID string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM randomization_runs WHERE grid_view_id = ?`, gridViewID); err != nil {
		return fmt.Errorf("DeleteRuns(%s): %w", gridViewID, err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (store.RunRecord, error) {
	var (
		rec              store.RunRecord
		params           string
		vectors, scalars sql.NullString
	)
	err := sc.Scan(&rec.ID, &rec.GridViewID, &rec.Method, &params, &rec.Stage, &rec.Status, &rec.ErrorCode,
		&rec.Matrix, &rec.Index, &vectors, &scalars)
	if err != nil {
		return store.RunRecord{}, err
	}
	if err := unmarshalMap(params, &rec.Params); err != nil {
		return store.RunRecord{}, fmt.Errorf("params: %w", err)
	}
	if vectors.Valid {
		if err := unmarshalMap(vectors.String, &rec.Vectors); err != nil {
			return store.RunRecord{}, fmt.Errorf("vectors: %w", err)
		}
	}
	if scalars.Valid {
		if err := unmarshalMap(scalars.String, &rec.Scalars); err != nil {
			return store.RunRecord{}, fmt.Errorf("scalars: %w", err)
		}
	}
	return rec, nil
}

// marshalMap encodes a map column; a nil map is stored as NULL.
func marshalMap[M ~map[string]V, V any](m M) (any, error) {
	if m == nil {
		return nil, nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func unmarshalMap[M ~map[string]V, V any](s string, dst *M) error {
	if s == "" || s == "null" {
		return nil
	}
	return json.Unmarshal([]byte(s), dst)
}
