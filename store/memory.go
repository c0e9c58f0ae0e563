package store

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"slices"
	"sort"
	"sync"
)

// Memory is a Persistence kept in process memory. It is safe for concurrent use.
type Memory struct {
	mu    sync.RWMutex
	views map[string]GridViewRecord
	runs  map[string]RunRecord
	order map[string]int
	seq   int
}

var _ Persistence = (*Memory)(nil)

// NewMemory returns an empty Memory store.
func NewMemory() *Memory {
	return &Memory{
		views: make(map[string]GridViewRecord),
		runs:  make(map[string]RunRecord),
		order: make(map[string]int),
	}
}

// SaveGridView upserts rec.
func (m *Memory) SaveGridView(ctx context.Context, rec GridViewRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.views[rec.ID] = cloneView(rec)
	return nil
}

// LoadGridView returns the grid view with the given id or ErrNotFound.
func (m *Memory) LoadGridView(ctx context.Context, id string) (GridViewRecord, error) {
	if err := ctx.Err(); err != nil {
		return GridViewRecord{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.views[id]
	if !ok {
		return GridViewRecord{}, fmt.Errorf("LoadGridView(%s): %w", id, ErrNotFound)
	}
	return cloneView(rec), nil
}

// SaveRun upserts rec. Runs keep the position of their first save in ListRuns.
func (m *Memory) SaveRun(ctx context.Context, rec RunRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.order[rec.ID]; !ok {
		m.seq++
		m.order[rec.ID] = m.seq
	}
	m.runs[rec.ID] = cloneRun(rec)
	return nil
}

// LoadRun returns the run with the given id or ErrNotFound.
func (m *Memory) LoadRun(ctx context.Context, id string) (RunRecord, error) {
	if err := ctx.Err(); err != nil {
		return RunRecord{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.runs[id]
	if !ok {
		return RunRecord{}, fmt.Errorf("LoadRun(%s): %w", id, ErrNotFound)
	}
	return cloneRun(rec), nil
}

// ListRuns returns the runs of a grid view in first-save order.
func (m *Memory) ListRuns(ctx context.Context, gridViewID string) ([]RunRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []RunRecord
	for _, rec := range m.runs {
		if rec.GridViewID == gridViewID {
			out = append(out, cloneRun(rec))
		}
	}
	sort.Slice(out, func(i, j int) bool { return m.order[out[i].ID] < m.order[out[j].ID] })
	return out, nil
}

// DeleteRuns removes every run of a grid view.
func (m *Memory) DeleteRuns(ctx context.Context, gridViewID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, rec := range m.runs {
		if rec.GridViewID == gridViewID {
			delete(m.runs, id)
			delete(m.order, id)
		}
	}
	return nil
}

// Close is a no-op.
func (m *Memory) Close() error { return nil }

func cloneView(rec GridViewRecord) GridViewRecord {
	rec.Compressed = append([]byte(nil), rec.Compressed...)
	rec.Index = append([]byte(nil), rec.Index...)
	return rec
}

func cloneRun(rec RunRecord) RunRecord {
	rec.Params = maps.Clone(rec.Params)
	rec.Matrix = bytes.Clone(rec.Matrix)
	rec.Index = bytes.Clone(rec.Index)
	rec.Scalars = maps.Clone(rec.Scalars)
	if rec.Vectors != nil {
		vectors := make(map[string][]float64, len(rec.Vectors))
		for k, v := range rec.Vectors {
			vectors[k] = slices.Clone(v)
		}
		rec.Vectors = vectors
	}
	return rec
}
