package randomize

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/pamsum/matrix"
	"github.com/katalvlaran/pamsum/stats"
	"github.com/katalvlaran/pamsum/store"
)

// Record returns the persisted form of the run under gridViewID.
func (r *Run) Record(gridViewID string) (store.RunRecord, error) {
	rec := store.RunRecord{
		ID:         r.id,
		GridViewID: gridViewID,
		Method:     int(r.method),
		Params:     r.Params(),
		Stage:      int(r.stage),
		Status:     int(r.status),
		ErrorCode:  r.code,
	}
	if r.matrix != nil {
		b, err := r.matrix.MarshalBinary()
		if err != nil {
			return store.RunRecord{}, fmt.Errorf("Record(%s): %w", r.id, err)
		}
		rec.Matrix = b
	}
	if r.index != nil {
		b, err := json.Marshal(r.index)
		if err != nil {
			return store.RunRecord{}, fmt.Errorf("Record(%s): %w", r.id, err)
		}
		rec.Index = b
	}
	if r.summary != nil {
		rec.Vectors = r.summary.Vectors()
		rec.Scalars = r.summary.Scalars()
	}
	return rec, nil
}

// Save persists the run under gridViewID.
func (r *Run) Save(ctx context.Context, p store.Persistence, gridViewID string) error {
	rec, err := r.Record(gridViewID)
	if err != nil {
		return err
	}
	if err := p.SaveRun(ctx, rec); err != nil {
		return fmt.Errorf("Save(%s): %w", r.id, err)
	}
	return nil
}

// FromRecord restores a run from its persisted form. The matrix and index are
// decoded; summary statistics are recomputed when the record carries any.
// A restored run with a matrix counts as computed.
func FromRecord(rec store.RunRecord) (*Run, error) {
	r, err := New(Method(rec.Method), nil, WithID(rec.ID))
	if err != nil {
		return nil, fmt.Errorf("FromRecord(%s): %w", rec.ID, err)
	}
	r.results = Params(rec.Params)
	r.stage, r.status, r.code = Stage(rec.Stage), Status(rec.Status), rec.ErrorCode
	r.started = r.status != StatusGeneral

	if rec.Matrix != nil {
		m := &matrix.Incidence{}
		if err := m.UnmarshalBinary(rec.Matrix); err != nil {
			return nil, fmt.Errorf("FromRecord(%s): %w", rec.ID, err)
		}
		r.matrix = m
	}
	if rec.Index != nil {
		idx := &matrix.PresenceIndex{}
		if err := json.Unmarshal(rec.Index, idx); err != nil {
			return nil, fmt.Errorf("FromRecord(%s): %w", rec.ID, err)
		}
		r.index = idx
	}
	if r.matrix != nil && rec.Vectors != nil {
		if r.summary, err = stats.Summarize(r.matrix); err != nil {
			return nil, fmt.Errorf("FromRecord(%s): %w", rec.ID, err)
		}
	}
	return r, nil
}
