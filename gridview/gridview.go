package gridview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pamsum/config"
	"github.com/katalvlaran/pamsum/core"
	"github.com/katalvlaran/pamsum/gridgraph"
	"github.com/katalvlaran/pamsum/matrix"
	"github.com/katalvlaran/pamsum/randomize"
	"github.com/katalvlaran/pamsum/rng"
	"github.com/katalvlaran/pamsum/store"
	"github.com/katalvlaran/pamsum/swap"
)

var (
	// ErrStage is returned when an operation is called out of pipeline order.
	ErrStage = errors.New("gridview: operation not allowed at current stage")
	// ErrOriginalExists is returned by a second AddOriginal.
	ErrOriginalExists = errors.New("gridview: original run already exists")
	// ErrNilGrid is returned by New without a grid.
	ErrNilGrid = errors.New("gridview: grid is nil")
)

// seedMask keeps derived run seeds exact when params round-trip through JSON.
const seedMask = 1<<53 - 1

// GridView is one site grid, its layers, matrices and runs.
type GridView struct {
	id     string
	grid   *gridgraph.GridGraph
	graph  *core.Graph
	layers LayerSet

	store  store.Persistence
	logger *log.Logger
	cfg    config.Config

	stage  randomize.Stage
	status randomize.Status
	code   int

	full       *matrix.Incidence
	compressed *matrix.Incidence
	index      *matrix.PresenceIndex

	original   *randomize.Run
	randomized []*randomize.Run
}

// New creates a grid view at stage GENERAL. The splotch adjacency is the
// grid's contiguity graph.
func New(grid *gridgraph.GridGraph, layers LayerSet, opts ...Option) (*GridView, error) {
	if grid == nil {
		return nil, fmt.Errorf("gridview.New: %w", ErrNilGrid)
	}
	gv := &GridView{
		id:     uuid.NewString(),
		grid:   grid,
		graph:  grid.ContiguityGraph(),
		layers: layers,
		logger: log.NewWithOptions(io.Discard, log.Options{}),
		cfg:    config.Default(),
	}
	for _, opt := range opts {
		opt(gv)
	}
	return gv, nil
}

// ID returns the grid view id.
func (gv *GridView) ID() string { return gv.id }

// Stage returns the last successful pipeline stage.
func (gv *GridView) Stage() randomize.Stage { return gv.stage }

// Status returns the outcome of the current stage.
func (gv *GridView) Status() randomize.Status { return gv.status }

// ErrorCode returns the code of the last failed stage, CodeNone otherwise.
func (gv *GridView) ErrorCode() int { return gv.code }

// Sites returns the sites in row order.
func (gv *GridView) Sites() []gridgraph.Site { return gv.grid.Sites() }

// Layers returns the layer set.
func (gv *GridView) Layers() LayerSet { return gv.layers }

// Full returns the uncompressed matrix, nil before Intersect.
func (gv *GridView) Full() *matrix.Incidence { return gv.full }

// Compressed returns the compressed matrix, nil before Compress.
func (gv *GridView) Compressed() *matrix.Incidence { return gv.compressed }

// Index returns the presence index, nil before Compress.
func (gv *GridView) Index() *matrix.PresenceIndex { return gv.index }

// Original returns the original run, nil when none was added.
func (gv *GridView) Original() *randomize.Run { return gv.original }

// Randomized returns the randomized runs in the order they were added.
func (gv *GridView) Randomized() []*randomize.Run {
	return append([]*randomize.Run(nil), gv.randomized...)
}

// Intersect builds the full matrix through x. It runs once, at stage GENERAL;
// when persisting fails the grid view stays at GENERAL. Returns matrix.ErrShape when x returns a matrix of the wrong shape.
func (gv *GridView) Intersect(ctx context.Context, x Intersector) error {
	if gv.stage != randomize.StageGeneral {
		return fmt.Errorf("Intersect(%s) at %s: %w", gv.id, gv.stage, ErrStage)
	}
	sites := gv.grid.Sites()
	full, err := x.Intersect(ctx, sites, gv.layers)
	if err != nil {
		gv.status, gv.code = randomize.StatusError, randomize.CodeIntersect
		return fmt.Errorf("Intersect(%s): %w", gv.id, err)
	}
	if full == nil || full.Rows() != len(sites) || full.Cols() != gv.layers.Len() {
		gv.status, gv.code = randomize.StatusError, randomize.CodeIntersect
		return fmt.Errorf("Intersect(%s): intersector result: %w", gv.id, matrix.ErrShape)
	}
	gv.full = full
	gv.stage, gv.status, gv.code = randomize.StageIntersect, randomize.StatusComplete, randomize.CodeNone
	if err := gv.persist(ctx); err != nil {
		gv.full = nil
		gv.stage, gv.status, gv.code = randomize.StageGeneral, randomize.StatusError, randomize.CodeIntersect
		return err
	}
	gv.logger.Info("intersected", "gridview", gv.id, "sites", full.Rows(), "layers", full.Cols(), "presences", full.Count())
	return nil
}

// Compress drops empty sites and layers from the full matrix. It runs once
// after Intersect. When persisting fails the grid view stays at INTERSECT.
func (gv *GridView) Compress(ctx context.Context) error {
	if gv.stage != randomize.StageIntersect {
		return fmt.Errorf("Compress(%s) at %s: %w", gv.id, gv.stage, ErrStage)
	}
	m, idx, err := matrix.Compress(gv.full, gv.grid.SiteIDs(), gv.layers.IDs())
	if err != nil {
		gv.status, gv.code = randomize.StatusError, randomize.CodeCompress
		return fmt.Errorf("Compress(%s): %w", gv.id, err)
	}
	gv.compressed, gv.index = m, idx
	gv.stage, gv.status, gv.code = randomize.StageCompress, randomize.StatusComplete, randomize.CodeNone
	if err := gv.persist(ctx); err != nil {
		gv.compressed, gv.index = nil, nil
		gv.stage, gv.status, gv.code = randomize.StageIntersect, randomize.StatusError, randomize.CodeCompress
		return err
	}
	gv.logger.Info("compressed", "gridview", gv.id, "sites", m.Rows(), "layers", m.Cols())
	return nil
}

// AddOriginal adds the pass-through run of the observed matrix.
// Returns ErrOriginalExists when one was already added.
func (gv *GridView) AddOriginal() (*randomize.Run, error) {
	if gv.stage != randomize.StageCompress {
		return nil, fmt.Errorf("AddOriginal(%s) at %s: %w", gv.id, gv.stage, ErrStage)
	}
	if gv.original != nil {
		return nil, fmt.Errorf("AddOriginal(%s): %w", gv.id, ErrOriginalExists)
	}
	run, err := randomize.New(randomize.MethodNone, nil)
	if err != nil {
		return nil, err
	}
	gv.original = run
	return run, nil
}

// AddRandomized adds a swap or splotch run. Params missing from params are
// filled from the configuration; without an explicit seed each run gets its
// own seed derived from the configured runs seed, or rng.DefaultSeed when unset.
func (gv *GridView) AddRandomized(method randomize.Method, params randomize.Params) (*randomize.Run, error) {
	if gv.stage != randomize.StageCompress {
		return nil, fmt.Errorf("AddRandomized(%s) at %s: %w", gv.id, gv.stage, ErrStage)
	}
	if method != randomize.MethodSwap && method != randomize.MethodSplotch {
		return nil, fmt.Errorf("AddRandomized(%s, %s): %w", gv.id, method, randomize.ErrInvalidMethod)
	}
	run, err := randomize.New(method, gv.defaults(method, params))
	if err != nil {
		return nil, err
	}
	gv.randomized = append(gv.randomized, run)
	return run, nil
}

func (gv *GridView) defaults(method randomize.Method, params randomize.Params) randomize.Params {
	out := params.Clone()
	if out == nil {
		out = randomize.Params{}
	}
	setDefault := func(key string, v any) {
		if _, ok := out[key]; !ok {
			out[key] = v
		}
	}

	switch method {
	case randomize.MethodSwap:
		_, hasIter := out[randomize.ParamIterations]
		_, hasTarget := out[randomize.ParamTargetSwaps]
		if !hasIter && !hasTarget {
			if gv.cfg.Swap.TargetSwaps > 0 {
				out[randomize.ParamTargetSwaps] = gv.cfg.Swap.TargetSwaps
			} else {
				out[randomize.ParamIterations] = gv.cfg.Swap.Iterations
			}
		}
		setDefault(randomize.ParamMaxTriesWithoutSwap, gv.cfg.Swap.MaxTriesWithoutSwap)
	case randomize.MethodSplotch:
		setDefault(randomize.ParamWorkers, gv.cfg.Splotch.Workers)
	}
	parent := gv.cfg.Runs.Seed
	if parent == 0 {
		parent = rng.DefaultSeed
	}
	setDefault(randomize.ParamSeed, rng.DeriveSeed(parent, uint64(len(gv.randomized)))&seedMask)
	return out
}

// ComputeRuns computes every pending run, original included, with up to
// the configured number of runs in flight. Each run reads its own copy of
// the matrices. Completed runs are summarized and, like failed ones,
// persisted. Returns the first error; the other runs still complete.
func (gv *GridView) ComputeRuns(ctx context.Context) error {
	if gv.stage != randomize.StageCompress {
		return fmt.Errorf("ComputeRuns(%s) at %s: %w", gv.id, gv.stage, ErrStage)
	}
	var pending []*randomize.Run
	if gv.original != nil && gv.original.Status() == randomize.StatusGeneral {
		pending = append(pending, gv.original)
	}
	for _, r := range gv.randomized {
		if r.Status() == randomize.StatusGeneral {
			pending = append(pending, r)
		}
	}

	workers := gv.cfg.Runs.Workers
	if workers <= 0 {
		workers = 1
	}
	var g errgroup.Group
	g.SetLimit(workers)
	for _, run := range pending {
		in := gv.inputs()
		g.Go(func() error { return gv.computeRun(ctx, run, in) })
	}
	return g.Wait()
}

func (gv *GridView) inputs() randomize.Inputs {
	return randomize.Inputs{
		Compressed: gv.compressed.Clone(),
		Index:      gv.index.Clone(),
		Full:       gv.full.Clone(),
		Graph:      gv.graph,
		CellSides:  gv.grid.CellSides(),
		SiteIDs:    gv.grid.SiteIDs(),
		LayerIDs:   gv.layers.IDs(),
	}
}

func (gv *GridView) computeRun(ctx context.Context, run *randomize.Run, in randomize.Inputs) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	logger := gv.logger.With("run", run.ID(), "method", run.Method())
	start := time.Now()

	err := run.Compute(ctx, in)
	if err == nil {
		_, err = run.Summarize()
	}
	if gv.store != nil {
		if serr := run.Save(ctx, gv.store, gv.id); serr != nil && err == nil {
			err = serr
		}
	}
	elapsed := time.Since(start).Round(time.Millisecond)
	if err != nil {
		logger.Error("run failed", "code", run.ErrorCode(), "err", err, "duration", elapsed)
		return err
	}

	kv := []any{"duration", elapsed}
	if swaps, ok := run.Params()[swap.ParamSwapsPerformed]; ok {
		kv = append(kv, "swaps", swaps)
	}
	logger.Info("run complete", kv...)
	return nil
}

// Rollback discards every run and the compressed matrix and returns to
// stage INTERSECT, status GENERAL. Persisted runs are deleted first; if that
// fails nothing changes.
func (gv *GridView) Rollback(ctx context.Context) error {
	if gv.full == nil {
		return fmt.Errorf("Rollback(%s) at %s: %w", gv.id, gv.stage, ErrStage)
	}
	if gv.store != nil {
		if err := gv.store.DeleteRuns(ctx, gv.id); err != nil {
			return fmt.Errorf("Rollback(%s): %w", gv.id, err)
		}
	}
	gv.original, gv.randomized = nil, nil
	gv.compressed, gv.index = nil, nil
	gv.stage, gv.status, gv.code = randomize.StageIntersect, randomize.StatusGeneral, randomize.CodeNone
	gv.logger.Info("rolled back", "gridview", gv.id)
	return gv.persist(ctx)
}

// Record returns the persisted form of the grid view.
func (gv *GridView) Record() (store.GridViewRecord, error) {
	rec := store.GridViewRecord{
		ID:     gv.id,
		Stage:  int(gv.stage),
		Status: int(gv.status),
	}
	if gv.compressed != nil {
		b, err := gv.compressed.MarshalBinary()
		if err != nil {
			return store.GridViewRecord{}, fmt.Errorf("Record(%s): %w", gv.id, err)
		}
		rec.Compressed = b
	}
	if gv.index != nil {
		b, err := json.Marshal(gv.index)
		if err != nil {
			return store.GridViewRecord{}, fmt.Errorf("Record(%s): %w", gv.id, err)
		}
		rec.Index = b
	}
	return rec, nil
}

func (gv *GridView) persist(ctx context.Context) error {
	if gv.store == nil {
		return nil
	}
	rec, err := gv.Record()
	if err != nil {
		return err
	}
	if err := gv.store.SaveGridView(ctx, rec); err != nil {
		return fmt.Errorf("persist(%s): %w", gv.id, err)
	}
	return nil
}
