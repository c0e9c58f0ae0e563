package randomize

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/pamsum/core"
	"github.com/katalvlaran/pamsum/matrix"
	"github.com/katalvlaran/pamsum/splotch"
	"github.com/katalvlaran/pamsum/stats"
	"github.com/katalvlaran/pamsum/swap"
)

var (
	// ErrAlreadyComputed is returned by a second Compute without Clear.
	ErrAlreadyComputed = errors.New("randomize: run already computed")
	// ErrInvalidMethod is returned for an unknown randomization method.
	ErrInvalidMethod = errors.New("randomize: invalid method")
	// ErrNotComputed is returned when a result is requested before Compute.
	ErrNotComputed = errors.New("randomize: run not computed")
	// ErrMissingInput is returned when Inputs lack what the method needs.
	ErrMissingInput = errors.New("randomize: missing input")
	// ErrInvalidParam is returned for a parameter of the wrong type.
	ErrInvalidParam = errors.New("randomize: invalid parameter")
)

// Inputs are the read-only matrices a run computes from. Compute never
// mutates them.
type Inputs struct {
	// Compressed and Index are required by MethodNone and MethodSwap.
	Compressed *matrix.Incidence
	Index      *matrix.PresenceIndex

	// Full, Graph and CellSides are required by MethodSplotch. Full has one
	// row per site in Graph vertex order.
	Full      *matrix.Incidence
	Graph     *core.Graph
	CellSides int

	// SiteIDs and LayerIDs label Full's rows and columns when splotch output is
	// recompressed; nil falls back to Index's ids, then to 0..n-1.
	SiteIDs  []int
	LayerIDs []int
}

// Option configures New.
type Option func(*Run)

// WithID sets the run id instead of a fresh UUID.
func WithID(id string) Option {
	return func(r *Run) {
		if id != "" {
			r.id = id
		}
	}
}

// Run is one randomization run and its results.
type Run struct {
	id      string
	method  Method
	params  Params
	results Params

	stage   Stage
	status  Status
	code    int
	err     error
	started bool

	matrix  *matrix.Incidence
	index   *matrix.PresenceIndex
	summary *stats.Summary
}

// New creates a run for method with a copy of params.
// Returns ErrInvalidMethod for an unknown method.
func New(method Method, params Params, opts ...Option) (*Run, error) {
	if !method.Valid() {
		return nil, fmt.Errorf("randomize.New(%d): %w", int(method), ErrInvalidMethod)
	}
	r := &Run{
		id:     uuid.NewString(),
		method: method,
		params: params.Clone(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// ID returns the run id.
func (r *Run) ID() string { return r.id }

// Method returns the randomization method.
func (r *Run) Method() Method { return r.method }

// Stage returns the pipeline stage.
func (r *Run) Stage() Stage { return r.stage }

// Status returns the outcome of the current stage.
func (r *Run) Status() Status { return r.status }

// ErrorCode returns the code of the last failure, CodeNone otherwise.
func (r *Run) ErrorCode() int { return r.code }

// Err returns the last failure, nil otherwise.
func (r *Run) Err() error { return r.err }

// Computed reports whether the run holds a matrix.
func (r *Run) Computed() bool { return r.matrix != nil }

// Summary returns the statistics from Summarize, nil before.
func (r *Run) Summary() *stats.Summary { return r.summary }

// Matrix returns the run's compressed matrix, nil before a successful Compute.
func (r *Run) Matrix() *matrix.Incidence { return r.matrix }

// Index returns the run's presence index, nil before a successful Compute.
func (r *Run) Index() *matrix.PresenceIndex { return r.index }

// Params returns the requested parameters merged with those recorded by Compute.
func (r *Run) Params() Params {
	out := r.params.Clone()
	if out == nil {
		out = make(Params, len(r.results))
	}
	for k, v := range r.results {
		out[k] = v
	}
	return out
}

// Compute produces the run's matrix from in.
//
//   - MethodNone copies the compressed matrix and index; stage CALCULATE.
//   - MethodSwap swap-randomizes the compressed matrix; stage SWAP.
//   - MethodSplotch splotch-randomizes the full matrix and recompresses it
//     with a new index; stage SPLOTCH.
//
// Returns ErrAlreadyComputed when called again before Clear. On any other
// failure the status is ERROR, ErrorCode is set and no matrix is kept.
func (r *Run) Compute(ctx context.Context, in Inputs) error {
	if r.started {
		return fmt.Errorf("Compute(%s): %w", r.id, ErrAlreadyComputed)
	}
	r.started = true
	r.status = StatusComputing

	var (
		m     *matrix.Incidence
		idx   *matrix.PresenceIndex
		stage Stage
		err   error
	)
	switch r.method {
	case MethodNone:
		m, idx, err = r.passThrough(in)
		stage = StageCalculate
	case MethodSwap:
		m, idx, err = r.computeSwap(in)
		stage = StageSwap
	case MethodSplotch:
		m, idx, err = r.computeSplotch(ctx, in)
		stage = StageSplotch
	default:
		err = ErrInvalidMethod
	}
	if err != nil {
		r.fail(err)
		return fmt.Errorf("Compute(%s, %s): %w", r.id, r.method, err)
	}

	r.matrix, r.index = m, idx
	r.stage, r.status = stage, StatusComplete
	return nil
}

func (r *Run) passThrough(in Inputs) (*matrix.Incidence, *matrix.PresenceIndex, error) {
	if in.Compressed == nil || in.Index == nil {
		return nil, nil, fmt.Errorf("compressed matrix and index: %w", ErrMissingInput)
	}
	if err := in.Index.Validate(in.Compressed); err != nil {
		return nil, nil, err
	}
	return in.Compressed.Clone(), in.Index.Clone(), nil
}

func (r *Run) computeSwap(in Inputs) (*matrix.Incidence, *matrix.PresenceIndex, error) {
	if in.Compressed == nil || in.Index == nil {
		return nil, nil, fmt.Errorf("compressed matrix and index: %w", ErrMissingInput)
	}
	if err := in.Index.Validate(in.Compressed); err != nil {
		return nil, nil, err
	}
	opts, err := r.params.swapOptions()
	if err != nil {
		return nil, nil, err
	}
	res, err := swap.Randomize(in.Compressed, opts...)
	if err != nil {
		return nil, nil, err
	}
	r.results = Params(res.Parameters())
	return res.Matrix, in.Index.Clone(), nil
}

func (r *Run) computeSplotch(ctx context.Context, in Inputs) (*matrix.Incidence, *matrix.PresenceIndex, error) {
	if in.Full == nil || in.Graph == nil {
		return nil, nil, fmt.Errorf("full matrix and graph: %w", ErrMissingInput)
	}
	opts, err := r.params.splotchOptions(in.CellSides)
	if err != nil {
		return nil, nil, err
	}
	res, err := splotch.Randomize(ctx, in.Full, in.Graph, opts...)
	if err != nil {
		return nil, nil, err
	}
	siteIDs, layerIDs := in.SiteIDs, in.LayerIDs
	if siteIDs == nil && in.Index != nil {
		siteIDs = in.Index.SiteIDs
	}
	if layerIDs == nil && in.Index != nil {
		layerIDs = in.Index.LayerIDs
	}
	m, idx, err := matrix.Compress(res.Matrix, siteIDs, layerIDs)
	if err != nil {
		return nil, nil, err
	}
	r.results = Params(res.Parameters())
	return m, idx, nil
}

func (r *Run) fail(err error) {
	r.status = StatusError
	r.code = classify(r.method, err)
	r.err = err
	r.matrix, r.index, r.summary = nil, nil, nil
	r.results = nil
}

// classify maps a compute failure to its error code.
func classify(method Method, err error) int {
	switch {
	case errors.Is(err, swap.ErrDegenerateMatrix):
		return CodeSwapTooFew
	case errors.Is(err, splotch.ErrUnreachableTarget), errors.Is(err, splotch.ErrTopology):
		return CodeSplotchNeighbor
	}
	switch method {
	case MethodSwap:
		return CodeSwap
	case MethodSplotch:
		return CodeSplotch
	case MethodNone:
		return CodeCalculate
	}
	return CodeGeneral
}

// Summarize computes summary statistics over the run's matrix and moves the
// run to stage COMPLETE. Returns ErrNotComputed before a successful Compute.
// On failure the run is ERROR with CodeCalculate and drops its matrix and index.
func (r *Run) Summarize() (*stats.Summary, error) {
	if r.matrix == nil {
		return nil, fmt.Errorf("Summarize(%s): %w", r.id, ErrNotComputed)
	}
	s, err := stats.Summarize(r.matrix)
	if err != nil {
		r.status, r.code, r.err = StatusError, CodeCalculate, err
		r.matrix, r.index, r.summary = nil, nil, nil
		return nil, fmt.Errorf("Summarize(%s): %w", r.id, err)
	}
	r.summary = s
	r.stage, r.status = StageComplete, StatusComplete
	return s, nil
}

// Clear drops matrix, index and summary and returns the run to GENERAL so it
// may be computed again. It is idempotent.
func (r *Run) Clear() {
	r.matrix, r.index, r.summary = nil, nil, nil
	r.results = nil
	r.stage, r.status = StageGeneral, StatusGeneral
	r.code, r.err = CodeNone, nil
	r.started = false
}
