package splotch

import (
	"context"
	"fmt"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pamsum/bfs"
	"github.com/katalvlaran/pamsum/core"
	"github.com/katalvlaran/pamsum/matrix"
	"github.com/katalvlaran/pamsum/rng"
)

// ParamCellSides is the parameter key recorded for a splotch randomization.
const ParamCellSides = "cellSides"

// Result is the outcome of Randomize.
type Result struct {
	// Matrix is the randomized uncompressed matrix.
	Matrix *matrix.Incidence
	// Seeds holds the seed site index of each column, -1 where no growth ran.
	Seeds []int
	// CellSides echoes the topology bound used.
	CellSides int
}

// Parameters returns the randomization parameters to record with the run.
func (r *Result) Parameters() map[string]any {
	return map[string]any{ParamCellSides: r.CellSides}
}

// Randomize regrows every column of full as a single contiguous patch of the
// same size over g.
//
// Returns matrix.ErrNilMatrix or ErrNilGraph for nil input, matrix.ErrShape
// when g's vertex count differs from full's row count, ErrTopology for a
// degree above the cell side count, ErrUnreachableTarget when a column cannot
// be grown, ctx.Err() if ctx is done before all columns are scheduled.
func Randomize(ctx context.Context, full *matrix.Incidence, g *core.Graph, opts ...Option) (*Result, error) {
	if full == nil {
		return nil, fmt.Errorf("splotch.Randomize: %w", matrix.ErrNilMatrix)
	}
	if g == nil {
		return nil, fmt.Errorf("splotch.Randomize: %w", ErrNilGraph)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, fmt.Errorf("splotch.Randomize: %w", o.err)
	}
	rows, cols := full.Shape()
	if n := g.VertexCount(); n != rows {
		return nil, fmt.Errorf("splotch.Randomize: graph has %d sites, matrix has %d rows: %w", n, rows, matrix.ErrShape)
	}
	if d := g.MaxDegree(); d > o.CellSides {
		return nil, fmt.Errorf("splotch.Randomize: max degree %d > %d sides: %w", d, o.CellSides, ErrTopology)
	}

	targets := full.ColSums()
	columns := make([][]bool, cols)
	seeds := make([]int, cols)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(o.Workers)
	for j := 0; j < cols; j++ {
		if err := egCtx.Err(); err != nil {
			break
		}
		eg.Go(func() error {
			col, seed, err := growColumn(g, targets[j], rng.Derive(o.Seed, uint64(j)))
			if err != nil {
				return fmt.Errorf("splotch.Randomize: column %d: %w", j, err)
			}
			columns[j], seeds[j] = col, seed
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("splotch.Randomize: %w", err)
	}

	out, err := matrix.NewIncidence(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("splotch.Randomize: %w", err)
	}
	for j, col := range columns {
		if err := out.SetColumn(j, col); err != nil {
			return nil, fmt.Errorf("splotch.Randomize: %w", err)
		}
	}

	return &Result{Matrix: out, Seeds: seeds, CellSides: o.CellSides}, nil
}

// growColumn returns one contiguous patch of target sites and the seed index.
func growColumn(g *core.Graph, target int, r *rand.Rand) ([]bool, int, error) {
	n := g.VertexCount()
	col := make([]bool, n)
	switch {
	case target == 0:
		return col, -1, nil
	case target == n:
		for i := range col {
			col[i] = true
		}
		return col, -1, nil
	}

	seed := r.Intn(n)
	size, err := bfs.ComponentSize(g, seed, nil)
	if err != nil {
		return nil, seed, err
	}
	if size < target {
		return nil, seed, fmt.Errorf("seed %d reaches %d sites, target %d: %w", seed, size, target, ErrUnreachableTarget)
	}

	p := newPatch(g, col)
	p.add(seed)
	cand := make([]int, 0, 8)
	for p.count < target {
		if len(p.frontier) == 0 {
			return nil, seed, fmt.Errorf("frontier exhausted at %d of %d sites: %w", p.count, target, ErrUnreachableTarget)
		}
		u := p.frontier[r.Intn(len(p.frontier))]
		cand = cand[:0]
		for _, v := range g.Neighbors(u) {
			if !col[v] {
				cand = append(cand, v)
			}
		}
		p.add(cand[r.Intn(len(cand))])
	}

	return col, seed, nil
}

// patch tracks the growing region, its unsaturated frontier and the edge
// deficit of every site.
type patch struct {
	g        *core.Graph
	in       []bool
	deficit  []int
	frontier []int
	pos      []int // index into frontier, -1 when absent
	count    int
}

func newPatch(g *core.Graph, in []bool) *patch {
	n := g.VertexCount()
	p := &patch{
		g:       g,
		in:      in,
		deficit: make([]int, n),
		pos:     make([]int, n),
	}
	for i := 0; i < n; i++ {
		p.deficit[i] = g.Degree(i)
		p.pos[i] = -1
	}
	return p
}

// add marks v true, updates neighbour deficits and the frontier.
// Invariant: a site is on the frontier iff it is in the patch with deficit > 0.
func (p *patch) add(v int) {
	p.in[v] = true
	p.count++
	for _, w := range p.g.Neighbors(v) {
		p.deficit[w]--
		if p.in[w] && p.deficit[w] == 0 {
			p.drop(w)
		}
	}
	if p.deficit[v] > 0 {
		p.pos[v] = len(p.frontier)
		p.frontier = append(p.frontier, v)
	}
}

func (p *patch) drop(w int) {
	i := p.pos[w]
	if i < 0 {
		return
	}
	last := len(p.frontier) - 1
	moved := p.frontier[last]
	p.frontier[i] = moved
	p.pos[moved] = i
	p.frontier = p.frontier[:last]
	p.pos[w] = -1
}
