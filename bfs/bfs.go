package bfs

import (
	"fmt"

	"github.com/katalvlaran/pamsum/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	queue []int
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from the vertex index start.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ctx.Err() on cancellation,
// or any user-supplied hook error.
func BFS(g *core.Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.VertexCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]int, 0, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = -1
		w.res.Parent[i] = -1
	}

	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

// enqueue marks idx visited at depth d and records its parent.
func (w *walker) enqueue(idx, d, parent int) {
	w.res.Depth[idx] = d
	w.res.Parent[idx] = parent
	w.queue = append(w.queue, idx)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for head := 0; head < len(w.queue); head++ {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		u := w.queue[head]
		d := w.res.Depth[u]
		w.res.Order = append(w.res.Order, u)
		if err := w.opts.OnVisit(u, d); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", u, err)
		}
		if w.opts.MaxDepth > 0 && d >= w.opts.MaxDepth {
			continue
		}
		for _, v := range w.graph.Neighbors(u) {
			if w.res.Depth[v] >= 0 || !w.opts.FilterNeighbor(u, v) {
				continue
			}
			w.enqueue(v, d+1, u)
		}
	}

	return nil
}

// ComponentSize returns how many vertices are reachable from start when only
// vertices accepted by include are entered. The start vertex itself is always
// counted. A nil include accepts every vertex.
// Complexity: O(V + E).
func ComponentSize(g *core.Graph, start int, include func(idx int) bool) (int, error) {
	var opts []Option
	if include != nil {
		opts = append(opts, WithFilterNeighbor(func(_, nb int) bool { return include(nb) }))
	}
	res, err := BFS(g, start, opts...)
	if err != nil {
		return 0, err
	}

	return len(res.Order), nil
}

// Connected reports whether the member vertices form one connected region of g
// when walking only through members. An empty member set is trivially connected.
// Complexity: O(V + E).
func Connected(g *core.Graph, member []bool) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if len(member) != g.VertexCount() {
		return false, fmt.Errorf("%w: member mask has %d entries, graph has %d vertices",
			ErrOptionViolation, len(member), g.VertexCount())
	}
	start, total := -1, 0
	for i, in := range member {
		if in {
			total++
			if start < 0 {
				start = i
			}
		}
	}
	if total == 0 {
		return true, nil
	}
	size, err := ComponentSize(g, start, func(idx int) bool { return member[idx] })
	if err != nil {
		return false, err
	}

	return size == total, nil
}
