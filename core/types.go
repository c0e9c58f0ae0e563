package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted; site graphs never have loops.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrDuplicateVertex indicates a strict insert of an id that already exists.
	ErrDuplicateVertex = errors.New("core: duplicate vertex id")
)

// Edge is an undirected adjacency between two sites, reported by Edges with
// From < To (by index) so each edge appears exactly once.
type Edge struct {
	From int // index of the first endpoint
	To   int // index of the second endpoint
}

// Graph is the in-memory site adjacency graph.
//
// ids maps index → site id, index maps site id → index and adj[i] holds the
// ascending neighbor indices of vertex i. adj slices are never shared with
// callers by NeighborIDs; Neighbors returns the backing slice read-only.
type Graph struct {
	mu sync.RWMutex // guards everything below

	ids   []int       // index → external id
	index map[int]int // external id → index
	adj   [][]int     // index → sorted neighbor indices
	edges int         // undirected edge count
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		ids:   make([]int, 0),
		index: make(map[int]int),
		adj:   make([][]int, 0),
	}
}

// NewGraphWithCapacity creates an empty Graph sized for n vertices.
// Complexity: O(n) allocation.
func NewGraphWithCapacity(n int) *Graph {
	if n < 0 {
		n = 0
	}
	return &Graph{
		ids:   make([]int, 0, n),
		index: make(map[int]int, n),
		adj:   make([][]int, 0, n),
	}
}
