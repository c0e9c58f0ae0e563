// Package core: Graph method implementations.
//
// Vertex insertion appends to the dense index space; edges are stored twice
// (u→v and v→u) in sorted adjacency slices so that lookups are O(log d) and
// neighbor iteration is deterministic.

package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts a site id and returns its index.
// If the id already exists, this is a no-op returning the existing index.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id int) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	if idx, ok := g.index[id]; ok {
		return idx
	}

	return g.appendVertex(id)
}

// AddVertexStrict inserts a site id and fails with ErrDuplicateVertex if present.
// Complexity: O(1) amortized.
func (g *Graph) AddVertexStrict(id int) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.index[id]; ok {
		return 0, fmt.Errorf("AddVertexStrict(%d): %w", id, ErrDuplicateVertex)
	}

	return g.appendVertex(id), nil
}

// appendVertex assigns the next dense index to id. Caller holds g.mu.
func (g *Graph) appendVertex(id int) int {
	idx := len(g.ids)
	g.ids = append(g.ids, id)
	g.index[id] = idx
	g.adj = append(g.adj, nil)

	return idx
}

// HasVertex reports whether a site id is present.
// Complexity: O(1).
func (g *Graph) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[id]

	return ok
}

// AddEdge connects two existing sites by id. Adding an existing edge is a no-op.
// Returns ErrVertexNotFound or ErrLoopNotAllowed.
// Complexity: O(d) for the sorted insert, d = degree.
func (g *Graph) AddEdge(fromID, toID int) error {
	if fromID == toID {
		return fmt.Errorf("AddEdge(%d,%d): %w", fromID, toID, ErrLoopNotAllowed)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	u, ok := g.index[fromID]
	if !ok {
		return fmt.Errorf("AddEdge(%d,%d): %w", fromID, toID, ErrVertexNotFound)
	}
	v, ok := g.index[toID]
	if !ok {
		return fmt.Errorf("AddEdge(%d,%d): %w", fromID, toID, ErrVertexNotFound)
	}
	if containsSorted(g.adj[u], v) {
		return nil
	}
	g.adj[u] = insertSorted(g.adj[u], v)
	g.adj[v] = insertSorted(g.adj[v], u)
	g.edges++

	return nil
}

// HasEdge reports whether sites fromID and toID are adjacent.
// Complexity: O(log d).
func (g *Graph) HasEdge(fromID, toID int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	u, ok := g.index[fromID]
	if !ok {
		return false
	}
	v, ok := g.index[toID]
	if !ok {
		return false
	}

	return containsSorted(g.adj[u], v)
}

// IndexOf returns the dense index of a site id.
// Complexity: O(1).
func (g *Graph) IndexOf(id int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	idx, ok := g.index[id]
	if !ok {
		return 0, fmt.Errorf("IndexOf(%d): %w", id, ErrVertexNotFound)
	}

	return idx, nil
}

// IDAt returns the site id stored at a dense index.
// Complexity: O(1).
func (g *Graph) IDAt(idx int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if idx < 0 || idx >= len(g.ids) {
		return 0, fmt.Errorf("IDAt(%d): %w", idx, ErrVertexNotFound)
	}

	return g.ids[idx], nil
}

// IDs returns a copy of all site ids in index order.
// Complexity: O(V).
func (g *Graph) IDs() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]int, len(g.ids))
	copy(out, g.ids)

	return out
}

// Neighbors returns the ascending neighbor indices of the vertex at idx.
// The returned slice is the graph's own storage and MUST NOT be modified.
// An out-of-range idx yields nil.
// Complexity: O(1).
func (g *Graph) Neighbors(idx int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if idx < 0 || idx >= len(g.adj) {
		return nil
	}

	return g.adj[idx]
}

// NeighborIDs returns the site ids adjacent to id, sorted by index.
// Complexity: O(d).
func (g *Graph) NeighborIDs(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	u, ok := g.index[id]
	if !ok {
		return nil, fmt.Errorf("NeighborIDs(%d): %w", id, ErrVertexNotFound)
	}
	out := make([]int, len(g.adj[u]))
	for i, v := range g.adj[u] {
		out[i] = g.ids[v]
	}

	return out, nil
}

// Degree returns the number of neighbors of the vertex at idx (0 if out of range).
// Complexity: O(1).
func (g *Graph) Degree(idx int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if idx < 0 || idx >= len(g.adj) {
		return 0
	}

	return len(g.adj[idx])
}

// MaxDegree returns the largest vertex degree (0 for an empty graph).
// Complexity: O(V).
func (g *Graph) MaxDegree() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	m := 0
	for _, nb := range g.adj {
		if len(nb) > m {
			m = len(nb)
		}
	}

	return m
}

// VertexCount returns the number of sites.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.ids)
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// Edges returns every edge once, ordered by (From, To) index.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, 0, g.edges)
	for u, nb := range g.adj {
		for _, v := range nb {
			if u < v {
				out = append(out, Edge{From: u, To: v})
			}
		}
	}

	return out
}

// Clone returns a deep copy of the graph.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()
	c := NewGraphWithCapacity(len(g.ids))
	c.ids = append(c.ids, g.ids...)
	for id, idx := range g.index {
		c.index[id] = idx
	}
	c.adj = make([][]int, len(g.adj))
	for i, nb := range g.adj {
		c.adj[i] = append([]int(nil), nb...)
	}
	c.edges = g.edges

	return c
}

// containsSorted reports whether v is in the ascending slice s.
func containsSorted(s []int, v int) bool {
	i := sort.SearchInts(s, v)
	return i < len(s) && s[i] == v
}

// insertSorted inserts v into ascending s, keeping order. v must be absent.
func insertSorted(s []int, v int) []int {
	i := sort.SearchInts(s, v)
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = v

	return s
}
