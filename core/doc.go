// Package core defines the site adjacency Graph consumed by the randomizers.
//
// A Graph is an undirected, unweighted, loop-free graph whose vertices are
// grid sites. Every vertex has two identities:
//
//   - ID:    the external site id (shapegrid feature id), unique, any int.
//   - Index: the dense position 0..VertexCount()-1, equal to the site's row in
//     an uncompressed incidence matrix.
//
// Algorithms (splotch, bfs) work on indices for O(1) neighbor lookups; callers
// translate with IndexOf / IDAt.
//
// All methods are safe for concurrent use: a sync.RWMutex guards vertices and
// adjacency, so many splotch workers may read one Graph while it is not mutated.
//
// Errors:
//
//	ErrVertexNotFound  - a referenced site id or index does not exist.
//	ErrLoopNotAllowed  - an edge from a site to itself.
//	ErrDuplicateVertex - AddVertexStrict on an id already present.
package core
