// Package gridgraph models a regular shapegrid of sites and its contiguity.
//
// What:
//
//   - GridGraph lays out Rows×Cols sites of square or hexagonal cells anchored
//     at an origin, each with a unique id and a centroid.
//   - Square cells connect by edge (Conn4, "rook") or by edge and corner
//     (Conn8, "queen"). Hexagonal cells use odd-r offset rows and always have
//     up to six edge-sharing neighbours.
//   - ContiguityGraph returns the edge-sharing adjacency used by splotch
//     randomization; ToCoreGraph returns the adjacency for the configured Conn.
//   - ConnectedComponents groups the sites selected by a mask into contiguous
//     patches.
//
// Complexity:
//
//   - NewGridGraph:        O(R×C), Memory O(R×C).
//   - ContiguityGraph:     O(R×C×d), Memory O(R×C + E), d = 4, 6 or 8.
//   - ConnectedComponents: O(R×C×d), Memory O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid: the grid has no rows or no columns.
//   - ErrBadOption: a non-positive cell size or unknown shape.
//   - ErrMaskLength: a site mask does not have one entry per site.
//   - ErrSiteNotFound: an id or index outside the grid.
package gridgraph
