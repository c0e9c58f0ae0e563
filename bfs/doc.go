// Package bfs provides breadth-first search over a core.Graph of sites.
//
// BFS explores vertex indices in increasing hop distance from a start index,
// with optional hooks, depth limiting and neighbor filtering. The filter is what
// makes it useful for presence matrices: restricting the walk to cells that are
// true in one column yields the contiguous patch containing the start cell.
//
// Helpers:
//
//   - ComponentSize(g, start, filter): number of vertices reachable from start.
//   - Connected(g, members): whether a vertex subset induces a single component.
//
// Complexity: O(V + E) time and O(V) memory per traversal.
package bfs
