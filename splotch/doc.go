// Package splotch randomizes an uncompressed PAM by regrowing every layer as
// one spatially contiguous patch.
//
// For each column the target is the column's presence count. A target of zero
// yields an all-false column and a target equal to the site count yields an
// all-true column. Otherwise a seed site is drawn uniformly and the patch
// grows one site at a time: a random unsaturated patch site is chosen, then
// one of its neighbours outside the patch. A site is saturated once every
// neighbour is in the patch; a per-site deficit counter, starting at the
// site's degree, tracks this and removes saturated sites from the frontier.
//
// The site adjacency is a *core.Graph whose vertex index i is matrix row i.
// Rook topology is expected for square cells and six-neighbour topology for
// hexagons; WithCellSides sets the bound on vertex degree.
//
// Columns are independent. Each column draws from its own stream derived from
// (seed, column), so the result does not depend on how columns are scheduled
// across workers.
//
// Complexity: O(V + E) per column, O(R·C) memory for the output.
package splotch
