// Package pamsum builds site × layer presence/absence matrices (PAMs) over
// square or hexagonal site grids, compresses them and randomizes them under
// two null models.
//
// 🚀 What is in the module?
//
//	matrix/        boolean Incidence matrix, Compress/Decompress, PresenceIndex, codecs
//	swap/          marginal-preserving checkerboard swap randomization
//	splotch/       contiguous patch regrowth over the site adjacency graph
//	randomize/     one randomization run: method, params, stage/status, error codes
//	gridview/      grid + layers pipeline: intersect → compress → runs → rollback
//	stats/         PAM summary statistics (diversity, covariance, beta diversity)
//	gridgraph/     site grids, centroids, contiguity topology
//	core/, bfs/    adjacency graph and breadth-first traversal
//	store/         persistence interface, in-memory and SQLite backends
//	config/        TOML configuration and logger
//	rng/           deterministic, derivable random streams
//
// Quick ASCII example (rows = sites, columns = species):
//
//	raw        compressed
//	1 0 1      1 1
//	0 0 0  ─▶  0 1
//	0 0 1
//
// A swap flips a 2×2 checkerboard 1 0 / 0 1 into 0 1 / 1 0, so every row and
// column keeps its count. A splotch run keeps only column counts and regrows
// each species as one contiguous patch.
//
//	go get github.com/katalvlaran/pamsum
package pamsum
