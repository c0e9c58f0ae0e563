// Package gridview owns one site grid with its layers and drives the
// presence/absence pipeline over it:
//
//	New ─▶ Intersect ─▶ Compress ─▶ AddOriginal / AddRandomized ─▶ ComputeRuns
//	                        ▲                                          │
//	                        └──────────────── Rollback ◀───────────────┘
//
// Intersect builds the full matrix (one row per site, one column per layer)
// through an Intersector. ThresholdIntersector applies the presence rule to
// per-site coverage summaries: a site is present in a layer when the area
// whose value lies in [MinPresence, MaxPresence] exceeds PercentPresence
// percent of the cell area.
//
// Compress keeps only sites and layers with at least one presence. At most one
// original run (method none) may be added; randomized runs (swap, splotch) are
// unlimited. ComputeRuns computes all pending runs concurrently, each from its
// own copy of the matrices, then summarizes and persists them.
//
// Rollback is all-or-nothing: it deletes persisted runs first and, only if
// that succeeds, drops runs and the compressed matrix and returns to the
// intersect stage.
//
// A GridView is not safe for concurrent use; ComputeRuns confines each worker
// to its own run.
package gridview
