// SPDX-License-Identifier: MIT
// Package matrix provides the boolean presence/absence matrix (PAM) and its
// compression bookkeeping.
//
// The matrix package provides:
//
//   - Incidence: a dense row-major boolean matrix with bounds-checked
//     accessors (At/Set), unchecked hot-path accessors (Bit/SetBit) and
//     marginal queries (RowSums, ColSums, Count).
//   - Compress / Decompress: removal of all-false rows and columns and its
//     exact inverse, recorded in a PresenceIndex.
//   - ColumnPresence: the original site ids occupied in one compressed column.
//   - A versioned serialization contract: a bit-packed binary array format for
//     Incidence and a JSON associative format for PresenceIndex.
//
// Compression invariants:
//
//   - A compressed Incidence never contains an all-false row or column.
//   - The number of present sites (layers) in the index equals the compressed
//     row (column) count; Validate enforces this and reports ErrShape.
//
// All functions are pure: inputs are never mutated.
package matrix
