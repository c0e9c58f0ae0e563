// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..."; operations wrap them as
// fmt.Errorf("Op: %w", ErrX) and callers match with errors.Is.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (r<0 or c<0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set/Column) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonRectangular indicates FromRows input rows of differing lengths.
	ErrNonRectangular = errors.New("matrix: all rows must have the same length")

	// ErrShape signals a cardinality mismatch between a matrix and its ids or
	// PresenceIndex (the ShapeError of the compression contract).
	ErrShape = errors.New("matrix: shape mismatch")

	// ErrDuplicateID indicates a repeated site or layer id.
	ErrDuplicateID = errors.New("matrix: duplicate id")

	// ErrNilMatrix indicates that a nil *Incidence or *PresenceIndex was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrBadFormat indicates a corrupt or truncated serialized payload.
	ErrBadFormat = errors.New("matrix: malformed payload")

	// ErrUnsupportedVersion indicates a serialized payload of an unknown format version.
	ErrUnsupportedVersion = errors.New("matrix: unsupported format version")
)
