// SPDX-License-Identifier: MIT
// Package matrix: compression of a full site×layer PAM and its inverse.
//
// Complexity:
//   - Compress, Decompress: O(R·C) time, O(R·C) memory for the output.
//   - ColumnPresence: O(r) for a compressed matrix with r rows.

package matrix

import "fmt"

// sequentialIDs returns 0..n-1.
func sequentialIDs(n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}
	return ids
}

// Compress removes every all-false row and column of raw. Rows and columns
// that remain keep their relative order. siteIDs label the rows of raw and
// layerIDs its columns; a nil slice means 0..n-1.
//
// Returns ErrNilMatrix for a nil raw, ErrShape if an id list length differs
// from the matching dimension, ErrDuplicateID for repeated ids.
func Compress(raw *Incidence, siteIDs, layerIDs []int) (*Incidence, *PresenceIndex, error) {
	if raw == nil {
		return nil, nil, fmt.Errorf("Compress: %w", ErrNilMatrix)
	}
	if siteIDs == nil {
		siteIDs = sequentialIDs(raw.r)
	}
	if layerIDs == nil {
		layerIDs = sequentialIDs(raw.c)
	}
	if len(siteIDs) != raw.r || len(layerIDs) != raw.c {
		return nil, nil, fmt.Errorf("Compress: %d site ids and %d layer ids for %dx%d matrix: %w",
			len(siteIDs), len(layerIDs), raw.r, raw.c, ErrShape)
	}
	idx, err := NewPresenceIndex(siteIDs, layerIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("Compress: %w", err)
	}

	rowSums, colSums := raw.RowSums(), raw.ColSums()
	keepRows := make([]int, 0, raw.r)
	for i, s := range rowSums {
		if s > 0 {
			keepRows = append(keepRows, i)
			idx.SitesPresent[siteIDs[i]] = true
		}
	}
	keepCols := make([]int, 0, raw.c)
	for j, s := range colSums {
		if s > 0 {
			keepCols = append(keepCols, j)
			idx.LayersPresent[layerIDs[j]] = true
		}
	}

	out := &Incidence{r: len(keepRows), c: len(keepCols), data: make([]bool, len(keepRows)*len(keepCols))}
	for ni, oi := range keepRows {
		for nj, oj := range keepCols {
			out.data[ni*out.c+nj] = raw.data[oi*raw.c+oj]
		}
	}
	return out, idx, nil
}

// Decompress is the inverse of Compress: it returns a len(SiteIDs)×len(LayerIDs)
// matrix with compressed cells at their original positions and false elsewhere.
// Returns ErrShape if compressed does not match index.
func Decompress(compressed *Incidence, index *PresenceIndex) (*Incidence, error) {
	if err := index.Validate(compressed); err != nil {
		return nil, fmt.Errorf("Decompress: %w", err)
	}
	rows := positions(index.SiteIDs, index.SitesPresent)
	cols := positions(index.LayerIDs, index.LayersPresent)

	out := &Incidence{r: len(index.SiteIDs), c: len(index.LayerIDs)}
	out.data = make([]bool, out.r*out.c)
	for ci, oi := range rows {
		for cj, oj := range cols {
			out.data[oi*out.c+oj] = compressed.data[ci*compressed.c+cj]
		}
	}
	return out, nil
}

// ColumnPresence returns the original site ids whose compressed row is true in
// compressed column col, in row order.
// Returns ErrShape for a mismatched index and ErrOutOfRange for a bad col.
func ColumnPresence(compressed *Incidence, index *PresenceIndex, col int) ([]int, error) {
	if err := index.Validate(compressed); err != nil {
		return nil, fmt.Errorf("ColumnPresence: %w", err)
	}
	if col < 0 || col >= compressed.c {
		return nil, fmt.Errorf("ColumnPresence(%d) on %d cols: %w", col, compressed.c, ErrOutOfRange)
	}
	sites := index.PresentSiteIDs()
	out := make([]int, 0, compressed.r)
	for i, id := range sites {
		if compressed.data[i*compressed.c+col] {
			out = append(out, id)
		}
	}
	return out, nil
}

// positions returns the original offsets of the present ids.
func positions(order []int, present map[int]bool) []int {
	out := make([]int, 0, len(order))
	for i, id := range order {
		if present[id] {
			out = append(out, i)
		}
	}
	return out
}
