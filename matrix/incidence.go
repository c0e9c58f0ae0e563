// SPDX-License-Identifier: MIT
// Package matrix: the dense boolean Incidence type.
//
// Storage is one []bool in row-major order, so row i occupies
// data[i*cols : (i+1)*cols]. Shapes with zero rows or zero columns are legal;
// the compression of an all-false matrix is 0×0.
//
// Complexity:
//   - At/Set/Bit/SetBit: O(1).
//   - RowSums/ColSums/Count/Equal/Clone: O(r·c).

package matrix

import (
	"fmt"
	"strings"
)

// Incidence is a dense r×c boolean matrix. The zero value is a valid 0×0 matrix.
type Incidence struct {
	r, c int
	data []bool
}

// NewIncidence returns an all-false r×c matrix.
// Returns ErrBadShape if r or c is negative.
func NewIncidence(r, c int) (*Incidence, error) {
	if r < 0 || c < 0 {
		return nil, fmt.Errorf("NewIncidence(%d,%d): %w", r, c, ErrBadShape)
	}
	return &Incidence{r: r, c: c, data: make([]bool, r*c)}, nil
}

// FromRows builds a matrix from a slice of equal-length rows (deep copy).
// An empty input yields 0×0; rows of length zero yield r×0.
// Returns ErrNonRectangular if row lengths differ.
func FromRows(rows [][]bool) (*Incidence, error) {
	if len(rows) == 0 {
		return &Incidence{}, nil
	}
	c := len(rows[0])
	m := &Incidence{r: len(rows), c: c, data: make([]bool, len(rows)*c)}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("FromRows: row %d has %d cells, want %d: %w", i, len(row), c, ErrNonRectangular)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}
	return m, nil
}

// MustFromRows is FromRows that panics on error. Intended for literals in tests and examples.
func MustFromRows(rows [][]bool) *Incidence {
	m, err := FromRows(rows)
	if err != nil {
		panic(err)
	}
	return m
}

// Rows returns the number of rows.
func (m *Incidence) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Incidence) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Incidence) Shape() (int, int) { return m.r, m.c }

func (m *Incidence) inBounds(i, j int) bool {
	return i >= 0 && i < m.r && j >= 0 && j < m.c
}

// At returns the cell at (i, j) or ErrOutOfRange.
func (m *Incidence) At(i, j int) (bool, error) {
	if !m.inBounds(i, j) {
		return false, fmt.Errorf("At(%d,%d) on %dx%d: %w", i, j, m.r, m.c, ErrOutOfRange)
	}
	return m.data[i*m.c+j], nil
}

// Set assigns the cell at (i, j) or returns ErrOutOfRange.
func (m *Incidence) Set(i, j int, v bool) error {
	if !m.inBounds(i, j) {
		return fmt.Errorf("Set(%d,%d) on %dx%d: %w", i, j, m.r, m.c, ErrOutOfRange)
	}
	m.data[i*m.c+j] = v
	return nil
}

// Bit returns the cell at (i, j) without bounds checking beyond the slice's own.
func (m *Incidence) Bit(i, j int) bool { return m.data[i*m.c+j] }

// SetBit assigns the cell at (i, j) without bounds checking beyond the slice's own.
func (m *Incidence) SetBit(i, j int, v bool) { m.data[i*m.c+j] = v }

// Flip negates the cell at (i, j) without bounds checking.
func (m *Incidence) Flip(i, j int) { m.data[i*m.c+j] = !m.data[i*m.c+j] }

// Clone returns a deep copy.
func (m *Incidence) Clone() *Incidence {
	cp := &Incidence{r: m.r, c: m.c, data: make([]bool, len(m.data))}
	copy(cp.data, m.data)
	return cp
}

// Row returns a copy of row i or ErrOutOfRange.
func (m *Incidence) Row(i int) ([]bool, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Row(%d) on %dx%d: %w", i, m.r, m.c, ErrOutOfRange)
	}
	out := make([]bool, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])
	return out, nil
}

// Column returns a copy of column j or ErrOutOfRange.
func (m *Incidence) Column(j int) ([]bool, error) {
	if j < 0 || j >= m.c {
		return nil, fmt.Errorf("Column(%d) on %dx%d: %w", j, m.r, m.c, ErrOutOfRange)
	}
	out := make([]bool, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}
	return out, nil
}

// SetColumn overwrites column j with col.
// Returns ErrOutOfRange for a bad j and ErrShape if len(col) != Rows().
func (m *Incidence) SetColumn(j int, col []bool) error {
	if j < 0 || j >= m.c {
		return fmt.Errorf("SetColumn(%d) on %dx%d: %w", j, m.r, m.c, ErrOutOfRange)
	}
	if len(col) != m.r {
		return fmt.Errorf("SetColumn: got %d cells, want %d: %w", len(col), m.r, ErrShape)
	}
	for i, v := range col {
		m.data[i*m.c+j] = v
	}
	return nil
}

// RowSums returns the number of true cells in each row.
func (m *Incidence) RowSums() []int {
	out := make([]int, m.r)
	for i := 0; i < m.r; i++ {
		for _, v := range m.data[i*m.c : (i+1)*m.c] {
			if v {
				out[i]++
			}
		}
	}
	return out
}

// ColSums returns the number of true cells in each column.
func (m *Incidence) ColSums() []int {
	out := make([]int, m.c)
	for i := 0; i < m.r; i++ {
		row := m.data[i*m.c : (i+1)*m.c]
		for j, v := range row {
			if v {
				out[j]++
			}
		}
	}
	return out
}

// Count returns the total number of true cells.
func (m *Incidence) Count() int {
	n := 0
	for _, v := range m.data {
		if v {
			n++
		}
	}
	return n
}

// Equal reports whether o has the same shape and cells. Two nil matrices are equal.
func (m *Incidence) Equal(o *Incidence) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for k := range m.data {
		if m.data[k] != o.data[k] {
			return false
		}
	}
	return true
}

// ToRows returns the cells as a fresh [][]bool.
func (m *Incidence) ToRows() [][]bool {
	out := make([][]bool, m.r)
	for i := range out {
		out[i] = make([]bool, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}
	return out
}

// String renders the matrix one row per line using '1' and '0'.
func (m *Incidence) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		for _, v := range m.data[i*m.c : (i+1)*m.c] {
			if v {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
		if i < m.r-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
