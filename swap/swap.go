package swap

import (
	"fmt"

	"github.com/katalvlaran/pamsum/matrix"
)

// Parameter keys recorded for a swap randomization.
const (
	ParamSwapsPerformed      = "numberOfSwapsPerformed"
	ParamIterationsAttempted = "numberOfIterationsAttempted"
)

// Result is the outcome of Randomize.
type Result struct {
	// Matrix is the randomized copy; the input is never modified.
	Matrix *matrix.Incidence
	// Swaps is the number of checkerboard swaps performed.
	Swaps int
	// Attempts is the number of iterations attempted.
	Attempts int
}

// Parameters returns the randomization parameters to record with the run.
func (r *Result) Parameters() map[string]any {
	return map[string]any{
		ParamSwapsPerformed:      r.Swaps,
		ParamIterationsAttempted: r.Attempts,
	}
}

// Randomize returns a copy of m shuffled by checkerboard swaps.
// Returns matrix.ErrNilMatrix for nil m, ErrDegenerateMatrix when m has fewer
// than 2 rows or columns, ErrOptionViolation for bad options.
func Randomize(m *matrix.Incidence, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, fmt.Errorf("swap.Randomize: %w", matrix.ErrNilMatrix)
	}
	rows, cols := m.Shape()
	if rows <= 1 || cols <= 1 {
		return nil, fmt.Errorf("swap.Randomize: %dx%d: %w", rows, cols, ErrDegenerateMatrix)
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, fmt.Errorf("swap.Randomize: %w", err)
	}

	out := m.Clone()
	res := &Result{Matrix: out}
	r := o.Rand
	misses := 0
	for res.Attempts < o.Iterations {
		if o.TargetSwaps > 0 && res.Swaps >= o.TargetSwaps {
			break
		}
		if misses >= o.MaxTriesWithoutSwap {
			break
		}
		res.Attempts++

		c1 := r.Intn(cols)
		c2 := r.Intn(cols - 1)
		if c2 >= c1 {
			c2++
		}
		r1 := r.Intn(rows)
		a, b := out.Bit(r1, c1), out.Bit(r1, c2)
		if a == b {
			misses++
			continue
		}

		r2 := findComplement(out, r1, c1, c2, a, r.Intn(rows))
		if r2 < 0 {
			misses++
			continue
		}
		out.Flip(r1, c1)
		out.Flip(r1, c2)
		out.Flip(r2, c1)
		out.Flip(r2, c2)
		res.Swaps++
		misses = 0
	}

	return res, nil
}

// findComplement scans rows from start, wrapping around, for r2 != r1 with
// M[r2][c1] == !a and M[r2][c2] == a. Returns -1 if none exists.
func findComplement(m *matrix.Incidence, r1, c1, c2 int, a bool, start int) int {
	rows := m.Rows()
	for k := 0; k < rows; k++ {
		r2 := start + k
		if r2 >= rows {
			r2 -= rows
		}
		if r2 == r1 {
			continue
		}
		if m.Bit(r2, c1) != a && m.Bit(r2, c2) == a {
			return r2
		}
	}
	return -1
}
