package matrix_test

import (
	"math/rand"

	"github.com/katalvlaran/pamsum/matrix"
)

// randomMatrix returns an r×c matrix with each cell true with probability p.
func randomMatrix(rng *rand.Rand, r, c int, p float64) *matrix.Incidence {
	rows := make([][]bool, r)
	for i := range rows {
		rows[i] = make([]bool, c)
		for j := range rows[i] {
			rows[i][j] = rng.Float64() < p
		}
	}
	m, err := matrix.NewIncidence(r, c)
	if err != nil {
		panic(err)
	}
	for i := range rows {
		for j, v := range rows[i] {
			m.SetBit(i, j, v)
		}
	}
	return m
}
