package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pamsum/matrix"
)

// TestNewIncidence_Shapes verifies shape validation and zero initialization.
func TestNewIncidence_Shapes(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewIncidence(-1, 2)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	m, err := matrix.NewIncidence(2, 3)
	require.NoError(t, err)
	r, c := m.Shape()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Zero(t, m.Count())

	empty, err := matrix.NewIncidence(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "", empty.String())
}

// TestFromRows_Errors checks ragged input and empty input handling.
func TestFromRows_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.FromRows([][]bool{{true}, {true, false}})
	require.ErrorIs(t, err, matrix.ErrNonRectangular)

	m, err := matrix.FromRows(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Rows())
	assert.Equal(t, 0, m.Cols())
}

// TestIncidence_Accessors exercises checked and unchecked accessors.
func TestIncidence_Accessors(t *testing.T) {
	t.Parallel()

	m := matrix.MustFromRows([][]bool{
		{true, false, true},
		{false, false, true},
	})

	v, err := m.At(0, 2)
	require.NoError(t, err)
	assert.True(t, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 3, true), matrix.ErrOutOfRange)

	require.NoError(t, m.Set(1, 0, true))
	assert.True(t, m.Bit(1, 0))
	m.SetBit(1, 0, false)
	assert.False(t, m.Bit(1, 0))
	m.Flip(1, 1)
	assert.True(t, m.Bit(1, 1))
	m.Flip(1, 1)

	assert.Equal(t, []int{2, 1}, m.RowSums())
	assert.Equal(t, []int{1, 0, 2}, m.ColSums())
	assert.Equal(t, 3, m.Count())

	col, err := m.Column(2)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true}, col)
	_, err = m.Column(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, true}, row)
	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	assert.Equal(t, "101\n001", m.String())
	assert.Equal(t, [][]bool{{true, false, true}, {false, false, true}}, m.ToRows())
}

// TestIncidence_SetColumn checks column overwrite validation.
func TestIncidence_SetColumn(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewIncidence(3, 2)
	require.NoError(t, err)
	require.NoError(t, m.SetColumn(1, []bool{true, false, true}))
	assert.Equal(t, []int{0, 2}, m.ColSums())

	require.ErrorIs(t, m.SetColumn(2, []bool{true, true, true}), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SetColumn(0, []bool{true}), matrix.ErrShape)
}

// TestIncidence_CloneEqual verifies deep copies and equality semantics.
func TestIncidence_CloneEqual(t *testing.T) {
	t.Parallel()

	m := matrix.MustFromRows([][]bool{{true, false}, {false, true}})
	cp := m.Clone()
	require.True(t, m.Equal(cp))

	cp.SetBit(0, 0, false)
	assert.False(t, m.Equal(cp))
	assert.True(t, m.Bit(0, 0), "clone must not alias the original")

	other := matrix.MustFromRows([][]bool{{true, false, false}})
	assert.False(t, m.Equal(other))

	var nilM *matrix.Incidence
	assert.True(t, nilM.Equal(nil))
	assert.False(t, m.Equal(nil))
}
