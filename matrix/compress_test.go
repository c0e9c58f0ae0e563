package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pamsum/matrix"
)

// scenarioA is a 5-site × 3-layer PAM whose site row 2 and layer column 1
// are entirely false.
func scenarioA() *matrix.Incidence {
	return matrix.MustFromRows([][]bool{
		{true, false, false},
		{false, false, true},
		{false, false, false},
		{true, false, true},
		{false, false, true},
	})
}

// TestCompress_ScenarioA checks shape, content and index flags.
func TestCompress_ScenarioA(t *testing.T) {
	t.Parallel()

	c, idx, err := matrix.Compress(scenarioA(), nil, nil)
	require.NoError(t, err)

	rows, cols := c.Shape()
	assert.Equal(t, 4, rows)
	assert.Equal(t, 2, cols)
	assert.Equal(t, "10\n01\n11\n01", c.String())

	want := &matrix.PresenceIndex{
		SiteIDs:       []int{0, 1, 2, 3, 4},
		LayerIDs:      []int{0, 1, 2},
		SitesPresent:  map[int]bool{0: true, 1: true, 2: false, 3: true, 4: true},
		LayersPresent: map[int]bool{0: true, 1: false, 2: true},
	}
	if diff := cmp.Diff(want, idx); diff != "" {
		t.Errorf("PresenceIndex mismatch (-want +got):\n%s", diff)
	}
	require.NoError(t, idx.Validate(c))
	assert.Equal(t, []int{0, 1, 3, 4}, idx.PresentSiteIDs())
	assert.Equal(t, []int{0, 2}, idx.PresentLayerIDs())
}

// TestCompress_IDs covers explicit id labels and their validation.
func TestCompress_IDs(t *testing.T) {
	t.Parallel()

	raw := scenarioA()
	_, idx, err := matrix.Compress(raw, []int{10, 11, 12, 13, 14}, []int{7, 8, 9})
	require.NoError(t, err)
	assert.False(t, idx.SitesPresent[12])
	assert.False(t, idx.LayersPresent[8])
	assert.Equal(t, []int{10, 11, 13, 14}, idx.PresentSiteIDs())

	_, _, err = matrix.Compress(raw, []int{1, 2}, nil)
	require.ErrorIs(t, err, matrix.ErrShape)

	_, _, err = matrix.Compress(raw, []int{1, 1, 2, 3, 4}, nil)
	require.ErrorIs(t, err, matrix.ErrDuplicateID)

	_, _, err = matrix.Compress(nil, nil, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestCompress_NoEmptyRowsOrCols holds for random inputs.
func TestCompress_NoEmptyRowsOrCols(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		raw := randomMatrix(rng, 1+rng.Intn(12), 1+rng.Intn(12), 0.2)
		c, idx, err := matrix.Compress(raw, nil, nil)
		require.NoError(t, err)
		for _, s := range c.RowSums() {
			require.Positive(t, s)
		}
		for _, s := range c.ColSums() {
			require.Positive(t, s)
		}
		require.Equal(t, c.Rows(), idx.PresentSiteCount())
		require.Equal(t, c.Cols(), idx.PresentLayerCount())
		require.Equal(t, raw.Count(), c.Count())
	}
}

// TestDecompress_RoundTrip reconstructs random matrices exactly.
func TestDecompress_RoundTrip(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 50; trial++ {
		raw := randomMatrix(rng, rng.Intn(10), 1+rng.Intn(10), 0.3)
		c, idx, err := matrix.Compress(raw, nil, nil)
		require.NoError(t, err)
		back, err := matrix.Decompress(c, idx)
		require.NoError(t, err)
		require.True(t, raw.Equal(back), "trial %d:\n%s\n!=\n%s", trial, raw, back)
	}
}

// TestDecompress_AllFalse compresses to 0×0 and restores the full shape.
func TestDecompress_AllFalse(t *testing.T) {
	t.Parallel()

	raw, err := matrix.NewIncidence(3, 2)
	require.NoError(t, err)
	c, idx, err := matrix.Compress(raw, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Rows())
	assert.Equal(t, 0, c.Cols())

	back, err := matrix.Decompress(c, idx)
	require.NoError(t, err)
	assert.True(t, raw.Equal(back))
}

// TestDecompress_ShapeError rejects a matrix that disagrees with its index.
func TestDecompress_ShapeError(t *testing.T) {
	t.Parallel()

	c, idx, err := matrix.Compress(scenarioA(), nil, nil)
	require.NoError(t, err)

	wrong := matrix.MustFromRows([][]bool{{true, true}})
	_, err = matrix.Decompress(wrong, idx)
	require.ErrorIs(t, err, matrix.ErrShape)

	_, err = matrix.ColumnPresence(wrong, idx, 0)
	require.ErrorIs(t, err, matrix.ErrShape)

	_, err = matrix.Decompress(c, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestColumnPresence returns exactly the occupied original site ids per column.
func TestColumnPresence(t *testing.T) {
	t.Parallel()

	c, idx, err := matrix.Compress(scenarioA(), []int{100, 101, 102, 103, 104}, nil)
	require.NoError(t, err)

	got, err := matrix.ColumnPresence(c, idx, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{100, 103}, got)

	got, err = matrix.ColumnPresence(c, idx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{101, 103, 104}, got)

	_, err = matrix.ColumnPresence(c, idx, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestColumnPresence_Property compares against the decompressed column on random inputs.
func TestColumnPresence_Property(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 30; trial++ {
		raw := randomMatrix(rng, 2+rng.Intn(8), 2+rng.Intn(8), 0.35)
		c, idx, err := matrix.Compress(raw, nil, nil)
		require.NoError(t, err)
		layers := idx.PresentLayerIDs()
		for j := 0; j < c.Cols(); j++ {
			got, err := matrix.ColumnPresence(c, idx, j)
			require.NoError(t, err)

			full, err := raw.Column(layers[j])
			require.NoError(t, err)
			var want []int
			for site, v := range full {
				if v {
					want = append(want, site)
				}
			}
			require.Equal(t, want, got)
		}
	}
}

// TestPresenceIndex_CloneAndDuplicates covers index construction helpers.
func TestPresenceIndex_CloneAndDuplicates(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewPresenceIndex([]int{1}, []int{2, 2})
	require.ErrorIs(t, err, matrix.ErrDuplicateID)

	idx, err := matrix.NewPresenceIndex([]int{1, 2}, []int{5})
	require.NoError(t, err)
	idx.SitesPresent[1] = true
	cp := idx.Clone()
	cp.SitesPresent[2] = true
	assert.Equal(t, 1, idx.PresentSiteCount())
	assert.Equal(t, 2, cp.PresentSiteCount())
	assert.Zero(t, cp.PresentLayerCount())
}
