package matrix_test

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pamsum/matrix"
)

// TestIncidenceBinary_Layout pins the v1 byte layout of a 2×5 matrix.
func TestIncidenceBinary_Layout(t *testing.T) {
	t.Parallel()

	m := matrix.MustFromRows([][]bool{
		{true, false, true, true, false},
		{false, false, false, true, true},
	})
	data, err := m.MarshalBinary()
	require.NoError(t, err)

	want := []byte{
		'P', 'A', 'M', 'X', 1,
		0, 0, 0, 2,
		0, 0, 0, 5,
		0b10110000, 0b11000000,
	}
	assert.Equal(t, want, data)
}

// TestIncidenceBinary_RoundTrip decodes what it encodes, including empty shapes.
func TestIncidenceBinary_RoundTrip(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(5))
	shapes := [][2]int{{0, 0}, {1, 1}, {3, 0}, {7, 9}, {16, 16}}
	for _, sh := range shapes {
		m := randomMatrix(rng, sh[0], sh[1], 0.5)
		var buf bytes.Buffer
		_, err := m.WriteTo(&buf)
		require.NoError(t, err)

		back, err := matrix.ReadIncidence(&buf)
		require.NoError(t, err)
		require.True(t, m.Equal(back), "shape %v", sh)
	}
}

// TestIncidenceBinary_Errors covers malformed and future-version payloads.
func TestIncidenceBinary_Errors(t *testing.T) {
	t.Parallel()

	good, err := matrix.MustFromRows([][]bool{{true, true}}).MarshalBinary()
	require.NoError(t, err)

	var m matrix.Incidence
	require.ErrorIs(t, m.UnmarshalBinary(good[:5]), matrix.ErrBadFormat)

	badMagic := append([]byte(nil), good...)
	badMagic[0] = 'X'
	require.ErrorIs(t, m.UnmarshalBinary(badMagic), matrix.ErrBadFormat)

	v2 := append([]byte(nil), good...)
	v2[4] = 2
	require.ErrorIs(t, m.UnmarshalBinary(v2), matrix.ErrUnsupportedVersion)

	long := append(append([]byte(nil), good...), 0)
	require.ErrorIs(t, m.UnmarshalBinary(long), matrix.ErrBadFormat)
}

// TestPresenceIndexJSON checks the v1 document and its decoding.
func TestPresenceIndexJSON(t *testing.T) {
	t.Parallel()

	_, idx, err := matrix.Compress(scenarioA(), []int{5, 6, 7, 8, 9}, []int{1, 2, 3})
	require.NoError(t, err)

	data, err := json.Marshal(idx)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"version": 1,
		"sites": [
			{"id":5,"present":true},{"id":6,"present":true},{"id":7,"present":false},
			{"id":8,"present":true},{"id":9,"present":true}
		],
		"layers": [{"id":1,"present":true},{"id":2,"present":false},{"id":3,"present":true}]
	}`, string(data))

	var back matrix.PresenceIndex
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, idx, &back)
}

// TestPresenceIndexJSON_Errors rejects unknown versions and duplicate ids.
func TestPresenceIndexJSON_Errors(t *testing.T) {
	t.Parallel()

	var p matrix.PresenceIndex
	require.ErrorIs(t, p.UnmarshalJSON([]byte(`{"version":2,"sites":[],"layers":[]}`)), matrix.ErrUnsupportedVersion)
	require.ErrorIs(t, p.UnmarshalJSON([]byte(`{"version":1,"sites":[{"id":1},{"id":1}],"layers":[]}`)), matrix.ErrDuplicateID)
	require.ErrorIs(t, p.UnmarshalJSON([]byte(`not json`)), matrix.ErrBadFormat)
}
