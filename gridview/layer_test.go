package gridview_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pamsum/gridview"
)

func TestNewLayerSet(t *testing.T) {
	pav := []gridview.PresenceAbsenceParameters{{ID: 10, MinPresence: 1, MaxPresence: 1, PercentPresence: 50}}
	anc := []gridview.AncillaryParameters{{ID: 20, WeightedMean: true}}
	ls, err := gridview.NewLayerSet([]gridview.Layer{
		{ID: 3, Name: "oak", ParamsID: 10},
		{ID: 1, Name: "elevation", ParamsID: 20},
	}, pav, anc)
	require.NoError(t, err)

	assert.Equal(t, 2, ls.Len())
	assert.Equal(t, []int{3, 1}, ls.IDs())
	p, ok := ls.Presence(ls.Layers()[0])
	require.True(t, ok)
	assert.Equal(t, 50.0, p.PercentPresence)
	_, ok = ls.Presence(ls.Layers()[1])
	assert.False(t, ok)
	a, ok := ls.Ancillary(ls.Layers()[1])
	require.True(t, ok)
	assert.True(t, a.WeightedMean)
}

func TestNewLayerSet_Errors(t *testing.T) {
	pav := []gridview.PresenceAbsenceParameters{{ID: 10, MaxPresence: 1, PercentPresence: 10}}
	cases := []struct {
		name   string
		layers []gridview.Layer
		pav    []gridview.PresenceAbsenceParameters
		anc    []gridview.AncillaryParameters
		want   error
	}{
		{"DuplicateLayer", []gridview.Layer{{ID: 1, ParamsID: 10}, {ID: 1, ParamsID: 10}}, pav, nil, gridview.ErrDuplicateLayer},
		{"DuplicateParams", nil, append(pav, pav[0]), nil, gridview.ErrDuplicateLayer},
		{"MissingParams", []gridview.Layer{{ID: 1, ParamsID: 99}}, pav, nil, gridview.ErrMissingParams},
		{"InvertedRange", nil, []gridview.PresenceAbsenceParameters{{ID: 1, MinPresence: 2, MaxPresence: 1}}, nil, gridview.ErrBadParams},
		{"PercentOver100", nil, []gridview.PresenceAbsenceParameters{{ID: 1, PercentPresence: 101}}, nil, gridview.ErrBadParams},
		{"AncillaryPercent", nil, nil, []gridview.AncillaryParameters{{ID: 1, MinPercent: -1}}, gridview.ErrBadParams},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridview.NewLayerSet(tc.layers, tc.pav, tc.anc)
			require.ErrorIs(t, err, tc.want)
		})
	}
}
