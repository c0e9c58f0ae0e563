package gridgraph_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pamsum/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGridGraph and geometry
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that NewGridGraph rejects empty grids and bad options.
func TestNewGridGraph_Errors(t *testing.T) {
	hexZero := gridgraph.DefaultGridOptions()
	hexZero.Shape = gridgraph.Hexagon
	hexZero.CellSize = 0
	badShape := gridgraph.DefaultGridOptions()
	badShape.Shape = gridgraph.Shape(7)

	cases := []struct {
		name       string
		rows, cols int
		opts       gridgraph.GridOptions
		err        error
	}{
		{"NoRows", 0, 3, gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"NoCols", 3, 0, gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"ZeroCellSize", 2, 2, hexZero, gridgraph.ErrBadOption},
		{"UnknownShape", 2, 2, badShape, gridgraph.ErrBadOption},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.rows, tc.cols, tc.opts)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGridGraph error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestSquareCentroidsAndIDs checks site ids, ordering and square centroids.
func TestSquareCentroidsAndIDs(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.OriginX, opts.OriginY = 100, 200
	opts.CellSize = 10
	opts.FirstID = 1
	gg, err := gridgraph.NewGridGraph(2, 3, opts)
	require.NoError(t, err)

	assert.Equal(t, 6, gg.SiteCount())
	assert.Equal(t, 4, gg.CellSides())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, gg.SiteIDs())

	s, err := gg.SiteAt(5)
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Site{ID: 6, Row: 1, Col: 2, X: 125, Y: 215}, s)

	idx, err := gg.IndexOf(4)
	require.NoError(t, err)
	assert.Equal(t, 3, idx)

	_, err = gg.IndexOf(0)
	require.ErrorIs(t, err, gridgraph.ErrSiteNotFound)
	_, err = gg.SiteAt(6)
	require.ErrorIs(t, err, gridgraph.ErrSiteNotFound)

	r, c := gg.Coordinate(4)
	assert.Equal(t, [2]int{1, 1}, [2]int{r, c})
	assert.True(t, gg.InBounds(1, 2))
	assert.False(t, gg.InBounds(2, 0))
}

// TestHexCentroids verifies the odd-r shift of hexagon centroids.
func TestHexCentroids(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.Shape = gridgraph.Hexagon
	gg, err := gridgraph.NewGridGraph(2, 2, opts)
	require.NoError(t, err)
	assert.Equal(t, 6, gg.CellSides())

	w := math.Sqrt(3)
	sites := gg.Sites()
	assert.InDelta(t, w/2, sites[0].X, 1e-12)
	assert.InDelta(t, 1.0, sites[0].Y, 1e-12)
	assert.InDelta(t, w/2+w/2, sites[2].X, 1e-12, "odd row shifted by half a cell")
	assert.InDelta(t, 2.5, sites[2].Y, 1e-12)
	assert.InDelta(t, sites[0].X+w, sites[1].X, 1e-12)
}

//----------------------------------------------------------------------------//
// Topology
//----------------------------------------------------------------------------//

// TestTopology counts edges and degrees for each supported cell layout on 3×3:
//
//	square Conn4: 12 edges, centre degree 4
//	square Conn8: 20 edges, centre degree 8
//	hexagon:      16 edges, centre degree 6
func TestTopology(t *testing.T) {
	cases := []struct {
		name     string
		shape    gridgraph.Shape
		conn     gridgraph.Connectivity
		edges    int
		maxDeg   int
		contEdge int
	}{
		{"SquareConn4", gridgraph.Square, gridgraph.Conn4, 12, 4, 12},
		{"SquareConn8", gridgraph.Square, gridgraph.Conn8, 20, 8, 12},
		{"Hexagon", gridgraph.Hexagon, gridgraph.Conn4, 16, 6, 16},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := gridgraph.DefaultGridOptions()
			opts.Shape, opts.Conn = tc.shape, tc.conn
			gg, err := gridgraph.NewGridGraph(3, 3, opts)
			require.NoError(t, err)

			g := gg.ToCoreGraph()
			assert.Equal(t, 9, g.VertexCount())
			assert.Equal(t, tc.edges, g.EdgeCount())
			assert.Equal(t, tc.maxDeg, g.MaxDegree())
			assert.Equal(t, tc.maxDeg, g.Degree(4))

			cg := gg.ContiguityGraph()
			assert.Equal(t, tc.contEdge, cg.EdgeCount())
			assert.LessOrEqual(t, cg.MaxDegree(), gg.CellSides())
		})
	}
}

// TestHexNeighbors pins the odd-r neighbour sets of a corner and an odd-row edge cell.
func TestHexNeighbors(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.Shape = gridgraph.Hexagon
	gg, err := gridgraph.NewGridGraph(3, 3, opts)
	require.NoError(t, err)

	assert.ElementsMatch(t, []int{1, 3}, gg.Neighbors(0))
	assert.ElementsMatch(t, []int{4, 1, 0, 6, 7}, gg.Neighbors(3))
	assert.ElementsMatch(t, []int{2, 4, 8}, gg.Neighbors(5))
	assert.Nil(t, gg.Neighbors(9))
}
