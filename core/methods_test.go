package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pamsum/core"
)

// TestAddVertex_Idempotent verifies repeated inserts keep the first index.
func TestAddVertex_Idempotent(t *testing.T) {
	g := core.NewGraph()
	a := g.AddVertex(10)
	b := g.AddVertex(20)
	again := g.AddVertex(10)

	assert.Equal(t, 0, a)
	assert.Equal(t, 1, b)
	assert.Equal(t, a, again)
	assert.Equal(t, 2, g.VertexCount())

	_, err := g.AddVertexStrict(20)
	require.ErrorIs(t, err, core.ErrDuplicateVertex)
}

// TestAddEdge_Errors covers loops and missing endpoints.
func TestAddEdge_Errors(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex(1)

	require.ErrorIs(t, g.AddEdge(1, 1), core.ErrLoopNotAllowed)
	require.ErrorIs(t, g.AddEdge(1, 2), core.ErrVertexNotFound)
	require.ErrorIs(t, g.AddEdge(3, 1), core.ErrVertexNotFound)
	assert.Equal(t, 0, g.EdgeCount())
}

// TestAddEdge_UndirectedAndSorted checks mirroring, de-duplication and ordering.
//
//	7 ─ 5 ─ 9
//	    │
//	    3
func TestAddEdge_UndirectedAndSorted(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []int{5, 9, 3, 7} {
		g.AddVertex(id)
	}
	require.NoError(t, g.AddEdge(5, 9))
	require.NoError(t, g.AddEdge(5, 3))
	require.NoError(t, g.AddEdge(7, 5))
	require.NoError(t, g.AddEdge(9, 5)) // duplicate, no-op

	assert.Equal(t, 3, g.EdgeCount())
	assert.True(t, g.HasEdge(9, 5))
	assert.False(t, g.HasEdge(9, 3))

	idx5, err := g.IndexOf(5)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, g.Neighbors(idx5))
	assert.Equal(t, 3, g.Degree(idx5))
	assert.Equal(t, 3, g.MaxDegree())

	ids, err := g.NeighborIDs(5)
	require.NoError(t, err)
	assert.Equal(t, []int{9, 3, 7}, ids)

	assert.Equal(t, []core.Edge{{From: 0, To: 1}, {From: 0, To: 2}, {From: 0, To: 3}}, g.Edges())
}

// TestIndexTranslation round-trips id ↔ index.
func TestIndexTranslation(t *testing.T) {
	g := core.NewGraphWithCapacity(3)
	for _, id := range []int{100, 200, 300} {
		g.AddVertex(id)
	}
	for i, id := range g.IDs() {
		idx, err := g.IndexOf(id)
		require.NoError(t, err)
		assert.Equal(t, i, idx)
		back, err := g.IDAt(idx)
		require.NoError(t, err)
		assert.Equal(t, id, back)
	}
	_, err := g.IDAt(3)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.IndexOf(42)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	assert.Nil(t, g.Neighbors(-1))
}

// TestClone_IsIndependent ensures mutating a clone leaves the source intact.
func TestClone_IsIndependent(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex(1)
	g.AddVertex(2)
	g.AddVertex(3)
	require.NoError(t, g.AddEdge(1, 2))

	c := g.Clone()
	require.NoError(t, c.AddEdge(2, 3))

	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 2, c.EdgeCount())
	assert.False(t, g.HasEdge(2, 3))
}

// TestConcurrentReads exercises shared read access from many goroutines.
func TestConcurrentReads(t *testing.T) {
	g := core.NewGraph()
	const n = 64
	for i := 0; i < n; i++ {
		g.AddVertex(i)
	}
	for i := 1; i < n; i++ {
		require.NoError(t, g.AddEdge(i-1, i))
	}

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(idx int) {
			defer wg.Done()
			for _, nb := range g.Neighbors(idx) {
				assert.True(t, nb == idx-1 || nb == idx+1)
			}
		}(i)
	}
	wg.Wait()
}
