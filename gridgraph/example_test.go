package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/pamsum/gridgraph"
)

// ExampleGridGraph_ConnectedComponents identifies contiguous patches of
// occupied cells in a 3×5 square grid with rook connectivity.
func ExampleGridGraph_ConnectedComponents() {
	occupied := [][]int{
		{0, 1, 1, 0, 1},
		{1, 1, 0, 1, 1},
		{1, 0, 1, 1, 0},
	}
	gg, _ := gridgraph.NewGridGraph(3, 5, gridgraph.DefaultGridOptions())
	var mask []bool
	for _, row := range occupied {
		for _, v := range row {
			mask = append(mask, v == 1)
		}
	}

	comps, _ := gg.ConnectedComponents(mask)
	fmt.Println("patches:", len(comps))
	for i, comp := range comps {
		fmt.Printf("patch %d:", i)
		for _, idx := range comp {
			r, c := gg.Coordinate(idx)
			fmt.Printf(" (%d,%d)", r, c)
		}
		fmt.Println()
	}

	// Output:
	// patches: 2
	// patch 0: (0,1) (0,2) (1,1) (1,0) (2,0)
	// patch 1: (0,4) (1,4) (1,3) (2,3) (2,2)
}

// ExampleGridGraph_ContiguityGraph shows the adjacency splotch randomization
// walks on a small hexagonal grid.
func ExampleGridGraph_ContiguityGraph() {
	opts := gridgraph.DefaultGridOptions()
	opts.Shape = gridgraph.Hexagon
	gg, _ := gridgraph.NewGridGraph(3, 3, opts)

	g := gg.ContiguityGraph()
	fmt.Println("sides:", gg.CellSides())
	fmt.Println("edges:", g.EdgeCount())
	fmt.Println("centre degree:", g.Degree(4))

	// Output:
	// sides: 6
	// edges: 16
	// centre degree: 6
}
