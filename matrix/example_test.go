package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/pamsum/matrix"
)

// ExampleCompress removes the empty site row and the empty layer column,
// then restores them with Decompress.
func ExampleCompress() {
	raw := matrix.MustFromRows([][]bool{
		{true, false, true},
		{false, false, false},
		{false, false, true},
	})
	c, idx, _ := matrix.Compress(raw, []int{10, 20, 30}, []int{1, 2, 3})
	fmt.Println(c)
	fmt.Println("sites:", idx.PresentSiteIDs(), "layers:", idx.PresentLayerIDs())

	occupied, _ := matrix.ColumnPresence(c, idx, 1)
	fmt.Println("layer 3 at sites:", occupied)

	full, _ := matrix.Decompress(c, idx)
	fmt.Println(full.Equal(raw))

	// Output:
	// 11
	// 01
	// sites: [10 30] layers: [1 3]
	// layer 3 at sites: [10 30]
	// true
}
