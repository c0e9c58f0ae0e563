package gridgraph

import "fmt"

// ConnectedComponents finds all contiguous patches of sites whose mask entry
// is true, according to the configured connectivity.
// Returns a slice of components; each component lists row-major site
// indices in BFS order, and components appear in order of their first site.
//
// Time:   O(R·C·d), where d = 4, 6 or 8.
// Memory: O(R·C) for visited flags and output.
func (gg *GridGraph) ConnectedComponents(mask []bool) ([][]int, error) {
	total := len(gg.sites)
	if len(mask) != total {
		return nil, fmt.Errorf("ConnectedComponents: %w: got %d, want %d", ErrMaskLength, len(mask), total)
	}
	seen := make([]bool, total)
	var comps [][]int

	for i0 := 0; i0 < total; i0++ {
		if !mask[i0] || seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range gg.Neighbors(queue[qi]) {
				if mask[v] && !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps, nil
}
