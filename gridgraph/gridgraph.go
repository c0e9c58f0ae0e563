package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pamsum/core"
)

var (
	offsetsConn4 = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	offsetsConn8 = [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}

	// odd-r layout: odd rows are shifted right by half a cell.
	offsetsHexEven = [][2]int{{0, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}, {1, 0}}
	offsetsHexOdd  = [][2]int{{0, 1}, {-1, 1}, {-1, 0}, {0, -1}, {1, 0}, {1, 1}}
)

// NewGridGraph lays out a rows×cols shapegrid and computes every site centroid.
// Returns ErrEmptyGrid if rows or cols is not positive, ErrBadOption for a
// non-positive cell size or unknown shape.
// Complexity: O(R×C) time and memory.
func NewGridGraph(rows, cols int, opts GridOptions) (*GridGraph, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewGridGraph(%d,%d): %w", rows, cols, ErrEmptyGrid)
	}
	if !(opts.CellSize > 0) {
		return nil, fmt.Errorf("NewGridGraph: %w: cell size %v", ErrBadOption, opts.CellSize)
	}
	if opts.Shape != Square && opts.Shape != Hexagon {
		return nil, fmt.Errorf("NewGridGraph: %w: shape %d", ErrBadOption, opts.Shape)
	}

	gg := &GridGraph{
		Rows:     rows,
		Cols:     cols,
		Shape:    opts.Shape,
		Conn:     opts.Conn,
		CellSize: opts.CellSize,
		OriginX:  opts.OriginX,
		OriginY:  opts.OriginY,
		FirstID:  opts.FirstID,
		sites:    make([]Site, 0, rows*cols),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			x, y := gg.centroid(r, c)
			gg.sites = append(gg.sites, Site{
				ID:  opts.FirstID + r*cols + c,
				Row: r,
				Col: c,
				X:   x,
				Y:   y,
			})
		}
	}

	return gg, nil
}

// centroid returns the cell centre of (row, col).
func (gg *GridGraph) centroid(r, c int) (x, y float64) {
	s := gg.CellSize
	if gg.Shape == Hexagon {
		w := math.Sqrt(3) * s
		x = gg.OriginX + w*(float64(c)+0.5*float64(r&1)) + w/2
		y = gg.OriginY + 1.5*s*float64(r) + s
		return x, y
	}
	return gg.OriginX + (float64(c)+0.5)*s, gg.OriginY + (float64(r)+0.5)*s
}

// CellSides returns the edge count of one cell: 4 for squares, 6 for hexagons.
func (gg *GridGraph) CellSides() int { return gg.Shape.Sides() }

// SiteCount returns Rows×Cols.
func (gg *GridGraph) SiteCount() int { return len(gg.sites) }

// Sites returns a copy of all sites in row-major order.
func (gg *GridGraph) Sites() []Site {
	out := make([]Site, len(gg.sites))
	copy(out, gg.sites)
	return out
}

// SiteIDs returns all site ids in row-major order.
func (gg *GridGraph) SiteIDs() []int {
	ids := make([]int, len(gg.sites))
	for i, s := range gg.sites {
		ids[i] = s.ID
	}
	return ids
}

// SiteAt returns the site stored at row-major index idx.
func (gg *GridGraph) SiteAt(idx int) (Site, error) {
	if idx < 0 || idx >= len(gg.sites) {
		return Site{}, fmt.Errorf("SiteAt(%d): %w", idx, ErrSiteNotFound)
	}
	return gg.sites[idx], nil
}

// IndexOf returns the row-major index of the site with the given id.
func (gg *GridGraph) IndexOf(id int) (int, error) {
	idx := id - gg.FirstID
	if idx < 0 || idx >= len(gg.sites) {
		return -1, fmt.Errorf("IndexOf(%d): %w", id, ErrSiteNotFound)
	}
	return idx, nil
}

// InBounds reports whether (row, col) lies within the grid.
func (gg *GridGraph) InBounds(r, c int) bool {
	return r >= 0 && r < gg.Rows && c >= 0 && c < gg.Cols
}

// index maps (row, col) to its row-major index.
func (gg *GridGraph) index(r, c int) int { return r*gg.Cols + c }

// Coordinate converts a row-major index back to (row, col).
func (gg *GridGraph) Coordinate(idx int) (r, c int) {
	return idx / gg.Cols, idx % gg.Cols
}

// contiguityOffsets returns the edge-sharing offsets for a cell in row r.
func (gg *GridGraph) contiguityOffsets(r int) [][2]int {
	if gg.Shape == Hexagon {
		if r&1 == 1 {
			return offsetsHexOdd
		}
		return offsetsHexEven
	}
	return offsetsConn4
}

// neighborOffsets returns the offsets for the configured connectivity.
func (gg *GridGraph) neighborOffsets(r int) [][2]int {
	if gg.Shape == Square && gg.Conn == Conn8 {
		return offsetsConn8
	}
	return gg.contiguityOffsets(r)
}

// Neighbors returns the row-major indices adjacent to idx under the
// configured connectivity, in offset order.
func (gg *GridGraph) Neighbors(idx int) []int {
	if idx < 0 || idx >= len(gg.sites) {
		return nil
	}
	r, c := gg.Coordinate(idx)
	offs := gg.neighborOffsets(r)
	out := make([]int, 0, len(offs))
	for _, d := range offs {
		nr, nc := r+d[0], c+d[1]
		if gg.InBounds(nr, nc) {
			out = append(out, gg.index(nr, nc))
		}
	}
	return out
}

// ContiguityGraph builds the edge-sharing adjacency of the grid: rook
// topology for squares, six-neighbour topology for hexagons. Vertex index i
// of the result is site index i, and vertex ids are site ids.
// Complexity: O(R×C×d + E).
func (gg *GridGraph) ContiguityGraph() *core.Graph {
	return gg.buildGraph(gg.contiguityOffsets)
}

// ToCoreGraph builds the adjacency for the configured Conn. For hexagons and
// Conn4 squares it equals ContiguityGraph.
// Complexity: O(R×C×d + E).
func (gg *GridGraph) ToCoreGraph() *core.Graph {
	return gg.buildGraph(gg.neighborOffsets)
}

func (gg *GridGraph) buildGraph(offsets func(r int) [][2]int) *core.Graph {
	g := core.NewGraphWithCapacity(len(gg.sites))
	for _, s := range gg.sites {
		g.AddVertex(s.ID)
	}
	for _, s := range gg.sites {
		for _, d := range offsets(s.Row) {
			nr, nc := s.Row+d[0], s.Col+d[1]
			if !gg.InBounds(nr, nc) {
				continue
			}
			// ids are distinct and already present, so AddEdge cannot fail.
			_ = g.AddEdge(s.ID, gg.sites[gg.index(nr, nc)].ID)
		}
	}
	return g
}
