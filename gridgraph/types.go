package gridgraph

import "errors"

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrBadOption indicates an invalid GridOptions value.
	ErrBadOption = errors.New("gridgraph: invalid grid option")
	// ErrMaskLength indicates a site mask whose length differs from the site count.
	ErrMaskLength = errors.New("gridgraph: mask length must equal site count")
	// ErrSiteNotFound indicates a site id or index outside the grid.
	ErrSiteNotFound = errors.New("gridgraph: site not found")
)

// Shape selects the cell geometry of a shapegrid.
type Shape int

const (
	// Square cells have four sides.
	Square Shape = iota
	// Hexagon cells are pointy-top hexagons in odd-r offset rows.
	Hexagon
)

// Sides returns the number of edges of one cell of this shape.
func (s Shape) Sides() int {
	if s == Hexagon {
		return 6
	}
	return 4
}

// String implements fmt.Stringer.
func (s Shape) String() string {
	switch s {
	case Square:
		return "square"
	case Hexagon:
		return "hexagon"
	default:
		return "unknown"
	}
}

// Connectivity selects neighbour connectivity for square cells:
// orthogonal (Conn4) or including diagonals (Conn8). Hexagonal grids ignore it.
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Site is one grid cell: its id, its (Row, Col) position and its centroid.
type Site struct {
	ID       int
	Row, Col int
	X, Y     float64
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// Shape chooses square or hexagonal cells.
	Shape Shape
	// Conn chooses 4- or 8-directional connectivity for square cells.
	Conn Connectivity
	// OriginX, OriginY is the lower-left corner of the grid extent.
	OriginX, OriginY float64
	// CellSize is the side length of a square cell or the circumradius of a hexagon.
	CellSize float64
	// FirstID is the id of the site at row 0, column 0; ids increase row-major.
	FirstID int
}

// DefaultGridOptions returns GridOptions with default settings:
// square cells, Conn4, origin (0,0), unit cells, ids from 0.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Shape:    Square,
		Conn:     Conn4,
		CellSize: 1,
	}
}

// GridGraph is an immutable Rows×Cols shapegrid.
// Sites are stored row-major, so the site index of (row, col) is row*Cols+col.
type GridGraph struct {
	Rows, Cols int
	Shape      Shape
	Conn       Connectivity
	CellSize   float64
	OriginX    float64
	OriginY    float64
	FirstID    int

	sites []Site
}
