package gridview

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateLayer is returned when two layers or two parameter sets share an id.
	ErrDuplicateLayer = errors.New("gridview: duplicate layer id")
	// ErrMissingParams is returned when a layer's ParamsID resolves to no parameters.
	ErrMissingParams = errors.New("gridview: layer parameters not found")
	// ErrBadParams is returned for out-of-range layer parameters.
	ErrBadParams = errors.New("gridview: invalid layer parameters")
)

// Layer is one distribution-data source. ParamsID joins it to a
// PresenceAbsenceParameters or AncillaryParameters value.
type Layer struct {
	ID       int
	Name     string
	ParamsID int
}

// PresenceAbsenceParameters turn coverage into presence.
type PresenceAbsenceParameters struct {
	ID int
	// AttrPresence names the attribute holding the presence value.
	AttrPresence string
	MinPresence  float64
	MaxPresence  float64
	// PercentPresence is the cell coverage, in percent, required for presence.
	PercentPresence float64
}

// AncillaryParameters turn coverage into one environmental value per site.
type AncillaryParameters struct {
	ID        int
	AttrValue string
	// WeightedMean selects the area-weighted mean of the covered values.
	// With neither mode set every value is NaN.
	WeightedMean bool
	// LargestClass selects the value covering the largest area, if it covers at
	// least MinPercent of the cell. It takes precedence over WeightedMean.
	LargestClass bool
	MinPercent   float64
}

// LayerSet is the ordered, immutable layer collection of a grid view.
// Layer order is column order.
type LayerSet struct {
	layers    []Layer
	presence  map[int]PresenceAbsenceParameters
	ancillary map[int]AncillaryParameters
}

// NewLayerSet validates and joins layers with their parameters.
// Every layer's ParamsID must resolve to a presence or ancillary parameter set.
func NewLayerSet(layers []Layer, presence []PresenceAbsenceParameters, ancillary []AncillaryParameters) (LayerSet, error) {
	ls := LayerSet{
		layers:    append([]Layer(nil), layers...),
		presence:  make(map[int]PresenceAbsenceParameters, len(presence)),
		ancillary: make(map[int]AncillaryParameters, len(ancillary)),
	}
	for _, p := range presence {
		if _, dup := ls.presence[p.ID]; dup {
			return LayerSet{}, fmt.Errorf("NewLayerSet: presence params %d: %w", p.ID, ErrDuplicateLayer)
		}
		if p.MinPresence > p.MaxPresence || p.PercentPresence < 0 || p.PercentPresence > 100 {
			return LayerSet{}, fmt.Errorf("NewLayerSet: presence params %d: %w", p.ID, ErrBadParams)
		}
		ls.presence[p.ID] = p
	}
	for _, a := range ancillary {
		if _, dup := ls.ancillary[a.ID]; dup {
			return LayerSet{}, fmt.Errorf("NewLayerSet: ancillary params %d: %w", a.ID, ErrDuplicateLayer)
		}
		if a.MinPercent < 0 || a.MinPercent > 100 {
			return LayerSet{}, fmt.Errorf("NewLayerSet: ancillary params %d: %w", a.ID, ErrBadParams)
		}
		ls.ancillary[a.ID] = a
	}

	seen := make(map[int]bool, len(layers))
	for _, l := range layers {
		if seen[l.ID] {
			return LayerSet{}, fmt.Errorf("NewLayerSet: layer %d: %w", l.ID, ErrDuplicateLayer)
		}
		seen[l.ID] = true
		_, okP := ls.presence[l.ParamsID]
		_, okA := ls.ancillary[l.ParamsID]
		if !okP && !okA {
			return LayerSet{}, fmt.Errorf("NewLayerSet: layer %d params %d: %w", l.ID, l.ParamsID, ErrMissingParams)
		}
	}
	return ls, nil
}

// Len returns the number of layers.
func (ls LayerSet) Len() int { return len(ls.layers) }

// Layers returns a copy of the layers in column order.
func (ls LayerSet) Layers() []Layer { return append([]Layer(nil), ls.layers...) }

// IDs returns the layer ids in column order.
func (ls LayerSet) IDs() []int {
	ids := make([]int, len(ls.layers))
	for i, l := range ls.layers {
		ids[i] = l.ID
	}
	return ids
}

// Presence returns the presence/absence parameters of l.
func (ls LayerSet) Presence(l Layer) (PresenceAbsenceParameters, bool) {
	p, ok := ls.presence[l.ParamsID]
	return p, ok
}

// Ancillary returns the ancillary parameters of l.
func (ls LayerSet) Ancillary(l Layer) (AncillaryParameters, bool) {
	a, ok := ls.ancillary[l.ParamsID]
	return a, ok
}
