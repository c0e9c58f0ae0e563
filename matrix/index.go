// SPDX-License-Identifier: MIT
// Package matrix: PresenceIndex, the record of which original sites and
// layers survived compression.

package matrix

import "fmt"

// PresenceIndex maps every original site id and layer id to whether it kept
// a row (column) in the compressed matrix. SiteIDs and LayerIDs preserve the
// original order; present entries appear in the compressed matrix in that order.
type PresenceIndex struct {
	SiteIDs       []int
	LayerIDs      []int
	SitesPresent  map[int]bool
	LayersPresent map[int]bool
}

// NewPresenceIndex returns an index over the given ids with every entry absent.
// Returns ErrDuplicateID if an id repeats within its list.
func NewPresenceIndex(siteIDs, layerIDs []int) (*PresenceIndex, error) {
	idx := &PresenceIndex{
		SiteIDs:       append([]int(nil), siteIDs...),
		LayerIDs:      append([]int(nil), layerIDs...),
		SitesPresent:  make(map[int]bool, len(siteIDs)),
		LayersPresent: make(map[int]bool, len(layerIDs)),
	}
	for _, id := range siteIDs {
		if _, dup := idx.SitesPresent[id]; dup {
			return nil, fmt.Errorf("NewPresenceIndex: site %d: %w", id, ErrDuplicateID)
		}
		idx.SitesPresent[id] = false
	}
	for _, id := range layerIDs {
		if _, dup := idx.LayersPresent[id]; dup {
			return nil, fmt.Errorf("NewPresenceIndex: layer %d: %w", id, ErrDuplicateID)
		}
		idx.LayersPresent[id] = false
	}
	return idx, nil
}

// PresentSiteCount returns the number of present sites.
func (p *PresenceIndex) PresentSiteCount() int { return countTrue(p.SitesPresent) }

// PresentLayerCount returns the number of present layers.
func (p *PresenceIndex) PresentLayerCount() int { return countTrue(p.LayersPresent) }

// PresentSiteIDs returns the present site ids in compressed row order.
func (p *PresenceIndex) PresentSiteIDs() []int { return presentIDs(p.SiteIDs, p.SitesPresent) }

// PresentLayerIDs returns the present layer ids in compressed column order.
func (p *PresenceIndex) PresentLayerIDs() []int { return presentIDs(p.LayerIDs, p.LayersPresent) }

// Validate checks that m has one row per present site and one column per
// present layer, and that the maps cover exactly the ordered id lists.
func (p *PresenceIndex) Validate(m *Incidence) error {
	if p == nil || m == nil {
		return fmt.Errorf("Validate: %w", ErrNilMatrix)
	}
	if len(p.SitesPresent) != len(p.SiteIDs) || len(p.LayersPresent) != len(p.LayerIDs) {
		return fmt.Errorf("Validate: index maps do not match id lists: %w", ErrShape)
	}
	if r := p.PresentSiteCount(); r != m.Rows() {
		return fmt.Errorf("Validate: %d present sites, matrix has %d rows: %w", r, m.Rows(), ErrShape)
	}
	if c := p.PresentLayerCount(); c != m.Cols() {
		return fmt.Errorf("Validate: %d present layers, matrix has %d cols: %w", c, m.Cols(), ErrShape)
	}
	return nil
}

// Clone returns a deep copy.
func (p *PresenceIndex) Clone() *PresenceIndex {
	cp := &PresenceIndex{
		SiteIDs:       append([]int(nil), p.SiteIDs...),
		LayerIDs:      append([]int(nil), p.LayerIDs...),
		SitesPresent:  make(map[int]bool, len(p.SitesPresent)),
		LayersPresent: make(map[int]bool, len(p.LayersPresent)),
	}
	for k, v := range p.SitesPresent {
		cp.SitesPresent[k] = v
	}
	for k, v := range p.LayersPresent {
		cp.LayersPresent[k] = v
	}
	return cp
}

func countTrue(m map[int]bool) int {
	n := 0
	for _, v := range m {
		if v {
			n++
		}
	}
	return n
}

func presentIDs(order []int, present map[int]bool) []int {
	out := make([]int, 0, len(order))
	for _, id := range order {
		if present[id] {
			out = append(out, id)
		}
	}
	return out
}
