package gridview

import (
	"context"
	"fmt"
	"maps"
	"math"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/pamsum/gridgraph"
	"github.com/katalvlaran/pamsum/matrix"
)

// Intersector overlays layers on sites and returns the full matrix, one row
// per site and one column per layer, both in the given order.
type Intersector interface {
	Intersect(ctx context.Context, sites []gridgraph.Site, layers LayerSet) (*matrix.Incidence, error)
}

// Coverage summarizes one layer inside one site cell.
type Coverage struct {
	// CellArea is the area of the site cell.
	CellArea float64
	// Areas maps each layer value found in the cell to the area it covers.
	Areas map[float64]float64
}

// CoverageSource reports the coverage of a layer attribute inside a site.
type CoverageSource interface {
	Coverage(ctx context.Context, layer Layer, attr string, site gridgraph.Site) (Coverage, error)
}

// CoverageMap is an in-memory CoverageSource keyed by layer id then site id.
// Missing entries have no coverage; attr is ignored.
type CoverageMap map[int]map[int]Coverage

// Coverage implements CoverageSource.
func (cm CoverageMap) Coverage(_ context.Context, layer Layer, _ string, site gridgraph.Site) (Coverage, error) {
	return cm[layer.ID][site.ID], nil
}

// ThresholdIntersector applies the presence rule of each layer's
// PresenceAbsenceParameters to coverage from Source. Layers are intersected
// concurrently by up to Workers goroutines (GOMAXPROCS when zero).
type ThresholdIntersector struct {
	Source  CoverageSource
	Workers int
}

// Intersect implements Intersector. Returns ErrMissingParams for a layer
// without presence parameters.
//
// Complexity: O(S·L) coverage lookups for S sites and L layers.
func (ti ThresholdIntersector) Intersect(ctx context.Context, sites []gridgraph.Site, layers LayerSet) (*matrix.Incidence, error) {
	full, err := matrix.NewIncidence(len(sites), layers.Len())
	if err != nil {
		return nil, fmt.Errorf("ThresholdIntersector: %w", err)
	}
	workers := ti.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	all := layers.Layers()
	params := make([]PresenceAbsenceParameters, len(all))
	for j, l := range all {
		p, ok := layers.Presence(l)
		if !ok {
			return nil, fmt.Errorf("ThresholdIntersector: layer %d: %w", l.ID, ErrMissingParams)
		}
		params[j] = p
	}

	cols := make([][]bool, len(all))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for j, l := range all {
		g.Go(func() error {
			col := make([]bool, len(sites))
			for i, s := range sites {
				if err := gctx.Err(); err != nil {
					return err
				}
				cov, err := ti.Source.Coverage(gctx, l, params[j].AttrPresence, s)
				if err != nil {
					return fmt.Errorf("layer %d site %d: %w", l.ID, s.ID, err)
				}
				col[i] = Present(cov, params[j])
			}
			cols[j] = col
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("ThresholdIntersector: %w", err)
	}
	for j, col := range cols {
		if err := full.SetColumn(j, col); err != nil {
			return nil, fmt.Errorf("ThresholdIntersector: %w", err)
		}
	}
	return full, nil
}

// Present reports whether the area covered by values in
// [MinPresence, MaxPresence] exceeds PercentPresence percent of the cell.
func Present(cov Coverage, p PresenceAbsenceParameters) bool {
	var covered float64
	for v, area := range cov.Areas {
		if v >= p.MinPresence && v <= p.MaxPresence {
			covered += area
		}
	}
	return covered > cov.CellArea*p.PercentPresence/100
}

// AncillaryValues computes one environmental value per site for layer.
//
// With LargestClass the value covering the most area is reported when it
// covers at least MinPercent of the cell, NaN otherwise; ties go to the
// smaller value. With WeightedMean the area-weighted mean is reported, 0 for a
// site with no coverage. With neither mode every value is NaN.
func AncillaryValues(ctx context.Context, src CoverageSource, sites []gridgraph.Site, layer Layer, p AncillaryParameters) ([]float64, error) {
	out := make([]float64, len(sites))
	for i, s := range sites {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		cov, err := src.Coverage(ctx, layer, p.AttrValue, s)
		if err != nil {
			return nil, fmt.Errorf("AncillaryValues(layer %d, site %d): %w", layer.ID, s.ID, err)
		}
		switch {
		case p.LargestClass:
			out[i] = largestClass(cov, p.MinPercent)
		case p.WeightedMean:
			out[i] = weightedMean(cov)
		default:
			out[i] = math.NaN()
		}
	}
	return out, nil
}

func largestClass(cov Coverage, minPercent float64) float64 {
	if len(cov.Areas) == 0 || cov.CellArea <= 0 {
		return math.NaN()
	}
	best, bestArea := math.NaN(), -1.0
	for _, v := range slices.Sorted(maps.Keys(cov.Areas)) {
		if a := cov.Areas[v]; a > bestArea {
			best, bestArea = v, a
		}
	}
	if bestArea/cov.CellArea < minPercent/100 {
		return math.NaN()
	}
	return best
}

func weightedMean(cov Coverage) float64 {
	values := slices.Sorted(maps.Keys(cov.Areas))
	areas := make([]float64, len(values))
	for i, v := range values {
		areas[i] = cov.Areas[v]
	}
	total := floats.Sum(areas)
	if total == 0 {
		return 0
	}
	return floats.Dot(values, areas) / total
}
