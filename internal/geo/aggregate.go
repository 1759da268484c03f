package geo

import (
	"sort"

	"github.com/jaeyk/wop-organizations-map/internal/dataset"
)

// Marker radius bounds in pixels. Radius scales with the state's count
// relative to the largest count in the same dataset/filter combination;
// the scaling is purely cosmetic.
const (
	MinRadius = 8.0
	MaxRadius = 30.0
)

// StateCount is one state-level aggregate marker: the number of
// coordinate-less rows in that state and the marker geometry.
type StateCount struct {
	State    string   `json:"state"`
	Count    int      `json:"count"`
	Centroid Centroid `json:"centroid"`
	Radius   float64  `json:"radius"`
}

// AggregateStates groups rows without coordinates by state code and computes
// per-state counts. Rows with no state code are dropped (they are not shown
// anywhere), as are state codes with no known centroid, since there is no
// reference point to place the marker at. Results are sorted by state code.
func AggregateStates(rows []dataset.Record) []StateCount {
	counts := make(map[string]int)
	for _, rec := range rows {
		if rec.HasCoordinates() || rec.State == "" {
			continue
		}
		if _, ok := StateCentroids[rec.State]; !ok {
			continue
		}
		counts[rec.State]++
	}
	if len(counts) == 0 {
		return nil
	}

	maxCount := 0
	for _, n := range counts {
		if n > maxCount {
			maxCount = n
		}
	}

	out := make([]StateCount, 0, len(counts))
	for state, n := range counts {
		out = append(out, StateCount{
			State:    state,
			Count:    n,
			Centroid: StateCentroids[state],
			Radius:   scaleRadius(n, maxCount),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].State < out[j].State })
	return out
}

// scaleRadius maps a count onto [MinRadius, MaxRadius] normalized by the
// maximum count, with the minimum as floor.
func scaleRadius(count, maxCount int) float64 {
	if maxCount <= 0 {
		return MinRadius
	}
	return MinRadius + (float64(count)/float64(maxCount))*(MaxRadius-MinRadius)
}
