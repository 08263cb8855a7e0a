// Package spot turns connected-component statistics into the Spot list
// consumed by the rest of the pipeline.
package spot

import (
	"startracker/internal/components"
	"startracker/pkg/vecmath"
)

// DefaultMinArea is the minimum pixel count (exclusive) a component must
// have to be emitted as a Spot.
const DefaultMinArea = 16

// Spot is a candidate image of a star: a connected bright region above
// threshold with area above the minimum.
type Spot struct {
	Center vecmath.Vec2
	Area   uint32
}

// Filter emits a Spot for every label whose area exceeds minArea, in
// ascending label order (row-major first-touch order). The intensity-
// weighted centroid is sumXI/sumI, sumYI/sumI. Earlier ports of this
// accumulator computed y from the x weighting; that bug is not
// reproduced here.
func Filter(stats []components.Stats, minArea int) []Spot {
	var spots []Spot
	for label := 1; label < len(stats); label++ {
		s := stats[label]
		if s.Area <= minArea || s.SumI == 0 {
			continue
		}
		spots = append(spots, Spot{
			Center: vecmath.Vec2{
				X: float64(s.SumXI) / float64(s.SumI),
				Y: float64(s.SumYI) / float64(s.SumI),
			},
			Area: uint32(s.Area),
		})
	}
	return spots
}
