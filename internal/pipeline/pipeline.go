// Package pipeline wires the extraction and identification stages into
// a single end-to-end run: load image, threshold, label, filter spots,
// build line-of-sight vectors, load the catalog, and identify.
package pipeline

import (
	"fmt"

	"startracker/internal/calib"
	"startracker/internal/catalog"
	"startracker/internal/components"
	"startracker/internal/config"
	"startracker/internal/frame"
	"startracker/internal/identify"
	"startracker/internal/spot"
	"startracker/pkg/vecmath"
)

// Result is everything a caller (CLI, diagnostics renderer, tests)
// needs from one run: the extracted spots in detection order, their
// line-of-sight vectors in the same order, and the parallel catalog id
// list produced by identification.
type Result struct {
	Frame   *frame.Frame
	Spots   []spot.Spot
	Vectors []vecmath.Vec3
	IDs     []int32
}

// Run executes the full pipeline against the given configuration: load
// the raw image, threshold it, label connected components, filter spots
// by area, convert centroids to line-of-sight vectors via the
// calibration, load the feature catalog, and identify.
func Run(cfg *config.Config) (*Result, error) {
	f, err := frame.Load(cfg.ImagePath, cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	thresholded := frame.ThresholdNew(f, uint8(cfg.Threshold))

	_, stats := components.Label(thresholded)
	spots := spot.Filter(stats, cfg.MinArea)

	c, err := calib.Load(cfg.CalibPath)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	centers := make([]vecmath.Vec2, len(spots))
	for i, s := range spots {
		centers[i] = s.Center
	}
	vectors := calib.SpotVectors(centers, c)

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	ids, err := identify.Identify(vectors, cat, cfg.EpsilonDeg)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	return &Result{Frame: f, Spots: spots, Vectors: vectors, IDs: ids}, nil
}
