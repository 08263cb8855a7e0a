package legacy

import (
	"fmt"

	"startracker/internal/calib"
	"startracker/internal/components"
	"startracker/internal/config"
	"startracker/internal/frame"
	"startracker/internal/spot"
	"startracker/pkg/vecmath"
)

// Result mirrors pipeline.Result for the legacy identification path.
type Result struct {
	Frame   *frame.Frame
	Spots   []spot.Spot
	Vectors []vecmath.Vec3
	IDs     []int32
}

// Run executes the same extraction stages as the default pipeline, then
// identifies the resulting spot vectors with the legacy 2-star voting
// method against the SQLite feature database at dbPath.
func Run(cfg *config.Config, dbPath string) (*Result, error) {
	f, err := frame.Load(cfg.ImagePath, cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, fmt.Errorf("legacy: %w", err)
	}

	thresholded := frame.ThresholdNew(f, uint8(cfg.Threshold))

	_, stats := components.Label(thresholded)
	spots := spot.Filter(stats, cfg.MinArea)

	c, err := calib.Load(cfg.CalibPath)
	if err != nil {
		return nil, fmt.Errorf("legacy: %w", err)
	}

	centers := make([]vecmath.Vec2, len(spots))
	for i, s := range spots {
		centers[i] = s.Center
	}
	vectors := calib.SpotVectors(centers, c)

	store, err := OpenDatabase(dbPath)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	ids, err := Identify2Star(vectors, store, cfg.EpsilonDeg)
	if err != nil {
		return nil, err
	}

	return &Result{Frame: f, Spots: spots, Vectors: vectors, IDs: ids}, nil
}
