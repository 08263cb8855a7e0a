// Package diagnostics renders a debug PNG overlaying extracted spots
// and their identification results onto the source frame. It is a
// debug aid only: no package in the core extraction/identification
// pipeline depends on it, and it is the only place gocv appears outside
// test fixtures.
package diagnostics

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"startracker/internal/identify"
	"startracker/internal/pipeline"
)

// Render draws a green circle and the catalog id at every identified
// spot, a red circle and "?" at every unidentified one, and writes the
// result to path as a PNG.
func Render(r *pipeline.Result, path string) error {
	gray, err := gocv.NewMatFromBytes(r.Frame.Rows, r.Frame.Cols, gocv.MatTypeCV8UC1, r.Frame.Pix)
	if err != nil {
		return fmt.Errorf("diagnostics: build mat: %w", err)
	}
	defer gray.Close()

	debug := gocv.NewMat()
	defer debug.Close()
	gocv.CvtColor(gray, &debug, gocv.ColorGrayToBGR)

	green := color.RGBA{G: 255, A: 255}
	red := color.RGBA{R: 255, A: 255}

	for i, s := range r.Spots {
		id := identify.Unidentified
		if i < len(r.IDs) {
			id = r.IDs[i]
		}

		col := green
		label := fmt.Sprintf("%d", id)
		if id == identify.Unidentified {
			col = red
			label = "?"
		}

		center := image.Point{X: int(s.Center.X), Y: int(s.Center.Y)}
		gocv.Circle(&debug, center, 8, col, 2)
		gocv.PutText(&debug, label, image.Point{X: center.X + 10, Y: center.Y - 10},
			gocv.FontHersheyPlain, 1.0, col, 1)
	}

	if ok := gocv.IMWrite(path, debug); !ok {
		return fmt.Errorf("diagnostics: write %s failed", path)
	}
	return nil
}
