// Package testfixture synthesizes star frames and feature catalogs for
// the extraction and identification test suites. It exists only to
// support tests: gocv renders synthetic spots the way
// internal/via/detector.go consumes real ones, run in reverse, and
// gonum/stat/distuv supplies angular noise for synthetic catalogs.
package testfixture

import (
	"image"
	"image/color"
	"math"
	"sort"

	"gocv.io/x/gocv"
	"gonum.org/v1/gonum/stat/distuv"

	"startracker/internal/catalog"
	"startracker/internal/frame"
	"startracker/pkg/vecmath"
)

// StarSpec places one synthetic star at (x, y) with a given peak
// intensity and Gaussian falloff radius.
type StarSpec struct {
	X, Y    float64
	Peak    uint8
	SigmaPx float64
}

// RenderSquareFrame stamps a flat square of constant intensity, with a
// side of 2*halfSide+1 pixels, at each spec's center, producing known-area, known-centroid
// spots with no sub-pixel weighting ambiguity. Useful for area-filter
// and centroid-exactness tests (S2/S3).
func RenderSquareFrame(rows, cols int, specs []StarSpec, halfSide int) *frame.Frame {
	mat := gocv.NewMatWithSize(rows, cols, gocv.MatTypeCV8UC1)
	defer mat.Close()

	for _, s := range specs {
		cx, cy := int(s.X), int(s.Y)
		rect := image.Rect(cx-halfSide, cy-halfSide, cx+halfSide+1, cy+halfSide+1)
		gray := color.RGBA{R: s.Peak, G: s.Peak, B: s.Peak, A: 255}
		gocv.Rectangle(&mat, rect, gray, -1)
	}

	return fromMat(mat)
}

// RenderSyntheticStars stamps Gaussian-falloff bright spots onto a
// frame at sub-pixel centers, approximating the intensity-weighted
// centroid behaviour of a real defocused star image (S4/S5/S6).
func RenderSyntheticStars(rows, cols int, specs []StarSpec) *frame.Frame {
	mat := gocv.NewMatWithSize(rows, cols, gocv.MatTypeCV8UC1)
	defer mat.Close()

	f := fromMat(mat)

	for _, s := range specs {
		radius := int(math.Ceil(3 * s.SigmaPx))
		x0, x1 := clamp(int(s.X)-radius, 0, cols-1), clamp(int(s.X)+radius, 0, cols-1)
		y0, y1 := clamp(int(s.Y)-radius, 0, rows-1), clamp(int(s.Y)+radius, 0, rows-1)

		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				dx, dy := float64(x)-s.X, float64(y)-s.Y
				weight := math.Exp(-(dx*dx + dy*dy) / (2 * s.SigmaPx * s.SigmaPx))
				v := uint8(math.Round(float64(s.Peak) * weight))
				if v > f.At(x, y) {
					f.Set(x, y, v)
				}
			}
		}
	}

	return f
}

func fromMat(mat gocv.Mat) *frame.Frame {
	f := frame.NewFrame(mat.Rows(), mat.Cols())
	copy(f.Pix, mat.ToBytes())
	return f
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SyntheticCatalog builds a feature list and K-vector index for the
// given directions, adding zero-mean Gaussian angular noise with
// standard deviation sigmaDeg to each pairwise angle before it is
// catalogued — modeling the residual error of a real star catalog.
func SyntheticCatalog(directions []vecmath.Vec3, sigmaDeg float64) *catalog.Catalog {
	noise := distuv.Normal{Mu: 0, Sigma: sigmaDeg}

	type rec struct {
		hip1, hip2 int32
		theta      float64
	}
	var recs []rec
	for i := 0; i < len(directions)-1; i++ {
		for j := i + 1; j < len(directions); j++ {
			theta := directions[i].AngleDeg(directions[j]) + noise.Rand()
			recs = append(recs, rec{hip1: int32(i), hip2: int32(j), theta: theta})
		}
	}

	sort.Slice(recs, func(a, b int) bool { return recs[a].theta < recs[b].theta })

	// A fine bin width keeps the K-vector's conservative "superset"
	// margin well under any reasonable matching tolerance eps.
	const m = 0.001
	q := recs[0].theta - m
	cat := &catalog.Catalog{Q: q, M: m}
	for _, r := range recs {
		cat.Features = append(cat.Features, catalog.Feature{ID1: r.hip1, ID2: r.hip2, Theta: r.theta})
	}

	// KVector[j] holds the 0-indexed position of the last feature with
	// theta <= q+j*m (or -1 if none), matching the convention Range
	// expects: kb = KVector[jb]+1 is the first index past that boundary.
	binMax := int(math.Floor((recs[len(recs)-1].theta-q)/m)) + 2
	k := -1
	for bin := 0; bin <= binMax; bin++ {
		boundary := q + float64(bin)*m
		for k+1 < len(cat.Features) && cat.Features[k+1].Theta <= boundary {
			k++
		}
		cat.KVector = append(cat.KVector, k)
	}

	return cat
}
