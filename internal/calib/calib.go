// Package calib loads camera calibration and implements lens-distortion
// inversion and the normalised-image-point-to-line-of-sight conversion.
package calib

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"startracker/internal/starerr"
)

// Calibration holds the intrinsic parameters of the calibrated camera.
// Immutable after Load.
type Calibration struct {
	CX, CY             float64 // principal point
	S                  float64 // pixel skew
	K1, K2, P1, P2, K3 float64 // distortion coefficients
	FX, FY             float64 // focal length
}

// HasDistortion reports whether any distortion coefficient is non-zero.
func (c *Calibration) HasDistortion() bool {
	return c.K1 != 0 || c.K2 != 0 || c.P1 != 0 || c.P2 != 0 || c.K3 != 0
}

// Load reads a calibration file: ten whitespace-separated ASCII floats,
// in order cx cy s k1 k2 p1 p2 k3 fx fy.
func Load(path string) (*Calibration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("calib: read %s: %w", path, starerr.ErrIO)
	}

	fields := strings.Fields(string(data))
	if len(fields) < 10 {
		return nil, fmt.Errorf("calib: %s has %d fields, need 10: %w", path, len(fields), starerr.ErrParse)
	}

	vals := make([]float64, 10)
	for i := 0; i < 10; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, fmt.Errorf("calib: %s field %d %q: %w", path, i, fields[i], starerr.ErrParse)
		}
		vals[i] = v
	}

	return &Calibration{
		CX: vals[0], CY: vals[1], S: vals[2],
		K1: vals[3], K2: vals[4], P1: vals[5], P2: vals[6], K3: vals[7],
		FX: vals[8], FY: vals[9],
	}, nil
}
