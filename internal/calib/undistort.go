package calib

import "startracker/pkg/vecmath"

// undistortIterations is a fixed iteration count with no convergence
// test. Kept as a fixed-point contract rather than an early-exit loop.
const undistortIterations = 20

// Undistort recovers the undistorted normalised point Xc from the
// distorted point Xd by fixed-point iteration. When the calibration has
// no distortion, the input is returned unchanged without iterating.
func Undistort(xd vecmath.Vec2, c *Calibration) vecmath.Vec2 {
	if !c.HasDistortion() {
		return xd
	}

	xc := xd
	for n := 0; n < undistortIterations; n++ {
		r2 := xc.SquaredNorm()
		r4 := r2 * r2
		kRadial := 1 + c.K1*r2 + c.K2*r4 + c.K3*r2*r4

		delta := vecmath.Vec2{
			X: 2*c.P1*xc.X*xc.Y + c.P2*(r2+2*xc.X*xc.X),
			Y: c.P1*(r2+2*xc.Y*xc.Y) + 2*c.P2*xc.X*xc.Y,
		}

		xc = vecmath.Vec2{
			X: (xd.X - delta.X) / kRadial,
			Y: (xd.Y - delta.Y) / kRadial,
		}
	}
	return xc
}
