package calib

import (
	"startracker/pkg/vecmath"
)

// SpotVector converts a spot centroid in pixel coordinates to a unit
// line-of-sight vector in the camera frame:
//  1. normalise by the principal point and focal length,
//  2. remove pixel skew,
//  3. invert lens distortion,
//  4. lift to 3D and normalise.
func SpotVector(center vecmath.Vec2, c *Calibration) vecmath.Vec3 {
	xd := vecmath.Vec2{
		X: (center.X - c.CX) / c.FX,
		Y: (center.Y - c.CY) / c.FY,
	}

	xd.X = xd.X - c.S*xd.Y

	xc := Undistort(xd, c)

	v := vecmath.Vec3{X: xc.X, Y: xc.Y, Z: 1}
	return v.Normalized()
}

// SpotVectors converts a list of spot centroids to unit line-of-sight
// vectors, preserving order.
func SpotVectors(centers []vecmath.Vec2, c *Calibration) []vecmath.Vec3 {
	out := make([]vecmath.Vec3, len(centers))
	for i, center := range centers {
		out[i] = SpotVector(center, c)
	}
	return out
}
