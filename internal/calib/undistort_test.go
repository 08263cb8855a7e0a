package calib

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"startracker/pkg/vecmath"
)

func TestUndistortIsNoopWithoutDistortion(t *testing.T) {
	c := &Calibration{}
	xd := vecmath.Vec2{X: 0.1, Y: -0.05}
	assert.Equal(t, xd, Undistort(xd, c))
}

func TestUndistortInvertsDistortionModel(t *testing.T) {
	c := &Calibration{K1: -0.2, K2: 0.05, P1: 0.001, P2: -0.0015, K3: 0.001}

	xc := vecmath.Vec2{X: 0.12, Y: -0.08}
	r2 := xc.SquaredNorm()
	r4 := r2 * r2
	kRadial := 1 + c.K1*r2 + c.K2*r4 + c.K3*r2*r4
	xd := vecmath.Vec2{
		X: xc.X*kRadial + 2*c.P1*xc.X*xc.Y + c.P2*(r2+2*xc.X*xc.X),
		Y: xc.Y*kRadial + c.P1*(r2+2*xc.Y*xc.Y) + 2*c.P2*xc.X*xc.Y,
	}

	recovered := Undistort(xd, c)
	assert.InDelta(t, xc.X, recovered.X, 1e-4)
	assert.InDelta(t, xc.Y, recovered.Y, 1e-4)
}
