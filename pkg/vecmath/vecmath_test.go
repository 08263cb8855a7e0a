package vecmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVec2Ops(t *testing.T) {
	a := Vec2{X: 3, Y: 4}
	b := Vec2{X: 1, Y: 2}

	assert.Equal(t, Vec2{X: 4, Y: 6}, a.Add(b))
	assert.Equal(t, Vec2{X: 2, Y: 2}, a.Sub(b))
	assert.Equal(t, Vec2{X: 6, Y: 8}, a.Scale(2))
	assert.Equal(t, float64(11), a.Dot(b))
	assert.Equal(t, float64(25), a.SquaredNorm())
	assert.Equal(t, float64(5), a.Norm())
}

func TestVec3AngleDeg(t *testing.T) {
	x := Vec3{X: 1, Y: 0, Z: 0}
	y := Vec3{X: 0, Y: 1, Z: 0}

	t.Run("orthogonal vectors are 90 degrees apart", func(t *testing.T) {
		assert.InDelta(t, 90.0, x.AngleDeg(y), 1e-9)
	})

	t.Run("a vector makes a zero angle with itself", func(t *testing.T) {
		assert.InDelta(t, 0.0, x.AngleDeg(x), 1e-9)
	})

	t.Run("antiparallel vectors are 180 degrees apart", func(t *testing.T) {
		neg := Vec3{X: -1, Y: 0, Z: 0}
		assert.InDelta(t, 180.0, x.AngleDeg(neg), 1e-9)
	})

	t.Run("near-parallel vectors clamp instead of producing NaN", func(t *testing.T) {
		almostX := Vec3{X: 1, Y: 1e-12, Z: 0}
		got := x.AngleDeg(almostX)
		require.False(t, math.IsNaN(got))
		assert.InDelta(t, 0.0, got, 1e-6)
	})
}

func TestVec3Normalized(t *testing.T) {
	v := Vec3{X: 3, Y: 0, Z: 4}
	n := v.Normalized()
	assert.InDelta(t, 1.0, n.Norm(), 1e-9)
	assert.InDelta(t, 0.6, n.X, 1e-9)
	assert.InDelta(t, 0.8, n.Z, 1e-9)
}
