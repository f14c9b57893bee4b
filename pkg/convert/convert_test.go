package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/export2maya/pkg/math"
)

const tol = 1e-3

func assertVec(t *testing.T, want, got math.Vec3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol, "x")
	assert.InDelta(t, want.Y, got.Y, tol, "y")
	assert.InDelta(t, want.Z, got.Z, tol, "z")
}

func TestConvertPosition(t *testing.T) {
	assert.Equal(t, math.V3(-1, 2, 3), ConvertPosition(math.V3(1, 2, 3)))
	assert.Equal(t, math.V3(-100, 200, 300), ForUnit("centimeter").Position(math.V3(1, 2, 3)))
	assert.Equal(t, math.V3(-1, 2, 3), ForUnit("furlong").Position(math.V3(1, 2, 3)))
}

func TestConvertScaleIsIdentity(t *testing.T) {
	for _, v := range []math.Vec3{
		math.V3(1, 1, 1),
		math.V3(-2, 0.5, 3),
		math.V3(0, 0, 0),
	} {
		assert.Equal(t, v, ConvertScale(v))
		assert.Equal(t, v, ForUnit("centimeter").Scale(v))
	}
}

func TestConvertRotation(t *testing.T) {
	tests := []struct {
		name string
		q    math.Quat
		want math.Vec3
	}{
		{"identity", math.QuatIdentity(), math.V3(0, 0, 0)},
		{"x axis keeps sign", math.Quat{X: 0.70710677, W: 0.70710677}, math.V3(90, 0, 0)},
		{"y axis flips sign", math.Quat{Y: 0.25881905, W: 0.9659258}, math.V3(0, -30, 0)},
		{"z axis flips sign", math.Quat{Z: 0.38268343, W: 0.9238795}, math.V3(0, 0, -45)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertVec(t, tt.want, ConvertRotation(tt.q))
		})
	}
}

func TestConvertRotationDeterministic(t *testing.T) {
	q := math.Quat{X: 0.1, Y: 0.7, Z: -0.2, W: 0.68}.Normalize()
	assert.Equal(t, ConvertRotation(q), ConvertRotation(q))
}
