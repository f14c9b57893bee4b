package math

import (
	"testing"
)

func TestVec3Scale(t *testing.T) {
	got := V3(1, -2, 0.5).Scale(100)
	want := V3(100, -200, 50)
	if got != want {
		t.Errorf("Vec3.Scale() = %v, want %v", got, want)
	}
}

func TestVec3Component(t *testing.T) {
	v := V3(1, 2, 3)
	for i, want := range []float32{1, 2, 3, 0} {
		if got := v.Component(i); got != want {
			t.Errorf("Vec3.Component(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestVec3FromArray(t *testing.T) {
	if got, want := Vec3FromArray([3]float32{4, 5, 6}), V3(4, 5, 6); got != want {
		t.Errorf("Vec3FromArray() = %v, want %v", got, want)
	}
}
