// Package convert maps host-space transforms into the target tool's
// conventions: right-handed axes, configurable linear unit, Euler degrees.
package convert

import "github.com/Faultbox/export2maya/pkg/math"

// Linear unit scale factors relative to the host's meters.
const (
	MeterScale      float32 = 1
	CentimeterScale float32 = 100
)

// Converter converts positions, rotations and scales.
// The zero value is not useful; use New or Default.
type Converter struct {
	LinearScale float32
}

// Default converts with a 1:1 linear scale.
var Default = New(MeterScale)

// New returns a converter applying linearScale to positions.
func New(linearScale float32) Converter {
	return Converter{LinearScale: linearScale}
}

// ForUnit returns the converter for a target linear unit name.
// Unknown units fall back to meters.
func ForUnit(unit string) Converter {
	switch unit {
	case "centimeter", "cm":
		return New(CentimeterScale)
	default:
		return New(MeterScale)
	}
}

// Position negates X (left-handed to right-handed) and applies the unit scale.
func (c Converter) Position(v math.Vec3) math.Vec3 {
	return math.Vec3{X: -v.X, Y: v.Y, Z: v.Z}.Scale(c.LinearScale)
}

// Rotation returns Euler angles in degrees, xyz rotate order.
func (c Converter) Rotation(q math.Quat) math.Vec3 {
	e := q.MirrorX().EulerXYZ()
	return math.Vec3{
		X: math.RadToDeg(e.X),
		Y: math.RadToDeg(e.Y),
		Z: math.RadToDeg(e.Z),
	}
}

// Scale returns v unchanged.
// TODO: confirm with the rig team that scale needs no axis flip; mirrored
// negative scales have not been checked.
func (c Converter) Scale(v math.Vec3) math.Vec3 {
	return v
}

// ConvertPosition converts with the default converter.
func ConvertPosition(v math.Vec3) math.Vec3 {
	return Default.Position(v)
}

// ConvertRotation converts with the default converter.
func ConvertRotation(q math.Quat) math.Vec3 {
	return Default.Rotation(q)
}

// ConvertScale converts with the default converter.
func ConvertScale(v math.Vec3) math.Vec3 {
	return Default.Scale(v)
}
