package anim

import (
	"fmt"
	"strings"
)

// PropertyKind is the animated property a fragment belongs to.
type PropertyKind int

const (
	PropertyPosition PropertyKind = iota
	PropertyRotation
	PropertyScale
	PropertyBlendShapeWeight
)

// String returns the host property name.
func (k PropertyKind) String() string {
	switch k {
	case PropertyPosition:
		return "LocalPosition"
	case PropertyRotation:
		return "LocalRotation"
	case PropertyScale:
		return "LocalScale"
	case PropertyBlendShapeWeight:
		return "blendShape"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Axes returns the components a complete track of this kind needs.
func (k PropertyKind) Axes() []Axis {
	switch k {
	case PropertyRotation:
		return []Axis{AxisX, AxisY, AxisZ, AxisW}
	case PropertyBlendShapeWeight:
		return nil
	default:
		return []Axis{AxisX, AxisY, AxisZ}
	}
}

// Axis is one component of a vector or quaternion track.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
	AxisW
)

// String returns the lower-case axis label.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	case AxisW:
		return "w"
	default:
		return fmt.Sprintf("axis(%d)", int(a))
	}
}

// ParseAxis maps "x", "y", "z", "w" to an Axis.
func ParseAxis(label string) (Axis, bool) {
	switch label {
	case "x":
		return AxisX, true
	case "y":
		return AxisY, true
	case "z":
		return AxisZ, true
	case "w":
		return AxisW, true
	}
	return 0, false
}

// Classification is what a fragment's type and property name resolve to.
type Classification struct {
	Kind   PropertyKind
	Axis   string // component label for transform properties
	Target string // blend shape target name for weight curves
}

// Classify resolves a fragment's property. Transform properties other than
// LocalPosition, LocalRotation and LocalScale yield
// ErrUnrecognizedPropertyPath; skinned mesh properties other than blend
// shape weights yield ErrUnsupportedCurve.
func Classify(f Fragment) (Classification, error) {
	segs := strings.Split(f.Property, ".")
	switch f.Type {
	case SourceTransform:
		name := strings.TrimPrefix(segs[0], "m_")
		var c Classification
		switch name {
		case "LocalPosition":
			c.Kind = PropertyPosition
		case "LocalRotation":
			c.Kind = PropertyRotation
		case "LocalScale":
			c.Kind = PropertyScale
		default:
			return Classification{}, fmt.Errorf("%w: %q on %q", ErrUnrecognizedPropertyPath, f.Property, f.Path)
		}
		if len(segs) > 1 {
			c.Axis = segs[len(segs)-1]
		}
		return c, nil

	case SourceSkinnedMesh:
		if len(segs) < 2 || segs[0] != "blendShape" {
			return Classification{}, fmt.Errorf("%w: %q on %q", ErrUnsupportedCurve, f.Property, f.Path)
		}
		return Classification{
			Kind:   PropertyBlendShapeWeight,
			Target: segs[len(segs)-1],
		}, nil
	}
	return Classification{}, fmt.Errorf("%w: %v", ErrUnknownSourceType, f.Type)
}
