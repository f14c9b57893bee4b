package anim

import (
	"fmt"

	"github.com/Faultbox/export2maya/pkg/convert"
	"github.com/Faultbox/export2maya/pkg/math"
)

// Track is one position, rotation or scale curve assembled from per-axis
// fragments. Its size is fixed by the first fragment; every merged axis
// must match it.
type Track struct {
	Kind           PropertyKind
	Path           string // host hierarchy path
	TypeName       string // host component type name
	Property       string // property name of the first fragment
	ParentName     string // substitutes an empty first path segment
	Times          []float32
	InterFrameTime float64

	raw       [][4]float32 // per key: x, y, z, w as delivered
	values    []math.Vec3  // per key: converted vector or Euler angles
	added     [4]bool
	converted bool
}

// NewTrack sizes a track from the first fragment and copies its key times.
// The fragment's values are not merged; call Merge for that.
func NewTrack(kind PropertyKind, f Fragment, interFrameTime float64, parentName string) *Track {
	n := len(f.Keys)
	t := &Track{
		Kind:           kind,
		Path:           f.Path,
		TypeName:       f.Type.String(),
		Property:       f.Property,
		ParentName:     parentName,
		Times:          make([]float32, n),
		InterFrameTime: interFrameTime,
		raw:            make([][4]float32, n),
	}
	for i, k := range f.Keys {
		t.Times[i] = k.Time
	}
	return t
}

// Size returns the number of keyframes.
func (t *Track) Size() int {
	return len(t.Times)
}

// Merge stores one axis' values. It returns whether every required axis has
// now been merged. A length mismatch returns ErrMalformedTrackLength and
// leaves the track untouched; a label the kind does not use returns
// ErrUnknownAxis and sets no flag.
func (t *Track) Merge(axisLabel string, keys []Keyframe) (bool, error) {
	if len(keys) != t.Size() {
		return t.Complete(), fmt.Errorf("%w: %s %s axis %q has %d keys, track has %d",
			ErrMalformedTrackLength, t.Path, t.Kind, axisLabel, len(keys), t.Size())
	}
	axis, ok := ParseAxis(axisLabel)
	if !ok || !t.uses(axis) {
		return t.Complete(), fmt.Errorf("%w: %q for %s", ErrUnknownAxis, axisLabel, t.Kind)
	}
	for i, k := range keys {
		t.raw[i][axis] = k.Value
	}
	t.added[axis] = true
	t.converted = false
	return t.Complete(), nil
}

// Has reports whether axis has been merged.
func (t *Track) Has(axis Axis) bool {
	if axis < AxisX || axis > AxisW {
		return false
	}
	return t.added[axis]
}

// Complete reports whether all axes the kind needs have been merged.
func (t *Track) Complete() bool {
	for _, a := range t.Kind.Axes() {
		if !t.added[a] {
			return false
		}
	}
	return t.Size() > 0
}

// Missing returns the axes not merged yet.
func (t *Track) Missing() []Axis {
	var out []Axis
	for _, a := range t.Kind.Axes() {
		if !t.added[a] {
			out = append(out, a)
		}
	}
	return out
}

// Raw returns the delivered x, y, z, w values of key k.
func (t *Track) Raw(k int) [4]float32 {
	return t.raw[k]
}

// Convert fills the converted values. The track must be complete.
func (t *Track) Convert(c convert.Converter) error {
	if !t.Complete() {
		return fmt.Errorf("%w: %s %s missing %v", ErrTrackNotComplete, t.Path, t.Kind, t.Missing())
	}
	t.values = make([]math.Vec3, t.Size())
	for i, r := range t.raw {
		switch t.Kind {
		case PropertyPosition:
			t.values[i] = c.Position(math.V3(r[0], r[1], r[2]))
		case PropertyRotation:
			t.values[i] = c.Rotation(math.QuatFromArray(r))
		case PropertyScale:
			t.values[i] = c.Scale(math.V3(r[0], r[1], r[2]))
		}
	}
	t.converted = true
	return nil
}

// Converted reports whether Convert has run since the last Merge.
func (t *Track) Converted() bool {
	return t.converted
}

// Value returns the converted component of key k: the vector component for
// position and scale, the Euler angle in degrees for rotation. Out of range
// lookups and lookups before Convert return 0.
func (t *Track) Value(axis Axis, k int) float32 {
	if !t.converted || k < 0 || k >= len(t.values) {
		return 0
	}
	return t.values[k].Component(int(axis))
}

// Frame returns the 1-based frame index of key k.
func (t *Track) Frame(k int) int {
	return FrameIndex(t.Times[k], t.InterFrameTime)
}

func (t *Track) uses(axis Axis) bool {
	for _, a := range t.Kind.Axes() {
		if a == axis {
			return true
		}
	}
	return false
}
