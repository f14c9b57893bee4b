// Package anim reassembles per-axis animation curves into position, rotation
// and scale tracks and writes them out as animCurve nodes.
package anim

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Animation errors.
var (
	ErrMalformedTrackLength     = errors.New("malformed track length")
	ErrIncompleteTrack          = errors.New("incomplete track at end of clip")
	ErrUnrecognizedPropertyPath = errors.New("unrecognized property path")
	ErrUnsupportedCurve         = errors.New("unsupported curve")
	ErrUnknownAxis              = errors.New("unknown axis label")
	ErrTrackNotComplete         = errors.New("track is not complete")
	ErrUnknownSourceType        = errors.New("unknown source type")
	ErrInvalidFrameRate         = errors.New("invalid frame rate")
)

// SourceType is the host component type a curve was recorded on.
type SourceType int

const (
	SourceTransform SourceType = iota
	SourceSkinnedMesh
)

// String returns the host type name.
func (s SourceType) String() string {
	switch s {
	case SourceTransform:
		return "Transform"
	case SourceSkinnedMesh:
		return "SkinnedMeshRenderer"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// ParseSourceType accepts the short and fully qualified host type names.
func ParseSourceType(s string) (SourceType, error) {
	name := strings.TrimPrefix(s, "UnityEngine.")
	switch name {
	case "Transform":
		return SourceTransform, nil
	case "SkinnedMeshRenderer", "SkinnedMesh":
		return SourceSkinnedMesh, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSourceType, s)
}

// MarshalText implements encoding.TextMarshaler.
func (s SourceType) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *SourceType) UnmarshalText(b []byte) error {
	v, err := ParseSourceType(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Keyframe is one (time, value) sample of a single-component curve.
// In YAML it is written either as [time, value] or {time: t, value: v}.
type Keyframe struct {
	Time  float32 `yaml:"time"`
	Value float32 `yaml:"value"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (k *Keyframe) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.SequenceNode {
		var pair []float32
		if err := value.Decode(&pair); err != nil {
			return err
		}
		if len(pair) != 2 {
			return fmt.Errorf("line %d: keyframe needs [time, value], got %d numbers", value.Line, len(pair))
		}
		k.Time, k.Value = pair[0], pair[1]
		return nil
	}
	type plain Keyframe
	return value.Decode((*plain)(k))
}

// Fragment is one single-component curve as delivered by the host.
type Fragment struct {
	Path     string     `yaml:"path"`     // hierarchy path relative to the clip root, "/" separated
	Type     SourceType `yaml:"type"`     // component the property lives on
	Property string     `yaml:"property"` // e.g. "m_LocalPosition.x", "blendShape.eyeBlink_L"
	Keys     []Keyframe `yaml:"keys"`
}

// Values returns the fragment's sample values in key order.
func (f Fragment) Values() []float32 {
	out := make([]float32, len(f.Keys))
	for i, k := range f.Keys {
		out[i] = k.Value
	}
	return out
}

// Clip is one animation clip: an ordered list of fragments.
type Clip struct {
	Name      string     `yaml:"name"`
	FrameRate float32    `yaml:"frame_rate"`
	Root      string     `yaml:"root"` // name of the object the clip is bound to
	Fragments []Fragment `yaml:"curves"`
}

// InterFrameTime returns 1/frameRate.
func InterFrameTime(frameRate float32) (float64, error) {
	if !(frameRate > 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidFrameRate, frameRate)
	}
	return 1 / float64(frameRate), nil
}
