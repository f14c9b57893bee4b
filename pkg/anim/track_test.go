package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/export2maya/pkg/convert"
)

func keys(values ...float32) []Keyframe {
	out := make([]Keyframe, len(values))
	for i, v := range values {
		out[i] = Keyframe{Time: float32(i), Value: v}
	}
	return out
}

func frag(path, property string, values ...float32) Fragment {
	return Fragment{Path: path, Type: SourceTransform, Property: property, Keys: keys(values...)}
}

func TestTrackCompletion(t *testing.T) {
	tests := []struct {
		kind   PropertyKind
		axes   []string
		wantAt int // index of the merge that completes, -1 for never
	}{
		{PropertyPosition, []string{"x", "y", "z"}, 2},
		{PropertyScale, []string{"z", "x", "y"}, 2},
		{PropertyPosition, []string{"x", "x", "y"}, -1},
		{PropertyRotation, []string{"x", "y", "z"}, -1},
		{PropertyRotation, []string{"w", "x", "y", "z"}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			tr := NewTrack(tt.kind, frag("A", "m_"+tt.kind.String()+".x", 1, 2), 1.0/30, "Root")
			got := -1
			for i, axis := range tt.axes {
				complete, err := tr.Merge(axis, keys(1, 2))
				require.NoError(t, err)
				if complete && got == -1 {
					got = i
				}
			}
			assert.Equal(t, tt.wantAt, got)
			assert.Equal(t, tt.wantAt != -1, tr.Complete())
		})
	}
}

func TestTrackMergeSameAxisTwice(t *testing.T) {
	tr := NewTrack(PropertyPosition, frag("A", "m_LocalPosition.x", 1), 1.0/30, "")
	complete, err := tr.Merge("x", keys(1))
	require.NoError(t, err)
	assert.False(t, complete)
	complete, err = tr.Merge("x", keys(5))
	require.NoError(t, err)
	assert.False(t, complete)
	assert.Equal(t, float32(5), tr.Raw(0)[AxisX])
	assert.Equal(t, []Axis{AxisY, AxisZ}, tr.Missing())
}

func TestTrackMergeMismatchedLength(t *testing.T) {
	tr := NewTrack(PropertyPosition, frag("A", "m_LocalPosition.x", 1, 2, 3), 1.0/30, "")
	_, err := tr.Merge("x", keys(1, 2, 3))
	require.NoError(t, err)

	_, err = tr.Merge("y", keys(9, 9, 9, 9, 9))
	require.ErrorIs(t, err, ErrMalformedTrackLength)
	assert.True(t, tr.Has(AxisX))
	assert.False(t, tr.Has(AxisY))
	for k := 0; k < 3; k++ {
		assert.Equal(t, [4]float32{float32(k + 1), 0, 0, 0}, tr.Raw(k))
	}
}

func TestTrackMergeUnknownAxis(t *testing.T) {
	tr := NewTrack(PropertyPosition, frag("A", "m_LocalPosition.x", 1), 1.0/30, "")
	_, err := tr.Merge("q", keys(1))
	assert.ErrorIs(t, err, ErrUnknownAxis)
	_, err = tr.Merge("w", keys(1))
	assert.ErrorIs(t, err, ErrUnknownAxis, "position tracks have no w")
	assert.False(t, tr.Has(AxisW))
	assert.Len(t, tr.Missing(), 3)
}

func TestTrackConvert(t *testing.T) {
	tr := NewTrack(PropertyPosition, frag("A", "m_LocalPosition.x", 1, 2), 1.0/30, "")
	require.ErrorIs(t, tr.Convert(convert.Default), ErrTrackNotComplete)
	assert.Equal(t, float32(0), tr.Value(AxisX, 0))

	for _, a := range []string{"x", "y", "z"} {
		_, err := tr.Merge(a, keys(1, 2))
		require.NoError(t, err)
	}
	require.NoError(t, tr.Convert(convert.Default))
	assert.True(t, tr.Converted())
	assert.Equal(t, float32(-1), tr.Value(AxisX, 0))
	assert.Equal(t, float32(2), tr.Value(AxisY, 1))
	assert.Equal(t, float32(0), tr.Value(AxisX, 7))

	// Merging again invalidates the conversion.
	_, err := tr.Merge("x", keys(3, 4))
	require.NoError(t, err)
	assert.False(t, tr.Converted())
}

func TestTrackConvertRotationAndScale(t *testing.T) {
	rot := NewTrack(PropertyRotation, frag("A", "m_LocalRotation.x", 0), 1.0/30, "")
	for a, v := range map[string]float32{"x": 0, "y": 0, "z": 0, "w": 1} {
		_, err := rot.Merge(a, keys(v))
		require.NoError(t, err)
	}
	require.NoError(t, rot.Convert(convert.Default))
	for _, a := range []Axis{AxisX, AxisY, AxisZ} {
		assert.InDelta(t, 0, rot.Value(a, 0), 1e-6)
	}

	scale := NewTrack(PropertyScale, frag("A", "m_LocalScale.x", 2), 1.0/30, "")
	for a, v := range map[string]float32{"x": 2, "y": 3, "z": 4} {
		_, err := scale.Merge(a, keys(v))
		require.NoError(t, err)
	}
	require.NoError(t, scale.Convert(convert.ForUnit("centimeter")))
	assert.Equal(t, float32(2), scale.Value(AxisX, 0))
	assert.Equal(t, float32(3), scale.Value(AxisY, 0))
	assert.Equal(t, float32(4), scale.Value(AxisZ, 0))
}

func TestFrameIndex(t *testing.T) {
	tests := []struct {
		time float32
		rate float32
		want int
	}{
		{0, 30, 1},
		{0.5, 30, 16},
		{1, 30, 31},
		{1, 24, 25},
		{0.25, 2, 2},  // 0.5 rounds away from zero
		{0.75, 2, 3},  // 1.5 rounds away from zero
		{-0.25, 2, 0}, // -0.5 rounds away from zero
	}
	for _, tt := range tests {
		ift, err := InterFrameTime(tt.rate)
		require.NoError(t, err)
		assert.Equal(t, tt.want, FrameIndex(tt.time, ift), "t=%v r=%v", tt.time, tt.rate)
	}
}

func TestInterFrameTimeInvalid(t *testing.T) {
	for _, r := range []float32{0, -30} {
		_, err := InterFrameTime(r)
		assert.ErrorIs(t, err, ErrInvalidFrameRate)
	}
}
