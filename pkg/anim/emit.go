package anim

import (
	"fmt"
	"strconv"

	"github.com/Faultbox/export2maya/pkg/maya"
	"github.com/Faultbox/export2maya/pkg/naming"
)

// Curve node defaults written for every key table.
const (
	TangentType     = 18 // ".tan"
	WeightedTangent = false
)

// Curve node types by the unit of the driven attribute.
const (
	CurveLinear   = "animCurveTL"
	CurveAngular  = "animCurveTA"
	CurveUnitless = "animCurveTU"
)

// BlendShapeWeightFactor maps 0..100 host weights to 0..1.
const BlendShapeWeightFactor float32 = 0.01

type kindOutput struct {
	nodeType string
	attrs    [3]string
}

var kindOutputs = map[PropertyKind]kindOutput{
	PropertyPosition: {CurveLinear, [3]string{".tx", ".ty", ".tz"}},
	PropertyRotation: {CurveAngular, [3]string{".rx", ".ry", ".rz"}},
	PropertyScale:    {CurveUnitless, [3]string{".sx", ".sy", ".sz"}},
}

// Emit writes one animCurve node for a single axis of a converted track:
// the createNode statement, the fixed tangent settings, the key table over
// keys [0, size-1], and the connectAttr to the driven attribute. Nothing is
// written if the track has not been converted.
func Emit(buf *maya.Buffer, t *Track, scheme naming.NameScheme, nodeType string, axis Axis, valueScale float32) error {
	if !t.Converted() {
		return fmt.Errorf("%w: %s %s not converted", ErrTrackNotComplete, t.Path, t.Kind)
	}
	writeCurve(buf, nodeType, scheme.NodeName(), t.Size(), t.Frame, func(k int) float32 {
		return t.Value(axis, k) * valueScale
	})
	buf.ConnectAttr(scheme.NodeName()+".o", scheme.AttrPath(), false)
	return nil
}

// EmitTrack writes the three per-axis curve nodes of a converted track.
// Rotation tracks emit Euler X, Y, Z; the quaternion W never gets a node.
func EmitTrack(buf *maya.Buffer, t *Track) error {
	out, ok := kindOutputs[t.Kind]
	if !ok {
		return fmt.Errorf("%w: %s has no curve output", ErrUnsupportedCurve, t.Kind)
	}
	if !t.Converted() {
		return fmt.Errorf("%w: %s %s not converted", ErrTrackNotComplete, t.Path, t.Kind)
	}
	scheme := naming.Resolve(t.Path, t.Property, t.ParentName)
	for i, axis := range []Axis{AxisX, AxisY, AxisZ} {
		s := scheme.WithAxis(axis.String(), out.attrs[i])
		if err := Emit(buf, t, s, out.nodeType, axis, s.ValueFactor); err != nil {
			return err
		}
	}
	return nil
}

// EmitScalar writes a self-contained single-component curve node, used for
// blend shape weights. The caller connects its ".o" output.
func EmitScalar(buf *maya.Buffer, name, nodeType string, keys []Keyframe, interFrameTime float64, valueScale float32) {
	writeCurve(buf, nodeType, name, len(keys),
		func(k int) int { return FrameIndex(keys[k].Time, interFrameTime) },
		func(k int) float32 { return keys[k].Value * valueScale })
}

// LastFrame returns the highest frame index among keys, or 0 if none.
func LastFrame(keys []Keyframe, interFrameTime float64) int {
	last := 0
	for _, k := range keys {
		if f := FrameIndex(k.Time, interFrameTime); f > last {
			last = f
		}
	}
	return last
}

func writeCurve(buf *maya.Buffer, nodeType, name string, n int, frame func(int) int, value func(int) float32) {
	buf.CreateNode(nodeType, name, "")
	buf.SetAttr(".tan", TangentType)
	buf.SetAttr(".wgt", WeightedTangent)

	values := make([]any, 0, 2*n)
	for k := 0; k < n; k++ {
		values = append(values, frame(k), value(k))
	}
	buf.SetAttrSize(".ktv[0:"+strconv.Itoa(n-1)+"]", n, values...)
}
