package exporter

import (
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/Faultbox/export2maya/pkg/anim"
	"github.com/Faultbox/export2maya/pkg/scene"
)

// clipState tracks which fragments of the clip have been written.
type clipState struct {
	src *anim.Clip
	ift float64
	acc *anim.Accumulator
	log *zap.Logger

	consumed         []bool
	transformsDriven bool
	lastFrame        int
}

func newClipState(clip *anim.Clip, ift float64, log *zap.Logger) *clipState {
	return &clipState{
		src:      clip,
		ift:      ift,
		acc:      anim.NewAccumulator(ift, log),
		log:      log,
		consumed: make([]bool, len(clip.Fragments)),
	}
}

func (c *clipState) seeFrame(f int) {
	if f > c.lastFrame {
		c.lastFrame = f
	}
}

// weightCurve is one written blend shape weight curve.
type weightCurve struct {
	name  string
	index int
}

// driveBlendShape writes the weight curves of bs and, the first time a
// blend shape is written, the clip's transform curves.
func (x *export) driveBlendShape(n scene.Node) error {
	c := x.clip
	bs := n.BlendShape

	var written []weightCurve
	driven := make(map[int]bool, len(bs.Targets))
	for i, f := range c.src.Fragments {
		if f.Type != anim.SourceSkinnedMesh || f.Path != n.Path {
			continue
		}
		cl, err := anim.Classify(f)
		if err != nil {
			// Reported once by reportLeftovers.
			continue
		}
		c.consumed[i] = true
		idx := bs.TargetIndex(cl.Target)
		if idx < 0 {
			c.log.Warn("blend shape curve has no declared target",
				zap.String("path", f.Path),
				zap.String("property", f.Property),
				zap.String("blend_shape", n.Name))
			x.anomaly(fmt.Errorf("%w: %q on %q has no target on %s", anim.ErrUnsupportedCurve, f.Property, f.Path, n.Name))
			continue
		}
		if len(f.Keys) == 0 {
			x.anomaly(fmt.Errorf("%w: %q on %q has no keys", anim.ErrMalformedTrackLength, f.Property, f.Path))
			continue
		}
		if driven[idx] {
			c.log.Warn("blend shape target already driven",
				zap.String("path", f.Path),
				zap.String("property", f.Property),
				zap.String("blend_shape", n.Name))
			x.anomaly(fmt.Errorf("%w: %q on %q drives %s.w[%d] twice", anim.ErrUnsupportedCurve, f.Property, f.Path, n.Name, idx))
			continue
		}
		driven[idx] = true
		name := x.graph.Names().Unique(cl.Target)
		anim.EmitScalar(x.out, name, anim.CurveUnitless, f.Keys, c.ift, anim.BlendShapeWeightFactor)
		c.seeFrame(anim.LastFrame(f.Keys, c.ift))
		x.curves++
		written = append(written, weightCurve{name: name, index: idx})
	}

	if !c.transformsDriven {
		if err := x.driveTransforms(c.src.Root); err != nil {
			return err
		}
	}

	sort.SliceStable(written, func(i, j int) bool { return written[i].index < written[j].index })
	for _, w := range written {
		x.out.ConnectAttr(w.name+".o", fmt.Sprintf("%s.w[%d]", n.Name, w.index), false)
	}
	return nil
}

// driveTransforms feeds every transform fragment through the accumulator
// and writes each track as it completes.
func (x *export) driveTransforms(parentName string) error {
	c := x.clip
	c.transformsDriven = true
	for i, f := range c.src.Fragments {
		if f.Type != anim.SourceTransform {
			continue
		}
		c.consumed[i] = true
		t, complete, err := c.acc.Add(f, parentName)
		switch {
		case errors.Is(err, anim.ErrUnrecognizedPropertyPath):
			return err
		case err != nil:
			x.anomaly(err)
			continue
		case !complete:
			continue
		}
		if err := t.Convert(x.conv); err != nil {
			return err
		}
		if err := anim.EmitTrack(x.out, t); err != nil {
			return err
		}
		x.curves += 3
		for k := 0; k < t.Size(); k++ {
			c.seeFrame(t.Frame(k))
		}
	}
	return nil
}

// reportLeftovers records every fragment no writer consumed.
func (c *clipState) reportLeftovers(report func(error)) {
	for i, f := range c.src.Fragments {
		if c.consumed[i] {
			continue
		}
		_, err := anim.Classify(f)
		if err == nil {
			err = fmt.Errorf("%w: no blend shape node for %q", anim.ErrUnsupportedCurve, f.Path)
		}
		c.log.Warn("curve skipped",
			zap.String("path", f.Path),
			zap.String("property", f.Property),
			zap.Error(err))
		report(err)
	}
}
