// Package exporter turns a scene description and an animation clip into a
// Maya ASCII scene.
//
// An export is one sequential pass over the declared nodes in order. Every
// node appends exactly one block to the output; plumbing connections that
// reference nodes declared later go to a deferred section written after the
// last node. A fatal error discards the whole output.
package exporter

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/export2maya/pkg/anim"
	"github.com/Faultbox/export2maya/pkg/convert"
	"github.com/Faultbox/export2maya/pkg/maya"
	"github.com/Faultbox/export2maya/pkg/scene"
)

// Exporter errors.
var (
	ErrUnsupportedNodeKind = errors.New("unsupported node kind")
	ErrUnsupportedVersion  = errors.New("unsupported maya version")
	ErrInvalidMesh         = errors.New("invalid mesh")
	ErrNothingToCommit     = errors.New("no output to commit")
)

// MinMayaVersion is the oldest target version accepted.
const MinMayaVersion = ">= 2012"

// Options configures an Exporter.
type Options struct {
	MayaVersion string // "2018"
	LinearUnit  string // "meter" or "centimeter"
	TexturePath string // prefix for file texture paths
	Application string // written to fileInfo; empty to omit
}

// DefaultOptions returns the options used by ExportClip.
func DefaultOptions() Options {
	return Options{
		MayaVersion: "2018",
		LinearUnit:  "meter",
		Application: "export2maya",
	}
}

// Result is the outcome of an export.
type Result struct {
	Output    *maya.Buffer // nil when the export failed
	Anomalies error        // non-fatal problems, combined with multierr
	LastFrame int          // highest frame index keyed, 0 without animation
	Nodes     int          // nodes written
	Curves    int          // curve nodes written
}

// AnomalyList returns the individual non-fatal problems.
func (r *Result) AnomalyList() []error {
	return multierr.Errors(r.Anomalies)
}

// Exporter writes scenes. It holds no per-export state and may be reused.
type Exporter struct {
	opts    Options
	version *semver.Version
	conv    convert.Converter
	log     *zap.Logger
}

// New validates opts and returns an Exporter. log may be nil.
func New(opts Options, log *zap.Logger) (*Exporter, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.MayaVersion == "" {
		opts.MayaVersion = DefaultOptions().MayaVersion
	}
	if opts.LinearUnit == "" {
		opts.LinearUnit = DefaultOptions().LinearUnit
	}
	v, err := CheckVersion(opts.MayaVersion)
	if err != nil {
		return nil, err
	}
	return &Exporter{
		opts:    opts,
		version: v,
		conv:    convert.ForUnit(opts.LinearUnit),
		log:     log,
	}, nil
}

// CheckVersion parses a target version and checks it against
// MinMayaVersion.
func CheckVersion(s string) (*semver.Version, error) {
	v, err := semver.NewVersion(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnsupportedVersion, s, err)
	}
	c, err := semver.NewConstraint(MinMayaVersion)
	if err != nil {
		return nil, err
	}
	if !c.Check(v) {
		return nil, fmt.Errorf("%w: %s is older than %s", ErrUnsupportedVersion, s, MinMayaVersion)
	}
	return v, nil
}

// ExportClip exports nodes and clip with DefaultOptions and no logging.
func ExportClip(nodes []scene.Node, clip *anim.Clip, frameRate float32) (*Result, error) {
	e, err := New(DefaultOptions(), nil)
	if err != nil {
		return nil, err
	}
	return e.ExportClip(nodes, clip, frameRate)
}

// ExportClip writes the header, every node in declaration order, the clip's
// curves and the deferred connections. A frameRate of 0 uses the clip's
// own rate. clip may be nil for a static scene.
//
// On a fatal error the partial output is discarded and the returned Result
// is nil. Non-fatal problems are reported in Result.Anomalies.
func (e *Exporter) ExportClip(nodes []scene.Node, clip *anim.Clip, frameRate float32) (*Result, error) {
	g, err := scene.NewGraph(nodes)
	if err != nil {
		return nil, err
	}
	if frameRate == 0 && clip != nil {
		frameRate = clip.FrameRate
	}

	x := &export{
		Exporter: e,
		graph:    g,
		out:      maya.NewBuffer(),
		conns:    maya.NewBuffer(),
	}
	if clip != nil {
		ift, err := anim.InterFrameTime(frameRate)
		if err != nil {
			return nil, err
		}
		x.clip = newClipState(clip, ift, e.log)
	}

	x.out.WriteHeader(maya.Header{
		Version:     e.version.Original(),
		LinearUnit:  e.opts.LinearUnit,
		FrameRate:   frameRate,
		Application: e.opts.Application,
	})

	if err := x.run(); err != nil {
		e.log.Error("export aborted", zap.Error(err))
		return nil, err
	}

	res := &Result{
		Output:    x.out,
		Anomalies: x.anomalies,
		Nodes:     g.Len(),
		Curves:    x.curves,
	}
	if x.clip != nil {
		res.LastFrame = x.clip.lastFrame
	}
	e.log.Info("export finished",
		zap.Int("nodes", res.Nodes),
		zap.Int("curves", res.Curves),
		zap.Int("last_frame", res.LastFrame),
		zap.Int("anomalies", len(res.AnomalyList())))
	return res, nil
}

// export is the state of one ExportClip call.
type export struct {
	*Exporter
	graph *scene.Graph
	out   *maya.Buffer
	conns *maya.Buffer // deferred connections

	clip      *clipState
	curves    int
	anomalies error
}

func (x *export) run() error {
	for _, n := range x.graph.Nodes() {
		if err := x.writeNode(n); err != nil {
			return fmt.Errorf("node %q: %w", n.Name, err)
		}
	}

	if x.clip != nil {
		if !x.clip.transformsDriven {
			if err := x.driveTransforms(x.clip.src.Root); err != nil {
				return err
			}
		}
		x.clip.reportLeftovers(x.anomaly)
		x.anomaly(x.clip.acc.Finish())
		if x.clip.lastFrame > 0 {
			x.out.WritePlaybackRange(x.clip.lastFrame)
		}
	}

	x.out.Append(x.conns)
	return nil
}

// anomaly records a non-fatal problem.
func (x *export) anomaly(err error) {
	x.anomalies = multierr.Append(x.anomalies, err)
}
