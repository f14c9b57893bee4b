package anim

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Key identifies one in-flight track: a node path and a property kind.
// Tracks for different nodes never share a slot, so curves from several
// nodes may be interleaved in one clip.
type Key struct {
	Path string
	Kind PropertyKind
}

// Accumulator collects axis fragments into tracks. A slot goes from idle to
// collecting on the first fragment for its key and back to idle when the
// track completes, at which point the track is handed to the caller and the
// slot is dropped.
type Accumulator struct {
	interFrameTime float64
	log            *zap.Logger

	slots   map[Key]*Track
	order   []Key // slot creation order, for deterministic reporting
	aborted map[Key]bool
}

// NewAccumulator returns an idle accumulator. log may be nil.
func NewAccumulator(interFrameTime float64, log *zap.Logger) *Accumulator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Accumulator{
		interFrameTime: interFrameTime,
		log:            log,
		slots:          make(map[Key]*Track),
		aborted:        make(map[Key]bool),
	}
}

// Collecting reports whether a track for key is in flight.
func (a *Accumulator) Collecting(key Key) bool {
	_, ok := a.slots[key]
	return ok
}

// Pending returns the number of in-flight tracks.
func (a *Accumulator) Pending() int {
	return len(a.slots)
}

// Add classifies a transform fragment and merges it. Fragments of any other
// kind are rejected with ErrUnsupportedCurve.
func (a *Accumulator) Add(f Fragment, parentName string) (*Track, bool, error) {
	c, err := Classify(f)
	if err != nil {
		return nil, false, err
	}
	if c.Kind == PropertyBlendShapeWeight {
		return nil, false, fmt.Errorf("%w: blend shape weight %q is not accumulated", ErrUnsupportedCurve, f.Property)
	}
	return a.BeginOrMerge(Key{Path: f.Path, Kind: c.Kind}, c.Axis, f, parentName)
}

// BeginOrMerge starts a track for key or merges into the one in flight.
//
// It returns the track and whether it is complete. A completed track has
// been removed from the accumulator and must be converted and emitted by
// the caller. On ErrMalformedTrackLength the track is returned unchanged,
// removed, and further fragments for key are dropped until Finish.
// ErrUnknownAxis is returned with the slot still collecting.
func (a *Accumulator) BeginOrMerge(key Key, axisLabel string, f Fragment, parentName string) (*Track, bool, error) {
	if a.aborted[key] {
		a.log.Debug("dropping fragment of aborted track",
			zap.String("path", key.Path), zap.Stringer("kind", key.Kind), zap.String("axis", axisLabel))
		return nil, false, nil
	}

	t, ok := a.slots[key]
	if !ok {
		if len(f.Keys) == 0 {
			a.aborted[key] = true
			return nil, false, fmt.Errorf("%w: %s %s axis %q has no keys", ErrMalformedTrackLength, key.Path, key.Kind, axisLabel)
		}
		t = NewTrack(key.Kind, f, a.interFrameTime, parentName)
		a.slots[key] = t
		a.order = append(a.order, key)
	}

	complete, err := t.Merge(axisLabel, f.Keys)
	switch {
	case errors.Is(err, ErrMalformedTrackLength):
		a.log.Warn("track aborted",
			zap.String("path", key.Path),
			zap.Stringer("kind", key.Kind),
			zap.String("axis", axisLabel),
			zap.Int("want", t.Size()),
			zap.Int("got", len(f.Keys)))
		a.drop(key)
		a.aborted[key] = true
		return t, false, err
	case errors.Is(err, ErrUnknownAxis):
		a.log.Warn("ignoring axis",
			zap.String("path", key.Path),
			zap.String("property", f.Property),
			zap.String("axis", axisLabel))
		return t, false, err
	}

	if complete {
		a.drop(key)
	}
	return t, complete, nil
}

// Finish reports every track still collecting as ErrIncompleteTrack,
// combined in creation order, and resets the accumulator to idle.
func (a *Accumulator) Finish() error {
	var errs error
	for _, key := range a.order {
		t, ok := a.slots[key]
		if !ok {
			continue
		}
		a.log.Warn("incomplete track discarded",
			zap.String("path", key.Path),
			zap.Stringer("kind", key.Kind),
			zap.Stringers("missing", t.Missing()))
		errs = multierr.Append(errs, fmt.Errorf("%w: %s %s missing %v", ErrIncompleteTrack, key.Path, key.Kind, t.Missing()))
	}
	a.slots = make(map[Key]*Track)
	a.aborted = make(map[Key]bool)
	a.order = nil
	return errs
}

func (a *Accumulator) drop(key Key) {
	delete(a.slots, key)
	for i, k := range a.order {
		if k == key {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
}
