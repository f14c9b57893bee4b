package maya

import "strconv"

// Header describes the file preamble.
type Header struct {
	Version     string // e.g. "2018"
	LinearUnit  string // "meter", "centimeter"
	AngularUnit string // "degree"
	FrameRate   float32
	Application string
}

// WriteHeader appends the file preamble statements.
func (b *Buffer) WriteHeader(h Header) {
	angular := h.AngularUnit
	if angular == "" {
		angular = "degree"
	}
	b.Comment("Maya ASCII " + h.Version + " scene")
	b.Line("requires maya " + Quote(h.Version) + ";")
	b.Line("currentUnit -l " + h.LinearUnit + " -a " + angular + " -t " + TimeUnit(h.FrameRate) + ";")
	if h.Application != "" {
		b.Line("fileInfo \"application\" " + Quote(h.Application) + ";")
	}
}

// TimeUnit maps a frame rate to a currentUnit time unit name. Only exact
// rates get a named unit; any other positive rate uses the "<n>fps" form
// ("29.97fps").
func TimeUnit(frameRate float32) string {
	switch frameRate {
	case 15:
		return "game"
	case 24:
		return "film"
	case 25:
		return "pal"
	case 30:
		return "ntsc"
	case 48:
		return "show"
	case 50:
		return "palf"
	case 60:
		return "ntscf"
	}
	if frameRate <= 0 {
		return "film"
	}
	return strconv.FormatFloat(float64(frameRate), 'f', -1, 32) + "fps"
}

// WritePlaybackRange appends the scene configuration script node that sets
// the playback range to [1, lastFrame].
func (b *Buffer) WritePlaybackRange(lastFrame int) {
	if lastFrame < 1 {
		lastFrame = 1
	}
	last := strconv.Itoa(lastFrame)
	b.CreateNode("script", "sceneConfigurationScriptNode", "")
	b.SetAttrTyped(".b", "string", "playbackOptions -min 1 -max "+last+" -ast 1 -aet "+last+" ")
	b.SetAttr(".st", 6)
}
