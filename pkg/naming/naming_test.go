package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		property   string
		parent     string
		wantNode   string
		wantAttr   string
		wantPropty string
	}{
		{"single segment", "Head", "m_LocalPosition.x", "Root", "Head", "Head", "LocalPosition"},
		{"nested", "A/B", "m_LocalPosition.x", "Root", "A_B", "|A|B", "LocalPosition"},
		{"deep", "Hips/Spine/Neck", "m_LocalRotation.w", "Root", "Hips_Spine_Neck", "|Hips|Spine|Neck", "LocalRotation"},
		{"empty root segment", "/B", "m_LocalScale.z", "Root", "Root_B", "|Root|B", "LocalScale"},
		{"empty path", "", "m_LocalPosition.y", "Root", "Root", "Root", "LocalPosition"},
		{"no m_ prefix", "A", "LocalPosition.x", "Root", "A", "A", "LocalPosition"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Resolve(tt.path, tt.property, tt.parent)
			assert.Equal(t, tt.wantNode, s.NodePrefix)
			assert.Equal(t, tt.wantAttr, s.AttrPrefix)
			assert.Equal(t, tt.wantPropty, s.Property)
			assert.Equal(t, float32(1), s.ValueFactor)
		})
	}
}

func TestResolveDeterministic(t *testing.T) {
	a := Resolve("A/B", "m_LocalPosition.x", "Root")
	b := Resolve("A/B", "m_LocalPosition.x", "Root")
	assert.Equal(t, a, b)
}

func TestWithAxis(t *testing.T) {
	s := Resolve("A/B", "m_LocalPosition.x", "Root")
	x := s.WithAxis("x", ".tx")
	assert.Equal(t, "A_B_LocalPositionx", x.NodeName())
	assert.Equal(t, "|A|B.tx", x.AttrPath())
	// The base scheme is unchanged.
	assert.Equal(t, "", s.NodePostfix)
}

func TestSanitize(t *testing.T) {
	tests := map[string]string{
		"":             "",
		"Head":         "Head",
		"eye_L":        "eye_L",
		"Left Arm":     "Left_Arm",
		"Café":         "Cafe",
		"2ndBone":      "_2ndBone",
		"mesh.001":     "mesh_001",
		"Kopf:Äuge":    "Kopf_Auge",
		"日本":           "__",
		"\u0301":       "_",
		"\u0301\u0308": "_",
	}
	for in, want := range tests {
		assert.Equal(t, want, Sanitize(in), "Sanitize(%q)", in)
	}
}

func TestResolveMarksOnlySegment(t *testing.T) {
	s := Resolve("Root/\u0301", "m_LocalPosition.x", "P").WithAxis("x", ".tx")
	assert.Equal(t, "Root___LocalPositionx", s.NodeName())
	assert.Equal(t, "|Root|_.tx", s.AttrPath())
}

func TestRegistryUnique(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, "blendShape", r.Unique("blendShape"))
	assert.Equal(t, "blendShape1", r.Unique("blendShape"))
	assert.Equal(t, "blendShape2", r.Unique("blendShape"))
	assert.True(t, r.Reserve("eyeBlink_L"))
	assert.False(t, r.Reserve("eyeBlink_L"))
	assert.Equal(t, "eyeBlink_L1", r.Unique("eyeBlink_L"))
	assert.Equal(t, "node", r.Unique(""))
}

func TestRegistryNumbered(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, "groupId1", r.Numbered("groupId"))
	assert.True(t, r.Reserve("groupId3"))
	assert.Equal(t, "groupId2", r.Numbered("groupId"))
	assert.Equal(t, "groupId4", r.Numbered("groupId"))
}
