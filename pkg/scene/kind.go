package scene

import (
	"errors"
	"fmt"
)

// Scene errors.
var (
	ErrUnknownKind    = errors.New("unknown node kind")
	ErrUnknownParent  = errors.New("unknown parent")
	ErrDuplicateName  = errors.New("duplicate node name")
	ErrMissingPayload = errors.New("missing node attributes")
)

// Kind tags what a Node exports as. The set is closed: every Kind has
// exactly one writer.
type Kind int

const (
	KindTransform Kind = iota
	KindMesh
	KindSkinnedMesh
	KindMaterial
	KindTexture
	KindSpotLight
	KindPointLight
	KindDirectionalLight
	KindAreaLight
	KindCamera
	KindObjectSet
	KindTweak
	KindGroupParts
	KindGroupID
	KindShadingEngine
	KindRamp
	KindPlace2DTexture
	KindLayeredTexture
	KindBump2D
	KindMaterialInfo
	KindBlendShape
	KindTerrainAlpha

	kindCount
)

var kindInfo = [kindCount]struct {
	name     string // name used in scene files
	nodeType string // target node type
}{
	KindTransform:        {"transform", "transform"},
	KindMesh:             {"mesh", "mesh"},
	KindSkinnedMesh:      {"skinned-mesh", "mesh"},
	KindMaterial:         {"material", "blinn"},
	KindTexture:          {"texture", "file"},
	KindSpotLight:        {"spot-light", "spotLight"},
	KindPointLight:       {"point-light", "pointLight"},
	KindDirectionalLight: {"directional-light", "directionalLight"},
	KindAreaLight:        {"area-light", "areaLight"},
	KindCamera:           {"camera", "camera"},
	KindObjectSet:        {"object-set", "objectSet"},
	KindTweak:            {"tweak", "tweak"},
	KindGroupParts:       {"group-parts", "groupParts"},
	KindGroupID:          {"group-id", "groupId"},
	KindShadingEngine:    {"shading-engine", "shadingEngine"},
	KindRamp:             {"ramp", "ramp"},
	KindPlace2DTexture:   {"place-2d-texture", "place2dTexture"},
	KindLayeredTexture:   {"layered-texture", "layeredTexture"},
	KindBump2D:           {"bump-2d", "bump2d"},
	KindMaterialInfo:     {"material-info", "materialInfo"},
	KindBlendShape:       {"blend-shape", "blendShape"},
	KindTerrainAlpha:     {"terrain-alpha", "file"},
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, kindCount)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k >= 0 && k < kindCount
}

// String returns the scene file name of the kind.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindInfo[k].name
}

// NodeType returns the target node type the kind is created as.
func (k Kind) NodeType() string {
	if !k.Valid() {
		return ""
	}
	return kindInfo[k].nodeType
}

// IsLight reports whether k is one of the light kinds.
func (k Kind) IsLight() bool {
	switch k {
	case KindSpotLight, KindPointLight, KindDirectionalLight, KindAreaLight:
		return true
	}
	return false
}

// IsDAG reports whether nodes of this kind live in the DAG hierarchy and
// are created under their parent.
func (k Kind) IsDAG() bool {
	switch k {
	case KindTransform, KindMesh, KindSkinnedMesh, KindCamera:
		return true
	}
	return k.IsLight()
}

// ParseKind maps a scene file name to a Kind.
func ParseKind(s string) (Kind, error) {
	for i, info := range kindInfo {
		if info.name == s {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
