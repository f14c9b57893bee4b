package exporter

import (
	"fmt"

	"github.com/Faultbox/export2maya/pkg/scene"
)

// writeNode appends the block for one node. Every scene.Kind has a case;
// anything else fails with ErrUnsupportedNodeKind.
func (x *export) writeNode(n scene.Node) error {
	switch n.Kind {
	case scene.KindTransform:
		return x.writeTransform(n)
	case scene.KindMesh, scene.KindSkinnedMesh:
		return x.writeMesh(n)
	case scene.KindSpotLight, scene.KindPointLight, scene.KindDirectionalLight, scene.KindAreaLight:
		return x.writeLight(n)
	case scene.KindCamera:
		return x.writeCamera(n)
	case scene.KindMaterial:
		return x.writeMaterial(n)
	case scene.KindTexture:
		return x.writeTexture(n)
	case scene.KindTerrainAlpha:
		return x.writeTerrainAlpha(n)
	case scene.KindRamp:
		return x.writeRamp(n)
	case scene.KindPlace2DTexture:
		return x.writePlace2D(n)
	case scene.KindLayeredTexture:
		return x.writeLayered(n)
	case scene.KindBump2D:
		return x.writeBump(n)
	case scene.KindMaterialInfo, scene.KindTweak:
		x.out.CreateNode(n.Kind.NodeType(), n.Name, "")
		return nil
	case scene.KindShadingEngine:
		return x.writeShadingEngine(n)
	case scene.KindObjectSet:
		return x.writeObjectSet(n)
	case scene.KindGroupParts:
		return x.writeGroupParts(n)
	case scene.KindGroupID:
		return x.writeGroupID(n)
	case scene.KindBlendShape:
		return x.writeBlendShape(n)
	}
	return fmt.Errorf("%w: %v", ErrUnsupportedNodeKind, n.Kind)
}

// parentPath returns the DAG path of n's parent, or "" for a root node.
func (x *export) parentPath(n scene.Node) string {
	if n.Parent == "" {
		return ""
	}
	return x.graph.DAGPath(n.Parent)
}

func missing(n scene.Node) error {
	return fmt.Errorf("%w: %s node %q", scene.ErrMissingPayload, n.Kind, n.Name)
}
