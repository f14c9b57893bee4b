// Package scene describes the host scene handed to the exporter: an ordered
// list of nodes, each tagged with a Kind and carrying the attributes its
// writer needs.
package scene

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Node is one exported entity. Parent names an earlier node and is only
// used for lookups.
type Node struct {
	Name   string `yaml:"name"`
	Path   string `yaml:"path,omitempty"`
	Parent string `yaml:"parent,omitempty"`
	Kind   Kind   `yaml:"kind"`

	Transform    *Transform      `yaml:"transform,omitempty"`
	Mesh         *Mesh           `yaml:"mesh,omitempty"`
	Material     *Material       `yaml:"material,omitempty"`
	Texture      *Texture        `yaml:"texture,omitempty"`
	TerrainAlpha *TerrainAlpha   `yaml:"terrain_alpha,omitempty"`
	Light        *Light          `yaml:"light,omitempty"`
	Camera       *Camera         `yaml:"camera,omitempty"`
	GroupParts   *GroupParts     `yaml:"group_parts,omitempty"`
	Ramp         *Ramp           `yaml:"ramp,omitempty"`
	Place2D      *Place2DTexture `yaml:"place2d,omitempty"`
	Layered      *LayeredTexture `yaml:"layered,omitempty"`
	Bump         *Bump2D         `yaml:"bump,omitempty"`
	BlendShape   *BlendShape     `yaml:"blend_shape,omitempty"`
}

// Transform is a local transform in host space. Fields left out of a scene
// file keep their IdentityTransform value.
type Transform struct {
	Position [3]float32 `yaml:"position"`
	Rotation [4]float32 `yaml:"rotation"` // quaternion x, y, z, w
	Scale    [3]float32 `yaml:"scale"`
}

// IdentityTransform returns the rest transform.
func IdentityTransform() Transform {
	return Transform{
		Rotation: [4]float32{0, 0, 0, 1},
		Scale:    [3]float32{1, 1, 1},
	}
}

// UnmarshalYAML decodes over IdentityTransform. Unknown keys are rejected.
func (t *Transform) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(value.Content); i += 2 {
			switch k := value.Content[i]; k.Value {
			case "position", "rotation", "scale":
			default:
				return fmt.Errorf("line %d: field %s not found in transform", k.Line, k.Value)
			}
		}
	}
	type plain Transform
	p := plain(IdentityTransform())
	if err := value.Decode(&p); err != nil {
		return err
	}
	*t = Transform(p)
	return nil
}

// Mesh is extracted polygon data in host space.
// Faces index Vertices; FaceUVs, when present, has the same shape and
// indexes UVs.
type Mesh struct {
	Vertices     [][3]float32 `yaml:"vertices"`
	UVs          [][2]float32 `yaml:"uvs,omitempty"`
	Faces        [][]int      `yaml:"faces"`
	FaceUVs      [][]int      `yaml:"face_uvs,omitempty"`
	Intermediate bool         `yaml:"intermediate,omitempty"`
}

// Material holds the colors of a regular material. Nil colors are not
// written.
type Material struct {
	Color    *[3]float32 `yaml:"color,omitempty"`
	Specular *[3]float32 `yaml:"specular,omitempty"`
	Emission *[3]float32 `yaml:"emission,omitempty"`
}

// Texture is a file texture; File is relative to the texture directory.
type Texture struct {
	File string `yaml:"file"`
}

// TerrainAlpha is a terrain splat map written out as <Image>.png.
type TerrainAlpha struct {
	Image string `yaml:"image"`
}

// Light holds the attributes shared by all light kinds. SpotAngle is only
// used by spot lights.
type Light struct {
	Color     [3]float32 `yaml:"color"`
	Intensity float32    `yaml:"intensity"`
	SpotAngle float32    `yaml:"spot_angle,omitempty"`
	Shadows   bool       `yaml:"shadows"`
}

// Camera holds the host camera projection.
type Camera struct {
	FieldOfView float32 `yaml:"field_of_view"` // vertical, degrees
	Near        float32 `yaml:"near"`
	Far         float32 `yaml:"far"`
}

// GroupParts selects the components a deformer group applies to. With
// AllVertices set, or no Faces, the group covers every vertex.
type GroupParts struct {
	AllVertices bool  `yaml:"all_vertices,omitempty"`
	Faces       []int `yaml:"faces,omitempty"`
}

// Ramp is a color ramp.
type Ramp struct {
	Colors [][3]float32 `yaml:"colors"`
}

// Place2DTexture holds texture tiling and offset.
type Place2DTexture struct {
	Tiling [2]float32 `yaml:"tiling"`
	Offset [2]float32 `yaml:"offset"`
}

// LayeredTexture is a layered texture with Inputs layers.
type LayeredTexture struct {
	Inputs int `yaml:"inputs"`
}

// Bump2D is a normal map bump node.
type Bump2D struct {
	Amount float32 `yaml:"amount"`
}

// BlendShape is a blend shape deformer and the names of the nodes it is
// plumbed into. Targets lists the shape names in declaration order; weight
// curves connect to .w[i] of the matching target.
type BlendShape struct {
	Mesh           string   `yaml:"mesh"`             // deformed mesh shape
	Set            string   `yaml:"set"`              // deformer object set
	GroupID        string   `yaml:"group_id"`         // deformer group id
	GroupParts     string   `yaml:"group_parts"`      // deformer group parts
	Tweak          string   `yaml:"tweak"`            // mesh tweak node
	SkinGroupParts string   `yaml:"skin_group_parts"` // skin cluster group parts fed by the deformer
	InstObjGroup   int      `yaml:"inst_obj_group"`   // instObjGroups object group index
	Targets        []string `yaml:"targets"`
}

// TargetIndex returns the declaration index of a target, or -1.
func (b *BlendShape) TargetIndex(name string) int {
	for i, t := range b.Targets {
		if t == name {
			return i
		}
	}
	return -1
}
