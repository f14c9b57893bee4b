package exporter

import (
	"fmt"
	"strconv"

	"github.com/Faultbox/export2maya/pkg/math"
	"github.com/Faultbox/export2maya/pkg/maya"
	"github.com/Faultbox/export2maya/pkg/scene"
)

// FocalLengthFactor maps a vertical field of view in degrees to a focal
// length in millimetres for the default film back.
const FocalLengthFactor float32 = 0.3458333333333333

func (x *export) writeTransform(n scene.Node) error {
	x.out.CreateNode("transform", n.Name, x.parentPath(n))
	if n.Transform == nil {
		return nil
	}
	t := n.Transform
	p := x.conv.Position(math.Vec3FromArray(t.Position))
	r := x.conv.Rotation(math.QuatFromArray(t.Rotation).Normalize())
	s := x.conv.Scale(math.Vec3FromArray(t.Scale))
	x.out.SetAttrTyped(".t", "double3", p.X, p.Y, p.Z)
	x.out.SetAttrTyped(".r", "double3", r.X, r.Y, r.Z)
	x.out.SetAttrTyped(".s", "double3", s.X, s.Y, s.Z)
	return nil
}

func (x *export) writeLight(n scene.Node) error {
	l := n.Light
	if l == nil {
		return missing(n)
	}
	shadows := maya.Raw("off")
	if l.Shadows {
		shadows = "on"
	}
	x.out.CreateNode(n.Kind.NodeType(), n.Name, x.parentPath(n))
	x.out.SetAttrNotKeyable(".v")
	x.out.SetAttrTyped(".cl", "float3", l.Color[0], l.Color[1], l.Color[2])
	x.out.SetAttr(".in", l.Intensity)
	x.out.SetAttr(".de", 1)
	if n.Kind == scene.KindSpotLight {
		x.out.SetAttr(".dro", 20)
		x.out.SetAttr(".ca", l.SpotAngle)
		x.out.SetAttr(".pa", 5)
	}
	x.out.SetAttr(".urs", shadows)
	return nil
}

func (x *export) writeCamera(n scene.Node) error {
	c := n.Camera
	if c == nil {
		return missing(n)
	}
	x.out.CreateNode("camera", n.Name, x.parentPath(n))
	x.out.SetAttrNotKeyable(".v")
	x.out.SetAttrTyped(".cap", "double2", maya.Raw("1.41732"), maya.Raw("0.94488"))
	x.out.SetAttr(".ff", 3)
	x.out.SetAttr(".fl", c.FieldOfView*FocalLengthFactor)
	x.out.SetAttr(".ncp", c.Near)
	x.out.SetAttr(".fcp", c.Far)
	x.out.SetAttr(".ow", 30)
	x.out.SetAttrTyped(".imn", "string", n.Name)
	x.out.SetAttrTyped(".den", "string", n.Name+"_depth")
	x.out.SetAttrTyped(".man", "string", n.Name+"_mask")
	return nil
}

// writeMesh writes vertices, UVs, edges and faces. Converting to the
// target's handedness mirrors X, so every face's winding is reversed to
// keep normals pointing out.
func (x *export) writeMesh(n scene.Node) error {
	m := n.Mesh
	if m == nil {
		return missing(n)
	}
	if err := validateMesh(m); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidMesh, n.Name, err)
	}

	x.out.CreateNode("mesh", n.Name, x.parentPath(n))
	x.out.SetAttrNotKeyable(".v")
	if m.Intermediate {
		x.out.SetAttr(".io", true)
	}

	if len(m.UVs) > 0 {
		x.out.SetAttrTyped(".uvst[0].uvsn", "string", "map1")
		uvs := make([]any, 0, 2*len(m.UVs))
		for _, uv := range m.UVs {
			uvs = append(uvs, uv[0], uv[1])
		}
		x.out.SetAttrSizeTyped(rangeAttr(".uvst[0].uvsp", len(m.UVs)), len(m.UVs), "float2", uvs...)
		x.out.SetAttrTyped(".cuvs", "string", "map1")
	}

	if len(m.Vertices) > 0 {
		vt := make([]any, 0, 3*len(m.Vertices))
		for _, v := range m.Vertices {
			p := x.conv.Position(math.Vec3FromArray(v))
			vt = append(vt, p.X, p.Y, p.Z)
		}
		x.out.SetAttrSize(rangeAttr(".vt", len(m.Vertices)), len(m.Vertices), vt...)
	}

	faces := reverseWinding(m.Faces)
	var faceUVs [][]int
	if len(m.FaceUVs) > 0 {
		faceUVs = reverseWinding(m.FaceUVs)
	}
	edges, faceEdges := buildEdges(faces)

	if len(edges) > 0 {
		ed := make([]any, 0, 3*len(edges))
		for _, e := range edges {
			ed = append(ed, e[0], e[1], 0)
		}
		x.out.SetAttrSize(rangeAttr(".ed", len(edges)), len(edges), ed...)
	}

	if len(faces) > 0 {
		var fc []any
		for i, fe := range faceEdges {
			fc = append(fc, maya.Raw("f"), len(fe))
			for _, e := range fe {
				fc = append(fc, e)
			}
			if faceUVs != nil {
				fc = append(fc, maya.Raw("mu"), 0, len(faceUVs[i]))
				for _, uv := range faceUVs[i] {
					fc = append(fc, uv)
				}
			}
		}
		x.out.SetAttrSizeTyped(rangeAttr(".fc", len(faces)), len(faces), "polyFaces", fc...)
	}
	return nil
}

// rangeAttr returns `<attr>[0:<n-1>]`.
func rangeAttr(attr string, n int) string {
	return attr + "[0:" + strconv.Itoa(n-1) + "]"
}

func validateMesh(m *scene.Mesh) error {
	for i, f := range m.Faces {
		if len(f) < 3 {
			return fmt.Errorf("face %d has %d vertices", i, len(f))
		}
		for _, v := range f {
			if v < 0 || v >= len(m.Vertices) {
				return fmt.Errorf("face %d: vertex %d out of range", i, v)
			}
		}
	}
	if len(m.FaceUVs) == 0 {
		return nil
	}
	if len(m.FaceUVs) != len(m.Faces) {
		return fmt.Errorf("%d face uv lists for %d faces", len(m.FaceUVs), len(m.Faces))
	}
	for i, f := range m.FaceUVs {
		if len(f) != len(m.Faces[i]) {
			return fmt.Errorf("face %d: %d uvs for %d vertices", i, len(f), len(m.Faces[i]))
		}
		for _, uv := range f {
			if uv < 0 || uv >= len(m.UVs) {
				return fmt.Errorf("face %d: uv %d out of range", i, uv)
			}
		}
	}
	return nil
}

func reverseWinding(faces [][]int) [][]int {
	out := make([][]int, len(faces))
	for i, f := range faces {
		r := make([]int, len(f))
		for j, v := range f {
			r[len(f)-1-j] = v
		}
		out[i] = r
	}
	return out
}

// buildEdges returns the unique edges of faces in first-use order and, per
// face, its edge list. An edge walked against its stored direction is
// written as -(index+1).
func buildEdges(faces [][]int) ([][2]int, [][]int) {
	type pair struct{ a, b int }
	index := make(map[pair]int)
	var edges [][2]int
	faceEdges := make([][]int, len(faces))
	for i, f := range faces {
		fe := make([]int, len(f))
		for j := range f {
			a, b := f[j], f[(j+1)%len(f)]
			if k, ok := index[pair{a, b}]; ok {
				fe[j] = k
				continue
			}
			if k, ok := index[pair{b, a}]; ok {
				fe[j] = -(k + 1)
				continue
			}
			index[pair{a, b}] = len(edges)
			fe[j] = len(edges)
			edges = append(edges, [2]int{a, b})
		}
		faceEdges[i] = fe
	}
	return edges, faceEdges
}
