package exporter

import (
	"fmt"

	"github.com/Faultbox/export2maya/pkg/scene"
)

func (x *export) writeMaterial(n scene.Node) error {
	x.out.CreateNode("blinn", n.Name, "")
	m := n.Material
	if m == nil {
		return nil
	}
	for _, c := range []struct {
		attr  string
		color *[3]float32
	}{
		{".c", m.Color},
		{".sc", m.Specular},
		{".ic", m.Emission},
	} {
		if c.color != nil {
			x.out.SetAttrTyped(c.attr, "float3", c.color[0], c.color[1], c.color[2])
		}
	}
	return nil
}

func (x *export) writeTexture(n scene.Node) error {
	if n.Texture == nil {
		return missing(n)
	}
	x.out.CreateNode("file", n.Name, "")
	x.out.SetAttrTyped(".ftn", "string", x.opts.TexturePath+n.Texture.File)
	return nil
}

func (x *export) writeTerrainAlpha(n scene.Node) error {
	if n.TerrainAlpha == nil {
		return missing(n)
	}
	x.out.CreateNode("file", n.Name, "")
	x.out.SetAttrTyped(".ftn", "string", x.opts.TexturePath+n.TerrainAlpha.Image+".png")
	return nil
}

func (x *export) writeRamp(n scene.Node) error {
	x.out.CreateNode("ramp", n.Name, "")
	if n.Ramp == nil {
		return nil
	}
	for i, c := range n.Ramp.Colors {
		x.out.SetAttr(fmt.Sprintf(".cel[%d].ep", i), 0)
		x.out.SetAttrTyped(fmt.Sprintf(".cel[%d].ec", i), "float3", c[0], c[1], c[2])
	}
	return nil
}

func (x *export) writePlace2D(n scene.Node) error {
	p := scene.Place2DTexture{Tiling: [2]float32{1, 1}}
	if n.Place2D != nil {
		p = *n.Place2D
	}
	x.out.CreateNode("place2dTexture", n.Name, "")
	x.out.SetAttrTyped(".re", "float2", p.Tiling[0], p.Tiling[1])
	x.out.SetAttrTyped(".of", "float2", p.Offset[0], p.Offset[1])
	return nil
}

func (x *export) writeLayered(n scene.Node) error {
	inputs := 0
	if n.Layered != nil {
		inputs = n.Layered.Inputs
	}
	x.out.CreateNode("layeredTexture", n.Name, "")
	x.out.SetAttrSize(".cs", inputs)
	for i := 0; i < inputs; i++ {
		x.out.SetAttr(fmt.Sprintf(".cs[%d].a", i), 1)
		x.out.SetAttr(fmt.Sprintf(".cs[%d].bm", i), 4)
		x.out.SetAttr(fmt.Sprintf(".cs[%d].iv", i), true)
	}
	x.out.SetAttr(".ail", true)
	return nil
}

func (x *export) writeBump(n scene.Node) error {
	var amount float32 = 1
	if n.Bump != nil {
		amount = n.Bump.Amount
	}
	x.out.CreateNode("bump2d", n.Name, "")
	x.out.SetAttr(".bi", 1) // normal map
	x.out.SetAttr(".p3d", true)
	x.out.SetAttr(".bd", amount)
	return nil
}

func (x *export) writeShadingEngine(n scene.Node) error {
	x.out.CreateNode("shadingEngine", n.Name, "")
	x.out.SetAttr(".ihi", 0)
	x.out.SetAttr(".ro", true)
	return nil
}
