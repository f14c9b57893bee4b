package exporter

import (
	"fmt"
	"strings"

	"github.com/Faultbox/export2maya/pkg/maya"
	"github.com/Faultbox/export2maya/pkg/naming"
	"github.com/Faultbox/export2maya/pkg/scene"
)

func (x *export) writeObjectSet(n scene.Node) error {
	x.out.CreateNode("objectSet", n.Name, "")
	x.out.SetAttr(".ihi", 0)
	x.out.SetAttr(".vo", true)
	return nil
}

func (x *export) writeGroupID(n scene.Node) error {
	x.out.CreateNode("groupId", n.Name, "")
	x.out.SetAttr(".ihi", 0)
	return nil
}

func (x *export) writeGroupParts(n scene.Node) error {
	x.out.CreateNode("groupParts", n.Name, "")
	x.out.SetAttr(".ihi", 0)
	gp := n.GroupParts
	if gp == nil || gp.AllVertices || len(gp.Faces) == 0 {
		x.out.SetAttrTyped(".ic", "componentList", 1, "vtx[*]")
		return nil
	}
	values := make([]any, 0, len(gp.Faces)+1)
	values = append(values, len(gp.Faces))
	for _, f := range gp.Faces {
		values = append(values, fmt.Sprintf("f[%d]", f))
	}
	x.out.SetAttrTyped(".ic", "componentList", values...)
	return nil
}

// writeBlendShape writes the deformer with zeroed weights and a weight
// alias per target, queues its plumbing connections, and writes the curves
// it drives.
func (x *export) writeBlendShape(n scene.Node) error {
	bs := n.BlendShape
	if bs == nil {
		return missing(n)
	}
	x.out.CreateNode("blendShape", n.Name, "")
	if len(bs.Targets) > 0 {
		weights := make([]any, len(bs.Targets))
		for i := range weights {
			weights[i] = 0
		}
		x.out.SetAttrSize(rangeAttr(".w", len(bs.Targets)), len(bs.Targets), weights...)

		alias := make([]string, 0, 2*len(bs.Targets))
		for i, t := range bs.Targets {
			alias = append(alias, maya.Quote(naming.Sanitize(t)), maya.Quote(fmt.Sprintf("weight[%d]", i)))
		}
		x.out.SetAttrTyped(".aal", "attributeAlias", maya.Raw("{"+strings.Join(alias, ",")+"}"))
	}

	x.connectBlendShape(n)

	if x.clip != nil {
		return x.driveBlendShape(n)
	}
	return nil
}

// connectBlendShape queues the connections that insert the deformer between
// the mesh tweak and the skin cluster. Connections to nodes left unnamed
// are skipped.
func (x *export) connectBlendShape(n scene.Node) {
	bs := n.BlendShape
	c := x.conns
	if bs.Mesh != "" && bs.Set != "" {
		og := fmt.Sprintf("%s.iog.og[%d]", x.graph.DAGPath(bs.Mesh), bs.InstObjGroup)
		c.ConnectAttr(og, bs.Set+".dsm", true)
		c.ConnectAttr(bs.Set+".mwc", og+".gco", false)
	}
	if bs.Set != "" {
		c.ConnectAttr(n.Name+".msg", bs.Set+".ub[0]", false)
	}
	if bs.GroupID != "" {
		if bs.Set != "" {
			c.ConnectAttr(bs.GroupID+".msg", bs.Set+".gn", true)
		}
		if bs.Mesh != "" {
			c.ConnectAttr(bs.GroupID+".id", fmt.Sprintf("%s.iog.og[%d].gid", x.graph.DAGPath(bs.Mesh), bs.InstObjGroup), false)
		}
		c.ConnectAttr(bs.GroupID+".id", n.Name+".ip[0].gi", false)
		if bs.GroupParts != "" {
			c.ConnectAttr(bs.GroupID+".id", bs.GroupParts+".gi", false)
		}
	}
	if bs.GroupParts != "" {
		c.ConnectAttr(bs.GroupParts+".og", n.Name+".ip[0].ig", false)
	}
	if bs.SkinGroupParts != "" {
		c.ConnectAttr(n.Name+".og[0]", bs.SkinGroupParts+".ig", false)
	}
	if bs.Tweak != "" && bs.GroupParts != "" {
		c.ConnectAttr(bs.Tweak+".og[0]", bs.GroupParts+".ig", false)
	}
}
