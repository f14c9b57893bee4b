package scene

import (
	"fmt"
	"strings"

	"github.com/Faultbox/export2maya/pkg/naming"
)

// Graph is an ordered, validated node list with name lookup.
type Graph struct {
	nodes  []Node
	byName map[string]int
	names  *naming.Registry
}

// NewGraph validates nodes and indexes them by name. Names and the node
// references they are used in are folded with naming.Sanitize, so two host
// names that fold to the same node name are duplicates. Nodes without a name
// get a generated one based on their node type ("groupId1", ...). A parent
// must be declared before its children.
func NewGraph(nodes []Node) (*Graph, error) {
	g := &Graph{
		nodes:  make([]Node, len(nodes)),
		byName: make(map[string]int, len(nodes)),
		names:  naming.NewRegistry(),
	}
	copy(g.nodes, nodes)
	for i := range g.nodes {
		sanitizeRefs(&g.nodes[i])
	}

	// Explicit names first so generated ones never collide with them.
	for i := range g.nodes {
		n := &g.nodes[i]
		if !n.Kind.Valid() {
			return nil, fmt.Errorf("node %d: %w: %d", i, ErrUnknownKind, int(n.Kind))
		}
		if n.Name == "" {
			continue
		}
		if !g.names.Reserve(n.Name) {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, n.Name)
		}
	}
	for i := range g.nodes {
		n := &g.nodes[i]
		if n.Name == "" {
			n.Name = g.names.Numbered(n.Kind.NodeType())
		}
		if n.Parent != "" {
			p, ok := g.byName[n.Parent]
			if !ok {
				return nil, fmt.Errorf("node %q: %w %q", n.Name, ErrUnknownParent, n.Parent)
			}
			if !g.nodes[p].Kind.IsDAG() {
				return nil, fmt.Errorf("node %q: parent %q is a %s, not a DAG node", n.Name, n.Parent, g.nodes[p].Kind)
			}
		}
		g.byName[n.Name] = i
	}
	return g, nil
}

// Nodes returns the nodes in declaration order.
func (g *Graph) Nodes() []Node {
	return g.nodes
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Lookup returns the node with the given name.
func (g *Graph) Lookup(name string) (*Node, bool) {
	i, ok := g.byName[name]
	if !ok {
		return nil, false
	}
	return &g.nodes[i], true
}

// Names returns the registry holding every node name. Further names handed
// out during export come from it.
func (g *Graph) Names() *naming.Registry {
	return g.names
}

// DAGPath returns the full "|a|b|c" path of a node.
func (g *Graph) DAGPath(name string) string {
	var parts []string
	for cur := name; cur != ""; {
		parts = append(parts, cur)
		n, ok := g.Lookup(cur)
		if !ok {
			break
		}
		cur = n.Parent
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return "|" + strings.Join(parts, "|")
}

// BlendShapes returns the blend shape nodes in declaration order.
func (g *Graph) BlendShapes() []*Node {
	var out []*Node
	for i := range g.nodes {
		if g.nodes[i].Kind == KindBlendShape {
			out = append(out, &g.nodes[i])
		}
	}
	return out
}

// sanitizeRefs folds the node's name and every node name it references.
// Payloads are copied before they are changed.
func sanitizeRefs(n *Node) {
	n.Name = naming.Sanitize(n.Name)
	n.Parent = naming.Sanitize(n.Parent)
	if n.BlendShape != nil {
		bs := *n.BlendShape
		bs.Mesh = naming.Sanitize(bs.Mesh)
		bs.Set = naming.Sanitize(bs.Set)
		bs.GroupID = naming.Sanitize(bs.GroupID)
		bs.GroupParts = naming.Sanitize(bs.GroupParts)
		bs.Tweak = naming.Sanitize(bs.Tweak)
		bs.SkinGroupParts = naming.Sanitize(bs.SkinGroupParts)
		n.BlendShape = &bs
	}
}
