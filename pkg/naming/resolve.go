// Package naming derives target node names and attribute paths from host
// hierarchy paths, and hands out unique node names.
package naming

import "strings"

const (
	// PathSeparator separates host hierarchy segments.
	PathSeparator = "/"
	// PropertySeparator separates property name segments ("m_LocalPosition.x").
	PropertySeparator = "."
)

// NameScheme holds the prefixes for a curve node name and the attribute path
// it drives. Postfixes are per axis; see WithAxis.
type NameScheme struct {
	NodePrefix  string // e.g. "Root_Hips_Spine"
	AttrPrefix  string // e.g. "|Root|Hips|Spine"
	NodePostfix string // e.g. "_LocalPositionx"
	AttrPostfix string // e.g. ".tx"
	Property    string // property name without the component, e.g. "LocalPosition"
	ValueFactor float32
}

// Resolve splits sourcePath into segments and builds the node and attribute
// prefixes. An empty first segment (curve bound to the clip root) is replaced
// with parentName. The attribute prefix only gets the leading "|" form when
// there is more than one segment.
func Resolve(sourcePath, propertyName, parentName string) NameScheme {
	segs := strings.Split(sourcePath, PathSeparator)
	for i := range segs {
		segs[i] = Sanitize(segs[i])
	}
	first := segs[0]
	if first == "" {
		first = Sanitize(parentName)
	}

	var node strings.Builder
	node.WriteString(first)
	for _, s := range segs[1:] {
		node.WriteByte('_')
		node.WriteString(s)
	}

	attr := first
	if len(segs) >= 2 {
		var sb strings.Builder
		sb.WriteByte('|')
		sb.WriteString(first)
		for _, s := range segs[1:] {
			sb.WriteByte('|')
			sb.WriteString(s)
		}
		attr = sb.String()
	}

	return NameScheme{
		NodePrefix:  node.String(),
		AttrPrefix:  attr,
		Property:    baseProperty(propertyName),
		ValueFactor: 1,
	}
}

// WithAxis returns a copy of s with the postfixes for one component:
// node postfix "_<Property><axis>", attribute postfix attrCode (".tx").
func (s NameScheme) WithAxis(axis, attrCode string) NameScheme {
	s.NodePostfix = "_" + s.Property + axis
	s.AttrPostfix = attrCode
	return s
}

// NodeName is the curve node name.
func (s NameScheme) NodeName() string {
	return s.NodePrefix + s.NodePostfix
}

// AttrPath is the driven attribute path.
func (s NameScheme) AttrPath() string {
	return s.AttrPrefix + s.AttrPostfix
}

// baseProperty strips the component and the host's "m_" field prefix:
// "m_LocalPosition.x" -> "LocalPosition".
func baseProperty(propertyName string) string {
	p, _, _ := strings.Cut(propertyName, PropertySeparator)
	return strings.TrimPrefix(p, "m_")
}
