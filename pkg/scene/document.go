package scene

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/export2maya/pkg/anim"
)

// Document is a scene file: the nodes to export and an optional clip.
type Document struct {
	Name  string     `yaml:"name"`
	Nodes []Node     `yaml:"nodes"`
	Clip  *anim.Clip `yaml:"clip,omitempty"`
}

// Parse decodes a scene document. Unknown fields are rejected.
func Parse(data []byte) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	return &doc, nil
}

// Load reads and decodes a scene document from path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Graph validates the document's nodes.
func (d *Document) Graph() (*Graph, error) {
	return NewGraph(d.Nodes)
}
