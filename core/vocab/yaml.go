package vocab

import (
	"errors"
	"io"

	"github.com/npillmayer/mathed/core"
	"gopkg.in/yaml.v3"
)

// RegisterYAML reads plugin definitions from a YAML document and registers
// them in document order. The document is a mapping from plugin names to
// plugins:
//
//	chemistry:
//	  special: [mol]
//	  map:
//	    "->": " &rarr; "
//
func (reg *Registry) RegisterYAML(r io.Reader) error {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil // empty document
		}
		return core.WrapError(err, core.EINVALID, "cannot read plugin definitions: %v", err)
	}
	return reg.RegisterNode(&doc)
}

// RegisterNode registers the plugins of a YAML mapping node, in document
// order. A zero node is ignored, so a missing section of a configuration
// file is not an error.
func (reg *Registry) RegisterNode(node *yaml.Node) error {
	if node == nil || node.Kind == 0 {
		return nil
	}
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil
		}
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return core.WrapError(core.ErrInvalid, core.EINVALID,
			"plugin definitions must be a mapping (line %d)", node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		var p Plugin
		if err := node.Content[i+1].Decode(&p); err != nil {
			return core.WrapError(err, core.EINVALID, "plugin %q: %v", name, err)
		}
		if err := reg.Register(name, p); err != nil {
			return err
		}
	}
	return nil
}
