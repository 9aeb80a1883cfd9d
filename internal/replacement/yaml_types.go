package replacement

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML implements custom YAML unmarshaling for NodeSpec.
// Accepts either a bare title or a {title, children} mapping.
func (n *NodeSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var title string

		err := node.Decode(&title)
		if err != nil {
			return err
		}

		*n = NodeSpec{Title: title}

		return nil

	case yaml.MappingNode:
		// Alias type drops the custom unmarshaler to avoid recursion.
		type plain NodeSpec

		var p plain

		err := node.Decode(&p)
		if err != nil {
			return err
		}

		*n = NodeSpec(p)

		return nil

	default:
		return fmt.Errorf("line %d: expected title or {title, children}, got %v", node.Line, kindName(node.Kind))
	}
}

// MarshalYAML implements custom YAML marshaling for NodeSpec.
// Leaves are written as bare titles.
func (n NodeSpec) MarshalYAML() (any, error) {
	if len(n.Children) == 0 {
		return n.Title, nil
	}

	type plain NodeSpec

	return plain(n), nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
