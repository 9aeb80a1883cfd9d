package replacement

// File represents the root of a YAML replacement table file.
type File struct {
	// Version of the table schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Replacements lists one entry per placeholder location.
	Replacements []Entry `yaml:"replacements"`
}

// Entry pins the children used for placeholders under one tree node.
type Entry struct {
	// Path is the title path from the tree root to the node holding the
	// placeholder children, including that node's own title.
	Path []string `yaml:"path,flow"`

	// Children is the ordered replacement list.
	Children []NodeSpec `yaml:"children"`
}

// NodeSpec describes a single replacement node.
// YAML formats supported:
//   - Simple string: "个人信息"
//   - Mapping: {title: 个人经历, children: [童年, 求学]}
type NodeSpec struct {
	Title    string     `yaml:"title"`
	Children []NodeSpec `yaml:"children,omitempty"`
}
