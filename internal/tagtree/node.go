package tagtree

import (
	"encoding/json"
	"strings"
)

const (
	keyTitle    = "title"
	keyChildren = "children"
)

// Node is a single entry of the tag tree.
//
// A node with no children is a leaf; its children field is omitted on
// encode rather than written as an empty list.
type Node struct {
	Title    string
	Children []*Node

	// fields keeps the original key order. Entries for "title" and
	// "children" with a nil raw value are rendered from Title/Children.
	fields []field
}

type field struct {
	key string
	raw json.RawMessage
}

// New creates a node with the given title and children.
func New(title string, children ...*Node) *Node {
	n := &Node{
		Title:  title,
		fields: []field{{key: keyTitle}, {key: keyChildren}},
	}
	if len(children) > 0 {
		n.Children = children
	}

	return n
}

// TrimmedTitle returns the title with surrounding whitespace removed.
// Paths and sibling deduplication use this form; the stored title is
// never rewritten.
func (n *Node) TrimmedTitle() string {
	if n == nil {
		return ""
	}

	return strings.TrimSpace(n.Title)
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Field returns the raw JSON of a passthrough key, if present.
func (n *Node) Field(key string) (json.RawMessage, bool) {
	for _, f := range n.fields {
		if f.key == key && f.raw != nil {
			return f.raw, true
		}
	}

	return nil, false
}

// Clone returns a deep copy of the node and its subtree.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}

	c := &Node{Title: n.Title}

	if n.fields != nil {
		c.fields = make([]field, len(n.fields))
		for i, f := range n.fields {
			c.fields[i] = field{key: f.key}
			if f.raw != nil {
				c.fields[i].raw = append(json.RawMessage(nil), f.raw...)
			}
		}
	}

	if len(n.Children) > 0 {
		c.Children = CloneAll(n.Children)
	}

	return c
}

// CloneAll deep-copies a list of nodes.
func CloneAll(nodes []*Node) []*Node {
	if nodes == nil {
		return nil
	}

	out := make([]*Node, len(nodes))
	for i, n := range nodes {
		out[i] = n.Clone()
	}

	return out
}

// Titles returns the trimmed titles of the given nodes in order.
func Titles(nodes []*Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.TrimmedTitle())
	}

	return out
}

func (n *Node) setField(key string, raw json.RawMessage) {
	for i := range n.fields {
		if n.fields[i].key == key {
			n.fields[i].raw = raw
			return
		}
	}

	n.fields = append(n.fields, field{key: key, raw: raw})
}

func (n *Node) hasField(key string) bool {
	for _, f := range n.fields {
		if f.key == key {
			return true
		}
	}

	return false
}
