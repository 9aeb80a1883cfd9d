package tagtree

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Encode serializes a forest as 2-space indented JSON with a trailing
// newline. Neither HTML characters nor non-ASCII text are escaped.
func Encode(nodes []*Node) ([]byte, error) {
	if nodes == nil {
		nodes = []*Node{}
	}

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(nodes); err != nil {
		return nil, fmt.Errorf("failed to encode tag JSON: %w", err)
	}

	return buf.Bytes(), nil
}

// MarshalJSON writes the node's keys in their original order. The
// children key is omitted when the node is a leaf.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	wrote := false
	writeKey := func(key string) error {
		if wrote {
			buf.WriteByte(',')
		}

		wrote = true

		return writeValue(&buf, key)
	}

	fields := n.fields
	if fields == nil {
		fields = []field{{key: keyTitle}, {key: keyChildren}}
	}

	childrenWritten := false

	for _, f := range fields {
		switch {
		case f.key == keyTitle && f.raw == nil:
			if err := writeKey(keyTitle); err != nil {
				return nil, err
			}

			buf.WriteByte(':')

			if err := writeValue(&buf, n.Title); err != nil {
				return nil, err
			}
		case f.key == keyChildren && f.raw == nil:
			childrenWritten = true

			if n.IsLeaf() {
				continue
			}

			if err := writeChildren(&buf, n.Children, writeKey); err != nil {
				return nil, err
			}
		default:
			if err := writeKey(f.key); err != nil {
				return nil, err
			}

			buf.WriteByte(':')
			buf.Write(f.raw)
		}
	}

	if !childrenWritten && !n.IsLeaf() {
		if err := writeChildren(&buf, n.Children, writeKey); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func writeChildren(buf *bytes.Buffer, children []*Node, writeKey func(string) error) error {
	if err := writeKey(keyChildren); err != nil {
		return err
	}

	buf.WriteByte(':')

	return writeValue(buf, children)
}

// writeValue encodes v without HTML escaping and without the trailing
// newline json.Encoder appends.
func writeValue(buf *bytes.Buffer, v any) error {
	var tmp bytes.Buffer

	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return err
	}

	buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))

	return nil
}
