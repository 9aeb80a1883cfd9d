package tagtree

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"editor-assets/internal/diagnostic"
)

// ErrRootNotArray is returned when the top-level JSON value is not an array.
var ErrRootNotArray = errors.New("expected top-level JSON array")

// Diagnostic codes reported while decoding.
const (
	CodeSkippedEntry     = "skipped_entry"
	CodeMalformedChild   = "malformed_children"
	CodeNonStringTitle   = "non_string_title"
	CodeDuplicateNodeKey = "duplicate_key"
)

// LenientCodes lists the decode diagnostics that describe input which was
// normalized rather than rejected. Strict callers escalate these to errors.
var LenientCodes = []string{CodeSkippedEntry, CodeMalformedChild, CodeNonStringTitle, CodeDuplicateNodeKey}

// Decode parses a tag forest from JSON. The top-level value must be an
// array; anything else yields ErrRootNotArray. Malformed entries below the
// root are dropped and reported in the returned diagnostics.
func Decode(data []byte) ([]*Node, *diagnostic.Diagnostics, error) {
	diags := &diagnostic.Diagnostics{}

	var top json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, diags, fmt.Errorf("failed to parse tag JSON: %w", err)
	}

	if kindOf(top) != '[' {
		return nil, diags, ErrRootNotArray
	}

	nodes, err := decodeList(top, Path{}, diags)
	if err != nil {
		return nil, diags, err
	}

	return nodes, diags, nil
}

// decodeList decodes an array of node objects found under parent.
func decodeList(raw json.RawMessage, parent Path, diags *diagnostic.Diagnostics) ([]*Node, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to parse node list at %q: %w", parent.String(), err)
	}

	nodes := make([]*Node, 0, len(items))

	for i, item := range items {
		if kindOf(item) != '{' {
			diags.AddWarning(CodeSkippedEntry,
				fmt.Sprintf("entry %d is not an object (%s)", i, describe(item)), parent.String(), "")

			continue
		}

		n, err := decodeNode(item, parent, diags)
		if err != nil {
			return nil, err
		}

		nodes = append(nodes, n)
	}

	return nodes, nil
}

// decodeNode decodes one object, keeping every key in document order.
func decodeNode(raw json.RawMessage, parent Path, diags *diagnostic.Diagnostics) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("failed to read node at %q: %w", parent.String(), err)
	}

	n := &Node{}

	var childrenRaw json.RawMessage

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to read node key at %q: %w", parent.String(), err)
		}

		key, _ := tok.(string)

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("failed to read value of %q at %q: %w", key, parent.String(), err)
		}

		if n.hasField(key) {
			diags.AddWarning(CodeDuplicateNodeKey,
				fmt.Sprintf("key %q appears more than once; last value wins", key), parent.String(), key)
		}

		switch key {
		case keyTitle:
			var title string
			if kindOf(value) != '"' || json.Unmarshal(value, &title) != nil {
				// Kept verbatim, null included; the node takes part in the
				// tree with an empty title.
				diags.AddWarning(CodeNonStringTitle,
					fmt.Sprintf("title is %s, treated as empty", describe(value)), parent.String(), "")
				n.Title = ""
				n.setField(keyTitle, value)

				continue
			}

			n.Title = title
			n.setField(keyTitle, nil)
		case keyChildren:
			childrenRaw = value
			n.setField(keyChildren, nil)
		default:
			n.setField(key, value)
		}
	}

	if len(childrenRaw) == 0 {
		return n, nil
	}

	self := parent.Append(n.TrimmedTitle())

	switch kindOf(childrenRaw) {
	case '[':
		children, err := decodeList(childrenRaw, self, diags)
		if err != nil {
			return nil, err
		}

		if len(children) > 0 {
			n.Children = children
		}
	case 'n':
		// null children is the same as no children.
	default:
		diags.AddWarning(CodeMalformedChild,
			fmt.Sprintf("children is %s, not a list; dropped", describe(childrenRaw)), self.String(), "")
	}

	return n, nil
}

// kindOf returns the first significant byte of a JSON value: '{', '[',
// '"', 'n', 't', 'f', or a digit/sign for numbers.
func kindOf(raw json.RawMessage) byte {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return 0
	}

	return trimmed[0]
}

func describe(raw json.RawMessage) string {
	switch kindOf(raw) {
	case '{':
		return "an object"
	case '[':
		return "a list"
	case '"':
		return "a string"
	case 'n':
		return "null"
	case 't', 'f':
		return "a boolean"
	default:
		return "a number"
	}
}
