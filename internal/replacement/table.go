package replacement

import (
	"errors"
	"fmt"

	"editor-assets/internal/diagnostic"
	"editor-assets/internal/tagtree"
)

// ErrDuplicatePath is returned when a path is added to a table twice.
var ErrDuplicatePath = errors.New("duplicate replacement path")

// Table maps title paths to curated replacement children.
// The zero value is not usable; call NewTable.
type Table struct {
	entries map[string][]*tagtree.Node
	paths   []tagtree.Path
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{entries: map[string][]*tagtree.Node{}}
}

// Add registers children for path. Adding the same path twice fails.
func (t *Table) Add(path tagtree.Path, children []*tagtree.Node) error {
	key := path.Key()
	if _, ok := t.entries[key]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicatePath, path.String())
	}

	t.entries[key] = tagtree.CloneAll(children)
	if t.entries[key] == nil {
		t.entries[key] = []*tagtree.Node{}
	}

	t.paths = append(t.paths, path)

	return nil
}

// Lookup returns a fresh copy of the children registered for path.
// Callers may attach the result to a tree without aliasing the table.
func (t *Table) Lookup(path tagtree.Path) ([]*tagtree.Node, bool) {
	if t == nil {
		return nil, false
	}

	children, ok := t.entries[path.Key()]
	if !ok {
		return nil, false
	}

	return tagtree.CloneAll(children), true
}

// Len returns the number of registered paths.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}

	return len(t.paths)
}

// Paths returns the registered paths in insertion order.
func (t *Table) Paths() []tagtree.Path {
	if t == nil {
		return nil
	}

	return append([]tagtree.Path(nil), t.paths...)
}

// Build validates a table definition and turns it into a Table. Warnings
// are returned alongside a usable table; any error diagnostic fails the
// build.
func Build(f *File) (*Table, *diagnostic.Diagnostics, error) {
	diags := Validate(f)
	if err := diags.Error(); err != nil {
		return nil, diags, fmt.Errorf("invalid replacement table: %w", err)
	}

	t := NewTable()

	for _, e := range f.Replacements {
		if err := t.Add(normalizePath(e.Path), toNodes(e.Children)); err != nil {
			return nil, diags, err
		}
	}

	return t, diags, nil
}

// Default builds the embedded curated table.
func Default() (*Table, *diagnostic.Diagnostics, error) {
	f, err := Curated()
	if err != nil {
		return nil, &diagnostic.Diagnostics{}, err
	}

	return Build(f)
}

// Load builds a table from a YAML file, or the embedded curated table
// when path is empty.
func Load(path string) (*Table, *diagnostic.Diagnostics, error) {
	if path == "" {
		return Default()
	}

	f, err := LoadFile(path)
	if err != nil {
		return nil, &diagnostic.Diagnostics{}, err
	}

	return Build(f)
}

func toNodes(specs []NodeSpec) []*tagtree.Node {
	nodes := make([]*tagtree.Node, 0, len(specs))
	for _, s := range specs {
		nodes = append(nodes, tagtree.New(s.Title, toNodes(s.Children)...))
	}

	return nodes
}
