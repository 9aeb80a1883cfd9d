package tagtree

import (
	"slices"
	"strings"
)

// keySep cannot appear in a title read from JSON text without escaping,
// so joined keys of distinct paths never collide.
const keySep = "\x1f"

// Path is the ordered sequence of titles from a tree root down to a node.
// Append never mutates the receiver, so sibling recursions can share a
// parent path safely.
type Path struct {
	titles []string
}

// NewPath creates a path from the given titles.
func NewPath(titles ...string) Path {
	return Path{titles: append([]string(nil), titles...)}
}

// Append returns a new path with title added at the end.
func (p Path) Append(title string) Path {
	next := make([]string, len(p.titles), len(p.titles)+1)
	copy(next, p.titles)

	return Path{titles: append(next, title)}
}

// Len returns the number of titles in the path.
func (p Path) Len() int {
	return len(p.titles)
}

// Titles returns a copy of the path's titles.
func (p Path) Titles() []string {
	return append([]string(nil), p.titles...)
}

// Key returns a string usable as a map key for the path.
func (p Path) Key() string {
	return strings.Join(p.titles, keySep)
}

// String returns a readable form of the path, e.g. "知识点标签 / 语篇主题".
func (p Path) String() string {
	return strings.Join(p.titles, " / ")
}

// Equal reports whether both paths hold the same titles in the same order.
func (p Path) Equal(other Path) bool {
	return slices.Equal(p.titles, other.titles)
}
