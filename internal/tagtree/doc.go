// Package tagtree models the knowledge tag forest stored in the editor's
// tag JSON file.
//
// Each node carries a title and optional ordered children. Decoding is
// lenient: entries that are not objects and children fields that are not
// lists are dropped and reported as diagnostics instead of failing the
// load. Any other keys a node carries are kept verbatim, in their original
// order, so a decode/encode round trip only changes what the caller
// changed.
//
// Key types:
//   - Node: one tag with its title, children, and passthrough fields
//   - Path: immutable ancestor title sequence used as a lookup key
package tagtree
