// Package expand rewrites placeholder rows in a tag forest into concrete
// child nodes.
//
// The transform walks every tree depth first. Under each node it splits
// the children into placeholder rows and normal children, recurses into
// the normal ones, and resolves the placeholders in this order:
//  1. Curated: the node's title path has an entry in the replacement table.
//  2. Examples: the placeholders list examples after "例如"; each becomes a leaf.
//  3. Removed: nothing to substitute, the placeholders are dropped.
//
// The replacement list is then merged in front of the normal children,
// deduplicated by trimmed title with the first occurrence winning. Same
// title nodes are not deep-merged: the later node's subtree is discarded.
package expand
