package expand

import "editor-assets/internal/tagtree"

// Merge concatenates primary and secondary, skipping nodes whose trimmed
// title is empty or was already admitted. The first occurrence of a title
// wins, so primary always beats secondary.
func Merge(primary, secondary []*tagtree.Node) []*tagtree.Node {
	seen := make(map[string]struct{}, len(primary)+len(secondary))
	out := make([]*tagtree.Node, 0, len(primary)+len(secondary))

	add := func(items []*tagtree.Node) {
		for _, it := range items {
			title := it.TrimmedTitle()
			if title == "" {
				continue
			}

			if _, ok := seen[title]; ok {
				continue
			}

			seen[title] = struct{}{}
			out = append(out, it)
		}
	}

	add(primary)
	add(secondary)

	return out
}
