package replacement

import (
	"fmt"
	"strings"

	"editor-assets/internal/diagnostic"
	"editor-assets/internal/placeholder"
	"editor-assets/internal/tagtree"
)

// Validation codes.
const (
	CodeEmptyPath        = "empty_path"
	CodeDuplicatePath    = "duplicate_path"
	CodeEmptyTitle       = "empty_title"
	CodeDuplicateTitle   = "duplicate_title"
	CodePlaceholderTitle = "placeholder_title"
	CodeEmptyChildren    = "empty_children"
)

// Validate checks a table definition for conflicting keys and for
// children the transform could never emit.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("table_is_nil", "replacement table is nil", "", "")
		return res
	}

	seenPaths := map[string]int{}

	for i := range f.Replacements {
		e := &f.Replacements[i]
		path := normalizePath(e.Path)
		where := path.String()

		if path.Len() == 0 {
			res.AddError(CodeEmptyPath, fmt.Sprintf("entry %d has no path", i), "", "")
			continue
		}

		if prev, ok := seenPaths[path.Key()]; ok {
			res.AddError(CodeDuplicatePath,
				fmt.Sprintf("entry %d repeats the path of entry %d", i, prev), where, "")

			continue
		}

		seenPaths[path.Key()] = i

		if len(e.Children) == 0 {
			res.AddWarning(CodeEmptyChildren, "entry has no children; placeholders here are dropped", where, "")
		}

		validateChildren(res, path, e.Children)
	}

	return res
}

func validateChildren(res *diagnostic.Diagnostics, parent tagtree.Path, children []NodeSpec) {
	where := parent.String()
	seen := map[string]struct{}{}

	for _, c := range children {
		title := strings.TrimSpace(c.Title)
		if title == "" {
			res.AddError(CodeEmptyTitle, "child has an empty title", where, "")
			continue
		}

		if _, ok := seen[title]; ok {
			res.AddWarning(CodeDuplicateTitle, "title repeated; only the first is kept", where, title)
			continue
		}

		seen[title] = struct{}{}

		if placeholder.IsPlaceholder(title) {
			res.AddWarning(CodePlaceholderTitle, "curated child is itself a placeholder", where, title)
		}

		if len(c.Children) > 0 {
			validateChildren(res, parent.Append(title), c.Children)
		}
	}
}

// normalizePath trims every title, matching how the transform builds paths.
func normalizePath(titles []string) tagtree.Path {
	trimmed := make([]string, len(titles))
	for i, t := range titles {
		trimmed[i] = strings.TrimSpace(t)
	}

	return tagtree.NewPath(trimmed...)
}
