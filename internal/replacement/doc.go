// Package replacement provides the YAML schema, loader, validation, and
// lookup table for curated placeholder replacements.
//
// A replacement table maps the title path of a tag node to the ordered
// list of children that replaces the placeholder rows under it. The table
// is configuration, not code: the built-in curated table ships as an
// embedded YAML file, and any other file with the same schema can be
// swapped in.
//
// # Schema Overview
//
//	version: "1"
//	replacements:
//	  - path: [知识点标签, 语篇主题, 初中, 人与自我, 个人情况]
//	    children:
//	      - 个人信息                 # bare title: a leaf
//	      - title: 个人经历          # mapping: a node with its own children
//	        children: [童年, 求学]
//
// # Validation
//
// Validate runs before a table is built and reports:
//   - empty_path (error): an entry without a path
//   - duplicate_path (error): two entries for the same path
//   - empty_title (error): a child with a blank title
//   - duplicate_title (warning): a repeated title within one list, which
//     the merge step would silently drop
//   - placeholder_title (warning): a curated child that is itself a placeholder
//   - empty_children (warning): an entry that removes the placeholders
//     without replacing them
package replacement
