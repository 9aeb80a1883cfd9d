// Package diagnostic provides structured warnings, errors, and infos
// collected while decoding a tag tree, validating a replacement table,
// or expanding placeholders.
//
// Key capabilities:
//   - Skipped-entry reports for malformed tree nodes
//   - Replacement table conflicts (duplicate paths, empty titles)
//   - Folding all errors into a single error value
package diagnostic
