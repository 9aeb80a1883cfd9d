package expand

import (
	"fmt"

	"editor-assets/internal/tagtree"
)

// Stats counts placeholder handling over one run.
//
// Found counts every placeholder row seen. Replaced and Removed count
// placeholder rows too, not the nodes produced for them, so a single row
// replaced by ten curated children adds one to Replaced.
type Stats struct {
	Found    int
	Replaced int
	Removed  int
}

// String returns the one-line run summary.
func (s Stats) String() string {
	return fmt.Sprintf("placeholders found=%d replaced=%d removed=%d", s.Found, s.Replaced, s.Removed)
}

// Resolution records how the placeholders under one node were handled.
type Resolution struct {
	// Path is the title path of the node holding the placeholders.
	Path tagtree.Path
	// Placeholders is the number of placeholder rows under the node.
	Placeholders int
	// Outcome is how they were resolved.
	Outcome Outcome
	// Produced is the number of replacement nodes before merging.
	Produced int
}
