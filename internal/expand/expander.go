package expand

import (
	"go.uber.org/zap"

	"editor-assets/internal/placeholder"
	"editor-assets/internal/replacement"
	"editor-assets/internal/tagtree"
)

// Expander rewrites placeholder rows using a replacement table.
type Expander struct {
	table  *replacement.Table
	logger *zap.Logger
}

// Result is the output of one run.
type Result struct {
	Nodes       []*tagtree.Node
	Stats       Stats
	Resolutions []Resolution
}

// New creates an Expander. A nil table means no curated replacements; a
// nil logger discards log output.
func New(table *replacement.Table, logger *zap.Logger) *Expander {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Expander{table: table, logger: logger}
}

// Run transforms every tree of the forest in place and returns the
// forest together with the run's counters.
func (e *Expander) Run(forest []*tagtree.Node) *Result {
	res := &Result{Nodes: forest}

	for _, n := range forest {
		e.transform(n, tagtree.Path{}, res)
	}

	return res
}

// transform rewrites n's subtree. parent is the path of n's ancestors.
func (e *Expander) transform(n *tagtree.Node, parent tagtree.Path, res *Result) {
	if len(n.Children) == 0 {
		n.Children = nil
		return
	}

	self := parent.Append(n.TrimmedTitle())

	var (
		kept         []*tagtree.Node
		placeholders []*tagtree.Node
	)

	for _, ch := range n.Children {
		if placeholder.IsPlaceholder(ch.TrimmedTitle()) {
			res.Stats.Found++
			placeholders = append(placeholders, ch)

			continue
		}

		e.transform(ch, self, res)
		kept = append(kept, ch)
	}

	if len(placeholders) == 0 {
		n.Children = nonEmpty(kept)
		return
	}

	replacements := e.resolve(self, placeholders, res)
	n.Children = nonEmpty(Merge(replacements, kept))
}

// resolve picks the nodes that stand in for the placeholders under path.
func (e *Expander) resolve(path tagtree.Path, placeholders []*tagtree.Node, res *Result) []*tagtree.Node {
	var (
		out     []*tagtree.Node
		outcome Outcome
	)

	if curated, ok := e.table.Lookup(path); ok {
		out = curated
		outcome = OutcomeCurated
		res.Stats.Replaced += len(placeholders)
	} else if examples := collectExamples(placeholders); len(examples) > 0 {
		out = make([]*tagtree.Node, 0, len(examples))
		for _, title := range examples {
			out = append(out, tagtree.New(title))
		}

		outcome = OutcomeExamples
		res.Stats.Replaced += len(placeholders)
	} else {
		outcome = OutcomeRemoved
		res.Stats.Removed += len(placeholders)
	}

	res.Resolutions = append(res.Resolutions, Resolution{
		Path:         path,
		Placeholders: len(placeholders),
		Outcome:      outcome,
		Produced:     len(out),
	})

	e.logger.Debug("placeholders resolved",
		zap.String("path", path.String()),
		zap.Stringer("outcome", outcome),
		zap.Int("placeholders", len(placeholders)),
		zap.Int("produced", len(out)),
	)

	return out
}

// collectExamples gathers the example titles of every placeholder in
// order, placeholder by placeholder.
func collectExamples(placeholders []*tagtree.Node) []string {
	var out []string

	for _, ph := range placeholders {
		d, ok := placeholder.Parse(ph.TrimmedTitle())
		if !ok {
			continue
		}

		for _, ex := range d.Examples {
			if ex != "" {
				out = append(out, ex)
			}
		}
	}

	return out
}

func nonEmpty(nodes []*tagtree.Node) []*tagtree.Node {
	if len(nodes) == 0 {
		return nil
	}

	return nodes
}
