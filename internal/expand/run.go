package expand

import (
	"fmt"

	"go.uber.org/zap"

	"editor-assets/internal/diagnostic"
	"editor-assets/internal/replacement"
	"editor-assets/internal/tagtree"
)

// FileOptions configures a run over a tag file.
type FileOptions struct {
	// Target is the tag JSON file, read and then overwritten.
	Target string
	// TablePath is a YAML replacement table; empty selects the curated table.
	TablePath string
	// Strict turns lenient decode diagnostics into errors.
	Strict bool
	// DryRun transforms and reports without writing.
	DryRun bool
}

// Report is the outcome of a file run.
type Report struct {
	Stats       Stats
	Resolutions []Resolution
	Diagnostics *diagnostic.Diagnostics
	Written     bool
}

// RunFile loads the replacement table and the tag file, expands the
// placeholders and writes the file back. Nothing is written unless every
// step before the write succeeded.
func RunFile(opts FileOptions, logger *zap.Logger) (*Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	report := &Report{Diagnostics: &diagnostic.Diagnostics{}}

	table, tableDiags, err := replacement.Load(opts.TablePath)
	report.Diagnostics.Merge(*tableDiags)

	if err != nil {
		return report, err
	}

	logger.Debug("replacement table loaded",
		zap.String("source", tableSource(opts.TablePath)),
		zap.Int("paths", table.Len()),
	)

	nodes, treeDiags, err := tagtree.ReadFile(opts.Target)
	if err != nil {
		report.Diagnostics.Merge(*treeDiags)
		return report, err
	}

	if opts.Strict {
		escalated := treeDiags.Escalate(tagtree.LenientCodes...)
		report.Diagnostics.Merge(escalated)

		if err := escalated.Error(); err != nil {
			return report, fmt.Errorf("strict mode: %s: %w", opts.Target, err)
		}
	} else {
		report.Diagnostics.Merge(*treeDiags)
	}

	for _, d := range treeDiags.Warnings {
		logger.Debug("tag entry normalized", zap.String("code", d.Code), zap.String("detail", d.String()))
	}

	res := New(table, logger).Run(nodes)
	report.Stats = res.Stats
	report.Resolutions = res.Resolutions

	if opts.DryRun {
		logger.Info("dry run, tag file left unchanged", zap.String("target", opts.Target))
		return report, nil
	}

	if err := tagtree.WriteFile(opts.Target, res.Nodes); err != nil {
		return report, err
	}

	report.Written = true

	logger.Info("tag file rewritten",
		zap.String("target", opts.Target),
		zap.Int("found", res.Stats.Found),
		zap.Int("replaced", res.Stats.Replaced),
		zap.Int("removed", res.Stats.Removed),
	)

	return report, nil
}

func tableSource(path string) string {
	if path == "" {
		return "curated"
	}

	return path
}
