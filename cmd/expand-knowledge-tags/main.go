// Package main provides the CLI entrypoint for expand-knowledge-tags.
//
// expand-knowledge-tags rewrites placeholder rows such as
// "10个子主题，例如：..." in the knowledge tag JSON file into real,
// selectable tag nodes:
//   - Curated children from the replacement table, keyed by title path
//   - Otherwise, one leaf per example listed in the placeholder itself
//   - Otherwise, the placeholder is removed
//
// The file is overwritten in place unless --dry-run is given.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"editor-assets/internal/cli"
	"editor-assets/internal/config"
	"editor-assets/internal/expand"
	"editor-assets/internal/tagtree"
)

// exitMalformedRoot is the exit status when the file is not a JSON array.
const exitMalformedRoot = 2

type options struct {
	table       string
	strict      bool
	dryRun      bool
	diagnostics bool
}

func newRootCmd(session *cli.Session) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "expand-knowledge-tags [file]",
		Short: "Expand placeholder rows in the knowledge tag tree",
		Long: `Reads the knowledge tag JSON file, replaces placeholder rows with curated
or example-derived children, and writes the file back with 2-space indentation.

Without an argument the file is ` + config.DefaultTagsFile + ` under the repository
root ($EDITOR_ROOT, or the working directory).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExpand(cmd, session, opts, args)
		},
	}

	session.Attach(cmd)

	cmd.Flags().StringVar(&opts.table, "table", "", "Replacement table YAML (default: built-in curated table, or $"+config.EnvTable+")")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Fail instead of skipping malformed tree entries")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Report without writing the file")
	cmd.Flags().BoolVar(&opts.diagnostics, "diagnostics", false, "Print every diagnostic to stderr")

	return cmd
}

func runExpand(cmd *cobra.Command, session *cli.Session, opts *options, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	target := cfg.Resolve(cfg.TagsFile)
	if len(args) == 1 {
		target = args[0]
	}

	tablePath := cfg.Resolve(cfg.TablePath)
	if opts.table != "" {
		tablePath = opts.table
	}

	report, err := expand.RunFile(expand.FileOptions{
		Target:    target,
		TablePath: tablePath,
		Strict:    opts.strict,
		DryRun:    opts.dryRun,
	}, session.Logger)

	if opts.diagnostics && report != nil {
		for _, d := range report.Diagnostics.All() {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", d.Severity, d)
		}
	}

	if err != nil {
		if errors.Is(err, tagtree.ErrRootNotArray) {
			return cli.WithExitCode(err, exitMalformedRoot)
		}

		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), report.Stats.String())

	return nil
}

func main() {
	os.Exit(cli.Main(newRootCmd(&cli.Session{})))
}
