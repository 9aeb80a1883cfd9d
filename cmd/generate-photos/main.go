// Package main provides the CLI entrypoint for generate-photos.
//
// generate-photos renders local placeholder photos without network
// access, using the file names download-photos writes, so real photos can
// replace them later.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"editor-assets/internal/cli"
	"editor-assets/internal/config"
	"editor-assets/internal/photo"
)

type options struct {
	out  string
	seed int64
}

func newRootCmd(session *cli.Session, plan photo.Plan) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "generate-photos",
		Short: "Render offline placeholder photos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			out := opts.out
			if out == "" {
				out = cfg.PhotoDir
			}

			written, err := photo.NewSynthesizer(session.Logger).Generate(cmd.Context(), cfg.Resolve(out), opts.seed, plan)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "generated:")

			for _, p := range written {
				fmt.Fprintln(w, " -", cfg.Rel(p))
			}

			return nil
		},
	}

	session.Attach(cmd)

	cmd.Flags().StringVar(&opts.out, "out", "", "Output directory (default: "+config.DefaultPhotoDir+", or $"+config.EnvPhotoDir+")")
	cmd.Flags().Int64Var(&opts.seed, "seed", photo.DefaultSynthSeed, "Random seed")

	return cmd
}

func main() {
	os.Exit(cli.Main(newRootCmd(&cli.Session{}, photo.DefaultPlan)))
}
