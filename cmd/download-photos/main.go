// Package main provides the CLI entrypoint for download-photos.
//
// download-photos fetches the editor's sample photos from picsum.photos.
// It needs public internet access; generate-photos writes offline
// placeholders under the same names.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"editor-assets/internal/cli"
	"editor-assets/internal/config"
	"editor-assets/internal/photo"
)

type options struct {
	out   string
	seed  string
	sleep time.Duration
}

func newRootCmd(session *cli.Session, downloader func() *photo.Downloader) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "download-photos",
		Short: "Download seeded sample photos from picsum.photos",
		Long: `Downloads opt (512x512), stem (1280x720) and tall (720x1280) photos as
<category>-<index>.jpg. The same --seed always fetches the same photos;
without it every run uses a fresh seed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			seed, err := photo.ParseSeed(opts.seed, time.Now)
			if err != nil {
				return err
			}

			out := opts.out
			if out == "" {
				out = cfg.PhotoDir
			}

			d := downloader()
			d.Logger = session.Logger
			d.Delay = opts.sleep

			written, err := d.Download(cmd.Context(), cfg.Resolve(out), seed, photo.DefaultPlan)
			if err != nil {
				return fmt.Errorf("download stopped after %d files: %w", len(written), err)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "download seed=%d\n", seed)
			fmt.Fprintln(w, "written:")

			for _, p := range written {
				fmt.Fprintln(w, " -", cfg.Rel(p))
			}

			return nil
		},
	}

	session.Attach(cmd)

	cmd.Flags().StringVar(&opts.out, "out", "", "Output directory (default: "+config.DefaultPhotoDir+", or $"+config.EnvPhotoDir+")")
	cmd.Flags().StringVar(&opts.seed, "seed", "", "Seed for stable photos (default: current time)")
	cmd.Flags().DurationVar(&opts.sleep, "sleep", photo.DefaultDelay, "Pause between downloads")

	return cmd
}

func main() {
	session := &cli.Session{}

	os.Exit(cli.Main(newRootCmd(session, func() *photo.Downloader {
		return photo.NewDownloader(session.Logger)
	})))
}
