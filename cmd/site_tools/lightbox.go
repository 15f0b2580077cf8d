package main

import (
	"io"

	"github.com/jonathan/site-tools/internal/lightbox"
	"github.com/jonathan/site-tools/internal/observability"
	"github.com/spf13/cobra"
)

var lightboxCmd = &cobra.Command{
	Use:   "lightbox",
	Short: "Annotate <img> tags with their largest resolution variant",
	Long: "Scans every HTML file under the site root and adds data-lightbox-src to <img> tags, pointing " +
		"at the largest variant of the image found in the same directory (e.g. photo-1200.jpg for photo-480.jpg).",
	Args: cobra.NoArgs,
	RunE: runLightbox,
}

var lightboxDryRun bool

func init() {
	lightboxCmd.Flags().BoolVar(&lightboxDryRun, "dry-run", false, "Report what would change without writing files")

	rootCmd.AddCommand(lightboxCmd)
}

func runLightbox(cmd *cobra.Command, _ []string) error {
	return annotateSite(cmd.OutOrStdout(), settings.Root, settings.IgnoreDirs, lightboxDryRun)
}

func annotateSite(w io.Writer, root string, ignore []string, dryRun bool) error {
	annotator, err := lightbox.NewAnnotator(root, dryRun)
	if err != nil {
		return err
	}

	scanned, changes, err := annotator.Run(ignore)
	if err != nil {
		return err
	}

	p := observability.NewPrinter(w)
	if dryRun {
		for _, c := range changes {
			p.PrintLightboxFile(c)
		}
	}
	p.PrintLightboxSummary(dryRun, scanned, changes)
	return nil
}
