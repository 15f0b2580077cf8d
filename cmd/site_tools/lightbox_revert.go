package main

import (
	"io"

	"github.com/jonathan/site-tools/internal/lightbox"
	"github.com/jonathan/site-tools/internal/observability"
	"github.com/spf13/cobra"
)

var lightboxRevertCmd = &cobra.Command{
	Use:   "lightbox-revert",
	Short: "Remove data-lightbox-src attributes below one directory",
	Long:  "Strips every data-lightbox-src attribute from the HTML files under <root>/<dir> (default dir: 0).",
	Args:  cobra.NoArgs,
	RunE:  runLightboxRevert,
}

var lightboxRevertDir string

func init() {
	lightboxRevertCmd.Flags().StringVar(&lightboxRevertDir, "dir", "", "Directory below the site root to revert (default \"0\")")

	rootCmd.AddCommand(lightboxRevertCmd)
}

func runLightboxRevert(cmd *cobra.Command, _ []string) error {
	dir := settings.RevertDir
	if cmd.Flags().Changed("dir") {
		dir = lightboxRevertDir
	}
	return revertSite(cmd.OutOrStdout(), settings.Root, dir)
}

func revertSite(w io.Writer, root, dir string) error {
	changed, err := lightbox.Revert(root, dir)
	if err != nil {
		return err
	}
	observability.NewPrinter(w).PrintRevertSummary(changed)
	return nil
}
