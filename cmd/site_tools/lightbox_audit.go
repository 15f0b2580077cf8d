package main

import (
	"io"

	"github.com/jonathan/site-tools/internal/lightbox"
	"github.com/jonathan/site-tools/internal/observability"
	"github.com/spf13/cobra"
)

var lightboxAuditCmd = &cobra.Command{
	Use:   "lightbox-audit",
	Short: "Verify that every data-lightbox-src target exists",
	Long:  "Parses the HTML files under the site root and reports data-lightbox-src values that point at missing files. Exits 1 when any target is missing.",
	Args:  cobra.NoArgs,
	RunE:  runLightboxAudit,
}

func init() {
	rootCmd.AddCommand(lightboxAuditCmd)
}

func runLightboxAudit(cmd *cobra.Command, _ []string) error {
	return auditSite(cmd.OutOrStdout(), settings.Root, settings.IgnoreDirs)
}

func auditSite(w io.Writer, root string, ignore []string) error {
	scanned, findings, err := lightbox.Audit(root, ignore)
	if err != nil {
		return err
	}

	observability.NewPrinter(w).PrintAuditSummary(scanned, findings)
	for _, f := range findings {
		if f.Missing {
			return &exitError{code: 1}
		}
	}
	return nil
}
