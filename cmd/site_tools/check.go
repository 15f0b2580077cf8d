package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jonathan/site-tools/internal/logger"
	"github.com/jonathan/site-tools/internal/observability"
	"github.com/jonathan/site-tools/internal/schemas"
	"github.com/jonathan/site-tools/internal/types"
	"github.com/jonathan/site-tools/internal/validation"
	"github.com/spf13/cobra"
)

const checkUsage = "Usage: site_tools check <file.html>"

var checkCmd = &cobra.Command{
	Use:   "check <file.html>",
	Short: "Check HTML tag balance and nesting",
	Long: "Scans one HTML document (ignoring comments, script and style blocks) and reports closing tags " +
		"that do not match, unexpected closing tags and tags left open. Exits 0 when balanced, 1 when " +
		"issues are found and 2 on usage errors or a missing file.",
	Args: checkArgs,
	RunE: runCheck,
}

var (
	checkJSONOut string
	checkContext int
)

func init() {
	checkCmd.Flags().StringVarP(&checkJSONOut, "json-out", "o", "", "Also write the report as JSON to this path (optional)")
	checkCmd.Flags().IntVar(&checkContext, "context", 0, "Number of issues shown with context snippets (default 6)")

	rootCmd.AddCommand(checkCmd)
}

func checkArgs(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return &exitError{code: 2, err: &validation.UsageError{Message: checkUsage}}
	}
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	contextIssues := settings.ContextIssues
	if cmd.Flags().Changed("context") {
		contextIssues = max(0, checkContext)
	}
	return checkDocument(cmd.OutOrStdout(), args[0], checkJSONOut, contextIssues)
}

// checkDocument runs the tag balance checker on path and prints the report to w
func checkDocument(w io.Writer, path, jsonOut string, contextIssues int) error {
	text, err := validation.ReadDocument(path)
	if err != nil {
		var notFound *validation.FileNotFoundError
		if errors.As(err, &notFound) {
			return &exitError{code: 2, err: err}
		}
		return fmt.Errorf("failed to check HTML: %w", err)
	}

	report := validation.NewTagReport(path, text)
	logger.Debug("checked document", "path", path, "issues", len(report.Issues))

	if jsonOut != "" {
		if err := writeTagReport(jsonOut, report); err != nil {
			return err
		}
	}

	observability.NewPrinter(w).PrintTagReport(report, text, contextIssues)

	if !report.Balanced {
		return &exitError{code: 1}
	}
	return nil
}

func writeTagReport(path string, report *types.TagReport) error {
	// Ensure output directory exists
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	jsonBytes, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tag report to JSON: %w", err)
	}

	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write tag report: %w", err)
	}

	// Validate output against schema (non-fatal)
	schemaPath := schemas.ResolveSchemaPath(schemas.TagReportSchema)
	if schemaPath == "" {
		logger.Debug("tag report schema not found, skipping validation")
		return nil
	}
	if err := schemas.ValidateBytes(schemaPath, jsonBytes); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			logger.Warn("generated tag report does not validate against schema", "error", err)
		} else {
			logger.Warn("could not validate tag report against schema", "error", err)
		}
	}
	return nil
}
