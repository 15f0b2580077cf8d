// Package observability provides formatted report output for the site-tools CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/site-tools/internal/types"
	"github.com/jonathan/site-tools/internal/validation"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// DefaultContextIssues is how many issues get a context snippet
	DefaultContextIssues = 6
)

// Printer handles formatted report output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len([]rune(line)) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintTagReport writes the tag balance report. source is the original,
// unprocessed document text used for context snippets; at most
// contextIssues issues get a snippet.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintTagReport(report *types.TagReport, source string, contextIssues int) {
	if report == nil {
		return
	}
	if len(report.Issues) == 0 {
		fmt.Fprintln(p.out, "No mismatched tags found.")
		return
	}

	fmt.Fprintln(p.out, "HTML tag issues found:")
	for _, issue := range report.Issues {
		fmt.Fprintf(p.out, "Line %d: %s\n", issue.Line, issue.Message)
	}

	fmt.Fprintf(p.out, "\nContext snippets for first %d issues:\n", contextIssues)
	lines := validation.SplitLines(source)
	count := min(len(report.Issues), contextIssues)
	for i := 0; i < count; i++ {
		issue := report.Issues[i]
		start, end := validation.ContextWindow(len(lines), issue.Line)
		fmt.Fprintf(p.out, "--- Issue %d: %s (context lines %d-%d) ---\n", i+1, issue.Message, start+1, end)
		for li := start; li < end; li++ {
			prefix := " "
			if li+1 == issue.Line {
				prefix = ">"
			}
			fmt.Fprintf(p.out, "%s %4d: %s\n", prefix, li+1, lines[li])
		}
		fmt.Fprintln(p.out)
	}
}

// PrintLightboxFile writes the dry-run detail for one processed file
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintLightboxFile(change types.FileChange) {
	fmt.Fprintf(p.out, "[DRY] %s: images considered= %d modified= %t\n", change.Path, len(change.Images), change.Modified)
	for _, img := range change.Images {
		largest := img.Largest
		if largest == "" {
			largest = "(none)"
		}
		fmt.Fprintf(p.out, "  - src= %s candidate= %s largest= %s\n", img.Src, img.Candidate, largest)
	}
}

// PrintLightboxSummary writes the scan totals and the list of modified files
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintLightboxSummary(dryRun bool, scanned int, changes []types.FileChange) {
	mode := "Run:"
	if dryRun {
		mode = "Dry run:"
	}
	fmt.Fprintf(p.out, "%s files scanned= %d\n", mode, scanned)
	fmt.Fprintln(p.out, "Modified files:")
	for _, c := range changes {
		if c.Modified {
			fmt.Fprintf(p.out, " -  %s\n", c.Path)
		}
	}
}

// PrintRevertSummary writes the files whose lightbox attributes were removed
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintRevertSummary(changed []string) {
	fmt.Fprintln(p.out, "Reverted data-lightbox-src in files:")
	for _, c := range changed {
		fmt.Fprintf(p.out, " -  %s\n", c)
	}
	if len(changed) == 0 {
		fmt.Fprintln(p.out, "(none)")
	}
}

// PrintAuditSummary writes a box summarizing checked references and lists the missing ones
func (p *Printer) PrintAuditSummary(scanned int, findings []types.AuditFinding) {
	var missing []types.AuditFinding
	for _, f := range findings {
		if f.Missing {
			missing = append(missing, f)
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Files scanned:     %d\n", scanned))
	sb.WriteString(fmt.Sprintf("References:        %d\n", len(findings)))
	sb.WriteString(fmt.Sprintf("Missing targets:   %d", len(missing)))
	for _, f := range missing {
		sb.WriteString(fmt.Sprintf("\n  • %s: %s", f.File, f.LightboxSrc))
	}

	p.printBox("LIGHTBOX AUDIT", sb.String())
}
