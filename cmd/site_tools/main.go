// Package main provides the entry point for the site_tools CLI.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:               "site_tools",
	Short:             "Batch utilities for a static HTML website tree",
	Long:              "site_tools checks HTML tag balance and manages the data-lightbox-src annotations used by the gallery lightbox.",
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

// exitError carries a process exit code. A nil err means the command already
// printed everything it had to say.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(reportError(os.Stderr, err))
	}
}

// reportError prints err and returns the exit code for it
func reportError(w io.Writer, err error) int {
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		if exitErr.err != nil {
			_, _ = fmt.Fprintln(w, exitErr.err)
		}
		return exitErr.code
	}
	_, _ = fmt.Fprintf(w, "Error: %v\n", err)
	return 1
}
