package main

import (
	"github.com/jonathan/site-tools/internal/config"
	"github.com/jonathan/site-tools/internal/lightbox"
	"github.com/jonathan/site-tools/internal/logger"
	"github.com/jonathan/site-tools/internal/observability"
	"github.com/spf13/cobra"
)

var (
	configPath string
	siteRoot   string
	verbose    bool

	// settings is resolved once per invocation in loadSettings
	settings config.Config
)

var defaultSettings = config.Config{
	Root:          ".",
	IgnoreDirs:    lightbox.DefaultIgnoreDirs,
	RevertDir:     lightbox.DefaultRevertDir,
	ContextIssues: observability.DefaultContextIssues,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file (optional)")
	rootCmd.PersistentFlags().StringVar(&siteRoot, "root", "", "Site root directory (default: current directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print debug logs to stderr")
}

// loadSettings layers config file, environment and flags, in that order
func loadSettings(cmd *cobra.Command, _ []string) error {
	cfg := &config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	cfg.ApplyEnv()

	if cmd.Flags().Changed("root") {
		cfg.Root = siteRoot
	}
	if verbose {
		cfg.Verbose = true
	}

	merged := cfg.MergeWithDefaults(defaultSettings)
	if err := merged.Validate(); err != nil {
		return err
	}

	settings = merged
	logger.SetVerbose(settings.Verbose)
	logger.Debug("settings loaded", "root", settings.Root, "ignore", settings.IgnoreDirs, "revert_dir", settings.RevertDir)
	return nil
}
