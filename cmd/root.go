package cmd

import (
	"fmt"
	"os"

	"github.com/dt-pm-tools/dor-analyzer/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	appConfig config.Config
	version   = "0.1.0"
)

var rootCmd = &cobra.Command{
	Use:     "dor",
	Short:   "Definition-of-Ready analyzer for JIRA tickets",
	Long:    `Analyzes JIRA tickets against a Definition of Ready: extracts logical fields from any content encoding, collects design links, detects contradictory acceptance criteria, and renders a readiness report.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.dor-analyzer.yaml)")
}

// loadConfig loads and validates configuration. Commands that need JIRA access call this.
func loadConfig() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w\nRun 'dor config' to set up credentials", err)
	}
	appConfig = cfg
	return nil
}
