package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dt-pm-tools/dor-analyzer/internal/analysis"
	"github.com/dt-pm-tools/dor-analyzer/internal/config"
	"github.com/dt-pm-tools/dor-analyzer/internal/genai"
	"github.com/dt-pm-tools/dor-analyzer/internal/jira"
	"github.com/dt-pm-tools/dor-analyzer/internal/report"
	"github.com/dt-pm-tools/dor-analyzer/internal/ticket"
	"github.com/spf13/cobra"
)

var (
	inputFile    string
	outputDir    string
	analyzeDepth string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <issue-key>",
	Short: "Analyze a JIRA issue against the Definition of Ready",
	Long: `Fetches a JIRA issue by key (or reads a saved issue JSON with --input),
runs the readiness analysis, and renders a markdown report. Writes to stdout
by default, or to a file with --output-dir.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			issue      *jira.Issue
			fieldNames map[string]string
		)

		switch {
		case inputFile != "":
			// No JIRA access needed, but the Cohere key may still be
			// configured for deep analysis.
			appConfig, _ = config.Load(cfgFile)

			data, err := os.ReadFile(inputFile)
			if err != nil {
				return fmt.Errorf("reading input file: %w", err)
			}
			issue = &jira.Issue{}
			if err := json.Unmarshal(data, issue); err != nil {
				return fmt.Errorf("parsing issue JSON: %w", err)
			}

		case len(args) == 1:
			if err := loadConfig(); err != nil {
				return err
			}
			issueKey := strings.ToUpper(args[0])
			client := jira.NewClient(appConfig)

			var err error
			issue, err = client.GetIssue(issueKey)
			if err != nil {
				return fmt.Errorf("fetching issue %s: %w", issueKey, err)
			}
			fieldNames, err = client.GetFieldNames()
			if err != nil {
				// Field-name discovery is a nicety; custom fields keep
				// their raw IDs without it.
				fmt.Fprintf(os.Stderr, "Warning: could not resolve field names: %v\n", err)
			}

		default:
			return fmt.Errorf("an issue key or --input file is required")
		}

		rec := ticket.FromIssue(issue, fieldNames)

		opts := analysis.Options{Depth: analyzeDepth}
		if appConfig.CohereKey != "" {
			opts.Generator = genai.NewCohereGenerator(appConfig.CohereKey)
		}

		res, err := analysis.Analyze(context.Background(), rec, opts)
		if err != nil {
			return fmt.Errorf("analyzing %s: %w", rec.Key, err)
		}

		md := report.Render(rec, res)

		if outputDir != "" {
			if err := os.MkdirAll(outputDir, 0755); err != nil {
				return fmt.Errorf("creating output directory: %w", err)
			}
			filename := filepath.Join(outputDir, rec.Key+".md")
			if err := os.WriteFile(filename, []byte(md), 0644); err != nil {
				return fmt.Errorf("writing file: %w", err)
			}
			fmt.Fprintf(os.Stderr, "Written to %s\n", filename)
		} else {
			fmt.Print(md)
		}

		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&inputFile, "input", "", "analyze a saved issue JSON file instead of fetching")
	analyzeCmd.Flags().StringVar(&outputDir, "output-dir", "", "write output to <dir>/<KEY>.md instead of stdout")
	analyzeCmd.Flags().StringVar(&analyzeDepth, "depth", analysis.DepthQuick, "analysis depth: quick or deep")
	rootCmd.AddCommand(analyzeCmd)
}
