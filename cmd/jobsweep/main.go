package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jobsweep/logger"
)

var jsonLogs bool

var rootCmd = &cobra.Command{
	Use:   "jobsweep",
	Short: "jobsweep - USAJobs batch analysis pipeline",
	Long: `jobsweep - scheduled batch analysis of USAJobs postings.

Each run extracts job postings from the USAJobs Search API, deduplicates and
upserts them into a local SQLite store, exports three fixed analysis reports
as CSV files, and emails the reports to the configured recipient.

Examples:
  jobsweep run                                   # run with configured defaults
  jobsweep run --titles "Data Analyst,Actuary"   # override search titles
  jobsweep run --keywords "statistics"           # override search keywords`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logger.Initialize(jsonLogs); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Emit JSON log output")
	rootCmd.AddCommand(runCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Logger.Errorw("Run failed", "error", err)
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}
