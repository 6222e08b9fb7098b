package main

import (
	"context"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"jobsweep/config"
	"jobsweep/pipeline"
)

var runFlags struct {
	configPath string
	titles     string
	keywords   string
	sortField  string
	sortOrder  string
	sender     string
	password   string
	recipient  string
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the extract-load-report-notify pipeline once",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		applyOverrides(cfg)
		if err := cfg.Validate(); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return pipeline.New(cfg).Run(ctx)
	},
}

func init() {
	runCmd.Flags().StringVar(&runFlags.configPath, "config", "", "Path to a jobsweep.toml config file")
	runCmd.Flags().StringVarP(&runFlags.titles, "titles", "t", "", "Comma-separated position titles to search for")
	runCmd.Flags().StringVarP(&runFlags.keywords, "keywords", "k", "", "Comma-separated keywords to search for")
	runCmd.Flags().StringVar(&runFlags.sortField, "sort-field", "", "Field to sort results by")
	runCmd.Flags().StringVar(&runFlags.sortOrder, "sort-order", "", "Order to sort results by")
	runCmd.Flags().StringVar(&runFlags.sender, "sender", "", "Sender email address")
	runCmd.Flags().StringVar(&runFlags.password, "password", "", "Sender email password")
	runCmd.Flags().StringVar(&runFlags.recipient, "recipient", "", "Recipient email address")
}

func loadConfig() (*config.Config, error) {
	if runFlags.configPath != "" {
		return config.LoadFromFile(runFlags.configPath)
	}
	return config.Load()
}

// applyOverrides lays CLI flag values over the loaded configuration
func applyOverrides(cfg *config.Config) {
	if runFlags.titles != "" {
		cfg.Search.Titles = splitList(runFlags.titles)
	}
	if runFlags.keywords != "" {
		cfg.Search.Keywords = splitList(runFlags.keywords)
	}
	if runFlags.sortField != "" {
		cfg.API.SortField = runFlags.sortField
	}
	if runFlags.sortOrder != "" {
		cfg.API.SortOrder = runFlags.sortOrder
	}
	if runFlags.sender != "" {
		cfg.SMTP.Sender = runFlags.sender
	}
	if runFlags.password != "" {
		cfg.SMTP.Password = runFlags.password
	}
	if runFlags.recipient != "" {
		cfg.SMTP.Recipient = runFlags.recipient
	}
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
