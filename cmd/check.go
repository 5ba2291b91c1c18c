package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/danielolaszy/zenwatch/internal/config"
	"github.com/danielolaszy/zenwatch/internal/logging"
	"github.com/danielolaszy/zenwatch/internal/report"
	"github.com/danielolaszy/zenwatch/internal/zen"
	"github.com/danielolaszy/zenwatch/pkg/models"
)

// checkCmd fetches the status page once and prints each relevant outage
// to stdout.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the status page and print relevant outages",
	Long: `Fetch the Zen broadband status page for a phone-number prefix and print
a notification for every outage of current interest.

Each outage gets a status line naming its bucket (current, planned or past
outage) and a detail line with the start/end times, the outage reference and
a link to the maintenance details page.

Example:
  zenwatch check --prefix 01413`,
	RunE: func(cmd *cobra.Command, args []string) error {
		outages, cfg, err := fetchOutages(cmd)
		if err != nil {
			return err
		}

		printer := report.NewPrinter(os.Stdout, cfg.Zen.BaseURL)
		return printer.Print(outages)
	},
}

// fetchOutages runs the shared fetch-and-parse pipeline for a command:
// resolve the prefix, get the page, extract the bucketed outages.
func fetchOutages(cmd *cobra.Command) (models.OutageReport, *config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return models.OutageReport{}, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	prefix, err := cmd.Flags().GetString("prefix")
	if err != nil {
		return models.OutageReport{}, nil, err
	}
	if prefix == "" {
		prefix = cfg.Zen.Prefix
	}

	logging.Info("checking status page", "prefix", prefix)

	client := zen.NewClient(cfg.Zen)
	page, err := client.FetchOutagesPage(context.Background(), prefix)
	if err != nil {
		return models.OutageReport{}, nil, err
	}

	outages, err := zen.ParsePage(page)
	if err != nil {
		return models.OutageReport{}, nil, err
	}

	logging.Info("found relevant outages",
		"current", len(outages.Current),
		"planned", len(outages.Planned),
		"past", len(outages.Past))

	return outages, cfg, nil
}
