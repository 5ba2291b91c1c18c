package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielolaszy/zenwatch/internal/jira"
	"github.com/danielolaszy/zenwatch/internal/logging"
)

// jiraCmd runs the same fetch-and-parse pipeline as check, but files one
// JIRA ticket per relevant outage instead of printing to stdout.
var jiraCmd = &cobra.Command{
	Use:   "jira",
	Short: "File JIRA tickets for relevant outages",
	Long: `Fetch the Zen broadband status page for a phone-number prefix and create
one JIRA ticket per outage of current interest.

Tickets are created as Tasks in the given project. The summary carries the
outage bucket and reference; the description carries the timestamps, the
diagnostic codes and a link to the maintenance details page.

Requires JIRA_URL, JIRA_USERNAME and JIRA_TOKEN to be set.

Example:
  zenwatch jira --prefix 01413 --project OPS`,
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := cmd.Flags().GetString("project")
		if err != nil {
			return err
		}
		if project == "" {
			return fmt.Errorf("project flag is required")
		}

		outages, cfg, err := fetchOutages(cmd)
		if err != nil {
			return err
		}

		if outages.Total() == 0 {
			logging.Info("no relevant outages, nothing to file")
			return nil
		}

		jiraClient, err := jira.NewClient(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize jira client: %w", err)
		}

		keys, err := jiraClient.ReportOutages(project, outages)
		if err != nil {
			return err
		}

		logging.Info("filed outage tickets", "count", len(keys), "project", project)
		return nil
	},
}

func init() {
	jiraCmd.Flags().StringP("project", "j", "", "JIRA project key to file tickets in (e.g., 'OPS')")
}
