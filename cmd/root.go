// Package cmd provides the command-line interface for the zenwatch tool.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "zenwatch",
	Short: "zenwatch reports broadband outages from the Zen status page",
	Long: `zenwatch checks the Zen broadband status page for outages affecting a
phone-number prefix. Outages starting in the next couple of days, or ended
within the last couple, are reported; older history and far-future
maintenance is skipped.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Available to all commands; empty means the configured default
	rootCmd.PersistentFlags().StringP("prefix", "p", "", "phone-number prefix to check (e.g., '01413')")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(jiraCmd)
}
