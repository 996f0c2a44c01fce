// Package report implements the report command for printing pull request data to stdout.
package report

import (
	"log/slog"
	"os"

	"github.com/alan/pr-report/cmd"
	"github.com/alan/pr-report/internal/commands"
	"github.com/alan/pr-report/internal/output"
	"github.com/spf13/cobra"
)

// ReportCommand encapsulates the report command with common functionality
type ReportCommand struct {
	commands.BaseCommand
}

// NewReportCmd creates and returns the report command
func NewReportCmd(globalConfigFile *string, loadConfig func(string) (*cmd.Config, error)) *cobra.Command {
	reportCmd := &ReportCommand{}

	command := &cobra.Command{
		Use:   "report",
		Short: "Print a human-readable report of pull request data",
		Long: `Report fetches the repository's pull requests together with their commits,
comments, and requested reviewers, and prints one labeled block per pull
request to standard output.

Set GITHUB_TOKEN to authenticate requests (optional for public repositories).`,
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			reportCmd.ConfigFile = globalConfigFile
			reportCmd.LoadConfig = loadConfig
			if err := reportCmd.Init(cobraCmd.Context()); err != nil {
				return err
			}

			return reportCmd.Run()
		},
	}

	command.Flags().StringVarP(&reportCmd.Owner, "owner", "o", "", "Repository owner (overrides the config file)")
	command.Flags().StringVarP(&reportCmd.Repo, "repo", "r", "", "Repository name (overrides the config file)")

	return command
}

// Run executes the report command
func (rc *ReportCommand) Run() error {
	prs, err := rc.Client.ListPullRequests(rc.Context)
	if err != nil {
		return err
	}

	slog.Info("Fetched pull requests", "owner", rc.Config.Owner, "repo", rc.Config.Repo, "count", len(prs))

	output.WriteReport(os.Stdout, prs)
	return nil
}
