// Package export implements the export command for writing pull request data to a CSV file.
package export

import (
	"log/slog"

	"github.com/alan/pr-report/cmd"
	"github.com/alan/pr-report/internal/commands"
	"github.com/alan/pr-report/internal/output"
	"github.com/spf13/cobra"
)

// ExportCommand encapsulates the export command with common functionality
type ExportCommand struct {
	commands.BaseCommand
	OutputDir string
}

// NewExportCmd creates and returns the export command
func NewExportCmd(globalConfigFile *string, loadConfig func(string) (*cmd.Config, error)) *cobra.Command {
	exportCmd := &ExportCommand{}

	command := &cobra.Command{
		Use:   "export",
		Short: "Export pull request data to a CSV file",
		Long: `Export fetches the repository's pull requests together with their commits,
comments, and requested reviewers, and writes them to {repo}_{owner}.csv,
overwriting any existing file of that name.

Set GITHUB_TOKEN to authenticate requests (optional for public repositories).`,
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			exportCmd.ConfigFile = globalConfigFile
			exportCmd.LoadConfig = loadConfig
			if err := exportCmd.Init(cobraCmd.Context()); err != nil {
				return err
			}

			return exportCmd.Run()
		},
	}

	command.Flags().StringVarP(&exportCmd.Owner, "owner", "o", "", "Repository owner (overrides the config file)")
	command.Flags().StringVarP(&exportCmd.Repo, "repo", "r", "", "Repository name (overrides the config file)")
	command.Flags().StringVarP(&exportCmd.OutputDir, "dir", "d", ".", "Directory to write the CSV file into")

	return command
}

// Run executes the export command
func (ec *ExportCommand) Run() error {
	prs, err := ec.Client.ListPullRequests(ec.Context)
	if err != nil {
		return err
	}

	slog.Info("Fetched pull requests", "owner", ec.Config.Owner, "repo", ec.Config.Repo, "count", len(prs))

	path, err := output.WriteCSVFile(ec.OutputDir, ec.Config.Owner, ec.Config.Repo, prs)
	if err != nil {
		return err
	}

	slog.Info("Wrote CSV export", "file", path, "rows", len(prs))
	return nil
}
