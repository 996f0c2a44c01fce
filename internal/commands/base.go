// Package commands provides shared initialization for pr-report subcommands.
package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/alan/pr-report/cmd"
	"github.com/alan/pr-report/internal/github"
)

// BaseCommand provides common fields and initialization for all commands
type BaseCommand struct {
	ConfigFile *string
	LoadConfig func(string) (*cmd.Config, error)
	Owner      string // --owner flag, overrides the config file
	Repo       string // --repo flag, overrides the config file
	Client     *github.Client
	Context    context.Context
	Config     *cmd.Config
}

// Init resolves the repository identity from flags and the config file and
// builds the GitHub client. The config file is optional when both --owner
// and --repo are given.
func (bc *BaseCommand) Init(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	config, err := bc.LoadConfig(*bc.ConfigFile)
	if err != nil {
		if bc.Owner == "" || bc.Repo == "" {
			return err
		}
		config = &cmd.Config{}
	}

	if bc.Owner != "" {
		config.Owner = bc.Owner
	}
	if bc.Repo != "" {
		config.Repo = bc.Repo
	}

	if config.Owner == "" {
		return fmt.Errorf("repository owner is required (use --owner flag or the config file)")
	}
	if config.Repo == "" {
		return fmt.Errorf("repository name is required (use --repo flag or the config file)")
	}

	bc.Config = config
	bc.Context = ctx

	// Token is optional: unauthenticated reads work for public repositories
	var opts []github.Option
	if config.BaseURL != "" {
		opts = append(opts, github.WithBaseURL(config.BaseURL))
	}
	bc.Client = github.NewClient(ctx, config.Owner, config.Repo, os.Getenv("GITHUB_TOKEN"), opts...)

	return nil
}
