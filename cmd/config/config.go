// Package config implements the config command for initializing and updating pr-report configuration.
package config

import (
	"fmt"
	"log/slog"

	"github.com/alan/pr-report/cmd"
	"github.com/spf13/cobra"
)

// NewConfigCmd creates and returns the config command
func NewConfigCmd(globalConfigFile *string, loadConfig func(string) (*cmd.Config, error), saveConfig func(string, *cmd.Config) error) *cobra.Command {
	var (
		owner   string
		repo    string
		baseURL string
	)

	cobraCmd := &cobra.Command{
		Use:   "config",
		Short: "Initialize a new pr-report.yaml configuration file",
		Long: `Config creates or updates a pr-report.yaml file with the repository
owner, repository name, and optional API endpoint override.

Values given as flags replace existing values in the file; omitted flags
leave existing values untouched.`,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runConfig(*globalConfigFile, owner, repo, baseURL, loadConfig, saveConfig)
		},
	}

	cobraCmd.Flags().StringVarP(&owner, "owner", "o", "", "GitHub organization or username")
	cobraCmd.Flags().StringVarP(&repo, "repo", "r", "", "GitHub repository name")
	cobraCmd.Flags().StringVarP(&baseURL, "base-url", "u", "", "API endpoint override (for GitHub Enterprise)")

	return cobraCmd
}

// runConfig merges flag values over the existing configuration and saves it
func runConfig(configFile, owner, repo, baseURL string, loadConfig func(string) (*cmd.Config, error), saveConfig func(string, *cmd.Config) error) error {
	config := loadOrCreateConfig(configFile, loadConfig)

	if owner != "" {
		config.Owner = owner
	}
	if repo != "" {
		config.Repo = repo
	}
	if baseURL != "" {
		config.BaseURL = baseURL
	}

	if config.Owner == "" {
		return fmt.Errorf("repository owner is required (use --owner flag)")
	}
	if config.Repo == "" {
		return fmt.Errorf("repository name is required (use --repo flag)")
	}

	if err := saveConfig(configFile, config); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	slog.Info("Configuration saved", "file", configFile, "owner", config.Owner, "repo", config.Repo)
	return nil
}

// loadOrCreateConfig loads the existing config or starts a fresh one
func loadOrCreateConfig(configFile string, loadConfig func(string) (*cmd.Config, error)) *cmd.Config {
	config, err := loadConfig(configFile)
	if err != nil {
		return &cmd.Config{}
	}
	return config
}
