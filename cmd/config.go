// Package cmd defines the core configuration structure shared by all pr-report commands.
package cmd

// DefaultBaseURL is the GitHub API endpoint used when no override is configured.
const DefaultBaseURL = "https://api.github.com"

// Config represents the structure of pr-report.yaml
type Config struct {
	Owner   string `yaml:"owner"`
	Repo    string `yaml:"repo"`
	BaseURL string `yaml:"base_url,omitempty"` // API endpoint override, defaults to api.github.com
}
