package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/alan/pr-report/cmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseCommand_Init(t *testing.T) {
	configFile := "pr-report.yaml"
	bc := &BaseCommand{
		ConfigFile: &configFile,
		LoadConfig: func(string) (*cmd.Config, error) {
			return &cmd.Config{Owner: "startstopstep", Repo: "test-repo"}, nil
		},
	}

	err := bc.Init(context.Background())
	require.NoError(t, err)

	require.NotNil(t, bc.Config)
	assert.Equal(t, "startstopstep", bc.Config.Owner)
	assert.Equal(t, "test-repo", bc.Config.Repo)
	require.NotNil(t, bc.Client)
	assert.Equal(t, "startstopstep", bc.Client.Owner())
	assert.Equal(t, "test-repo", bc.Client.Repo())
	assert.NotNil(t, bc.Context)
}

func TestBaseCommand_Init_FlagsOverrideConfig(t *testing.T) {
	configFile := "pr-report.yaml"
	bc := &BaseCommand{
		ConfigFile: &configFile,
		LoadConfig: func(string) (*cmd.Config, error) {
			return &cmd.Config{Owner: "configowner", Repo: "configrepo"}, nil
		},
		Owner: "flagowner",
		Repo:  "flagrepo",
	}

	err := bc.Init(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "flagowner", bc.Config.Owner)
	assert.Equal(t, "flagrepo", bc.Config.Repo)
}

func TestBaseCommand_Init_FlagsWithoutConfigFile(t *testing.T) {
	configFile := "missing.yaml"
	bc := &BaseCommand{
		ConfigFile: &configFile,
		LoadConfig: func(string) (*cmd.Config, error) {
			return nil, errors.New("config load error")
		},
		Owner: "flagowner",
		Repo:  "flagrepo",
	}

	err := bc.Init(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "flagowner", bc.Config.Owner)
	assert.Equal(t, "flagrepo", bc.Config.Repo)
}

func TestBaseCommand_Init_ConfigLoadError(t *testing.T) {
	configFile := "missing.yaml"
	bc := &BaseCommand{
		ConfigFile: &configFile,
		LoadConfig: func(string) (*cmd.Config, error) {
			return nil, errors.New("config load error")
		},
	}

	err := bc.Init(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config load error")
}

func TestBaseCommand_Init_MissingOwner(t *testing.T) {
	configFile := "pr-report.yaml"
	bc := &BaseCommand{
		ConfigFile: &configFile,
		LoadConfig: func(string) (*cmd.Config, error) {
			return &cmd.Config{Repo: "test-repo"}, nil
		},
	}

	err := bc.Init(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "repository owner is required")
}

func TestBaseCommand_Init_MissingRepo(t *testing.T) {
	configFile := "pr-report.yaml"
	bc := &BaseCommand{
		ConfigFile: &configFile,
		LoadConfig: func(string) (*cmd.Config, error) {
			return &cmd.Config{Owner: "startstopstep"}, nil
		},
	}

	err := bc.Init(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "repository name is required")
}
