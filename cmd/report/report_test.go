package report

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alan/pr-report/cmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewReportCmd tests command creation and initialization
func TestNewReportCmd(t *testing.T) {
	loadConfig := func(filename string) (*cmd.Config, error) {
		return &cmd.Config{}, nil
	}

	configFile := "test-config.yaml"
	command := NewReportCmd(&configFile, loadConfig)

	assert.NotNil(t, command)
	assert.Equal(t, "report", command.Use)
	assert.Equal(t, "Print a human-readable report of pull request data", command.Short)
	assert.NotEmpty(t, command.Long)
	assert.NotNil(t, command.RunE)

	// Test flags
	assert.NotNil(t, command.Flags().Lookup("owner"), "should have owner flag")
	assert.NotNil(t, command.Flags().Lookup("repo"), "should have repo flag")

	// Config flag should not be present as it's global
	assert.Nil(t, command.Flags().Lookup("config"), "should not have local config flag (it's global)")
}

// TestReportCmd_RunE_ConfigLoadError tests error when config fails to load
func TestReportCmd_RunE_ConfigLoadError(t *testing.T) {
	loadConfig := func(path string) (*cmd.Config, error) {
		return nil, errors.New("config load error")
	}

	configFile := "test-config.yaml"
	command := NewReportCmd(&configFile, loadConfig)

	err := command.RunE(command, []string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config load error")
}

// TestReportCmd_RunE_FlagsOverrideConfig tests that owner/repo flags take
// precedence over the config file values
func TestReportCmd_RunE_FlagsOverrideConfig(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")

	var requestedPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedPath = r.URL.Path
		fmt.Fprint(w, `[]`)
	}))
	defer srv.Close()

	loadConfig := func(path string) (*cmd.Config, error) {
		return &cmd.Config{Owner: "configowner", Repo: "configrepo", BaseURL: srv.URL}, nil
	}

	configFile := "test-config.yaml"
	command := NewReportCmd(&configFile, loadConfig)
	require.NoError(t, command.Flags().Set("owner", "flagowner"))
	require.NoError(t, command.Flags().Set("repo", "flagrepo"))

	err := command.RunE(command, []string{})
	require.NoError(t, err)
	assert.Equal(t, "/repos/flagowner/flagrepo/pulls", requestedPath)
}

// TestReportCmd_RunE_FetchFailure tests that an API failure aborts the report
func TestReportCmd_RunE_FetchFailure(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	loadConfig := func(path string) (*cmd.Config, error) {
		return &cmd.Config{Owner: "startstopstep", Repo: "test-repo", BaseURL: srv.URL}, nil
	}

	configFile := "test-config.yaml"
	command := NewReportCmd(&configFile, loadConfig)

	err := command.RunE(command, []string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 404")
}
