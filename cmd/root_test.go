package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/phone-discovery/internal/config"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, name := range []string{"serve", "discover", "batch"} {
		assert.True(t, names[name], "expected subcommand %q not found", name)
	}
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "phone-discovery", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestRootCommand_LogFlags(t *testing.T) {
	for _, name := range []string{"log-level", "log-file"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), "root command should have --%s flag", name)
	}
}

func TestApplyLogFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "x"}
	cmd.Flags().AddFlagSet(rootCmd.PersistentFlags())
	t.Cleanup(func() {
		logFile = ""
		cmd.Flags().Lookup("log-file").Changed = false
	})
	require.NoError(t, cmd.Flags().Parse([]string{"--log-file", "api.log"}))

	lc := config.LogConfig{Level: "info", Format: "json"}
	applyLogFlags(cmd, &lc)

	assert.Equal(t, "api.log", lc.File)
	assert.Equal(t, "info", lc.Level, "unset flags keep the configured value")
}

func TestServeCommand_Flags(t *testing.T) {
	flag := serveCmd.Flags().Lookup("port")
	require.NotNil(t, flag, "serve command should have --port flag")
	assert.Equal(t, "0", flag.DefValue)
}

func TestDiscoverCommand_Flags(t *testing.T) {
	for _, name := range []string{"name", "email", "location"} {
		assert.NotNil(t, discoverCmd.Flags().Lookup(name), "discover command should have --%s flag", name)
	}
	name := discoverCmd.Flags().Lookup("name")
	assert.Equal(t, []string{"true"}, name.Annotations[cobra.BashCompOneRequiredFlag])
}

func TestBatchCommand_Flags(t *testing.T) {
	for _, name := range []string{"input", "output", "api-url", "delay", "limit"} {
		assert.NotNil(t, batchCmd.Flags().Lookup(name), "batch command should have --%s flag", name)
	}
	assert.Equal(t, "ngo_phone_results.csv", batchCmd.Flags().Lookup("output").DefValue)
	assert.Equal(t, "0", batchCmd.Flags().Lookup("limit").DefValue)
}

func TestNewDiscoveryService(t *testing.T) {
	c := &config.Config{}
	c.Crawl.TimeoutSecs = 1
	c.Crawl.UserAgent = "test-agent"
	c.Search.BaseURL = "http://127.0.0.1:0/html/"
	c.Search.TimeoutSecs = 1
	c.Search.MaxResults = 3
	c.Search.RateLimit = 1

	assert.NotNil(t, newDiscoveryService(c))
}
