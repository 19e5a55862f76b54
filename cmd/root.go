package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/phone-discovery/internal/config"
)

var (
	cfg *config.Config

	logLevel string
	logFile  string
)

var rootCmd = &cobra.Command{
	Use:   "phone-discovery",
	Short: "Find public contact phone numbers for NGOs",
	Long:  "Locates an organization's website from its email domain or a web search, scans its home, contact and about pages for Indian phone numbers, and scores the result.",
	// Errors from RunE are already descriptive; skip the usage dump.
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(*cobra.Command, []string) {
		_ = zap.L().Sync()
	},
}

// setup loads config, applies the logging flags and installs the global
// logger before any subcommand runs.
func setup(cmd *cobra.Command, _ []string) error {
	c, err := config.Load()
	if err != nil {
		return eris.Wrap(err, "root: load config")
	}
	applyLogFlags(cmd, &c.Log)
	cfg = c

	if err := config.InitLogger(cfg.Log); err != nil {
		return eris.Wrap(err, "root: init logger")
	}
	return nil
}

func applyLogFlags(cmd *cobra.Command, lc *config.LogConfig) {
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		lc.Level = logLevel
	}
	if flags.Changed("log-file") {
		lc.File = logFile
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "also write logs to this file, e.g. api.log")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
