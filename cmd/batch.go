package main

import (
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/phone-discovery/internal/batch"
)

var (
	batchInput  string
	batchOutput string
	batchAPIURL string
	batchDelay  int
	batchLimit  int
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Replay a CSV or XLSX list of organizations through the service",
	Long: `Reads organizations (ngo_name, registered_district, ngo_email) from the
input file, calls POST /discover-phone on a running service for each one and
writes ngo_name,district,email,phone,confidence,source,status to the output.

Examples:
  phone-discovery batch --input ngos.csv --output ngo_phone_results.csv
  phone-discovery batch --input ngos.xlsx --output results.xlsx --delay 500 --limit 10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if cmd.Flags().Changed("api-url") {
			cfg.Batch.APIURL = batchAPIURL
		}
		if cmd.Flags().Changed("delay") {
			cfg.Batch.DelayMillis = batchDelay
		}
		if err := cfg.Validate("batch"); err != nil {
			return err
		}

		records, err := batch.ReadRecords(ctx, batchInput)
		if err != nil {
			return err
		}
		if batchLimit > 0 && batchLimit < len(records) {
			records = records[:batchLimit]
		}
		zap.L().Info("loaded organizations", zap.Int("count", len(records)), zap.String("input", batchInput))

		client := batch.NewClient(cfg.Batch.APIURL, batch.WithTimeout(cfg.Batch.Timeout()))
		rows, _, runErr := batch.NewRunner(client, cfg.Batch.Delay()).Run(ctx, records)

		// Write whatever completed, even when interrupted.
		if err := batch.WriteResults(batchOutput, rows); err != nil {
			return eris.Wrap(err, "batch: write results")
		}
		zap.L().Info("results saved", zap.String("output", batchOutput), zap.Int("rows", len(rows)))

		return runErr
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchInput, "input", "", "input CSV or XLSX file (required)")
	batchCmd.Flags().StringVar(&batchOutput, "output", "ngo_phone_results.csv", "output CSV or XLSX file")
	batchCmd.Flags().StringVar(&batchAPIURL, "api-url", "", "discovery service base URL (default from config)")
	batchCmd.Flags().IntVar(&batchDelay, "delay", 0, "milliseconds between calls (default from config)")
	batchCmd.Flags().IntVar(&batchLimit, "limit", 0, "max number of organizations to process (0 = all)")
	_ = batchCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(batchCmd)
}
