package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/phone-discovery/internal/discovery"
	"github.com/sells-group/phone-discovery/internal/model"
)

var (
	discoverName     string
	discoverEmail    string
	discoverLocation string
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Discover the phone number of a single organization",
	Long: `Runs one discovery in-process and prints the result as JSON.

Examples:
  phone-discovery discover --name "Helping Hands Foundation" --email info@helpinghands.org
  phone-discovery discover --name "Seva Trust" --location Hyderabad`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate("discover"); err != nil {
			return err
		}

		req := model.DiscoveryRequest{OrganizationName: discoverName}
		if discoverEmail != "" {
			req.Email = &discoverEmail
		}
		if discoverLocation != "" {
			req.Location = &discoverLocation
		}

		svc := newDiscoveryService(cfg, discovery.WithReporter(discovery.NewZapReporter(zap.L())))
		result := svc.Discover(cmd.Context(), req)

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return eris.Wrap(err, "discover: encode result")
		}
		return nil
	},
}

func init() {
	discoverCmd.Flags().StringVar(&discoverName, "name", "", "organization name (required)")
	discoverCmd.Flags().StringVar(&discoverEmail, "email", "", "organization email")
	discoverCmd.Flags().StringVar(&discoverLocation, "location", "", "organization location, e.g. district")
	_ = discoverCmd.MarkFlagRequired("name")
	rootCmd.AddCommand(discoverCmd)
}
