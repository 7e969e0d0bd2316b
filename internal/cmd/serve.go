package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roamly/roamly/gateway"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the credential-forwarding gateway",
	Long: `Run the local gateway that fronts the Roamly backend for browser
clients. It relays /api/* requests, forwards the HTTP-only session
cookie, and rejects payment calls that arrive without one.

The backend URL comes from gateway.backendUrl in the config file or
the ROAMLY_BACKEND_URL environment variable.

Examples:
  ROAMLY_BACKEND_URL=http://localhost:3000/api roamly serve
  roamly serve --addr :9090`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if addr != "" {
			cfg.Gateway.Addr = addr
		}
		if cfg.Gateway.BackendURL == "" {
			return fmt.Errorf("gateway.backendUrl (or ROAMLY_BACKEND_URL) is required")
		}

		gw, err := gateway.New(gateway.Config{
			Addr:       cfg.Gateway.Addr,
			BackendURL: cfg.Gateway.BackendURL,
		})
		if err != nil {
			return fmt.Errorf("failed to build gateway: %w", err)
		}

		// Shut down cleanly when the root context is cancelled.
		go func() {
			<-cmd.Context().Done()
			_ = gw.Shutdown()
		}()

		fmt.Printf("Gateway listening on %s, forwarding to %s\n",
			cfg.Gateway.Addr, cfg.Gateway.BackendURL)
		return gw.Listen()
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
