package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roamly/roamly"
	"github.com/roamly/roamly/core"
	"github.com/roamly/roamly/pkg/config"
)

var (
	cfgFile string
	apiURL  string
)

var rootCmd = &cobra.Command{
	Use:   "roamly",
	Short: "Command-line client for the Roamly travel companion platform",
	Long: `roamly talks to the Roamly backend the same way the web client does:
it logs in with email and password, receives an HTTP-only session cookie,
and uses that cookie for every authenticated call.

Because the session lives only in memory, commands that need an
authenticated session log in first using ROAMLY_EMAIL and ROAMLY_PASSWORD
(or the --email and --password flags where available).`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command under ctx so in-flight requests
// stop on interrupt.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./roamly.yaml)")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "backend API root (overrides config)")
}

func loadConfig() (config.Config, error) {
	path := cfgFile
	if path == "" {
		path = "roamly.yaml"
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if apiURL != "" {
		cfg.API.URL = apiURL
	}
	return cfg, nil
}

func newClient() (*roamly.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	return roamly.New(roamly.Config{
		BaseURL:      cfg.API.URL,
		Timeout:      cfg.API.Timeout,
		DisableCache: cfg.Cache.Disabled,
		UploadURL:    cfg.Uploads.URL,
		UploadPreset: cfg.Uploads.Preset,
	})
}

// ensureLogin authenticates the client from flags or environment before an
// authenticated command runs. Flags win over environment variables.
func ensureLogin(ctx context.Context, cmd *cobra.Command, client *roamly.Client) (*core.Session, error) {
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")

	if email == "" {
		email = os.Getenv("ROAMLY_EMAIL")
	}
	if password == "" {
		password = os.Getenv("ROAMLY_PASSWORD")
	}
	if email == "" || password == "" {
		return nil, fmt.Errorf("credentials required: set ROAMLY_EMAIL and ROAMLY_PASSWORD or pass --email and --password")
	}

	session, err := client.Auth.Login(ctx, core.Credentials{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	return session, nil
}

func addCredentialFlags(cmd *cobra.Command) {
	cmd.Flags().String("email", "", "account email (falls back to ROAMLY_EMAIL)")
	cmd.Flags().String("password", "", "account password (falls back to ROAMLY_PASSWORD)")
}
