package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roamly/roamly"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Verify credentials against the backend",
	Long: `Login with email and password and report the session identity the
backend returns, along with the screen the web client would land on.

The session cookie is held only for the lifetime of the process, so this
command is a credentials check rather than a persistent login.

Examples:
  roamly login --email user@example.com --password mypass
  ROAMLY_EMAIL=user@example.com ROAMLY_PASSWORD=mypass roamly login`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		session, err := ensureLogin(cmd.Context(), cmd, client)
		if err != nil {
			return err
		}

		fmt.Printf("Logged in as %s <%s>\n", session.FullName, session.Email)
		fmt.Printf("Role:  %s\n", session.Role)
		fmt.Printf("Lands: %s\n", roamly.DecideLandingRoute(session))
		if session.IsBlocked {
			fmt.Println("Note: this account is blocked and routes as unauthenticated.")
		}
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Login and immediately invalidate the session",
	Long: `Login with the given credentials and then invalidate the session on
the backend. Useful for confirming that logout clears the server-side
cookie even when the service is flaky; the local identity is discarded
regardless of whether the network call succeeds.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		if _, err := ensureLogin(cmd.Context(), cmd, client); err != nil {
			return err
		}

		client.Auth.Logout(cmd.Context())
		if client.Store.Current() != nil {
			return fmt.Errorf("session store still populated after logout")
		}
		fmt.Println("Logged out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Probe the backend for the current session",
	Long: `Login and then probe the session endpoint the way the web client does
on page load. A valid cookie yields the full identity; anything else
reports an anonymous session without failing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		if _, err := ensureLogin(cmd.Context(), cmd, client); err != nil {
			return err
		}

		session, err := client.Auth.Probe(cmd.Context())
		if err != nil {
			return fmt.Errorf("session probe failed: %w", err)
		}
		if session == nil {
			fmt.Println("Not authenticated.")
			return nil
		}

		fmt.Printf("%s <%s> (%s)\n", session.FullName, session.Email, session.Role)
		return nil
	},
}

func init() {
	addCredentialFlags(loginCmd)
	addCredentialFlags(logoutCmd)
	addCredentialFlags(whoamiCmd)

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}
