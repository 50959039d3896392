package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"productivity-planner/pkg/gcalendar"
)

func calendarAuthCmd() *cobra.Command {
	var credsPath, tokenPath string

	cmd := &cobra.Command{
		Use:   "calendar-auth",
		Short: "Authorize Google Calendar access and save the OAuth token",
		Long: `Run the OAuth consent flow once for a Desktop App credentials file.

Open the printed URL, sign in, paste the authorization code back and
the token is written to --token. Restart the API afterwards.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(credsPath)
			if err != nil {
				return fmt.Errorf("failed to read credentials file %q: %w", credsPath, err)
			}
			oauthCfg, err := gcalendar.AuthConfig(data)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "1. Open this URL and sign in with the calendar's Google account:")
			fmt.Fprintln(out)
			fmt.Fprintln(out, oauthCfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline))
			fmt.Fprintln(out)
			fmt.Fprint(out, "2. Paste the authorization code here: ")

			code, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && strings.TrimSpace(code) == "" {
				return fmt.Errorf("failed to read authorization code: %w", err)
			}

			tok, err := oauthCfg.Exchange(cmd.Context(), strings.TrimSpace(code))
			if err != nil {
				return fmt.Errorf("failed to exchange authorization code: %w", err)
			}
			if err := gcalendar.SaveToken(tokenPath, tok); err != nil {
				return err
			}

			fmt.Fprintf(out, "\nToken saved to %s\n", tokenPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&credsPath, "credentials", "google-credentials.json", "OAuth Desktop App credentials file")
	cmd.Flags().StringVar(&tokenPath, "token", "token.json", "Where to write the token")

	return cmd
}
