package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"productivity-planner/config"
	"productivity-planner/pkg/scope"
)

type tokenOutput struct {
	UserID string `json:"user_id" yaml:"user_id"`
	Token  string `json:"token"   yaml:"token"`
}

func tokenCmd() *cobra.Command {
	var userID, username string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for a user",
		Long: `Issue a bearer token signed with the configured JWT secret.

Examples:
  plannerctl token --user-id 7f3c --username ana
  plannerctl token --user-id 7f3c -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if userID == "" {
				return errors.New("--user-id is required")
			}
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			token, err := scope.New(cfg.JWT.Secret, cfg.JWT.TTL).CreateToken(scope.Payload{
				UserID:   userID,
				Username: username,
			})
			if err != nil {
				return err
			}
			return printResult(cmd, tokenOutput{UserID: userID, Token: token})
		},
	}

	cmd.Flags().StringVar(&userID, "user-id", "", "User id carried by the token")
	cmd.Flags().StringVar(&username, "username", "", "Optional display name")

	return cmd
}
