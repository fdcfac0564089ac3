package main

import (
	"fmt"

	"rtk-backend/internal/auth"

	"github.com/spf13/cobra"
)

// runToken signs a token with JWT_SECRET so it is accepted by a server
// running with AUTH_ENABLED.
func runToken(cmd *cobra.Command, args []string) error {
	conf, err := settings(cmd)
	if err != nil {
		return err
	}

	authService, err := auth.NewAuthService(conf.JWTSecret, tokenTTL)
	if err != nil {
		return err
	}

	token, err := authService.GenerateJWT(tokenUser, tokenEmail)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
