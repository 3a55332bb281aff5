package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-item-transfer/models"
)

// NewRegisterCmd creates the register subcommand.
func NewRegisterCmd(connect connector) *cobra.Command {
	return &cobra.Command{
		Use:   "register <login> <password>",
		Short: "Register a new user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := connect()
			if err != nil {
				return err
			}

			user, err := api.Register(cmd.Context(), models.Credentials{Login: args[0], Password: args[1]})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "registered user %q with id %d\n", user.Login, user.UserID)
			return nil
		},
	}
}

// NewLoginCmd creates the login subcommand. The session token is the only
// thing printed to stdout so it can be captured by the shell.
func NewLoginCmd(connect connector) *cobra.Command {
	return &cobra.Command{
		Use:   "login <login> <password>",
		Short: "Log in and print the session token",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := connect()
			if err != nil {
				return err
			}

			token, err := api.Login(cmd.Context(), models.Credentials{Login: args[0], Password: args[1]})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token.String())
			return nil
		},
	}
}
