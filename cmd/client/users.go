package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewUsersCmd creates the users subcommand.
func NewUsersCmd(connect connector) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List registered users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			api, err := connect()
			if err != nil {
				return err
			}

			users, err := api.ListUsers(cmd.Context())
			if err != nil {
				return err
			}

			for _, user := range users {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", user.UserID, user.Login)
			}
			return nil
		},
	}
}

// NewUserCmd groups commands acting on a single user.
func NewUserCmd(connect connector) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage your user account",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete your own user together with the items it owns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			api, err := connect()
			if err != nil {
				return err
			}

			if err = api.DeleteUser(cmd.Context(), id); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted user %d\n", id)
			return nil
		},
	})

	return cmd
}
