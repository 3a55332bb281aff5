package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-item-transfer/models"
)

// NewSendCmd creates the send subcommand. It prints the transfer link the
// recipient has to open with "itemctl get".
func NewSendCmd(connect connector, copyToClipboard func(string) error) *cobra.Command {
	var copyLink bool

	cmd := &cobra.Command{
		Use:   "send <item-id> <recipient-login>",
		Short: "Create a transfer link handing an item to another user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			api, err := connect()
			if err != nil {
				return err
			}

			link, err := api.SendItem(cmd.Context(), models.SendItemRequest{ID: id, NewOwnerLogin: args[1]})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), link)

			if copyLink {
				if err = copyToClipboard(link); err != nil {
					return fmt.Errorf("copy link to clipboard: %w", err)
				}
				cmd.PrintErrln("link copied to clipboard")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&copyLink, "copy", false, "copy the link to the clipboard")

	return cmd
}

// NewGetCmd creates the get subcommand redeeming a transfer link.
func NewGetCmd(connect connector) *cobra.Command {
	return &cobra.Command{
		Use:   "get <link|capability>",
		Short: "Redeem a transfer link and take ownership of the item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := connect()
			if err != nil {
				return err
			}

			item, err := api.ReceiveItem(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			printItem(cmd, item)
			return nil
		},
	}
}
