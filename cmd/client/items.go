package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-item-transfer/models"
)

// NewItemsCmd creates the items subcommand.
func NewItemsCmd(connect connector) *cobra.Command {
	return &cobra.Command{
		Use:   "items",
		Short: "List all items with their owners",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			api, err := connect()
			if err != nil {
				return err
			}

			items, err := api.ListItems(cmd.Context())
			if err != nil {
				return err
			}

			for _, item := range items {
				printItem(cmd, item)
			}
			return nil
		},
	}
}

// NewItemCmd groups commands acting on a single item.
func NewItemCmd(connect connector) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Create or delete items",
	}

	var (
		name    string
		ownerID int64
	)
	create := &cobra.Command{
		Use:   "create",
		Short: "Create an item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			api, err := connect()
			if err != nil {
				return err
			}

			item, err := api.CreateItem(cmd.Context(), models.CreateItemRequest{Name: name, OwnerID: ownerID})
			if err != nil {
				return err
			}

			printItem(cmd, item)
			return nil
		},
	}
	create.Flags().StringVar(&name, "name", "", "item name")
	create.Flags().Int64Var(&ownerID, "owner", 0, "owner user id (defaults to you)")
	_ = create.MarkFlagRequired("name")

	remove := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an item you own",
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

			if err = api.DeleteItem(cmd.Context(), id); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted item %d\n", id)
			return nil
		},
	}

	cmd.AddCommand(create, remove)
	return cmd
}

func printItem(cmd *cobra.Command, item models.Item) {
	fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\towner=%d\n", item.ID, item.Name, item.OwnerID)
}
