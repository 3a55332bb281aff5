package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-item-transfer/internal/adapter"
	"github.com/MKhiriev/go-item-transfer/internal/config"
)

// dependencies are the side effects the commands need, swapped in tests.
type dependencies struct {
	newAdapter      func(cfg config.ClientAdapter) (adapter.ServerAdapter, error)
	copyToClipboard func(text string) error
}

// Global flags available to all subcommands. Non-empty values win over
// the ADAPTER_* environment variables.
type globalFlags struct {
	baseURL string
	timeout time.Duration
	token   string
}

// NewRootCmd creates the root command of the itemctl CLI.
func NewRootCmd(deps dependencies) *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "itemctl",
		Short: "itemctl - client for the item transfer server",
		Long: `itemctl manages users and items on an item transfer server and
hands items over to other users with one-time transfer links.

The session token printed by "itemctl login" is passed with --token or the
ADAPTER_TOKEN environment variable.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&flags.baseURL, "base-url", "", "server base url (env ADAPTER_BASE_URL)")
	cmd.PersistentFlags().DurationVar(&flags.timeout, "timeout", 0, "request timeout (env ADAPTER_REQUEST_TIMEOUT)")
	cmd.PersistentFlags().StringVar(&flags.token, "token", "", "session token (env ADAPTER_TOKEN)")

	connect := func() (adapter.ServerAdapter, error) {
		cfg, err := config.GetClientConfig(config.ClientAdapter{
			BaseURL:        flags.baseURL,
			RequestTimeout: flags.timeout,
			Token:          flags.token,
		})
		if err != nil {
			return nil, err
		}
		return deps.newAdapter(cfg.Adapter)
	}

	cmd.AddCommand(NewRegisterCmd(connect))
	cmd.AddCommand(NewLoginCmd(connect))
	cmd.AddCommand(NewUsersCmd(connect))
	cmd.AddCommand(NewUserCmd(connect))
	cmd.AddCommand(NewItemsCmd(connect))
	cmd.AddCommand(NewItemCmd(connect))
	cmd.AddCommand(NewSendCmd(connect, deps.copyToClipboard))
	cmd.AddCommand(NewGetCmd(connect))

	return cmd
}

// connector opens the adapter once the command line has been parsed.
type connector func() (adapter.ServerAdapter, error)

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", arg)
	}
	return id, nil
}
