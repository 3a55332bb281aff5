// Command itemctl is the command line client of the item transfer server.
package main

import (
	"os"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-item-transfer/internal/adapter"
	"github.com/MKhiriev/go-item-transfer/internal/config"
	"github.com/MKhiriev/go-item-transfer/internal/logger"
	"github.com/MKhiriev/go-item-transfer/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewConsoleLogger("itemctl", os.Stderr)
	_ = log.SetLevel("warn")

	deps := dependencies{
		newAdapter: func(cfg config.ClientAdapter) (adapter.ServerAdapter, error) {
			return adapter.NewHTTPServerAdapter(cfg, log)
		},
		copyToClipboard: clipboard.WriteAll,
	}

	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cmd := NewRootCmd(deps)
	cmd.Version = info.BuildVersion()
	cmd.SetVersionTemplate(info.String())

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
