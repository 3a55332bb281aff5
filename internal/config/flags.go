package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses server flags from args on a private flag set, so it can
// be called more than once.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration session token lifetime (e.g., "1h"), 0 disables expiry
//	-transfer-duration transfer capability lifetime, 0 disables expiry
//	-public-url base URL used in transfer links
//	-single-use-transfers reject repeated redemption of a capability
//	-log-level zerolog level name
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-prune-interval redemption ledger prune interval
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		serverAddress      NetAddress
		databaseDSN        string
		jsonConfigPath     string
		tokenSignKey       string
		tokenIssuer        string
		tokenDuration      time.Duration
		transferDuration   time.Duration
		publicURL          string
		singleUseTransfers bool
		logLevel           string
		requestTimeout     time.Duration
		pruneInterval      time.Duration
	)

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Session token duration (e.g., 1h, 30m)")
	fs.DurationVar(&transferDuration, "transfer-duration", 0, "Transfer capability duration (e.g., 15m)")
	fs.StringVar(&publicURL, "public-url", "", "Base URL used in transfer links")
	fs.BoolVar(&singleUseTransfers, "single-use-transfers", false, "Reject repeated redemption of a transfer link")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&pruneInterval, "prune-interval", 0, "Redemption ledger prune interval")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:       tokenSignKey,
			TokenIssuer:        tokenIssuer,
			TokenDuration:      tokenDuration,
			TransferDuration:   transferDuration,
			PublicURL:          publicURL,
			SingleUseTransfers: singleUseTransfers,
			LogLevel:           logLevel,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers:      Workers{PruneInterval: pruneInterval},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
