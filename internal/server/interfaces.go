package server

import "context"

// Server defines the lifecycle contract of the transport server.
//
// RunServer blocks until ctx is cancelled or serving fails; it then shuts the
// server down, giving in-flight requests up to the configured request timeout
// to finish.
type Server interface {
	RunServer(ctx context.Context) error
}
