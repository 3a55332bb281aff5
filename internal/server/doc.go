// Package server runs the HTTP transport of the item transfer API and shuts
// it down gracefully when the run context is cancelled.
package server
