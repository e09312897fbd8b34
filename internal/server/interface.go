package server

import "context"

// Server exposes the job API over HTTP.
type Server interface {
	// Start begins listening and returns once the listener is bound.
	// Serving continues until Stop or ctx cancellation.
	Start(ctx context.Context) error
	// Stop shuts the server down gracefully.
	Stop()
	// Addr is the bound listen address, valid after Start.
	Addr() string
}
