// Package delivery defines the contract every transport entry point
// (HTTP today) fulfills so main can serve them uniformly.
package delivery

import "context"

// Delivery is a long-running transport server.
type Delivery interface {
	// Serve blocks until the server stops or ctx is cancelled.
	Serve(ctx context.Context) error
}
