// Package delivery holds the process entry points started by cmd/tankwatch.
package delivery

import "context"

// Delivery is a long-running server or loop. Serve blocks until it stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
