package server

import (
	"context"

	"football-stats-service/internal/poller"
)

// Poller defines the minimal catalog poller behavior needed by the server.
type Poller interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() poller.Status
}
