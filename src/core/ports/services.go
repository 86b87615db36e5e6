package ports

import (
	"context"
	"time"
)

// ExternalService is the base interface for external service adapters.
type ExternalService interface {
	// Health checks if the external service is reachable.
	Health(ctx context.Context) error
}

// IDGenerator produces opaque unique suffixes for entity ids.
type IDGenerator interface {
	NewID() string
}

// Clock supplies creation timestamps.
type Clock interface {
	Now() time.Time
}
