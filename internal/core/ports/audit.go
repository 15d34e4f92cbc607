package ports

import (
	"context"

	"github.com/shoply/storefront-api/internal/core/domain"
)

// AuditRepository persists authentication audit events.
type AuditRepository interface {
	Record(ctx context.Context, event domain.AuthEvent) error
}

// AuditRecorder is the fire-and-forget intake for auth events. Implementations
// must not block request handling; write failures are logged, never returned.
type AuditRecorder interface {
	Enqueue(event domain.AuthEvent)
}
