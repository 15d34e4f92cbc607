package ports

import (
	"context"

	"github.com/shoply/storefront-api/internal/core/domain"
)

// UserRepository is the durable account store. Email is an exact-match unique
// key: no case folding or trimming is applied, matching the unique index the
// store enforces.
type UserRepository interface {
	// FindByEmail returns domain.ErrUserNotFound when no account matches.
	// Absence is a normal outcome, not an infrastructure failure.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// Create persists a new account. Uniqueness is enforced atomically with
	// the insert; a losing racer gets domain.ErrEmailInUse.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
