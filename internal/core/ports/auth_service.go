package ports

import (
	"context"

	"github.com/shoply/storefront-api/internal/core/domain"
)

// AuthService defines the signup and login use cases.
type AuthService interface {
	// Signup creates an account. Fails with domain.ErrMissingFields when any
	// field is empty and domain.ErrEmailInUse when the email is taken.
	Signup(ctx context.Context, name, email, password string) (*domain.User, error)

	// Login verifies credentials and issues a session token. Any credential
	// failure surfaces as domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
