package domain

import "errors"

// Expected failure modes. The HTTP layer maps these to status codes and safe
// messages; anything else is treated as an internal error and kept opaque.
var (
	// ErrMissingFields: signup submitted without name, email, or password.
	ErrMissingFields = errors.New("missing required fields")

	// ErrEmailInUse covers both the signup pre-check and the unique-index
	// violation raised when two signups race on the same email. Callers see
	// one message either way.
	ErrEmailInUse = errors.New("email already in use")

	// ErrInvalidCredentials is returned for an unknown email and for a wrong
	// password alike, so a login response never reveals whether the email is
	// registered.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserNotFound is a repository-level outcome. The auth service folds
	// it into ErrInvalidCredentials before it can leave a login call.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidToken: malformed structure, wrong signing method, or a
	// signature that does not verify.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken: structurally valid, correctly signed, past its expiry.
	ErrExpiredToken = errors.New("token expired")

	// ErrInvalidProduct: product payload failed validation.
	ErrInvalidProduct = errors.New("invalid product data")
)
