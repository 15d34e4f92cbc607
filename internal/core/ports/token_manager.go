package ports

// TokenManager mints and verifies session tokens. Tokens are stateless: a
// token is valid iff its signature checks out and its expiry has not passed.
type TokenManager interface {
	// Issue returns a signed token bound to userID. Two calls for the same
	// account yield two independently valid tokens.
	Issue(userID string) (string, error)

	// Verify returns the bound account ID, domain.ErrExpiredToken when the
	// expiry has elapsed, or domain.ErrInvalidToken for anything else.
	Verify(token string) (string, error)
}
