package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/shoply/storefront-api/internal/core/domain"
	"github.com/shoply/storefront-api/internal/core/ports"
)

// AuthService orchestrates signup and login.
type AuthService struct {
	users  ports.UserRepository
	hasher *PasswordHasher
	tokens ports.TokenManager
	audit  ports.AuditRecorder
	logger zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	hasher *PasswordHasher,
	tokens ports.TokenManager,
	audit ports.AuditRecorder,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens, audit: audit, logger: logger}
}

// Signup validates input, checks email availability, hashes the password, and
// persists the account. The repository's unique index is the authoritative
// uniqueness check: the FindByEmail pre-check only gives a fast path, and a
// signup that loses the race at insert time gets the same ErrEmailInUse.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (*domain.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, domain.ErrMissingFields
	}

	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		s.recordAuth(email, domain.ActionSignup, false)
		return nil, domain.ErrEmailInUse
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.users.Create(ctx, &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailInUse) {
			s.recordAuth(email, domain.ActionSignup, false)
		}
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Msg("account created")
	s.recordAuth(email, domain.ActionSignup, true)
	return created, nil
}

// Login verifies credentials and issues a session token. An unknown email and
// a wrong password produce the same ErrInvalidCredentials so responses never
// reveal whether an email is registered.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordAuth(email, domain.ActionLogin, false)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.recordAuth(email, domain.ActionLogin, false)
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("login succeeded")
	s.recordAuth(email, domain.ActionLogin, true)
	return token, user, nil
}

func (s *AuthService) recordAuth(email string, action domain.AuthAction, success bool) {
	if s.audit == nil {
		return
	}
	s.audit.Enqueue(domain.AuthEvent{
		Email:     email,
		Action:    action,
		Success:   success,
		Timestamp: time.Now().UTC(),
	})
}
