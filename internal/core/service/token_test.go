package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shoply/storefront-api/internal/core/domain"
)

func TestTokenManager_IssueAndVerify(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)

	token, err := m.Issue("user-42")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	userID, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if userID != "user-42" {
		t.Fatalf("expected user-42, got %q", userID)
	}
}

func TestTokenManager_TwoTokensIndependentlyValid(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)

	first, err := m.Issue("user-1")
	if err != nil {
		t.Fatalf("first issue: %v", err)
	}
	second, err := m.Issue("user-1")
	if err != nil {
		t.Fatalf("second issue: %v", err)
	}

	for _, token := range []string{first, second} {
		if id, err := m.Verify(token); err != nil || id != "user-1" {
			t.Fatalf("token did not verify: id=%q err=%v", id, err)
		}
	}
}

func TestTokenManager_Expired(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)

	// Sign a token whose expiry already elapsed, with the correct secret.
	claims := jwt.RegisteredClaims{
		Subject:   "user-42",
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign expired token: %v", err)
	}

	_, err = m.Verify(expired)
	if !errors.Is(err, domain.ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestTokenManager_TamperedSignature(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)

	token, err := m.Issue("user-42")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// Flip the last signature byte.
	tampered := []byte(token)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	_, err = m.Verify(string(tampered))
	if !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenManager_WrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	token, err := issuer.Issue("user-42")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenManager_Malformed(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)

	for _, bad := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := m.Verify(bad); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("Verify(%q): expected ErrInvalidToken, got %v", bad, err)
		}
	}
}

func TestTokenManager_RejectsUnexpectedSigningMethod(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)

	// "none" algorithm tokens must never be accepted.
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "user-42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none token: %v", err)
	}

	if _, err := m.Verify(unsigned); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
