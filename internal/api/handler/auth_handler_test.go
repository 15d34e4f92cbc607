package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/shoply/storefront-api/internal/core/domain"
)

type stubAuthService struct {
	signupFn func(ctx context.Context, name, email, password string) (*domain.User, error)
	loginFn  func(ctx context.Context, email, password string) (string, *domain.User, error)
}

func (s *stubAuthService) Signup(ctx context.Context, name, email, password string) (*domain.User, error) {
	return s.signupFn(ctx, name, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, name, email, password string) (*domain.User, error) {
			if name != "Alice" || email != "a@x.com" || password != "pw123456" {
				t.Fatalf("unexpected args: %s %s", name, email)
			}
			return &domain.User{ID: "u1", Name: name, Email: email, PasswordHash: "hash"}, nil
		},
	}
	h := NewAuthHandler(stub)

	body := strings.NewReader(`{"name":"Alice","email":"a@x.com","password":"pw123456"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	user := resp["user"]
	if user["id"] != "u1" || user["name"] != "Alice" || user["email"] != "a@x.com" {
		t.Fatalf("unexpected user payload: %v", user)
	}
	if _, leaked := user["password_hash"]; leaked {
		t.Fatalf("credential hash leaked in response")
	}
	if strings.Contains(rec.Body.String(), "hash") {
		t.Fatalf("credential hash leaked in body: %s", rec.Body.String())
	}
}

func TestAuthHandler_Signup_DomainErrorsPropagate(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, name, email, password string) (*domain.User, error) {
			return nil, domain.ErrEmailInUse
		},
	}
	h := NewAuthHandler(stub)

	body := strings.NewReader(`{"name":"Alice","email":"a@x.com","password":"pw"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// The central HTTP error handler owns the status mapping; the handler
	// just surfaces the domain error.
	if err := h.Signup(c); !errors.Is(err, domain.ErrEmailInUse) {
		t.Fatalf("expected ErrEmailInUse, got %v", err)
	}
}

func TestAuthHandler_Signup_BadPayload(t *testing.T) {
	e := echo.New()
	h := NewAuthHandler(&stubAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader("{not json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Signup(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "tok123", &domain.User{ID: "u1", Name: "Alice", Email: email}, nil
		},
	}
	h := NewAuthHandler(stub)

	body := strings.NewReader(`{"email":"a@x.com","password":"pw123456"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Token string            `json:"token"`
		User  domain.PublicUser `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "tok123" || resp.User.ID != "u1" || resp.User.Email != "a@x.com" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	body := strings.NewReader(`{"email":"ghost@x.com","password":"pw"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
