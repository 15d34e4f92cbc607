package handler

import "github.com/shoply/storefront-api/internal/core/domain"

// Field presence is checked by the auth service so that a missing field and an
// empty field fail identically; these schemas only shape the JSON.

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupResponse struct {
	User domain.PublicUser `json:"user"`
}

type loginResponse struct {
	Token string            `json:"token"`
	User  domain.PublicUser `json:"user"`
}
