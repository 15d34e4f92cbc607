package domain

import "time"

// User models a registered account. PasswordHash never crosses the API
// boundary; PublicView is the only shape handlers return.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PublicUser is the client-facing projection of a User.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PublicView strips everything a client must not see.
func (u *User) PublicView() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}
