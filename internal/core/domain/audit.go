package domain

import "time"

// AuthAction identifies the kind of authentication event being recorded.
type AuthAction string

const (
	ActionSignup AuthAction = "signup"
	ActionLogin  AuthAction = "login"
)

// AuthEvent is an audit-trail record of a signup or login attempt. Events are
// written asynchronously and never carry credentials, only the outcome.
type AuthEvent struct {
	Email     string     `bson:"email"`
	Action    AuthAction `bson:"action"`
	Success   bool       `bson:"success"`
	Timestamp time.Time  `bson:"timestamp"`
}
