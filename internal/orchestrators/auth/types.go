package auth

import (
	"github.com/KirkDiggler/creature-forge/internal/entities"
)

// RegisterInput defines the request for creating an account
type RegisterInput struct {
	Username    string
	Password    string
	DisplayName string
}

// RegisterOutput carries the new account and a session for it
type RegisterOutput struct {
	User    *entities.User
	Session *entities.Session
}

// LoginInput defines the request for logging in
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput carries the new session
type LoginOutput struct {
	Session *entities.Session
}

// LogoutInput defines the request for ending a session
type LogoutInput struct {
	Token string
}

// LogoutOutput defines the response for ending a session
type LogoutOutput struct{}

// ResolveSessionInput defines the request for looking up a bearer token
type ResolveSessionInput struct {
	Token string
}

// ResolveSessionOutput carries the session the token belongs to
type ResolveSessionOutput struct {
	Session *entities.Session
}
