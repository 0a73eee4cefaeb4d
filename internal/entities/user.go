package entities

import "time"

// User is an account that owns creatures
type User struct {
	ID           string
	Username     string
	DisplayName  string
	PasswordHash string
	CreatedAt    time.Time
}

// Session is the identity of a logged-in caller. It is passed explicitly to
// the services that need it rather than read from ambient state.
type Session struct {
	Token       string `json:"token"`
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
}
