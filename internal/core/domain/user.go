package domain

import (
	"errors"
	"time"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrNotAuthenticated = errors.New("not authenticated")
var ErrAuthUnavailable = errors.New("authentication service unavailable")
var ErrLoginSuperseded = errors.New("login superseded by a newer attempt")
var ErrSessionNotFound = errors.New("session not found")

// BusinessInfo is the business-profile summary attached to a user account.
type BusinessInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location,omitempty"`
	Category    string `json:"category"`
}

// User models the authenticated actor as seen by the session layer. Token is
// the opaque bearer token issued by the auth gateway.
type User struct {
	ID        string        `json:"id"`
	FirstName string        `json:"first_name"`
	LastName  string        `json:"last_name"`
	FullName  string        `json:"full_name"`
	Email     string        `json:"email"`
	Token     string        `json:"token"`
	AvatarURL string        `json:"avatar_url,omitempty"`
	Business  *BusinessInfo `json:"business,omitempty"`
}

// Session is the persisted authenticated-user state. Invariant: Authenticated
// is true iff User is non-nil and its token was unexpired at the last check.
//
// The JSON field names match the storage blob layout ({isLoggedIn, user}).
type Session struct {
	Authenticated bool      `json:"isLoggedIn"`
	User          *User     `json:"user,omitempty"`
	SavedAt       time.Time `json:"savedAt,omitempty"`
}

// Account is a locally stored credential record used by the local auth
// gateway (development and tests; production delegates to the remote one).
type Account struct {
	ID           string       `json:"id"`
	FirstName    string       `json:"first_name"`
	LastName     string       `json:"last_name"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	AvatarURL    string       `json:"avatar_url,omitempty"`
	Business     BusinessInfo `json:"business"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// FullName joins first and last name with a single space, skipping empty parts.
func FullName(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}
