package entities

import "time"

// Identity is the resolved actor behind a session token.
//
// IsAdmin is recomputed per request from the configured allow-list, never
// stored on the session. An Identity with an empty UserID is unauthenticated.
type Identity struct {
	UserID    string
	Email     string
	IsAdmin   bool
	Anonymous bool
}

func (i Identity) Authenticated() bool {
	return i.UserID != ""
}

// CanUseOrders reports whether the actor may create, list or mutate orders.
// Anonymous sessions count as signed in for the identity provider but are
// treated as unauthenticated for all order operations.
func (i Identity) CanUseOrders() bool {
	return i.Authenticated() && !i.Anonymous
}

// User is the stored profile behind an identity. Credentials are managed by
// the external auth provider; this service only reads the e-mail and replaces
// the password hash during a verified reset.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Session binds an opaque token to a user. Anonymous marks guest sessions
// minted by the auth provider.
type Session struct {
	Token     string
	UserID    string
	Anonymous bool
	CreatedAt time.Time
}
