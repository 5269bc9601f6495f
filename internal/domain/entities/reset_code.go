package entities

import "time"

// PasswordResetCode is a single-use numeric code bound to an e-mail address.
// Attempts counts failed verifications within the code's validity window.
type PasswordResetCode struct {
	Email     string
	Code      string
	Attempts  int
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (c PasswordResetCode) Expired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}
