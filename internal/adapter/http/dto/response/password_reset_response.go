package response

// PasswordResetResponse acknowledges a reset step. Accepted is true for the
// request step even when the e-mail is not registered.
type PasswordResetResponse struct {
	Accepted bool `json:"accepted"`
}
