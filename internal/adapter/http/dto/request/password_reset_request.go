package request

// PasswordResetRequest starts the reset flow for an e-mail address.
type PasswordResetRequest struct {
	Email string `json:"email" binding:"required"`
}

// PasswordResetVerifyRequest completes the flow: code check plus the new
// credential.
type PasswordResetVerifyRequest struct {
	Email       string `json:"email" binding:"required"`
	Code        string `json:"code" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}
