package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"log"
	"math/big"
	"strings"
	"time"

	"maquininhas_mky/internal/domain/entities"
	"maquininhas_mky/internal/usecase/interfaces"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidResetEmail    = errors.New("invalid reset email")
	ErrInvalidResetCode     = errors.New("invalid or expired reset code")
	ErrTooManyResetAttempts = errors.New("too many failed reset attempts")
	ErrWeakPassword         = errors.New("password too short")
	ErrCodeDeliveryFailed   = errors.New("reset code delivery failed")
)

const (
	resetCodeLength   = 6
	resetCodeTTL      = 15 * time.Minute
	maxResetAttempts  = 5
	minPasswordLength = 8
)

// IPasswordResetUseCase is the two-step, code-based password reset flow.
//
// RequestReset succeeds silently for unknown e-mails so callers cannot probe
// which addresses are registered. A delivery failure is reported, but the
// issued code stays valid.

type IPasswordResetUseCase interface {
	RequestReset(ctx context.Context, email string) error
	VerifyReset(ctx context.Context, email, code, newPassword string) error
}

type PasswordResetUseCase struct {
	users    interfaces.IUserRepository
	codes    interfaces.IResetCodeRepository
	delivery interfaces.ICodeDelivery
}

var _ IPasswordResetUseCase = (*PasswordResetUseCase)(nil)

func NewPasswordResetUseCase(users interfaces.IUserRepository, codes interfaces.IResetCodeRepository, delivery interfaces.ICodeDelivery) *PasswordResetUseCase {
	return &PasswordResetUseCase{users: users, codes: codes, delivery: delivery}
}

func (u *PasswordResetUseCase) RequestReset(ctx context.Context, email string) error {
	email, err := normalizeEmail(email)
	if err != nil {
		return err
	}

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user.ID == "" {
		// Do not reveal whether the address is registered.
		log.Printf("[reset][usecase] request for unknown email ignored")
		return nil
	}

	code, err := generateResetCode()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	record := entities.PasswordResetCode{
		Email:     email,
		Code:      code,
		Attempts:  0,
		CreatedAt: now,
		ExpiresAt: now.Add(resetCodeTTL),
	}
	if _, err := u.codes.Put(ctx, record); err != nil {
		return err
	}

	// The code is durable at this point; a delivery failure is reported but
	// never rolls issuance back.
	if err := u.delivery.Deliver(ctx, email, code); err != nil {
		log.Printf("[reset][usecase] delivery failed email=%s err=%v", email, err)
		return ErrCodeDeliveryFailed
	}
	log.Printf("[reset][usecase] code issued email=%s expires_at=%s", email, record.ExpiresAt.Format(time.RFC3339))
	return nil
}

func (u *PasswordResetUseCase) VerifyReset(ctx context.Context, email, code, newPassword string) error {
	email, err := normalizeEmail(email)
	if err != nil {
		return err
	}

	record, err := u.codes.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if record.Email == "" || record.Expired(time.Now().UTC()) {
		return ErrInvalidResetCode
	}
	if record.Attempts >= maxResetAttempts {
		return ErrTooManyResetAttempts
	}
	if strings.TrimSpace(code) != record.Code {
		// A wrong guess burns an attempt but leaves the code usable.
		if err := u.codes.IncrementAttempts(ctx, email); err != nil {
			log.Printf("[reset][usecase] attempt increment failed email=%s err=%v", email, err)
		}
		return ErrInvalidResetCode
	}

	// Weak passwords are rejected after the code check without consuming the
	// code; the customer can retry with a stronger one.
	if len(newPassword) < minPasswordLength {
		return ErrWeakPassword
	}

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user.ID == "" {
		return ErrInvalidResetCode
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if _, err := u.users.UpdatePasswordHash(ctx, user.ID, string(hash)); err != nil {
		return err
	}

	// Single use: a successful verification invalidates the code immediately.
	if err := u.codes.Delete(ctx, email); err != nil {
		log.Printf("[reset][usecase] code cleanup failed email=%s err=%v", email, err)
	}
	log.Printf("[reset][usecase] password updated user_id=%s", user.ID)
	return nil
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return "", ErrInvalidResetEmail
	}
	return email, nil
}

// generateResetCode draws each digit from crypto/rand, matching the OTP
// generator used by the e-mail provider integration.
func generateResetCode() (string, error) {
	var b strings.Builder
	for i := 0; i < resetCodeLength; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		b.WriteByte(byte('0' + n.Int64()))
	}
	return b.String(), nil
}
