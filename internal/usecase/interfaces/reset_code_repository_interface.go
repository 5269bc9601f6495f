package interfaces

import (
	"context"
	"maquininhas_mky/internal/domain/entities"
)

// IResetCodeRepository abstracts DynamoDB persistence for password reset
// codes. One live code per e-mail: Put replaces any previous code.

type IResetCodeRepository interface {
	Put(ctx context.Context, code entities.PasswordResetCode) (entities.PasswordResetCode, error)
	GetByEmail(ctx context.Context, email string) (entities.PasswordResetCode, error)
	IncrementAttempts(ctx context.Context, email string) error
	Delete(ctx context.Context, email string) error
}
