package interfaces

import (
	"context"
	"maquininhas_mky/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for User profiles.
//
// Accounts are minted by the external auth provider; this service reads
// profiles and replaces the password hash after a verified reset.

type IUserRepository interface {
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	UpdatePasswordHash(ctx context.Context, id, passwordHash string) (entities.User, error)
}
