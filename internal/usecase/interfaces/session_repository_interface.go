package interfaces

import (
	"context"
	"maquininhas_mky/internal/domain/entities"
)

// ISessionRepository abstracts the session table written by the auth provider.

type ISessionRepository interface {
	GetByToken(ctx context.Context, token string) (entities.Session, error)
}
