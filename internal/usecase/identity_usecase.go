package usecase

import (
	"context"
	"strings"

	"maquininhas_mky/internal/domain/entities"
	"maquininhas_mky/internal/usecase/interfaces"
)

// IIdentityUseCase resolves an opaque session token into an actor identity.
//
// Resolution fails closed: a missing or invalid token yields the zero
// (unauthenticated) identity, never an error. Errors are reserved for
// infrastructure failures.

type IIdentityUseCase interface {
	Resolve(ctx context.Context, token string) (entities.Identity, error)
}

type IdentityUseCase struct {
	sessions    interfaces.ISessionRepository
	users       interfaces.IUserRepository
	adminEmails map[string]struct{}
}

var _ IIdentityUseCase = (*IdentityUseCase)(nil)

// NewIdentityUseCase builds the resolver with an explicit admin allow-list.
// The list is injected at construction instead of read from the environment
// per call, so tests can pass fake allow-lists.
func NewIdentityUseCase(sessions interfaces.ISessionRepository, users interfaces.IUserRepository, adminEmails map[string]struct{}) *IdentityUseCase {
	if adminEmails == nil {
		adminEmails = map[string]struct{}{}
	}
	return &IdentityUseCase{sessions: sessions, users: users, adminEmails: adminEmails}
}

// ParseAdminEmails parses the ADMIN_EMAILS configuration value: entries split
// on "," or ";", trimmed and lower-cased. An empty value yields an empty set
// (no admins), never a wildcard.
func ParseAdminEmails(raw string) map[string]struct{} {
	out := map[string]struct{}{}
	for _, part := range strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ';' }) {
		email := strings.ToLower(strings.TrimSpace(part))
		if email != "" {
			out[email] = struct{}{}
		}
	}
	return out
}

func (u *IdentityUseCase) Resolve(ctx context.Context, token string) (entities.Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.Identity{}, nil
	}

	session, err := u.sessions.GetByToken(ctx, token)
	if err != nil {
		return entities.Identity{}, err
	}
	if session.UserID == "" {
		return entities.Identity{}, nil
	}

	user, err := u.users.GetByID(ctx, session.UserID)
	if err != nil {
		return entities.Identity{}, err
	}
	if user.ID == "" {
		// Session points at a deleted profile; treat as unauthenticated.
		return entities.Identity{}, nil
	}

	email := strings.ToLower(strings.TrimSpace(user.Email))
	// Guest heuristic: the auth provider flags anonymous sessions, but older
	// tokens only carry an "anon" marker and no e-mail.
	anonymous := session.Anonymous ||
		email == "" ||
		strings.Contains(strings.ToLower(token), "anon")

	_, isAdmin := u.adminEmails[email]

	return entities.Identity{
		UserID:    user.ID,
		Email:     email,
		IsAdmin:   email != "" && isAdmin,
		Anonymous: anonymous,
	}, nil
}
