package usecase

import (
	"context"
	"errors"
	"testing"

	"maquininhas_mky/internal/domain/entities"
	mock_interfaces "maquininhas_mky/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestParseAdminEmails(t *testing.T) {
	t.Run("empty value yields no admins", func(t *testing.T) {
		if got := ParseAdminEmails(""); len(got) != 0 {
			t.Fatalf("expected empty set, got %v", got)
		}
	})

	t.Run("splits on comma and semicolon", func(t *testing.T) {
		got := ParseAdminEmails("a@x.com, B@X.com ;c@x.com")
		if len(got) != 3 {
			t.Fatalf("expected 3 entries, got %v", got)
		}
		for _, want := range []string{"a@x.com", "b@x.com", "c@x.com"} {
			if _, ok := got[want]; !ok {
				t.Fatalf("missing %s in %v", want, got)
			}
		}
	})

	t.Run("ignores blank entries", func(t *testing.T) {
		got := ParseAdminEmails(",, ;a@x.com;")
		if len(got) != 1 {
			t.Fatalf("expected 1 entry, got %v", got)
		}
	})
}

func TestIdentityUseCase_Resolve(t *testing.T) {
	t.Run("empty token is unauthenticated", func(t *testing.T) {
		uc := NewIdentityUseCase(nil, nil, nil)
		id, err := uc.Resolve(context.Background(), "   ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id.Authenticated() {
			t.Fatalf("expected unauthenticated identity, got %+v", id)
		}
	})

	t.Run("unknown token fails closed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewIdentityUseCase(sessions, nil, nil)

		sessions.EXPECT().GetByToken(gomock.Any(), "tok-1").Return(entities.Session{}, nil)

		id, err := uc.Resolve(context.Background(), "tok-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id.Authenticated() {
			t.Fatalf("expected unauthenticated identity, got %+v", id)
		}
	})

	t.Run("session repo error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewIdentityUseCase(sessions, nil, nil)

		sessions.EXPECT().GetByToken(gomock.Any(), "tok-1").Return(entities.Session{}, errors.New("db"))

		if _, err := uc.Resolve(context.Background(), "tok-1"); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("session to deleted profile is unauthenticated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockISessionRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewIdentityUseCase(sessions, users, nil)

		sessions.EXPECT().GetByToken(gomock.Any(), "tok-1").Return(entities.Session{Token: "tok-1", UserID: "u1"}, nil)
		users.EXPECT().GetByID(gomock.Any(), "u1").Return(entities.User{}, nil)

		id, err := uc.Resolve(context.Background(), "tok-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id.Authenticated() {
			t.Fatalf("expected unauthenticated identity, got %+v", id)
		}
	})

	t.Run("regular customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockISessionRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewIdentityUseCase(sessions, users, ParseAdminEmails("admin@x.com"))

		sessions.EXPECT().GetByToken(gomock.Any(), "tok-1").Return(entities.Session{Token: "tok-1", UserID: "u1"}, nil)
		users.EXPECT().GetByID(gomock.Any(), "u1").Return(entities.User{ID: "u1", Email: "Cliente@X.com"}, nil)

		id, err := uc.Resolve(context.Background(), "tok-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !id.CanUseOrders() {
			t.Fatalf("expected order access, got %+v", id)
		}
		if id.Email != "cliente@x.com" {
			t.Fatalf("expected lower-cased email, got %s", id.Email)
		}
		if id.IsAdmin {
			t.Fatalf("expected non-admin")
		}
	})

	t.Run("admin by allow-list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockISessionRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewIdentityUseCase(sessions, users, ParseAdminEmails("Admin@X.com"))

		sessions.EXPECT().GetByToken(gomock.Any(), "tok-1").Return(entities.Session{Token: "tok-1", UserID: "u1"}, nil)
		users.EXPECT().GetByID(gomock.Any(), "u1").Return(entities.User{ID: "u1", Email: "admin@x.com"}, nil)

		id, err := uc.Resolve(context.Background(), "tok-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !id.IsAdmin {
			t.Fatalf("expected admin, got %+v", id)
		}
	})

	t.Run("flagged anonymous session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockISessionRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewIdentityUseCase(sessions, users, nil)

		sessions.EXPECT().GetByToken(gomock.Any(), "tok-1").Return(entities.Session{Token: "tok-1", UserID: "u1", Anonymous: true}, nil)
		users.EXPECT().GetByID(gomock.Any(), "u1").Return(entities.User{ID: "u1", Email: "guest@x.com"}, nil)

		id, err := uc.Resolve(context.Background(), "tok-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !id.Anonymous || id.CanUseOrders() {
			t.Fatalf("expected anonymous without order access, got %+v", id)
		}
	})

	t.Run("missing email marks anonymous", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockISessionRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewIdentityUseCase(sessions, users, nil)

		sessions.EXPECT().GetByToken(gomock.Any(), "tok-1").Return(entities.Session{Token: "tok-1", UserID: "u1"}, nil)
		users.EXPECT().GetByID(gomock.Any(), "u1").Return(entities.User{ID: "u1"}, nil)

		id, err := uc.Resolve(context.Background(), "tok-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !id.Anonymous {
			t.Fatalf("expected anonymous, got %+v", id)
		}
	})

	t.Run("anon marker in token marks anonymous", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockISessionRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewIdentityUseCase(sessions, users, nil)

		sessions.EXPECT().GetByToken(gomock.Any(), "ANON-tok-1").Return(entities.Session{Token: "ANON-tok-1", UserID: "u1"}, nil)
		users.EXPECT().GetByID(gomock.Any(), "u1").Return(entities.User{ID: "u1", Email: "guest@x.com"}, nil)

		id, err := uc.Resolve(context.Background(), "ANON-tok-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !id.Anonymous {
			t.Fatalf("expected anonymous, got %+v", id)
		}
	})
}
