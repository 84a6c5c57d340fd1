package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"talent-hub/internal/domain/admin"
	"talent-hub/internal/pkg/jwt"
	"talent-hub/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func newAuthEnv(t *testing.T) (*Auth, jwt.Service) {
	t.Helper()

	store, err := repository.Open(context.Background(), &memoryBackend{}, nil)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	admins := repository.NewSnapshotAdminRepository(store)
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2!"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	err = admins.Create(context.Background(), admin.Admin{
		ID:           uuid.New(),
		Email:        "admin@example.com",
		PasswordHash: string(hash),
	})
	if err != nil {
		t.Fatalf("create admin: %v", err)
	}

	tokens := jwt.NewHMACService("access-secret", "refresh-secret", time.Minute, time.Hour)
	return NewAuthUsecase(admins, tokens), tokens
}

func TestLogin(t *testing.T) {
	a, tokens := newAuthEnv(t)
	ctx := context.Background()

	pair, err := a.Login(ctx, LoginInput{Email: "Admin@Example.com", Password: "hunter2!"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("expected both tokens")
	}

	claims, err := tokens.ValidateToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("validate access token: %v", err)
	}
	if claims.Email != "admin@example.com" || tokens.IsRefreshToken(claims) {
		t.Fatalf("unexpected access claims: %+v", claims)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	a, _ := newAuthEnv(t)
	ctx := context.Background()

	if _, err := a.Login(ctx, LoginInput{Email: "admin@example.com", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := a.Login(ctx, LoginInput{Email: "nobody@example.com", Password: "hunter2!"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRefresh(t *testing.T) {
	a, tokens := newAuthEnv(t)
	ctx := context.Background()

	pair, err := a.Login(ctx, LoginInput{Email: "admin@example.com", Password: "hunter2!"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	next, err := a.Refresh(ctx, pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if next.AccessToken == "" || next.RefreshToken == "" {
		t.Fatal("expected a fresh pair")
	}
	claims, err := tokens.ValidateToken(next.AccessToken)
	if err != nil {
		t.Fatalf("validate refreshed access token: %v", err)
	}
	if claims.Email != "admin@example.com" {
		t.Fatalf("refreshed token lost the email claim: %+v", claims)
	}

	// An access token must not pass as a refresh token.
	if _, err := a.Refresh(ctx, pair.AccessToken); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := a.Refresh(ctx, "garbage"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
