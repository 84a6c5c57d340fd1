package usecase

import (
	"context"
	"errors"
	"strings"

	"talent-hub/internal/pkg/jwt"
	"talent-hub/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type LoginInput struct {
	Email    string
	Password string
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type AuthUsecase interface {
	Login(ctx context.Context, in LoginInput) (TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
}

type Auth struct {
	admins repository.AdminRepository
	tokens jwt.Service
}

func NewAuthUsecase(admins repository.AdminRepository, tokens jwt.Service) *Auth {
	return &Auth{admins: admins, tokens: tokens}
}

func (u *Auth) Login(ctx context.Context, in LoginInput) (TokenPair, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return TokenPair{}, ErrInvalidCredentials
	}

	a, err := u.admins.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return TokenPair{}, ErrInvalidCredentials
		}
		return TokenPair{}, ErrInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(in.Password)) != nil {
		return TokenPair{}, ErrInvalidCredentials
	}

	return u.issue(a.ID, a.Email)
}

// Refresh trades a valid refresh token for a fresh pair. Refresh tokens carry
// only the admin id, so the admin record is looked up again; a token for a
// deleted admin is rejected.
func (u *Auth) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := u.tokens.ValidateToken(refreshToken)
	if err != nil {
		return TokenPair{}, ErrInvalidCredentials
	}
	if !u.tokens.IsRefreshToken(claims) {
		return TokenPair{}, ErrInvalidCredentials
	}

	a, err := u.admins.GetByID(ctx, claims.AdminID)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return TokenPair{}, ErrInvalidCredentials
		}
		return TokenPair{}, ErrInternal
	}
	return u.issue(a.ID, a.Email)
}

func (u *Auth) issue(adminID uuid.UUID, email string) (TokenPair, error) {
	access, err := u.tokens.GenerateAccessToken(adminID, email)
	if err != nil {
		return TokenPair{}, ErrInternal
	}
	refresh, err := u.tokens.GenerateRefreshToken(adminID)
	if err != nil {
		return TokenPair{}, ErrInternal
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
