package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/erkebulan/recipeshare/internal/auth"
	"github.com/erkebulan/recipeshare/internal/domain"
	"github.com/erkebulan/recipeshare/internal/repository"
)

type AuthUsecase struct {
	users  repository.UserRepository
	tokens *auth.TokenManager
}

func NewAuthUsecase(users repository.UserRepository, tokens *auth.TokenManager) *AuthUsecase {
	return &AuthUsecase{users: users, tokens: tokens}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Register hashes the password and creates the user. Uniqueness of email and
// username is enforced by the database, so concurrent registrations cannot
// both succeed.
func (u *AuthUsecase) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user, err := u.users.Create(ctx, input.Username, input.Email, hash)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) || errors.Is(err, domain.ErrUsernameTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login verifies the credentials and returns a signed bearer token. A missing
// user and a wrong password both surface as ErrInvalidCredentials.
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
