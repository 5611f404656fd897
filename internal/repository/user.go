package repository

import (
	"context"

	"github.com/erkebulan/recipeshare/internal/domain"
)

// Usecases depend on interfaces, not concrete implementations, so the
// database can be swapped and tests can inject fakes.
type UserRepository interface {
	Create(ctx context.Context, username, email, passwordHash string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
