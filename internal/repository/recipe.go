package repository

import (
	"context"

	"github.com/erkebulan/recipeshare/internal/domain"
)

// UpdateRecipeInput carries a partial update. Nil fields are left untouched.
type UpdateRecipeInput struct {
	Title        *string
	Ingredients  []string
	Instructions *string
	CookingTime  *int
	Servings     *int
	ImageURL     *string
}

type RecipeRepository interface {
	Create(ctx context.Context, recipe *domain.Recipe) (*domain.Recipe, error)
	GetByID(ctx context.Context, id string) (*domain.Recipe, error)
	List(ctx context.Context) ([]*domain.Recipe, error)

	// Update and Delete are ownership-scoped: they match id AND ownerID and
	// report domain.ErrRecipeNotFound when no row matches either way.
	Update(ctx context.Context, id, ownerID string, input UpdateRecipeInput) (*domain.Recipe, error)
	Delete(ctx context.Context, id, ownerID string) error
}
