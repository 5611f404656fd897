package usecase

import (
	"context"
	"fmt"

	"github.com/erkebulan/recipeshare/internal/domain"
	"github.com/erkebulan/recipeshare/internal/repository"
	"github.com/google/uuid"
)

type RecipeUsecase struct {
	repo repository.RecipeRepository
}

func NewRecipeUsecase(repo repository.RecipeRepository) *RecipeUsecase {
	return &RecipeUsecase{repo: repo}
}

type CreateRecipeInput struct {
	OwnerID      string
	Title        string
	Ingredients  []string
	Instructions string
	CookingTime  *int
	Servings     *int
	ImageURL     *string
}

func (u *RecipeUsecase) Create(ctx context.Context, input CreateRecipeInput) (*domain.Recipe, error) {
	recipe := &domain.Recipe{
		Title:        input.Title,
		Ingredients:  input.Ingredients,
		Instructions: input.Instructions,
		CookingTime:  input.CookingTime,
		Servings:     input.Servings,
		ImageURL:     input.ImageURL,
		OwnerID:      input.OwnerID,
	}

	created, err := u.repo.Create(ctx, recipe)
	if err != nil {
		return nil, fmt.Errorf("create recipe: %w", err)
	}
	return created, nil
}

func (u *RecipeUsecase) Get(ctx context.Context, id string) (*domain.Recipe, error) {
	if uuid.Validate(id) != nil {
		return nil, domain.ErrRecipeNotFound
	}
	return u.repo.GetByID(ctx, id)
}

func (u *RecipeUsecase) List(ctx context.Context) ([]*domain.Recipe, error) {
	recipes, err := u.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	return recipes, nil
}

// Update applies a partial update on behalf of ownerID. A recipe owned by
// someone else is reported as not found, same as a missing id.
func (u *RecipeUsecase) Update(ctx context.Context, id, ownerID string, input repository.UpdateRecipeInput) (*domain.Recipe, error) {
	if uuid.Validate(id) != nil {
		return nil, domain.ErrRecipeNotFound
	}
	return u.repo.Update(ctx, id, ownerID, input)
}

func (u *RecipeUsecase) Delete(ctx context.Context, id, ownerID string) error {
	if uuid.Validate(id) != nil {
		return domain.ErrRecipeNotFound
	}
	return u.repo.Delete(ctx, id, ownerID)
}
