package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/erkebulan/recipeshare/internal/domain"
	"github.com/erkebulan/recipeshare/internal/repository"
	"github.com/erkebulan/recipeshare/internal/usecase"
)

type fakeRecipeRepo struct {
	create  func(ctx context.Context, recipe *domain.Recipe) (*domain.Recipe, error)
	getByID func(ctx context.Context, id string) (*domain.Recipe, error)
	list    func(ctx context.Context) ([]*domain.Recipe, error)
	update  func(ctx context.Context, id, ownerID string, input repository.UpdateRecipeInput) (*domain.Recipe, error)
	delete  func(ctx context.Context, id, ownerID string) error
}

func (r *fakeRecipeRepo) Create(ctx context.Context, recipe *domain.Recipe) (*domain.Recipe, error) {
	return r.create(ctx, recipe)
}

func (r *fakeRecipeRepo) GetByID(ctx context.Context, id string) (*domain.Recipe, error) {
	return r.getByID(ctx, id)
}

func (r *fakeRecipeRepo) List(ctx context.Context) ([]*domain.Recipe, error) {
	return r.list(ctx)
}

func (r *fakeRecipeRepo) Update(ctx context.Context, id, ownerID string, input repository.UpdateRecipeInput) (*domain.Recipe, error) {
	return r.update(ctx, id, ownerID, input)
}

func (r *fakeRecipeRepo) Delete(ctx context.Context, id, ownerID string) error {
	return r.delete(ctx, id, ownerID)
}

const validRecipeID = "7be6cbcb-7c0b-4a9e-b9b9-0d2f1a2b3c4d"

func TestCreateRecipe_StampsOwner(t *testing.T) {
	var captured *domain.Recipe
	repo := &fakeRecipeRepo{
		create: func(_ context.Context, recipe *domain.Recipe) (*domain.Recipe, error) {
			captured = recipe
			out := *recipe
			out.ID = validRecipeID
			return &out, nil
		},
	}

	created, err := usecase.NewRecipeUsecase(repo).Create(context.Background(), usecase.CreateRecipeInput{
		OwnerID:      "user-a",
		Title:        "Soup",
		Ingredients:  []string{"water", "salt"},
		Instructions: "Boil water, add salt, simmer 10 minutes.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if captured.OwnerID != "user-a" {
		t.Errorf("persisted OwnerID = %q, want user-a", captured.OwnerID)
	}
	if created.ID != validRecipeID {
		t.Errorf("created.ID = %q, want assigned id", created.ID)
	}
}

func TestGetRecipe_NonUUID_IsNotFoundWithoutRepoCall(t *testing.T) {
	repo := &fakeRecipeRepo{
		getByID: func(_ context.Context, _ string) (*domain.Recipe, error) {
			t.Fatal("repo must not be called for a malformed id")
			return nil, nil
		},
	}

	_, err := usecase.NewRecipeUsecase(repo).Get(context.Background(), "not-a-uuid")
	if !errors.Is(err, domain.ErrRecipeNotFound) {
		t.Errorf("want ErrRecipeNotFound, got %v", err)
	}
}

func TestUpdateRecipe_ScopesToOwner(t *testing.T) {
	var gotID, gotOwner string
	repo := &fakeRecipeRepo{
		update: func(_ context.Context, id, ownerID string, _ repository.UpdateRecipeInput) (*domain.Recipe, error) {
			gotID, gotOwner = id, ownerID
			return &domain.Recipe{ID: id, OwnerID: ownerID}, nil
		},
	}

	title := "Better Soup"
	_, err := usecase.NewRecipeUsecase(repo).Update(context.Background(), validRecipeID, "user-a",
		repository.UpdateRecipeInput{Title: &title})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotID != validRecipeID || gotOwner != "user-a" {
		t.Errorf("repo called with (%q, %q), want (%q, user-a)", gotID, gotOwner, validRecipeID)
	}
}

func TestUpdateRecipe_WrongOwner_NotFound(t *testing.T) {
	repo := &fakeRecipeRepo{
		update: func(_ context.Context, _, _ string, _ repository.UpdateRecipeInput) (*domain.Recipe, error) {
			return nil, domain.ErrRecipeNotFound
		},
	}

	_, err := usecase.NewRecipeUsecase(repo).Update(context.Background(), validRecipeID, "user-b",
		repository.UpdateRecipeInput{})
	if !errors.Is(err, domain.ErrRecipeNotFound) {
		t.Errorf("want ErrRecipeNotFound, got %v", err)
	}
}

func TestDeleteRecipe_NonUUID_IsNotFound(t *testing.T) {
	repo := &fakeRecipeRepo{
		delete: func(_ context.Context, _, _ string) error {
			t.Fatal("repo must not be called for a malformed id")
			return nil
		},
	}

	err := usecase.NewRecipeUsecase(repo).Delete(context.Background(), "42", "user-a")
	if !errors.Is(err, domain.ErrRecipeNotFound) {
		t.Errorf("want ErrRecipeNotFound, got %v", err)
	}
}
