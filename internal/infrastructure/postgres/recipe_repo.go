package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/erkebulan/recipeshare/internal/domain"
	"github.com/erkebulan/recipeshare/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RecipeRepository struct {
	pool *pgxpool.Pool
}

func NewRecipeRepository(pool *pgxpool.Pool) *RecipeRepository {
	return &RecipeRepository{pool: pool}
}

const recipeColumns = `id, title, ingredients, instructions, cooking_time,
	servings, image_url, owner_id, created_at, updated_at`

func (r *RecipeRepository) Create(ctx context.Context, recipe *domain.Recipe) (*domain.Recipe, error) {
	query := `
		INSERT INTO recipes (
			title, ingredients, instructions, cooking_time,
			servings, image_url, owner_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + recipeColumns

	row := r.pool.QueryRow(ctx, query,
		recipe.Title,
		recipe.Ingredients,
		recipe.Instructions,
		recipe.CookingTime,
		recipe.Servings,
		recipe.ImageURL,
		recipe.OwnerID,
	)
	return scanRecipe(row)
}

func (r *RecipeRepository) GetByID(ctx context.Context, id string) (*domain.Recipe, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipes WHERE id = $1`

	return scanRecipe(r.pool.QueryRow(ctx, query, id))
}

func (r *RecipeRepository) List(ctx context.Context) ([]*domain.Recipe, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipes ORDER BY created_at DESC, id DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()

	recipes := []*domain.Recipe{}
	for rows.Next() {
		rec, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, rec)
	}
	return recipes, rows.Err()
}

// Update applies a partial update scoped to id AND owner_id in one statement,
// so a wrong owner and a missing id are indistinguishable to the caller.
func (r *RecipeRepository) Update(ctx context.Context, id, ownerID string, input repository.UpdateRecipeInput) (*domain.Recipe, error) {
	args := []any{id, ownerID}
	set := []string{"updated_at = NOW()"}

	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if input.Title != nil {
		add("title", *input.Title)
	}
	if input.Ingredients != nil {
		add("ingredients", input.Ingredients)
	}
	if input.Instructions != nil {
		add("instructions", *input.Instructions)
	}
	if input.CookingTime != nil {
		add("cooking_time", *input.CookingTime)
	}
	if input.Servings != nil {
		add("servings", *input.Servings)
	}
	if input.ImageURL != nil {
		add("image_url", *input.ImageURL)
	}

	query := fmt.Sprintf(`
		UPDATE recipes
		SET    %s
		WHERE  id = $1 AND owner_id = $2
		RETURNING `+recipeColumns,
		strings.Join(set, ", "))

	return scanRecipe(r.pool.QueryRow(ctx, query, args...))
}

func (r *RecipeRepository) Delete(ctx context.Context, id, ownerID string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM recipes WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRecipeNotFound
	}
	return nil
}

// pgx.Row and pgx.Rows both implement this.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecipe(row rowScanner) (*domain.Recipe, error) {
	var rec domain.Recipe
	err := row.Scan(
		&rec.ID, &rec.Title, &rec.Ingredients, &rec.Instructions,
		&rec.CookingTime, &rec.Servings, &rec.ImageURL, &rec.OwnerID,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("scan recipe: %w", err)
	}
	return &rec, nil
}
