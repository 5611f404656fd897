package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/erkebulan/recipeshare/internal/domain"
	"github.com/erkebulan/recipeshare/internal/identity"
	"github.com/erkebulan/recipeshare/internal/metrics"
	"github.com/erkebulan/recipeshare/internal/repository"
	"github.com/erkebulan/recipeshare/internal/usecase"
	"github.com/gin-gonic/gin"
)

type recipeUsecaser interface {
	Create(ctx context.Context, input usecase.CreateRecipeInput) (*domain.Recipe, error)
	Get(ctx context.Context, id string) (*domain.Recipe, error)
	List(ctx context.Context) ([]*domain.Recipe, error)
	Update(ctx context.Context, id, ownerID string, input repository.UpdateRecipeInput) (*domain.Recipe, error)
	Delete(ctx context.Context, id, ownerID string) error
}

type RecipeHandler struct {
	recipeUsecase recipeUsecaser
	logger        *slog.Logger
}

func NewRecipeHandler(recipeUsecase recipeUsecaser, logger *slog.Logger) *RecipeHandler {
	return &RecipeHandler{
		recipeUsecase: recipeUsecase,
		logger:        logger.With("component", "recipe_handler"),
	}
}

// Field names mirror the public API contract, hence camelCase JSON.
type recipeResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Ingredients  []string  `json:"ingredients"`
	Instructions string    `json:"instructions"`
	CookingTime  *int      `json:"cookingTime,omitempty"`
	Servings     *int      `json:"servings,omitempty"`
	ImageURL     *string   `json:"imageURL,omitempty"`
	OwnerID      string    `json:"ownerId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toRecipeResponse(r *domain.Recipe) recipeResponse {
	return recipeResponse{
		ID:           r.ID,
		Title:        r.Title,
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
		CookingTime:  r.CookingTime,
		Servings:     r.Servings,
		ImageURL:     r.ImageURL,
		OwnerID:      r.OwnerID,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

type createRecipeRequest struct {
	Title        string   `json:"title"        binding:"required,min=3,max=200"`
	Ingredients  []string `json:"ingredients"  binding:"required,min=1,dive,required"`
	Instructions string   `json:"instructions" binding:"required,min=10"`
	CookingTime  *int     `json:"cookingTime"  binding:"omitempty,gt=0,max=600"`
	Servings     *int     `json:"servings"     binding:"omitempty,gt=0,max=50"`
	ImageURL     *string  `json:"imageURL"     binding:"omitempty,url"`
}

// POST /recipes
func (h *RecipeHandler) Create(c *gin.Context) {
	var req createRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindError(err)})
		return
	}

	recipe, err := h.recipeUsecase.Create(c.Request.Context(), usecase.CreateRecipeInput{
		OwnerID:      identity.UserID(c.Request.Context()),
		Title:        req.Title,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		CookingTime:  req.CookingTime,
		Servings:     req.Servings,
		ImageURL:     req.ImageURL,
	})
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "create recipe", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	metrics.RecipesCreatedTotal.Inc()
	c.JSON(http.StatusCreated, toRecipeResponse(recipe))
}

// GET /recipes — public.
func (h *RecipeHandler) List(c *gin.Context) {
	recipes, err := h.recipeUsecase.List(c.Request.Context())
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "list recipes", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	resp := make([]recipeResponse, len(recipes))
	for i, r := range recipes {
		resp[i] = toRecipeResponse(r)
	}
	c.JSON(http.StatusOK, resp)
}

// GET /recipes/:id — public.
func (h *RecipeHandler) Get(c *gin.Context) {
	id := c.Param("id")

	recipe, err := h.recipeUsecase.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errRecipeNotFound})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "get recipe", "recipe_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, toRecipeResponse(recipe))
}

type updateRecipeRequest struct {
	Title        *string  `json:"title"        binding:"omitempty,min=3,max=200"`
	Ingredients  []string `json:"ingredients"  binding:"omitempty,min=1,dive,required"`
	Instructions *string  `json:"instructions" binding:"omitempty,min=10"`
	CookingTime  *int     `json:"cookingTime"  binding:"omitempty,gt=0,max=600"`
	Servings     *int     `json:"servings"     binding:"omitempty,gt=0,max=50"`
	ImageURL     *string  `json:"imageURL"     binding:"omitempty,url"`
}

// PUT /recipes/:id
// Accepts any subset of mutable fields. A wrong owner and a missing id both
// produce the same 404 so ownership is never leaked.
func (h *RecipeHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req updateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindError(err)})
		return
	}

	recipe, err := h.recipeUsecase.Update(c.Request.Context(), id,
		identity.UserID(c.Request.Context()),
		repository.UpdateRecipeInput{
			Title:        req.Title,
			Ingredients:  req.Ingredients,
			Instructions: req.Instructions,
			CookingTime:  req.CookingTime,
			Servings:     req.Servings,
			ImageURL:     req.ImageURL,
		})
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errRecipeUnavailable})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "update recipe", "recipe_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, toRecipeResponse(recipe))
}

// DELETE /recipes/:id
func (h *RecipeHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	err := h.recipeUsecase.Delete(c.Request.Context(), id, identity.UserID(c.Request.Context()))
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errRecipeUnavailable})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "delete recipe", "recipe_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted successfully"})
}
