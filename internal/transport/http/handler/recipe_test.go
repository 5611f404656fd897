package handler_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/erkebulan/recipeshare/internal/domain"
	"github.com/erkebulan/recipeshare/internal/identity"
	"github.com/erkebulan/recipeshare/internal/repository"
	"github.com/erkebulan/recipeshare/internal/transport/http/handler"
	"github.com/erkebulan/recipeshare/internal/usecase"
	"github.com/gin-gonic/gin"
)

type fakeRecipeUsecase struct {
	create func(ctx context.Context, input usecase.CreateRecipeInput) (*domain.Recipe, error)
	get    func(ctx context.Context, id string) (*domain.Recipe, error)
	list   func(ctx context.Context) ([]*domain.Recipe, error)
	update func(ctx context.Context, id, ownerID string, input repository.UpdateRecipeInput) (*domain.Recipe, error)
	delete func(ctx context.Context, id, ownerID string) error
}

func (f *fakeRecipeUsecase) Create(ctx context.Context, input usecase.CreateRecipeInput) (*domain.Recipe, error) {
	return f.create(ctx, input)
}

func (f *fakeRecipeUsecase) Get(ctx context.Context, id string) (*domain.Recipe, error) {
	return f.get(ctx, id)
}

func (f *fakeRecipeUsecase) List(ctx context.Context) ([]*domain.Recipe, error) {
	return f.list(ctx)
}

func (f *fakeRecipeUsecase) Update(ctx context.Context, id, ownerID string, input repository.UpdateRecipeInput) (*domain.Recipe, error) {
	return f.update(ctx, id, ownerID, input)
}

func (f *fakeRecipeUsecase) Delete(ctx context.Context, id, ownerID string) error {
	return f.delete(ctx, id, ownerID)
}

// asUser stands in for the auth middleware and injects an identity.
func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(identity.WithUserID(c.Request.Context(), userID))
		c.Next()
	}
}

func newRecipeEngine(uc *fakeRecipeUsecase, userID string) *gin.Engine {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	h := handler.NewRecipeHandler(uc, logger)

	r := gin.New()
	r.GET("/recipes", h.List)
	r.GET("/recipes/:id", h.Get)
	r.POST("/recipes", asUser(userID), h.Create)
	r.PUT("/recipes/:id", asUser(userID), h.Update)
	r.DELETE("/recipes/:id", asUser(userID), h.Delete)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// ---- Create ----

func TestCreateRecipe_ValidationFailure_Returns400WithFieldDetail(t *testing.T) {
	r := newRecipeEngine(&fakeRecipeUsecase{}, "user-a")
	w := doJSON(t, r, http.MethodPost, "/recipes",
		`{"title":"ab","ingredients":[],"instructions":"too short"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var resp struct {
		Error map[string]string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	for _, field := range []string{"Title", "Ingredients", "Instructions"} {
		if resp.Error[field] == "" {
			t.Errorf("missing detail for field %s, got %v", field, resp.Error)
		}
	}
}

func TestCreateRecipe_BadImageURL_Returns400(t *testing.T) {
	r := newRecipeEngine(&fakeRecipeUsecase{}, "user-a")
	w := doJSON(t, r, http.MethodPost, "/recipes",
		`{"title":"Soup","ingredients":["water","salt"],"instructions":"Boil water, add salt, simmer 10 minutes.","imageURL":"not-a-url"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCreateRecipe_Success_Returns201WithOwner(t *testing.T) {
	uc := &fakeRecipeUsecase{
		create: func(_ context.Context, input usecase.CreateRecipeInput) (*domain.Recipe, error) {
			return &domain.Recipe{
				ID:           "recipe-1",
				Title:        input.Title,
				Ingredients:  input.Ingredients,
				Instructions: input.Instructions,
				OwnerID:      input.OwnerID,
			}, nil
		},
	}
	r := newRecipeEngine(uc, "user-a")
	w := doJSON(t, r, http.MethodPost, "/recipes",
		`{"title":"Soup","ingredients":["water","salt"],"instructions":"Boil water, add salt, simmer 10 minutes."}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}

	var resp struct {
		ID      string `json:"id"`
		Title   string `json:"title"`
		OwnerID string `json:"ownerId"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if resp.ID == "" || resp.Title != "Soup" || resp.OwnerID != "user-a" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

// ---- Get / List ----

func TestGetRecipe_NotFound_Returns404(t *testing.T) {
	uc := &fakeRecipeUsecase{
		get: func(_ context.Context, _ string) (*domain.Recipe, error) {
			return nil, domain.ErrRecipeNotFound
		},
	}
	w := doJSON(t, newRecipeEngine(uc, ""), http.MethodGet, "/recipes/missing", "")

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestGetRecipe_Found_Returns200(t *testing.T) {
	uc := &fakeRecipeUsecase{
		get: func(_ context.Context, id string) (*domain.Recipe, error) {
			return &domain.Recipe{ID: id, Title: "Soup", OwnerID: "user-a"}, nil
		},
	}
	w := doJSON(t, newRecipeEngine(uc, ""), http.MethodGet, "/recipes/recipe-1", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"title":"Soup"`) {
		t.Errorf("body %q lacks recipe", w.Body.String())
	}
}

func TestListRecipes_Empty_ReturnsEmptyArray(t *testing.T) {
	uc := &fakeRecipeUsecase{
		list: func(_ context.Context) ([]*domain.Recipe, error) {
			return []*domain.Recipe{}, nil
		},
	}
	w := doJSON(t, newRecipeEngine(uc, ""), http.MethodGet, "/recipes", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if strings.TrimSpace(w.Body.String()) != "[]" {
		t.Errorf("body = %q, want []", w.Body.String())
	}
}

// ---- Update / Delete ----

func TestUpdateRecipe_WrongOwnerOrMissing_Returns404(t *testing.T) {
	uc := &fakeRecipeUsecase{
		update: func(_ context.Context, _, _ string, _ repository.UpdateRecipeInput) (*domain.Recipe, error) {
			return nil, domain.ErrRecipeNotFound
		},
	}
	w := doJSON(t, newRecipeEngine(uc, "user-b"), http.MethodPut, "/recipes/recipe-1",
		`{"title":"Hijacked Soup"}`)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Recipe not found or unauthorized") {
		t.Errorf("body %q must not distinguish ownership from absence", w.Body.String())
	}
}

func TestUpdateRecipe_PartialPayload_Returns200(t *testing.T) {
	var captured repository.UpdateRecipeInput
	uc := &fakeRecipeUsecase{
		update: func(_ context.Context, id, ownerID string, input repository.UpdateRecipeInput) (*domain.Recipe, error) {
			captured = input
			return &domain.Recipe{ID: id, Title: *input.Title, OwnerID: ownerID}, nil
		},
	}
	w := doJSON(t, newRecipeEngine(uc, "user-a"), http.MethodPut, "/recipes/recipe-1",
		`{"title":"Better Soup"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if captured.Title == nil || *captured.Title != "Better Soup" {
		t.Error("title was not forwarded")
	}
	if captured.Instructions != nil || captured.Ingredients != nil {
		t.Error("absent fields must stay nil in a partial update")
	}
}

func TestDeleteRecipe_WrongOwnerOrMissing_Returns404(t *testing.T) {
	uc := &fakeRecipeUsecase{
		delete: func(_ context.Context, _, _ string) error {
			return domain.ErrRecipeNotFound
		},
	}
	w := doJSON(t, newRecipeEngine(uc, "user-b"), http.MethodDelete, "/recipes/recipe-1", "")

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestDeleteRecipe_Success_ReturnsConfirmation(t *testing.T) {
	var gotID, gotOwner string
	uc := &fakeRecipeUsecase{
		delete: func(_ context.Context, id, ownerID string) error {
			gotID, gotOwner = id, ownerID
			return nil
		},
	}
	w := doJSON(t, newRecipeEngine(uc, "user-a"), http.MethodDelete, "/recipes/recipe-1", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Recipe deleted successfully") {
		t.Errorf("body %q lacks confirmation message", w.Body.String())
	}
	if gotID != "recipe-1" || gotOwner != "user-a" {
		t.Errorf("delete called with (%q, %q), want (recipe-1, user-a)", gotID, gotOwner)
	}
}
