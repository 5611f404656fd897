package httptransport

import (
	"log/slog"

	"github.com/erkebulan/recipeshare/internal/auth"
	"github.com/erkebulan/recipeshare/internal/transport/http/handler"
	"github.com/erkebulan/recipeshare/internal/transport/http/middleware"
	"github.com/gin-gonic/gin"

	sloggin "github.com/samber/slog-gin"
)

func NewRouter(logger *slog.Logger, authHandler *handler.AuthHandler, recipeHandler *handler.RecipeHandler, tokens *auth.TokenManager) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())

	authMW := middleware.Auth(tokens)

	// Public auth routes
	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)

	// Recipe reads are public
	r.GET("/recipes", recipeHandler.List)
	r.GET("/recipes/:id", recipeHandler.Get)

	// Recipe writes require a valid bearer token
	protected := r.Group("/recipes", authMW)
	protected.POST("", recipeHandler.Create)
	protected.PUT("/:id", recipeHandler.Update)
	protected.DELETE("/:id", recipeHandler.Delete)

	return r
}
