package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lexdoc-ai/lexdoc/internal/interfaces/http/handlers"
	"github.com/lexdoc-ai/lexdoc/internal/interfaces/http/middleware"
)

// Rate limit scopes.
const (
	ScopeAuth   = "auth"
	ScopeUpload = "upload"
	ScopeLLM    = "llm"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter
}

// SetupAuthRoutes configures authentication routes. /auth/me works for
// users that do not belong to an office yet.
func SetupAuthRoutes(api *gin.RouterGroup, cfg *AuthRouteConfig) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", cfg.RateLimiter.Limit(ScopeAuth), cfg.AuthHandler.Register)
		auth.POST("/login", cfg.RateLimiter.Limit(ScopeAuth), cfg.AuthHandler.Login)
		auth.POST("/refresh", cfg.RateLimiter.Limit(ScopeAuth), cfg.AuthHandler.RefreshToken)

		auth.GET("/me", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.GetCurrentUser)
		auth.PATCH("/me", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.UpdateProfile)
	}
}
