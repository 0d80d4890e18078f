package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/permission"
	"github.com/lexdoc-ai/lexdoc/internal/interfaces/http/handlers/agent"
	"github.com/lexdoc-ai/lexdoc/internal/interfaces/http/middleware"
)

type AgentRouteConfig struct {
	AgentHandler         *agent.Handler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	RateLimiter          *middleware.RateLimiter
	MaxUploadBytes       int64
}

func SetupAgentRoutes(api *gin.RouterGroup, cfg *AgentRouteConfig) {
	perm := cfg.PermissionMiddleware

	agents := api.Group("/agents")
	agents.Use(cfg.AuthMiddleware.RequireAuth())
	{
		agents.GET("", perm.RequirePermission(permission.ResourceAgent, permission.ActionRead), cfg.AgentHandler.List)
		agents.POST("", perm.RequirePermission(permission.ResourceAgent, permission.ActionWrite), cfg.AgentHandler.Create)

		agents.POST("/:id/toggle", perm.RequirePermission(permission.ResourceAgent, permission.ActionWrite), cfg.AgentHandler.Toggle)
		agents.POST("/:id/test",
			perm.RequirePermission(permission.ResourceAgent, permission.ActionTest),
			cfg.RateLimiter.Limit(ScopeLLM),
			middleware.MaxBodySize(cfg.MaxUploadBytes),
			cfg.AgentHandler.Test)

		agents.GET("/:id", perm.RequirePermission(permission.ResourceAgent, permission.ActionRead), cfg.AgentHandler.Get)
		agents.PATCH("/:id", perm.RequirePermission(permission.ResourceAgent, permission.ActionWrite), cfg.AgentHandler.Update)
		agents.DELETE("/:id", perm.RequirePermission(permission.ResourceAgent, permission.ActionDelete), cfg.AgentHandler.Delete)
	}
}
