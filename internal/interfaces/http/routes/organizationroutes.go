package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/permission"
	"github.com/lexdoc-ai/lexdoc/internal/interfaces/http/handlers"
	"github.com/lexdoc-ai/lexdoc/internal/interfaces/http/handlers/organization"
	"github.com/lexdoc-ai/lexdoc/internal/interfaces/http/middleware"
)

type OrganizationRouteConfig struct {
	OrganizationHandler  *organization.Handler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	RateLimiter          *middleware.RateLimiter
	// MaxBatchBytes bounds the whole multipart body of a batch.
	MaxBatchBytes int64
}

func SetupOrganizationRoutes(api *gin.RouterGroup, cfg *OrganizationRouteConfig) {
	perm := cfg.PermissionMiddleware

	docs := api.Group("/organized-documents")
	docs.Use(cfg.AuthMiddleware.RequireAuth())
	{
		docs.GET("", perm.RequirePermission(permission.ResourceOrganization, permission.ActionRead), cfg.OrganizationHandler.List)

		docs.POST("/batches",
			perm.RequirePermission(permission.ResourceOrganization, permission.ActionWrite),
			cfg.RateLimiter.Limit(ScopeUpload),
			middleware.MaxBodySize(cfg.MaxBatchBytes),
			cfg.OrganizationHandler.StartBatch)
		docs.GET("/batches/:id", perm.RequirePermission(permission.ResourceOrganization, permission.ActionRead), cfg.OrganizationHandler.GetBatch)
		docs.GET("/batches/:id/events", perm.RequirePermission(permission.ResourceOrganization, permission.ActionRead), cfg.OrganizationHandler.Events)
	}
}

type DashboardRouteConfig struct {
	DashboardHandler     *handlers.DashboardHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupDashboardRoutes(api *gin.RouterGroup, cfg *DashboardRouteConfig) {
	perm := cfg.PermissionMiddleware

	api.GET("/dashboard",
		cfg.AuthMiddleware.RequireAuth(),
		perm.RequirePermission(permission.ResourceDashboard, permission.ActionRead),
		cfg.DashboardHandler.GetDashboard)
	api.GET("/audit-logs",
		cfg.AuthMiddleware.RequireAuth(),
		perm.RequirePermission(permission.ResourceAudit, permission.ActionRead),
		cfg.DashboardHandler.ListAuditLogs)
}
