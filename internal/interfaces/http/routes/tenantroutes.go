package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/permission"
	"github.com/lexdoc-ai/lexdoc/internal/interfaces/http/handlers/accessrequest"
	"github.com/lexdoc-ai/lexdoc/internal/interfaces/http/handlers/member"
	"github.com/lexdoc-ai/lexdoc/internal/interfaces/http/handlers/tenant"
	"github.com/lexdoc-ai/lexdoc/internal/interfaces/http/middleware"
)

// TenantRouteConfig holds dependencies for office, membership and access
// request routes.
type TenantRouteConfig struct {
	TenantHandler        *tenant.Handler
	AccessRequestHandler *accessrequest.Handler
	MemberHandler        *member.Handler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupTenantRoutes(api *gin.RouterGroup, cfg *TenantRouteConfig) {
	perm := cfg.PermissionMiddleware

	// Onboarding and joining run before the caller has an office.
	api.POST("/tenants", cfg.AuthMiddleware.RequireAuth(), cfg.TenantHandler.Onboard)
	api.POST("/access-requests", cfg.AuthMiddleware.RequireAuth(), cfg.AccessRequestHandler.Submit)

	t := api.Group("/tenant")
	t.Use(cfg.AuthMiddleware.RequireAuth())
	{
		t.GET("", perm.RequirePermission(permission.ResourceTenant, permission.ActionRead), cfg.TenantHandler.Get)
		t.GET("/departments", perm.RequirePermission(permission.ResourceTenant, permission.ActionRead), cfg.TenantHandler.ListDepartments)

		t.PATCH("", perm.RequirePermission(permission.ResourceTenant, permission.ActionWrite), cfg.TenantHandler.UpdateCompanyData)
		t.PATCH("/ai-settings", perm.RequirePermission(permission.ResourceTenant, permission.ActionWrite), cfg.TenantHandler.UpdateAISettings)
		t.PATCH("/branding", perm.RequirePermission(permission.ResourceTenant, permission.ActionWrite), cfg.TenantHandler.UpdateBranding)
		t.POST("/logo", perm.RequirePermission(permission.ResourceTenant, permission.ActionWrite), cfg.TenantHandler.UploadLogo)
	}

	requests := api.Group("/access-requests")
	requests.Use(cfg.AuthMiddleware.RequireAuth())
	{
		requests.GET("/pending", perm.RequirePermission(permission.ResourceAccessRequest, permission.ActionRead), cfg.AccessRequestHandler.ListPending)
		requests.POST("/:id/approve", perm.RequirePermission(permission.ResourceAccessRequest, permission.ActionReview), cfg.AccessRequestHandler.Approve)
		requests.POST("/:id/reject", perm.RequirePermission(permission.ResourceAccessRequest, permission.ActionReview), cfg.AccessRequestHandler.Reject)
	}

	users := api.Group("/users")
	users.Use(cfg.AuthMiddleware.RequireAuth())
	{
		users.GET("", perm.RequirePermission(permission.ResourceUser, permission.ActionRead), cfg.MemberHandler.List)
		users.POST("", perm.RequirePermission(permission.ResourceUser, permission.ActionWrite), cfg.MemberHandler.Create)
		users.PATCH("/:id/role", perm.RequirePermission(permission.ResourceUser, permission.ActionWrite), cfg.MemberHandler.UpdateCargo)
		users.DELETE("/:id", perm.RequirePermission(permission.ResourceUser, permission.ActionDelete), cfg.MemberHandler.Delete)
	}
}
