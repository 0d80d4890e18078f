package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/permission"
	"github.com/lexdoc-ai/lexdoc/internal/interfaces/http/handlers/legalcase"
	"github.com/lexdoc-ai/lexdoc/internal/interfaces/http/middleware"
)

type CaseRouteConfig struct {
	CaseHandler          *legalcase.Handler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupCaseRoutes(api *gin.RouterGroup, cfg *CaseRouteConfig) {
	perm := cfg.PermissionMiddleware

	cases := api.Group("/cases")
	cases.Use(cfg.AuthMiddleware.RequireAuth())
	{
		cases.GET("", perm.RequirePermission(permission.ResourceCase, permission.ActionRead), cfg.CaseHandler.List)
		cases.POST("", perm.RequirePermission(permission.ResourceCase, permission.ActionWrite), cfg.CaseHandler.Create)

		cases.GET("/:id", perm.RequirePermission(permission.ResourceCase, permission.ActionRead), cfg.CaseHandler.Get)
		cases.PATCH("/:id", perm.RequirePermission(permission.ResourceCase, permission.ActionWrite), cfg.CaseHandler.Update)
		cases.DELETE("/:id", perm.RequirePermission(permission.ResourceCase, permission.ActionDelete), cfg.CaseHandler.Delete)
	}
}
