package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/permission"
	"github.com/lexdoc-ai/lexdoc/internal/interfaces/http/handlers/document"
	"github.com/lexdoc-ai/lexdoc/internal/interfaces/http/handlers/filing"
	"github.com/lexdoc-ai/lexdoc/internal/interfaces/http/middleware"
)

// DocumentRouteConfig holds dependencies for the intake workflow and the
// filings it produces.
type DocumentRouteConfig struct {
	DocumentHandler      *document.Handler
	FilingHandler        *filing.Handler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	RateLimiter          *middleware.RateLimiter
	MaxUploadBytes       int64
}

func SetupDocumentRoutes(api *gin.RouterGroup, cfg *DocumentRouteConfig) {
	perm := cfg.PermissionMiddleware

	documents := api.Group("/documents")
	documents.Use(cfg.AuthMiddleware.RequireAuth())
	{
		documents.POST("",
			perm.RequirePermission(permission.ResourceDocument, permission.ActionWrite),
			cfg.RateLimiter.Limit(ScopeUpload),
			middleware.MaxBodySize(cfg.MaxUploadBytes),
			cfg.DocumentHandler.Intake)
		documents.GET("", perm.RequirePermission(permission.ResourceDocument, permission.ActionRead), cfg.DocumentHandler.List)

		documents.POST("/:id/filings",
			perm.RequirePermission(permission.ResourceFiling, permission.ActionWrite),
			cfg.RateLimiter.Limit(ScopeLLM),
			cfg.DocumentHandler.GenerateFiling)

		documents.GET("/:id", perm.RequirePermission(permission.ResourceDocument, permission.ActionRead), cfg.DocumentHandler.Get)
		documents.DELETE("/:id", perm.RequirePermission(permission.ResourceDocument, permission.ActionDelete), cfg.DocumentHandler.Delete)
	}

	filings := api.Group("/filings")
	filings.Use(cfg.AuthMiddleware.RequireAuth())
	{
		filings.GET("", perm.RequirePermission(permission.ResourceFiling, permission.ActionRead), cfg.FilingHandler.List)

		filings.POST("/:id/link-case", perm.RequirePermission(permission.ResourceFiling, permission.ActionWrite), cfg.FilingHandler.LinkCase)
		filings.POST("/:id/case", perm.RequirePermission(permission.ResourceCase, permission.ActionWrite), cfg.FilingHandler.CreateCase)
		filings.GET("/:id/pdf", perm.RequirePermission(permission.ResourceFiling, permission.ActionRead), cfg.FilingHandler.ExportPDF)

		filings.GET("/:id", perm.RequirePermission(permission.ResourceFiling, permission.ActionRead), cfg.FilingHandler.Get)
		filings.PATCH("/:id", perm.RequirePermission(permission.ResourceFiling, permission.ActionWrite), cfg.FilingHandler.Update)
		filings.DELETE("/:id", perm.RequirePermission(permission.ResourceFiling, permission.ActionDelete), cfg.FilingHandler.Delete)
	}
}
