package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/config"
	"github.com/lexdoc-ai/lexdoc/internal/interfaces/http/middleware"
	"github.com/lexdoc-ai/lexdoc/internal/interfaces/http/routes"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
	"github.com/lexdoc-ai/lexdoc/internal/shared/utils"

	_ "github.com/lexdoc-ai/lexdoc/docs"
)

const (
	apiPrefix                 = "/api/v1"
	defaultOrganizeBatchLimit = 20
)

// Router represents the HTTP router configuration
type Router struct {
	*Container
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	c, err := NewContainer(db, cfg, log)
	if err != nil {
		return nil, err
	}
	return &Router{Container: c}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes(cfg *config.Config) {
	utils.RegisterGinValidators()

	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())
	r.engine.Use(middleware.APIVersion())

	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.engine.GET("/health", r.hdlrs.healthHandler.HealthCheck)

	api := r.engine.Group(apiPrefix)
	h := r.hdlrs
	maxUpload := r.uploadPolicy.MaxBytes()

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler:    h.authHandler,
		AuthMiddleware: r.authMiddleware,
		RateLimiter:    r.rateLimiter,
	})

	routes.SetupTenantRoutes(api, &routes.TenantRouteConfig{
		TenantHandler:        h.tenantHandler,
		AccessRequestHandler: h.accessRequestHandler,
		MemberHandler:        h.memberHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})

	routes.SetupCaseRoutes(api, &routes.CaseRouteConfig{
		CaseHandler:          h.caseHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})

	routes.SetupDocumentRoutes(api, &routes.DocumentRouteConfig{
		DocumentHandler:      h.documentHandler,
		FilingHandler:        h.filingHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
		RateLimiter:          r.rateLimiter,
		MaxUploadBytes:       maxUpload,
	})

	routes.SetupAgentRoutes(api, &routes.AgentRouteConfig{
		AgentHandler:         h.agentHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
		RateLimiter:          r.rateLimiter,
		MaxUploadBytes:       maxUpload,
	})

	routes.SetupOrganizationRoutes(api, &routes.OrganizationRouteConfig{
		OrganizationHandler:  h.organizationHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
		RateLimiter:          r.rateLimiter,
		MaxBatchBytes:        maxUpload * int64(batchLimit(cfg)),
	})

	routes.SetupDashboardRoutes(api, &routes.DashboardRouteConfig{
		DashboardHandler:     h.dashboardHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}

func batchLimit(cfg *config.Config) int {
	if cfg.Workflow.OrganizeBatchLimit > 0 {
		return cfg.Workflow.OrganizeBatchLimit
	}
	return defaultOrganizeBatchLimit
}
