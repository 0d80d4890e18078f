package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lexdoc-ai/lexdoc/internal/shared/utils"
	"github.com/lexdoc-ai/lexdoc/internal/shared/version"
)

const healthCheckTimeout = 2 * time.Second

// HealthChecker pings one backing service.
type HealthChecker interface {
	Name() string
	Check(ctx context.Context) error
}

// CheckFunc adapts a plain function to HealthChecker.
type CheckFunc struct {
	Service string
	Fn      func(ctx context.Context) error
}

func (f CheckFunc) Name() string                    { return f.Service }
func (f CheckFunc) Check(ctx context.Context) error { return f.Fn(ctx) }

type HealthHandler struct {
	checks []HealthChecker
}

func NewHealthHandler(checks ...HealthChecker) *HealthHandler {
	return &HealthHandler{checks: checks}
}

// HealthCheck handles GET /health
// @Summary Service health
// @Tags system
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	services := make(map[string]string, len(h.checks))
	healthy := true
	for _, check := range h.checks {
		if err := check.Check(ctx); err != nil {
			services[check.Name()] = "down: " + err.Error()
			healthy = false
			continue
		}
		services[check.Name()] = "up"
	}

	status, code := "healthy", http.StatusOK
	if !healthy {
		status, code = "degraded", http.StatusServiceUnavailable
	}

	utils.SuccessResponse(c, code, status, gin.H{
		"status":   status,
		"version":  version.Version,
		"services": services,
	})
}
