package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/lexdoc-ai/lexdoc/internal/application/intake"
	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/application/sidechannel"
	"github.com/lexdoc-ai/lexdoc/internal/domain/shared/events"
	"github.com/lexdoc-ai/lexdoc/internal/domain/shared/services"
	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/auth"
	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/cache"
	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/config"
	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/llm"
	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/pdf"
	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/permission"
	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/storage"
	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/template"
	"github.com/lexdoc-ai/lexdoc/internal/interfaces/http/handlers/common"
	"github.com/lexdoc-ai/lexdoc/internal/interfaces/http/middleware"
	shareddb "github.com/lexdoc-ai/lexdoc/internal/shared/db"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
	"github.com/lexdoc-ai/lexdoc/internal/shared/services/markdown"
)

// Container holds all infrastructure components, repositories, use cases and
// handlers. It wires everything together and owns the background pieces
// stopped by Shutdown().
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	// Repositories
	repos *repositories

	// Use cases
	ucs *allUseCases

	// Handlers
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	rateLimiter          *middleware.RateLimiter

	// Auth and session
	jwtSvc          *auth.JWTService
	jwtService      *jwtServiceAdapter
	hasher          *auth.BcryptPasswordHasher
	sessionResolver *session.Resolver
	enforcer        *permission.Enforcer

	// Side effects
	txManager  *shareddb.TransactionManager
	dispatcher *events.InMemoryEventDispatcher
	sideChan   *sidechannel.Channel
	mailer     *sidechannel.Mailer

	// External services
	storage    *storage.MinioStorage
	extractor  *llm.GeminiExtractor
	llmRouter  *llm.Router
	prompts    *template.PromptCatalog
	exporter   *pdf.FilingExporter
	markdown   markdown.MarkdownService
	notifier   services.Notifier
	batchStore *cache.RedisBatchStore

	// Workflow
	uploadPolicy *intake.UploadPolicy
	agentMetrics *intake.AgentMetrics
	sse          *common.SSEStreamer
}

// NewContainer creates a new Container with all dependencies wired together.
// Sections run in order because each one consumes what the previous built.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	// Section 1: Infrastructure - Redis, Repositories, Side channel, Auth
	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	// Section 2: External services - Storage, LLM, Prompts, Rendering
	if err := c.initServices(); err != nil {
		c.Shutdown()
		return nil, err
	}

	// Section 3: Use cases
	c.initUseCases()

	// Section 4: Handlers
	c.initHandlers()

	return c, nil
}

// Shutdown stops the dispatcher, draining queued audit and email tasks, and
// closes Redis.
func (c *Container) Shutdown() {
	if c.dispatcher != nil {
		if err := c.dispatcher.Stop(); err != nil {
			c.log.Warnw("failed to stop event dispatcher", "error", err)
		}
	}

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}

func wrapInit(component string, err error) error {
	return fmt.Errorf("failed to initialize %s: %w", component, err)
}
