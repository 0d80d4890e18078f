package http

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lexdoc-ai/lexdoc/internal/application/intake"
	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/application/sidechannel"
	"github.com/lexdoc-ai/lexdoc/internal/domain/shared/events"
	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/auth"
	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/cache"
	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/config"
	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/email"
	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/llm"
	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/pdf"
	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/permission"
	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/ratelimit"
	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/storage"
	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/template"
	"github.com/lexdoc-ai/lexdoc/internal/interfaces/http/handlers/common"
	"github.com/lexdoc-ai/lexdoc/internal/interfaces/http/middleware"
	shareddb "github.com/lexdoc-ai/lexdoc/internal/shared/db"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
	"github.com/lexdoc-ai/lexdoc/internal/shared/services/markdown"
)

const (
	eventBufferSize     = 256
	ssePollInterval     = time.Second
	bucketCheckTimeout  = 10 * time.Second
	defaultSessionTTL   = 30 * time.Minute
	defaultBatchTTL     = 24 * time.Hour
	defaultRateWindow   = time.Minute
	defaultRateRequests = 60
)

// initInfrastructure sets up Redis, repositories, the side channel, auth and
// the middlewares that depend on them.
func (c *Container) initInfrastructure() error {
	cfg := c.cfg
	log := c.log

	c.redis = initRedis(cfg, log)

	// Initialize all repositories
	c.repos = newRepositories(c.db, log)
	c.txManager = shareddb.NewTransactionManager(c.db)

	// Audit and email run off the request path
	c.dispatcher = events.NewInMemoryEventDispatcher(eventBufferSize, log)
	if err := c.dispatcher.Start(); err != nil {
		return wrapInit("event dispatcher", err)
	}
	c.notifier = email.NewNotifier(cfg.Email, log)
	c.sideChan = sidechannel.NewChannel(c.dispatcher, c.repos.auditRepo, c.notifier, log)
	if err := c.sideChan.Register(); err != nil {
		return wrapInit("side channel", err)
	}
	c.mailer = sidechannel.NewMailer(cfg.Server.BaseURL)

	// Initialize auth services
	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)
	c.jwtService = &jwtServiceAdapter{c.jwtSvc}
	c.hasher = auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	if c.hasher.Cost() != cfg.Auth.Password.BcryptCost {
		log.Warnw("bcrypt cost out of range, using default", "configured", cfg.Auth.Password.BcryptCost, "cost", c.hasher.Cost())
	}

	sessionTTL := time.Duration(cfg.Session.CacheTTLMinutes) * time.Minute
	if sessionTTL <= 0 {
		sessionTTL = defaultSessionTTL
	}
	c.sessionResolver = session.NewResolver(c.repos.userRepo, cache.NewRedisSessionCache(c.redis), sessionTTL, log)

	enforcer, err := permission.NewEnforcer(c.db, log)
	if err != nil {
		return wrapInit("permission enforcer", err)
	}
	if err := enforcer.Seed(); err != nil {
		return wrapInit("permission policies", err)
	}
	c.enforcer = enforcer

	// Initialize middlewares
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.sessionResolver, log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.enforcer, log)
	c.rateLimiter = middleware.NewRateLimiter(newRateLimiter(cfg, c.redis), log)

	return nil
}

// initRedis creates and tests the Redis client connection.
func initRedis(cfg *config.Config, log logger.Interface) *redis.Client {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx := context.Background()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalw("failed to connect to Redis", "error", err)
	}
	log.Infow("Redis connection established successfully")

	return redisClient
}

// newRateLimiter returns nil when rate limiting is disabled so the middleware
// lets every request through.
func newRateLimiter(cfg *config.Config, client *redis.Client) ratelimit.RateLimiter {
	if !cfg.RateLimit.Enabled {
		return nil
	}
	limit := cfg.RateLimit.Limit
	if limit <= 0 {
		limit = defaultRateRequests
	}
	window := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
	if window <= 0 {
		window = defaultRateWindow
	}
	return ratelimit.NewRedisRateLimiter(client, limit, window)
}

// initServices creates the adapters for object storage, extraction, LLM
// completion, prompts and filing rendering.
func (c *Container) initServices() error {
	cfg := c.cfg
	log := c.log

	minioStorage, err := storage.NewMinioStorage(cfg.Storage, log)
	if err != nil {
		return wrapInit("object storage", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), bucketCheckTimeout)
	defer cancel()
	if err := minioStorage.EnsureBucket(ctx); err != nil {
		// Uploads report their own errors; the API stays up for read paths.
		log.Warnw("object storage bucket is not ready", "bucket", cfg.Storage.Bucket, "error", err)
	}
	c.storage = minioStorage

	extractor, err := llm.NewGeminiExtractor(ctx, cfg.LLM, log)
	if err != nil {
		return wrapInit("data extractor", err)
	}
	c.extractor = extractor
	c.llmRouter = llm.NewRouter(cfg.LLM, log)

	prompts, err := template.NewPromptCatalog(cfg.LLM.PromptsPath, log)
	if err != nil {
		return wrapInit("prompt catalog", err)
	}
	c.prompts = prompts

	c.exporter = pdf.NewFilingExporter()
	c.markdown = markdown.NewMarkdownService()

	strategy, err := intake.ParseMetricsStrategy(cfg.Workflow.AgentMetricsStrategy)
	if err != nil {
		return wrapInit("agent metrics", err)
	}
	c.uploadPolicy = intake.NewUploadPolicy(cfg.Workflow)
	c.agentMetrics = intake.NewAgentMetrics(c.repos.agentRepo, strategy, log)

	batchTTL := time.Duration(cfg.Workflow.BatchProgressTTLHrs) * time.Hour
	if batchTTL <= 0 {
		batchTTL = defaultBatchTTL
	}
	c.batchStore = cache.NewRedisBatchStore(c.redis, batchTTL)
	c.sse = common.NewSSEStreamer(ssePollInterval, log)

	return nil
}
