package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/auth"
	"github.com/lexdoc-ai/lexdoc/internal/shared/constants"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
	"github.com/lexdoc-ai/lexdoc/internal/shared/utils"
)

// TokenVerifier parses access tokens.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// SessionResolver turns a user SID into the tenant-scoped session.
type SessionResolver interface {
	Resolve(ctx context.Context, userSID string) (*session.Context, error)
}

type AuthMiddleware struct {
	jwtService TokenVerifier
	resolver   SessionResolver
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService TokenVerifier, resolver SessionResolver, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		resolver:   resolver,
		logger:     logger,
	}
}

// RequireAuth verifies the bearer token and stores the resolved session in
// the gin context under constants.ContextKeySession.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(token)
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		sc, err := m.resolver.Resolve(c.Request.Context(), claims.UserSID)
		if err != nil {
			m.logger.Warnw("failed to resolve session", "user_sid", claims.UserSID, "error", err)
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		setSession(c, sc, claims.SessionID)
		c.Next()
	}
}

// OptionalAuth attaches the session when a valid token is present and
// otherwise lets the request through anonymously.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		claims, err := m.jwtService.Verify(token)
		if err == nil {
			if sc, err := m.resolver.Resolve(c.Request.Context(), claims.UserSID); err == nil {
				setSession(c, sc, claims.SessionID)
			}
		}

		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader(constants.HeaderAuthorization)
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

func setSession(c *gin.Context, sc *session.Context, sessionID string) {
	c.Set(constants.ContextKeySession, sc)
	c.Set(constants.ContextKeyUserID, sc.UserSID)
	c.Set(constants.ContextKeySessionID, sessionID)
	c.Set(constants.ContextKeyUserRole, sc.Role().String())
}

func sessionFrom(c *gin.Context) *session.Context {
	v, ok := c.Get(constants.ContextKeySession)
	if !ok {
		return nil
	}
	sc, _ := v.(*session.Context)
	return sc
}
