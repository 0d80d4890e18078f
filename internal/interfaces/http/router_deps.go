package http

import (
	"context"

	"github.com/lexdoc-ai/lexdoc/internal/application/user/usecases"
	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/auth"
	"github.com/lexdoc-ai/lexdoc/internal/interfaces/http/handlers"
)

// jwtServiceAdapter adapts auth.JWTService to usecases.TokenService interface
type jwtServiceAdapter struct {
	*auth.JWTService
}

func (a *jwtServiceAdapter) Generate(userSID string) (*usecases.TokenPair, error) {
	pair, err := a.JWTService.Generate(userSID)
	if err != nil {
		return nil, err
	}
	return toTokenPair(pair), nil
}

func (a *jwtServiceAdapter) Refresh(refreshToken string) (*usecases.TokenPair, error) {
	pair, err := a.JWTService.Refresh(refreshToken)
	if err != nil {
		return nil, err
	}
	return toTokenPair(pair), nil
}

func toTokenPair(pair *auth.TokenPair) *usecases.TokenPair {
	return &usecases.TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}
}

// healthChecks pings the database and Redis.
func (c *Container) healthChecks() []handlers.HealthChecker {
	return []handlers.HealthChecker{
		handlers.CheckFunc{
			Service: "database",
			Fn: func(ctx context.Context) error {
				sqlDB, err := c.db.DB()
				if err != nil {
					return err
				}
				return sqlDB.PingContext(ctx)
			},
		},
		handlers.CheckFunc{
			Service: "redis",
			Fn: func(ctx context.Context) error {
				return c.redis.Ping(ctx).Err()
			},
		},
	}
}
