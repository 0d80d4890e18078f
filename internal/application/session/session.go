// Package session resolves the authenticated user into the tenant-scoped
// context every use case receives.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/lexdoc-ai/lexdoc/internal/domain/user"
	"github.com/lexdoc-ai/lexdoc/internal/shared/authorization"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

// Context is the caller identity. TenantCNPJ is empty until the user has
// onboarded an office or had an access request approved.
type Context struct {
	UserID     uint   `json:"user_id"`
	UserSID    string `json:"user_sid"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	TenantCNPJ string `json:"cnpj_escritorio"`
	Cargo      string `json:"cargo"`
	IsAdmin    bool   `json:"is_admin"`
}

func FromUser(u *user.User) *Context {
	return &Context{
		UserID:     u.ID(),
		UserSID:    u.SID(),
		Email:      u.Email(),
		Name:       u.Name(),
		TenantCNPJ: u.TenantCNPJ(),
		Cargo:      string(u.Cargo()),
		IsAdmin:    u.IsAdmin(),
	}
}

func (c *Context) HasTenant() bool {
	return c != nil && c.TenantCNPJ != ""
}

// RequireTenant fails when the caller has no office yet.
func (c *Context) RequireTenant() error {
	if c == nil {
		return errors.NewUnauthorizedError("authentication required")
	}
	if c.TenantCNPJ == "" {
		return errors.NewForbiddenError("user is not linked to an office")
	}
	return nil
}

func (c *Context) RequireAdmin() error {
	if err := c.RequireTenant(); err != nil {
		return err
	}
	if !c.IsAdmin {
		return errors.NewForbiddenError("admin access required")
	}
	return nil
}

func (c *Context) Role() authorization.UserRole {
	if c != nil && c.IsAdmin {
		return authorization.RoleAdmin
	}
	return authorization.RoleMember
}

// Cache stores resolved contexts keyed by user SID. Get returns (nil, nil)
// on a miss.
type Cache interface {
	Get(ctx context.Context, userSID string) (*Context, error)
	Set(ctx context.Context, sc *Context, ttl time.Duration) error
	Invalidate(ctx context.Context, userSID string) error
}

// Resolver loads the session once per user and serves it from the cache until
// a user mutation invalidates it.
type Resolver struct {
	userRepo user.Repository
	cache    Cache
	ttl      time.Duration
	logger   logger.Interface
}

func NewResolver(userRepo user.Repository, cache Cache, ttl time.Duration, log logger.Interface) *Resolver {
	return &Resolver{
		userRepo: userRepo,
		cache:    cache,
		ttl:      ttl,
		logger:   log,
	}
}

func (r *Resolver) Resolve(ctx context.Context, userSID string) (*Context, error) {
	if userSID == "" {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	if r.cache != nil {
		cached, err := r.cache.Get(ctx, userSID)
		if err != nil {
			r.logger.Warnw("session cache read failed, loading from database", "user_sid", userSID, "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	u, err := r.userRepo.GetByUserSID(ctx, userSID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if u == nil {
		return nil, errors.NewUnauthorizedError("user no longer exists")
	}

	sc := FromUser(u)
	if r.cache != nil {
		if err := r.cache.Set(ctx, sc, r.ttl); err != nil {
			r.logger.Warnw("failed to cache session", "user_sid", userSID, "error", err)
		}
	}
	return sc, nil
}

// Invalidate drops the cached session. Failures are logged; the entry expires
// on its own TTL.
func (r *Resolver) Invalidate(ctx context.Context, userSID string) {
	if r.cache == nil || userSID == "" {
		return
	}
	if err := r.cache.Invalidate(ctx, userSID); err != nil {
		r.logger.Warnw("failed to invalidate session cache", "user_sid", userSID, "error", err)
	}
}
