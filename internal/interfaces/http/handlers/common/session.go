// Package common provides shared HTTP handler utilities.
package common

import (
	"github.com/gin-gonic/gin"

	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/shared/constants"
)

// CurrentSession returns the session stored by the auth middleware, or nil
// for anonymous requests. Use cases reject a nil session themselves.
func CurrentSession(c *gin.Context) *session.Context {
	v, ok := c.Get(constants.ContextKeySession)
	if !ok {
		return nil
	}
	sc, _ := v.(*session.Context)
	return sc
}

// SetSession stores sc the way the auth middleware does.
func SetSession(c *gin.Context, sc *session.Context) {
	c.Set(constants.ContextKeySession, sc)
	if sc != nil {
		c.Set(constants.ContextKeyUserID, sc.UserSID)
		c.Set(constants.ContextKeyUserRole, sc.Role().String())
	}
}
