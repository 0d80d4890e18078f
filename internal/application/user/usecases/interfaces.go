package usecases

import (
	"context"

	"github.com/lexdoc-ai/lexdoc/internal/domain/audit"
	"github.com/lexdoc-ai/lexdoc/internal/domain/shared/services"
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// TokenService issues the access/refresh pair. Tokens carry the user SID
// only; tenant and cargo are resolved per request.
type TokenService interface {
	Generate(userSID string) (*TokenPair, error)
	Refresh(refreshToken string) (*TokenPair, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

type SideChannel interface {
	Audit(r audit.Record)
	Email(msg services.EmailMessage)
}

type SessionInvalidator interface {
	Invalidate(ctx context.Context, userSID string)
}
