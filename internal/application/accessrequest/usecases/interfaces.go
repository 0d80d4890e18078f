package usecases

import (
	"context"

	"github.com/lexdoc-ai/lexdoc/internal/domain/audit"
	"github.com/lexdoc-ai/lexdoc/internal/domain/shared/services"
)

type SideChannel interface {
	Audit(r audit.Record)
	Email(msg services.EmailMessage)
}

type SessionInvalidator interface {
	Invalidate(ctx context.Context, userSID string)
}
