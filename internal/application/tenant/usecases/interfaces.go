package usecases

import (
	"context"

	"github.com/lexdoc-ai/lexdoc/internal/domain/audit"
	"github.com/lexdoc-ai/lexdoc/internal/domain/shared/services"
)

// SideChannel queues the audit entries and emails of a use case.
type SideChannel interface {
	Audit(r audit.Record)
	Email(msg services.EmailMessage)
}

// SessionInvalidator drops the cached session of a user whose tenant or
// cargo changed.
type SessionInvalidator interface {
	Invalidate(ctx context.Context, userSID string)
}
