package audit

import "context"

type Repository interface {
	Append(ctx context.Context, e *Entry) error
	ListRecent(ctx context.Context, tenantCNPJ string, limit int) ([]*Entry, error)
}
