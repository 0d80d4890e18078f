package document

import (
	"context"

	vo "github.com/lexdoc-ai/lexdoc/internal/domain/document/valueobjects"
)

type Repository interface {
	Create(ctx context.Context, d *Document) error
	Update(ctx context.Context, d *Document) error
	Delete(ctx context.Context, tenantCNPJ, sid string) error
	GetBySID(ctx context.Context, tenantCNPJ, sid string) (*Document, error)
	List(ctx context.Context, filter Filter) ([]*Document, int64, error)
	// DetachCase clears the case reference of every document of the case.
	DetachCase(ctx context.Context, tenantCNPJ, caseSID string) (int64, error)
	// DetachFiling clears the filing reference of documents pointing at it.
	DetachFiling(ctx context.Context, tenantCNPJ, filingSID string) (int64, error)
	CountByStatus(ctx context.Context, tenantCNPJ string) (map[vo.ProcessingStatus]int64, error)
}

type Filter struct {
	TenantCNPJ string
	CaseSID    *string
	Status     *vo.ProcessingStatus
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}
