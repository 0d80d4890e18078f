package filing

import (
	"context"

	vo "github.com/lexdoc-ai/lexdoc/internal/domain/filing/valueobjects"
)

type Repository interface {
	Create(ctx context.Context, f *Filing) error
	Update(ctx context.Context, f *Filing) error
	Delete(ctx context.Context, tenantCNPJ, sid string) error
	GetBySID(ctx context.Context, tenantCNPJ, sid string) (*Filing, error)
	List(ctx context.Context, filter Filter) ([]*Filing, int64, error)
	// DetachCase clears the case reference of every filing of the case.
	DetachCase(ctx context.Context, tenantCNPJ, caseSID string) (int64, error)
	CountByStatus(ctx context.Context, tenantCNPJ string) (map[vo.FilingStatus]int64, error)
}

type Filter struct {
	TenantCNPJ string
	CaseSID    *string
	Status     *vo.FilingStatus
	Type       *vo.FilingType
	Search     string
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}
