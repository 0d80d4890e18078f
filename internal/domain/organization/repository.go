package organization

import (
	"context"

	vo "github.com/lexdoc-ai/lexdoc/internal/domain/organization/valueobjects"
)

type Repository interface {
	Create(ctx context.Context, d *OrganizedDocument) error
	Update(ctx context.Context, d *OrganizedDocument) error
	GetBySID(ctx context.Context, tenantCNPJ, sid string) (*OrganizedDocument, error)
	List(ctx context.Context, filter Filter) ([]*OrganizedDocument, int64, error)
}

type Filter struct {
	TenantCNPJ string
	BatchID    string
	Sector     *vo.Sector
	Status     *vo.OrganizationStatus
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}
