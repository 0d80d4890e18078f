package legalcase

import (
	"context"
	"time"

	vo "github.com/lexdoc-ai/lexdoc/internal/domain/legalcase/valueobjects"
)

type Repository interface {
	Create(ctx context.Context, c *Case) error
	Update(ctx context.Context, c *Case) error
	// Delete removes the case row only. Callers detach documents and filings
	// in the same transaction.
	Delete(ctx context.Context, tenantCNPJ, sid string) error
	GetBySID(ctx context.Context, tenantCNPJ, sid string) (*Case, error)
	List(ctx context.Context, filter Filter) ([]*Case, int64, error)
	CountByStatus(ctx context.Context, tenantCNPJ string) (map[vo.CaseStatus]int64, error)
	ListUpcomingDeadlines(ctx context.Context, tenantCNPJ string, from, to time.Time, limit int) ([]*Case, error)
}

type Filter struct {
	TenantCNPJ string
	Status     *vo.CaseStatus
	Area       *vo.LegalArea
	Search     string
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}
