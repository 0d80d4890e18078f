package usecases

import (
	"context"
	"time"

	"github.com/lexdoc-ai/lexdoc/internal/domain/audit"
	"github.com/lexdoc-ai/lexdoc/internal/domain/legalcase"
	vo "github.com/lexdoc-ai/lexdoc/internal/domain/legalcase/valueobjects"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

type mockCaseRepository struct {
	cases      []*legalcase.Case
	lastFilter legalcase.Filter
	updates    int

	CreateFunc func(ctx context.Context, c *legalcase.Case) error
}

func (m *mockCaseRepository) Create(ctx context.Context, c *legalcase.Case) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	c.SetID(uint(len(m.cases) + 1))
	m.cases = append(m.cases, c)
	return nil
}

func (m *mockCaseRepository) Update(ctx context.Context, c *legalcase.Case) error {
	m.updates++
	return nil
}

func (m *mockCaseRepository) Delete(ctx context.Context, tenantCNPJ, sid string) error {
	return nil
}

func (m *mockCaseRepository) GetBySID(ctx context.Context, tenantCNPJ, sid string) (*legalcase.Case, error) {
	for _, c := range m.cases {
		if c.SID() == sid && c.TenantCNPJ() == tenantCNPJ {
			return c, nil
		}
	}
	return nil, nil
}

func (m *mockCaseRepository) List(ctx context.Context, filter legalcase.Filter) ([]*legalcase.Case, int64, error) {
	m.lastFilter = filter
	return m.cases, int64(len(m.cases)), nil
}

func (m *mockCaseRepository) CountByStatus(ctx context.Context, tenantCNPJ string) (map[vo.CaseStatus]int64, error) {
	return nil, nil
}

func (m *mockCaseRepository) ListUpcomingDeadlines(ctx context.Context, tenantCNPJ string, from, to time.Time, limit int) ([]*legalcase.Case, error) {
	return nil, nil
}

type mockAuditor struct {
	records []audit.Record
}

func (m *mockAuditor) Audit(r audit.Record) {
	m.records = append(m.records, r)
}

func newTestLogger() logger.Interface {
	return logger.NewLogger()
}
