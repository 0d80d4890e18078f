package agent

import (
	"context"
	"time"

	vo "github.com/lexdoc-ai/lexdoc/internal/domain/agent/valueobjects"
)

type Repository interface {
	Create(ctx context.Context, a *Agent) error
	Update(ctx context.Context, a *Agent) error
	Delete(ctx context.Context, tenantCNPJ, sid string) error
	GetBySID(ctx context.Context, tenantCNPJ, sid string) (*Agent, error)
	List(ctx context.Context, filter Filter) ([]*Agent, int64, error)
	// FirstActive returns the oldest active agent, or nil when there is none.
	FirstActive(ctx context.Context, tenantCNPJ string) (*Agent, error)
	CountActive(ctx context.Context, tenantCNPJ string) (int64, error)

	// IncrementUsage adds u to the counters in a single UPDATE statement.
	IncrementUsage(ctx context.Context, tenantCNPJ, sid string, u vo.Usage, at time.Time) error
	// SaveUsage overwrites the counters with the values held by a.
	SaveUsage(ctx context.Context, a *Agent) error
}

type Filter struct {
	TenantCNPJ string
	Status     *vo.AgentStatus
	Search     string
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}
