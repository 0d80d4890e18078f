package intake

import (
	"context"
	"fmt"

	"github.com/lexdoc-ai/lexdoc/internal/domain/agent"
	vo "github.com/lexdoc-ai/lexdoc/internal/domain/agent/valueobjects"
	"github.com/lexdoc-ai/lexdoc/internal/shared/biztime"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

// MetricsStrategy selects how agent counters are written.
type MetricsStrategy string

const (
	// MetricsAtomic increments the counters in SQL; concurrent runs never
	// lose an update.
	MetricsAtomic MetricsStrategy = "atomic"
	// MetricsLastWriterWins reads the agent, increments in memory and writes
	// the whole counter set back; concurrent runs may lose an increment.
	MetricsLastWriterWins MetricsStrategy = "last_writer_wins"
)

func ParseMetricsStrategy(s string) (MetricsStrategy, error) {
	switch MetricsStrategy(s) {
	case "", MetricsAtomic:
		return MetricsAtomic, nil
	case MetricsLastWriterWins:
		return MetricsLastWriterWins, nil
	}
	return "", fmt.Errorf("unknown agent metrics strategy: %s", s)
}

// AgentMetrics applies usage increments to an agent.
type AgentMetrics struct {
	agentRepo agent.Repository
	strategy  MetricsStrategy
	logger    logger.Interface
}

func NewAgentMetrics(agentRepo agent.Repository, strategy MetricsStrategy, logger logger.Interface) *AgentMetrics {
	if strategy == "" {
		strategy = MetricsAtomic
	}
	return &AgentMetrics{agentRepo: agentRepo, strategy: strategy, logger: logger}
}

func (m *AgentMetrics) Strategy() MetricsStrategy {
	return m.strategy
}

// Record applies u. An agent deleted since the workflow started is an error.
func (m *AgentMetrics) Record(ctx context.Context, tenantCNPJ, agentSID string, u vo.Usage) error {
	now := biztime.NowUTC()

	if m.strategy == MetricsAtomic {
		return m.agentRepo.IncrementUsage(ctx, tenantCNPJ, agentSID, u, now)
	}

	a, err := m.agentRepo.GetBySID(ctx, tenantCNPJ, agentSID)
	if err != nil {
		return fmt.Errorf("failed to reload agent: %w", err)
	}
	if a == nil {
		return fmt.Errorf("agent %s no longer exists", agentSID)
	}
	a.RecordUsage(u, now)
	return m.agentRepo.SaveUsage(ctx, a)
}

// recordBestEffort turns a failure into a MetricsUpdateRace warning.
func (m *AgentMetrics) recordBestEffort(ctx context.Context, tenantCNPJ, agentSID string, u vo.Usage) *Warning {
	if err := m.Record(ctx, tenantCNPJ, agentSID, u); err != nil {
		m.logger.Warnw("agent metrics not updated",
			"agent_sid", agentSID,
			"strategy", m.strategy,
			"error", err,
		)
		w := newWarning(KindMetricsUpdateRace, err)
		return &w
	}
	return nil
}
