package usecases

import (
	"context"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	auditdto "github.com/lexdoc-ai/lexdoc/internal/application/audit/dto"
	"github.com/lexdoc-ai/lexdoc/internal/application/dashboard/dto"
	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/domain/agent"
	"github.com/lexdoc-ai/lexdoc/internal/domain/audit"
	"github.com/lexdoc-ai/lexdoc/internal/domain/document"
	"github.com/lexdoc-ai/lexdoc/internal/domain/filing"
	filingvo "github.com/lexdoc-ai/lexdoc/internal/domain/filing/valueobjects"
	"github.com/lexdoc-ai/lexdoc/internal/domain/legalcase"
	casevo "github.com/lexdoc-ai/lexdoc/internal/domain/legalcase/valueobjects"
	"github.com/lexdoc-ai/lexdoc/internal/shared/biztime"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

const (
	// UrgentWindow is how far ahead a deadline counts as urgent.
	UrgentWindow = 7 * 24 * time.Hour
	// overdueLookback bounds how old an overdue deadline may be and still show.
	overdueLookback = 365 * 24 * time.Hour
	urgentLimit     = 10
	recentLimit     = 10
)

type GetDashboardQuery struct {
	Session *session.Context
}

// GetDashboardUseCase aggregates the office counters in parallel.
type GetDashboardUseCase struct {
	caseRepo   legalcase.Repository
	docRepo    document.Repository
	filingRepo filing.Repository
	agentRepo  agent.Repository
	auditRepo  audit.Repository
	logger     logger.Interface
}

func NewGetDashboardUseCase(
	caseRepo legalcase.Repository,
	docRepo document.Repository,
	filingRepo filing.Repository,
	agentRepo agent.Repository,
	auditRepo audit.Repository,
	log logger.Interface,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		caseRepo:   caseRepo,
		docRepo:    docRepo,
		filingRepo: filingRepo,
		agentRepo:  agentRepo,
		auditRepo:  auditRepo,
		logger:     log,
	}
}

func (uc *GetDashboardUseCase) Execute(ctx context.Context, query GetDashboardQuery) (*dto.DashboardDTO, error) {
	if err := query.Session.RequireTenant(); err != nil {
		return nil, err
	}
	tenantCNPJ := query.Session.TenantCNPJ
	now := biztime.NowUTC()

	var (
		caseCounts   map[casevo.CaseStatus]int64
		docCounts    map[string]int64
		filingCounts map[filingvo.FilingStatus]int64
		activeAgents int64
		deadlines    []*legalcase.Case
		recent       []*audit.Entry
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		counts, err := uc.caseRepo.CountByStatus(gctx, tenantCNPJ)
		if err != nil {
			uc.logger.Errorw("failed to count cases", "cnpj", tenantCNPJ, "error", err)
			return errors.NewInternalError("failed to count cases")
		}
		caseCounts = counts
		return nil
	})

	g.Go(func() error {
		counts, err := uc.docRepo.CountByStatus(gctx, tenantCNPJ)
		if err != nil {
			uc.logger.Errorw("failed to count documents", "cnpj", tenantCNPJ, "error", err)
			return errors.NewInternalError("failed to count documents")
		}
		docCounts = make(map[string]int64, len(counts))
		for k, v := range counts {
			docCounts[k.String()] = v
		}
		return nil
	})

	g.Go(func() error {
		counts, err := uc.filingRepo.CountByStatus(gctx, tenantCNPJ)
		if err != nil {
			uc.logger.Errorw("failed to count filings", "cnpj", tenantCNPJ, "error", err)
			return errors.NewInternalError("failed to count filings")
		}
		filingCounts = counts
		return nil
	})

	g.Go(func() error {
		n, err := uc.agentRepo.CountActive(gctx, tenantCNPJ)
		if err != nil {
			uc.logger.Errorw("failed to count active agents", "cnpj", tenantCNPJ, "error", err)
			return errors.NewInternalError("failed to count agents")
		}
		activeAgents = n
		return nil
	})

	g.Go(func() error {
		cases, err := uc.caseRepo.ListUpcomingDeadlines(gctx, tenantCNPJ, now.Add(-overdueLookback), now.Add(UrgentWindow), urgentLimit)
		if err != nil {
			uc.logger.Errorw("failed to list deadlines", "cnpj", tenantCNPJ, "error", err)
			return errors.NewInternalError("failed to list deadlines")
		}
		deadlines = cases
		return nil
	})

	g.Go(func() error {
		entries, err := uc.auditRepo.ListRecent(gctx, tenantCNPJ, recentLimit)
		if err != nil {
			uc.logger.Errorw("failed to list recent activity", "cnpj", tenantCNPJ, "error", err)
			return errors.NewInternalError("failed to list recent activity")
		}
		recent = entries
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &dto.DashboardDTO{
		Cases:           caseStats(caseCounts),
		Documents:       statusCount(docCounts),
		Filings:         filingStats(filingCounts),
		ActiveAgents:    activeAgents,
		UrgentDeadlines: make([]*dto.DeadlineDTO, 0, len(deadlines)),
		RecentActivity:  auditdto.ToAuditLogDTOs(recent),
		GeneratedAt:     now,
	}
	for _, c := range deadlines {
		if c.NextDeadline() == nil {
			continue
		}
		out.UrgentDeadlines = append(out.UrgentDeadlines, &dto.DeadlineDTO{
			CaseID:        c.SID(),
			Title:         c.Title(),
			Client:        c.Client(),
			Status:        c.Status().String(),
			NextDeadline:  *c.NextDeadline(),
			DaysRemaining: daysUntil(now, *c.NextDeadline()),
		})
	}
	return out, nil
}

func statusCount(counts map[string]int64) dto.StatusCount {
	out := dto.StatusCount{ByStatus: make(map[string]int64, len(counts))}
	for k, v := range counts {
		out.ByStatus[k] = v
		out.Total += v
	}
	return out
}

func caseStats(counts map[casevo.CaseStatus]int64) dto.CaseStats {
	raw := make(map[string]int64, len(counts))
	var active int64
	for k, v := range counts {
		raw[k.String()] = v
		if k.IsOpen() {
			active += v
		}
	}
	return dto.CaseStats{StatusCount: statusCount(raw), Active: active}
}

func filingStats(counts map[filingvo.FilingStatus]int64) dto.FilingStats {
	raw := make(map[string]int64, len(counts))
	for k, v := range counts {
		raw[k.String()] = v
	}
	out := dto.FilingStats{StatusCount: statusCount(raw), InReview: counts[filingvo.FilingStatusInReview]}
	if out.Total > 0 {
		approved := counts[filingvo.FilingStatusApproved] + counts[filingvo.FilingStatusSent]
		out.ApprovalRate = int(math.Round(float64(approved) / float64(out.Total) * 100))
	}
	return out
}

// daysUntil counts calendar days in the business timezone; overdue
// deadlines are negative.
func daysUntil(now, deadline time.Time) int {
	y, m, d := biztime.ToBizTimezone(now).Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	y, m, d = biztime.ToBizTimezone(deadline).Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return int(day.Sub(today).Hours() / 24)
}
