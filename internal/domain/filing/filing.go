package filing

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/lexdoc-ai/lexdoc/internal/domain/filing/valueobjects"
	"github.com/lexdoc-ai/lexdoc/internal/shared/biztime"
	"github.com/lexdoc-ai/lexdoc/internal/shared/id"
)

// Filing is a procedural document (petição, contestação, ...) produced by an
// agent and then reviewed by a lawyer.
type Filing struct {
	id            uint
	sid           string
	tenantCNPJ    string
	caseSID       *string
	documentSID   *string
	filingType    vo.FilingType
	title         string
	contentText   string
	contentHTML   string
	status        vo.FilingStatus
	aiGenerated   bool
	legalDeadline *time.Time
	agentName     string
	modelUsed     string
	createdBy     string
	createdAt     time.Time
	updatedAt     time.Time
}

type FilingState struct {
	ID            uint
	SID           string
	TenantCNPJ    string
	CaseSID       *string
	DocumentSID   *string
	FilingType    vo.FilingType
	Title         string
	ContentText   string
	ContentHTML   string
	Status        vo.FilingStatus
	AIGenerated   bool
	LegalDeadline *time.Time
	AgentName     string
	ModelUsed     string
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// GeneratedParams describe a filing produced from a document analysis.
type GeneratedParams struct {
	TenantCNPJ        string
	CaseSID           *string
	DocumentSID       string
	Type              vo.FilingType
	RecommendedAction string
	ContentText       string
	ContentHTML       string
	LegalDeadline     time.Time
	AgentName         string
	ModelUsed         string
	CreatedBy         string
}

// ComputeDeadline adds whole calendar days to the upload time. No business
// day adjustment is made.
func ComputeDeadline(uploadedAt time.Time, days int) time.Time {
	return biztime.AddCalendarDays(uploadedAt, days)
}

// GeneratedTitle renders "{TIPO} - {acao_recomendada}".
func GeneratedTitle(t vo.FilingType, recommendedAction string) string {
	return fmt.Sprintf("%s - %s", t.Heading(), strings.TrimSpace(recommendedAction))
}

// NewGeneratedFiling creates an AI generated draft.
func NewGeneratedFiling(p GeneratedParams) (*Filing, error) {
	if p.TenantCNPJ == "" {
		return nil, fmt.Errorf("tenant CNPJ is required")
	}
	if p.DocumentSID == "" {
		return nil, fmt.Errorf("origin document is required")
	}
	if !p.Type.IsValid() {
		return nil, fmt.Errorf("invalid filing type: %s", p.Type)
	}
	if strings.TrimSpace(p.ContentText) == "" {
		return nil, fmt.Errorf("filing content is required")
	}

	sid, err := id.NewFilingID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate filing ID: %w", err)
	}

	deadline := p.LegalDeadline
	docSID := p.DocumentSID
	now := time.Now().UTC()
	return &Filing{
		sid:           sid,
		tenantCNPJ:    p.TenantCNPJ,
		caseSID:       p.CaseSID,
		documentSID:   &docSID,
		filingType:    p.Type,
		title:         GeneratedTitle(p.Type, p.RecommendedAction),
		contentText:   p.ContentText,
		contentHTML:   p.ContentHTML,
		status:        vo.FilingStatusDraft,
		aiGenerated:   true,
		legalDeadline: &deadline,
		agentName:     p.AgentName,
		modelUsed:     p.ModelUsed,
		createdBy:     p.CreatedBy,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructFiling(s FilingState) (*Filing, error) {
	if s.ID == 0 {
		return nil, fmt.Errorf("filing ID cannot be zero")
	}
	if s.SID == "" {
		return nil, fmt.Errorf("filing SID is required")
	}
	if !s.Status.IsValid() {
		return nil, fmt.Errorf("invalid filing status: %s", s.Status)
	}
	return &Filing{
		id:            s.ID,
		sid:           s.SID,
		tenantCNPJ:    s.TenantCNPJ,
		caseSID:       s.CaseSID,
		documentSID:   s.DocumentSID,
		filingType:    s.FilingType,
		title:         s.Title,
		contentText:   s.ContentText,
		contentHTML:   s.ContentHTML,
		status:        s.Status,
		aiGenerated:   s.AIGenerated,
		legalDeadline: s.LegalDeadline,
		agentName:     s.AgentName,
		modelUsed:     s.ModelUsed,
		createdBy:     s.CreatedBy,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
	}, nil
}

// ID returns the internal numeric ID
func (f *Filing) ID() uint {
	return f.id
}

// SID returns the external fil_ identifier
func (f *Filing) SID() string {
	return f.sid
}

func (f *Filing) TenantCNPJ() string {
	return f.tenantCNPJ
}

func (f *Filing) CaseSID() *string {
	return f.caseSID
}

func (f *Filing) DocumentSID() *string {
	return f.documentSID
}

func (f *Filing) Type() vo.FilingType {
	return f.filingType
}

func (f *Filing) Title() string {
	return f.title
}

func (f *Filing) ContentText() string {
	return f.contentText
}

func (f *Filing) ContentHTML() string {
	return f.contentHTML
}

func (f *Filing) Status() vo.FilingStatus {
	return f.status
}

func (f *Filing) IsAIGenerated() bool {
	return f.aiGenerated
}

func (f *Filing) LegalDeadline() *time.Time {
	return f.legalDeadline
}

// AgentName is the name of the agent at generation time.
func (f *Filing) AgentName() string {
	return f.agentName
}

func (f *Filing) ModelUsed() string {
	return f.modelUsed
}

func (f *Filing) CreatedBy() string {
	return f.createdBy
}

func (f *Filing) CreatedAt() time.Time {
	return f.createdAt
}

func (f *Filing) UpdatedAt() time.Time {
	return f.updatedAt
}

func (f *Filing) SetID(id uint) {
	f.id = id
}

// EditContent replaces the text and its rendered HTML. Sent filings are frozen.
func (f *Filing) EditContent(title, text, html string) error {
	if f.status.IsFinal() {
		return fmt.Errorf("filing already sent and cannot be edited")
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("filing content is required")
	}
	if strings.TrimSpace(title) != "" {
		f.title = strings.TrimSpace(title)
	}
	f.contentText = text
	f.contentHTML = html
	f.touch()
	return nil
}

func (f *Filing) ChangeStatus(target vo.FilingStatus) error {
	if !target.IsValid() {
		return fmt.Errorf("invalid filing status: %s", target)
	}
	if !f.status.CanTransitionTo(target) {
		return fmt.Errorf("cannot change filing status from %s to %s", f.status, target)
	}
	f.status = target
	f.touch()
	return nil
}

func (f *Filing) LinkCase(caseSID string) {
	f.caseSID = &caseSID
	f.touch()
}

func (f *Filing) DetachCase() {
	f.caseSID = nil
	f.touch()
}

func (f *Filing) touch() {
	f.updatedAt = time.Now().UTC()
}
