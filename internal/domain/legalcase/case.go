package legalcase

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/lexdoc-ai/lexdoc/internal/domain/legalcase/valueobjects"
	"github.com/lexdoc-ai/lexdoc/internal/shared/id"
)

// Case groups the documents and filings of one client matter.
type Case struct {
	id                uint
	sid               string
	tenantCNPJ        string
	title             string
	client            string
	processNumber     string
	area              vo.LegalArea
	status            vo.CaseStatus
	responsibleLawyer string
	opposingParty     string
	claimValue        *float64
	nextDeadline      *time.Time
	summary           string
	createdAt         time.Time
	updatedAt         time.Time
}

type CaseState struct {
	ID                uint
	SID               string
	TenantCNPJ        string
	Title             string
	Client            string
	ProcessNumber     string
	Area              vo.LegalArea
	Status            vo.CaseStatus
	ResponsibleLawyer string
	OpposingParty     string
	ClaimValue        *float64
	NextDeadline      *time.Time
	Summary           string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// CaseParams are the fields supplied when opening a case.
type CaseParams struct {
	TenantCNPJ        string
	Title             string
	Client            string
	ProcessNumber     string
	Area              vo.LegalArea
	Status            vo.CaseStatus
	ResponsibleLawyer string
	OpposingParty     string
	ClaimValue        *float64
	NextDeadline      *time.Time
	Summary           string
}

// CaseUpdate is a partial update; nil fields are kept.
type CaseUpdate struct {
	Title         *string
	Client        *string
	ProcessNumber *string
	Area          *vo.LegalArea
	Status        *vo.CaseStatus
	OpposingParty *string
	ClaimValue    *float64
	ClearClaim    bool
	NextDeadline  *time.Time
	ClearDeadline bool
	Summary       *string
}

func NewCase(p CaseParams) (*Case, error) {
	if p.TenantCNPJ == "" {
		return nil, fmt.Errorf("tenant CNPJ is required")
	}
	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	p.Client = strings.TrimSpace(p.Client)
	if p.Client == "" {
		return nil, fmt.Errorf("client is required")
	}
	if p.Area == "" {
		p.Area = vo.LegalAreaCivil
	}
	if !p.Area.IsValid() {
		return nil, fmt.Errorf("invalid legal area: %s", p.Area)
	}
	if p.Status == "" {
		p.Status = vo.CaseStatusInAnalysis
	}
	if !p.Status.IsValid() {
		return nil, fmt.Errorf("invalid case status: %s", p.Status)
	}
	if p.ClaimValue != nil && *p.ClaimValue < 0 {
		return nil, fmt.Errorf("claim value cannot be negative")
	}

	sid, err := id.NewCaseID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate case ID: %w", err)
	}

	now := time.Now().UTC()
	return &Case{
		sid:               sid,
		tenantCNPJ:        p.TenantCNPJ,
		title:             p.Title,
		client:            p.Client,
		processNumber:     p.ProcessNumber,
		area:              p.Area,
		status:            p.Status,
		responsibleLawyer: p.ResponsibleLawyer,
		opposingParty:     p.OpposingParty,
		claimValue:        p.ClaimValue,
		nextDeadline:      p.NextDeadline,
		summary:           p.Summary,
		createdAt:         now,
		updatedAt:         now,
	}, nil
}

func ReconstructCase(s CaseState) (*Case, error) {
	if s.ID == 0 {
		return nil, fmt.Errorf("case ID cannot be zero")
	}
	if s.SID == "" {
		return nil, fmt.Errorf("case SID is required")
	}
	if !s.Status.IsValid() {
		return nil, fmt.Errorf("invalid case status: %s", s.Status)
	}
	return &Case{
		id:                s.ID,
		sid:               s.SID,
		tenantCNPJ:        s.TenantCNPJ,
		title:             s.Title,
		client:            s.Client,
		processNumber:     s.ProcessNumber,
		area:              s.Area,
		status:            s.Status,
		responsibleLawyer: s.ResponsibleLawyer,
		opposingParty:     s.OpposingParty,
		claimValue:        s.ClaimValue,
		nextDeadline:      s.NextDeadline,
		summary:           s.Summary,
		createdAt:         s.CreatedAt,
		updatedAt:         s.UpdatedAt,
	}, nil
}

// ID returns the internal numeric ID
func (c *Case) ID() uint {
	return c.id
}

// SID returns the external case_ identifier
func (c *Case) SID() string {
	return c.sid
}

func (c *Case) TenantCNPJ() string {
	return c.tenantCNPJ
}

func (c *Case) Title() string {
	return c.title
}

func (c *Case) Client() string {
	return c.client
}

func (c *Case) ProcessNumber() string {
	return c.processNumber
}

func (c *Case) Area() vo.LegalArea {
	return c.area
}

func (c *Case) Status() vo.CaseStatus {
	return c.status
}

func (c *Case) ResponsibleLawyer() string {
	return c.responsibleLawyer
}

func (c *Case) OpposingParty() string {
	return c.opposingParty
}

func (c *Case) ClaimValue() *float64 {
	return c.claimValue
}

func (c *Case) NextDeadline() *time.Time {
	return c.nextDeadline
}

func (c *Case) Summary() string {
	return c.summary
}

func (c *Case) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Case) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Case) SetID(id uint) {
	c.id = id
}

// Apply validates and applies a partial update.
func (c *Case) Apply(u CaseUpdate) error {
	if u.Title != nil {
		title := strings.TrimSpace(*u.Title)
		if title == "" {
			return fmt.Errorf("title cannot be empty")
		}
		c.title = title
	}
	if u.Client != nil {
		client := strings.TrimSpace(*u.Client)
		if client == "" {
			return fmt.Errorf("client cannot be empty")
		}
		c.client = client
	}
	if u.Area != nil {
		if !u.Area.IsValid() {
			return fmt.Errorf("invalid legal area: %s", *u.Area)
		}
		c.area = *u.Area
	}
	if u.Status != nil {
		if !u.Status.IsValid() {
			return fmt.Errorf("invalid case status: %s", *u.Status)
		}
		c.status = *u.Status
	}
	if u.ClaimValue != nil {
		if *u.ClaimValue < 0 {
			return fmt.Errorf("claim value cannot be negative")
		}
		v := *u.ClaimValue
		c.claimValue = &v
	}
	if u.ClearClaim {
		c.claimValue = nil
	}
	if u.NextDeadline != nil {
		d := *u.NextDeadline
		c.nextDeadline = &d
	}
	if u.ClearDeadline {
		c.nextDeadline = nil
	}
	if u.ProcessNumber != nil {
		c.processNumber = *u.ProcessNumber
	}
	if u.OpposingParty != nil {
		c.opposingParty = *u.OpposingParty
	}
	if u.Summary != nil {
		c.summary = *u.Summary
	}
	c.updatedAt = time.Now().UTC()
	return nil
}
