package audit

import (
	"fmt"
	"time"

	"github.com/lexdoc-ai/lexdoc/internal/shared/id"
)

// Entry is an append-only audit record. There is no mutation API.
type Entry struct {
	id         uint
	sid        string
	tenantCNPJ string
	userEmail  string
	userName   string
	action     Action
	entityType string
	entityID   string
	success    bool
	details    map[string]any
	createdAt  time.Time
}

type EntryState struct {
	ID         uint
	SID        string
	TenantCNPJ string
	UserEmail  string
	UserName   string
	Action     Action
	EntityType string
	EntityID   string
	Success    bool
	Details    map[string]any
	CreatedAt  time.Time
}

type Record struct {
	TenantCNPJ string
	UserEmail  string
	UserName   string
	Action     Action
	EntityType string
	EntityID   string
	Success    bool
	Details    map[string]any
}

func NewEntry(r Record) (*Entry, error) {
	if !r.Action.IsValid() {
		return nil, fmt.Errorf("invalid audit action: %s", r.Action)
	}
	if r.UserEmail == "" {
		return nil, fmt.Errorf("user email is required")
	}
	if r.Details == nil {
		r.Details = map[string]any{}
	}

	sid, err := id.NewAuditLogID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate audit log ID: %w", err)
	}

	return &Entry{
		sid:        sid,
		tenantCNPJ: r.TenantCNPJ,
		userEmail:  r.UserEmail,
		userName:   r.UserName,
		action:     r.Action,
		entityType: r.EntityType,
		entityID:   r.EntityID,
		success:    r.Success,
		details:    r.Details,
		createdAt:  time.Now().UTC(),
	}, nil
}

func ReconstructEntry(s EntryState) *Entry {
	if s.Details == nil {
		s.Details = map[string]any{}
	}
	return &Entry{
		id:         s.ID,
		sid:        s.SID,
		tenantCNPJ: s.TenantCNPJ,
		userEmail:  s.UserEmail,
		userName:   s.UserName,
		action:     s.Action,
		entityType: s.EntityType,
		entityID:   s.EntityID,
		success:    s.Success,
		details:    s.Details,
		createdAt:  s.CreatedAt,
	}
}

func (e *Entry) ID() uint { return e.id }
func (e *Entry) SID() string { return e.sid }
func (e *Entry) TenantCNPJ() string { return e.tenantCNPJ }
func (e *Entry) UserEmail() string { return e.userEmail }
func (e *Entry) UserName() string { return e.userName }
func (e *Entry) Action() Action { return e.action }
func (e *Entry) EntityType() string { return e.entityType }
func (e *Entry) EntityID() string { return e.entityID }
func (e *Entry) Success() bool { return e.success }
func (e *Entry) Details() map[string]any { return e.details }
func (e *Entry) CreatedAt() time.Time { return e.createdAt }

func (e *Entry) SetID(id uint) {
	e.id = id
}
