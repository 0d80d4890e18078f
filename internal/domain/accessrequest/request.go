package accessrequest

import (
	"fmt"
	"strings"
	"time"

	"github.com/lexdoc-ai/lexdoc/internal/domain/user"
	"github.com/lexdoc-ai/lexdoc/internal/shared/id"
)

// AccessRequest is a user's request to join an existing office.
type AccessRequest struct {
	id              uint
	sid             string
	userEmail       string
	userName        string
	cpf             string
	requestedCargo  user.Cargo
	tenantCNPJ      string
	companyName     string
	phone           string
	oabNumber       string
	oabUF           string
	message         string
	status          Status
	respondedAt     *time.Time
	respondedBy     string
	rejectionReason string
	createdAt       time.Time
	updatedAt       time.Time
}

type AccessRequestState struct {
	ID              uint
	SID             string
	UserEmail       string
	UserName        string
	CPF             string
	RequestedCargo  user.Cargo
	TenantCNPJ      string
	CompanyName     string
	Phone           string
	OABNumber       string
	OABUF           string
	Message         string
	Status          Status
	RespondedAt     *time.Time
	RespondedBy     string
	RejectionReason string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Submission holds what the requester fills in.
type Submission struct {
	UserEmail      string
	UserName       string
	CPF            string
	RequestedCargo user.Cargo
	TenantCNPJ     string
	CompanyName    string
	Phone          string
	OABNumber      string
	OABUF          string
	Message        string
}

func NewAccessRequest(s Submission) (*AccessRequest, error) {
	if s.UserEmail == "" {
		return nil, fmt.Errorf("user email is required")
	}
	if s.TenantCNPJ == "" {
		return nil, fmt.Errorf("tenant CNPJ is required")
	}
	if !s.RequestedCargo.IsValid() {
		return nil, fmt.Errorf("invalid cargo: %s", s.RequestedCargo)
	}
	if s.RequestedCargo.IsAdmin() {
		return nil, fmt.Errorf("admin cargo cannot be requested")
	}

	sid, err := id.NewAccessRequestID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate access request ID: %w", err)
	}

	now := time.Now().UTC()
	return &AccessRequest{
		sid:            sid,
		userEmail:      s.UserEmail,
		userName:       s.UserName,
		cpf:            s.CPF,
		requestedCargo: s.RequestedCargo,
		tenantCNPJ:     s.TenantCNPJ,
		companyName:    s.CompanyName,
		phone:          s.Phone,
		oabNumber:      s.OABNumber,
		oabUF:          strings.ToUpper(s.OABUF),
		message:        s.Message,
		status:         StatusPending,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructAccessRequest(s AccessRequestState) (*AccessRequest, error) {
	if s.ID == 0 {
		return nil, fmt.Errorf("access request ID cannot be zero")
	}
	if !s.Status.IsValid() {
		return nil, fmt.Errorf("invalid access request status: %s", s.Status)
	}
	return &AccessRequest{
		id:              s.ID,
		sid:             s.SID,
		userEmail:       s.UserEmail,
		userName:        s.UserName,
		cpf:             s.CPF,
		requestedCargo:  s.RequestedCargo,
		tenantCNPJ:      s.TenantCNPJ,
		companyName:     s.CompanyName,
		phone:           s.Phone,
		oabNumber:       s.OABNumber,
		oabUF:           s.OABUF,
		message:         s.Message,
		status:          s.Status,
		respondedAt:     s.RespondedAt,
		respondedBy:     s.RespondedBy,
		rejectionReason: s.RejectionReason,
		createdAt:       s.CreatedAt,
		updatedAt:       s.UpdatedAt,
	}, nil
}

func (r *AccessRequest) ID() uint { return r.id }
func (r *AccessRequest) SID() string { return r.sid }
func (r *AccessRequest) UserEmail() string { return r.userEmail }
func (r *AccessRequest) UserName() string { return r.userName }
func (r *AccessRequest) CPF() string { return r.cpf }
func (r *AccessRequest) RequestedCargo() user.Cargo { return r.requestedCargo }
func (r *AccessRequest) TenantCNPJ() string { return r.tenantCNPJ }
func (r *AccessRequest) CompanyName() string { return r.companyName }
func (r *AccessRequest) Phone() string { return r.phone }
func (r *AccessRequest) OABNumber() string { return r.oabNumber }
func (r *AccessRequest) OABUF() string { return r.oabUF }
func (r *AccessRequest) Message() string { return r.message }
func (r *AccessRequest) Status() Status { return r.status }
func (r *AccessRequest) RespondedAt() *time.Time { return r.respondedAt }
func (r *AccessRequest) RespondedBy() string { return r.respondedBy }
func (r *AccessRequest) RejectionReason() string { return r.rejectionReason }
func (r *AccessRequest) CreatedAt() time.Time { return r.createdAt }
func (r *AccessRequest) UpdatedAt() time.Time { return r.updatedAt }

func (r *AccessRequest) SetID(id uint) {
	r.id = id
}

// Membership is the office data the approval applies to the requester.
func (r *AccessRequest) Membership() user.Membership {
	return user.Membership{
		TenantCNPJ: r.tenantCNPJ,
		Cargo:      r.requestedCargo,
		Phone:      r.phone,
		OABNumber:  r.oabNumber,
		OABUF:      r.oabUF,
	}
}

func (r *AccessRequest) Approve(adminEmail string) error {
	if r.status != StatusPending {
		return fmt.Errorf("access request already %s", r.status)
	}
	r.respond(StatusApproved, adminEmail)
	return nil
}

func (r *AccessRequest) Reject(adminEmail, reason string) error {
	if r.status != StatusPending {
		return fmt.Errorf("access request already %s", r.status)
	}
	if strings.TrimSpace(reason) == "" {
		return fmt.Errorf("rejection reason is required")
	}
	r.rejectionReason = strings.TrimSpace(reason)
	r.respond(StatusRejected, adminEmail)
	return nil
}

func (r *AccessRequest) respond(status Status, adminEmail string) {
	now := time.Now().UTC()
	r.status = status
	r.respondedAt = &now
	r.respondedBy = adminEmail
	r.updatedAt = now
}
