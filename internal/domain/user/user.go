package user

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/lexdoc-ai/lexdoc/internal/shared/id"
)

// User is a person who signs in. tenantCNPJ stays empty until the user
// onboards an office or an access request is approved.
type User struct {
	id           uint
	sid          string
	email        string
	name         string
	passwordHash string
	tenantCNPJ   string
	cargo        Cargo
	phone        string
	oabNumber    string
	oabUF        string
	createdAt    time.Time
	updatedAt    time.Time
}

type UserState struct {
	ID           uint
	SID          string
	Email        string
	Name         string
	PasswordHash string
	TenantCNPJ   string
	Cargo        Cargo
	Phone        string
	OABNumber    string
	OABUF        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Membership is the office data applied when a user joins a tenant.
type Membership struct {
	TenantCNPJ string
	Cargo      Cargo
	Phone      string
	OABNumber  string
	OABUF      string
}

func NewUser(email, name, passwordHash string) (*User, error) {
	normalized, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	sid, err := id.NewUserID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user ID: %w", err)
	}

	now := time.Now().UTC()
	return &User{
		sid:          sid,
		email:        normalized,
		name:         name,
		passwordHash: passwordHash,
		cargo:        CargoJuniorLawyer,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(s UserState) (*User, error) {
	if s.ID == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if s.Email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if s.Cargo != "" && !s.Cargo.IsValid() {
		return nil, fmt.Errorf("invalid cargo: %s", s.Cargo)
	}
	return &User{
		id:           s.ID,
		sid:          s.SID,
		email:        s.Email,
		name:         s.Name,
		passwordHash: s.PasswordHash,
		tenantCNPJ:   s.TenantCNPJ,
		cargo:        s.Cargo,
		phone:        s.Phone,
		oabNumber:    s.OABNumber,
		oabUF:        s.OABUF,
		createdAt:    s.CreatedAt,
		updatedAt:    s.UpdatedAt,
	}, nil
}

// NormalizeEmail lowercases and validates an address.
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", fmt.Errorf("email is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", fmt.Errorf("invalid email: %s", email)
	}
	return email, nil
}

func (u *User) ID() uint { return u.id }
func (u *User) SID() string { return u.sid }
func (u *User) Email() string { return u.email }
func (u *User) Name() string { return u.name }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) TenantCNPJ() string { return u.tenantCNPJ }
func (u *User) Cargo() Cargo { return u.cargo }
func (u *User) Phone() string { return u.phone }
func (u *User) OABNumber() string { return u.oabNumber }
func (u *User) OABUF() string { return u.oabUF }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

func (u *User) SetID(id uint) {
	u.id = id
}

func (u *User) HasTenant() bool {
	return u.tenantCNPJ != ""
}

// IsAdmin reports whether the user administers their office.
func (u *User) IsAdmin() bool {
	return u.HasTenant() && u.cargo.IsAdmin()
}

// JoinTenant attaches the user to an office. A user already bound to another
// office cannot be moved.
func (u *User) JoinTenant(m Membership) error {
	if m.TenantCNPJ == "" {
		return fmt.Errorf("tenant CNPJ is required")
	}
	if u.tenantCNPJ != "" && u.tenantCNPJ != m.TenantCNPJ {
		return fmt.Errorf("user already belongs to another office")
	}
	if !m.Cargo.IsValid() {
		return fmt.Errorf("invalid cargo: %s", m.Cargo)
	}
	u.tenantCNPJ = m.TenantCNPJ
	u.cargo = m.Cargo
	if m.Phone != "" {
		u.phone = m.Phone
	}
	if m.OABNumber != "" {
		u.oabNumber = m.OABNumber
	}
	if m.OABUF != "" {
		u.oabUF = strings.ToUpper(m.OABUF)
	}
	u.touch()
	return nil
}

func (u *User) ChangeCargo(c Cargo) error {
	if !c.IsValid() {
		return fmt.Errorf("invalid cargo: %s", c)
	}
	u.cargo = c
	u.touch()
	return nil
}

func (u *User) UpdateProfile(name, phone, oabNumber, oabUF string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name is required")
	}
	u.name = name
	u.phone = phone
	u.oabNumber = oabNumber
	u.oabUF = strings.ToUpper(oabUF)
	u.touch()
	return nil
}

func (u *User) touch() {
	u.updatedAt = time.Now().UTC()
}
