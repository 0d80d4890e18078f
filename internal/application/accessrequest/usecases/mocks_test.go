package usecases

import (
	"context"

	"github.com/lexdoc-ai/lexdoc/internal/domain/accessrequest"
	"github.com/lexdoc-ai/lexdoc/internal/domain/audit"
	"github.com/lexdoc-ai/lexdoc/internal/domain/shared/services"
	"github.com/lexdoc-ai/lexdoc/internal/domain/tenant"
	"github.com/lexdoc-ai/lexdoc/internal/domain/user"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

type mockRequestRepository struct {
	requests []*accessrequest.AccessRequest
	updates  int

	UpdateFunc func(ctx context.Context, r *accessrequest.AccessRequest) error
}

func (m *mockRequestRepository) Create(ctx context.Context, r *accessrequest.AccessRequest) error {
	r.SetID(uint(len(m.requests) + 1))
	m.requests = append(m.requests, r)
	return nil
}

func (m *mockRequestRepository) Update(ctx context.Context, r *accessrequest.AccessRequest) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r)
	}
	m.updates++
	return nil
}

func (m *mockRequestRepository) GetBySID(ctx context.Context, tenantCNPJ, sid string) (*accessrequest.AccessRequest, error) {
	for _, r := range m.requests {
		if r.SID() == sid && r.TenantCNPJ() == tenantCNPJ {
			return r, nil
		}
	}
	return nil, nil
}

func (m *mockRequestRepository) ListByStatus(ctx context.Context, tenantCNPJ string, status accessrequest.Status) ([]*accessrequest.AccessRequest, error) {
	var out []*accessrequest.AccessRequest
	for _, r := range m.requests {
		if r.TenantCNPJ() == tenantCNPJ && r.Status() == status {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockRequestRepository) ExistsPending(ctx context.Context, userEmail, tenantCNPJ string) (bool, error) {
	for _, r := range m.requests {
		if r.UserEmail() == userEmail && r.TenantCNPJ() == tenantCNPJ && r.Status() == accessrequest.StatusPending {
			return true, nil
		}
	}
	return false, nil
}

type mockTenantRepository struct {
	tenants map[string]*tenant.Tenant
}

func (m *mockTenantRepository) Create(ctx context.Context, t *tenant.Tenant) error { return nil }
func (m *mockTenantRepository) Update(ctx context.Context, t *tenant.Tenant) error { return nil }

func (m *mockTenantRepository) GetByCNPJ(ctx context.Context, cnpj string) (*tenant.Tenant, error) {
	return m.tenants[cnpj], nil
}

func (m *mockTenantRepository) ExistsByCNPJ(ctx context.Context, cnpj string) (bool, error) {
	_, ok := m.tenants[cnpj]
	return ok, nil
}

type mockUserRepository struct {
	users   []*user.User
	updated []string

	UpdateFunc func(ctx context.Context, u *user.User) error
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	m.users = append(m.users, u)
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	m.updated = append(m.updated, u.SID())
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, tenantCNPJ, sid string) error { return nil }

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	for _, u := range m.users {
		if u.Email() == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepository) GetBySID(ctx context.Context, tenantCNPJ, sid string) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) GetByUserSID(ctx context.Context, sid string) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	u, _ := m.GetByEmail(ctx, email)
	return u != nil, nil
}

func (m *mockUserRepository) ListByTenant(ctx context.Context, tenantCNPJ string) ([]*user.User, error) {
	var out []*user.User
	for _, u := range m.users {
		if u.TenantCNPJ() == tenantCNPJ {
			out = append(out, u)
		}
	}
	return out, nil
}

type mockTransactor struct {
	calls int
}

func (m *mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type mockSessions struct {
	invalidated []string
}

func (m *mockSessions) Invalidate(ctx context.Context, userSID string) {
	m.invalidated = append(m.invalidated, userSID)
}

type mockSideChannel struct {
	records []audit.Record
	emails  []services.EmailMessage
}

func (m *mockSideChannel) Audit(r audit.Record) { m.records = append(m.records, r) }
func (m *mockSideChannel) Email(msg services.EmailMessage) { m.emails = append(m.emails, msg) }

func newTestLogger() logger.Interface {
	return logger.NewLogger()
}
