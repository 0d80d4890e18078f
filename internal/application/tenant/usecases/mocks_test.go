package usecases

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/lexdoc-ai/lexdoc/internal/domain/audit"
	"github.com/lexdoc-ai/lexdoc/internal/domain/shared/services"
	"github.com/lexdoc-ai/lexdoc/internal/domain/tenant"
	"github.com/lexdoc-ai/lexdoc/internal/domain/user"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

type mockTenantRepository struct {
	tenants map[string]*tenant.Tenant
	updates int

	CreateFunc func(ctx context.Context, t *tenant.Tenant) error
	UpdateFunc func(ctx context.Context, t *tenant.Tenant) error
}

func newMockTenantRepository(ts ...*tenant.Tenant) *mockTenantRepository {
	m := &mockTenantRepository{tenants: map[string]*tenant.Tenant{}}
	for _, t := range ts {
		m.tenants[t.CNPJ()] = t
	}
	return m
}

func (m *mockTenantRepository) Create(ctx context.Context, t *tenant.Tenant) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	t.SetID(uint(len(m.tenants) + 1))
	m.tenants[t.CNPJ()] = t
	return nil
}

func (m *mockTenantRepository) Update(ctx context.Context, t *tenant.Tenant) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	m.updates++
	m.tenants[t.CNPJ()] = t
	return nil
}

func (m *mockTenantRepository) GetByCNPJ(ctx context.Context, cnpj string) (*tenant.Tenant, error) {
	return m.tenants[cnpj], nil
}

func (m *mockTenantRepository) ExistsByCNPJ(ctx context.Context, cnpj string) (bool, error) {
	_, ok := m.tenants[cnpj]
	return ok, nil
}

type mockDepartmentRepository struct {
	depts []*tenant.Department

	CreateFunc func(ctx context.Context, d *tenant.Department) error
}

func (m *mockDepartmentRepository) Create(ctx context.Context, d *tenant.Department) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, d)
	}
	d.SetID(uint(len(m.depts) + 1))
	m.depts = append(m.depts, d)
	return nil
}

func (m *mockDepartmentRepository) ListByTenant(ctx context.Context, tenantCNPJ string) ([]*tenant.Department, error) {
	var out []*tenant.Department
	for _, d := range m.depts {
		if d.TenantCNPJ() == tenantCNPJ {
			out = append(out, d)
		}
	}
	return out, nil
}

type mockUserRepository struct {
	users   map[string]*user.User
	updated []string
}

func newMockUserRepository(us ...*user.User) *mockUserRepository {
	m := &mockUserRepository{users: map[string]*user.User{}}
	for _, u := range us {
		m.users[u.SID()] = u
	}
	return m
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	m.users[u.SID()] = u
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	m.updated = append(m.updated, u.SID())
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, tenantCNPJ, sid string) error {
	delete(m.users, sid)
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	for _, u := range m.users {
		if u.ID() == id {
			return u, nil
		}
	}
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
	u := m.users[sid]
	if u == nil || u.TenantCNPJ() != tenantCNPJ {
		return nil, nil
	}
	return u, nil
}

func (m *mockUserRepository) GetByUserSID(ctx context.Context, sid string) (*user.User, error) {
	return m.users[sid], nil
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

// mockTransactor runs fn directly; a failing fn is reported as a rollback.
type mockTransactor struct {
	calls     int
	rollbacks int
}

func (m *mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	if err := fn(ctx); err != nil {
		m.rollbacks++
		return err
	}
	return nil
}

type mockSessions struct {
	invalidated []string
}

func (m *mockSessions) Invalidate(ctx context.Context, userSID string) {
	m.invalidated = append(m.invalidated, userSID)
}

type mockSideChannel struct {
	mu      sync.Mutex
	records []audit.Record
	emails  []services.EmailMessage
}

func (m *mockSideChannel) Audit(r audit.Record) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, r)
}

func (m *mockSideChannel) Email(msg services.EmailMessage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emails = append(m.emails, msg)
}

type mockStorage struct {
	uploaded []services.UploadInput
	removed  []string

	UploadFunc func(ctx context.Context, in services.UploadInput) (*services.StoredFile, error)
}

func (m *mockStorage) Upload(ctx context.Context, in services.UploadInput) (*services.StoredFile, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, in)
	}
	if _, err := io.ReadAll(in.Body); err != nil {
		return nil, err
	}
	m.uploaded = append(m.uploaded, in)
	return &services.StoredFile{Key: in.Key, URL: "https://files.test/" + in.Key, ContentType: in.ContentType, Size: in.Size}, nil
}

func (m *mockStorage) Remove(ctx context.Context, key string) error {
	m.removed = append(m.removed, key)
	return nil
}

func (m *mockStorage) URL(ctx context.Context, key string) (string, error) {
	return "https://files.test/" + key, nil
}

var errBoom = errors.New("boom")

func newTestLogger() logger.Interface {
	return logger.NewLogger()
}
