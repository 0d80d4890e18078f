package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/lexdoc-ai/lexdoc/internal/domain/audit"
	"github.com/lexdoc-ai/lexdoc/internal/domain/shared/services"
	"github.com/lexdoc-ai/lexdoc/internal/domain/user"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

type mockUserRepository struct {
	users   map[string]*user.User
	updated []string
	deleted []string
}

func newMockUserRepository(us ...*user.User) *mockUserRepository {
	m := &mockUserRepository{users: map[string]*user.User{}}
	for _, u := range us {
		m.users[u.SID()] = u
	}
	return m
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	u.SetID(uint(len(m.users) + 1))
	m.users[u.SID()] = u
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	m.updated = append(m.updated, u.SID())
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, tenantCNPJ, sid string) error {
	m.deleted = append(m.deleted, sid)
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

// fakeHasher prefixes the password so tests can check what was stored.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (fakeHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

type fakeTokens struct {
	issued []string
}

func (f *fakeTokens) Generate(userSID string) (*TokenPair, error) {
	f.issued = append(f.issued, userSID)
	return &TokenPair{AccessToken: "access-" + userSID, RefreshToken: "refresh-" + userSID, ExpiresIn: 900}, nil
}

func (f *fakeTokens) Refresh(refreshToken string) (*TokenPair, error) {
	sid, ok := strings.CutPrefix(refreshToken, "refresh-")
	if !ok {
		return nil, errors.New("invalid token")
	}
	return &TokenPair{AccessToken: "access2-" + sid, RefreshToken: "refresh-" + sid, ExpiresIn: 900}, nil
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
