package usecases

import (
	"context"
	"errors"

	"github.com/lexdoc-ai/lexdoc/internal/domain/document"
	vo "github.com/lexdoc-ai/lexdoc/internal/domain/document/valueobjects"
	"github.com/lexdoc-ai/lexdoc/internal/domain/shared/services"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

var errBoom = errors.New("boom")

type mockDocumentRepository struct {
	docs       []*document.Document
	deleted    []string
	lastFilter document.Filter

	DeleteFunc func(ctx context.Context, tenantCNPJ, sid string) error
	ListFunc   func(ctx context.Context, filter document.Filter) ([]*document.Document, int64, error)
}

func (m *mockDocumentRepository) Create(ctx context.Context, d *document.Document) error {
	d.SetID(uint(len(m.docs) + 1))
	m.docs = append(m.docs, d)
	return nil
}

func (m *mockDocumentRepository) Update(ctx context.Context, d *document.Document) error { return nil }

func (m *mockDocumentRepository) Delete(ctx context.Context, tenantCNPJ, sid string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, tenantCNPJ, sid)
	}
	m.deleted = append(m.deleted, sid)
	return nil
}

func (m *mockDocumentRepository) GetBySID(ctx context.Context, tenantCNPJ, sid string) (*document.Document, error) {
	for _, d := range m.docs {
		if d.SID() == sid && d.TenantCNPJ() == tenantCNPJ {
			return d, nil
		}
	}
	return nil, nil
}

func (m *mockDocumentRepository) List(ctx context.Context, filter document.Filter) ([]*document.Document, int64, error) {
	m.lastFilter = filter
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return m.docs, int64(len(m.docs)), nil
}

func (m *mockDocumentRepository) DetachCase(ctx context.Context, tenantCNPJ, caseSID string) (int64, error) {
	return 0, nil
}

func (m *mockDocumentRepository) DetachFiling(ctx context.Context, tenantCNPJ, filingSID string) (int64, error) {
	return 0, nil
}

func (m *mockDocumentRepository) CountByStatus(ctx context.Context, tenantCNPJ string) (map[vo.ProcessingStatus]int64, error) {
	return nil, nil
}

type mockStorage struct {
	removed    []string
	RemoveFunc func(ctx context.Context, key string) error
}

func (m *mockStorage) Upload(ctx context.Context, in services.UploadInput) (*services.StoredFile, error) {
	return &services.StoredFile{Key: in.Key, URL: "https://files.test/" + in.Key}, nil
}

func (m *mockStorage) Remove(ctx context.Context, key string) error {
	m.removed = append(m.removed, key)
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, key)
	}
	return nil
}

func (m *mockStorage) URL(ctx context.Context, key string) (string, error) {
	return "https://files.test/" + key, nil
}

func newTestLogger() logger.Interface {
	return logger.NewLogger()
}
