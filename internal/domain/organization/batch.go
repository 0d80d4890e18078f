package organization

import (
	"context"
	"time"

	vo "github.com/lexdoc-ai/lexdoc/internal/domain/organization/valueobjects"
)

// Batch tracks the progress of one background organization run.
type Batch struct {
	ID           string         `json:"id"`
	TenantCNPJ   string         `json:"cnpj_escritorio"`
	Status       vo.BatchStatus `json:"status"`
	Total        int            `json:"total"`
	Processed    int            `json:"processed"`
	Progress     float64        `json:"progress"`
	DocumentSIDs []string       `json:"document_ids"`
	Error        string         `json:"error,omitempty"`
	StartedAt    time.Time      `json:"started_at"`
	FinishedAt   *time.Time     `json:"finished_at,omitempty"`
}

func NewBatch(batchID, tenantCNPJ string, total int) *Batch {
	return &Batch{
		ID:           batchID,
		TenantCNPJ:   tenantCNPJ,
		Status:       vo.BatchStatusRunning,
		Total:        total,
		DocumentSIDs: []string{},
		StartedAt:    time.Now().UTC(),
	}
}

// Advance records one finished file and recomputes the percentage.
func (b *Batch) Advance(documentSID string) {
	b.Processed++
	b.DocumentSIDs = append(b.DocumentSIDs, documentSID)
	if b.Total > 0 {
		b.Progress = float64(b.Processed) / float64(b.Total) * 100
	}
}

func (b *Batch) Complete() {
	now := time.Now().UTC()
	b.Status = vo.BatchStatusCompleted
	b.Progress = 100
	b.FinishedAt = &now
}

func (b *Batch) Fail(reason string) {
	now := time.Now().UTC()
	b.Status = vo.BatchStatusFailed
	b.Error = reason
	b.FinishedAt = &now
}

// BatchStore keeps batch progress readable while the batch runs.
type BatchStore interface {
	Save(ctx context.Context, b *Batch) error
	Get(ctx context.Context, tenantCNPJ, batchID string) (*Batch, error)
}
