package services

import (
	"context"
	"time"
)

// PrintableFiling is the content laid out in an exported filing.
type PrintableFiling struct {
	Title         string
	Heading       string
	OfficeName    string
	ProcessNumber string
	Body          string
	LegalDeadline *time.Time
	GeneratedAt   time.Time
}

type FilingExporter interface {
	ExportPDF(ctx context.Context, f PrintableFiling) ([]byte, error)
}
