package usecases

import "github.com/lexdoc-ai/lexdoc/internal/domain/audit"

type Auditor interface {
	Audit(r audit.Record)
}

// ContentRenderer turns edited markdown into the stored HTML.
type ContentRenderer interface {
	RenderFiling(text string) (string, error)
}
