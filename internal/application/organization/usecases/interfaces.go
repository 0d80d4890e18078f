package usecases

import (
	"github.com/lexdoc-ai/lexdoc/internal/domain/audit"
)

type Auditor interface {
	Audit(r audit.Record)
}
