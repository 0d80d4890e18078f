// Package intake runs the document workflow: upload, text extraction,
// strategic analysis and the explicitly triggered filing generation.
package intake

import (
	"fmt"
)

// ErrorKind classifies what went wrong in a workflow step.
type ErrorKind string

const (
	KindUploadFailed       ErrorKind = "UploadFailed"
	KindExtractionDegraded ErrorKind = "ExtractionDegraded"
	KindAnalysisFailed     ErrorKind = "AnalysisFailed"
	KindGenerationFailed   ErrorKind = "GenerationFailed"
	KindMetricsUpdateRace  ErrorKind = "MetricsUpdateRace"
)

func ErrorKinds() []ErrorKind {
	return []ErrorKind{
		KindUploadFailed,
		KindExtractionDegraded,
		KindAnalysisFailed,
		KindGenerationFailed,
		KindMetricsUpdateRace,
	}
}

func (k ErrorKind) String() string {
	return string(k)
}

// IsFatal reports whether the kind aborts the workflow. Non-fatal kinds are
// surfaced as warnings on the result.
func (k ErrorKind) IsFatal() bool {
	switch k {
	case KindUploadFailed, KindAnalysisFailed, KindGenerationFailed:
		return true
	}
	return false
}

func (k ErrorKind) Label() string {
	switch k {
	case KindUploadFailed:
		return "Falha no upload do arquivo"
	case KindExtractionDegraded:
		return "Extração de texto degradada"
	case KindAnalysisFailed:
		return "Falha na análise estratégica"
	case KindGenerationFailed:
		return "Falha na geração da peça"
	case KindMetricsUpdateRace:
		return "Métricas do agente não atualizadas"
	default:
		return "Erro desconhecido"
	}
}

// WorkflowError is a fatal step failure. Err is usually an *errors.AppError
// so the HTTP layer keeps its status mapping.
type WorkflowError struct {
	Kind ErrorKind
	Err  error
}

func (e *WorkflowError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *WorkflowError) Unwrap() error {
	return e.Err
}

func newWorkflowError(kind ErrorKind, err error) *WorkflowError {
	return &WorkflowError{Kind: kind, Err: err}
}

// Warning is a non-fatal step failure reported alongside a successful result.
type Warning struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

func newWarning(kind ErrorKind, err error) Warning {
	msg := kind.Label()
	if err != nil {
		msg = fmt.Sprintf("%s: %v", msg, err)
	}
	return Warning{Kind: kind, Message: msg}
}
