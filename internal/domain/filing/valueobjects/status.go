package valueobjects

import "fmt"

// FilingStatus is the human review state of a filing.
type FilingStatus string

const (
	FilingStatusDraft    FilingStatus = "rascunho"
	FilingStatusInReview FilingStatus = "em_revisao"
	FilingStatusReviewed FilingStatus = "revisado"
	FilingStatusApproved FilingStatus = "aprovado"
	FilingStatusSent     FilingStatus = "enviado"
)

var filingStatuses = []FilingStatus{
	FilingStatusDraft,
	FilingStatusInReview,
	FilingStatusReviewed,
	FilingStatusApproved,
	FilingStatusSent,
}

var filingStatusTransitions = map[FilingStatus][]FilingStatus{
	FilingStatusDraft:    {FilingStatusInReview, FilingStatusApproved},
	FilingStatusInReview: {FilingStatusDraft, FilingStatusReviewed},
	FilingStatusReviewed: {FilingStatusInReview, FilingStatusApproved},
	FilingStatusApproved: {FilingStatusInReview, FilingStatusSent},
	FilingStatusSent:     {},
}

func FilingStatuses() []FilingStatus {
	return append([]FilingStatus(nil), filingStatuses...)
}

func (s FilingStatus) String() string {
	return string(s)
}

func (s FilingStatus) IsValid() bool {
	_, ok := filingStatusTransitions[s]
	return ok
}

func (s FilingStatus) Label() string {
	switch s {
	case FilingStatusDraft:
		return "Rascunho"
	case FilingStatusInReview:
		return "Em Revisão"
	case FilingStatusReviewed:
		return "Revisado"
	case FilingStatusApproved:
		return "Aprovado"
	case FilingStatusSent:
		return "Enviado"
	default:
		return "Status desconhecido"
	}
}

// CanTransitionTo reports whether the review flow allows moving to target.
// Staying in the same status is always allowed.
func (s FilingStatus) CanTransitionTo(target FilingStatus) bool {
	if s == target {
		return true
	}
	for _, allowed := range filingStatusTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

func (s FilingStatus) IsFinal() bool {
	return s == FilingStatusSent
}

func NewFilingStatus(s string) (FilingStatus, error) {
	status := FilingStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid filing status: %s", s)
	}
	return status, nil
}
