package accessrequest

type Status string

const (
	StatusPending  Status = "pendente"
	StatusApproved Status = "aprovada"
	StatusRejected Status = "rejeitada"
)

var statuses = []Status{StatusPending, StatusApproved, StatusRejected}

func Statuses() []Status {
	return append([]Status(nil), statuses...)
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Pendente"
	case StatusApproved:
		return "Aprovada"
	case StatusRejected:
		return "Rejeitada"
	default:
		return "Status desconhecido"
	}
}
