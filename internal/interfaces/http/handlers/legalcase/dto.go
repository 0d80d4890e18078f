package legalcase

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lexdoc-ai/lexdoc/internal/application/legalcase/usecases"
	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	domaincase "github.com/lexdoc-ai/lexdoc/internal/domain/legalcase"
	vo "github.com/lexdoc-ai/lexdoc/internal/domain/legalcase/valueobjects"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
	"github.com/lexdoc-ai/lexdoc/internal/shared/utils"
)

type CreateCaseRequest struct {
	Title         string   `json:"titulo" binding:"required,min=2,max=200"`
	Client        string   `json:"cliente" binding:"required,min=2,max=200"`
	ProcessNumber string   `json:"numero_processo" binding:"max=40"`
	Area          string   `json:"area_direito" binding:"required"`
	Status        string   `json:"status"`
	OpposingParty string   `json:"parte_contraria" binding:"max=200"`
	ClaimValue    *float64 `json:"valor_causa" binding:"omitempty,gte=0"`
	NextDeadline  string   `json:"prazo_proximo"`
	Summary       string   `json:"descricao" binding:"max=5000"`
}

func (r *CreateCaseRequest) ToCommand(sc *session.Context) (usecases.CreateCaseCommand, error) {
	deadline, err := parseDeadline(r.NextDeadline)
	if err != nil {
		return usecases.CreateCaseCommand{}, err
	}
	return usecases.CreateCaseCommand{
		Session:       sc,
		Title:         r.Title,
		Client:        r.Client,
		ProcessNumber: r.ProcessNumber,
		Area:          r.Area,
		Status:        r.Status,
		OpposingParty: r.OpposingParty,
		ClaimValue:    r.ClaimValue,
		NextDeadline:  deadline,
		Summary:       r.Summary,
	}, nil
}

// UpdateCaseRequest is a partial update. The Remove* flags clear optional
// values, since a JSON null cannot be told apart from an absent key.
type UpdateCaseRequest struct {
	Title          *string  `json:"titulo" binding:"omitempty,min=2,max=200"`
	Client         *string  `json:"cliente" binding:"omitempty,min=2,max=200"`
	ProcessNumber  *string  `json:"numero_processo" binding:"omitempty,max=40"`
	Area           *string  `json:"area_direito"`
	Status         *string  `json:"status"`
	OpposingParty  *string  `json:"parte_contraria" binding:"omitempty,max=200"`
	ClaimValue     *float64 `json:"valor_causa" binding:"omitempty,gte=0"`
	RemoveClaim    bool     `json:"remover_valor_causa"`
	NextDeadline   *string  `json:"prazo_proximo"`
	RemoveDeadline bool     `json:"remover_prazo"`
	Summary        *string  `json:"descricao" binding:"omitempty,max=5000"`
}

func (r *UpdateCaseRequest) ToUpdate() (domaincase.CaseUpdate, error) {
	upd := domaincase.CaseUpdate{
		Title:         r.Title,
		Client:        r.Client,
		ProcessNumber: r.ProcessNumber,
		OpposingParty: r.OpposingParty,
		ClaimValue:    r.ClaimValue,
		ClearClaim:    r.RemoveClaim,
		ClearDeadline: r.RemoveDeadline,
		Summary:       r.Summary,
	}
	if r.Area != nil {
		area, err := vo.NewLegalArea(*r.Area)
		if err != nil {
			return upd, errors.NewValidationError(err.Error())
		}
		upd.Area = &area
	}
	if r.Status != nil {
		status, err := vo.NewCaseStatus(*r.Status)
		if err != nil {
			return upd, errors.NewValidationError(err.Error())
		}
		upd.Status = &status
	}
	if r.NextDeadline != nil {
		deadline, err := parseDeadline(*r.NextDeadline)
		if err != nil {
			return upd, err
		}
		upd.NextDeadline = deadline
	}
	return upd, nil
}

func parseListCasesQuery(c *gin.Context, sc *session.Context) usecases.ListCasesQuery {
	p := utils.ParsePagination(c)
	return usecases.ListCasesQuery{
		Session:   sc,
		Status:    c.Query("status"),
		Area:      c.Query("area_direito"),
		Search:    strings.TrimSpace(c.Query("search")),
		Page:      p.Page,
		PageSize:  p.PageSize,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}
}

// parseDeadline accepts a calendar date or an RFC 3339 timestamp.
func parseDeadline(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, errors.NewValidationError("prazo_proximo must be YYYY-MM-DD or RFC 3339", s)
	}
	return &t, nil
}
