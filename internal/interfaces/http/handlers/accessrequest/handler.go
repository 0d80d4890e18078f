package accessrequest

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lexdoc-ai/lexdoc/internal/application/accessrequest/dto"
	"github.com/lexdoc-ai/lexdoc/internal/application/accessrequest/usecases"
	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/interfaces/http/handlers/common"
	"github.com/lexdoc-ai/lexdoc/internal/shared/id"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
	"github.com/lexdoc-ai/lexdoc/internal/shared/utils"
)

type submitUseCase interface {
	Execute(ctx context.Context, cmd usecases.SubmitAccessRequestCommand) (*dto.AccessRequestDTO, error)
}

type listUseCase interface {
	Execute(ctx context.Context, query usecases.ListAccessRequestsQuery) ([]*dto.AccessRequestDTO, error)
}

type respondUseCase interface {
	Execute(ctx context.Context, cmd usecases.RespondAccessRequestCommand) (*dto.AccessRequestDTO, error)
}

type SubmitRequest struct {
	UserName       string `json:"nome_completo" binding:"required,min=2,max=120"`
	CPF            string `json:"cpf" binding:"cpf"`
	RequestedCargo string `json:"cargo_solicitado" binding:"required,oneof=admin advogado_senior advogado_junior estagiario"`
	TenantCNPJ     string `json:"cnpj_empresa" binding:"required,cnpj"`
	Phone          string `json:"telefone" binding:"max=30"`
	OABNumber      string `json:"numero_oab" binding:"max=20"`
	OABUF          string `json:"uf_oab" binding:"uf"`
	Message        string `json:"mensagem" binding:"max=1000"`
}

func (r *SubmitRequest) ToCommand(sc *session.Context) usecases.SubmitAccessRequestCommand {
	return usecases.SubmitAccessRequestCommand{
		Session:        sc,
		UserName:       r.UserName,
		CPF:            r.CPF,
		RequestedCargo: r.RequestedCargo,
		TenantCNPJ:     r.TenantCNPJ,
		Phone:          r.Phone,
		OABNumber:      r.OABNumber,
		OABUF:          r.OABUF,
		Message:        r.Message,
	}
}

type RejectRequest struct {
	Reason string `json:"motivo" binding:"required,min=3,max=500"`
}

// Handler serves the join-an-office workflow.
type Handler struct {
	submitUC  submitUseCase
	listUC    listUseCase
	approveUC respondUseCase
	rejectUC  respondUseCase
	logger    logger.Interface
}

func NewHandler(
	submitUC submitUseCase,
	listUC listUseCase,
	approveUC respondUseCase,
	rejectUC respondUseCase,
	logger logger.Interface,
) *Handler {
	return &Handler{
		submitUC:  submitUC,
		listUC:    listUC,
		approveUC: approveUC,
		rejectUC:  rejectUC,
		logger:    logger,
	}
}

// Submit handles POST /access-requests
// @Summary Ask to join an office
// @Tags access-requests
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body SubmitRequest true "Request data"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /access-requests [post]
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for access request", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.submitUC.Execute(c.Request.Context(), req.ToCommand(common.CurrentSession(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Access request submitted")
}

// ListPending handles GET /access-requests/pending
// @Summary Access requests awaiting a decision
// @Tags access-requests
// @Produce json
// @Security Bearer
// @Param status query string false "pendente, aprovada or rejeitada" default(pendente)
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /access-requests/pending [get]
func (h *Handler) ListPending(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListAccessRequestsQuery{
		Session: common.CurrentSession(c),
		Status:  c.Query("status"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Approve handles POST /access-requests/:id/approve
// @Summary Approve an access request
// @Tags access-requests
// @Produce json
// @Security Bearer
// @Param id path string true "Request ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /access-requests/{id}/approve [post]
func (h *Handler) Approve(c *gin.Context) {
	requestID, err := utils.ParseSIDParam(c, "id", id.PrefixAccessRequest, "access request")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.approveUC.Execute(c.Request.Context(), usecases.RespondAccessRequestCommand{
		Session:   common.CurrentSession(c),
		RequestID: requestID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Access request approved", result)
}

// Reject handles POST /access-requests/:id/reject
// @Summary Reject an access request
// @Tags access-requests
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Request ID"
// @Param request body RejectRequest true "Reason shown to the requester"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /access-requests/{id}/reject [post]
func (h *Handler) Reject(c *gin.Context) {
	requestID, err := utils.ParseSIDParam(c, "id", id.PrefixAccessRequest, "access request")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.rejectUC.Execute(c.Request.Context(), usecases.RespondAccessRequestCommand{
		Session:   common.CurrentSession(c),
		RequestID: requestID,
		Reason:    req.Reason,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Access request rejected", result)
}
