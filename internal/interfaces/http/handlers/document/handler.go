// Package document serves document intake, listing and filing generation.
package document

import (
	"context"
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lexdoc-ai/lexdoc/internal/application/document/dto"
	"github.com/lexdoc-ai/lexdoc/internal/application/document/usecases"
	filingdto "github.com/lexdoc-ai/lexdoc/internal/application/filing/dto"
	"github.com/lexdoc-ai/lexdoc/internal/application/intake"
	domaindoc "github.com/lexdoc-ai/lexdoc/internal/domain/document"
	"github.com/lexdoc-ai/lexdoc/internal/interfaces/http/handlers/common"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
	"github.com/lexdoc-ai/lexdoc/internal/shared/id"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
	"github.com/lexdoc-ai/lexdoc/internal/shared/utils"
)

type analyzeDocumentUseCase interface {
	Execute(ctx context.Context, cmd intake.AnalyzeDocumentCommand) (*intake.AnalyzeDocumentResult, error)
}

type generateFilingUseCase interface {
	Execute(ctx context.Context, cmd intake.GenerateFilingCommand) (*intake.GenerateFilingResult, error)
}

type listDocumentsUseCase interface {
	Execute(ctx context.Context, query usecases.ListDocumentsQuery) (*usecases.ListDocumentsResult, error)
}

type getDocumentUseCase interface {
	Execute(ctx context.Context, query usecases.GetDocumentQuery) (*dto.DocumentDTO, error)
}

type deleteDocumentUseCase interface {
	Execute(ctx context.Context, cmd usecases.DeleteDocumentCommand) error
}

// IntakeResponse is the body returned after an upload is analysed.
type IntakeResponse struct {
	Document          *dto.DocumentDTO   `json:"documento"`
	Analysis          domaindoc.Analysis `json:"analise"`
	CanGenerateFiling bool               `json:"pode_gerar_peca"`
	Degraded          bool               `json:"degradado"`
	Warnings          []intake.Warning   `json:"avisos"`
}

type GenerateFilingRequest struct {
	AgentID string `json:"agente_id"`
}

// GenerateFilingResponse carries the draft and the document it came from.
type GenerateFilingResponse struct {
	Filing           *filingdto.FilingDTO `json:"peca"`
	Document         *dto.DocumentDTO     `json:"documento"`
	AlreadyGenerated bool                 `json:"ja_gerada"`
	Warnings         []intake.Warning     `json:"avisos"`
}

type Handler struct {
	analyzeUC      analyzeDocumentUseCase
	generateUC     generateFilingUseCase
	listUC         listDocumentsUseCase
	getUC          getDocumentUseCase
	deleteUC       deleteDocumentUseCase
	maxUploadBytes int64
	logger         logger.Interface
}

func NewHandler(
	analyzeUC analyzeDocumentUseCase,
	generateUC generateFilingUseCase,
	listUC listDocumentsUseCase,
	getUC getDocumentUseCase,
	deleteUC deleteDocumentUseCase,
	maxUploadBytes int64,
	logger logger.Interface,
) *Handler {
	return &Handler{
		analyzeUC:      analyzeUC,
		generateUC:     generateUC,
		listUC:         listUC,
		getUC:          getUC,
		deleteUC:       deleteUC,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// Intake handles POST /documents
// @Summary Upload and analyse a document
// @Description Stores the file, extracts its text and records the strategic analysis. No filing is generated.
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Security Bearer
// @Param file formData file true "PDF, DOC, DOCX, JPG or PNG"
// @Param caso_id formData string false "Case to link the document to"
// @Param agente_id formData string false "Agent whose instructions drive the analysis"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 413 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /documents [post]
func (h *Handler) Intake(c *gin.Context) {
	file, err := common.ReadUpload(c, common.FileField, h.maxUploadBytes)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	caseSID, err := optionalSID(c.PostForm("caso_id"), id.PrefixCase, "case")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	agentSID, err := optionalSID(c.PostForm("agente_id"), id.PrefixAgent, "agent")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.analyzeUC.Execute(c.Request.Context(), intake.AnalyzeDocumentCommand{
		Session:  common.CurrentSession(c),
		File:     file,
		CaseSID:  caseSID,
		AgentSID: agentSID,
	})
	if err != nil {
		h.logWorkflowError("document intake failed", file.FileName, err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	message := "Document analyzed successfully"
	if result.Degraded {
		message = "Document analyzed with warnings"
	}
	utils.CreatedResponse(c, IntakeResponse{
		Document:          dto.ToDocumentDTO(result.Document),
		Analysis:          result.Analysis,
		CanGenerateFiling: result.CanGenerateFiling,
		Degraded:          result.Degraded,
		Warnings:          nonNilWarnings(result.Warnings),
	}, message)
}

// GenerateFiling handles POST /documents/:id/filings
// @Summary Generate the suggested filing for an analysed document
// @Description Returns 200 with the existing filing when one was already generated.
// @Tags documents
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Document ID"
// @Param request body GenerateFilingRequest false "Agent override"
// @Success 201 {object} utils.APIResponse
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /documents/{id}/filings [post]
func (h *Handler) GenerateFiling(c *gin.Context) {
	documentSID, err := utils.ParseSIDParam(c, "id", id.PrefixDocument, "document")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req GenerateFilingRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponseWithError(c, utils.BindingError(err))
			return
		}
	}
	agentSID, err := optionalSID(req.AgentID, id.PrefixAgent, "agent")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.generateUC.Execute(c.Request.Context(), intake.GenerateFilingCommand{
		Session:     common.CurrentSession(c),
		DocumentSID: documentSID,
		AgentSID:    agentSID,
	})
	if err != nil {
		h.logWorkflowError("filing generation failed", documentSID, err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	body := GenerateFilingResponse{
		Filing:           filingdto.ToFilingDTO(result.Filing),
		Document:         dto.ToDocumentSummaryDTO(result.Document),
		AlreadyGenerated: result.AlreadyGenerated,
		Warnings:         nonNilWarnings(result.Warnings),
	}
	if result.AlreadyGenerated {
		utils.SuccessResponse(c, http.StatusOK, "Filing already generated for this document", body)
		return
	}
	utils.CreatedResponse(c, body, "Filing generated successfully")
}

// List handles GET /documents
// @Summary Documents of the office
// @Tags documents
// @Produce json
// @Security Bearer
// @Param status query string false "Processing status"
// @Param caso_id query string false "Only documents of this case"
// @Param page query int false "Page" default(1)
// @Param page_size query int false "Page size" default(20)
// @Param sort_by query string false "created_at, updated_at, file_name, document_type or status"
// @Param sort_order query string false "asc or desc"
// @Success 200 {object} utils.APIResponse
// @Router /documents [get]
func (h *Handler) List(c *gin.Context) {
	p := utils.ParsePagination(c)
	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListDocumentsQuery{
		Session:   common.CurrentSession(c),
		Status:    c.Query("status"),
		CaseSID:   c.Query("caso_id"),
		Page:      p.Page,
		PageSize:  p.PageSize,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Documents, result.TotalCount, result.Page, result.PageSize)
}

// Get handles GET /documents/:id
// @Summary Document with its extracted text
// @Tags documents
// @Produce json
// @Security Bearer
// @Param id path string true "Document ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /documents/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	documentSID, err := utils.ParseSIDParam(c, "id", id.PrefixDocument, "document")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetDocumentQuery{
		Session:     common.CurrentSession(c),
		DocumentSID: documentSID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Delete handles DELETE /documents/:id
// @Summary Delete a document and its stored file
// @Tags documents
// @Security Bearer
// @Param id path string true "Document ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Router /documents/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	documentSID, err := utils.ParseSIDParam(c, "id", id.PrefixDocument, "document")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteDocumentCommand{
		Session:     common.CurrentSession(c),
		DocumentSID: documentSID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *Handler) logWorkflowError(msg, subject string, err error) {
	var wfErr *intake.WorkflowError
	if stderrors.As(err, &wfErr) {
		h.logger.Warnw(msg, "subject", subject, "kind", wfErr.Kind.String(), "error", wfErr.Err)
		return
	}
	h.logger.Warnw(msg, "subject", subject, "error", err)
}

func optionalSID(raw, prefix, entity string) (*string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if err := id.ValidatePrefix(raw, prefix); err != nil {
		return nil, errors.NewValidationError("invalid "+entity+" ID format, expected "+prefix+"_xxxxx", raw)
	}
	return &raw, nil
}

func nonNilWarnings(w []intake.Warning) []intake.Warning {
	if w == nil {
		return []intake.Warning{}
	}
	return w
}
