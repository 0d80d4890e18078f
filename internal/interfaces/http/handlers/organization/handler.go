// Package organization serves batch organization of loose office files.
package organization

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lexdoc-ai/lexdoc/internal/application/organization/dto"
	"github.com/lexdoc-ai/lexdoc/internal/application/organization/usecases"
	vo "github.com/lexdoc-ai/lexdoc/internal/domain/organization/valueobjects"
	"github.com/lexdoc-ai/lexdoc/internal/interfaces/http/handlers/common"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
	"github.com/lexdoc-ai/lexdoc/internal/shared/id"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
	"github.com/lexdoc-ai/lexdoc/internal/shared/utils"
)

const batchEvent = "progress"

type startBatchUseCase interface {
	Execute(ctx context.Context, cmd usecases.StartBatchCommand) (*dto.BatchDTO, error)
}

type getBatchUseCase interface {
	Execute(ctx context.Context, query usecases.GetBatchQuery) (*dto.BatchDTO, error)
}

type listOrganizedDocumentsUseCase interface {
	Execute(ctx context.Context, query usecases.ListOrganizedDocumentsQuery) (*usecases.ListOrganizedDocumentsResult, error)
}

type Handler struct {
	startUC        startBatchUseCase
	getUC          getBatchUseCase
	listUC         listOrganizedDocumentsUseCase
	sse            *common.SSEStreamer
	maxUploadBytes int64
	logger         logger.Interface
}

func NewHandler(
	startUC startBatchUseCase,
	getUC getBatchUseCase,
	listUC listOrganizedDocumentsUseCase,
	sse *common.SSEStreamer,
	maxUploadBytes int64,
	logger logger.Interface,
) *Handler {
	return &Handler{
		startUC:        startUC,
		getUC:          getUC,
		listUC:         listUC,
		sse:            sse,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// StartBatch handles POST /organized-documents/batches
// @Summary Organize a batch of files
// @Description Files are classified in the background. Follow progress on the batch or its event stream.
// @Tags organization
// @Accept multipart/form-data
// @Produce json
// @Security Bearer
// @Param files formData file true "Files to organize (repeat the field)"
// @Success 202 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 413 {object} utils.APIResponse
// @Router /organized-documents/batches [post]
func (h *Handler) StartBatch(c *gin.Context) {
	files, err := common.ReadUploads(c, common.FilesField, h.maxUploadBytes)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.startUC.Execute(c.Request.Context(), usecases.StartBatchCommand{
		Session: common.CurrentSession(c),
		Files:   files,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("organization batch accepted", "batch_id", result.ID, "files", result.Total)
	utils.AcceptedResponse(c, result, "Batch accepted for processing")
}

// GetBatch handles GET /organized-documents/batches/:id
// @Summary Batch progress
// @Tags organization
// @Produce json
// @Security Bearer
// @Param id path string true "Batch ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /organized-documents/batches/{id} [get]
func (h *Handler) GetBatch(c *gin.Context) {
	batchID, err := parseBatchID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetBatchQuery{
		Session: common.CurrentSession(c),
		BatchID: batchID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Events handles GET /organized-documents/batches/:id/events
// @Summary Batch progress as server-sent events
// @Description Emits a progress event whenever the batch changes and closes once it completes or fails.
// @Tags organization
// @Produce text/event-stream
// @Security Bearer
// @Param id path string true "Batch ID"
// @Success 200 {string} string "event stream"
// @Failure 404 {object} utils.APIResponse
// @Router /organized-documents/batches/{id}/events [get]
func (h *Handler) Events(c *gin.Context) {
	batchID, err := parseBatchID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetBatchQuery{Session: common.CurrentSession(c), BatchID: batchID}

	// Unknown batches fail as plain JSON before the stream opens.
	first, err := h.getUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	pending := first
	h.sse.Stream(c, batchEvent, func(ctx context.Context) (any, bool, error) {
		b := pending
		pending = nil
		if b == nil {
			var err error
			if b, err = h.getUC.Execute(ctx, query); err != nil {
				return nil, true, err
			}
		}
		return b, b.Status != string(vo.BatchStatusRunning), nil
	})
}

// List handles GET /organized-documents
// @Summary Organized documents of the office
// @Tags organization
// @Produce json
// @Security Bearer
// @Param batch_id query string false "Only documents of this batch"
// @Param setor query string false "Sector"
// @Param status query string false "Processing status"
// @Param page query int false "Page" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} utils.APIResponse
// @Router /organized-documents [get]
func (h *Handler) List(c *gin.Context) {
	batchID := c.Query("batch_id")
	if batchID != "" {
		if err := id.ValidatePrefix(batchID, id.PrefixBatch); err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid batch ID format, expected bat_xxxxx", batchID))
			return
		}
	}

	p := utils.ParsePagination(c)
	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListOrganizedDocumentsQuery{
		Session:  common.CurrentSession(c),
		BatchID:  batchID,
		Sector:   optionalQuery(c, "setor"),
		Status:   optionalQuery(c, "status"),
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Documents, result.TotalCount, result.Page, result.PageSize)
}

func parseBatchID(c *gin.Context) (string, error) {
	return utils.ParseSIDParam(c, "id", id.PrefixBatch, "batch")
}

func optionalQuery(c *gin.Context, key string) *string {
	v, ok := c.GetQuery(key)
	if !ok || v == "" {
		return nil
	}
	return &v
}
