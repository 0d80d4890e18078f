// Package member serves the office's user administration endpoints.
package member

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/application/user/dto"
	"github.com/lexdoc-ai/lexdoc/internal/application/user/usecases"
	"github.com/lexdoc-ai/lexdoc/internal/interfaces/http/handlers/common"
	"github.com/lexdoc-ai/lexdoc/internal/shared/id"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
	"github.com/lexdoc-ai/lexdoc/internal/shared/utils"
)

type listUsersUseCase interface {
	Execute(ctx context.Context, sc *session.Context) ([]*dto.UserDTO, error)
}

type createUserUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateUserCommand) (*dto.UserDTO, error)
}

type updateCargoUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateCargoCommand) (*dto.UserDTO, error)
}

type deleteUserUseCase interface {
	Execute(ctx context.Context, cmd usecases.DeleteUserCommand) error
}

type CreateUserRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Name      string `json:"full_name" binding:"required,min=2,max=120"`
	Password  string `json:"password" binding:"required,min=8,max=72"`
	Cargo     string `json:"cargo" binding:"required,oneof=admin advogado_senior advogado_junior estagiario"`
	Phone     string `json:"telefone" binding:"max=30"`
	OABNumber string `json:"numero_oab" binding:"max=20"`
	OABUF     string `json:"uf_oab" binding:"uf"`
}

type UpdateCargoRequest struct {
	Cargo string `json:"cargo" binding:"required,oneof=admin advogado_senior advogado_junior estagiario"`
}

type Handler struct {
	listUC        listUsersUseCase
	createUC      createUserUseCase
	updateCargoUC updateCargoUseCase
	deleteUC      deleteUserUseCase
	logger        logger.Interface
}

func NewHandler(
	listUC listUsersUseCase,
	createUC createUserUseCase,
	updateCargoUC updateCargoUseCase,
	deleteUC deleteUserUseCase,
	logger logger.Interface,
) *Handler {
	return &Handler{
		listUC:        listUC,
		createUC:      createUC,
		updateCargoUC: updateCargoUC,
		deleteUC:      deleteUC,
		logger:        logger,
	}
}

// List handles GET /users
// @Summary Office members
// @Tags users
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse
// @Router /users [get]
func (h *Handler) List(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context(), common.CurrentSession(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Create handles POST /users
// @Summary Add a member to the office
// @Tags users
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body CreateUserRequest true "Member data"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /users [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create user", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateUserCommand{
		Session:   common.CurrentSession(c),
		Email:     req.Email,
		Name:      req.Name,
		Password:  req.Password,
		Cargo:     req.Cargo,
		Phone:     req.Phone,
		OABNumber: req.OABNumber,
		OABUF:     req.OABUF,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "User created successfully")
}

// UpdateCargo handles PATCH /users/:id/role
// @Summary Change a member's cargo
// @Tags users
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "User ID"
// @Param request body UpdateCargoRequest true "New cargo"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /users/{id}/role [patch]
func (h *Handler) UpdateCargo(c *gin.Context) {
	userSID, err := utils.ParseSIDParam(c, "id", id.PrefixUser, "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateCargoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.updateCargoUC.Execute(c.Request.Context(), usecases.UpdateCargoCommand{
		Session: common.CurrentSession(c),
		UserSID: userSID,
		Cargo:   req.Cargo,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Cargo updated successfully", result)
}

// Delete handles DELETE /users/:id
// @Summary Remove a member from the office
// @Tags users
// @Security Bearer
// @Param id path string true "User ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Router /users/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	userSID, err := utils.ParseSIDParam(c, "id", id.PrefixUser, "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteUserCommand{
		Session: common.CurrentSession(c),
		UserSID: userSID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
