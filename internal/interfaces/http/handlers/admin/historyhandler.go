package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"twoloom/internal/application/history/usecases"
	"twoloom/internal/shared/i18n"
	"twoloom/internal/shared/logger"
	"twoloom/internal/shared/utils"
)

type HistoryHandler struct {
	createUC CreateMilestoneExecutor
	updateUC UpdateMilestoneExecutor
	deleteUC DeleteMilestoneExecutor
	logger   logger.Interface
}

func NewHistoryHandler(
	createUC CreateMilestoneExecutor,
	updateUC UpdateMilestoneExecutor,
	deleteUC DeleteMilestoneExecutor,
	logger logger.Interface,
) *HistoryHandler {
	return &HistoryHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		logger:   logger,
	}
}

type CreateMilestoneRequest struct {
	Title       map[string]string `json:"title" binding:"required"`
	Description map[string]string `json:"description"`
	Date        string            `json:"date" binding:"required"`
	OrderIndex  int               `json:"order_index"`
}

type UpdateMilestoneRequest struct {
	Title       map[string]string `json:"title" binding:"required"`
	Description map[string]string `json:"description"`
	Date        string            `json:"date" binding:"required"`
	IsActive    *bool             `json:"is_active" binding:"required"`
	OrderIndex  int               `json:"order_index"`
}

// CreateMilestone handles POST /api/admin/history
func (h *HistoryHandler) CreateMilestone(c *gin.Context) {
	var req CreateMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create milestone", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	cmd := usecases.CreateMilestoneCommand{
		Title:       i18n.LocalizedText(req.Title),
		Description: i18n.LocalizedText(req.Description),
		Date:        req.Date,
		OrderIndex:  req.OrderIndex,
	}

	result, err := h.createUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"milestone": result.Milestone}, "Milestone created successfully")
}

// UpdateMilestone handles PUT /api/admin/history/:id
func (h *HistoryHandler) UpdateMilestone(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update milestone", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	cmd := usecases.UpdateMilestoneCommand{
		MilestoneID: id,
		Title:       i18n.LocalizedText(req.Title),
		Description: i18n.LocalizedText(req.Description),
		Date:        req.Date,
		IsActive:    *req.IsActive,
		OrderIndex:  req.OrderIndex,
	}

	result, err := h.updateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Milestone updated successfully", gin.H{"milestone": result.Milestone})
}

// DeleteMilestone handles DELETE /api/admin/history/:id
func (h *HistoryHandler) DeleteMilestone(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteMilestoneCommand{MilestoneID: id}
	if err := h.deleteUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
