package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"twoloom/internal/application/portfolio/usecases"
	"twoloom/internal/shared/i18n"
	"twoloom/internal/shared/logger"
	"twoloom/internal/shared/utils"
)

type CategoryHandler struct {
	createUC CreateCategoryExecutor
	updateUC UpdateCategoryExecutor
	deleteUC DeleteCategoryExecutor
	logger   logger.Interface
}

func NewCategoryHandler(
	createUC CreateCategoryExecutor,
	updateUC UpdateCategoryExecutor,
	deleteUC DeleteCategoryExecutor,
	logger logger.Interface,
) *CategoryHandler {
	return &CategoryHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		logger:   logger,
	}
}

type CreateCategoryRequest struct {
	Name       map[string]string `json:"name" binding:"required"`
	Slug       string            `json:"slug" binding:"required"`
	OrderIndex int               `json:"order_index"`
}

type UpdateCategoryRequest struct {
	Name       map[string]string `json:"name" binding:"required"`
	IsActive   *bool             `json:"is_active" binding:"required"`
	OrderIndex int               `json:"order_index"`
}

// CreateCategory handles POST /api/admin/categories
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create category", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	cmd := usecases.CreateCategoryCommand{
		Name:       i18n.LocalizedText(req.Name),
		Slug:       req.Slug,
		OrderIndex: req.OrderIndex,
	}

	result, err := h.createUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"category": result.Category}, "Category created successfully")
}

// UpdateCategory handles PUT /api/admin/categories/:id
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update category", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	cmd := usecases.UpdateCategoryCommand{
		CategoryID: id,
		Name:       i18n.LocalizedText(req.Name),
		IsActive:   *req.IsActive,
		OrderIndex: req.OrderIndex,
	}

	result, err := h.updateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Category updated successfully", gin.H{"category": result.Category})
}

// DeleteCategory handles DELETE /api/admin/categories/:id
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteCategoryCommand{CategoryID: id}
	if err := h.deleteUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
