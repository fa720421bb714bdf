package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"twoloom/internal/application/portfolio/usecases"
	"twoloom/internal/domain/portfolio"
	"twoloom/internal/shared/errors"
	"twoloom/internal/shared/i18n"
	"twoloom/internal/shared/logger"
	"twoloom/internal/shared/utils"
)

type PortfolioHandler struct {
	listAllUC ListAllPortfoliosExecutor
	createUC  CreatePortfolioExecutor
	updateUC  UpdatePortfolioExecutor
	deleteUC  DeletePortfolioExecutor
	reorderUC ReorderPortfoliosExecutor
	logger    logger.Interface
}

func NewPortfolioHandler(
	listAllUC ListAllPortfoliosExecutor,
	createUC CreatePortfolioExecutor,
	updateUC UpdatePortfolioExecutor,
	deleteUC DeletePortfolioExecutor,
	reorderUC ReorderPortfoliosExecutor,
	logger logger.Interface,
) *PortfolioHandler {
	return &PortfolioHandler{
		listAllUC: listAllUC,
		createUC:  createUC,
		updateUC:  updateUC,
		deleteUC:  deleteUC,
		reorderUC: reorderUC,
		logger:    logger,
	}
}

// PortfolioRequest carries the raw localized maps so every translation is
// editable from the dashboard.
type PortfolioRequest struct {
	Title            map[string]string `json:"title" binding:"required"`
	Description      map[string]string `json:"description" binding:"required"`
	ShortDescription map[string]string `json:"short_description"`
	ThumbnailURL     string            `json:"thumbnail_url"`
	Images           []string          `json:"images"`
	TechStack        []string          `json:"tech_stack"`
	DemoURL          string            `json:"demo_url"`
	GithubURL        string            `json:"github_url"`
	CategoryID       *uint             `json:"category_id"`
	Featured         bool              `json:"featured"`
	OrderIndex       int               `json:"order_index"`
	Status           string            `json:"status" binding:"omitempty,oneof=draft published"`
}

type ReorderRequest struct {
	Orders []ReorderItem `json:"orders" binding:"required"`
}

type ReorderItem struct {
	ID         uint `json:"id"`
	OrderIndex int  `json:"order_index"`
}

// ListPortfolios handles GET /api/admin/portfolios
func (h *PortfolioHandler) ListPortfolios(c *gin.Context) {
	result, err := h.listAllUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"portfolios": result.Portfolios})
}

// CreatePortfolio handles POST /api/admin/portfolios
func (h *PortfolioHandler) CreatePortfolio(c *gin.Context) {
	var req PortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create portfolio", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), req.toCreateCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"portfolio": result.Portfolio}, "Portfolio created successfully")
}

// UpdatePortfolio handles PUT /api/admin/portfolios/:id
func (h *PortfolioHandler) UpdatePortfolio(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req PortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update portfolio", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), req.toUpdateCommand(id))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Portfolio updated successfully", gin.H{"portfolio": result.Portfolio})
}

// DeletePortfolio handles DELETE /api/admin/portfolios/:id
func (h *PortfolioHandler) DeletePortfolio(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeletePortfolioCommand{PortfolioID: id}
	if err := h.deleteUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ReorderPortfolios handles PUT /api/admin/portfolios/reorder
func (h *PortfolioHandler) ReorderPortfolios(c *gin.Context) {
	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for reorder portfolios", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	orders := make([]portfolio.OrderUpdate, 0, len(req.Orders))
	for _, o := range req.Orders {
		orders = append(orders, portfolio.OrderUpdate{
			PortfolioID: o.ID,
			OrderIndex:  o.OrderIndex,
		})
	}

	cmd := usecases.ReorderPortfoliosCommand{Orders: orders}
	if err := h.reorderUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Portfolios reordered successfully", nil)
}

func (r *PortfolioRequest) toCreateCommand() usecases.CreatePortfolioCommand {
	return usecases.CreatePortfolioCommand{
		Title:            i18n.LocalizedText(r.Title),
		Description:      i18n.LocalizedText(r.Description),
		ShortDescription: i18n.LocalizedText(r.ShortDescription),
		ThumbnailURL:     r.ThumbnailURL,
		Images:           r.Images,
		TechStack:        r.TechStack,
		DemoURL:          r.DemoURL,
		GithubURL:        r.GithubURL,
		CategoryID:       r.CategoryID,
		Featured:         r.Featured,
		OrderIndex:       r.OrderIndex,
		Status:           r.Status,
	}
}

func (r *PortfolioRequest) toUpdateCommand(id uint) usecases.UpdatePortfolioCommand {
	return usecases.UpdatePortfolioCommand{
		PortfolioID:      id,
		Title:            i18n.LocalizedText(r.Title),
		Description:      i18n.LocalizedText(r.Description),
		ShortDescription: i18n.LocalizedText(r.ShortDescription),
		ThumbnailURL:     r.ThumbnailURL,
		Images:           r.Images,
		TechStack:        r.TechStack,
		DemoURL:          r.DemoURL,
		GithubURL:        r.GithubURL,
		CategoryID:       r.CategoryID,
		Featured:         r.Featured,
		OrderIndex:       r.OrderIndex,
		Status:           r.Status,
	}
}

func parseIDParam(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("Invalid ID")
	}
	return uint(id), nil
}
