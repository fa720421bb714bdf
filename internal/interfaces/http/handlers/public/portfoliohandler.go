package public

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"twoloom/internal/application/portfolio/usecases"
	"twoloom/internal/shared/errors"
	"twoloom/internal/shared/i18n"
	"twoloom/internal/shared/logger"
	"twoloom/internal/shared/utils"
)

type PortfolioHandler struct {
	listCategoriesUC ListCategoriesExecutor
	listPortfoliosUC ListPortfoliosExecutor
	getPortfolioUC   GetPortfolioExecutor
	logger           logger.Interface
}

func NewPortfolioHandler(
	listCategoriesUC ListCategoriesExecutor,
	listPortfoliosUC ListPortfoliosExecutor,
	getPortfolioUC GetPortfolioExecutor,
	logger logger.Interface,
) *PortfolioHandler {
	return &PortfolioHandler{
		listCategoriesUC: listCategoriesUC,
		listPortfoliosUC: listPortfoliosUC,
		getPortfolioUC:   getPortfolioUC,
		logger:           logger,
	}
}

// ListCategories handles GET /api/categories
func (h *PortfolioHandler) ListCategories(c *gin.Context) {
	query := usecases.ListCategoriesQuery{
		Locale: requestLocale(c),
	}

	result, err := h.listCategoriesUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"categories": result.Categories})
}

// ListPortfolios handles GET /api/portfolios
func (h *PortfolioHandler) ListPortfolios(c *gin.Context) {
	query := usecases.ListPortfoliosQuery{
		CategorySlug: c.Query("category"),
		Locale:       requestLocale(c),
	}

	result, err := h.listPortfoliosUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"portfolios": result.Portfolios})
}

// GetPortfolio handles GET /api/portfolios/:id
func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetPortfolioQuery{
		PortfolioID: id,
		Locale:      requestLocale(c),
	}

	result, err := h.getPortfolioUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"portfolio": result.Portfolio})
}

// requestLocale maps the lang query parameter onto a supported locale.
func requestLocale(c *gin.Context) string {
	return i18n.NormalizeLocale(c.Query("lang"))
}

func parseIDParam(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("Invalid ID")
	}
	return uint(id), nil
}
