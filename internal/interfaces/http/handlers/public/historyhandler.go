package public

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"twoloom/internal/application/history/usecases"
	"twoloom/internal/shared/logger"
	"twoloom/internal/shared/utils"
)

type HistoryHandler struct {
	listHistoryUC ListHistoryExecutor
	logger        logger.Interface
}

func NewHistoryHandler(listHistoryUC ListHistoryExecutor, logger logger.Interface) *HistoryHandler {
	return &HistoryHandler{
		listHistoryUC: listHistoryUC,
		logger:        logger,
	}
}

// ListHistory handles GET /api/history
func (h *HistoryHandler) ListHistory(c *gin.Context) {
	query := usecases.ListHistoryQuery{
		Locale: requestLocale(c),
	}

	result, err := h.listHistoryUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"history": result.History})
}
