package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"twoloom/internal/application/inquiry/usecases"
	"twoloom/internal/shared/logger"
	"twoloom/internal/shared/utils"
)

type InquiryHandler struct {
	listUC         ListInquiriesExecutor
	updateStatusUC UpdateInquiryStatusExecutor
	logger         logger.Interface
}

func NewInquiryHandler(
	listUC ListInquiriesExecutor,
	updateStatusUC UpdateInquiryStatusExecutor,
	logger logger.Interface,
) *InquiryHandler {
	return &InquiryHandler{
		listUC:         listUC,
		updateStatusUC: updateStatusUC,
		logger:         logger,
	}
}

type UpdateInquiryStatusRequest struct {
	Status     string  `json:"status" binding:"required,oneof=new in_progress closed"`
	AdminNotes *string `json:"admin_notes"`
}

// ListInquiries handles GET /api/admin/inquiries
func (h *InquiryHandler) ListInquiries(c *gin.Context) {
	query := usecases.ListInquiriesQuery{
		Status: c.Query("status"),
	}

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"inquiries": result.Inquiries})
}

// UpdateInquiryStatus handles PATCH /api/admin/inquiries/:id/status
func (h *InquiryHandler) UpdateInquiryStatus(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateInquiryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update inquiry status", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	cmd := usecases.UpdateInquiryStatusCommand{
		InquiryID:  id,
		Status:     req.Status,
		AdminNotes: req.AdminNotes,
	}

	result, err := h.updateStatusUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Inquiry status updated successfully", gin.H{"inquiry": result.Inquiry})
}
