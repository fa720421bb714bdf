package public

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"twoloom/internal/application/inquiry/usecases"
	"twoloom/internal/shared/logger"
	"twoloom/internal/shared/utils"
)

type ContactHandler struct {
	submitInquiryUC SubmitInquiryExecutor
	logger          logger.Interface
}

func NewContactHandler(submitInquiryUC SubmitInquiryExecutor, logger logger.Interface) *ContactHandler {
	return &ContactHandler{
		submitInquiryUC: submitInquiryUC,
		logger:          logger,
	}
}

// ContactRequest is the payload of POST /api/contact. Length and format
// checks beyond presence live in the domain layer.
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Company string `json:"company"`
	Phone   string `json:"phone"`
	Message string `json:"message" binding:"required"`
}

// SubmitContact handles POST /api/contact
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for contact", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "name, email, and message are required")
		return
	}

	cmd := usecases.SubmitInquiryCommand{
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
		Phone:   req.Phone,
		Message: req.Message,
	}

	result, err := h.submitInquiryUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Inquiry submitted successfully", gin.H{"inquiry_id": result.InquiryID})
}
