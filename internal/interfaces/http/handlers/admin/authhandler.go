package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"twoloom/internal/application/admin/usecases"
	"twoloom/internal/shared/logger"
	"twoloom/internal/shared/utils"
)

type AuthHandler struct {
	setupAdminUC SetupAdminExecutor
	loginUC      LoginExecutor
	logger       logger.Interface
}

func NewAuthHandler(
	setupAdminUC SetupAdminExecutor,
	loginUC LoginExecutor,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		setupAdminUC: setupAdminUC,
		loginUC:      loginUC,
		logger:       logger,
	}
}

type SetupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Setup handles POST /api/admin/setup
func (h *AuthHandler) Setup(c *gin.Context) {
	var req SetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for admin setup", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	cmd := usecases.SetupAdminCommand{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	}

	result, err := h.setupAdminUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"admin_id": result.AdminID}, "Admin account created successfully")
}

// Login handles POST /api/admin/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for admin login", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	cmd := usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	}

	result, err := h.loginUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"admin": gin.H{
			"id":        result.AdminID,
			"email":     result.Email,
			"full_name": result.FullName,
			"role":      result.Role,
		},
		"access_token":  result.AccessToken,
		"refresh_token": result.RefreshToken,
	})
}
