package routes

import (
	"github.com/gin-gonic/gin"

	adminhandlers "twoloom/internal/interfaces/http/handlers/admin"
	"twoloom/internal/interfaces/http/middleware"
	"twoloom/internal/shared/authorization"
)

type AdminRouteConfig struct {
	AuthHandler      *adminhandlers.AuthHandler
	PortfolioHandler *adminhandlers.PortfolioHandler
	CategoryHandler  *adminhandlers.CategoryHandler
	HistoryHandler   *adminhandlers.HistoryHandler
	InquiryHandler   *adminhandlers.InquiryHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

func SetupAdminRoutes(engine *gin.Engine, config *AdminRouteConfig) {
	admin := engine.Group("/api/admin")

	// Bootstrap and login are reachable without a token; setup guards
	// itself and answers Conflict once an admin exists.
	admin.POST("/setup", config.AuthHandler.Setup)
	admin.POST("/login", config.AuthHandler.Login)

	protected := admin.Group("")
	protected.Use(config.AuthMiddleware.RequireAuth(), authorization.RequireAdmin())
	{
		// Register specific paths BEFORE parameterized paths to avoid route conflicts
		protected.PUT("/portfolios/reorder", config.PortfolioHandler.ReorderPortfolios)

		protected.GET("/portfolios", config.PortfolioHandler.ListPortfolios)
		protected.POST("/portfolios", config.PortfolioHandler.CreatePortfolio)
		protected.PUT("/portfolios/:id", config.PortfolioHandler.UpdatePortfolio)
		protected.DELETE("/portfolios/:id", config.PortfolioHandler.DeletePortfolio)

		protected.POST("/categories", config.CategoryHandler.CreateCategory)
		protected.PUT("/categories/:id", config.CategoryHandler.UpdateCategory)
		protected.DELETE("/categories/:id", config.CategoryHandler.DeleteCategory)

		protected.POST("/history", config.HistoryHandler.CreateMilestone)
		protected.PUT("/history/:id", config.HistoryHandler.UpdateMilestone)
		protected.DELETE("/history/:id", config.HistoryHandler.DeleteMilestone)

		protected.GET("/inquiries", config.InquiryHandler.ListInquiries)
		protected.PATCH("/inquiries/:id/status", config.InquiryHandler.UpdateInquiryStatus)
	}
}
