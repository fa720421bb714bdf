package routes

import (
	"github.com/gin-gonic/gin"

	"twoloom/internal/interfaces/http/handlers/public"
)

type PublicRouteConfig struct {
	PortfolioHandler *public.PortfolioHandler
	HistoryHandler   *public.HistoryHandler
	ContactHandler   *public.ContactHandler
	ContactRateLimit gin.HandlerFunc
}

func SetupPublicRoutes(engine *gin.Engine, config *PublicRouteConfig) {
	api := engine.Group("/api")
	{
		api.GET("/categories", config.PortfolioHandler.ListCategories)
		api.GET("/portfolios", config.PortfolioHandler.ListPortfolios)
		api.GET("/portfolios/:id", config.PortfolioHandler.GetPortfolio)
		api.GET("/history", config.HistoryHandler.ListHistory)

		contact := []gin.HandlerFunc{config.ContactHandler.SubmitContact}
		if config.ContactRateLimit != nil {
			contact = append([]gin.HandlerFunc{config.ContactRateLimit}, contact...)
		}
		api.POST("/contact", contact...)
	}
}
