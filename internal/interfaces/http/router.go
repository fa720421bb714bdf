package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	adminUsecases "twoloom/internal/application/admin/usecases"
	historyUsecases "twoloom/internal/application/history/usecases"
	inquiryUsecases "twoloom/internal/application/inquiry/usecases"
	portfolioUsecases "twoloom/internal/application/portfolio/usecases"
	"twoloom/internal/infrastructure/auth"
	"twoloom/internal/infrastructure/config"
	"twoloom/internal/infrastructure/email"
	"twoloom/internal/infrastructure/persistence/mappers"
	"twoloom/internal/infrastructure/ratelimit"
	"twoloom/internal/infrastructure/repository"
	adminhandlers "twoloom/internal/interfaces/http/handlers/admin"
	publichandlers "twoloom/internal/interfaces/http/handlers/public"
	"twoloom/internal/interfaces/http/middleware"
	"twoloom/internal/interfaces/http/routes"
	"twoloom/internal/shared/logger"
	"twoloom/internal/shared/services/markdown"
	"twoloom/internal/shared/utils"
)

// Router wires repositories, use cases, handlers, and middleware into a Gin
// engine.
type Router struct {
	engine      *gin.Engine
	publicCfg   *routes.PublicRouteConfig
	adminCfg    *routes.AdminRouteConfig
	corsOrigins []string
	log         logger.Interface
}

// NewRouter creates the router with all dependencies wired. redisClient may
// be nil; the IP rate limit on the contact endpoint is then skipped.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	portfolioMapper := mappers.NewPortfolioMapper()
	portfolioRepo := repository.NewPortfolioRepository(db, portfolioMapper)
	categoryRepo := repository.NewCategoryRepository(db, portfolioMapper)
	historyRepo := repository.NewHistoryRepository(db, mappers.NewHistoryMapper())
	inquiryRepo := repository.NewInquiryRepository(db, mappers.NewInquiryMapper())
	profileRepo := repository.NewAdminProfileRepository(db, mappers.NewAdminProfileMapper())

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	identityService := auth.NewIdentityService(db, hasher)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)

	mailer := email.NewInquiryMailer(email.SMTPConfig{
		Host:            cfg.Email.SMTPHost,
		Port:            cfg.Email.SMTPPort,
		Username:        cfg.Email.SMTPUser,
		Password:        cfg.Email.SMTPPassword,
		FromAddress:     cfg.Email.FromAddress,
		FromName:        cfg.Email.FromName,
		OperatorAddress: cfg.Email.OperatorAddress,
	})

	markdownService := markdown.NewService()

	listCategoriesUC := portfolioUsecases.NewListCategoriesUseCase(categoryRepo, log)
	listPortfoliosUC := portfolioUsecases.NewListPortfoliosUseCase(portfolioRepo, categoryRepo, log)
	getPortfolioUC := portfolioUsecases.NewGetPortfolioUseCase(portfolioRepo, categoryRepo, markdownService, log)
	listAllPortfoliosUC := portfolioUsecases.NewListAllPortfoliosUseCase(portfolioRepo, log)
	createPortfolioUC := portfolioUsecases.NewCreatePortfolioUseCase(portfolioRepo, categoryRepo, log)
	updatePortfolioUC := portfolioUsecases.NewUpdatePortfolioUseCase(portfolioRepo, categoryRepo, log)
	deletePortfolioUC := portfolioUsecases.NewDeletePortfolioUseCase(portfolioRepo, log)
	reorderPortfoliosUC := portfolioUsecases.NewReorderPortfoliosUseCase(portfolioRepo, log)
	createCategoryUC := portfolioUsecases.NewCreateCategoryUseCase(categoryRepo, log)
	updateCategoryUC := portfolioUsecases.NewUpdateCategoryUseCase(categoryRepo, log)
	deleteCategoryUC := portfolioUsecases.NewDeleteCategoryUseCase(categoryRepo, log)

	listHistoryUC := historyUsecases.NewListHistoryUseCase(historyRepo, log)
	createMilestoneUC := historyUsecases.NewCreateMilestoneUseCase(historyRepo, log)
	updateMilestoneUC := historyUsecases.NewUpdateMilestoneUseCase(historyRepo, log)
	deleteMilestoneUC := historyUsecases.NewDeleteMilestoneUseCase(historyRepo, log)

	submitInquiryUC := inquiryUsecases.NewSubmitInquiryUseCase(
		inquiryRepo,
		mailer,
		log,
		time.Duration(cfg.Contact.RateLimitWindowMinutes)*time.Minute,
		int64(cfg.Contact.RateLimitMaxInquiries),
	)
	listInquiriesUC := inquiryUsecases.NewListInquiriesUseCase(inquiryRepo, log)
	updateInquiryStatusUC := inquiryUsecases.NewUpdateInquiryStatusUseCase(inquiryRepo, log)

	setupAdminUC := adminUsecases.NewSetupAdminUseCase(profileRepo, identityService, log)
	loginUC := adminUsecases.NewLoginUseCase(profileRepo, identityService, jwtService, log)

	var contactRateLimit gin.HandlerFunc
	if redisClient != nil && cfg.Contact.IPRateLimitPerMinute > 0 {
		limiter := ratelimit.NewRedisRateLimiter(redisClient, time.Minute, cfg.Contact.IPRateLimitPerMinute)
		contactRateLimit = middleware.IPRateLimit(limiter, log)
	}

	publicCfg := &routes.PublicRouteConfig{
		PortfolioHandler: publichandlers.NewPortfolioHandler(listCategoriesUC, listPortfoliosUC, getPortfolioUC, log),
		HistoryHandler:   publichandlers.NewHistoryHandler(listHistoryUC, log),
		ContactHandler:   publichandlers.NewContactHandler(submitInquiryUC, log),
		ContactRateLimit: contactRateLimit,
	}

	adminCfg := &routes.AdminRouteConfig{
		AuthHandler:      adminhandlers.NewAuthHandler(setupAdminUC, loginUC, log),
		PortfolioHandler: adminhandlers.NewPortfolioHandler(listAllPortfoliosUC, createPortfolioUC, updatePortfolioUC, deletePortfolioUC, reorderPortfoliosUC, log),
		CategoryHandler:  adminhandlers.NewCategoryHandler(createCategoryUC, updateCategoryUC, deleteCategoryUC, log),
		HistoryHandler:   adminhandlers.NewHistoryHandler(createMilestoneUC, updateMilestoneUC, deleteMilestoneUC, log),
		InquiryHandler:   adminhandlers.NewInquiryHandler(listInquiriesUC, updateInquiryStatusUC, log),
		AuthMiddleware:   middleware.NewAuthMiddleware(jwtService, log),
	}

	return &Router{
		engine:      engine,
		publicCfg:   publicCfg,
		adminCfg:    adminCfg,
		corsOrigins: cfg.Server.AllowedOrigins,
		log:         log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.corsOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, http.StatusOK, "", gin.H{"status": "ok"})
	})

	routes.SetupPublicRoutes(r.engine, r.publicCfg)
	routes.SetupAdminRoutes(r.engine, r.adminCfg)
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
