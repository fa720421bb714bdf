package admin

import (
	"context"

	adminUC "twoloom/internal/application/admin/usecases"
	historyUC "twoloom/internal/application/history/usecases"
	inquiryUC "twoloom/internal/application/inquiry/usecases"
	portfolioUC "twoloom/internal/application/portfolio/usecases"
)

type SetupAdminExecutor interface {
	Execute(ctx context.Context, cmd adminUC.SetupAdminCommand) (*adminUC.SetupAdminResult, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd adminUC.LoginCommand) (*adminUC.LoginResult, error)
}

type ListAllPortfoliosExecutor interface {
	Execute(ctx context.Context) (*portfolioUC.ListAllPortfoliosResult, error)
}

type CreatePortfolioExecutor interface {
	Execute(ctx context.Context, cmd portfolioUC.CreatePortfolioCommand) (*portfolioUC.CreatePortfolioResult, error)
}

type UpdatePortfolioExecutor interface {
	Execute(ctx context.Context, cmd portfolioUC.UpdatePortfolioCommand) (*portfolioUC.UpdatePortfolioResult, error)
}

type DeletePortfolioExecutor interface {
	Execute(ctx context.Context, cmd portfolioUC.DeletePortfolioCommand) error
}

type ReorderPortfoliosExecutor interface {
	Execute(ctx context.Context, cmd portfolioUC.ReorderPortfoliosCommand) error
}

type CreateCategoryExecutor interface {
	Execute(ctx context.Context, cmd portfolioUC.CreateCategoryCommand) (*portfolioUC.CreateCategoryResult, error)
}

type UpdateCategoryExecutor interface {
	Execute(ctx context.Context, cmd portfolioUC.UpdateCategoryCommand) (*portfolioUC.UpdateCategoryResult, error)
}

type DeleteCategoryExecutor interface {
	Execute(ctx context.Context, cmd portfolioUC.DeleteCategoryCommand) error
}

type CreateMilestoneExecutor interface {
	Execute(ctx context.Context, cmd historyUC.CreateMilestoneCommand) (*historyUC.CreateMilestoneResult, error)
}

type UpdateMilestoneExecutor interface {
	Execute(ctx context.Context, cmd historyUC.UpdateMilestoneCommand) (*historyUC.UpdateMilestoneResult, error)
}

type DeleteMilestoneExecutor interface {
	Execute(ctx context.Context, cmd historyUC.DeleteMilestoneCommand) error
}

type ListInquiriesExecutor interface {
	Execute(ctx context.Context, query inquiryUC.ListInquiriesQuery) (*inquiryUC.ListInquiriesResult, error)
}

type UpdateInquiryStatusExecutor interface {
	Execute(ctx context.Context, cmd inquiryUC.UpdateInquiryStatusCommand) (*inquiryUC.UpdateInquiryStatusResult, error)
}
