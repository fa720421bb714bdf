package public

import (
	"context"

	historyUC "twoloom/internal/application/history/usecases"
	inquiryUC "twoloom/internal/application/inquiry/usecases"
	portfolioUC "twoloom/internal/application/portfolio/usecases"
)

type ListCategoriesExecutor interface {
	Execute(ctx context.Context, query portfolioUC.ListCategoriesQuery) (*portfolioUC.ListCategoriesResult, error)
}

type ListPortfoliosExecutor interface {
	Execute(ctx context.Context, query portfolioUC.ListPortfoliosQuery) (*portfolioUC.ListPortfoliosResult, error)
}

type GetPortfolioExecutor interface {
	Execute(ctx context.Context, query portfolioUC.GetPortfolioQuery) (*portfolioUC.GetPortfolioResult, error)
}

type ListHistoryExecutor interface {
	Execute(ctx context.Context, query historyUC.ListHistoryQuery) (*historyUC.ListHistoryResult, error)
}

type SubmitInquiryExecutor interface {
	Execute(ctx context.Context, cmd inquiryUC.SubmitInquiryCommand) (*inquiryUC.SubmitInquiryResult, error)
}
