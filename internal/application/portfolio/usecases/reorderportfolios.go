package usecases

import (
	"context"

	"twoloom/internal/domain/portfolio"
	"twoloom/internal/shared/errors"
	"twoloom/internal/shared/logger"
)

type ReorderPortfoliosCommand struct {
	Orders []portfolio.OrderUpdate
}

type ReorderPortfoliosUseCase struct {
	portfolioRepo portfolio.Repository
	logger        logger.Interface
}

func NewReorderPortfoliosUseCase(
	portfolioRepo portfolio.Repository,
	logger logger.Interface,
) *ReorderPortfoliosUseCase {
	return &ReorderPortfoliosUseCase{
		portfolioRepo: portfolioRepo,
		logger:        logger,
	}
}

func (uc *ReorderPortfoliosUseCase) Execute(ctx context.Context, cmd ReorderPortfoliosCommand) error {
	if len(cmd.Orders) == 0 {
		return errors.NewValidationError("order list cannot be empty")
	}

	seen := make(map[uint]bool, len(cmd.Orders))
	for _, o := range cmd.Orders {
		if o.PortfolioID == 0 {
			return errors.NewValidationError("portfolio ID cannot be zero")
		}
		if seen[o.PortfolioID] {
			return errors.NewValidationError("duplicate portfolio ID in order list")
		}
		seen[o.PortfolioID] = true
	}

	if err := uc.portfolioRepo.UpdateOrder(ctx, cmd.Orders); err != nil {
		uc.logger.Errorw("failed to reorder portfolios", "count", len(cmd.Orders), "error", err)
		return err
	}

	uc.logger.Infow("portfolios reordered", "count", len(cmd.Orders))
	return nil
}
