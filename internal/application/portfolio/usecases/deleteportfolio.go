package usecases

import (
	"context"

	"twoloom/internal/domain/portfolio"
	"twoloom/internal/shared/logger"
)

type DeletePortfolioCommand struct {
	PortfolioID uint
}

type DeletePortfolioUseCase struct {
	portfolioRepo portfolio.Repository
	logger        logger.Interface
}

func NewDeletePortfolioUseCase(
	portfolioRepo portfolio.Repository,
	logger logger.Interface,
) *DeletePortfolioUseCase {
	return &DeletePortfolioUseCase{
		portfolioRepo: portfolioRepo,
		logger:        logger,
	}
}

func (uc *DeletePortfolioUseCase) Execute(ctx context.Context, cmd DeletePortfolioCommand) error {
	// Verify existence so callers get a 404 rather than a silent no-op.
	if _, err := uc.portfolioRepo.FindByID(ctx, cmd.PortfolioID); err != nil {
		return err
	}

	if err := uc.portfolioRepo.Delete(ctx, cmd.PortfolioID); err != nil {
		uc.logger.Errorw("failed to delete portfolio", "portfolio_id", cmd.PortfolioID, "error", err)
		return err
	}

	uc.logger.Infow("portfolio deleted", "portfolio_id", cmd.PortfolioID)
	return nil
}
