package usecases

import (
	"context"

	"twoloom/internal/domain/portfolio"
	"twoloom/internal/shared/errors"
	"twoloom/internal/shared/i18n"
	"twoloom/internal/shared/logger"
)

type UpdatePortfolioCommand struct {
	PortfolioID      uint
	Title            i18n.LocalizedText
	Description      i18n.LocalizedText
	ShortDescription i18n.LocalizedText
	ThumbnailURL     string
	Images           []string
	TechStack        []string
	DemoURL          string
	GithubURL        string
	CategoryID       *uint
	Featured         bool
	OrderIndex       int
	Status           string
}

type UpdatePortfolioResult struct {
	Portfolio AdminPortfolioDTO
}

type UpdatePortfolioUseCase struct {
	portfolioRepo portfolio.Repository
	categoryRepo  portfolio.CategoryRepository
	logger        logger.Interface
}

func NewUpdatePortfolioUseCase(
	portfolioRepo portfolio.Repository,
	categoryRepo portfolio.CategoryRepository,
	logger logger.Interface,
) *UpdatePortfolioUseCase {
	return &UpdatePortfolioUseCase{
		portfolioRepo: portfolioRepo,
		categoryRepo:  categoryRepo,
		logger:        logger,
	}
}

func (uc *UpdatePortfolioUseCase) Execute(ctx context.Context, cmd UpdatePortfolioCommand) (*UpdatePortfolioResult, error) {
	p, err := uc.portfolioRepo.FindByID(ctx, cmd.PortfolioID)
	if err != nil {
		return nil, err
	}

	if cmd.CategoryID != nil {
		if _, err := uc.categoryRepo.FindByID(ctx, *cmd.CategoryID); err != nil {
			return nil, errors.NewValidationError("category does not exist")
		}
	}

	if err := p.UpdateContent(cmd.Title, cmd.Description, cmd.ShortDescription); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	p.UpdateLinks(cmd.ThumbnailURL, cmd.DemoURL, cmd.GithubURL, cmd.Images)
	p.UpdateTechStack(cmd.TechStack)
	p.AssignCategory(cmd.CategoryID)
	p.SetFeatured(cmd.Featured)
	p.SetOrderIndex(cmd.OrderIndex)

	if cmd.Status != "" {
		if err := p.ChangeStatus(portfolio.Status(cmd.Status)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.portfolioRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to update portfolio", "portfolio_id", cmd.PortfolioID, "error", err)
		return nil, err
	}

	result := adminPortfolioDTO(p)
	return &UpdatePortfolioResult{Portfolio: result}, nil
}
