package usecases

import (
	"context"

	"twoloom/internal/domain/portfolio"
	"twoloom/internal/shared/errors"
	"twoloom/internal/shared/i18n"
	"twoloom/internal/shared/logger"
)

type CreatePortfolioCommand struct {
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

type CreatePortfolioResult struct {
	Portfolio AdminPortfolioDTO
}

type CreatePortfolioUseCase struct {
	portfolioRepo portfolio.Repository
	categoryRepo  portfolio.CategoryRepository
	logger        logger.Interface
}

func NewCreatePortfolioUseCase(
	portfolioRepo portfolio.Repository,
	categoryRepo portfolio.CategoryRepository,
	logger logger.Interface,
) *CreatePortfolioUseCase {
	return &CreatePortfolioUseCase{
		portfolioRepo: portfolioRepo,
		categoryRepo:  categoryRepo,
		logger:        logger,
	}
}

func (uc *CreatePortfolioUseCase) Execute(ctx context.Context, cmd CreatePortfolioCommand) (*CreatePortfolioResult, error) {
	uc.logger.Infow("creating portfolio", "title", cmd.Title.Resolve(i18n.DefaultLocale))

	if cmd.CategoryID != nil {
		if _, err := uc.categoryRepo.FindByID(ctx, *cmd.CategoryID); err != nil {
			return nil, errors.NewValidationError("category does not exist")
		}
	}

	p, err := portfolio.NewPortfolio(cmd.Title, cmd.Description, cmd.ShortDescription, cmd.CategoryID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	p.UpdateLinks(cmd.ThumbnailURL, cmd.DemoURL, cmd.GithubURL, cmd.Images)
	p.UpdateTechStack(cmd.TechStack)
	p.SetFeatured(cmd.Featured)
	p.SetOrderIndex(cmd.OrderIndex)

	if cmd.Status != "" {
		if err := p.ChangeStatus(portfolio.Status(cmd.Status)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.portfolioRepo.Save(ctx, p); err != nil {
		uc.logger.Errorw("failed to save portfolio", "error", err)
		return nil, err
	}

	uc.logger.Infow("portfolio created", "portfolio_id", p.ID())

	result := adminPortfolioDTO(p)
	return &CreatePortfolioResult{Portfolio: result}, nil
}
