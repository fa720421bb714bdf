package usecases

import (
	"context"

	"twoloom/internal/domain/portfolio"
	"twoloom/internal/shared/errors"
	"twoloom/internal/shared/logger"
)

type GetPortfolioQuery struct {
	PortfolioID uint
	Locale      string
}

type GetPortfolioResult struct {
	Portfolio PortfolioDetailDTO
}

type GetPortfolioUseCase struct {
	portfolioRepo portfolio.Repository
	categoryRepo  portfolio.CategoryRepository
	markdown      MarkdownRenderer
	logger        logger.Interface
}

func NewGetPortfolioUseCase(
	portfolioRepo portfolio.Repository,
	categoryRepo portfolio.CategoryRepository,
	markdown MarkdownRenderer,
	logger logger.Interface,
) *GetPortfolioUseCase {
	return &GetPortfolioUseCase{
		portfolioRepo: portfolioRepo,
		categoryRepo:  categoryRepo,
		markdown:      markdown,
		logger:        logger,
	}
}

func (uc *GetPortfolioUseCase) Execute(ctx context.Context, query GetPortfolioQuery) (*GetPortfolioResult, error) {
	p, err := uc.portfolioRepo.FindByID(ctx, query.PortfolioID)
	if err != nil {
		return nil, err
	}
	if !p.Status().IsPublished() {
		return nil, errors.NewNotFoundError("portfolio not found")
	}

	description := p.Description().Resolve(query.Locale)

	descriptionHTML, err := uc.markdown.RenderToSafeHTML(description)
	if err != nil {
		uc.logger.Errorw("failed to render portfolio description", "portfolio_id", p.ID(), "error", err)
		descriptionHTML = ""
	}

	var categoryName string
	if p.CategoryID() != nil {
		category, err := uc.categoryRepo.FindByID(ctx, *p.CategoryID())
		if err == nil && category != nil {
			categoryName = category.Name().Resolve(query.Locale)
		}
	}

	// View count is informational; a failed increment must not fail the read.
	if err := uc.portfolioRepo.IncrementViewCount(ctx, p.ID()); err != nil {
		uc.logger.Warnw("failed to increment view count", "portfolio_id", p.ID(), "error", err)
	}

	return &GetPortfolioResult{
		Portfolio: PortfolioDetailDTO{
			ID:              p.ID(),
			Title:           p.Title().Resolve(query.Locale),
			Description:     description,
			DescriptionHTML: descriptionHTML,
			ThumbnailURL:    p.ThumbnailURL(),
			Images:          p.Images(),
			TechStack:       p.TechStack(),
			DemoURL:         p.DemoURL(),
			GithubURL:       p.GithubURL(),
			CategoryID:      p.CategoryID(),
			CategoryName:    categoryName,
			ViewCount:       p.ViewCount(),
		},
	}, nil
}
