package usecases

import (
	"context"

	"twoloom/internal/domain/portfolio"
	"twoloom/internal/shared/logger"
)

type ListPortfoliosQuery struct {
	// CategorySlug filters by category. Empty, "all", or an unknown slug
	// leave the listing unfiltered.
	CategorySlug string
	Locale       string
}

type ListPortfoliosResult struct {
	Portfolios []PortfolioSummaryDTO
}

type ListPortfoliosUseCase struct {
	portfolioRepo portfolio.Repository
	categoryRepo  portfolio.CategoryRepository
	logger        logger.Interface
}

func NewListPortfoliosUseCase(
	portfolioRepo portfolio.Repository,
	categoryRepo portfolio.CategoryRepository,
	logger logger.Interface,
) *ListPortfoliosUseCase {
	return &ListPortfoliosUseCase{
		portfolioRepo: portfolioRepo,
		categoryRepo:  categoryRepo,
		logger:        logger,
	}
}

func (uc *ListPortfoliosUseCase) Execute(ctx context.Context, query ListPortfoliosQuery) (*ListPortfoliosResult, error) {
	var categoryID *uint
	if query.CategorySlug != "" && query.CategorySlug != "all" {
		category, err := uc.categoryRepo.FindBySlug(ctx, query.CategorySlug)
		if err != nil {
			uc.logger.Errorw("failed to look up category", "slug", query.CategorySlug, "error", err)
			return nil, err
		}
		if category != nil {
			id := category.ID()
			categoryID = &id
		}
	}

	portfolios, err := uc.portfolioRepo.ListPublished(ctx, categoryID)
	if err != nil {
		uc.logger.Errorw("failed to list portfolios", "error", err)
		return nil, err
	}

	categoryNames, err := uc.categoryNamesByID(ctx, query.Locale)
	if err != nil {
		return nil, err
	}

	dtos := make([]PortfolioSummaryDTO, 0, len(portfolios))
	for _, p := range portfolios {
		dto := PortfolioSummaryDTO{
			ID:               p.ID(),
			Title:            p.Title().Resolve(query.Locale),
			ShortDescription: p.ShortDescription().Resolve(query.Locale),
			ThumbnailURL:     p.ThumbnailURL(),
			TechStack:        p.TechStack(),
			CategoryID:       p.CategoryID(),
			Featured:         p.Featured(),
			OrderIndex:       p.OrderIndex(),
		}
		if p.CategoryID() != nil {
			dto.CategoryName = categoryNames[*p.CategoryID()]
		}
		dtos = append(dtos, dto)
	}

	return &ListPortfoliosResult{Portfolios: dtos}, nil
}

func (uc *ListPortfoliosUseCase) categoryNamesByID(ctx context.Context, locale string) (map[uint]string, error) {
	categories, err := uc.categoryRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list categories", "error", err)
		return nil, err
	}

	names := make(map[uint]string, len(categories))
	for _, c := range categories {
		names[c.ID()] = c.Name().Resolve(locale)
	}
	return names, nil
}
