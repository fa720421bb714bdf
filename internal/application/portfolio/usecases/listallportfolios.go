package usecases

import (
	"context"

	"twoloom/internal/domain/portfolio"
	"twoloom/internal/shared/logger"
)

type ListAllPortfoliosResult struct {
	Portfolios []AdminPortfolioDTO
}

// ListAllPortfoliosUseCase backs the admin dashboard: every status, newest
// first, raw localized maps.
type ListAllPortfoliosUseCase struct {
	portfolioRepo portfolio.Repository
	logger        logger.Interface
}

func NewListAllPortfoliosUseCase(
	portfolioRepo portfolio.Repository,
	logger logger.Interface,
) *ListAllPortfoliosUseCase {
	return &ListAllPortfoliosUseCase{
		portfolioRepo: portfolioRepo,
		logger:        logger,
	}
}

func (uc *ListAllPortfoliosUseCase) Execute(ctx context.Context) (*ListAllPortfoliosResult, error) {
	portfolios, err := uc.portfolioRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list portfolios", "error", err)
		return nil, err
	}

	dtos := make([]AdminPortfolioDTO, 0, len(portfolios))
	for _, p := range portfolios {
		dtos = append(dtos, adminPortfolioDTO(p))
	}

	return &ListAllPortfoliosResult{Portfolios: dtos}, nil
}

func adminPortfolioDTO(p *portfolio.Portfolio) AdminPortfolioDTO {
	return AdminPortfolioDTO{
		ID:               p.ID(),
		Title:            p.Title(),
		Description:      p.Description(),
		ShortDescription: p.ShortDescription(),
		ThumbnailURL:     p.ThumbnailURL(),
		Images:           p.Images(),
		TechStack:        p.TechStack(),
		DemoURL:          p.DemoURL(),
		GithubURL:        p.GithubURL(),
		CategoryID:       p.CategoryID(),
		Featured:         p.Featured(),
		OrderIndex:       p.OrderIndex(),
		Status:           p.Status().String(),
		ViewCount:        p.ViewCount(),
		CreatedAt:        p.CreatedAt().UnixMilli(),
		UpdatedAt:        p.UpdatedAt().UnixMilli(),
	}
}
