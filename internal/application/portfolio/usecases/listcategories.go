package usecases

import (
	"context"

	"twoloom/internal/domain/portfolio"
	"twoloom/internal/shared/logger"
)

type ListCategoriesQuery struct {
	Locale string
}

type ListCategoriesResult struct {
	Categories []CategoryDTO
}

type ListCategoriesUseCase struct {
	categoryRepo portfolio.CategoryRepository
	logger       logger.Interface
}

func NewListCategoriesUseCase(
	categoryRepo portfolio.CategoryRepository,
	logger logger.Interface,
) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *ListCategoriesUseCase) Execute(ctx context.Context, query ListCategoriesQuery) (*ListCategoriesResult, error) {
	categories, err := uc.categoryRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list categories", "error", err)
		return nil, err
	}

	dtos := make([]CategoryDTO, 0, len(categories))
	for _, c := range categories {
		dtos = append(dtos, CategoryDTO{
			ID:         c.ID(),
			Name:       c.Name().Resolve(query.Locale),
			Slug:       c.Slug(),
			OrderIndex: c.OrderIndex(),
		})
	}

	return &ListCategoriesResult{Categories: dtos}, nil
}
