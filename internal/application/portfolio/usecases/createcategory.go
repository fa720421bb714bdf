package usecases

import (
	"context"

	"twoloom/internal/domain/portfolio"
	"twoloom/internal/shared/errors"
	"twoloom/internal/shared/i18n"
	"twoloom/internal/shared/logger"
)

type CreateCategoryCommand struct {
	Name       i18n.LocalizedText
	Slug       string
	OrderIndex int
}

type CreateCategoryResult struct {
	Category AdminCategoryDTO
}

type CreateCategoryUseCase struct {
	categoryRepo portfolio.CategoryRepository
	logger       logger.Interface
}

func NewCreateCategoryUseCase(
	categoryRepo portfolio.CategoryRepository,
	logger logger.Interface,
) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *CreateCategoryUseCase) Execute(ctx context.Context, cmd CreateCategoryCommand) (*CreateCategoryResult, error) {
	existing, err := uc.categoryRepo.FindBySlug(ctx, cmd.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError("category slug already exists")
	}

	category, err := portfolio.NewCategory(cmd.Name, cmd.Slug, cmd.OrderIndex)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.categoryRepo.Save(ctx, category); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("category slug already exists")
		}
		uc.logger.Errorw("failed to save category", "slug", cmd.Slug, "error", err)
		return nil, err
	}

	uc.logger.Infow("category created", "category_id", category.ID(), "slug", category.Slug())

	return &CreateCategoryResult{Category: adminCategoryDTO(category)}, nil
}

func adminCategoryDTO(c *portfolio.Category) AdminCategoryDTO {
	return AdminCategoryDTO{
		ID:         c.ID(),
		Name:       c.Name(),
		Slug:       c.Slug(),
		IsActive:   c.IsActive(),
		OrderIndex: c.OrderIndex(),
	}
}
