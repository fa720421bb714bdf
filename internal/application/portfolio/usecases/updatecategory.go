package usecases

import (
	"context"

	"twoloom/internal/domain/portfolio"
	"twoloom/internal/shared/errors"
	"twoloom/internal/shared/i18n"
	"twoloom/internal/shared/logger"
)

type UpdateCategoryCommand struct {
	CategoryID uint
	Name       i18n.LocalizedText
	IsActive   bool
	OrderIndex int
}

type UpdateCategoryResult struct {
	Category AdminCategoryDTO
}

type UpdateCategoryUseCase struct {
	categoryRepo portfolio.CategoryRepository
	logger       logger.Interface
}

func NewUpdateCategoryUseCase(
	categoryRepo portfolio.CategoryRepository,
	logger logger.Interface,
) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, cmd UpdateCategoryCommand) (*UpdateCategoryResult, error) {
	category, err := uc.categoryRepo.FindByID(ctx, cmd.CategoryID)
	if err != nil {
		return nil, err
	}

	if err := category.Rename(cmd.Name); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	category.SetOrderIndex(cmd.OrderIndex)
	if cmd.IsActive {
		category.Activate()
	} else {
		category.Deactivate()
	}

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		uc.logger.Errorw("failed to update category", "category_id", cmd.CategoryID, "error", err)
		return nil, err
	}

	return &UpdateCategoryResult{Category: adminCategoryDTO(category)}, nil
}
