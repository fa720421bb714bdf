package usecases

import (
	"context"

	"twoloom/internal/domain/portfolio"
	"twoloom/internal/shared/logger"
)

type DeleteCategoryCommand struct {
	CategoryID uint
}

type DeleteCategoryUseCase struct {
	categoryRepo portfolio.CategoryRepository
	logger       logger.Interface
}

func NewDeleteCategoryUseCase(
	categoryRepo portfolio.CategoryRepository,
	logger logger.Interface,
) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Execute removes the category. Portfolios keep their category_id; the
// persistence layer nulls references on delete so listings stay consistent.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, cmd DeleteCategoryCommand) error {
	if _, err := uc.categoryRepo.FindByID(ctx, cmd.CategoryID); err != nil {
		return err
	}

	if err := uc.categoryRepo.Delete(ctx, cmd.CategoryID); err != nil {
		uc.logger.Errorw("failed to delete category", "category_id", cmd.CategoryID, "error", err)
		return err
	}

	uc.logger.Infow("category deleted", "category_id", cmd.CategoryID)
	return nil
}
