package usecases

import (
	"context"

	"twoloom/internal/domain/history"
	"twoloom/internal/shared/logger"
)

type DeleteMilestoneCommand struct {
	MilestoneID uint
}

type DeleteMilestoneUseCase struct {
	historyRepo history.Repository
	logger      logger.Interface
}

func NewDeleteMilestoneUseCase(
	historyRepo history.Repository,
	logger logger.Interface,
) *DeleteMilestoneUseCase {
	return &DeleteMilestoneUseCase{
		historyRepo: historyRepo,
		logger:      logger,
	}
}

func (uc *DeleteMilestoneUseCase) Execute(ctx context.Context, cmd DeleteMilestoneCommand) error {
	if _, err := uc.historyRepo.FindByID(ctx, cmd.MilestoneID); err != nil {
		return err
	}

	if err := uc.historyRepo.Delete(ctx, cmd.MilestoneID); err != nil {
		uc.logger.Errorw("failed to delete milestone", "milestone_id", cmd.MilestoneID, "error", err)
		return err
	}

	uc.logger.Infow("milestone deleted", "milestone_id", cmd.MilestoneID)
	return nil
}
