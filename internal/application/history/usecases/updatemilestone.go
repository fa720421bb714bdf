package usecases

import (
	"context"
	"time"

	"twoloom/internal/domain/history"
	"twoloom/internal/shared/errors"
	"twoloom/internal/shared/i18n"
	"twoloom/internal/shared/logger"
)

type UpdateMilestoneCommand struct {
	MilestoneID uint
	Title       i18n.LocalizedText
	Description i18n.LocalizedText
	Date        string
	IsActive    bool
	OrderIndex  int
}

type UpdateMilestoneResult struct {
	Milestone AdminMilestoneDTO
}

type UpdateMilestoneUseCase struct {
	historyRepo history.Repository
	logger      logger.Interface
}

func NewUpdateMilestoneUseCase(
	historyRepo history.Repository,
	logger logger.Interface,
) *UpdateMilestoneUseCase {
	return &UpdateMilestoneUseCase{
		historyRepo: historyRepo,
		logger:      logger,
	}
}

func (uc *UpdateMilestoneUseCase) Execute(ctx context.Context, cmd UpdateMilestoneCommand) (*UpdateMilestoneResult, error) {
	m, err := uc.historyRepo.FindByID(ctx, cmd.MilestoneID)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse(DateLayout, cmd.Date)
	if err != nil {
		return nil, errors.NewValidationError("date must be in YYYY-MM-DD format")
	}

	if err := m.Update(cmd.Title, cmd.Description, date); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	m.SetOrderIndex(cmd.OrderIndex)
	if cmd.IsActive {
		m.Activate()
	} else {
		m.Deactivate()
	}

	if err := uc.historyRepo.Update(ctx, m); err != nil {
		uc.logger.Errorw("failed to update milestone", "milestone_id", cmd.MilestoneID, "error", err)
		return nil, err
	}

	return &UpdateMilestoneResult{Milestone: adminMilestoneDTO(m)}, nil
}
