package usecases

import (
	"context"
	"time"

	"twoloom/internal/domain/history"
	"twoloom/internal/shared/errors"
	"twoloom/internal/shared/i18n"
	"twoloom/internal/shared/logger"
)

type CreateMilestoneCommand struct {
	Title       i18n.LocalizedText
	Description i18n.LocalizedText
	Date        string
	OrderIndex  int
}

type CreateMilestoneResult struct {
	Milestone AdminMilestoneDTO
}

type CreateMilestoneUseCase struct {
	historyRepo history.Repository
	logger      logger.Interface
}

func NewCreateMilestoneUseCase(
	historyRepo history.Repository,
	logger logger.Interface,
) *CreateMilestoneUseCase {
	return &CreateMilestoneUseCase{
		historyRepo: historyRepo,
		logger:      logger,
	}
}

func (uc *CreateMilestoneUseCase) Execute(ctx context.Context, cmd CreateMilestoneCommand) (*CreateMilestoneResult, error) {
	date, err := time.Parse(DateLayout, cmd.Date)
	if err != nil {
		return nil, errors.NewValidationError("date must be in YYYY-MM-DD format")
	}

	m, err := history.NewMilestone(cmd.Title, cmd.Description, date, cmd.OrderIndex)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.historyRepo.Save(ctx, m); err != nil {
		uc.logger.Errorw("failed to save milestone", "error", err)
		return nil, err
	}

	uc.logger.Infow("milestone created", "milestone_id", m.ID(), "date", cmd.Date)

	return &CreateMilestoneResult{Milestone: adminMilestoneDTO(m)}, nil
}

func adminMilestoneDTO(m *history.Milestone) AdminMilestoneDTO {
	return AdminMilestoneDTO{
		ID:          m.ID(),
		Date:        m.Date().Format(DateLayout),
		Title:       m.Title(),
		Description: m.Description(),
		IsActive:    m.IsActive(),
		OrderIndex:  m.OrderIndex(),
	}
}
