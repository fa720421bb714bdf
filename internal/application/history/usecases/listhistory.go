package usecases

import (
	"context"

	"twoloom/internal/domain/history"
	"twoloom/internal/shared/logger"
)

type ListHistoryQuery struct {
	Locale string
}

type ListHistoryResult struct {
	History []MilestoneDTO
}

type ListHistoryUseCase struct {
	historyRepo history.Repository
	logger      logger.Interface
}

func NewListHistoryUseCase(
	historyRepo history.Repository,
	logger logger.Interface,
) *ListHistoryUseCase {
	return &ListHistoryUseCase{
		historyRepo: historyRepo,
		logger:      logger,
	}
}

func (uc *ListHistoryUseCase) Execute(ctx context.Context, query ListHistoryQuery) (*ListHistoryResult, error) {
	milestones, err := uc.historyRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list history", "error", err)
		return nil, err
	}

	dtos := make([]MilestoneDTO, 0, len(milestones))
	for _, m := range milestones {
		dtos = append(dtos, MilestoneDTO{
			ID:          m.ID(),
			Year:        m.Year(),
			Date:        m.Date().Format(DateLayout),
			Title:       m.Title().Resolve(query.Locale),
			Description: m.Description().Resolve(query.Locale),
		})
	}

	return &ListHistoryResult{History: dtos}, nil
}
