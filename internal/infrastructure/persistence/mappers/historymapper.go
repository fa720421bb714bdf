package mappers

import (
	"fmt"

	"twoloom/internal/domain/history"
	"twoloom/internal/infrastructure/persistence/models"
)

type HistoryMapper interface {
	ToModel(m *history.Milestone) (*models.HistoryMilestoneModel, error)
	ToDomain(model *models.HistoryMilestoneModel) (*history.Milestone, error)
}

type HistoryMapperImpl struct{}

func NewHistoryMapper() HistoryMapper {
	return &HistoryMapperImpl{}
}

func (hm *HistoryMapperImpl) ToModel(m *history.Milestone) (*models.HistoryMilestoneModel, error) {
	title, err := localizedToJSON(m.Title())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal milestone title: %w", err)
	}
	description, err := localizedToJSON(m.Description())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal milestone description: %w", err)
	}

	return &models.HistoryMilestoneModel{
		ID:          m.ID(),
		Title:       title,
		Description: description,
		Date:        m.Date().UnixMilli(),
		IsActive:    m.IsActive(),
		OrderIndex:  m.OrderIndex(),
		CreatedAt:   m.CreatedAt().UnixMilli(),
		UpdatedAt:   m.UpdatedAt().UnixMilli(),
	}, nil
}

func (hm *HistoryMapperImpl) ToDomain(model *models.HistoryMilestoneModel) (*history.Milestone, error) {
	title, err := localizedFromJSON(model.Title)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal milestone title (id=%d): %w", model.ID, err)
	}
	description, err := localizedFromJSON(model.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal milestone description (id=%d): %w", model.ID, err)
	}

	return history.ReconstructMilestone(
		model.ID,
		title,
		description,
		millisToTime(model.Date),
		model.IsActive,
		model.OrderIndex,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
