package repository

import (
	"context"
	stderrors "errors"

	"gorm.io/gorm"

	"twoloom/internal/domain/history"
	"twoloom/internal/infrastructure/persistence/mappers"
	"twoloom/internal/infrastructure/persistence/models"
	"twoloom/internal/shared/errors"
)

type historyRepository struct {
	db     *gorm.DB
	mapper mappers.HistoryMapper
}

func NewHistoryRepository(db *gorm.DB, mapper mappers.HistoryMapper) history.Repository {
	return &historyRepository{
		db:     db,
		mapper: mapper,
	}
}

func (r *historyRepository) Save(ctx context.Context, m *history.Milestone) error {
	model, err := r.mapper.ToModel(m)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	if m.ID() == 0 {
		return m.SetID(model.ID)
	}
	return nil
}

func (r *historyRepository) Update(ctx context.Context, m *history.Milestone) error {
	model, err := r.mapper.ToModel(m)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&models.HistoryMilestoneModel{}).
		Where("id = ?", m.ID()).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("milestone not found")
	}
	return nil
}

func (r *historyRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.HistoryMilestoneModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("milestone not found")
	}
	return nil
}

func (r *historyRepository) FindByID(ctx context.Context, id uint) (*history.Milestone, error) {
	var model models.HistoryMilestoneModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("milestone not found")
		}
		return nil, err
	}
	return r.mapper.ToDomain(&model)
}

func (r *historyRepository) ListActive(ctx context.Context) ([]*history.Milestone, error) {
	var modelList []models.HistoryMilestoneModel
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("date ASC, id ASC").
		Find(&modelList).Error; err != nil {
		return nil, err
	}
	return r.toDomainList(modelList)
}

func (r *historyRepository) ListAll(ctx context.Context) ([]*history.Milestone, error) {
	var modelList []models.HistoryMilestoneModel
	if err := r.db.WithContext(ctx).Order("date ASC, id ASC").Find(&modelList).Error; err != nil {
		return nil, err
	}
	return r.toDomainList(modelList)
}

func (r *historyRepository) toDomainList(modelList []models.HistoryMilestoneModel) ([]*history.Milestone, error) {
	milestones := make([]*history.Milestone, 0, len(modelList))
	for i := range modelList {
		m, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		milestones = append(milestones, m)
	}
	return milestones, nil
}
