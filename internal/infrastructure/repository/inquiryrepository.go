package repository

import (
	"context"
	stderrors "errors"
	"time"

	"gorm.io/gorm"

	"twoloom/internal/domain/inquiry"
	"twoloom/internal/infrastructure/persistence/mappers"
	"twoloom/internal/infrastructure/persistence/models"
	"twoloom/internal/shared/errors"
)

type inquiryRepository struct {
	db     *gorm.DB
	mapper mappers.InquiryMapper
}

func NewInquiryRepository(db *gorm.DB, mapper mappers.InquiryMapper) inquiry.Repository {
	return &inquiryRepository{
		db:     db,
		mapper: mapper,
	}
}

func (r *inquiryRepository) Save(ctx context.Context, i *inquiry.Inquiry) error {
	model := r.mapper.ToModel(i)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	if i.ID() == 0 {
		return i.SetID(model.ID)
	}
	return nil
}

func (r *inquiryRepository) Update(ctx context.Context, i *inquiry.Inquiry) error {
	model := r.mapper.ToModel(i)

	result := r.db.WithContext(ctx).
		Model(&models.InquiryModel{}).
		Where("id = ?", i.ID()).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("inquiry not found")
	}
	return nil
}

func (r *inquiryRepository) FindByID(ctx context.Context, id uint) (*inquiry.Inquiry, error) {
	var model models.InquiryModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("inquiry not found")
		}
		return nil, err
	}
	return r.mapper.ToDomain(&model)
}

func (r *inquiryRepository) ListAll(ctx context.Context, status *inquiry.Status) ([]*inquiry.Inquiry, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC, id DESC")
	if status != nil {
		query = query.Where("status = ?", status.String())
	}

	var modelList []models.InquiryModel
	if err := query.Find(&modelList).Error; err != nil {
		return nil, err
	}

	inquiries := make([]*inquiry.Inquiry, 0, len(modelList))
	for i := range modelList {
		inq, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		inquiries = append(inquiries, inq)
	}
	return inquiries, nil
}

// CountRecentByEmail counts submissions from an address at or after the
// given instant. The lower bound is inclusive.
func (r *inquiryRepository) CountRecentByEmail(ctx context.Context, email string, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.InquiryModel{}).
		Where("email = ? AND created_at >= ?", email, since.UnixMilli()).
		Count(&count).Error
	return count, err
}
