package repository

import (
	"context"
	stderrors "errors"

	"gorm.io/gorm"

	"twoloom/internal/domain/admin"
	"twoloom/internal/infrastructure/persistence/mappers"
	"twoloom/internal/infrastructure/persistence/models"
	"twoloom/internal/shared/errors"
)

type adminProfileRepository struct {
	db     *gorm.DB
	mapper mappers.AdminProfileMapper
}

func NewAdminProfileRepository(db *gorm.DB, mapper mappers.AdminProfileMapper) admin.ProfileRepository {
	return &adminProfileRepository{
		db:     db,
		mapper: mapper,
	}
}

func (r *adminProfileRepository) Save(ctx context.Context, p *admin.Profile) error {
	model := r.mapper.ToModel(p)
	return r.db.WithContext(ctx).Create(model).Error
}

func (r *adminProfileRepository) FindByID(ctx context.Context, id uint) (*admin.Profile, error) {
	var model models.AdminProfileModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("admin profile not found")
		}
		return nil, err
	}
	return r.mapper.ToDomain(&model)
}

func (r *adminProfileRepository) FindByEmail(ctx context.Context, email string) (*admin.Profile, error) {
	var model models.AdminProfileModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("admin profile not found")
		}
		return nil, err
	}
	return r.mapper.ToDomain(&model)
}

func (r *adminProfileRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.AdminProfileModel{}).Count(&count).Error
	return count, err
}
