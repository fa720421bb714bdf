package repository

import (
	"context"
	stderrors "errors"

	"gorm.io/gorm"

	"twoloom/internal/domain/portfolio"
	"twoloom/internal/infrastructure/persistence/mappers"
	"twoloom/internal/infrastructure/persistence/models"
	"twoloom/internal/shared/errors"
)

type categoryRepository struct {
	db     *gorm.DB
	mapper mappers.PortfolioMapper
}

func NewCategoryRepository(db *gorm.DB, mapper mappers.PortfolioMapper) portfolio.CategoryRepository {
	return &categoryRepository{
		db:     db,
		mapper: mapper,
	}
}

func (r *categoryRepository) Save(ctx context.Context, c *portfolio.Category) error {
	model, err := r.mapper.CategoryToModel(c)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	if c.ID() == 0 {
		return c.SetID(model.ID)
	}
	return nil
}

func (r *categoryRepository) Update(ctx context.Context, c *portfolio.Category) error {
	model, err := r.mapper.CategoryToModel(c)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&models.PortfolioCategoryModel{}).
		Where("id = ?", c.ID()).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("category not found")
	}
	return nil
}

// Delete removes the category and detaches it from any portfolios that still
// reference it, in one transaction.
func (r *categoryRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.PortfolioModel{}).
			Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.PortfolioCategoryModel{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("category not found")
		}
		return nil
	})
}

func (r *categoryRepository) FindByID(ctx context.Context, id uint) (*portfolio.Category, error) {
	var model models.PortfolioCategoryModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("category not found")
		}
		return nil, err
	}
	return r.mapper.CategoryToDomain(&model)
}

func (r *categoryRepository) FindBySlug(ctx context.Context, slug string) (*portfolio.Category, error) {
	var model models.PortfolioCategoryModel
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&model).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.CategoryToDomain(&model)
}

func (r *categoryRepository) ListActive(ctx context.Context) ([]*portfolio.Category, error) {
	var modelList []models.PortfolioCategoryModel
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("order_index ASC, id ASC").
		Find(&modelList).Error; err != nil {
		return nil, err
	}
	return r.toDomainList(modelList)
}

func (r *categoryRepository) ListAll(ctx context.Context) ([]*portfolio.Category, error) {
	var modelList []models.PortfolioCategoryModel
	if err := r.db.WithContext(ctx).Order("order_index ASC, id ASC").Find(&modelList).Error; err != nil {
		return nil, err
	}
	return r.toDomainList(modelList)
}

func (r *categoryRepository) toDomainList(modelList []models.PortfolioCategoryModel) ([]*portfolio.Category, error) {
	categories := make([]*portfolio.Category, 0, len(modelList))
	for i := range modelList {
		c, err := r.mapper.CategoryToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, nil
}
