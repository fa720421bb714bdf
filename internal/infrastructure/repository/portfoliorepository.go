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

type portfolioRepository struct {
	db     *gorm.DB
	mapper mappers.PortfolioMapper
}

func NewPortfolioRepository(db *gorm.DB, mapper mappers.PortfolioMapper) portfolio.Repository {
	return &portfolioRepository{
		db:     db,
		mapper: mapper,
	}
}

func (r *portfolioRepository) Save(ctx context.Context, p *portfolio.Portfolio) error {
	model, err := r.mapper.ToModel(p)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	if p.ID() == 0 {
		return p.SetID(model.ID)
	}
	return nil
}

func (r *portfolioRepository) Update(ctx context.Context, p *portfolio.Portfolio) error {
	model, err := r.mapper.ToModel(p)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&models.PortfolioModel{}).
		Where("id = ?", p.ID()).
		Select("*").
		Omit("id", "created_at", "view_count").
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("portfolio not found")
	}
	return nil
}

func (r *portfolioRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.PortfolioModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("portfolio not found")
	}
	return nil
}

func (r *portfolioRepository) FindByID(ctx context.Context, id uint) (*portfolio.Portfolio, error) {
	var model models.PortfolioModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("portfolio not found")
		}
		return nil, err
	}
	return r.mapper.ToDomain(&model)
}

func (r *portfolioRepository) ListPublished(ctx context.Context, categoryID *uint) ([]*portfolio.Portfolio, error) {
	query := r.db.WithContext(ctx).
		Where("status = ?", portfolio.StatusPublished.String()).
		Order("order_index ASC, id ASC")
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	var modelList []models.PortfolioModel
	if err := query.Find(&modelList).Error; err != nil {
		return nil, err
	}
	return r.toDomainList(modelList)
}

func (r *portfolioRepository) ListAll(ctx context.Context) ([]*portfolio.Portfolio, error) {
	var modelList []models.PortfolioModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&modelList).Error; err != nil {
		return nil, err
	}
	return r.toDomainList(modelList)
}

func (r *portfolioRepository) UpdateOrder(ctx context.Context, orders []portfolio.OrderUpdate) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, o := range orders {
			result := tx.Model(&models.PortfolioModel{}).
				Where("id = ?", o.PortfolioID).
				Update("order_index", o.OrderIndex)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return errors.NewNotFoundError("portfolio not found")
			}
		}
		return nil
	})
}

func (r *portfolioRepository) IncrementViewCount(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.PortfolioModel{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

func (r *portfolioRepository) toDomainList(modelList []models.PortfolioModel) ([]*portfolio.Portfolio, error) {
	portfolios := make([]*portfolio.Portfolio, 0, len(modelList))
	for i := range modelList {
		p, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		portfolios = append(portfolios, p)
	}
	return portfolios, nil
}
