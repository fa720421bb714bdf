package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"twoloom/internal/domain/portfolio"
	"twoloom/internal/infrastructure/persistence/models"
	"twoloom/internal/shared/i18n"
)

// PortfolioMapper handles the conversion between portfolio domain entities
// and persistence models.
type PortfolioMapper interface {
	ToModel(p *portfolio.Portfolio) (*models.PortfolioModel, error)
	ToDomain(model *models.PortfolioModel) (*portfolio.Portfolio, error)
	CategoryToModel(c *portfolio.Category) (*models.PortfolioCategoryModel, error)
	CategoryToDomain(model *models.PortfolioCategoryModel) (*portfolio.Category, error)
}

type PortfolioMapperImpl struct{}

func NewPortfolioMapper() PortfolioMapper {
	return &PortfolioMapperImpl{}
}

func (m *PortfolioMapperImpl) ToModel(p *portfolio.Portfolio) (*models.PortfolioModel, error) {
	title, err := localizedToJSON(p.Title())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal portfolio title: %w", err)
	}
	description, err := localizedToJSON(p.Description())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal portfolio description: %w", err)
	}
	shortDescription, err := localizedToJSON(p.ShortDescription())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal portfolio short description: %w", err)
	}

	images, err := json.Marshal(p.Images())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal portfolio images: %w", err)
	}
	techStack, err := json.Marshal(p.TechStack())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal portfolio tech stack: %w", err)
	}

	return &models.PortfolioModel{
		ID:               p.ID(),
		Title:            title,
		Description:      description,
		ShortDescription: shortDescription,
		ThumbnailURL:     p.ThumbnailURL(),
		Images:           datatypes.JSON(images),
		TechStack:        datatypes.JSON(techStack),
		DemoURL:          p.DemoURL(),
		GithubURL:        p.GithubURL(),
		CategoryID:       p.CategoryID(),
		Featured:         p.Featured(),
		OrderIndex:       p.OrderIndex(),
		Status:           p.Status().String(),
		ViewCount:        p.ViewCount(),
		CreatedAt:        p.CreatedAt().UnixMilli(),
		UpdatedAt:        p.UpdatedAt().UnixMilli(),
	}, nil
}

func (m *PortfolioMapperImpl) ToDomain(model *models.PortfolioModel) (*portfolio.Portfolio, error) {
	title, err := localizedFromJSON(model.Title)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal portfolio title (id=%d): %w", model.ID, err)
	}
	description, err := localizedFromJSON(model.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal portfolio description (id=%d): %w", model.ID, err)
	}
	shortDescription, err := localizedFromJSON(model.ShortDescription)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal portfolio short description (id=%d): %w", model.ID, err)
	}

	var images []string
	if len(model.Images) > 0 {
		if err := json.Unmarshal(model.Images, &images); err != nil {
			return nil, fmt.Errorf("failed to unmarshal portfolio images (id=%d): %w", model.ID, err)
		}
	}

	var techStack []string
	if len(model.TechStack) > 0 {
		if err := json.Unmarshal(model.TechStack, &techStack); err != nil {
			return nil, fmt.Errorf("failed to unmarshal portfolio tech stack (id=%d): %w", model.ID, err)
		}
	}

	return portfolio.ReconstructPortfolio(
		model.ID,
		title,
		description,
		shortDescription,
		model.ThumbnailURL,
		images,
		techStack,
		model.DemoURL,
		model.GithubURL,
		model.CategoryID,
		model.Featured,
		model.OrderIndex,
		portfolio.Status(model.Status),
		model.ViewCount,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *PortfolioMapperImpl) CategoryToModel(c *portfolio.Category) (*models.PortfolioCategoryModel, error) {
	name, err := localizedToJSON(c.Name())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal category name: %w", err)
	}

	return &models.PortfolioCategoryModel{
		ID:         c.ID(),
		Name:       name,
		Slug:       c.Slug(),
		IsActive:   c.IsActive(),
		OrderIndex: c.OrderIndex(),
		CreatedAt:  c.CreatedAt().UnixMilli(),
		UpdatedAt:  c.UpdatedAt().UnixMilli(),
	}, nil
}

func (m *PortfolioMapperImpl) CategoryToDomain(model *models.PortfolioCategoryModel) (*portfolio.Category, error) {
	name, err := localizedFromJSON(model.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal category name (id=%d): %w", model.ID, err)
	}

	return portfolio.ReconstructCategory(
		model.ID,
		name,
		model.Slug,
		model.IsActive,
		model.OrderIndex,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func localizedToJSON(text i18n.LocalizedText) (datatypes.JSON, error) {
	if text == nil {
		text = i18n.LocalizedText{}
	}
	data, err := json.Marshal(text)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(data), nil
}

func localizedFromJSON(data datatypes.JSON) (i18n.LocalizedText, error) {
	if len(data) == 0 {
		return i18n.LocalizedText{}, nil
	}
	var text i18n.LocalizedText
	if err := json.Unmarshal(data, &text); err != nil {
		return nil, err
	}
	return text, nil
}
