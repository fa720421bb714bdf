package mappers

import (
	"twoloom/internal/domain/admin"
	"twoloom/internal/infrastructure/persistence/models"
	"twoloom/internal/shared/authorization"
)

type AdminProfileMapper interface {
	ToModel(p *admin.Profile) *models.AdminProfileModel
	ToDomain(model *models.AdminProfileModel) (*admin.Profile, error)
}

type AdminProfileMapperImpl struct{}

func NewAdminProfileMapper() AdminProfileMapper {
	return &AdminProfileMapperImpl{}
}

func (am *AdminProfileMapperImpl) ToModel(p *admin.Profile) *models.AdminProfileModel {
	return &models.AdminProfileModel{
		ID:        p.ID(),
		Email:     p.Email(),
		FullName:  p.FullName(),
		Role:      p.Role().String(),
		CreatedAt: p.CreatedAt().UnixMilli(),
		UpdatedAt: p.UpdatedAt().UnixMilli(),
	}
}

func (am *AdminProfileMapperImpl) ToDomain(model *models.AdminProfileModel) (*admin.Profile, error) {
	return admin.ReconstructProfile(
		model.ID,
		model.Email,
		model.FullName,
		authorization.AdminRole(model.Role),
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
