package mappers

import (
	"twoloom/internal/domain/inquiry"
	"twoloom/internal/infrastructure/persistence/models"
)

type InquiryMapper interface {
	ToModel(i *inquiry.Inquiry) *models.InquiryModel
	ToDomain(model *models.InquiryModel) (*inquiry.Inquiry, error)
}

type InquiryMapperImpl struct{}

func NewInquiryMapper() InquiryMapper {
	return &InquiryMapperImpl{}
}

func (im *InquiryMapperImpl) ToModel(i *inquiry.Inquiry) *models.InquiryModel {
	return &models.InquiryModel{
		ID:         i.ID(),
		Name:       i.Name(),
		Email:      i.Email().String(),
		Company:    i.Company(),
		Phone:      i.Phone(),
		Message:    i.Message(),
		Status:     i.Status().String(),
		AdminNotes: i.AdminNotes(),
		CreatedAt:  i.CreatedAt().UnixMilli(),
		UpdatedAt:  i.UpdatedAt().UnixMilli(),
	}
}

func (im *InquiryMapperImpl) ToDomain(model *models.InquiryModel) (*inquiry.Inquiry, error) {
	return inquiry.ReconstructInquiry(
		model.ID,
		model.Name,
		model.Email,
		model.Company,
		model.Phone,
		model.Message,
		inquiry.Status(model.Status),
		model.AdminNotes,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
