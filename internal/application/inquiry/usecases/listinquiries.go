package usecases

import (
	"context"

	"twoloom/internal/domain/inquiry"
	"twoloom/internal/shared/errors"
	"twoloom/internal/shared/logger"
)

type ListInquiriesQuery struct {
	// Status filters the listing when set to a valid status string.
	Status string
}

type ListInquiriesResult struct {
	Inquiries []InquiryDTO
}

type ListInquiriesUseCase struct {
	inquiryRepo inquiry.Repository
	logger      logger.Interface
}

func NewListInquiriesUseCase(
	inquiryRepo inquiry.Repository,
	logger logger.Interface,
) *ListInquiriesUseCase {
	return &ListInquiriesUseCase{
		inquiryRepo: inquiryRepo,
		logger:      logger,
	}
}

func (uc *ListInquiriesUseCase) Execute(ctx context.Context, query ListInquiriesQuery) (*ListInquiriesResult, error) {
	var status *inquiry.Status
	if query.Status != "" {
		s := inquiry.Status(query.Status)
		if !s.IsValid() {
			return nil, errors.NewValidationError("invalid status filter")
		}
		status = &s
	}

	inquiries, err := uc.inquiryRepo.ListAll(ctx, status)
	if err != nil {
		uc.logger.Errorw("failed to list inquiries", "error", err)
		return nil, err
	}

	dtos := make([]InquiryDTO, 0, len(inquiries))
	for _, i := range inquiries {
		dtos = append(dtos, inquiryDTO(i))
	}

	return &ListInquiriesResult{Inquiries: dtos}, nil
}

func inquiryDTO(i *inquiry.Inquiry) InquiryDTO {
	return InquiryDTO{
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
