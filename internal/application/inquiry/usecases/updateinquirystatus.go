package usecases

import (
	"context"

	"twoloom/internal/domain/inquiry"
	"twoloom/internal/shared/errors"
	"twoloom/internal/shared/logger"
)

type UpdateInquiryStatusCommand struct {
	InquiryID  uint
	Status     string
	AdminNotes *string
}

type UpdateInquiryStatusResult struct {
	Inquiry InquiryDTO
}

type UpdateInquiryStatusUseCase struct {
	inquiryRepo inquiry.Repository
	logger      logger.Interface
}

func NewUpdateInquiryStatusUseCase(
	inquiryRepo inquiry.Repository,
	logger logger.Interface,
) *UpdateInquiryStatusUseCase {
	return &UpdateInquiryStatusUseCase{
		inquiryRepo: inquiryRepo,
		logger:      logger,
	}
}

func (uc *UpdateInquiryStatusUseCase) Execute(ctx context.Context, cmd UpdateInquiryStatusCommand) (*UpdateInquiryStatusResult, error) {
	i, err := uc.inquiryRepo.FindByID(ctx, cmd.InquiryID)
	if err != nil {
		return nil, err
	}

	if err := i.ChangeStatus(inquiry.Status(cmd.Status)); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.AdminNotes != nil {
		i.SetAdminNotes(*cmd.AdminNotes)
	}

	if err := uc.inquiryRepo.Update(ctx, i); err != nil {
		uc.logger.Errorw("failed to update inquiry", "inquiry_id", cmd.InquiryID, "error", err)
		return nil, err
	}

	uc.logger.Infow("inquiry status updated", "inquiry_id", cmd.InquiryID, "status", cmd.Status)

	return &UpdateInquiryStatusResult{Inquiry: inquiryDTO(i)}, nil
}
