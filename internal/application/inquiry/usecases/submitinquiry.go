package usecases

import (
	"context"
	"time"

	"twoloom/internal/domain/inquiry"
	"twoloom/internal/shared/errors"
	"twoloom/internal/shared/goroutine"
	"twoloom/internal/shared/logger"
)

type SubmitInquiryCommand struct {
	Name    string
	Email   string
	Company string
	Phone   string
	Message string
}

type SubmitInquiryResult struct {
	InquiryID uint
}

type SubmitInquiryUseCase struct {
	inquiryRepo inquiry.Repository
	notifier    InquiryNotifier
	logger      logger.Interface

	rateLimitWindow time.Duration
	rateLimitMax    int64
}

func NewSubmitInquiryUseCase(
	inquiryRepo inquiry.Repository,
	notifier InquiryNotifier,
	logger logger.Interface,
	rateLimitWindow time.Duration,
	rateLimitMax int64,
) *SubmitInquiryUseCase {
	if rateLimitWindow <= 0 {
		rateLimitWindow = inquiry.DefaultRateLimitWindow
	}
	if rateLimitMax <= 0 {
		rateLimitMax = inquiry.DefaultRateLimitMaxRequests
	}
	return &SubmitInquiryUseCase{
		inquiryRepo:     inquiryRepo,
		notifier:        notifier,
		logger:          logger,
		rateLimitWindow: rateLimitWindow,
		rateLimitMax:    rateLimitMax,
	}
}

func (uc *SubmitInquiryUseCase) Execute(ctx context.Context, cmd SubmitInquiryCommand) (*SubmitInquiryResult, error) {
	newInquiry, err := inquiry.NewInquiry(cmd.Name, cmd.Email, cmd.Company, cmd.Phone, cmd.Message)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// Per-address throttle: count recent submissions instead of keeping
	// counter state. The window lower bound is inclusive.
	since := time.Now().Add(-uc.rateLimitWindow)
	count, err := uc.inquiryRepo.CountRecentByEmail(ctx, newInquiry.Email().String(), since)
	if err != nil {
		uc.logger.Errorw("failed to count recent inquiries", "error", err)
		return nil, errors.NewInternalError("failed to submit inquiry")
	}
	if count >= uc.rateLimitMax {
		uc.logger.Warnw("inquiry rate limit hit", "email", newInquiry.Email().String(), "recent", count)
		return nil, errors.NewRateLimitedError("too many inquiries, please try again later")
	}

	if err := uc.inquiryRepo.Save(ctx, newInquiry); err != nil {
		uc.logger.Errorw("failed to save inquiry", "error", err)
		return nil, errors.NewInternalError("failed to submit inquiry")
	}

	uc.logger.Infow("inquiry submitted", "inquiry_id", newInquiry.ID(), "email", newInquiry.Email().String())

	uc.dispatchNotifications(newInquiry)

	return &SubmitInquiryResult{InquiryID: newInquiry.ID()}, nil
}

// dispatchNotifications sends both emails in the background. The inquiry is
// already persisted; a mail failure is logged and otherwise ignored.
func (uc *SubmitInquiryUseCase) dispatchNotifications(i *inquiry.Inquiry) {
	n := InquiryNotification{
		InquiryID: i.ID(),
		Name:      i.Name(),
		Email:     i.Email().String(),
		Company:   i.Company(),
		Phone:     i.Phone(),
		Message:   i.Message(),
	}

	goroutine.SafeGo(uc.logger, "inquiry-notifications", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := uc.notifier.NotifyOperator(ctx, n); err != nil {
			uc.logger.Errorw("failed to notify operator", "inquiry_id", n.InquiryID, "error", err)
		}
		if err := uc.notifier.AcknowledgeRequester(ctx, n); err != nil {
			uc.logger.Errorw("failed to acknowledge requester", "inquiry_id", n.InquiryID, "error", err)
		}
	})
}
