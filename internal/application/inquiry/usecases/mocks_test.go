package usecases

import (
	"context"
	"time"

	"twoloom/internal/domain/inquiry"
	"twoloom/internal/shared/logger"
)

type mockInquiryRepository struct {
	SaveFunc               func(ctx context.Context, i *inquiry.Inquiry) error
	UpdateFunc             func(ctx context.Context, i *inquiry.Inquiry) error
	FindByIDFunc           func(ctx context.Context, id uint) (*inquiry.Inquiry, error)
	ListAllFunc            func(ctx context.Context, status *inquiry.Status) ([]*inquiry.Inquiry, error)
	CountRecentByEmailFunc func(ctx context.Context, email string, since time.Time) (int64, error)
}

func (m *mockInquiryRepository) Save(ctx context.Context, i *inquiry.Inquiry) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, i)
	}
	return nil
}

func (m *mockInquiryRepository) Update(ctx context.Context, i *inquiry.Inquiry) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, i)
	}
	return nil
}

func (m *mockInquiryRepository) FindByID(ctx context.Context, id uint) (*inquiry.Inquiry, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockInquiryRepository) ListAll(ctx context.Context, status *inquiry.Status) ([]*inquiry.Inquiry, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx, status)
	}
	return nil, nil
}

func (m *mockInquiryRepository) CountRecentByEmail(ctx context.Context, email string, since time.Time) (int64, error) {
	if m.CountRecentByEmailFunc != nil {
		return m.CountRecentByEmailFunc(ctx, email, since)
	}
	return 0, nil
}

type mockNotifier struct {
	NotifyOperatorFunc       func(ctx context.Context, n InquiryNotification) error
	AcknowledgeRequesterFunc func(ctx context.Context, n InquiryNotification) error
}

func (m *mockNotifier) NotifyOperator(ctx context.Context, n InquiryNotification) error {
	if m.NotifyOperatorFunc != nil {
		return m.NotifyOperatorFunc(ctx, n)
	}
	return nil
}

func (m *mockNotifier) AcknowledgeRequester(ctx context.Context, n InquiryNotification) error {
	if m.AcknowledgeRequesterFunc != nil {
		return m.AcknowledgeRequesterFunc(ctx, n)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)        {}
func (m *mockLogger) Info(msg string, args ...any)         {}
func (m *mockLogger) Warn(msg string, args ...any)         {}
func (m *mockLogger) Error(msg string, args ...any)        {}
func (m *mockLogger) Debugw(msg string, kv ...interface{}) {}
func (m *mockLogger) Infow(msg string, kv ...interface{})  {}
func (m *mockLogger) Warnw(msg string, kv ...interface{})  {}
func (m *mockLogger) Errorw(msg string, kv ...interface{}) {}
func (m *mockLogger) With(args ...any) logger.Interface    { return m }
func (m *mockLogger) Named(name string) logger.Interface   { return m }
