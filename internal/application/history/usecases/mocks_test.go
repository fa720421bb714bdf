package usecases

import (
	"context"

	"twoloom/internal/domain/history"
	"twoloom/internal/shared/logger"
)

type mockHistoryRepository struct {
	SaveFunc       func(ctx context.Context, m *history.Milestone) error
	UpdateFunc     func(ctx context.Context, m *history.Milestone) error
	DeleteFunc     func(ctx context.Context, id uint) error
	FindByIDFunc   func(ctx context.Context, id uint) (*history.Milestone, error)
	ListActiveFunc func(ctx context.Context) ([]*history.Milestone, error)
	ListAllFunc    func(ctx context.Context) ([]*history.Milestone, error)
}

func (m *mockHistoryRepository) Save(ctx context.Context, ms *history.Milestone) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, ms)
	}
	return nil
}

func (m *mockHistoryRepository) Update(ctx context.Context, ms *history.Milestone) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, ms)
	}
	return nil
}

func (m *mockHistoryRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockHistoryRepository) FindByID(ctx context.Context, id uint) (*history.Milestone, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockHistoryRepository) ListActive(ctx context.Context) ([]*history.Milestone, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

func (m *mockHistoryRepository) ListAll(ctx context.Context) ([]*history.Milestone, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
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
