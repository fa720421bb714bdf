package usecases

import (
	"context"

	"twoloom/internal/domain/portfolio"
	"twoloom/internal/shared/logger"
)

type mockPortfolioRepository struct {
	SaveFunc               func(ctx context.Context, p *portfolio.Portfolio) error
	UpdateFunc             func(ctx context.Context, p *portfolio.Portfolio) error
	DeleteFunc             func(ctx context.Context, id uint) error
	FindByIDFunc           func(ctx context.Context, id uint) (*portfolio.Portfolio, error)
	ListPublishedFunc      func(ctx context.Context, categoryID *uint) ([]*portfolio.Portfolio, error)
	ListAllFunc            func(ctx context.Context) ([]*portfolio.Portfolio, error)
	UpdateOrderFunc        func(ctx context.Context, orders []portfolio.OrderUpdate) error
	IncrementViewCountFunc func(ctx context.Context, id uint) error
}

func (m *mockPortfolioRepository) Save(ctx context.Context, p *portfolio.Portfolio) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockPortfolioRepository) Update(ctx context.Context, p *portfolio.Portfolio) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockPortfolioRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockPortfolioRepository) FindByID(ctx context.Context, id uint) (*portfolio.Portfolio, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPortfolioRepository) ListPublished(ctx context.Context, categoryID *uint) ([]*portfolio.Portfolio, error) {
	if m.ListPublishedFunc != nil {
		return m.ListPublishedFunc(ctx, categoryID)
	}
	return nil, nil
}

func (m *mockPortfolioRepository) ListAll(ctx context.Context) ([]*portfolio.Portfolio, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockPortfolioRepository) UpdateOrder(ctx context.Context, orders []portfolio.OrderUpdate) error {
	if m.UpdateOrderFunc != nil {
		return m.UpdateOrderFunc(ctx, orders)
	}
	return nil
}

func (m *mockPortfolioRepository) IncrementViewCount(ctx context.Context, id uint) error {
	if m.IncrementViewCountFunc != nil {
		return m.IncrementViewCountFunc(ctx, id)
	}
	return nil
}

type mockCategoryRepository struct {
	SaveFunc       func(ctx context.Context, c *portfolio.Category) error
	UpdateFunc     func(ctx context.Context, c *portfolio.Category) error
	DeleteFunc     func(ctx context.Context, id uint) error
	FindByIDFunc   func(ctx context.Context, id uint) (*portfolio.Category, error)
	FindBySlugFunc func(ctx context.Context, slug string) (*portfolio.Category, error)
	ListActiveFunc func(ctx context.Context) ([]*portfolio.Category, error)
	ListAllFunc    func(ctx context.Context) ([]*portfolio.Category, error)
}

func (m *mockCategoryRepository) Save(ctx context.Context, c *portfolio.Category) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockCategoryRepository) Update(ctx context.Context, c *portfolio.Category) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCategoryRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockCategoryRepository) FindByID(ctx context.Context, id uint) (*portfolio.Category, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCategoryRepository) FindBySlug(ctx context.Context, slug string) (*portfolio.Category, error) {
	if m.FindBySlugFunc != nil {
		return m.FindBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *mockCategoryRepository) ListActive(ctx context.Context) ([]*portfolio.Category, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

func (m *mockCategoryRepository) ListAll(ctx context.Context) ([]*portfolio.Category, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

type mockMarkdownRenderer struct {
	RenderFunc func(markdown string) (string, error)
}

func (m *mockMarkdownRenderer) RenderToSafeHTML(markdown string) (string, error) {
	if m.RenderFunc != nil {
		return m.RenderFunc(markdown)
	}
	return "<p>" + markdown + "</p>", nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)            {}
func (m *mockLogger) Info(msg string, args ...any)             {}
func (m *mockLogger) Warn(msg string, args ...any)             {}
func (m *mockLogger) Error(msg string, args ...any)            {}
func (m *mockLogger) Debugw(msg string, kv ...interface{})     {}
func (m *mockLogger) Infow(msg string, kv ...interface{})      {}
func (m *mockLogger) Warnw(msg string, kv ...interface{})      {}
func (m *mockLogger) Errorw(msg string, kv ...interface{})     {}
func (m *mockLogger) With(args ...any) logger.Interface        { return m }
func (m *mockLogger) Named(name string) logger.Interface       { return m }
