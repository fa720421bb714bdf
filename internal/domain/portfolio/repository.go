package portfolio

import "context"

// OrderUpdate pairs a portfolio with its new position in the public listing.
type OrderUpdate struct {
	PortfolioID uint
	OrderIndex  int
}

type Repository interface {
	Save(ctx context.Context, p *Portfolio) error
	Update(ctx context.Context, p *Portfolio) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*Portfolio, error)
	// ListPublished returns published portfolios ordered by order index,
	// optionally filtered by category.
	ListPublished(ctx context.Context, categoryID *uint) ([]*Portfolio, error)
	// ListAll returns every portfolio regardless of status, newest first.
	ListAll(ctx context.Context) ([]*Portfolio, error)
	UpdateOrder(ctx context.Context, orders []OrderUpdate) error
	IncrementViewCount(ctx context.Context, id uint) error
}

type CategoryRepository interface {
	Save(ctx context.Context, c *Category) error
	Update(ctx context.Context, c *Category) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*Category, error)
	// FindBySlug returns (nil, nil) when no category has the slug.
	FindBySlug(ctx context.Context, slug string) (*Category, error)
	// ListActive returns active categories ordered by order index.
	ListActive(ctx context.Context) ([]*Category, error)
	ListAll(ctx context.Context) ([]*Category, error)
}
