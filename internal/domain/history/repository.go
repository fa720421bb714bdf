package history

import "context"

type Repository interface {
	Save(ctx context.Context, m *Milestone) error
	Update(ctx context.Context, m *Milestone) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*Milestone, error)
	// ListActive returns active milestones ordered by date ascending.
	ListActive(ctx context.Context) ([]*Milestone, error)
	ListAll(ctx context.Context) ([]*Milestone, error)
}
