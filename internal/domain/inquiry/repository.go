package inquiry

import (
	"context"
	"time"
)

type Repository interface {
	Save(ctx context.Context, i *Inquiry) error
	Update(ctx context.Context, i *Inquiry) error
	FindByID(ctx context.Context, id uint) (*Inquiry, error)
	// ListAll returns inquiries newest first, optionally filtered by status.
	ListAll(ctx context.Context, status *Status) ([]*Inquiry, error)
	// CountRecentByEmail counts inquiries from the given address created at
	// or after the since instant. Used by the submission throttle.
	CountRecentByEmail(ctx context.Context, email string, since time.Time) (int64, error)
}
