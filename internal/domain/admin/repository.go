package admin

import "context"

type ProfileRepository interface {
	Save(ctx context.Context, p *Profile) error
	FindByID(ctx context.Context, id uint) (*Profile, error)
	FindByEmail(ctx context.Context, email string) (*Profile, error)
	// Count returns the number of admin profiles. The one-time setup
	// endpoint is only available while this is zero.
	Count(ctx context.Context) (int64, error)
}
