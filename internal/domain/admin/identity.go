package admin

import "context"

// IdentityProvider manages auth credentials separately from admin profiles.
// Creating a profile is a two-step flow: create the credential first, then
// the profile under the same ID. DeleteIdentity compensates when the second
// step fails.
type IdentityProvider interface {
	CreateIdentity(ctx context.Context, email, password string) (uint, error)
	DeleteIdentity(ctx context.Context, id uint) error
	// Authenticate verifies the credentials and returns the identity ID.
	Authenticate(ctx context.Context, email, password string) (uint, error)
}
