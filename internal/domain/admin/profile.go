package admin

import (
	"fmt"
	"strings"
	"time"

	"twoloom/internal/shared/authorization"
)

// Profile is the administrative identity attached to an auth credential.
// Its ID always equals the ID of the credential it belongs to.
type Profile struct {
	id        uint
	email     string
	fullName  string
	role      authorization.AdminRole
	createdAt time.Time
	updatedAt time.Time
}

func NewProfile(id uint, email, fullName string, role authorization.AdminRole) (*Profile, error) {
	if id == 0 {
		return nil, fmt.Errorf("profile ID cannot be zero")
	}

	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid admin role: %s", role)
	}

	now := time.Now()

	return &Profile{
		id:        id,
		email:     email,
		fullName:  strings.TrimSpace(fullName),
		role:      role,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructProfile(
	id uint,
	email, fullName string,
	role authorization.AdminRole,
	createdAt, updatedAt time.Time,
) (*Profile, error) {
	if id == 0 {
		return nil, fmt.Errorf("profile ID cannot be zero")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid admin role: %s", role)
	}

	return &Profile{
		id:        id,
		email:     email,
		fullName:  fullName,
		role:      role,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (p *Profile) ID() uint                      { return p.id }
func (p *Profile) Email() string                 { return p.email }
func (p *Profile) FullName() string              { return p.fullName }
func (p *Profile) Role() authorization.AdminRole { return p.role }
func (p *Profile) CreatedAt() time.Time          { return p.createdAt }
func (p *Profile) UpdatedAt() time.Time          { return p.updatedAt }

func (p *Profile) UpdateFullName(fullName string) {
	p.fullName = strings.TrimSpace(fullName)
	p.updatedAt = time.Now()
}
