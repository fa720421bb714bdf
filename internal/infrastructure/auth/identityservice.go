package auth

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"twoloom/internal/domain/admin"
	"twoloom/internal/infrastructure/persistence/models"
	"twoloom/internal/shared/errors"
)

// IdentityService stores admin credentials in the admin_users table and
// implements the domain's IdentityProvider.
type IdentityService struct {
	db     *gorm.DB
	hasher *BcryptPasswordHasher
}

func NewIdentityService(db *gorm.DB, hasher *BcryptPasswordHasher) admin.IdentityProvider {
	return &IdentityService{
		db:     db,
		hasher: hasher,
	}
}

func (s *IdentityService) CreateIdentity(ctx context.Context, email, password string) (uint, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return 0, err
	}

	model := &models.AdminUserModel{
		Email:        strings.TrimSpace(strings.ToLower(email)),
		PasswordHash: hash,
	}
	if err := s.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return 0, errors.NewConflictError("email already registered")
		}
		return 0, err
	}
	return model.ID, nil
}

func (s *IdentityService) DeleteIdentity(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&models.AdminUserModel{}, id).Error
}

func (s *IdentityService) Authenticate(ctx context.Context, email, password string) (uint, error) {
	var model models.AdminUserModel
	err := s.db.WithContext(ctx).
		Where("email = ?", strings.TrimSpace(strings.ToLower(email))).
		First(&model).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("unknown email")
		}
		return 0, err
	}

	if err := s.hasher.Verify(password, model.PasswordHash); err != nil {
		return 0, err
	}
	return model.ID, nil
}
