package usecases

import (
	"context"
	"strings"

	"twoloom/internal/domain/admin"
	"twoloom/internal/shared/authorization"
	"twoloom/internal/shared/errors"
	"twoloom/internal/shared/logger"
)

const minPasswordLength = 6

type SetupAdminCommand struct {
	Email    string
	Password string
	FullName string
}

type SetupAdminResult struct {
	AdminID uint
}

// SetupAdminUseCase bootstraps the first admin account. It is a one-shot
// operation: once any profile exists the endpoint answers Conflict.
type SetupAdminUseCase struct {
	profileRepo admin.ProfileRepository
	identities  admin.IdentityProvider
	logger      logger.Interface
}

func NewSetupAdminUseCase(
	profileRepo admin.ProfileRepository,
	identities admin.IdentityProvider,
	logger logger.Interface,
) *SetupAdminUseCase {
	return &SetupAdminUseCase{
		profileRepo: profileRepo,
		identities:  identities,
		logger:      logger,
	}
}

func (uc *SetupAdminUseCase) Execute(ctx context.Context, cmd SetupAdminCommand) (*SetupAdminResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	// Count-then-create has a narrow race; the unique email constraint in
	// the identity store is the backstop.
	count, err := uc.profileRepo.Count(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count admin profiles", "error", err)
		return nil, errors.NewInternalError("failed to set up admin")
	}
	if count > 0 {
		return nil, errors.NewConflictError("admin account already exists")
	}

	identityID, err := uc.identities.CreateIdentity(ctx, cmd.Email, cmd.Password)
	if err != nil {
		if errors.IsDuplicateError(err) || errors.IsConflictError(err) {
			return nil, errors.NewConflictError("admin account already exists")
		}
		uc.logger.Errorw("failed to create admin identity", "error", err)
		return nil, errors.NewInternalError("failed to set up admin")
	}

	profile, err := admin.NewProfile(identityID, cmd.Email, cmd.FullName, authorization.RoleAdmin)
	if err != nil {
		uc.compensateIdentity(ctx, identityID)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.profileRepo.Save(ctx, profile); err != nil {
		uc.logger.Errorw("failed to save admin profile", "identity_id", identityID, "error", err)
		uc.compensateIdentity(ctx, identityID)
		return nil, errors.NewInternalError("failed to set up admin")
	}

	uc.logger.Infow("admin account bootstrapped", "admin_id", identityID, "email", cmd.Email)

	return &SetupAdminResult{AdminID: identityID}, nil
}

// compensateIdentity removes the half-created credential so the setup
// endpoint stays usable. Best effort.
func (uc *SetupAdminUseCase) compensateIdentity(ctx context.Context, identityID uint) {
	if err := uc.identities.DeleteIdentity(ctx, identityID); err != nil {
		uc.logger.Errorw("failed to delete orphaned identity", "identity_id", identityID, "error", err)
	}
}

func (uc *SetupAdminUseCase) validateCommand(cmd SetupAdminCommand) error {
	if strings.TrimSpace(cmd.Email) == "" {
		return errors.NewValidationError("email is required")
	}
	if cmd.Password == "" {
		return errors.NewValidationError("password is required")
	}
	if len(cmd.Password) < minPasswordLength {
		return errors.NewValidationError("password must be at least 6 characters")
	}
	if strings.TrimSpace(cmd.FullName) == "" {
		return errors.NewValidationError("full name is required")
	}
	return nil
}
