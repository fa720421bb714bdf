package usecases

import (
	"context"

	"twoloom/internal/domain/admin"
	"twoloom/internal/shared/errors"
	"twoloom/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	AdminID      uint
	Email        string
	FullName     string
	Role         string
	AccessToken  string
	RefreshToken string
}

type LoginUseCase struct {
	profileRepo admin.ProfileRepository
	identities  admin.IdentityProvider
	tokens      TokenIssuer
	logger      logger.Interface
}

func NewLoginUseCase(
	profileRepo admin.ProfileRepository,
	identities admin.IdentityProvider,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		profileRepo: profileRepo,
		identities:  identities,
		tokens:      tokens,
		logger:      logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	identityID, err := uc.identities.Authenticate(ctx, cmd.Email, cmd.Password)
	if err != nil {
		uc.logger.Warnw("admin login failed", "email", cmd.Email)
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	profile, err := uc.profileRepo.FindByID(ctx, identityID)
	if err != nil {
		uc.logger.Errorw("authenticated identity has no profile", "identity_id", identityID, "error", err)
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	accessToken, err := uc.tokens.GenerateAccessToken(profile.ID(), profile.Email(), profile.Role().String())
	if err != nil {
		uc.logger.Errorw("failed to generate access token", "admin_id", profile.ID(), "error", err)
		return nil, errors.NewInternalError("failed to log in")
	}

	refreshToken, err := uc.tokens.GenerateRefreshToken(profile.ID())
	if err != nil {
		uc.logger.Errorw("failed to generate refresh token", "admin_id", profile.ID(), "error", err)
		return nil, errors.NewInternalError("failed to log in")
	}

	uc.logger.Infow("admin logged in", "admin_id", profile.ID())

	return &LoginResult{
		AdminID:      profile.ID(),
		Email:        profile.Email(),
		FullName:     profile.FullName(),
		Role:         profile.Role().String(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
