package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twoloom/internal/domain/admin"
	"twoloom/internal/shared/authorization"
	"twoloom/internal/shared/errors"
)

func adminProfile(t *testing.T, id uint) *admin.Profile {
	t.Helper()
	now := time.Now()
	p, err := admin.ReconstructProfile(id, "admin@twoloom.com", "Site Admin", authorization.RoleAdmin, now, now)
	require.NoError(t, err)
	return p
}

func TestLoginUseCase_Execute_Success(t *testing.T) {
	profiles := &mockProfileRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*admin.Profile, error) {
			return adminProfile(t, id), nil
		},
	}
	identities := &mockIdentityProvider{
		AuthenticateFunc: func(ctx context.Context, email, password string) (uint, error) {
			return 11, nil
		},
	}

	useCase := NewLoginUseCase(profiles, identities, &mockTokenIssuer{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), LoginCommand{
		Email:    "admin@twoloom.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(11), result.AdminID)
	assert.Equal(t, "admin", result.Role)
	assert.Equal(t, "access-token", result.AccessToken)
	assert.Equal(t, "refresh-token", result.RefreshToken)
}

func TestLoginUseCase_Execute_BadCredentials(t *testing.T) {
	identities := &mockIdentityProvider{
		AuthenticateFunc: func(ctx context.Context, email, password string) (uint, error) {
			return 0, fmt.Errorf("password mismatch")
		},
	}

	useCase := NewLoginUseCase(&mockProfileRepository{}, identities, &mockTokenIssuer{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), LoginCommand{
		Email:    "admin@twoloom.com",
		Password: "wrong",
	})

	assert.Nil(t, result)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 401, appErr.Code)
}

func TestLoginUseCase_Execute_MissingProfile(t *testing.T) {
	profiles := &mockProfileRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*admin.Profile, error) {
			return nil, errors.NewNotFoundError("profile not found")
		},
	}

	useCase := NewLoginUseCase(profiles, &mockIdentityProvider{}, &mockTokenIssuer{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), LoginCommand{
		Email:    "admin@twoloom.com",
		Password: "secret123",
	})

	assert.Nil(t, result)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 401, appErr.Code)
}
