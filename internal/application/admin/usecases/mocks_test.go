package usecases

import (
	"context"

	"twoloom/internal/domain/admin"
	"twoloom/internal/shared/logger"
)

type mockProfileRepository struct {
	SaveFunc        func(ctx context.Context, p *admin.Profile) error
	FindByIDFunc    func(ctx context.Context, id uint) (*admin.Profile, error)
	FindByEmailFunc func(ctx context.Context, email string) (*admin.Profile, error)
	CountFunc       func(ctx context.Context) (int64, error)
}

func (m *mockProfileRepository) Save(ctx context.Context, p *admin.Profile) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockProfileRepository) FindByID(ctx context.Context, id uint) (*admin.Profile, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockProfileRepository) FindByEmail(ctx context.Context, email string) (*admin.Profile, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockProfileRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

type mockIdentityProvider struct {
	CreateIdentityFunc func(ctx context.Context, email, password string) (uint, error)
	DeleteIdentityFunc func(ctx context.Context, id uint) error
	AuthenticateFunc   func(ctx context.Context, email, password string) (uint, error)
}

func (m *mockIdentityProvider) CreateIdentity(ctx context.Context, email, password string) (uint, error) {
	if m.CreateIdentityFunc != nil {
		return m.CreateIdentityFunc(ctx, email, password)
	}
	return 1, nil
}

func (m *mockIdentityProvider) DeleteIdentity(ctx context.Context, id uint) error {
	if m.DeleteIdentityFunc != nil {
		return m.DeleteIdentityFunc(ctx, id)
	}
	return nil
}

func (m *mockIdentityProvider) Authenticate(ctx context.Context, email, password string) (uint, error) {
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, email, password)
	}
	return 1, nil
}

type mockTokenIssuer struct {
	GenerateAccessTokenFunc  func(adminID uint, email, role string) (string, error)
	GenerateRefreshTokenFunc func(adminID uint) (string, error)
}

func (m *mockTokenIssuer) GenerateAccessToken(adminID uint, email, role string) (string, error) {
	if m.GenerateAccessTokenFunc != nil {
		return m.GenerateAccessTokenFunc(adminID, email, role)
	}
	return "access-token", nil
}

func (m *mockTokenIssuer) GenerateRefreshToken(adminID uint) (string, error) {
	if m.GenerateRefreshTokenFunc != nil {
		return m.GenerateRefreshTokenFunc(adminID)
	}
	return "refresh-token", nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)        {}
func (m *mockLogger) Info(msg string, args ...any)         {}
func (m *mockLogger) Warn(msg string, args ...any)         {}
func (m *mockLogger) Error(msg string, args ...any)        {}
func (m *mockLogger) Debugw(msg string, kv ...interface{}) {}
func (m *mockLogger) Infow(msg string, kv ...interface{})  {}
func (m *mockLogger) Warnw(msg string, kv ...interface{})  {}
func (m *mockLogger) Errorw(msg string, kv ...interface{}) {}
func (m *mockLogger) With(args ...any) logger.Interface    { return m }
func (m *mockLogger) Named(name string) logger.Interface   { return m }
