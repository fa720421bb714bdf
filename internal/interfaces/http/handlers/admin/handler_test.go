package admin

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adminUC "twoloom/internal/application/admin/usecases"
	historyUC "twoloom/internal/application/history/usecases"
	inquiryUC "twoloom/internal/application/inquiry/usecases"
	portfolioUC "twoloom/internal/application/portfolio/usecases"
	"twoloom/internal/interfaces/http/handlers/testutil"
	"twoloom/internal/shared/errors"
	"twoloom/internal/shared/i18n"
)

type mockSetupAdminUC struct {
	result *adminUC.SetupAdminResult
	err    error
}

func (m *mockSetupAdminUC) Execute(_ context.Context, _ adminUC.SetupAdminCommand) (*adminUC.SetupAdminResult, error) {
	return m.result, m.err
}

type mockLoginUC struct {
	result *adminUC.LoginResult
	err    error
}

func (m *mockLoginUC) Execute(_ context.Context, _ adminUC.LoginCommand) (*adminUC.LoginResult, error) {
	return m.result, m.err
}

type mockListAllPortfoliosUC struct {
	result *portfolioUC.ListAllPortfoliosResult
	err    error
}

func (m *mockListAllPortfoliosUC) Execute(_ context.Context) (*portfolioUC.ListAllPortfoliosResult, error) {
	return m.result, m.err
}

type mockCreatePortfolioUC struct {
	result *portfolioUC.CreatePortfolioResult
	err    error
	cmd    portfolioUC.CreatePortfolioCommand
}

func (m *mockCreatePortfolioUC) Execute(_ context.Context, cmd portfolioUC.CreatePortfolioCommand) (*portfolioUC.CreatePortfolioResult, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockUpdatePortfolioUC struct {
	result *portfolioUC.UpdatePortfolioResult
	err    error
}

func (m *mockUpdatePortfolioUC) Execute(_ context.Context, _ portfolioUC.UpdatePortfolioCommand) (*portfolioUC.UpdatePortfolioResult, error) {
	return m.result, m.err
}

type mockDeletePortfolioUC struct {
	err error
}

func (m *mockDeletePortfolioUC) Execute(_ context.Context, _ portfolioUC.DeletePortfolioCommand) error {
	return m.err
}

type mockReorderPortfoliosUC struct {
	err error
	cmd portfolioUC.ReorderPortfoliosCommand
}

func (m *mockReorderPortfoliosUC) Execute(_ context.Context, cmd portfolioUC.ReorderPortfoliosCommand) error {
	m.cmd = cmd
	return m.err
}

type mockListInquiriesUC struct {
	result *inquiryUC.ListInquiriesResult
	err    error
	query  inquiryUC.ListInquiriesQuery
}

func (m *mockListInquiriesUC) Execute(_ context.Context, query inquiryUC.ListInquiriesQuery) (*inquiryUC.ListInquiriesResult, error) {
	m.query = query
	return m.result, m.err
}

type mockUpdateInquiryStatusUC struct {
	result *inquiryUC.UpdateInquiryStatusResult
	err    error
	cmd    inquiryUC.UpdateInquiryStatusCommand
	called bool
}

func (m *mockUpdateInquiryStatusUC) Execute(_ context.Context, cmd inquiryUC.UpdateInquiryStatusCommand) (*inquiryUC.UpdateInquiryStatusResult, error) {
	m.called = true
	m.cmd = cmd
	return m.result, m.err
}

type mockCreateMilestoneUC struct {
	result *historyUC.CreateMilestoneResult
	err    error
}

func (m *mockCreateMilestoneUC) Execute(_ context.Context, _ historyUC.CreateMilestoneCommand) (*historyUC.CreateMilestoneResult, error) {
	return m.result, m.err
}

func newTestPortfolioHandler(listAll ListAllPortfoliosExecutor, create CreatePortfolioExecutor, update UpdatePortfolioExecutor, del DeletePortfolioExecutor, reorder ReorderPortfoliosExecutor) *PortfolioHandler {
	if listAll == nil {
		listAll = &mockListAllPortfoliosUC{}
	}
	if create == nil {
		create = &mockCreatePortfolioUC{}
	}
	if update == nil {
		update = &mockUpdatePortfolioUC{}
	}
	if del == nil {
		del = &mockDeletePortfolioUC{}
	}
	if reorder == nil {
		reorder = &mockReorderPortfoliosUC{}
	}
	return NewPortfolioHandler(listAll, create, update, del, reorder, testutil.NewMockLogger())
}

func TestAuthHandler_Setup_Success(t *testing.T) {
	mockUC := &mockSetupAdminUC{result: &adminUC.SetupAdminResult{AdminID: 1}}
	handler := NewAuthHandler(mockUC, &mockLoginUC{}, testutil.NewMockLogger())

	reqBody := SetupRequest{
		Email:    "admin@twoloom.com",
		Password: "secret123",
		FullName: "Studio Admin",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/setup", reqBody)

	handler.Setup(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}

func TestAuthHandler_Setup_AlreadyBootstrapped(t *testing.T) {
	mockUC := &mockSetupAdminUC{err: errors.NewConflictError("admin account already exists")}
	handler := NewAuthHandler(mockUC, &mockLoginUC{}, testutil.NewMockLogger())

	reqBody := SetupRequest{
		Email:    "admin@twoloom.com",
		Password: "secret123",
		FullName: "Studio Admin",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/setup", reqBody)

	handler.Setup(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_Setup_ShortPassword(t *testing.T) {
	handler := NewAuthHandler(&mockSetupAdminUC{}, &mockLoginUC{}, testutil.NewMockLogger())

	reqBody := SetupRequest{
		Email:    "admin@twoloom.com",
		Password: "abc",
		FullName: "Studio Admin",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/setup", reqBody)

	handler.Setup(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	mockUC := &mockLoginUC{result: &adminUC.LoginResult{
		AdminID:      1,
		Email:        "admin@twoloom.com",
		FullName:     "Studio Admin",
		Role:         "admin",
		AccessToken:  "access",
		RefreshToken: "refresh",
	}}
	handler := NewAuthHandler(&mockSetupAdminUC{}, mockUC, testutil.NewMockLogger())

	reqBody := LoginRequest{Email: "admin@twoloom.com", Password: "secret123"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/login", reqBody)

	handler.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Contains(t, string(resp.Data), "access_token")
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	mockUC := &mockLoginUC{err: errors.NewUnauthorizedError("invalid credentials")}
	handler := NewAuthHandler(&mockSetupAdminUC{}, mockUC, testutil.NewMockLogger())

	reqBody := LoginRequest{Email: "admin@twoloom.com", Password: "wrong1"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/login", reqBody)

	handler.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPortfolioHandler_CreatePortfolio_Success(t *testing.T) {
	mockUC := &mockCreatePortfolioUC{
		result: &portfolioUC.CreatePortfolioResult{
			Portfolio: portfolioUC.AdminPortfolioDTO{ID: 5, Status: "draft"},
		},
	}
	handler := newTestPortfolioHandler(nil, mockUC, nil, nil, nil)

	reqBody := PortfolioRequest{
		Title:       map[string]string{"ko": "커머스", "en": "Commerce"},
		Description: map[string]string{"ko": "설명"},
		TechStack:   []string{"Go", "MySQL"},
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/portfolios", reqBody)
	testutil.SetAdminContext(c, 1)

	handler.CreatePortfolio(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, i18n.LocalizedText{"ko": "커머스", "en": "Commerce"}, mockUC.cmd.Title)
	assert.Equal(t, []string{"Go", "MySQL"}, mockUC.cmd.TechStack)
}

func TestPortfolioHandler_CreatePortfolio_MissingTitle(t *testing.T) {
	handler := newTestPortfolioHandler(nil, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/portfolios", map[string]any{
		"description": map[string]string{"ko": "설명"},
	})
	testutil.SetAdminContext(c, 1)

	handler.CreatePortfolio(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPortfolioHandler_CreatePortfolio_InvalidStatus(t *testing.T) {
	handler := newTestPortfolioHandler(nil, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/portfolios", map[string]any{
		"title":       map[string]string{"ko": "커머스"},
		"description": map[string]string{"ko": "설명"},
		"status":      "archived",
	})
	testutil.SetAdminContext(c, 1)

	handler.CreatePortfolio(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPortfolioHandler_ReorderPortfolios_MapsItems(t *testing.T) {
	mockUC := &mockReorderPortfoliosUC{}
	handler := newTestPortfolioHandler(nil, nil, nil, nil, mockUC)

	reqBody := ReorderRequest{Orders: []ReorderItem{
		{ID: 3, OrderIndex: 0},
		{ID: 1, OrderIndex: 1},
	}}
	c, w := testutil.NewTestContext(http.MethodPut, "/api/admin/portfolios/reorder", reqBody)
	testutil.SetAdminContext(c, 1)

	handler.ReorderPortfolios(c)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, mockUC.cmd.Orders, 2)
	assert.Equal(t, uint(3), mockUC.cmd.Orders[0].PortfolioID)
	assert.Equal(t, 1, mockUC.cmd.Orders[1].OrderIndex)
}

func TestPortfolioHandler_DeletePortfolio_NotFound(t *testing.T) {
	mockUC := &mockDeletePortfolioUC{err: errors.NewNotFoundError("portfolio not found")}
	handler := newTestPortfolioHandler(nil, nil, nil, mockUC, nil)

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/admin/portfolios/9", nil)
	testutil.SetURLParam(c, "id", "9")
	testutil.SetAdminContext(c, 1)

	handler.DeletePortfolio(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInquiryHandler_ListInquiries_PassesStatusFilter(t *testing.T) {
	mockUC := &mockListInquiriesUC{result: &inquiryUC.ListInquiriesResult{}}
	handler := NewInquiryHandler(mockUC, &mockUpdateInquiryStatusUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/admin/inquiries", nil)
	testutil.SetQueryParams(c, map[string]string{"status": "new"})
	testutil.SetAdminContext(c, 1)

	handler.ListInquiries(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "new", mockUC.query.Status)
}

func TestInquiryHandler_UpdateInquiryStatus_Success(t *testing.T) {
	mockUC := &mockUpdateInquiryStatusUC{
		result: &inquiryUC.UpdateInquiryStatusResult{Inquiry: inquiryUC.InquiryDTO{ID: 4, Status: "closed"}},
	}
	handler := NewInquiryHandler(&mockListInquiriesUC{}, mockUC, testutil.NewMockLogger())

	notes := "handled over email"
	reqBody := UpdateInquiryStatusRequest{Status: "closed", AdminNotes: &notes}
	c, w := testutil.NewTestContext(http.MethodPatch, "/api/admin/inquiries/4/status", reqBody)
	testutil.SetURLParam(c, "id", "4")
	testutil.SetAdminContext(c, 1)

	handler.UpdateInquiryStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(4), mockUC.cmd.InquiryID)
	require.NotNil(t, mockUC.cmd.AdminNotes)
	assert.Equal(t, notes, *mockUC.cmd.AdminNotes)
}

func TestInquiryHandler_UpdateInquiryStatus_InvalidStatus(t *testing.T) {
	mockUC := &mockUpdateInquiryStatusUC{}
	handler := NewInquiryHandler(&mockListInquiriesUC{}, mockUC, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPatch, "/api/admin/inquiries/4/status", map[string]string{
		"status": "resolved",
	})
	testutil.SetURLParam(c, "id", "4")
	testutil.SetAdminContext(c, 1)

	handler.UpdateInquiryStatus(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, mockUC.called)
}

func TestHistoryHandler_CreateMilestone_Success(t *testing.T) {
	mockUC := &mockCreateMilestoneUC{
		result: &historyUC.CreateMilestoneResult{Milestone: historyUC.AdminMilestoneDTO{ID: 2, Date: "2021-03-02"}},
	}
	handler := NewHistoryHandler(mockUC, nil, nil, testutil.NewMockLogger())

	reqBody := CreateMilestoneRequest{
		Title: map[string]string{"ko": "설립"},
		Date:  "2021-03-02",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/history", reqBody)
	testutil.SetAdminContext(c, 1)

	handler.CreateMilestone(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}
