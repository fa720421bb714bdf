package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"twoloom/internal/domain/admin"
	"twoloom/internal/domain/history"
	"twoloom/internal/domain/inquiry"
	"twoloom/internal/domain/portfolio"
	"twoloom/internal/infrastructure/persistence/mappers"
	"twoloom/internal/infrastructure/persistence/models"
	"twoloom/internal/shared/authorization"
	"twoloom/internal/shared/errors"
	"twoloom/internal/shared/i18n"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.PortfolioModel{},
		&models.PortfolioCategoryModel{},
		&models.HistoryMilestoneModel{},
		&models.InquiryModel{},
		&models.AdminProfileModel{},
	)
	require.NoError(t, err)

	return db
}

func createTestPortfolio(t *testing.T, categoryID *uint) *portfolio.Portfolio {
	p, err := portfolio.NewPortfolio(
		i18n.LocalizedText{"ko": "커머스 플랫폼", "en": "Commerce platform"},
		i18n.LocalizedText{"ko": "## 설명"},
		i18n.LocalizedText{"ko": "짧은 설명"},
		categoryID,
	)
	require.NoError(t, err)
	return p
}

func createTestCategory(t *testing.T, slug string, orderIndex int) *portfolio.Category {
	c, err := portfolio.NewCategory(i18n.LocalizedText{"ko": "웹"}, slug, orderIndex)
	require.NoError(t, err)
	return c
}

func TestPortfolioRepository_SaveAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPortfolioRepository(db, mappers.NewPortfolioMapper())
	ctx := context.Background()

	p := createTestPortfolio(t, nil)
	p.UpdateTechStack([]string{"Go", "MySQL"})

	err := repo.Save(ctx, p)
	require.NoError(t, err)
	assert.NotZero(t, p.ID())

	found, err := repo.FindByID(ctx, p.ID())
	require.NoError(t, err)
	assert.Equal(t, "Commerce platform", found.Title().Resolve("en"))
	assert.Equal(t, "커머스 플랫폼", found.Title().Resolve("ko"))
	assert.Equal(t, []string{"Go", "MySQL"}, found.TechStack())
	assert.Equal(t, portfolio.StatusDraft, found.Status())
}

func TestPortfolioRepository_FindByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPortfolioRepository(db, mappers.NewPortfolioMapper())

	_, err := repo.FindByID(context.Background(), 999)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestPortfolioRepository_ListPublished(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPortfolioRepository(db, mappers.NewPortfolioMapper())
	categoryRepo := NewCategoryRepository(db, mappers.NewPortfolioMapper())
	ctx := context.Background()

	webCategory := createTestCategory(t, "web", 0)
	require.NoError(t, categoryRepo.Save(ctx, webCategory))
	webID := webCategory.ID()

	first := createTestPortfolio(t, &webID)
	require.NoError(t, first.ChangeStatus(portfolio.StatusPublished))
	first.SetOrderIndex(1)
	require.NoError(t, repo.Save(ctx, first))

	second := createTestPortfolio(t, &webID)
	require.NoError(t, second.ChangeStatus(portfolio.StatusPublished))
	second.SetOrderIndex(0)
	require.NoError(t, repo.Save(ctx, second))

	draft := createTestPortfolio(t, &webID)
	require.NoError(t, repo.Save(ctx, draft))

	uncategorized := createTestPortfolio(t, nil)
	require.NoError(t, uncategorized.ChangeStatus(portfolio.StatusPublished))
	uncategorized.SetOrderIndex(2)
	require.NoError(t, repo.Save(ctx, uncategorized))

	t.Run("unfiltered returns published only, order_index asc", func(t *testing.T) {
		listed, err := repo.ListPublished(ctx, nil)
		require.NoError(t, err)
		require.Len(t, listed, 3)
		assert.Equal(t, second.ID(), listed[0].ID())
		assert.Equal(t, first.ID(), listed[1].ID())
		assert.Equal(t, uncategorized.ID(), listed[2].ID())
	})

	t.Run("category filter narrows the listing", func(t *testing.T) {
		listed, err := repo.ListPublished(ctx, &webID)
		require.NoError(t, err)
		require.Len(t, listed, 2)
		for _, p := range listed {
			require.NotNil(t, p.CategoryID())
			assert.Equal(t, webID, *p.CategoryID())
		}
	})
}

func TestPortfolioRepository_IncrementViewCount(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPortfolioRepository(db, mappers.NewPortfolioMapper())
	ctx := context.Background()

	p := createTestPortfolio(t, nil)
	require.NoError(t, repo.Save(ctx, p))

	require.NoError(t, repo.IncrementViewCount(ctx, p.ID()))
	require.NoError(t, repo.IncrementViewCount(ctx, p.ID()))

	found, err := repo.FindByID(ctx, p.ID())
	require.NoError(t, err)
	assert.Equal(t, 2, found.ViewCount())
}

func TestPortfolioRepository_UpdateOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPortfolioRepository(db, mappers.NewPortfolioMapper())
	ctx := context.Background()

	first := createTestPortfolio(t, nil)
	require.NoError(t, repo.Save(ctx, first))
	second := createTestPortfolio(t, nil)
	require.NoError(t, repo.Save(ctx, second))

	err := repo.UpdateOrder(ctx, []portfolio.OrderUpdate{
		{PortfolioID: first.ID(), OrderIndex: 5},
		{PortfolioID: second.ID(), OrderIndex: 3},
	})
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, first.ID())
	require.NoError(t, err)
	assert.Equal(t, 5, found.OrderIndex())
}

func TestCategoryRepository_FindBySlug(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db, mappers.NewPortfolioMapper())
	ctx := context.Background()

	c := createTestCategory(t, "web", 0)
	require.NoError(t, repo.Save(ctx, c))

	t.Run("existing slug", func(t *testing.T) {
		found, err := repo.FindBySlug(ctx, "web")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, c.ID(), found.ID())
	})

	t.Run("unknown slug returns nil without error", func(t *testing.T) {
		found, err := repo.FindBySlug(ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestCategoryRepository_DuplicateSlug(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db, mappers.NewPortfolioMapper())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, createTestCategory(t, "web", 0)))

	err := repo.Save(ctx, createTestCategory(t, "web", 1))
	assert.Error(t, err)
}

func TestCategoryRepository_DeleteDetachesPortfolios(t *testing.T) {
	db := setupTestDB(t)
	categoryRepo := NewCategoryRepository(db, mappers.NewPortfolioMapper())
	portfolioRepo := NewPortfolioRepository(db, mappers.NewPortfolioMapper())
	ctx := context.Background()

	c := createTestCategory(t, "web", 0)
	require.NoError(t, categoryRepo.Save(ctx, c))
	categoryID := c.ID()

	p := createTestPortfolio(t, &categoryID)
	require.NoError(t, portfolioRepo.Save(ctx, p))

	require.NoError(t, categoryRepo.Delete(ctx, categoryID))

	found, err := portfolioRepo.FindByID(ctx, p.ID())
	require.NoError(t, err)
	assert.Nil(t, found.CategoryID())
}

func TestHistoryRepository_ListActive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewHistoryRepository(db, mappers.NewHistoryMapper())
	ctx := context.Background()

	later, err := history.NewMilestone(
		i18n.LocalizedText{"ko": "팀 확장"}, nil,
		time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), 0,
	)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, later))

	earlier, err := history.NewMilestone(
		i18n.LocalizedText{"ko": "설립"}, nil,
		time.Date(2021, 3, 2, 0, 0, 0, 0, time.UTC), 0,
	)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, earlier))

	hidden, err := history.NewMilestone(
		i18n.LocalizedText{"ko": "비공개"}, nil,
		time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC), 0,
	)
	require.NoError(t, err)
	hidden.Deactivate()
	require.NoError(t, repo.Save(ctx, hidden))

	listed, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, 2021, listed[0].Year())
	assert.Equal(t, 2024, listed[1].Year())
}

func TestInquiryRepository_CountRecentByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInquiryRepository(db, mappers.NewInquiryMapper())
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		inq, err := inquiry.NewInquiry("Jane Doe", "jane@example.com", "", "", "We need a storefront rebuilt soon.")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, inq))
	}

	other, err := inquiry.NewInquiry("John Doe", "john@example.com", "", "", "Different requester, same window.")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, other))

	count, err := repo.CountRecentByEmail(ctx, "jane@example.com", time.Now().Add(-5*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.CountRecentByEmail(ctx, "jane@example.com", time.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestInquiryRepository_ListAll_StatusFilter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInquiryRepository(db, mappers.NewInquiryMapper())
	ctx := context.Background()

	open, err := inquiry.NewInquiry("Jane Doe", "jane@example.com", "", "", "First inquiry message body here.")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, open))

	closed, err := inquiry.NewInquiry("John Doe", "john@example.com", "", "", "Second inquiry message body here.")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, closed))
	require.NoError(t, closed.ChangeStatus(inquiry.StatusClosed))
	require.NoError(t, repo.Update(ctx, closed))

	status := inquiry.StatusNew
	listed, err := repo.ListAll(ctx, &status)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, open.ID(), listed[0].ID())

	listed, err = repo.ListAll(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestAdminProfileRepository_CountAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAdminProfileRepository(db, mappers.NewAdminProfileMapper())
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	profile, err := admin.NewProfile(7, "admin@twoloom.com", "Studio Admin", authorization.RoleAdmin)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, profile))

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	found, err := repo.FindByEmail(ctx, "admin@twoloom.com")
	require.NoError(t, err)
	assert.Equal(t, uint(7), found.ID())
	assert.Equal(t, authorization.RoleAdmin, found.Role())
}
