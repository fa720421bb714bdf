package migration

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"twoloom/internal/domain/history"
	"twoloom/internal/domain/portfolio"
	"twoloom/internal/shared/i18n"
	"twoloom/internal/shared/logger"
)

type seedCategory struct {
	Slug       string            `yaml:"slug"`
	Name       map[string]string `yaml:"name"`
	OrderIndex int               `yaml:"order_index"`
}

type seedPortfolio struct {
	Title            map[string]string `yaml:"title"`
	Description      map[string]string `yaml:"description"`
	ShortDescription map[string]string `yaml:"short_description"`
	ThumbnailURL     string            `yaml:"thumbnail_url"`
	TechStack        []string          `yaml:"tech_stack"`
	DemoURL          string            `yaml:"demo_url"`
	GithubURL        string            `yaml:"github_url"`
	CategorySlug     string            `yaml:"category_slug"`
	Featured         bool              `yaml:"featured"`
	OrderIndex       int               `yaml:"order_index"`
	Published        bool              `yaml:"published"`
}

type seedMilestone struct {
	Title       map[string]string `yaml:"title"`
	Description map[string]string `yaml:"description"`
	Date        string            `yaml:"date"`
	OrderIndex  int               `yaml:"order_index"`
}

type seedData struct {
	Categories []seedCategory  `yaml:"categories"`
	Portfolios []seedPortfolio `yaml:"portfolios"`
	History    []seedMilestone `yaml:"history"`
}

// Seeder loads the YAML fixture into an empty database. Sections that
// already contain rows are skipped so reruns are harmless.
type Seeder struct {
	categoryRepo  portfolio.CategoryRepository
	portfolioRepo portfolio.Repository
	historyRepo   history.Repository
	logger        logger.Interface
}

func NewSeeder(
	categoryRepo portfolio.CategoryRepository,
	portfolioRepo portfolio.Repository,
	historyRepo history.Repository,
) *Seeder {
	return &Seeder{
		categoryRepo:  categoryRepo,
		portfolioRepo: portfolioRepo,
		historyRepo:   historyRepo,
		logger:        logger.NewLogger().With("component", "migration.seed"),
	}
}

func (s *Seeder) Run(ctx context.Context, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	var data seedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}

	slugToID, err := s.seedCategories(ctx, data.Categories)
	if err != nil {
		return err
	}
	if err := s.seedPortfolios(ctx, data.Portfolios, slugToID); err != nil {
		return err
	}
	if err := s.seedHistory(ctx, data.History); err != nil {
		return err
	}

	s.logger.Infow("seed completed",
		"categories", len(data.Categories),
		"portfolios", len(data.Portfolios),
		"history", len(data.History))
	return nil
}

func (s *Seeder) seedCategories(ctx context.Context, entries []seedCategory) (map[string]uint, error) {
	slugToID := make(map[string]uint)

	existing, err := s.categoryRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range existing {
		slugToID[c.Slug()] = c.ID()
	}
	if len(existing) > 0 {
		s.logger.Infow("categories already present, skipping", "count", len(existing))
		return slugToID, nil
	}

	for _, e := range entries {
		c, err := portfolio.NewCategory(i18n.LocalizedText(e.Name), e.Slug, e.OrderIndex)
		if err != nil {
			return nil, fmt.Errorf("invalid seed category %q: %w", e.Slug, err)
		}
		if err := s.categoryRepo.Save(ctx, c); err != nil {
			return nil, err
		}
		slugToID[c.Slug()] = c.ID()
	}
	return slugToID, nil
}

func (s *Seeder) seedPortfolios(ctx context.Context, entries []seedPortfolio, slugToID map[string]uint) error {
	existing, err := s.portfolioRepo.ListAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		s.logger.Infow("portfolios already present, skipping", "count", len(existing))
		return nil
	}

	for _, e := range entries {
		var categoryID *uint
		if id, ok := slugToID[e.CategorySlug]; ok {
			categoryID = &id
		}

		p, err := portfolio.NewPortfolio(
			i18n.LocalizedText(e.Title),
			i18n.LocalizedText(e.Description),
			i18n.LocalizedText(e.ShortDescription),
			categoryID,
		)
		if err != nil {
			return fmt.Errorf("invalid seed portfolio: %w", err)
		}

		p.UpdateLinks(e.ThumbnailURL, e.DemoURL, e.GithubURL, nil)
		p.UpdateTechStack(e.TechStack)
		p.SetFeatured(e.Featured)
		p.SetOrderIndex(e.OrderIndex)
		if e.Published {
			if err := p.ChangeStatus(portfolio.StatusPublished); err != nil {
				return err
			}
		}

		if err := s.portfolioRepo.Save(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedHistory(ctx context.Context, entries []seedMilestone) error {
	existing, err := s.historyRepo.ListAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		s.logger.Infow("history already present, skipping", "count", len(existing))
		return nil
	}

	for _, e := range entries {
		date, err := parseSeedDate(e.Date)
		if err != nil {
			return fmt.Errorf("invalid seed milestone date %q: %w", e.Date, err)
		}

		m, err := history.NewMilestone(
			i18n.LocalizedText(e.Title),
			i18n.LocalizedText(e.Description),
			date,
			e.OrderIndex,
		)
		if err != nil {
			return fmt.Errorf("invalid seed milestone: %w", err)
		}

		if err := s.historyRepo.Save(ctx, m); err != nil {
			return err
		}
	}
	return nil
}
