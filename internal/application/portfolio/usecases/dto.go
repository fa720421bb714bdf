package usecases

import (
	"twoloom/internal/shared/i18n"
)

// CategoryDTO is the public listing shape with localized fields resolved.
type CategoryDTO struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	OrderIndex int    `json:"order_index"`
}

// PortfolioSummaryDTO is one row of the public portfolio listing.
type PortfolioSummaryDTO struct {
	ID               uint     `json:"id"`
	Title            string   `json:"title"`
	ShortDescription string   `json:"short_description"`
	ThumbnailURL     string   `json:"thumbnail_url"`
	TechStack        []string `json:"tech_stack"`
	CategoryID       *uint    `json:"category_id"`
	CategoryName     string   `json:"category_name"`
	Featured         bool     `json:"featured"`
	OrderIndex       int      `json:"order_index"`
}

// PortfolioDetailDTO is the public detail view. DescriptionHTML is the
// markdown description rendered and sanitized server-side.
type PortfolioDetailDTO struct {
	ID              uint     `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	DescriptionHTML string   `json:"description_html"`
	ThumbnailURL    string   `json:"thumbnail_url"`
	Images          []string `json:"images"`
	TechStack       []string `json:"tech_stack"`
	DemoURL         string   `json:"demo_url"`
	GithubURL       string   `json:"github_url"`
	CategoryID      *uint    `json:"category_id"`
	CategoryName    string   `json:"category_name"`
	ViewCount       int      `json:"view_count"`
}

// AdminPortfolioDTO exposes the raw localized maps so the dashboard can edit
// every translation.
type AdminPortfolioDTO struct {
	ID               uint               `json:"id"`
	Title            i18n.LocalizedText `json:"title"`
	Description      i18n.LocalizedText `json:"description"`
	ShortDescription i18n.LocalizedText `json:"short_description"`
	ThumbnailURL     string             `json:"thumbnail_url"`
	Images           []string           `json:"images"`
	TechStack        []string           `json:"tech_stack"`
	DemoURL          string             `json:"demo_url"`
	GithubURL        string             `json:"github_url"`
	CategoryID       *uint              `json:"category_id"`
	Featured         bool               `json:"featured"`
	OrderIndex       int                `json:"order_index"`
	Status           string             `json:"status"`
	ViewCount        int                `json:"view_count"`
	CreatedAt        int64              `json:"created_at"`
	UpdatedAt        int64              `json:"updated_at"`
}

// AdminCategoryDTO is the admin view of a category.
type AdminCategoryDTO struct {
	ID         uint               `json:"id"`
	Name       i18n.LocalizedText `json:"name"`
	Slug       string             `json:"slug"`
	IsActive   bool               `json:"is_active"`
	OrderIndex int                `json:"order_index"`
}
