package models

import "gorm.io/datatypes"

type PortfolioModel struct {
	ID               uint           `gorm:"primaryKey"`
	Title            datatypes.JSON `gorm:"not null"`
	Description      datatypes.JSON `gorm:"not null"`
	ShortDescription datatypes.JSON
	ThumbnailURL     string `gorm:"size:500"`
	Images           datatypes.JSON
	TechStack        datatypes.JSON
	DemoURL          string `gorm:"size:500"`
	GithubURL        string `gorm:"size:500"`
	CategoryID       *uint  `gorm:"index"`
	Featured         bool   `gorm:"not null;default:false"`
	OrderIndex       int    `gorm:"not null;default:0;index"`
	Status           string `gorm:"size:20;not null;default:'draft';index"`
	ViewCount        int    `gorm:"not null;default:0"`
	CreatedAt        int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt        int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (PortfolioModel) TableName() string {
	return "portfolios"
}

type PortfolioCategoryModel struct {
	ID         uint           `gorm:"primaryKey"`
	Name       datatypes.JSON `gorm:"not null"`
	Slug       string         `gorm:"uniqueIndex;size:100;not null"`
	IsActive   bool           `gorm:"not null;default:true;index"`
	OrderIndex int            `gorm:"not null;default:0"`
	CreatedAt  int64          `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt  int64          `gorm:"autoUpdateTime:milli;not null"`
}

func (PortfolioCategoryModel) TableName() string {
	return "portfolio_categories"
}
