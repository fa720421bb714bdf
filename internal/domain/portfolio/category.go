package portfolio

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"twoloom/internal/shared/i18n"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

type Category struct {
	id         uint
	name       i18n.LocalizedText
	slug       string
	isActive   bool
	orderIndex int
	createdAt  time.Time
	updatedAt  time.Time
}

func NewCategory(name i18n.LocalizedText, slug string, orderIndex int) (*Category, error) {
	if !name.HasDefault() {
		return nil, fmt.Errorf("name is required for the default locale")
	}

	slug = strings.TrimSpace(strings.ToLower(slug))
	if slug == "" {
		return nil, fmt.Errorf("slug is required")
	}
	if !slugPattern.MatchString(slug) {
		return nil, fmt.Errorf("invalid slug: %s", slug)
	}

	now := time.Now()

	return &Category{
		name:       name,
		slug:       slug,
		isActive:   true,
		orderIndex: orderIndex,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructCategory(
	id uint,
	name i18n.LocalizedText,
	slug string,
	isActive bool,
	orderIndex int,
	createdAt, updatedAt time.Time,
) (*Category, error) {
	if id == 0 {
		return nil, fmt.Errorf("category ID cannot be zero")
	}
	if slug == "" {
		return nil, fmt.Errorf("slug is required")
	}

	return &Category{
		id:         id,
		name:       name,
		slug:       slug,
		isActive:   isActive,
		orderIndex: orderIndex,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (c *Category) ID() uint                 { return c.id }
func (c *Category) Name() i18n.LocalizedText { return c.name }
func (c *Category) Slug() string             { return c.slug }
func (c *Category) IsActive() bool           { return c.isActive }
func (c *Category) OrderIndex() int          { return c.orderIndex }
func (c *Category) CreatedAt() time.Time     { return c.createdAt }
func (c *Category) UpdatedAt() time.Time     { return c.updatedAt }

func (c *Category) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("category ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("category ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Category) Rename(name i18n.LocalizedText) error {
	if !name.HasDefault() {
		return fmt.Errorf("name is required for the default locale")
	}
	c.name = name
	c.updatedAt = time.Now()
	return nil
}

func (c *Category) SetOrderIndex(orderIndex int) {
	c.orderIndex = orderIndex
	c.updatedAt = time.Now()
}

func (c *Category) Activate() {
	c.isActive = true
	c.updatedAt = time.Now()
}

func (c *Category) Deactivate() {
	c.isActive = false
	c.updatedAt = time.Now()
}
