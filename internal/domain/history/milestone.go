package history

import (
	"fmt"
	"time"

	"twoloom/internal/shared/i18n"
)

// Milestone is a dated entry on the company timeline.
type Milestone struct {
	id          uint
	title       i18n.LocalizedText
	description i18n.LocalizedText
	date        time.Time
	isActive    bool
	orderIndex  int
	createdAt   time.Time
	updatedAt   time.Time
}

func NewMilestone(title, description i18n.LocalizedText, date time.Time, orderIndex int) (*Milestone, error) {
	if !title.HasDefault() {
		return nil, fmt.Errorf("title is required for the default locale")
	}
	if date.IsZero() {
		return nil, fmt.Errorf("date is required")
	}

	now := time.Now()

	return &Milestone{
		title:       title,
		description: description,
		date:        date,
		isActive:    true,
		orderIndex:  orderIndex,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructMilestone(
	id uint,
	title, description i18n.LocalizedText,
	date time.Time,
	isActive bool,
	orderIndex int,
	createdAt, updatedAt time.Time,
) (*Milestone, error) {
	if id == 0 {
		return nil, fmt.Errorf("milestone ID cannot be zero")
	}
	if date.IsZero() {
		return nil, fmt.Errorf("date is required")
	}

	return &Milestone{
		id:          id,
		title:       title,
		description: description,
		date:        date,
		isActive:    isActive,
		orderIndex:  orderIndex,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (m *Milestone) ID() uint                        { return m.id }
func (m *Milestone) Title() i18n.LocalizedText       { return m.title }
func (m *Milestone) Description() i18n.LocalizedText { return m.description }
func (m *Milestone) Date() time.Time                 { return m.date }
func (m *Milestone) IsActive() bool                  { return m.isActive }
func (m *Milestone) OrderIndex() int                 { return m.orderIndex }
func (m *Milestone) CreatedAt() time.Time            { return m.createdAt }
func (m *Milestone) UpdatedAt() time.Time            { return m.updatedAt }

// Year is derived from the milestone date for timeline grouping.
func (m *Milestone) Year() int {
	return m.date.Year()
}

func (m *Milestone) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("milestone ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("milestone ID cannot be zero")
	}
	m.id = id
	return nil
}

func (m *Milestone) Update(title, description i18n.LocalizedText, date time.Time) error {
	if !title.HasDefault() {
		return fmt.Errorf("title is required for the default locale")
	}
	if date.IsZero() {
		return fmt.Errorf("date is required")
	}

	m.title = title
	m.description = description
	m.date = date
	m.updatedAt = time.Now()
	return nil
}

func (m *Milestone) SetOrderIndex(orderIndex int) {
	m.orderIndex = orderIndex
	m.updatedAt = time.Now()
}

func (m *Milestone) Activate() {
	m.isActive = true
	m.updatedAt = time.Now()
}

func (m *Milestone) Deactivate() {
	m.isActive = false
	m.updatedAt = time.Now()
}
