package usecases

import "twoloom/internal/shared/i18n"

// MilestoneDTO is one public timeline entry. Year is derived from Date.
type MilestoneDTO struct {
	ID          uint   `json:"id"`
	Year        int    `json:"year"`
	Date        string `json:"date"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// AdminMilestoneDTO exposes raw localized maps for editing.
type AdminMilestoneDTO struct {
	ID          uint               `json:"id"`
	Date        string             `json:"date"`
	Title       i18n.LocalizedText `json:"title"`
	Description i18n.LocalizedText `json:"description"`
	IsActive    bool               `json:"is_active"`
	OrderIndex  int                `json:"order_index"`
}

// DateLayout is the wire format for milestone dates.
const DateLayout = "2006-01-02"
