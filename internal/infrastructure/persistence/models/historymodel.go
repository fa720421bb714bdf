package models

import "gorm.io/datatypes"

type HistoryMilestoneModel struct {
	ID          uint           `gorm:"primaryKey"`
	Title       datatypes.JSON `gorm:"not null"`
	Description datatypes.JSON
	Date        int64 `gorm:"not null;index"`
	IsActive    bool  `gorm:"not null;default:true;index"`
	OrderIndex  int   `gorm:"not null;default:0"`
	CreatedAt   int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (HistoryMilestoneModel) TableName() string {
	return "history_milestones"
}
