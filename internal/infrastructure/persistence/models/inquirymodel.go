package models

type InquiryModel struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"size:100;not null"`
	Email      string `gorm:"size:255;not null;index"`
	Company    string `gorm:"size:200"`
	Phone      string `gorm:"size:50"`
	Message    string `gorm:"type:text;not null"`
	Status     string `gorm:"size:20;not null;default:'new';index"`
	AdminNotes string `gorm:"type:text"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt  int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (InquiryModel) TableName() string {
	return "inquiries"
}
