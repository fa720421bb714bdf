package models

type AdminUserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (AdminUserModel) TableName() string {
	return "admin_users"
}

// AdminProfileModel shares its primary key with admin_users; the ID is
// assigned by the application, never auto-incremented here.
type AdminProfileModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement:false"`
	Email     string `gorm:"uniqueIndex;size:255;not null"`
	FullName  string `gorm:"size:200"`
	Role      string `gorm:"size:20;not null;default:'admin'"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (AdminProfileModel) TableName() string {
	return "admin_profiles"
}
