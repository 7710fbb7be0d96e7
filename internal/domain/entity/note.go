package entity

type Note struct {
	ID        int64  `gorm:"primaryKey;autoIncrement:false"` // Snowflake, assigned by uid
	Username  string `gorm:"not null;index"`                 // References: users(username)
	Content   string `gorm:"not null"`
	CreatedAt int64  `gorm:"not null;autoCreateTime:false"`
	UpdatedAt *int64 `gorm:"autoUpdateTime:false"` // Nil until the first edit

	// Relations
	Owner User `gorm:"foreignKey:Username;references:Username"`
}
