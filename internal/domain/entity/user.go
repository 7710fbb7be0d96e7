package entity

// User is keyed by its username. Usernames are case-sensitive and never
// renamed or deleted once created.
type User struct {
	Username  string `gorm:"primaryKey"`
	CreatedAt int64  `gorm:"not null;autoCreateTime:false"`
}
