package models

type User struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Username       string `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	HashedPassword string `gorm:"type:varchar(255);not null" json:"-"`
}
