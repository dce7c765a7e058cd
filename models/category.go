package models

type Category struct {
	ID     uint       `gorm:"primaryKey" json:"id"`
	Name   string     `gorm:"type:varchar(255);not null" json:"name"`
	NameFa *string    `gorm:"type:varchar(255)" json:"name_fa"`
	Slug   string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	Items  []MenuItem `gorm:"foreignKey:CategoryID" json:"-"`
}
