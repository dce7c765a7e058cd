package models

type MenuItem struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	CategoryID    uint    `gorm:"not null;index" json:"category_id"`
	Name          string  `gorm:"type:varchar(255);not null" json:"name"`
	NameFa        *string `gorm:"type:varchar(255)" json:"name_fa"`
	Description   *string `gorm:"type:text" json:"description"`
	DescriptionFa *string `gorm:"type:text" json:"description_fa"`
	Price         float64 `gorm:"type:decimal(12,2);not null" json:"price"`
	Rating        float64 `gorm:"default:0" json:"rating"`
	Calories      int     `gorm:"default:0" json:"calories"`
	Time          string  `gorm:"type:varchar(50);default:''" json:"time"`
	IngredientsEn string  `gorm:"type:text" json:"ingredients_en"`
	IngredientsFa string  `gorm:"type:text" json:"ingredients_fa"`
	ImageUrl      *string `gorm:"type:varchar(512)" json:"image_url"`
	IsAvailable   bool    `gorm:"default:true" json:"is_available"`
}
