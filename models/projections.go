package models

// Read projections for the public menu endpoint. These are deliberately
// separate from the storage records: the public shape stays fixed even if
// internal-only columns are added to Category or MenuItem later.

type MenuItemRead struct {
	ID            uint    `json:"id"`
	CategoryID    uint    `json:"category_id"`
	Name          string  `json:"name"`
	NameFa        *string `json:"name_fa"`
	Description   *string `json:"description"`
	DescriptionFa *string `json:"description_fa"`
	Price         float64 `json:"price"`
	Rating        float64 `json:"rating"`
	Calories      int     `json:"calories"`
	Time          string  `json:"time"`
	IngredientsEn string  `json:"ingredients_en"`
	IngredientsFa string  `json:"ingredients_fa"`
	ImageUrl      *string `json:"image_url"`
	IsAvailable   bool    `json:"is_available"`
}

type CategoryRead struct {
	ID     uint           `json:"id"`
	Name   string         `json:"name"`
	NameFa *string        `json:"name_fa"`
	Slug   string         `json:"slug"`
	Items  []MenuItemRead `json:"items"`
}

// NewMenuItemRead copies the public fields of a menu item.
func NewMenuItemRead(item MenuItem) MenuItemRead {
	return MenuItemRead{
		ID:            item.ID,
		CategoryID:    item.CategoryID,
		Name:          item.Name,
		NameFa:        item.NameFa,
		Description:   item.Description,
		DescriptionFa: item.DescriptionFa,
		Price:         item.Price,
		Rating:        item.Rating,
		Calories:      item.Calories,
		Time:          item.Time,
		IngredientsEn: item.IngredientsEn,
		IngredientsFa: item.IngredientsFa,
		ImageUrl:      item.ImageUrl,
		IsAvailable:   item.IsAvailable,
	}
}

// NewCategoryRead projects a category and its loaded items. Items is never
// nil so an empty category serializes as [].
func NewCategoryRead(cat Category) CategoryRead {
	items := make([]MenuItemRead, 0, len(cat.Items))
	for _, item := range cat.Items {
		items = append(items, NewMenuItemRead(item))
	}
	return CategoryRead{
		ID:     cat.ID,
		Name:   cat.Name,
		NameFa: cat.NameFa,
		Slug:   cat.Slug,
		Items:  items,
	}
}
