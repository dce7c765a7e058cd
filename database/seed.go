package database

import (
	"os"

	"github.com/paeez96/menu-api/models"
	"github.com/paeez96/menu-api/utils"
	"gorm.io/gorm"
)

// EnsureAdminUser creates the single administrative account on first boot.
// Credentials come from ADMIN_USERNAME / ADMIN_PASSWORD; the defaults are
// only meant for local development.
func EnsureAdminUser(db *gorm.DB) error {
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}

	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
		utils.InfoLogger.Println("ADMIN_PASSWORD not set, using the development default")
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{Username: username, HashedPassword: hashed}
	if err := db.Create(&user).Error; err != nil {
		return err
	}

	utils.InfoLogger.Printf("created admin user %q", username)
	return nil
}

// SeedDemoData loads the demo menu (3 categories, 5 items) when the database
// is empty. Gated behind SEED_DEMO_DATA=true; it never touches a database
// that already has categories.
func SeedDemoData(db *gorm.DB) error {
	if os.Getenv("SEED_DEMO_DATA") != "true" {
		return nil
	}

	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		utils.InfoLogger.Println("database already has categories, skipping demo seed")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		steaks := models.Category{Name: "Signature Steaks", NameFa: strPtr("استیک‌های ویژه"), Slug: "signature-steaks"}
		local := models.Category{Name: "Local Favorites", NameFa: strPtr("غذاهای محلی"), Slug: "local-favorites"}
		seafood := models.Category{Name: "Seafood", NameFa: strPtr("دریایی"), Slug: "seafood"}

		for _, category := range []*models.Category{&steaks, &local, &seafood} {
			if err := tx.Create(category).Error; err != nil {
				return err
			}
		}

		items := []models.MenuItem{
			{
				CategoryID:    steaks.ID,
				Name:          "Ribeye Steak",
				NameFa:        strPtr("استیک ریب‌آی"),
				Description:   strPtr("Wet aged beef with roasted vegetables"),
				DescriptionFa: strPtr("گوساله بیات شده با سبزیجات کبابی و سس ترافل مخصوص"),
				Price:         1250000,
				Rating:        4.9,
				Calories:      850,
				Time:          "25-30",
				IngredientsEn: "Ribeye Cut,Asparagus",
				IngredientsFa: "راسته گوساله,مارچوبه",
				IsAvailable:   true,
			},
			{
				CategoryID:    steaks.ID,
				Name:          "T-Bone Special",
				NameFa:        strPtr("تی‌بون مخصوص"),
				Description:   strPtr("Charcoal grilled with mushroom sauce"),
				DescriptionFa: strPtr("گریل ذغالی با سس قارچ"),
				Price:         1400000,
				Rating:        4.8,
				Calories:      920,
				Time:          "30-35",
				IngredientsEn: "T-Bone,Wild Mushrooms",
				IngredientsFa: "تی‌بون,قارچ جنگلی",
				IsAvailable:   true,
			},
			{
				CategoryID:    local.ID,
				Name:          "Mirza Ghasemi",
				NameFa:        strPtr("میرزا قاسمی"),
				Description:   strPtr("Smoked eggplant, garlic, eggs"),
				DescriptionFa: strPtr("بادمجان دودی، سیر، تخم مرغ"),
				Price:         600000,
				Rating:        5.0,
				Calories:      420,
				Time:          "15-20",
				IngredientsEn: "Eggplant,Garlic",
				IngredientsFa: "بادمجان,سیر",
				IsAvailable:   true,
			},
			{
				CategoryID:    local.ID,
				Name:          "Kebab Torsh",
				NameFa:        strPtr("کباب ترش"),
				Description:   strPtr("Sour marinated beef kebab, northern style"),
				DescriptionFa: strPtr("کباب ترش گیلانی با گردو و رب انار"),
				Price:         950000,
				Rating:        4.7,
				Calories:      680,
				Time:          "20-25",
				IngredientsEn: "Beef,Walnut,Pomegranate",
				IngredientsFa: "گوساله,گردو,رب انار",
				IsAvailable:   true,
			},
			{
				CategoryID:    seafood.ID,
				Name:          "Grilled Salmon",
				NameFa:        strPtr("سالمون کبابی"),
				Description:   strPtr("Norwegian salmon with saffron butter"),
				DescriptionFa: strPtr("سالمون نروژی با کره زعفرانی"),
				Price:         1800000,
				Rating:        4.6,
				Calories:      540,
				Time:          "20-25",
				IngredientsEn: "Salmon,Saffron,Butter",
				IngredientsFa: "سالمون,زعفران,کره",
				IsAvailable:   true,
			},
		}
		for i := range items {
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}

		utils.InfoLogger.Printf("seeded demo menu: %d categories, %d items", 3, len(items))
		return nil
	})
}

func strPtr(s string) *string { return &s }
