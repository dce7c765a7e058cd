package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the database handle used by every controller. SQLite is the
// default (matches the original single-file deployment); set DB_DRIVER=mysql
// plus the DB_* variables for a server database. TranslateError is on so
// unique and foreign-key violations surface as gorm sentinel errors.
func InitDB() (*gorm.DB, error) {
	cfg := &gorm.Config{TranslateError: true}

	if os.Getenv("DB_DRIVER") == "mysql" {
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			getEnv("DB_HOST", "127.0.0.1"),
			getEnv("DB_PORT", "3306"),
			os.Getenv("DB_NAME"),
		)
		return gorm.Open(mysql.Open(dsn), cfg)
	}

	path := getEnv("DB_PATH", "restaurant_database_v3.db")
	return gorm.Open(sqlite.Open(path), cfg)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
