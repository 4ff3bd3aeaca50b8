package config

import (
	"fmt"
	"log"
	"os"

	"github.com/hukuhuku/shot-tracker/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB connects to the database and migrates the schema. Postgres by
// default; DB_DRIVER=sqlite switches to an embedded file for local runs.
// TranslateError is on so unique violations surface as
// gorm.ErrDuplicatedKey on both drivers.
func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	var err error
	gormCfg := &gorm.Config{TranslateError: true}

	if os.Getenv("DB_DRIVER") == "sqlite" {
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = "shot_tracker.db"
		}
		DB, err = gorm.Open(sqlite.Open(path), gormCfg)
	} else {
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			os.Getenv("DB_HOST"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
			os.Getenv("DB_PORT"),
		)
		DB, err = gorm.Open(postgres.Open(dsn), gormCfg)
	}
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.ShotRecord{},
		&models.UserSetting{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}
