package database

import (
	"log"

	"github.com/marslan-elation/Jobs-Handler/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect(dsn string) *gorm.DB {
	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Database connection established")

	// Migration: this creates the tables in Postgres automatically
	log.Println("Running Migrations...")
	if err := Migrate(DB); err != nil {
		log.Fatal("Migration failed:", err)
	}
	return DB
}

// Migrate creates/updates the schema for every tracked collection. Split out
// so tests can run it against their own database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.JobApplication{},
		&models.Outreach{},
		&models.JobAppSetting{},
		&models.User{},
		&models.Permission{},
	)
}
