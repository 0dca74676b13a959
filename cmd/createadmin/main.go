// Command createadmin provisions the single dashboard user. Users are
// created out-of-band only; there is no sign-up endpoint.
package main

import (
	"errors"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/marslan-elation/Jobs-Handler/internal/config"
	"github.com/marslan-elation/Jobs-Handler/internal/database"
	"github.com/marslan-elation/Jobs-Handler/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	cfg := config.Load()
	db := database.Connect(cfg.DatabaseDSN)

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set in .env")
	}

	var existing models.User
	err := db.First(&existing, "lower(email) = ?", strings.ToLower(email)).Error
	if err == nil {
		log.Println("Admin already exists")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatal("Failed to look up admin:", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	user := models.User{
		Email:    email,
		Password: string(hash),
	}
	if username := os.Getenv("ADMIN_USERNAME"); username != "" {
		user.Username = &username
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatal("Failed to create admin:", err)
	}
	log.Println("Admin user created")
}
