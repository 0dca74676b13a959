package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/marslan-elation/Jobs-Handler/internal/config"
	"github.com/marslan-elation/Jobs-Handler/internal/currency"
	"github.com/marslan-elation/Jobs-Handler/internal/database"
	"github.com/marslan-elation/Jobs-Handler/internal/handlers"
	"github.com/marslan-elation/Jobs-Handler/internal/services"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	cfg := config.Load()

	// 2. Database Connection
	db := database.Connect(cfg.DatabaseDSN)

	// 3. Initialize Core Services (Dependencies)
	jobService := services.NewJobService(db)
	outreachService := services.NewOutreachService(db)
	settingService := services.NewSettingService(db)
	authService := services.NewAuthService(db, cfg.JWTSecret, cfg.TokenTTL())
	rates := currency.NewRateClient()

	// 4. Initialize Handlers
	jobHandler := handlers.NewJobHandler(jobService, settingService, rates)
	outreachHandler := handlers.NewOutreachHandler(outreachService)
	settingHandler := handlers.NewSettingHandler(settingService)
	authHandler := handlers.NewAuthHandler(authService, cfg.TokenTTL(), cfg.SecureCookies)

	// 5. Setup Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowOrigins
	} else {
		// For development only; the session cookie needs credentials
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 6. Define Routes
	handlers.RegisterRoutes(r, jobHandler, outreachHandler, settingHandler, authHandler, cfg.JWTSecret)

	log.Println("Server starting on port " + cfg.Port + "...")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
