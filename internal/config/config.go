// Load YAML config
// Override with env vars
// Provide default values

package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port          string   `yaml:"port" env:"PORT"`
	DatabaseDSN   string   `yaml:"database_dsn" env:"DATABASE_DSN"`
	JWTSecret     string   `yaml:"jwt_secret" env:"JWT_SECRET"`
	TokenTTLHours int      `yaml:"token_ttl_hours" env:"TOKEN_TTL_HOURS"`
	SecureCookies bool     `yaml:"secure_cookies" env:"SECURE_COOKIES"`
	AllowOrigins  []string `yaml:"allow_origins" env:"ALLOW_ORIGINS"`
}

func Load() *Config {
	cfg := &Config{}

	data, err := os.ReadFile("configs/config.yaml")
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing config.yaml: %v", err)
		}
	}

	// Override with env vars
	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		cfg.DatabaseDSN = dsn
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.JWTSecret = secret
	}
	if hours := os.Getenv("TOKEN_TTL_HOURS"); hours != "" {
		h, err := strconv.Atoi(hours)
		if err != nil {
			log.Fatalf("Invalid TOKEN_TTL_HOURS: %v", err)
		}
		cfg.TokenTTLHours = h
	}
	if secure := os.Getenv("SECURE_COOKIES"); secure != "" {
		cfg.SecureCookies = secure == "true" || secure == "1"
	}
	if origins := os.Getenv("ALLOW_ORIGINS"); origins != "" {
		cfg.AllowOrigins = strings.Split(origins, ",")
		for i := range cfg.AllowOrigins {
			cfg.AllowOrigins[i] = strings.TrimSpace(cfg.AllowOrigins[i])
		}
	}

	// Set default values if not set
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = "host=localhost user=postgres password=password dbname=jobshandler port=5432 sslmode=disable"
	}
	if cfg.TokenTTLHours <= 0 {
		cfg.TokenTTLHours = 24 * 7
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	return cfg
}

// TokenTTL is how long an issued session token (and its cookie) stays valid.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLHours) * time.Hour
}
