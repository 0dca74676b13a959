package services

import (
	"errors"
	"strings"
	"time"

	"github.com/marslan-elation/Jobs-Handler/internal/auth"
	"github.com/marslan-elation/Jobs-Handler/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	DB       *gorm.DB
	Secret   string
	TokenTTL time.Duration
}

func NewAuthService(db *gorm.DB, secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		DB:       db,
		Secret:   secret,
		TokenTTL: tokenTTL,
	}
}

// SignIn matches the identifier against email or username,
// case-insensitively, and returns a signed session token on success.
// The token carries the user id only; it is never refreshed on use.
func (s *AuthService) SignIn(identifier, password string) (string, error) {
	ident := strings.ToLower(strings.TrimSpace(identifier))

	var user models.User
	err := s.DB.First(&user, "lower(email) = ? OR lower(username) = ?", ident, ident).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrUserNotFound
	}
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return auth.GenerateToken(user.ID, s.Secret, s.TokenTTL)
}
