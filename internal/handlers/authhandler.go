package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/marslan-elation/Jobs-Handler/internal/auth"
	"github.com/marslan-elation/Jobs-Handler/internal/dtos"
	"github.com/marslan-elation/Jobs-Handler/internal/services"
)

type AuthHandler struct {
	AuthService   *services.AuthService
	CookieTTL     time.Duration
	SecureCookies bool
}

func NewAuthHandler(authService *services.AuthService, cookieTTL time.Duration, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		AuthService:   authService,
		CookieTTL:     cookieTTL,
		SecureCookies: secureCookies,
	}
}

// SignIn is POST /api/signin. On success the session token is set as an
// http-only cookie; the token itself is not echoed in the body.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req dtos.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON format: " + err.Error()})
		return
	}

	identifier := req.Email
	if identifier == "" {
		identifier = req.Username
	}
	if identifier == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "email or username and password are required"})
		return
	}

	token, err := h.AuthService.SignIn(identifier, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	auth.SetSessionCookie(c, token, h.CookieTTL, h.SecureCookies)
	c.JSON(http.StatusOK, gin.H{"message": "Welcome Back!"})
}

// SignOut is POST /api/signout.
func (h *AuthHandler) SignOut(c *gin.Context) {
	auth.ClearSessionCookie(c, h.SecureCookies)
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}
