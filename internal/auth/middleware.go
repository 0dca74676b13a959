package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// RequireAuth gates every route it is mounted on: a missing, malformed or
// expired token cookie redirects to the sign-in entry point. Valid tokens
// are not renewed. Which paths are public is decided by the router, not
// here — sign-in and health simply aren't mounted behind this middleware.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CookieName)
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, SignInPath)
			c.Abort()
			return
		}
		userID, err := VerifyToken(token, secret)
		if err != nil {
			c.Redirect(http.StatusFound, SignInPath)
			c.Abort()
			return
		}
		c.Set("userId", userID)
		c.Next()
	}
}

// SetSessionCookie attaches the session token as an http-only, SameSite=Lax
// cookie. secure should be on in production.
func SetSessionCookie(c *gin.Context, token string, ttl time.Duration, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, int(ttl.Seconds()), CookiePath, "", secure, true)
}

// ClearSessionCookie overwrites the cookie with an immediately-expired empty
// value at the same path it was set.
func ClearSessionCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, CookiePath, "", secure, true)
}
