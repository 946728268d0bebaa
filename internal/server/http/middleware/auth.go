package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jokistudio/portal/internal/domain/model"
)

const (
	// UserContextKey is a gin context key for the authenticated principal.
	UserContextKey = "currentUser"
	sessionCookie  = "portal_session"
)

// AccessGate resolves credentials to live principals. Both methods must be
// fail-closed: any doubt reads as unauthenticated.
type AccessGate interface {
	ResolveSession(ctx context.Context, token string) (*model.User, error)
	ResolveBearer(ctx context.Context, token string) (*model.User, error)
}

// SessionRequired authenticates the web surface from the session cookie,
// falling back to an Authorization header for non-browser clients.
func SessionRequired(gate AccessGate) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		user, err := gate.ResolveSession(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Set(UserContextKey, user)
		c.Next()
	}
}

// BearerRequired authenticates the mobile surface from a bearer token.
func BearerRequired(gate AccessGate) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		user, err := gate.ResolveBearer(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Set(UserContextKey, user)
		c.Next()
	}
}

func sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(sessionCookie); err == nil && cookie != "" {
		return cookie
	}
	return bearerToken(c)
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(header), "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}

// SetSessionCookie writes the session token cookie to the response. The
// token is a bearer credential, so the cookie is HTTP-only and never sent
// over cleartext.
func SetSessionCookie(c *gin.Context, token string) {
	c.SetCookie(sessionCookie, token, 0, "/", "", true, true)
}
