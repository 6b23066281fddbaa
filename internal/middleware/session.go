package middleware

import (
	"net/http"
	"strings"

	"nutriguide/internal/session"

	"github.com/gin-gonic/gin"
)

const (
	// SessionCookie holds the signed session token for the HTML pages.
	SessionCookie = "nutriguide_session"
	sessionKey    = "session"
)

// tokenFrom looks for a session token in the Authorization header, then the
// cookie, then the "token" query parameter.
func tokenFrom(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	if v, err := c.Cookie(SessionCookie); err == nil && v != "" {
		return v
	}
	return c.Query("token")
}

// LoadSession attaches the visitor's session when a valid token is present
// and otherwise lets the request through without one.
func LoadSession(m *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tok := tokenFrom(c); tok != "" {
			if s, err := m.Resolve(tok); err == nil {
				c.Set(sessionKey, s)
			}
		}
		c.Next()
	}
}

// RequireSession rejects requests without a valid session token.
func RequireSession(m *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok := tokenFrom(c)
		if tok == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session token required"})
			return
		}
		s, err := m.Resolve(tok)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			return
		}
		c.Set(sessionKey, s)
		c.Next()
	}
}

// CurrentSession returns the session attached by LoadSession or RequireSession.
func CurrentSession(c *gin.Context) (session.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return session.Session{}, false
	}
	s, ok := v.(session.Session)
	return s, ok
}
