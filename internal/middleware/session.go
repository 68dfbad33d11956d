package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionKey is the gin context key holding the caller's session id
const SessionKey = "sessionID"

// SessionOptions configures the session cookie
type SessionOptions struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
}

// Session makes sure every request carries a session id. A missing or
// malformed cookie gets a fresh UUID; the cookie is refreshed on each request
// so its lifetime tracks the store's sliding expiry.
func Session(opts SessionOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(opts.CookieName)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(opts.CookieName, id, int(opts.TTL.Seconds()), "/", "", opts.Secure, true)
		c.Set(SessionKey, id)
		c.Next()
	}
}

// SessionID returns the session id set by Session, or "" outside it
func SessionID(c *gin.Context) string {
	return c.GetString(SessionKey)
}
