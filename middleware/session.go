package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
)

// SessionStore tracks per-browser-visit state: the answers accumulated
// across test pages until final submission.
var SessionStore *session.Store

// InitSessionStore creates the session store. Must be called before any
// route using sessions is served.
func InitSessionStore() {
	SessionStore = session.New(session.Config{
		Expiration:     2 * time.Hour,
		CookieHTTPOnly: true,
	})
}
