package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/BoostersSCM/Input-Management/internal/application/receiving"
)

// HeaderSessionID carries the caller's session handle. The staging list is
// private to one session; an unknown or missing ID silently starts a fresh
// session, whose ID is echoed back on every response.
const HeaderSessionID = "X-Session-ID"

const localsSessionKey = "receiving_session"

// SessionMiddleware resolves (or creates) the caller's session and makes it
// available to the staging handlers.
func SessionMiddleware(store *receiving.SessionStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := store.GetOrCreate(c.Get(HeaderSessionID))
		c.Locals(localsSessionKey, sess)
		c.Set(HeaderSessionID, sess.ID)
		return c.Next()
	}
}

// GetSession returns the session resolved by SessionMiddleware, nil when
// the middleware did not run.
func GetSession(c *fiber.Ctx) *receiving.Session {
	if sess, ok := c.Locals(localsSessionKey).(*receiving.Session); ok {
		return sess
	}
	return nil
}
