package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/pawrest/pawrest-server/internal/auth"
	"github.com/pawrest/pawrest-server/internal/models"
	"github.com/pawrest/pawrest-server/internal/store"
)

const (
	localUser      = "user"
	localSessionID = "sessionID"
)

// RequireAuth resolves the session cookie into a user record. The user row is
// re-fetched on every request: the database, not the session payload, is the
// source of truth for roles and verification state. Each authenticated
// request extends the server-side TTL and re-issues the cookie, so both
// expiries roll forward with activity.
func RequireAuth(sessions *auth.SessionManager, st store.Store, secure bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Copy the cookie value out of fasthttp's reusable request buffer:
		// the sid outlives the request inside the session store's map.
		sid := strings.Clone(c.Cookies(auth.SessionCookie))
		if sid == "" {
			return fiber.ErrUnauthorized
		}

		sess, err := sessions.Get(c.Context(), sid)
		if err != nil {
			logrus.WithError(err).Error("session lookup failed")
			return fiber.ErrInternalServerError
		}
		if sess == nil {
			return fiber.ErrUnauthorized
		}

		user, err := st.GetUser(c.Context(), sess.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				// Dangling session for a user that no longer exists.
				_ = sessions.Destroy(c.Context(), sid)
				return fiber.ErrUnauthorized
			}
			logrus.WithError(err).Error("user lookup failed")
			return fiber.ErrInternalServerError
		}

		if err := sessions.Touch(c.Context(), sid); err != nil {
			logrus.WithError(err).Warn("session touch failed")
		} else {
			c.Cookie(auth.NewSessionCookie(sid, sessions.TTL(), secure))
		}

		c.Locals(localUser, user)
		c.Locals(localSessionID, sid)
		return c.Next()
	}
}

// UserFromCtx returns the authenticated user set by RequireAuth, or nil.
func UserFromCtx(c *fiber.Ctx) *models.User {
	u, _ := c.Locals(localUser).(*models.User)
	return u
}

// SessionIDFromCtx returns the session id set by RequireAuth.
func SessionIDFromCtx(c *fiber.Ctx) string {
	sid, _ := c.Locals(localSessionID).(string)
	return sid
}
