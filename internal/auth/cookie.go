package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// NewSessionCookie builds the session cookie for sid. It is set at login and
// re-set on every authenticated request, so the browser-side expiry rolls
// forward together with the server-side TTL.
func NewSessionCookie(sid string, ttl time.Duration, secure bool) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     SessionCookie,
		Value:    sid,
		Path:     "/",
		HTTPOnly: true,
		Secure:   secure,
		SameSite: "Lax",
		MaxAge:   int(ttl.Seconds()),
	}
}

// ExpiredSessionCookie builds the cookie that removes the session cookie from
// the browser.
func ExpiredSessionCookie(secure bool) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   secure,
		SameSite: "Lax",
		MaxAge:   -1,
	}
}
