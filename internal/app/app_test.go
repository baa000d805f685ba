package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pawrest/pawrest-server/internal/auth"
	"github.com/pawrest/pawrest-server/internal/models"
	"github.com/pawrest/pawrest-server/internal/store"
)

type testEnv struct {
	app   *fiber.App
	store *store.GormStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Booking{},
		&models.Review{},
	))

	st := store.NewGormStore(gdb)
	mem := auth.NewMemoryStore()
	t.Cleanup(mem.Close)
	sessions := auth.NewSessionManager(mem, time.Hour)

	a := New(Options{
		Store:       st,
		Sessions:    sessions,
		CORSOrigins: "http://localhost:3000",
		IsProd:      false,
	})
	return &testEnv{app: a, store: st}
}

func (e *testEnv) do(t *testing.T, method, path, sid string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: sid})
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func sessionCookie(resp *http.Response) string {
	for _, ck := range resp.Cookies() {
		if ck.Name == auth.SessionCookie {
			return ck.Value
		}
	}
	return ""
}

func registerBody(username, role string) map[string]any {
	return map[string]any{
		"username":      username,
		"email":         username + "@example.com",
		"password":      "super-secret-1",
		"firstName":     "Alice",
		"lastName":      "Santos",
		"role":          role,
		"termsAccepted": true,
	}
}

// register creates a user through the API and returns its session id.
func (e *testEnv) register(t *testing.T, username, role string) string {
	t.Helper()
	resp := e.do(t, "POST", "/api/register", "", registerBody(username, role))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	sid := sessionCookie(resp)
	require.NotEmpty(t, sid)
	resp.Body.Close()
	return sid
}

// seedAdmin creates an admin directly in the store (admins never come from
// public registration) and logs it in.
func (e *testEnv) seedAdmin(t *testing.T) string {
	t.Helper()
	hashed, err := auth.HashPassword("admin-password-1")
	require.NoError(t, err)
	_, err = e.store.CreateUser(context.Background(), store.InsertUser{
		Username:  "root",
		Password:  hashed,
		Email:     "root@example.com",
		FirstName: "System",
		LastName:  "Administrator",
		Role:      models.RoleAdmin,
	})
	require.NoError(t, err)

	resp := e.do(t, "POST", "/api/login", "", map[string]any{
		"username": "root",
		"password": "admin-password-1",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	sid := sessionCookie(resp)
	require.NotEmpty(t, sid)
	resp.Body.Close()
	return sid
}

func TestRegisterValidation(t *testing.T) {
	e := newTestEnv(t)

	resp := e.do(t, "POST", "/api/register", "", map[string]any{"username": "alice"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, false, body["success"])

	resp = e.do(t, "POST", "/api/register", "", registerBody("alice", "client"))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	body = decode(t, resp)
	data := body["data"].(map[string]any)
	assert.Equal(t, "alice", data["username"])
	assert.NotContains(t, data, "password", "credential must never be serialized")

	// Duplicate username: no new row, no session.
	dup := registerBody("alice", "client")
	dup["email"] = "different@example.com"
	resp = e.do(t, "POST", "/api/register", "", dup)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Empty(t, sessionCookie(resp))
	resp.Body.Close()

	// Duplicate email.
	dup = registerBody("alice2", "client")
	dup["email"] = "alice@example.com"
	resp = e.do(t, "POST", "/api/register", "", dup)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()
}

func TestRegisterNeverCreatesAdmins(t *testing.T) {
	e := newTestEnv(t)

	resp := e.do(t, "POST", "/api/register", "", registerBody("mallory", "admin"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decode(t, resp)
	data := body["data"].(map[string]any)
	assert.Equal(t, "client", data["role"])
}

func TestLogin(t *testing.T) {
	e := newTestEnv(t)
	e.register(t, "alice", "client")

	// Wrong password and unknown user produce the identical generic message.
	resp := e.do(t, "POST", "/api/login", "", map[string]any{"username": "alice", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	wrongPw := decode(t, resp)

	resp = e.do(t, "POST", "/api/login", "", map[string]any{"username": "nobody", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	unknown := decode(t, resp)
	assert.Equal(t, wrongPw["message"], unknown["message"])

	resp = e.do(t, "POST", "/api/login", "", map[string]any{"username": "alice", "password": "super-secret-1"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	sid := sessionCookie(resp)
	require.NotEmpty(t, sid)
	body := decode(t, resp)
	data := body["data"].(map[string]any)
	assert.NotContains(t, data, "password")

	resp = e.do(t, "GET", "/api/user", sid, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestLogoutInvalidatesServerSide(t *testing.T) {
	e := newTestEnv(t)
	sid := e.register(t, "alice", "client")

	resp := e.do(t, "GET", "/api/user", sid, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = e.do(t, "POST", "/api/logout", sid, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// The old id is dead even if the client keeps the cookie.
	resp = e.do(t, "GET", "/api/user", sid, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestSessionCookieRenewedOnActivity(t *testing.T) {
	e := newTestEnv(t)
	sid := e.register(t, "alice", "client")

	// Every authenticated request re-issues the cookie with a fresh MaxAge,
	// so the browser-side expiry rolls forward alongside the server-side TTL
	// instead of staying fixed at login time.
	resp := e.do(t, "GET", "/api/user", sid, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var renewed *http.Cookie
	for _, ck := range resp.Cookies() {
		if ck.Name == auth.SessionCookie {
			renewed = ck
		}
	}
	require.NotNil(t, renewed, "session cookie must be re-issued on activity")
	assert.Equal(t, sid, renewed.Value, "renewal keeps the same session id")
	assert.Equal(t, int(time.Hour.Seconds()), renewed.MaxAge)
	assert.True(t, renewed.HttpOnly)
	resp.Body.Close()

	// Unauthenticated requests never set the cookie.
	resp = e.do(t, "GET", "/api/user", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Empty(t, sessionCookie(resp))
	resp.Body.Close()
}

func TestRoleGating(t *testing.T) {
	e := newTestEnv(t)
	clientSID := e.register(t, "alice", "client")
	providerSID := e.register(t, "bob", "provider")
	adminSID := e.seedAdmin(t)

	// Unauthenticated.
	for _, path := range []string{"/api/user", "/api/client/bookings", "/api/provider/services", "/api/admin/users"} {
		resp := e.do(t, "GET", path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
		resp.Body.Close()
	}

	// Wrong role.
	resp := e.do(t, "GET", "/api/provider/services", clientSID, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
	resp = e.do(t, "GET", "/api/client/bookings", providerSID, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
	resp = e.do(t, "GET", "/api/admin/users", clientSID, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// Admin passes every role gate.
	for _, path := range []string{"/api/client/bookings", "/api/provider/services", "/api/admin/users", "/api/admin/bookings"} {
		resp := e.do(t, "GET", path, adminSID, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		resp.Body.Close()
	}
}

func TestClientBookingFlow(t *testing.T) {
	e := newTestEnv(t)
	clientSID := e.register(t, "alice", "client")
	providerSID := e.register(t, "bob", "provider")

	// Empty dashboard.
	resp := e.do(t, "GET", "/api/client/bookings", clientSID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	assert.Empty(t, body["data"])

	// Provider publishes a service.
	resp = e.do(t, "POST", "/api/provider/services", providerSID, map[string]any{
		"name":        "Private Cremation",
		"description": "Individual cremation with urn return",
		"price":       149,
		"duration":    120,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body = decode(t, resp)
	serviceID := uint(body["data"].(map[string]any)["id"].(float64))

	// Booking against a missing service is rejected.
	resp = e.do(t, "POST", "/api/client/bookings", clientSID, map[string]any{
		"serviceId":     9999,
		"scheduledDate": time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = e.do(t, "POST", "/api/client/bookings", clientSID, map[string]any{
		"serviceId":     serviceID,
		"scheduledDate": time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		"notes":         "garden ceremony please",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body = decode(t, resp)
	booking := body["data"].(map[string]any)
	assert.Equal(t, "pending", booking["status"])
	assert.Equal(t, float64(149), booking["totalPrice"])
	bookingID := uint(booking["id"].(float64))

	// It shows up on both dashboards.
	resp = e.do(t, "GET", "/api/client/bookings", clientSID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decode(t, resp)
	require.Len(t, body["data"], 1)

	resp = e.do(t, "GET", "/api/provider/bookings", providerSID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decode(t, resp)
	require.Len(t, body["data"], 1)

	// Provider confirms it.
	resp = e.do(t, "PATCH", fmt.Sprintf("/api/provider/bookings/%d", bookingID), providerSID, map[string]any{
		"status": "confirmed",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decode(t, resp)
	assert.Equal(t, "confirmed", body["data"].(map[string]any)["status"])

	// Garbage status is rejected.
	resp = e.do(t, "PATCH", fmt.Sprintf("/api/provider/bookings/%d", bookingID), providerSID, map[string]any{
		"status": "teleported",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// A different provider cannot touch it.
	otherSID := e.register(t, "carol", "provider")
	resp = e.do(t, "PATCH", fmt.Sprintf("/api/provider/bookings/%d", bookingID), otherSID, map[string]any{
		"status": "cancelled",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}

func TestProviderVerificationFlow(t *testing.T) {
	e := newTestEnv(t)
	providerSID := e.register(t, "bob", "provider")
	adminSID := e.seedAdmin(t)

	resp := e.do(t, "GET", "/api/user", providerSID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	data := body["data"].(map[string]any)
	assert.Equal(t, false, data["isVerified"])
	providerID := uint(data["id"].(float64))

	verifyPath := fmt.Sprintf("/api/admin/users/%d/verify", providerID)

	// Providers cannot verify themselves.
	resp = e.do(t, "PATCH", verifyPath, providerSID, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = e.do(t, "PATCH", verifyPath, adminSID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Idempotent.
	resp = e.do(t, "PATCH", verifyPath, adminSID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decode(t, resp)
	assert.Equal(t, true, body["data"].(map[string]any)["isVerified"])

	// Unknown user.
	resp = e.do(t, "PATCH", "/api/admin/users/9999/verify", adminSID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// The provider sees the new state on the next request.
	resp = e.do(t, "GET", "/api/user", providerSID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decode(t, resp)
	assert.Equal(t, true, body["data"].(map[string]any)["isVerified"])
}

func TestReviewFlow(t *testing.T) {
	e := newTestEnv(t)
	clientSID := e.register(t, "alice", "client")
	providerSID := e.register(t, "bob", "provider")

	resp := e.do(t, "POST", "/api/provider/services", providerSID, map[string]any{
		"name":        "Farewell Ceremony",
		"description": "Guided memorial service",
		"price":       199,
		"duration":    90,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decode(t, resp)
	serviceID := uint(body["data"].(map[string]any)["id"].(float64))
	providerID := uint(body["data"].(map[string]any)["providerId"].(float64))

	resp = e.do(t, "POST", "/api/client/bookings", clientSID, map[string]any{
		"serviceId":     serviceID,
		"scheduledDate": time.Now().Add(24 * time.Hour).Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body = decode(t, resp)
	bookingID := uint(body["data"].(map[string]any)["id"].(float64))

	// Pending bookings cannot be reviewed.
	resp = e.do(t, "POST", "/api/client/reviews", clientSID, map[string]any{
		"bookingId": bookingID,
		"rating":    5,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = e.do(t, "PATCH", fmt.Sprintf("/api/provider/bookings/%d", bookingID), providerSID, map[string]any{
		"status": "completed",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = e.do(t, "POST", "/api/client/reviews", clientSID, map[string]any{
		"bookingId": bookingID,
		"rating":    5,
		"comment":   "Handled everything with real care.",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Second review for the same booking conflicts.
	resp = e.do(t, "POST", "/api/client/reviews", clientSID, map[string]any{
		"bookingId": bookingID,
		"rating":    4,
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// Rating bounds.
	resp = e.do(t, "POST", "/api/client/reviews", clientSID, map[string]any{
		"bookingId": bookingID,
		"rating":    6,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Publicly visible on the provider page.
	resp = e.do(t, "GET", fmt.Sprintf("/api/providers/%d/reviews", providerID), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decode(t, resp)
	reviews := body["data"].([]any)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Alice Santos", reviews[0].(map[string]any)["reviewer"])
}

func TestPublicCatalog(t *testing.T) {
	e := newTestEnv(t)

	resp := e.do(t, "GET", "/api/services", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	assert.Len(t, body["data"], 6)

	resp = e.do(t, "GET", "/api/testimonials", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decode(t, resp)
	assert.Len(t, body["data"], 3)

	resp = e.do(t, "GET", "/api/faqs", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decode(t, resp)
	assert.Len(t, body["data"], 5)
}

func TestPartialServiceUpdate(t *testing.T) {
	e := newTestEnv(t)
	providerSID := e.register(t, "bob", "provider")

	resp := e.do(t, "POST", "/api/provider/services", providerSID, map[string]any{
		"name":        "Memorial Keepsakes",
		"description": "Custom urns and paw prints",
		"price":       69,
		"duration":    30,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decode(t, resp)
	serviceID := uint(body["data"].(map[string]any)["id"].(float64))

	resp = e.do(t, "PATCH", fmt.Sprintf("/api/provider/services/%d", serviceID), providerSID, map[string]any{
		"price": 89,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decode(t, resp)
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(89), data["price"])
	assert.Equal(t, "Memorial Keepsakes", data["name"])
	assert.Equal(t, "Custom urns and paw prints", data["description"])

	// Another provider cannot edit it.
	otherSID := e.register(t, "carol", "provider")
	resp = e.do(t, "PATCH", fmt.Sprintf("/api/provider/services/%d", serviceID), otherSID, map[string]any{
		"price": 1,
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}
