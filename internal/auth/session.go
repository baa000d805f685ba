package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pawrest/pawrest-server/internal/models"
)

// SessionCookie is the name of the session cookie.
const SessionCookie = "pawrest_sid"

// Session is the minimal principal bound to an opaque session id. The role is
// a hint from login time; the middleware re-fetches the user record before
// trusting it.
type Session struct {
	UserID uint        `json:"userId"`
	Role   models.Role `json:"role"`
}

// SessionStore keeps sessions keyed by opaque id. Implementations must be
// safe for concurrent use. Get returns (nil, nil) for a missing or expired
// session.
type SessionStore interface {
	Get(ctx context.Context, id string) (*Session, error)
	Set(ctx context.Context, id string, s Session, ttl time.Duration) error
	Touch(ctx context.Context, id string, ttl time.Duration) error
	Destroy(ctx context.Context, id string) error
}

// SessionManager issues and resolves opaque session identifiers.
type SessionManager struct {
	store SessionStore
	ttl   time.Duration
}

func NewSessionManager(store SessionStore, ttl time.Duration) *SessionManager {
	return &SessionManager{store: store, ttl: ttl}
}

func (m *SessionManager) TTL() time.Duration { return m.ttl }

// Create issues a fresh session id for the given principal.
func (m *SessionManager) Create(ctx context.Context, userID uint, role models.Role) (string, error) {
	id := uuid.NewString()
	if err := m.store.Set(ctx, id, Session{UserID: userID, Role: role}, m.ttl); err != nil {
		return "", err
	}
	return id, nil
}

func (m *SessionManager) Get(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, nil
	}
	return m.store.Get(ctx, id)
}

// Touch extends a live session by the full TTL (rolling renewal).
func (m *SessionManager) Touch(ctx context.Context, id string) error {
	return m.store.Touch(ctx, id, m.ttl)
}

func (m *SessionManager) Destroy(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	return m.store.Destroy(ctx, id)
}
