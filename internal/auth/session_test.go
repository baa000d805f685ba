package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawrest/pawrest-server/internal/models"
)

func TestMemoryStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close()

	got, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, s.Set(ctx, "sid-1", Session{UserID: 7, Role: models.RoleClient}, time.Minute))

	got, err = s.Get(ctx, "sid-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, uint(7), got.UserID)
	assert.Equal(t, models.RoleClient, got.Role)

	require.NoError(t, s.Destroy(ctx, "sid-1"))
	got, err = s.Get(ctx, "sid-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close()

	require.NoError(t, s.Set(ctx, "sid", Session{UserID: 1}, 10*time.Millisecond))
	time.Sleep(20 * time.Millisecond)

	got, err := s.Get(ctx, "sid")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStoreTouchExtends(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close()

	require.NoError(t, s.Set(ctx, "sid", Session{UserID: 1}, 30*time.Millisecond))
	time.Sleep(20 * time.Millisecond)
	require.NoError(t, s.Touch(ctx, "sid", time.Minute))
	time.Sleep(20 * time.Millisecond)

	got, err := s.Get(ctx, "sid")
	require.NoError(t, err)
	require.NotNil(t, got)

	// Touching an unknown id is a no-op.
	require.NoError(t, s.Touch(ctx, "missing", time.Minute))
}

func TestSessionManagerCreateAndDestroy(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close()
	m := NewSessionManager(s, time.Minute)

	sid, err := m.Create(ctx, 42, models.RoleProvider)
	require.NoError(t, err)
	require.NotEmpty(t, sid)

	other, err := m.Create(ctx, 42, models.RoleProvider)
	require.NoError(t, err)
	assert.NotEqual(t, sid, other, "session ids must be unique")

	sess, err := m.Get(ctx, sid)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, uint(42), sess.UserID)

	require.NoError(t, m.Destroy(ctx, sid))
	sess, err = m.Get(ctx, sid)
	require.NoError(t, err)
	assert.Nil(t, sess)

	// Empty id resolves to no session rather than an error.
	sess, err = m.Get(ctx, "")
	require.NoError(t, err)
	assert.Nil(t, sess)
}
