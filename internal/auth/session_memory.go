package auth

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is the default single-process session backend. Expired entries
// are dropped lazily on Get and swept by a background janitor.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memorySession
	done     chan struct{}
	stop     sync.Once
}

type memorySession struct {
	session   Session
	expiresAt time.Time
}

func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		sessions: make(map[string]memorySession),
		done:     make(chan struct{}),
	}
	go s.janitor(10 * time.Minute)
	return s
}

func (s *MemoryStore) Get(_ context.Context, id string) (*Session, error) {
	s.mu.RLock()
	entry, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return nil, nil
	}
	sess := entry.session
	return &sess, nil
}

func (s *MemoryStore) Set(_ context.Context, id string, sess Session, ttl time.Duration) error {
	s.mu.Lock()
	s.sessions[id] = memorySession{session: sess, expiresAt: time.Now().Add(ttl)}
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Touch(_ context.Context, id string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.sessions[id]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil
	}
	entry.expiresAt = time.Now().Add(ttl)
	s.sessions[id] = entry
	return nil
}

func (s *MemoryStore) Destroy(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}

// Close stops the janitor goroutine.
func (s *MemoryStore) Close() {
	s.stop.Do(func() { close(s.done) })
}

func (s *MemoryStore) janitor(every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-t.C:
			now := time.Now()
			s.mu.Lock()
			for id, entry := range s.sessions {
				if now.After(entry.expiresAt) {
					delete(s.sessions, id)
				}
			}
			s.mu.Unlock()
		}
	}
}
