package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/saisandeepkoritala/Wellness/internal/domain"
)

// sessionEntry pairs a stored session with its expiry
type sessionEntry struct {
	session    *domain.ParseSession
	expiration time.Time
}

// SessionStore is a thread-safe in-memory store for parse sessions with
// TTL support. A session left alone past its TTL reads the same as a
// deleted one, which covers users abandoning the review step.
type SessionStore struct {
	data            map[string]sessionEntry
	ttl             time.Duration
	cleanupInterval time.Duration
	mutex           sync.RWMutex
	stop            chan struct{}
	stopOnce        sync.Once
}

// NewSessionStore creates a session store and starts its cleanup goroutine
func NewSessionStore(ttl, cleanupInterval time.Duration) *SessionStore {
	if cleanupInterval <= 0 {
		cleanupInterval = time.Minute
	}

	store := &SessionStore{
		data:            make(map[string]sessionEntry),
		ttl:             ttl,
		cleanupInterval: cleanupInterval,
		stop:            make(chan struct{}),
	}

	go store.cleanupExpired()

	return store
}

// Get retrieves a session by ID. Expired sessions read as not found.
func (s *SessionStore) Get(ctx context.Context, id string) (*domain.ParseSession, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	entry, exists := s.data[id]
	if !exists {
		return nil, domain.ErrSessionNotFound
	}

	// Check if expired
	if time.Now().After(entry.expiration) {
		return nil, domain.ErrSessionNotFound
	}

	return entry.session, nil
}

// Save stores a session and restarts its TTL window, so every review edit
// keeps the session alive
func (s *SessionStore) Save(ctx context.Context, session *domain.ParseSession) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.data[session.ID] = sessionEntry{
		session:    session,
		expiration: time.Now().Add(s.ttl),
	}

	return nil
}

// Delete removes a session
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.data, id)
	return nil
}

// Size returns the current number of stored sessions (for debugging/monitoring)
func (s *SessionStore) Size() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.data)
}

// Stop terminates the cleanup goroutine
func (s *SessionStore) Stop() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
}

// cleanupExpired removes expired sessions periodically
func (s *SessionStore) cleanupExpired() {
	ticker := time.NewTicker(s.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.mutex.Lock()
			now := time.Now()
			for id, entry := range s.data {
				if now.After(entry.expiration) {
					delete(s.data, id)
				}
			}
			s.mutex.Unlock()
		case <-s.stop:
			return
		}
	}
}
