package memstore

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/saisandeepkoritala/Wellness/internal/domain"
)

func newTestSession(id string) *domain.ParseSession {
	return &domain.ParseSession{
		ID:          id,
		Date:        "2026-08-23",
		Description: "2 eggs",
	}
}

func TestSessionStore_SaveAndGet(t *testing.T) {
	store := NewSessionStore(1*time.Minute, 1*time.Minute)
	defer store.Stop()
	ctx := context.Background()

	session := newTestSession("session-1")
	if err := store.Save(ctx, session); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Get(ctx, "session-1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.ID != "session-1" || got.Description != "2 eggs" {
		t.Errorf("Get() = %+v, want the saved session", got)
	}
}

func TestSessionStore_Get_NotFound(t *testing.T) {
	store := NewSessionStore(1*time.Minute, 1*time.Minute)
	defer store.Stop()
	ctx := context.Background()

	_, err := store.Get(ctx, "non-existent-session")
	if err != domain.ErrSessionNotFound {
		t.Errorf("Get() error = %v, want %v", err, domain.ErrSessionNotFound)
	}
}

func TestSessionStore_Get_Expired(t *testing.T) {
	store := NewSessionStore(1*time.Millisecond, 1*time.Minute)
	defer store.Stop()
	ctx := context.Background()

	if err := store.Save(ctx, newTestSession("expires-soon")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// Wait for expiration
	time.Sleep(10 * time.Millisecond)

	_, err := store.Get(ctx, "expires-soon")
	if err != domain.ErrSessionNotFound {
		t.Errorf("Get() after expiry error = %v, want %v", err, domain.ErrSessionNotFound)
	}
}

func TestSessionStore_SaveRefreshesTTL(t *testing.T) {
	store := NewSessionStore(200*time.Millisecond, 1*time.Minute)
	defer store.Stop()
	ctx := context.Background()

	session := newTestSession("refresh-test")
	if err := store.Save(ctx, session); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// Re-save after most of the TTL has elapsed
	time.Sleep(120 * time.Millisecond)
	if err := store.Save(ctx, session); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// Past the original expiry, but within the refreshed window
	time.Sleep(120 * time.Millisecond)
	if _, err := store.Get(ctx, "refresh-test"); err != nil {
		t.Errorf("Get() after refresh error = %v, want session still alive", err)
	}
}

func TestSessionStore_Delete(t *testing.T) {
	store := NewSessionStore(1*time.Minute, 1*time.Minute)
	defer store.Stop()
	ctx := context.Background()

	if err := store.Save(ctx, newTestSession("delete-test")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if err := store.Delete(ctx, "delete-test"); err != nil {
		t.Errorf("Delete() error = %v", err)
	}

	_, err := store.Get(ctx, "delete-test")
	if err != domain.ErrSessionNotFound {
		t.Errorf("Get() after delete error = %v, want %v", err, domain.ErrSessionNotFound)
	}
}

func TestSessionStore_CleanupExpired(t *testing.T) {
	store := NewSessionStore(10*time.Millisecond, 20*time.Millisecond)
	defer store.Stop()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := store.Save(ctx, newTestSession(fmt.Sprintf("session-%d", i))); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}
	if size := store.Size(); size != 5 {
		t.Fatalf("Size() = %d, want 5 before cleanup", size)
	}

	// Wait for the cleanup goroutine to run past the TTL
	time.Sleep(100 * time.Millisecond)

	if size := store.Size(); size != 0 {
		t.Errorf("Size() = %d, want 0 after cleanup", size)
	}
}

func TestSessionStore_Stop(t *testing.T) {
	store := NewSessionStore(1*time.Minute, 1*time.Minute)

	// Stopping twice must not panic
	store.Stop()
	store.Stop()
}

func TestSessionStore_Concurrent(t *testing.T) {
	store := NewSessionStore(1*time.Minute, 1*time.Minute)
	defer store.Stop()
	ctx := context.Background()

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func(id int) {
			sessionID := fmt.Sprintf("concurrent-%d", id)
			if err := store.Save(ctx, newTestSession(sessionID)); err != nil {
				t.Errorf("Concurrent Save() error = %v", err)
			}
			if _, err := store.Get(ctx, sessionID); err != nil {
				t.Errorf("Concurrent Get() error = %v", err)
			}
			done <- true
		}(i)
	}

	// Wait for all goroutines
	for i := 0; i < 10; i++ {
		<-done
	}
}
