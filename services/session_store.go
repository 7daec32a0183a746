package services

import (
	"context"
	"fmt"
	"storefront/lib"
	"storefront/structs"
	"sync"
	"time"

	"github.com/MonkyMars/gecho"
)

// SessionStore keeps sessions between requests. Load returns lib.ErrNotFound
// for unknown or expired ids.
type SessionStore interface {
	Save(ctx context.Context, session *structs.Session, ttl time.Duration) error
	Load(ctx context.Context, id string) (*structs.Session, error)
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

// NewSessionStore picks the backend named by SESSION_STORE
func NewSessionStore(logger *gecho.Logger, cfg *structs.Config) (SessionStore, error) {
	switch cfg.Session.Store {
	case "", "memory":
		return NewMemorySessionStore(), nil
	case "redis":
		return NewRedisSessionStore(logger, cfg), nil
	default:
		return nil, fmt.Errorf("unknown session store %q", cfg.Session.Store)
	}
}

type memoryEntry struct {
	session   structs.Session
	expiresAt time.Time
}

// MemorySessionStore keeps sessions in process memory. Sessions are lost on
// restart and are not shared between replicas.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	now      func() time.Time
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]memoryEntry),
		now:      time.Now,
	}
}

func (ms *MemorySessionStore) Save(_ context.Context, session *structs.Session, ttl time.Duration) error {
	if session == nil || session.ID == "" {
		return fmt.Errorf("session without id")
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.sessions[session.ID] = memoryEntry{
		session:   *session,
		expiresAt: ms.now().Add(ttl),
	}
	return nil
}

func (ms *MemorySessionStore) Load(_ context.Context, id string) (*structs.Session, error) {
	ms.mu.RLock()
	entry, ok := ms.sessions[id]
	ms.mu.RUnlock()

	if !ok {
		return nil, lib.ErrNotFound
	}

	if !ms.now().Before(entry.expiresAt) {
		ms.mu.Lock()
		// a Save may have replaced the entry since the read lock was released
		if current, ok := ms.sessions[id]; ok && !ms.now().Before(current.expiresAt) {
			delete(ms.sessions, id)
		}
		ms.mu.Unlock()
		return nil, lib.ErrNotFound
	}

	session := entry.session
	return &session, nil
}

func (ms *MemorySessionStore) Delete(_ context.Context, id string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	delete(ms.sessions, id)
	return nil
}

func (ms *MemorySessionStore) Ping(context.Context) error {
	return nil
}
