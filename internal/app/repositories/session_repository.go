package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/yigit/cgpatracker/internal/pkg/apperrors"
	"github.com/yigit/cgpatracker/internal/pkg/grading"
)

// UpdateFunc derives the next gradebook from the stored one. found is false
// when the session has no gradebook yet. Returning an error leaves the
// session untouched.
type UpdateFunc func(current grading.Gradebook, found bool) (grading.Gradebook, error)

// SessionRepository stores one gradebook per session id. Implementations
// expire a session after its TTL; Load, Save and Update all refresh it.
type SessionRepository interface {
	Load(ctx context.Context, sessionID string) (grading.Gradebook, error)
	Save(ctx context.Context, sessionID string, gb grading.Gradebook) error
	// Update applies fn atomically: concurrent updates of one session never
	// overwrite each other.
	Update(ctx context.Context, sessionID string, fn UpdateFunc) (grading.Gradebook, error)
	Delete(ctx context.Context, sessionID string) error
}

// Purger is implemented by stores that have to drop expired sessions
// themselves.
type Purger interface {
	PurgeExpired() int
	Len() int
}

type memoryEntry struct {
	gradebook grading.Gradebook
	expiresAt time.Time
}

// MemorySessionRepository keeps sessions in process memory.
type MemorySessionRepository struct {
	mu       sync.Mutex
	sessions map[string]memoryEntry
	ttl      time.Duration
	now      func() time.Time
}

// NewMemorySessionRepository creates a new MemorySessionRepository
func NewMemorySessionRepository(ttl time.Duration) *MemorySessionRepository {
	return &MemorySessionRepository{
		sessions: make(map[string]memoryEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Load returns the gradebook for sessionID or apperrors.ErrSessionNotFound.
func (r *MemorySessionRepository) Load(ctx context.Context, sessionID string) (grading.Gradebook, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.sessions[sessionID]
	if !ok {
		return grading.Gradebook{}, apperrors.ErrSessionNotFound
	}
	now := r.now()
	if now.After(entry.expiresAt) {
		delete(r.sessions, sessionID)
		return grading.Gradebook{}, apperrors.ErrSessionNotFound
	}

	entry.expiresAt = now.Add(r.ttl)
	r.sessions[sessionID] = entry
	return entry.gradebook, nil
}

// Update runs fn under the store lock and saves its result.
func (r *MemorySessionRepository) Update(ctx context.Context, sessionID string, fn UpdateFunc) (grading.Gradebook, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	entry, found := r.sessions[sessionID]
	if found && now.After(entry.expiresAt) {
		delete(r.sessions, sessionID)
		entry, found = memoryEntry{}, false
	}

	next, err := fn(entry.gradebook, found)
	if err != nil {
		return entry.gradebook, err
	}

	r.sessions[sessionID] = memoryEntry{gradebook: next, expiresAt: now.Add(r.ttl)}
	return next, nil
}

// Save replaces the gradebook stored for sessionID.
func (r *MemorySessionRepository) Save(ctx context.Context, sessionID string, gb grading.Gradebook) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.purgeLocked()
	r.sessions[sessionID] = memoryEntry{gradebook: gb, expiresAt: r.now().Add(r.ttl)}
	return nil
}

// Delete drops the session. Deleting an unknown session is not an error.
func (r *MemorySessionRepository) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, sessionID)
	return nil
}

// PurgeExpired removes every expired session and returns how many were dropped.
func (r *MemorySessionRepository) PurgeExpired() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.purgeLocked()
}

// Len returns the number of stored sessions, expired ones included.
func (r *MemorySessionRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions)
}

func (r *MemorySessionRepository) purgeLocked() int {
	now := r.now()
	purged := 0
	for id, entry := range r.sessions {
		if now.After(entry.expiresAt) {
			delete(r.sessions, id)
			purged++
		}
	}
	return purged
}
