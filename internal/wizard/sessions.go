package wizard

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"SURUWE_BACK-END/internal/models"
)

// Registry holds in-flight wizard sessions, one logical user per session.
// Sessions idle past the TTL are evicted; cancelling or submitting removes
// them immediately.
type Registry struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*session
	ttl      time.Duration
	now      func() time.Time
}

type session struct {
	wizard    *Wizard
	profileID uuid.UUID
	lastSeen  time.Time
}

func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		sessions: map[uuid.UUID]*session{},
		ttl:      ttl,
		now:      time.Now,
	}
}

// Start opens a new wizard for a profile and returns its session id.
func (r *Registry) Start(profile *models.Profile) (uuid.UUID, *Wizard) {
	w := New(profile, r.now)
	id := uuid.New()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[id] = &session{wizard: w, profileID: profile.ID, lastSeen: r.now()}
	return id, w
}

// Get returns the wizard for a session, scoped to the owning profile.
func (r *Registry) Get(id, profileID uuid.UUID) (*Wizard, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok || s.profileID != profileID {
		return nil, false
	}
	if r.now().Sub(s.lastSeen) > r.ttl {
		delete(r.sessions, id)
		return nil, false
	}
	s.lastSeen = r.now()
	return s.wizard, true
}

// Remove discards a session. In-memory wizard state is simply dropped; any
// measurement save already committed stays committed.
func (r *Registry) Remove(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Run sweeps expired sessions until the context is done.
func (r *Registry) Run(ctx context.Context) {
	ticker := time.NewTicker(r.ttl / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.sweep()
		}
	}
}

func (r *Registry) sweep() {
	r.mu.Lock()
	defer r.mu.Unlock()
	cutoff := r.now().Add(-r.ttl)
	for id, s := range r.sessions {
		if s.lastSeen.Before(cutoff) {
			delete(r.sessions, id)
		}
	}
}
