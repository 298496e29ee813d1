package wizard

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_StartAndGet(t *testing.T) {
	r := NewRegistry(time.Hour)
	p := profileWith(nil, nil)

	id, w := r.Start(p)
	got, ok := r.Get(id, p.ID)
	require.True(t, ok)
	assert.Same(t, w, got)
}

func TestRegistry_ScopedToProfile(t *testing.T) {
	r := NewRegistry(time.Hour)
	p := profileWith(nil, nil)

	id, _ := r.Start(p)
	_, ok := r.Get(id, uuid.New())
	assert.False(t, ok, "a different profile cannot reach the session")

	// The miss does not evict the session for its owner.
	_, ok = r.Get(id, p.ID)
	assert.True(t, ok)
}

func TestRegistry_UnknownSession(t *testing.T) {
	r := NewRegistry(time.Hour)
	_, ok := r.Get(uuid.New(), uuid.New())
	assert.False(t, ok)
}

func TestRegistry_Remove(t *testing.T) {
	r := NewRegistry(time.Hour)
	p := profileWith(nil, nil)

	id, _ := r.Start(p)
	r.Remove(id)
	_, ok := r.Get(id, p.ID)
	assert.False(t, ok)
}

func TestRegistry_TTLExpiry(t *testing.T) {
	current := fixedNow
	r := NewRegistry(time.Hour)
	r.now = func() time.Time { return current }
	p := profileWith(nil, nil)

	id, _ := r.Start(p)

	current = current.Add(30 * time.Minute)
	_, ok := r.Get(id, p.ID)
	require.True(t, ok, "access within the TTL refreshes the session")

	current = current.Add(59 * time.Minute)
	_, ok = r.Get(id, p.ID)
	require.True(t, ok)

	current = current.Add(2 * time.Hour)
	_, ok = r.Get(id, p.ID)
	assert.False(t, ok)
}

func TestRegistry_Sweep(t *testing.T) {
	current := fixedNow
	r := NewRegistry(time.Hour)
	r.now = func() time.Time { return current }
	p := profileWith(nil, nil)

	stale, _ := r.Start(p)

	current = current.Add(2 * time.Hour)
	fresh, _ := r.Start(p)
	r.sweep()

	_, ok := r.Get(stale, p.ID)
	assert.False(t, ok, "idle session swept")
	_, ok = r.Get(fresh, p.ID)
	assert.True(t, ok, "fresh session survives the sweep")
}
