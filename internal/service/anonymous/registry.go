package anonymous

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
	"guarashopp-storefront/internal/workspace"
)

type visitorEntry struct {
	ws       *workspace.Workspace
	lastSeen time.Time
}

// registry keeps the live workspaces keyed by visitor id.
type registry struct {
	mu       sync.Mutex
	entries  map[string]*visitorEntry
	building singleflight.Group
}

func newRegistry() *registry {
	return &registry{entries: make(map[string]*visitorEntry)}
}

// touch returns the workspace for id, creating it with build when missing.
// build runs outside the lock; concurrent first requests of one visitor share
// a single build.
func (r *registry) touch(id string, now time.Time, build func() *workspace.Workspace) (*workspace.Workspace, bool) {
	if ws := r.lookup(id, now); ws != nil {
		return ws, false
	}
	created := false
	v, _, _ := r.building.Do(id, func() (any, error) {
		if ws := r.lookup(id, now); ws != nil {
			return ws, nil
		}
		ws := build()
		r.mu.Lock()
		r.entries[id] = &visitorEntry{ws: ws, lastSeen: now}
		r.mu.Unlock()
		created = true
		return ws, nil
	})
	return v.(*workspace.Workspace), created
}

func (r *registry) lookup(id string, now time.Time) *workspace.Workspace {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return nil
	}
	e.lastSeen = now
	return e.ws
}

// evictIdle removes entries last seen before cutoff and returns them.
func (r *registry) evictIdle(cutoff time.Time) []*workspace.Workspace {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*workspace.Workspace
	for id, e := range r.entries {
		if e.lastSeen.Before(cutoff) {
			out = append(out, e.ws)
			delete(r.entries, id)
		}
	}
	return out
}

func (r *registry) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
