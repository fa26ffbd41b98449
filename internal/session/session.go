// Package session tracks live remote play sessions.
// It is transport-neutral: the SSH server registers a Handle per
// connection and closes it when the connection ends.
package session

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// ErrFull is returned by Register when the registry is at capacity.
var ErrFull = errors.New("session: server is full")

// ErrDuplicate is returned by Register when the ID is already taken.
var ErrDuplicate = errors.New("session: duplicate session id")

// ID uniquely identifies a session (e.g., one SSH connection).
type ID string

var idCounter atomic.Uint64

// NewID builds a unique session ID for a user.
func NewID(user string) ID {
	return ID(fmt.Sprintf("%s-%d-%d", user, time.Now().UnixNano(), idCounter.Add(1)))
}

// Info is a point-in-time description of a session.
type Info struct {
	ID         ID
	User       string
	RemoteAddr string
	Game       string // Currently played variant, empty while in menus
	StartedAt  time.Time
}

// Handle is a registered session.
type Handle struct {
	mu       sync.RWMutex
	info     Info
	onEnd    func()
	done     chan struct{}
	doneOnce sync.Once
}

// NewHandle creates a session handle started now.
func NewHandle(id ID, user, remoteAddr string) *Handle {
	return &Handle{
		info: Info{
			ID:         id,
			User:       user,
			RemoteAddr: remoteAddr,
			StartedAt:  time.Now(),
		},
		done: make(chan struct{}),
	}
}

// ID returns the session identifier.
func (h *Handle) ID() ID {
	return h.info.ID
}

// Info returns a copy of the session description.
func (h *Handle) Info() Info {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.info
}

// SetGame records which variant the session is playing.
func (h *Handle) SetGame(game string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.info.Game = game
}

// SetOnEnd sets the function End runs, replacing any earlier one.
// A nil fn clears it.
func (h *Handle) SetOnEnd(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onEnd = fn
}

// End runs the function set by SetOnEnd, at most once. The transport
// calls it when the connection is gone.
func (h *Handle) End() {
	h.mu.Lock()
	fn := h.onEnd
	h.onEnd = nil
	h.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Done returns a channel that closes when the session ends.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Close marks the session as done.
// Safe to call multiple times.
func (h *Handle) Close() {
	h.doneOnce.Do(func() {
		close(h.done)
	})
}

// Registry tracks active sessions.
// Thread-safe for concurrent access.
type Registry struct {
	mu       sync.RWMutex
	sessions map[ID]*Handle
	max      int
}

// NewRegistry creates a registry holding at most maxSessions sessions.
// maxSessions <= 0 means unlimited.
func NewRegistry(maxSessions int) *Registry {
	return &Registry{
		sessions: make(map[ID]*Handle),
		max:      maxSessions,
	}
}

// Register adds a session to the registry.
func (r *Registry) Register(h *Handle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[h.ID()]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicate, h.ID())
	}
	if r.max > 0 && len(r.sessions) >= r.max {
		return ErrFull
	}
	r.sessions[h.ID()] = h
	return nil
}

// Unregister removes a session from the registry and closes it.
func (r *Registry) Unregister(id ID) {
	r.mu.Lock()
	h, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if ok {
		h.Close()
	}
}

// Get retrieves a session by ID.
func (r *Registry) Get(id ID) (*Handle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.sessions[id]
	return h, ok
}

// Count returns the number of registered sessions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// List returns all sessions, oldest first.
func (r *Registry) List() []Info {
	r.mu.RLock()
	infos := make([]Info, 0, len(r.sessions))
	for _, h := range r.sessions {
		infos = append(infos, h.Info())
	}
	r.mu.RUnlock()

	sort.Slice(infos, func(i, j int) bool {
		if infos[i].StartedAt.Equal(infos[j].StartedAt) {
			return infos[i].ID < infos[j].ID
		}
		return infos[i].StartedAt.Before(infos[j].StartedAt)
	})
	return infos
}

// CloseAll closes and removes every session.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	handles := make([]*Handle, 0, len(r.sessions))
	for id, h := range r.sessions {
		handles = append(handles, h)
		delete(r.sessions, id)
	}
	r.mu.Unlock()

	for _, h := range handles {
		h.Close()
	}
}
