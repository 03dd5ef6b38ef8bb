package service

import (
	"sync"

	"github.com/aeroedge/hr-ui-api/internal/domain/identity"
)

// Snapshot is a consistent read of the session store. Session and Profile
// are copies; mutating a snapshot never affects the store.
type Snapshot struct {
	Session *identity.Session
	Profile *identity.Profile
	// Loading is true while a sign-in, sign-up, or restoration is in
	// flight. Screens render a pending state instead of treating the
	// interval as signed-out.
	Loading bool
}

// Authenticated reports whether the snapshot holds a session.
func (s Snapshot) Authenticated() bool { return s.Session != nil }

// Can reports whether the snapshot's profile grants the capability.
func (s Snapshot) Can(capability identity.Capability) bool {
	return identity.Can(s.Profile, capability)
}

// Subscriber receives the post-transition snapshot after every store
// mutation. Callbacks run synchronously on the mutating goroutine and must
// not call back into the store's mutators.
type Subscriber func(Snapshot)

// SessionStore holds the process-wide authentication state: the current
// session and resolved profile. It is mutated only by the SessionManager;
// every other component takes snapshot reads. Fields are updated together
// under one lock so no reader can observe partial state.
type SessionStore struct {
	mu      sync.RWMutex
	session *identity.Session
	profile *identity.Profile
	loading bool
	// epoch increments on every clear, letting the manager detect a
	// sign-out that raced an in-flight sign-in.
	epoch uint64

	subMu   sync.Mutex
	subs    map[int]Subscriber
	nextSub int
}

// NewSessionStore returns an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{subs: make(map[int]Subscriber)}
}

// Snapshot returns a consistent copy of the current state.
func (s *SessionStore) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *SessionStore) snapshotLocked() Snapshot {
	snap := Snapshot{Loading: s.loading}
	if s.session != nil {
		sess := *s.session
		snap.Session = &sess
	}
	if s.profile != nil {
		prof := *s.profile
		snap.Profile = &prof
	}
	return snap
}

// Subscribe registers fn and immediately delivers the current snapshot, so
// late subscribers observe the post-transition state rather than a stale
// queued one. The returned func cancels the subscription.
func (s *SessionStore) Subscribe(fn Subscriber) (cancel func()) {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	fn(s.Snapshot())

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

// notify fans the snapshot out to all current subscribers.
func (s *SessionStore) notify(snap Snapshot) {
	s.subMu.Lock()
	fns := make([]Subscriber, 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

// setLoading flips the loading flag without touching session or profile,
// so a failed auth attempt leaves the store exactly as it found it.
func (s *SessionStore) setLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(snap)
}

// setAuthenticated installs a session and its resolved profile in one
// transition. profile may be nil ("profile not ready"). It refuses the
// write and returns false when the epoch advanced since expectEpoch, which
// means a sign-out won the race.
func (s *SessionStore) setAuthenticated(expectEpoch uint64, sess identity.Session, profile *identity.Profile) bool {
	s.mu.Lock()
	if s.epoch != expectEpoch {
		s.mu.Unlock()
		return false
	}
	s.session = &sess
	s.profile = profile
	s.loading = false
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(snap)
	return true
}

// clear empties the store and advances the epoch.
func (s *SessionStore) clear() {
	s.mu.Lock()
	s.session = nil
	s.profile = nil
	s.loading = false
	s.epoch++
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(snap)
}

// currentEpoch is read by the manager before starting an auth call.
func (s *SessionStore) currentEpoch() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.epoch
}

// currentSession returns a copy of the active session, if any.
func (s *SessionStore) currentSession() *identity.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return nil
	}
	sess := *s.session
	return &sess
}
