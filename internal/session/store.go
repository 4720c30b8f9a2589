// Package session holds the signed-in user's state as an immutable value.
// All mutation flows through an update channel consumed by a single reducer
// goroutine; readers get snapshots, never shared references. This replaces
// the merge-on-update singleton the wallet UI used to keep.
package session

import (
	"sync"
	"time"
)

// State is one immutable snapshot of the session. Updates construct a new
// value; no field is ever written in place.
type State struct {
	UserID    string    `json:"user_id,omitempty"`
	FullName  string    `json:"full_name,omitempty"`
	Email     string    `json:"email,omitempty"`
	Balance   float64   `json:"balance"`
	UpdatedAt time.Time `json:"updated_at"`
}

// update is a reducer step: old state in, new state out.
type update func(State) State

type Store struct {
	updates chan update
	done    chan struct{}
	closed  sync.Once

	mu    sync.RWMutex
	state State
	subs  map[chan State]struct{}
}

// NewStore creates a session store seeded with initial and starts its
// reducer loop.
func NewStore(initial State) *Store {
	s := &Store{
		updates: make(chan update, 16),
		done:    make(chan struct{}),
		state:   initial,
		subs:    make(map[chan State]struct{}),
	}
	go s.reduce()
	return s
}

func (s *Store) reduce() {
	for {
		select {
		case <-s.done:
			return
		case fn := <-s.updates:
			s.mu.Lock()
			next := fn(s.state)
			next.UpdatedAt = time.Now()
			s.state = next
			// Non-blocking fan-out: a slow subscriber misses updates
			// rather than stalling the reducer.
			for ch := range s.subs {
				select {
				case ch <- next:
				default:
				}
			}
			s.mu.Unlock()
		}
	}
}

// Snapshot returns the current state by value.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SetBalance dispatches a balance update; all other fields carry over into
// the new state value.
func (s *Store) SetBalance(balance float64) {
	s.dispatch(func(st State) State {
		st.Balance = balance
		return st
	})
}

// SetUser dispatches an identity update.
func (s *Store) SetUser(id, fullName, email string) {
	s.dispatch(func(st State) State {
		st.UserID = id
		st.FullName = fullName
		st.Email = email
		return st
	})
}

func (s *Store) dispatch(fn update) {
	select {
	case s.updates <- fn:
	case <-s.done:
	}
}

// Subscribe registers a channel receiving every new state. The returned
// channel is buffered; callers must Unsubscribe when done.
func (s *Store) Subscribe() chan State {
	ch := make(chan State, 8)
	s.mu.Lock()
	s.subs[ch] = struct{}{}
	s.mu.Unlock()
	return ch
}

// Unsubscribe removes a subscriber channel.
func (s *Store) Unsubscribe(ch chan State) {
	s.mu.Lock()
	delete(s.subs, ch)
	s.mu.Unlock()
}

// Close stops the reducer loop.
func (s *Store) Close() {
	s.closed.Do(func() { close(s.done) })
}
