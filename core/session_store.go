package core

import (
	"sync"
)

// SessionStore is the single source of truth for the authenticated identity.
//
// Exactly one writer (the auth gateway) mutates it; every other component
// reads or subscribes. Subscribers are notified synchronously, in
// registration order, on every Set.
type SessionStore struct {
	mu          sync.RWMutex
	current     *Session
	subscribers []*subscription
	nextID      int
}

type subscription struct {
	id int
	fn func(*Session)
}

func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// Current returns the latest known session, or nil when logged out.
// The returned value is a copy; mutating it does not affect the store.
func (s *SessionStore) Current() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil
	}
	cp := *s.current
	return &cp
}

// Set replaces the current session and notifies subscribers.
//
// A non-nil session missing any required field is dropped and the store is
// left unchanged: no partial session is ever observable. Setting nil is
// always accepted and is how logout and expiry propagate.
func (s *SessionStore) Set(session *Session) {
	if session != nil && !session.Complete() {
		return
	}

	s.mu.Lock()
	if session != nil {
		cp := *session
		s.current = &cp
	} else {
		s.current = nil
	}
	subs := make([]*subscription, len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	// Notify outside the lock so a subscriber may call Current or
	// Unsubscribe without deadlocking.
	for _, sub := range subs {
		sub.fn(session)
	}
}

// Subscribe registers a callback invoked on every Set. The returned
// function removes the subscription; calling it more than once is a no-op.
func (s *SessionStore) Subscribe(fn func(*Session)) func() {
	s.mu.Lock()
	s.nextID++
	sub := &subscription{id: s.nextID, fn: fn}
	s.subscribers = append(s.subscribers, sub)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, candidate := range s.subscribers {
			if candidate.id == sub.id {
				s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}
