// Package store holds the cross-screen application state: the signed-in
// operator, the tenant's subscription status, and display preferences.
// It is safe for concurrent use; the SSH server shares one process across
// sessions, each with its own store.
package store

import (
	"sync"

	"github.com/KKiumbe/web-taqa-sub000/pkg/auth"
)

// Store is the observable session state. The zero value is not usable;
// call New.
type Store struct {
	mu           sync.RWMutex
	currentUser  *auth.SessionClaims
	tenantStatus string
	darkMode     bool

	watchers []chan struct{}
}

// New returns a store with dark mode on, matching the default theme.
func New() *Store {
	return &Store{darkMode: true}
}

// CurrentUser returns the signed-in operator's claims, nil before sign-in.
func (s *Store) CurrentUser() *auth.SessionClaims {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentUser
}

// SetCurrentUser records the operator after sign-in, or nil on sign-out.
func (s *Store) SetCurrentUser(claims *auth.SessionClaims) {
	s.mu.Lock()
	s.currentUser = claims
	s.mu.Unlock()
	s.notify()
}

// SignedIn reports whether an operator session is active.
func (s *Store) SignedIn() bool {
	return s.CurrentUser() != nil
}

// TenantStatus returns the last known subscription status, "" before the
// first check.
func (s *Store) TenantStatus() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tenantStatus
}

// SetTenantStatus records the subscription status from the status check.
func (s *Store) SetTenantStatus(status string) {
	s.mu.Lock()
	s.tenantStatus = status
	s.mu.Unlock()
	s.notify()
}

// DarkMode reports the active theme.
func (s *Store) DarkMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.darkMode
}

// ToggleDarkMode flips the theme and returns the new value.
func (s *Store) ToggleDarkMode() bool {
	s.mu.Lock()
	s.darkMode = !s.darkMode
	v := s.darkMode
	s.mu.Unlock()
	s.notify()
	return v
}

// Watch returns a channel that receives a tick after every state change.
// Notifications are best-effort: a slow receiver misses coalesced ticks,
// never blocks a writer.
func (s *Store) Watch() <-chan struct{} {
	ch := make(chan struct{}, 1)
	s.mu.Lock()
	s.watchers = append(s.watchers, ch)
	s.mu.Unlock()
	return ch
}

func (s *Store) notify() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ch := range s.watchers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
