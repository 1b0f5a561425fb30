package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KKiumbe/web-taqa-sub000/pkg/auth"
)

func TestSignInSignOut(t *testing.T) {
	s := New()
	assert.False(t, s.SignedIn())
	assert.Nil(t, s.CurrentUser())

	s.SetCurrentUser(&auth.SessionClaims{FirstName: "Jane"})
	assert.True(t, s.SignedIn())
	assert.Equal(t, "Jane", s.CurrentUser().FirstName)

	s.SetCurrentUser(nil)
	assert.False(t, s.SignedIn())
}

func TestTenantStatus(t *testing.T) {
	s := New()
	assert.Empty(t, s.TenantStatus(), "unknown before the first check")

	s.SetTenantStatus("EXPIRED")
	assert.Equal(t, "EXPIRED", s.TenantStatus())
}

func TestToggleDarkMode(t *testing.T) {
	s := New()
	assert.True(t, s.DarkMode(), "dark is the default")
	assert.False(t, s.ToggleDarkMode())
	assert.True(t, s.ToggleDarkMode())
}

func TestWatchReceivesTicks(t *testing.T) {
	s := New()
	ch := s.Watch()

	s.SetTenantStatus("ACTIVE")
	select {
	case <-ch:
	default:
		t.Fatal("expected a notification after a state change")
	}

	// A full buffer must never block writers.
	s.SetTenantStatus("EXPIRED")
	s.SetTenantStatus("ACTIVE")
	assert.Equal(t, "ACTIVE", s.TenantStatus())
}

func TestConcurrentAccess(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.SetTenantStatus("ACTIVE")
			s.ToggleDarkMode()
		}()
		go func() {
			defer wg.Done()
			_ = s.TenantStatus()
			_ = s.SignedIn()
		}()
	}
	wg.Wait()
}
