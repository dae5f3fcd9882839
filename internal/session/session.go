// Package session tracks the authenticated user across the lifetime of the
// application. It wraps the auth service with an explicit state machine so
// callers never have to guess whether stored credentials have been checked.
package session

import (
	"context"
	"sync"

	"github.com/okul/schoolhub/internal/app/models"
	"github.com/okul/schoolhub/internal/app/models/dto"
	"github.com/okul/schoolhub/internal/app/services"
	"github.com/okul/schoolhub/internal/pkg/apperrors"
	"github.com/okul/schoolhub/internal/pkg/logger"
)

// State is the authentication state of the session.
type State int

const (
	// StateUnknown means stored credentials have not been checked yet.
	StateUnknown State = iota
	// StateAnonymous means no usable credentials exist.
	StateAnonymous
	// StateAuthenticated means a user is logged in and cached.
	StateAuthenticated
)

// String returns a readable name for the state.
func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Snapshot is an immutable view of the session handed to listeners.
type Snapshot struct {
	State   State
	Loading bool
	User    *models.User
}

// Listener receives a snapshot after every state change.
type Listener func(Snapshot)

// Manager owns the session state. All mutating methods are safe for
// concurrent use; listeners are invoked outside the lock.
type Manager struct {
	auth *services.AuthService

	mu        sync.Mutex
	state     State
	loading   bool
	user      *models.User
	listeners []Listener
}

// NewManager creates a session manager in the unknown state.
func NewManager(auth *services.AuthService) *Manager {
	return &Manager{auth: auth, state: StateUnknown}
}

// OnChange registers a listener for session transitions.
func (m *Manager) OnChange(fn Listener) {
	m.mu.Lock()
	m.listeners = append(m.listeners, fn)
	m.mu.Unlock()
}

// Snapshot returns the current session view.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{State: m.state, Loading: m.loading, User: m.user}
}

// State returns the current state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// User returns the cached user, nil when anonymous.
func (m *Manager) User() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user
}

// IsAuthenticated reports whether a user is logged in. Always derived from
// the state, never stored separately.
func (m *Manager) IsAuthenticated() bool {
	return m.State() == StateAuthenticated
}

// Loading reports whether a network-bound transition is in flight.
func (m *Manager) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

func (m *Manager) set(state State, loading bool, user *models.User) {
	m.mu.Lock()
	m.state = state
	m.loading = loading
	m.user = user
	snap := Snapshot{State: state, Loading: loading, User: user}
	listeners := make([]Listener, len(m.listeners))
	copy(listeners, m.listeners)
	m.mu.Unlock()

	for _, fn := range listeners {
		fn(snap)
	}
}

// Initialize resolves the unknown state from persisted credentials. A
// readable stored user plus a verified token yields an authenticated
// session; anything else tears down to anonymous.
func (m *Manager) Initialize(ctx context.Context) {
	m.set(StateUnknown, true, nil)

	user, err := m.auth.StoredUser()
	if err != nil || user == nil {
		m.set(StateAnonymous, false, nil)
		return
	}

	// Cheap local check first: a malformed access token, or an expired one
	// with no refresh token to recover through, can never authenticate, so
	// skip the network round trip entirely.
	if err := m.auth.CheckStoredSession(); err != nil {
		logger.Debug().Err(err).Msg("Stored credentials unusable, clearing")
		_ = m.auth.Logout(ctx)
		m.set(StateAnonymous, false, nil)
		return
	}

	// Re-fetch the profile so a stale cache or revoked account is caught
	// at startup rather than on the first real request.
	fresh, err := m.auth.Profile(ctx)
	if err != nil {
		logger.Debug().Err(err).Msg("Stored session did not verify, clearing")
		_ = m.auth.Logout(ctx)
		m.set(StateAnonymous, false, nil)
		return
	}

	m.set(StateAuthenticated, false, fresh)
}

// Login authenticates with the given credentials. On success the session
// becomes authenticated with the returned user.
func (m *Manager) Login(ctx context.Context, req dto.LoginRequest) (*models.User, error) {
	m.mu.Lock()
	prev := m.state
	prevUser := m.user
	m.mu.Unlock()

	m.set(prev, true, prevUser)

	resp, err := m.auth.Login(ctx, req)
	if err != nil {
		m.set(StateAnonymous, false, nil)
		return nil, err
	}

	m.set(StateAuthenticated, false, &resp.User)
	return &resp.User, nil
}

// Register creates an account and signs it in. ok reports the outcome; on
// failure the session stays anonymous and err carries the detail so the
// caller can render it inline.
func (m *Manager) Register(ctx context.Context, req dto.RegisterRequest) (ok bool, err error) {
	m.mu.Lock()
	prev := m.state
	prevUser := m.user
	m.mu.Unlock()

	m.set(prev, true, prevUser)

	resp, err := m.auth.Register(ctx, req)
	if err != nil {
		m.set(StateAnonymous, false, nil)
		return false, err
	}
	m.set(StateAuthenticated, false, &resp.User)
	return true, nil
}

// Logout tears the session down. The local session always ends, even when
// the server-side revocation call fails.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	prev := m.state
	prevUser := m.user
	m.mu.Unlock()

	m.set(prev, true, prevUser)

	if err := m.auth.Logout(ctx); err != nil {
		logger.Warn().Err(err).Msg("Logout cleanup reported an error")
	}
	m.set(StateAnonymous, false, nil)
}

// Expire forces the session to anonymous without server calls. Wired as the
// client's session-expiry hook.
func (m *Manager) Expire() {
	m.set(StateAnonymous, false, nil)
}

// UpdateProfile updates the profile and refreshes the cached user.
func (m *Manager) UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest) (*models.User, error) {
	if !m.IsAuthenticated() {
		return nil, apperrors.ErrNotAuthenticated
	}

	user, err := m.auth.UpdateProfile(ctx, req)
	if err != nil {
		return nil, err
	}
	m.set(StateAuthenticated, false, user)
	return user, nil
}

// RefreshProfile re-fetches the profile for an authenticated session.
func (m *Manager) RefreshProfile(ctx context.Context) (*models.User, error) {
	if !m.IsAuthenticated() {
		return nil, apperrors.ErrNotAuthenticated
	}

	user, err := m.auth.Profile(ctx)
	if err != nil {
		return nil, err
	}
	m.set(StateAuthenticated, false, user)
	return user, nil
}
