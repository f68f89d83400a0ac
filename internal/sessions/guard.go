package sessions

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/freelancehq/cli/internal/models"
)

// AuthState is the guard's view of the session lifecycle.
type AuthState int

const (
	// StateUnknown means the stored session has not been consulted yet.
	StateUnknown AuthState = iota
	// StateAuthenticated means a complete user/token pair is present.
	StateAuthenticated
	// StateUnauthenticated means hydration ran and found no session.
	StateUnauthenticated
)

func (s AuthState) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// Navigator is the navigation surface the guard redirects through. The TUI
// shell implements it; tests use a fake.
type Navigator interface {
	CurrentPath() string
	Navigate(path string)
}

// Guard decides, based on session state, whether the current navigation is
// permitted or must be redirected to the login route. It starts in
// StateUnknown, hydrates the session on first observation, and then follows
// SetUser/Logout for the life of the process.
type Guard struct {
	lock      sync.Mutex
	state     AuthState
	manager   *Manager
	nav       Navigator
	loginPath string
}

// NewGuard wires a guard to the session manager and navigation surface.
// loginPath is the route unauthenticated users are sent to.
func NewGuard(manager *Manager, nav Navigator, loginPath string) *Guard {
	g := &Guard{
		state:     StateUnknown,
		manager:   manager,
		nav:       nav,
		loginPath: loginPath,
	}
	manager.Subscribe(g.onSessionChange)
	return g
}

// State returns the guard's current state without side effects.
func (g *Guard) State() AuthState {
	g.lock.Lock()
	defer g.lock.Unlock()
	return g.state
}

// Check is consulted on every navigation. The first call hydrates the session
// from disk; entering StateUnauthenticated away from the login route triggers
// a redirect.
func (g *Guard) Check() AuthState {
	g.lock.Lock()

	if g.state == StateUnknown {
		g.manager.Hydrate()
		if g.manager.Current().Authenticated() {
			g.transition(StateAuthenticated)
		} else {
			g.transition(StateUnauthenticated)
		}
	}

	state := g.state
	g.lock.Unlock()
	return state
}

func (g *Guard) onSessionChange(session models.Session) {
	g.lock.Lock()
	defer g.lock.Unlock()

	if session.Authenticated() {
		g.transition(StateAuthenticated)
	} else if g.state != StateUnknown {
		// A logout before the first observation leaves the guard unknown;
		// the next Check resolves it.
		g.transition(StateUnauthenticated)
	}
}

// transition moves the state machine and performs the redirect side effect.
// Callers must hold the lock.
func (g *Guard) transition(next AuthState) {
	if g.state == next {
		return
	}

	logrus.WithFields(logrus.Fields{
		"from": g.state.String(),
		"to":   next.String(),
	}).Debugln("Auth state transition")

	g.state = next

	if next == StateUnauthenticated && g.nav.CurrentPath() != g.loginPath {
		g.nav.Navigate(g.loginPath)
	}
}
