package sessions

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/freelancehq/cli/internal/models"
)

// Manager is the single owner of the in-memory session. Anyone may read it;
// mutation happens only through SetUser and Logout, which write through to
// the backing store. Observers are notified before the (slower) persistence
// side effect so the UI reacts immediately.
type Manager struct {
	lock     sync.Mutex
	store    Store
	current  models.Session
	hydrated bool
	subs     map[int]func(models.Session)
	nextSub  int
}

// NewManager returns a manager starting with an empty session.
func NewManager(store Store) *Manager {
	return &Manager{
		store: store,
		subs:  make(map[int]func(models.Session)),
	}
}

// Current returns the session as of now.
func (m *Manager) Current() models.Session {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.current
}

// Subscribe registers fn to run on every session change. The returned
// function cancels the subscription.
func (m *Manager) Subscribe(fn func(models.Session)) func() {
	m.lock.Lock()
	defer m.lock.Unlock()

	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn

	return func() {
		m.lock.Lock()
		defer m.lock.Unlock()
		delete(m.subs, id)
	}
}

// SetUser replaces the session with the given pair and persists it.
func (m *Manager) SetUser(user *models.User, token string) {
	session := models.Session{User: user, Token: token}

	m.lock.Lock()
	m.current = session
	m.hydrated = true
	observers := m.observers()
	m.lock.Unlock()

	for _, fn := range observers {
		fn(session)
	}

	if err := m.store.Save(session); err != nil {
		logrus.WithError(err).Errorln("Failed to persist session")
	}
}

// Logout clears the session and the backing store.
func (m *Manager) Logout() {
	logrus.Debugln("Clearing local session")

	m.lock.Lock()
	m.current = models.Session{}
	m.hydrated = true
	observers := m.observers()
	m.lock.Unlock()

	for _, fn := range observers {
		fn(models.Session{})
	}

	if err := m.store.Clear(); err != nil {
		logrus.WithError(err).Errorln("Failed to clear stored session")
	}
}

// Hydrate adopts the stored session, once. Subsequent calls are no-ops, as is
// hydration after an explicit SetUser or Logout.
func (m *Manager) Hydrate() {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.hydrated {
		return
	}
	m.hydrated = true

	stored := m.store.Load()
	if stored == nil {
		return
	}

	session := stored.Session()
	if !session.Authenticated() {
		return
	}

	logrus.WithFields(logrus.Fields{
		"user": session.User.Email,
	}).Debugln("Restored session from disk")

	m.current = session
}

// observers snapshots the subscriber list. Callers must hold the lock.
func (m *Manager) observers() []func(models.Session) {
	fns := make([]func(models.Session), 0, len(m.subs))
	for _, fn := range m.subs {
		fns = append(fns, fn)
	}
	return fns
}
