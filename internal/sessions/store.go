// Package sessions holds the client's login session: a file-backed store that
// survives restarts, an observable in-memory state, and the route guard that
// decides whether navigation is allowed.
package sessions

import (
	"os"
	"os/user"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/freelancehq/cli/internal/models"
)

const storedSessionVersion = 1

// Store persists the session between runs. Load is fail-closed: any read or
// decode problem yields nil rather than an error, so a corrupt file can never
// keep the user from reaching the login screen.
type Store interface {
	Save(session models.Session) error
	Load() *models.StoredSession
	Clear() error
}

// FileStore keeps the session as a YAML file readable only by the owner.
type FileStore struct {
	lock sync.Mutex
	path string
}

// NewFileStore returns a store writing to path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultSessionPath resolves the well-known session file location under the
// user's config directory.
func DefaultSessionPath() string {
	usr, err := user.Current()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to get current user")
	}
	return filepath.Join(usr.HomeDir, ".config", "freelancehq", "session.yaml")
}

// Save serializes the session and overwrites any prior value.
func (f *FileStore) Save(session models.Session) error {
	f.lock.Lock()
	defer f.lock.Unlock()

	stored := models.StoredSession{
		Version:   storedSessionVersion,
		User:      session.User,
		Token:     session.Token,
		Timestamp: time.Now().UTC(),
	}

	data, err := yaml.Marshal(&stored)
	if err != nil {
		// The session is always locally constructed, so this can only be a
		// programmer error.
		return err
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0700); err != nil {
		return err
	}

	return os.WriteFile(f.path, data, 0600)
}

// Clear removes the session file. Calling it when nothing is stored is a
// no-op.
func (f *FileStore) Clear() error {
	f.lock.Lock()
	defer f.lock.Unlock()

	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Load reads and deserializes the stored session. Missing file, read errors,
// malformed YAML and incomplete credential pairs all collapse to nil.
func (f *FileStore) Load() *models.StoredSession {
	f.lock.Lock()
	defer f.lock.Unlock()

	stored, err := f.load()
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"path": f.path,
		}).Debugln("Discarding unreadable stored session")
		return nil
	}
	return stored
}

func (f *FileStore) load() (*models.StoredSession, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, err
	}

	var stored models.StoredSession
	if err := yaml.Unmarshal(data, &stored); err != nil {
		return nil, err
	}

	// A partial pair is as good as no session.
	if stored.User == nil || len(stored.Token) == 0 {
		return nil, nil
	}

	return &stored, nil
}
