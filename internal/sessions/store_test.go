package sessions

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/freelancehq/cli/internal/models"
)

func tempStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "session.yaml"))
}

func TestFileStore_SaveLoadRoundTrip(t *testing.T) {
	store := tempStore(t)

	session := models.Session{
		User:  &models.User{ID: 1, Email: "a@b.com", Name: "Ada"},
		Token: "tok123",
	}

	if err := store.Save(session); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	stored := store.Load()
	if stored == nil {
		t.Fatal("Expected stored session, got nil")
	}

	if stored.Token != "tok123" {
		t.Errorf("Expected token tok123, got %s", stored.Token)
	}
	if stored.User == nil || stored.User.ID != 1 || stored.User.Email != "a@b.com" || stored.User.Name != "Ada" {
		t.Errorf("Stored user does not match saved user: %+v", stored.User)
	}
	if stored.Version != storedSessionVersion {
		t.Errorf("Expected version %d, got %d", storedSessionVersion, stored.Version)
	}
}

func TestFileStore_LoadUntouched(t *testing.T) {
	store := tempStore(t)

	if stored := store.Load(); stored != nil {
		t.Errorf("Expected nil on untouched store, got %+v", stored)
	}
}

func TestFileStore_ClearIsIdempotent(t *testing.T) {
	store := tempStore(t)

	// Clearing an empty store is a no-op, not an error.
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear on empty store failed: %v", err)
	}

	session := models.Session{User: &models.User{ID: 2, Email: "b@c.com"}, Token: "t"}
	if err := store.Save(session); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Second clear failed: %v", err)
	}

	if stored := store.Load(); stored != nil {
		t.Errorf("Expected nil after clear, got %+v", stored)
	}
}

func TestFileStore_LoadFailsClosed(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "garbage bytes", payload: "{{{{not yaml at all"},
		{name: "wrong shape", payload: "- 1\n- 2\n- 3\n"},
		{name: "empty file", payload: ""},
		{name: "token without user", payload: "version: 1\ntoken: tok\n"},
		{name: "user without token", payload: "version: 1\nuser:\n  id: 1\n  email: a@b.com\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "session.yaml")
			if err := os.WriteFile(path, []byte(tt.payload), 0600); err != nil {
				t.Fatalf("Failed to write fixture: %v", err)
			}

			store := NewFileStore(path)
			if stored := store.Load(); stored != nil {
				t.Errorf("Expected nil for %s, got %+v", tt.name, stored)
			}
		})
	}
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	store := tempStore(t)

	first := models.Session{User: &models.User{ID: 1, Email: "a@b.com"}, Token: "one"}
	second := models.Session{User: &models.User{ID: 2, Email: "c@d.com"}, Token: "two"}

	if err := store.Save(first); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Save(second); err != nil {
		t.Fatalf("Second save failed: %v", err)
	}

	stored := store.Load()
	if stored == nil {
		t.Fatal("Expected stored session, got nil")
	}
	if stored.Token != "two" || stored.User.ID != 2 {
		t.Errorf("Expected second session to win, got %+v", stored)
	}
}
