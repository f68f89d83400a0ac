package sessions

import (
	"testing"

	"github.com/freelancehq/cli/internal/models"
)

func TestManager_SetUserUpdatesStateAndStore(t *testing.T) {
	store := tempStore(t)
	manager := NewManager(store)

	user := &models.User{ID: 1, Email: "a@b.com"}
	manager.SetUser(user, "tok123")

	current := manager.Current()
	if !current.Authenticated() {
		t.Fatal("Expected authenticated session after SetUser")
	}
	if current.Token != "tok123" || current.User.Email != "a@b.com" {
		t.Errorf("Unexpected session: %+v", current)
	}

	stored := store.Load()
	if stored == nil {
		t.Fatal("Expected session to be persisted")
	}
	if stored.Token != "tok123" || stored.User.ID != 1 {
		t.Errorf("Persisted session does not match: %+v", stored)
	}
}

func TestManager_LogoutClearsStateAndStore(t *testing.T) {
	store := tempStore(t)
	manager := NewManager(store)

	manager.SetUser(&models.User{ID: 1, Email: "a@b.com"}, "tok123")
	manager.Logout()

	current := manager.Current()
	if current.Authenticated() {
		t.Errorf("Expected empty session after logout, got %+v", current)
	}
	if current.User != nil || len(current.Token) != 0 {
		t.Errorf("Expected both fields cleared, got %+v", current)
	}

	if stored := store.Load(); stored != nil {
		t.Errorf("Expected cleared store, got %+v", stored)
	}
}

func TestManager_HydrateAdoptsStoredSession(t *testing.T) {
	store := tempStore(t)
	if err := store.Save(models.Session{
		User:  &models.User{ID: 1, Email: "a@b.com"},
		Token: "tok123",
	}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	manager := NewManager(store)

	// Session starts empty; hydration pulls in the stored pair.
	if manager.Current().Authenticated() {
		t.Fatal("Expected empty session before hydrate")
	}

	manager.Hydrate()

	current := manager.Current()
	if !current.Authenticated() {
		t.Fatal("Expected hydrated session")
	}
	if current.Token != "tok123" || current.User.ID != 1 || current.User.Email != "a@b.com" {
		t.Errorf("Hydrated session does not match stored value: %+v", current)
	}
}

func TestManager_HydrateEmptyStoreLeavesSessionEmpty(t *testing.T) {
	manager := NewManager(tempStore(t))
	manager.Hydrate()

	if manager.Current().Authenticated() {
		t.Error("Expected empty session after hydrating empty store")
	}
}

func TestManager_HydrateRunsOnce(t *testing.T) {
	store := tempStore(t)
	manager := NewManager(store)
	manager.Hydrate()

	// A session written after the first hydrate must not be adopted; only
	// login mutates an already-hydrated state.
	if err := store.Save(models.Session{
		User:  &models.User{ID: 9, Email: "x@y.com"},
		Token: "late",
	}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	manager.Hydrate()
	if manager.Current().Authenticated() {
		t.Error("Expected second hydrate to be a no-op")
	}
}

func TestManager_SubscribersNotifiedOnChange(t *testing.T) {
	manager := NewManager(tempStore(t))

	var seen []models.Session
	cancel := manager.Subscribe(func(s models.Session) {
		seen = append(seen, s)
	})

	manager.SetUser(&models.User{ID: 1, Email: "a@b.com"}, "tok")
	manager.Logout()

	if len(seen) != 2 {
		t.Fatalf("Expected 2 notifications, got %d", len(seen))
	}
	if !seen[0].Authenticated() {
		t.Error("Expected first notification to carry the session")
	}
	if seen[1].Authenticated() {
		t.Error("Expected second notification to be empty")
	}

	cancel()
	manager.SetUser(&models.User{ID: 2, Email: "b@c.com"}, "tok2")

	if len(seen) != 2 {
		t.Errorf("Expected no notifications after cancel, got %d", len(seen))
	}
}
