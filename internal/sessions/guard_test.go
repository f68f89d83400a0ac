package sessions

import (
	"testing"

	"github.com/freelancehq/cli/internal/models"
)

type fakeNavigator struct {
	path      string
	redirects []string
}

func (f *fakeNavigator) CurrentPath() string { return f.path }

func (f *fakeNavigator) Navigate(path string) {
	f.path = path
	f.redirects = append(f.redirects, path)
}

const loginPath = "/login"

func TestGuard_EmptyStoreRedirectsToLogin(t *testing.T) {
	manager := NewManager(tempStore(t))
	nav := &fakeNavigator{path: "/clients"}
	guard := NewGuard(manager, nav, loginPath)

	if guard.State() != StateUnknown {
		t.Fatalf("Expected initial state unknown, got %s", guard.State())
	}

	state := guard.Check()
	if state != StateUnauthenticated {
		t.Fatalf("Expected unauthenticated, got %s", state)
	}
	if len(nav.redirects) != 1 || nav.redirects[0] != loginPath {
		t.Errorf("Expected one redirect to %s, got %v", loginPath, nav.redirects)
	}
}

func TestGuard_LoginTransitionsToAuthenticated(t *testing.T) {
	manager := NewManager(tempStore(t))
	nav := &fakeNavigator{path: "/clients"}
	guard := NewGuard(manager, nav, loginPath)

	guard.Check() // unknown -> unauthenticated, redirect to /login
	redirects := len(nav.redirects)

	manager.SetUser(&models.User{ID: 1, Email: "a@b.com"}, "tok")

	if guard.State() != StateAuthenticated {
		t.Fatalf("Expected authenticated after SetUser, got %s", guard.State())
	}

	// Entering the authenticated state performs no forced redirect.
	if len(nav.redirects) != redirects {
		t.Errorf("Expected no redirect on login, got %v", nav.redirects)
	}
	if state := guard.Check(); state != StateAuthenticated {
		t.Errorf("Expected later check to stay authenticated, got %s", state)
	}
}

func TestGuard_LogoutRedirectsAwayFromProtectedRoute(t *testing.T) {
	manager := NewManager(tempStore(t))
	nav := &fakeNavigator{path: "/invoices"}
	guard := NewGuard(manager, nav, loginPath)

	manager.SetUser(&models.User{ID: 1, Email: "a@b.com"}, "tok")
	if guard.Check() != StateAuthenticated {
		t.Fatal("Expected authenticated state before logout")
	}

	nav.path = "/invoices"
	manager.Logout()

	if guard.State() != StateUnauthenticated {
		t.Fatalf("Expected unauthenticated after logout, got %s", guard.State())
	}
	if nav.path != loginPath {
		t.Errorf("Expected redirect to %s, current path is %s", loginPath, nav.path)
	}
}

func TestGuard_NoRedirectWhenAlreadyOnLogin(t *testing.T) {
	manager := NewManager(tempStore(t))
	nav := &fakeNavigator{path: loginPath}
	guard := NewGuard(manager, nav, loginPath)

	guard.Check()

	if len(nav.redirects) != 0 {
		t.Errorf("Expected no redirect while on login route, got %v", nav.redirects)
	}
}

func TestGuard_HydratesStoredSessionOnFirstCheck(t *testing.T) {
	store := tempStore(t)
	if err := store.Save(models.Session{
		User:  &models.User{ID: 1, Email: "a@b.com"},
		Token: "tok123",
	}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	manager := NewManager(store)
	nav := &fakeNavigator{path: "/"}
	guard := NewGuard(manager, nav, loginPath)

	if state := guard.Check(); state != StateAuthenticated {
		t.Fatalf("Expected authenticated from stored session, got %s", state)
	}
	if len(nav.redirects) != 0 {
		t.Errorf("Expected no redirect, got %v", nav.redirects)
	}

	current := manager.Current()
	if current.Token != "tok123" || current.User.Email != "a@b.com" {
		t.Errorf("Hydrated session does not match stored value: %+v", current)
	}
}
