package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/freelancehq/cli/internal/api"
	"github.com/freelancehq/cli/internal/models"
	"github.com/freelancehq/cli/internal/sessions"
)

func testDashboardModel(t *testing.T) dashboardModel {
	t.Helper()
	store := sessions.NewFileStore(filepath.Join(t.TempDir(), "session.yaml"))
	return newDashboardModel(nil, sessions.NewManager(store))
}

func TestDashboardViewShowsCountsAndRecentSections(t *testing.T) {
	m := testDashboardModel(t)

	clients := []models.Client{
		{ID: 1, Name: "Acme Corp"},
		{ID: 2, Name: "Globex"},
		{ID: 3, Name: "Initech"},
		{ID: 4, Name: "Umbrella Ltd"},
	}
	projects := []models.Project{
		{ID: 1, Name: "Website Redesign", Status: "active"},
		{ID: 2, Name: "Brand Refresh", Status: "completed"},
		{ID: 3, Name: "Mobile App", Status: "active"},
		{ID: 4, Name: "SEO Audit", Status: "active"},
	}
	invoices := []models.Invoice{
		{ID: 1, InvoiceNumber: "INV-101", Total: 100.50, Status: "sent"},
		{ID: 2, InvoiceNumber: "INV-102", Total: 150.50, Status: "overdue"},
	}

	m.clients.Apply(m.clients.Begin(), clients, nil)
	m.projects.Apply(m.projects.Begin(), projects, nil)
	m.invoices.Apply(m.invoices.Begin(), invoices, nil)

	out := m.viewDashboard()

	for _, section := range []string{"Recent Clients", "Recent Projects", "Recent Invoices"} {
		if !strings.Contains(out, section) {
			t.Errorf("dashboard missing %q section", section)
		}
	}

	for _, name := range []string{"Acme Corp", "Globex", "Initech", "INV-101", "INV-102"} {
		if !strings.Contains(out, name) {
			t.Errorf("dashboard missing recent item %q", name)
		}
	}

	// Recent sections show at most three items
	if strings.Contains(out, "Umbrella Ltd") {
		t.Error("dashboard shows a fourth recent client")
	}
	if strings.Contains(out, "SEO Audit") {
		t.Error("dashboard shows a fourth recent project")
	}

	if !strings.Contains(out, "Outstanding Invoices") {
		t.Error("dashboard missing outstanding invoices card")
	}
	// The card shows the unpaid count, not a summed dollar total
	if strings.Contains(out, "$251.00") {
		t.Error("outstanding card shows a dollar total instead of a count")
	}
}

func TestDashboardViewEmptyRecentSections(t *testing.T) {
	m := testDashboardModel(t)

	m.clients.Apply(m.clients.Begin(), nil, nil)
	m.projects.Apply(m.projects.Begin(), nil, nil)
	m.invoices.Apply(m.invoices.Begin(), nil, nil)

	out := m.viewDashboard()

	if !strings.Contains(out, "Recent Clients") {
		t.Error("dashboard missing recent clients section when empty")
	}
	if !strings.Contains(out, "Nothing yet.") {
		t.Error("empty recent sections missing placeholder")
	}
}

func TestApiCommandErrorKeepsServerDetail(t *testing.T) {
	err := apiCommandError(&api.StatusError{Code: 401, Detail: "Invalid token."})
	if err == nil || err.Error() != "Invalid token." {
		t.Errorf("expected verbatim detail, got %v", err)
	}
}

func TestApiCommandErrorFallsBackToStatusCode(t *testing.T) {
	err := apiCommandError(&api.StatusError{Code: 502})
	if err == nil || err.Error() != "request failed with status 502" {
		t.Errorf("expected status fallback, got %v", err)
	}
}
