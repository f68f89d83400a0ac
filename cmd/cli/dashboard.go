package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/freelancehq/cli/internal/api"
	"github.com/freelancehq/cli/internal/models"
	"github.com/freelancehq/cli/internal/sessions"
)

const loginPath = "/login"

// navItems drive the sidebar. Paths double as the router's addresses.
var navItems = []struct {
	Label string
	Path  string
}{
	{"Dashboard", "/"},
	{"Clients", "/clients"},
	{"Projects", "/projects"},
	{"Invoices", "/invoices"},
	{"Billing", "/billing"},
}

// router tracks the active view path. It satisfies sessions.Navigator so the
// route guard can redirect to the login view; all mutation happens on the
// bubbletea update goroutine.
type router struct {
	path string
}

func (r *router) CurrentPath() string { return r.path }

func (r *router) Navigate(path string) { r.path = path }

type clientsLoadedMsg struct {
	gen     uint64
	clients []models.Client
	err     error
}

type projectsLoadedMsg struct {
	gen      uint64
	projects []models.Project
	err      error
}

type invoicesLoadedMsg struct {
	gen      uint64
	invoices []models.Invoice
	err      error
}

type projectLoadedMsg struct {
	gen     uint64
	project *models.Project
	err     error
}

type loginSuccessMsg struct {
	user  models.User
	token string
}

type loginFailedMsg struct {
	detail string
}

type dashboardModel struct {
	client  *api.Client
	manager *sessions.Manager
	guard   *sessions.Guard
	router  *router

	width  int
	height int

	spinner spinner.Model

	clients  *api.Loader[[]models.Client]
	projects *api.Loader[[]models.Project]
	invoices *api.Loader[[]models.Invoice]
	project  *api.Loader[*models.Project]

	cursor          int
	selectedProject int

	emailInput    textinput.Model
	passwordInput textinput.Model
	loginFocus    int
	loggingIn     bool
	loginErr      string
}

func newDashboardModel(client *api.Client, manager *sessions.Manager) dashboardModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#C77B3F"))

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.Prompt = "Email    > "
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.Prompt = "Password > "
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	nav := &router{path: "/"}

	return dashboardModel{
		client:        client,
		manager:       manager,
		guard:         sessions.NewGuard(manager, nav, loginPath),
		router:        nav,
		spinner:       s,
		clients:       &api.Loader[[]models.Client]{},
		projects:      &api.Loader[[]models.Project]{},
		invoices:      &api.Loader[[]models.Invoice]{},
		project:       &api.Loader[*models.Project]{},
		emailInput:    email,
		passwordInput: password,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	// First check hydrates the persisted session and redirects to the login
	// view when no credentials survive it.
	m.guard.Check()
	return tea.Batch(m.spinner.Tick, m.loadFor(m.router.path))
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.router.path == loginPath {
			return m.updateLogin(msg)
		}
		return m.updateKeys(msg)

	case clientsLoadedMsg:
		m.clients.Apply(msg.gen, msg.clients, msg.err)
		return m, nil

	case projectsLoadedMsg:
		if m.projects.Apply(msg.gen, msg.projects, msg.err) {
			m.clampCursor()
		}
		return m, nil

	case invoicesLoadedMsg:
		m.invoices.Apply(msg.gen, msg.invoices, msg.err)
		return m, nil

	case projectLoadedMsg:
		m.project.Apply(msg.gen, msg.project, msg.err)
		return m, nil

	case loginSuccessMsg:
		m.loggingIn = false
		m.loginErr = ""
		m.passwordInput.SetValue("")
		// Guard observes the session change and flips to authenticated.
		m.manager.SetUser(&msg.user, msg.token)
		return m.navigate("/")

	case loginFailedMsg:
		m.loggingIn = false
		m.loginErr = msg.detail
		m.passwordInput.SetValue("")
		return m, nil
	}

	return m, nil
}

func (m dashboardModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {

	case "q":
		return m, tea.Quit

	case "1", "2", "3", "4", "5":
		idx, _ := strconv.Atoi(msg.String())
		return m.navigate(navItems[idx-1].Path)

	case "r":
		return m, m.loadFor(m.router.path)

	case "L":
		// Clearing the session makes the guard push us to the login view.
		m.manager.Logout()
		m.resetLoginForm()
		return m, nil

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		m.cursor++
		m.clampCursor()
		return m, nil

	case "enter":
		if m.router.path == "/projects" {
			projects := m.projects.Data()
			if m.cursor < len(projects) {
				m.selectedProject = projects[m.cursor].ID
				return m.navigate(fmt.Sprintf("/projects/%d", m.selectedProject))
			}
		}
		return m, nil

	case "esc":
		if strings.HasPrefix(m.router.path, "/projects/") {
			m.project.Cancel()
			return m.navigate("/projects")
		}
		return m, nil
	}

	return m, nil
}

func (m dashboardModel) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {

	case "tab", "shift+tab", "up", "down":
		m.loginFocus = (m.loginFocus + 1) % 2
		if m.loginFocus == 0 {
			m.passwordInput.Blur()
			return m, m.emailInput.Focus()
		}
		m.emailInput.Blur()
		return m, m.passwordInput.Focus()

	case "enter":
		if m.loggingIn {
			return m, nil
		}
		if m.loginFocus == 0 {
			m.loginFocus = 1
			m.emailInput.Blur()
			return m, m.passwordInput.Focus()
		}
		m.loggingIn = true
		m.loginErr = ""
		return m, m.submitLogin()
	}

	var cmd tea.Cmd
	if m.loginFocus == 0 {
		m.emailInput, cmd = m.emailInput.Update(msg)
	} else {
		m.passwordInput, cmd = m.passwordInput.Update(msg)
	}
	return m, cmd
}

// navigate switches the active view and kicks off its data loads. The guard
// runs on every transition so protected views bounce straight to login.
func (m dashboardModel) navigate(path string) (tea.Model, tea.Cmd) {
	m.cursor = 0
	m.router.Navigate(path)
	if m.guard.Check() != sessions.StateAuthenticated && m.router.path != loginPath {
		m.router.Navigate(loginPath)
	}
	return m, m.loadFor(m.router.path)
}

func (m dashboardModel) loadFor(path string) tea.Cmd {
	if m.guard.State() != sessions.StateAuthenticated {
		return nil
	}

	switch path {
	case "/":
		return tea.Batch(m.loadClients(), m.loadProjects(), m.loadInvoices())
	case "/clients":
		return m.loadClients()
	case "/projects":
		return m.loadProjects()
	case "/invoices", "/billing":
		return m.loadInvoices()
	}

	if strings.HasPrefix(path, "/projects/") {
		return m.loadProject(m.selectedProject)
	}

	return nil
}

func (m dashboardModel) loadClients() tea.Cmd {
	gen := m.clients.Begin()
	client := m.client
	return func() tea.Msg {
		data, err := client.ListClients(context.Background())
		return clientsLoadedMsg{gen: gen, clients: data, err: err}
	}
}

func (m dashboardModel) loadProjects() tea.Cmd {
	gen := m.projects.Begin()
	client := m.client
	return func() tea.Msg {
		data, err := client.ListProjects(context.Background())
		return projectsLoadedMsg{gen: gen, projects: data, err: err}
	}
}

func (m dashboardModel) loadInvoices() tea.Cmd {
	gen := m.invoices.Begin()
	client := m.client
	return func() tea.Msg {
		data, err := client.ListInvoices(context.Background())
		return invoicesLoadedMsg{gen: gen, invoices: data, err: err}
	}
}

func (m dashboardModel) loadProject(id int) tea.Cmd {
	gen := m.project.Begin()
	client := m.client
	return func() tea.Msg {
		data, err := client.GetProject(context.Background(), id)
		return projectLoadedMsg{gen: gen, project: data, err: err}
	}
}

func (m dashboardModel) submitLogin() tea.Cmd {
	client := m.client
	email := m.emailInput.Value()
	password := m.passwordInput.Value()
	return func() tea.Msg {
		resp, err := client.Login(context.Background(), email, password)
		if err != nil {
			return loginFailedMsg{detail: err.Error()}
		}
		return loginSuccessMsg{user: resp.User, token: resp.Token}
	}
}

func (m *dashboardModel) resetLoginForm() {
	m.loginFocus = 0
	m.loggingIn = false
	m.loginErr = ""
	m.emailInput.SetValue("")
	m.passwordInput.SetValue("")
	m.passwordInput.Blur()
	m.emailInput.Focus()
}

func (m *dashboardModel) clampCursor() {
	var max int
	switch m.router.path {
	case "/clients":
		max = len(m.clients.Data())
	case "/projects":
		max = len(m.projects.Data())
	case "/invoices":
		max = len(m.invoices.Data())
	}
	if max == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= max {
		m.cursor = max - 1
	}
}

func runDashboard() error {
	model := newDashboardModel(apiClient, sessionManager)

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("dashboard failed: %w", err)
	}

	return nil
}
