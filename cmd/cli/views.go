package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/freelancehq/cli/internal/models"
)

func (m dashboardModel) View() string {
	if m.router.path == loginPath {
		return m.viewLogin()
	}

	navbar := m.viewNavbar()
	sidebar := m.viewSidebar()
	content := contentStyle.Render(m.viewContent())

	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, content)
	return lipgloss.JoinVertical(lipgloss.Left, navbar, body)
}

func (m dashboardModel) viewNavbar() string {
	title := "FreelanceHQ"
	if session := m.manager.Current(); session.Authenticated() {
		title = fmt.Sprintf("FreelanceHQ — %s", session.User.GetName())
	}

	bar := navbarStyle.Render(title)
	if m.width > lipgloss.Width(bar) {
		bar = navbarStyle.Width(m.width).Render(title)
	}
	return bar
}

func (m dashboardModel) viewSidebar() string {
	var b strings.Builder
	for i, item := range navItems {
		line := fmt.Sprintf("%d. %s", i+1, item.Label)
		if item.Path == m.router.path {
			b.WriteString(sidebarActiveStyle.Render("▸ " + line))
		} else {
			b.WriteString(sidebarItemStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("r refresh\nL logout\nq quit"))
	return sidebarStyle.Render(b.String())
}

func (m dashboardModel) viewContent() string {
	switch m.router.path {
	case "/":
		return m.viewDashboard()
	case "/clients":
		return m.viewClients()
	case "/projects":
		return m.viewProjects()
	case "/invoices":
		return m.viewInvoices()
	case "/billing":
		return m.viewBilling()
	}

	if strings.HasPrefix(m.router.path, "/projects/") {
		return m.viewProjectDetails()
	}

	return mutedStyle.Render("Nothing here.")
}

func (m dashboardModel) viewDashboard() string {
	if m.clients.Loading() || m.projects.Loading() || m.invoices.Loading() {
		return m.viewLoading("Loading dashboard")
	}

	var active int
	for _, project := range m.projects.Data() {
		if project.IsActive() {
			active++
		}
	}

	var outstanding int
	for _, invoice := range m.invoices.Data() {
		if invoice.IsOutstanding() {
			outstanding++
		}
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		m.viewCard("Clients", fmt.Sprintf("%d", len(m.clients.Data()))),
		m.viewCard("Active Projects", fmt.Sprintf("%d", active)),
		m.viewCard("Outstanding Invoices", fmt.Sprintf("%d", outstanding)),
	)

	sections := []string{titleStyle.Render("Dashboard"), cards,
		m.viewRecentClients(), m.viewRecentProjects(), m.viewRecentInvoices()}
	if err := firstError(m.clients.Err(), m.projects.Err(), m.invoices.Err()); err != nil {
		sections = append(sections, errorStyle.Render(err.Error()))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// recentLimit caps the per-resource sections on the dashboard, matching the
// product's web dashboard.
const recentLimit = 3

func (m dashboardModel) viewRecentClients() string {
	cards := make([]string, 0, recentLimit)
	for _, client := range m.clients.Data() {
		if len(cards) == recentLimit {
			break
		}
		detail := client.Company
		if len(detail) == 0 {
			detail = client.Email
		}
		cards = append(cards, m.viewItemCard(client.Name, mutedStyle.Render(detail)))
	}
	return m.viewRecentSection("Recent Clients", cards)
}

func (m dashboardModel) viewRecentProjects() string {
	cards := make([]string, 0, recentLimit)
	for _, project := range m.projects.Data() {
		if len(cards) == recentLimit {
			break
		}
		status := projectStatusStyle(project.Status).Render(project.Status)
		cards = append(cards, m.viewItemCard(project.Name, status))
	}
	return m.viewRecentSection("Recent Projects", cards)
}

func (m dashboardModel) viewRecentInvoices() string {
	cards := make([]string, 0, recentLimit)
	for _, invoice := range m.invoices.Data() {
		if len(cards) == recentLimit {
			break
		}
		status := invoiceStatusStyle(invoice.Status).Render(invoice.Status)
		cards = append(cards, m.viewItemCard(invoice.InvoiceNumber,
			fmt.Sprintf("$%.2f %s", invoice.Total, status)))
	}
	return m.viewRecentSection("Recent Invoices", cards)
}

func (m dashboardModel) viewRecentSection(title string, cards []string) string {
	body := mutedStyle.Render("Nothing yet.")
	if len(cards) > 0 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, headerStyle.Render(title), body)
}

func (m dashboardModel) viewCard(label, value string) string {
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		mutedStyle.Render(label),
		headerStyle.Render(value),
	))
}

// viewItemCard is the recent-item variant: the name on top, detail below.
func (m dashboardModel) viewItemCard(name, detail string) string {
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render(name),
		detail,
	))
}

func (m dashboardModel) viewClients() string {
	if m.clients.Loading() {
		return m.viewLoading("Loading clients")
	}
	if err := m.clients.Err(); err != nil {
		return errorStyle.Render(err.Error())
	}

	clients := m.clients.Data()
	if len(clients) == 0 {
		return mutedStyle.Render("No clients yet.")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Clients"))
	b.WriteString("\n")
	for i, client := range clients {
		line := client.Name
		if len(client.Company) > 0 {
			line += " (" + client.Company + ")"
		}
		if len(client.Email) > 0 {
			line += "  " + client.Email
		}
		b.WriteString(m.viewRow(i, line))
	}
	return b.String()
}

func (m dashboardModel) viewProjects() string {
	if m.projects.Loading() {
		return m.viewLoading("Loading projects")
	}
	if err := m.projects.Err(); err != nil {
		return errorStyle.Render(err.Error())
	}

	projects := m.projects.Data()
	if len(projects) == 0 {
		return mutedStyle.Render("No projects yet.")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Projects"))
	b.WriteString("\n")
	for i, project := range projects {
		status := projectStatusStyle(project.Status).Render(project.Status)
		b.WriteString(m.viewRow(i, fmt.Sprintf("%s [%s]", project.Name, status)))
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("enter to open a project"))
	return b.String()
}

func (m dashboardModel) viewProjectDetails() string {
	if m.project.Loading() {
		return m.viewLoading("Loading project")
	}
	if err := m.project.Err(); err != nil {
		return errorStyle.Render(err.Error())
	}

	project := m.project.Data()
	if project == nil {
		return mutedStyle.Render("Project not found.")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(project.Name))
	b.WriteString("\n")
	b.WriteString(projectStatusStyle(project.Status).Render(project.Status))
	b.WriteString("\n")
	if len(project.Description) > 0 {
		b.WriteString(mutedStyle.Render(project.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(headerStyle.Render("Tasks"))
	b.WriteString("\n")
	if len(project.Tasks) == 0 {
		b.WriteString(mutedStyle.Render("No tasks."))
	}
	for _, task := range project.Tasks {
		b.WriteString(viewTask(task))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("esc to go back"))
	return b.String()
}

func viewTask(task models.Task) string {
	if task.Status == "done" {
		return "☑ " + completedStyle.Render(task.Title)
	}
	return "☐ " + task.Title
}

func (m dashboardModel) viewInvoices() string {
	if m.invoices.Loading() {
		return m.viewLoading("Loading invoices")
	}
	if err := m.invoices.Err(); err != nil {
		return errorStyle.Render(err.Error())
	}

	invoices := m.invoices.Data()
	if len(invoices) == 0 {
		return mutedStyle.Render("No invoices yet.")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Invoices"))
	b.WriteString("\n")
	for i, invoice := range invoices {
		status := invoiceStatusStyle(invoice.Status).Render(invoice.Status)
		b.WriteString(m.viewRow(i, fmt.Sprintf("%s  $%.2f [%s]", invoice.InvoiceNumber, invoice.Total, status)))
	}
	return b.String()
}

func (m dashboardModel) viewBilling() string {
	if m.invoices.Loading() {
		return m.viewLoading("Loading billing")
	}
	if err := m.invoices.Err(); err != nil {
		return errorStyle.Render(err.Error())
	}

	var paid, outstanding float64
	for _, invoice := range m.invoices.Data() {
		if invoice.IsOutstanding() {
			outstanding += invoice.Total
		} else {
			paid += invoice.Total
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Billing"),
		lipgloss.JoinHorizontal(lipgloss.Top,
			m.viewCard("Collected", fmt.Sprintf("$%.2f", paid)),
			m.viewCard("Outstanding", fmt.Sprintf("$%.2f", outstanding)),
		),
	)
}

func (m dashboardModel) viewLogin() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Sign in to FreelanceHQ"))
	b.WriteString("\n\n")
	b.WriteString(m.emailInput.View())
	b.WriteString("\n")
	b.WriteString(m.passwordInput.View())
	b.WriteString("\n\n")
	if m.loggingIn {
		b.WriteString(m.spinner.View() + " Signing in...")
	} else if len(m.loginErr) > 0 {
		b.WriteString(errorStyle.Render(m.loginErr))
	} else {
		b.WriteString(mutedStyle.Render("enter to sign in, ctrl+c to quit"))
	}

	box := cardStyle.Render(b.String())
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

func (m dashboardModel) viewRow(index int, line string) string {
	if index == m.cursor {
		return selectedRowStyle.Render("▸ "+line) + "\n"
	}
	return "  " + line + "\n"
}

func (m dashboardModel) viewLoading(label string) string {
	return m.spinner.View() + " " + mutedStyle.Render(label+"...")
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
