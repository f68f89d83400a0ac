package main

import (
	"github.com/charmbracelet/lipgloss"
)

// Shared styles for the CLI package
// All terminal colors and styling definitions are centralized here
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#C77B3F")).
			MarginBottom(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#A1662F"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3B82F6"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	// Resource status styles
	paidStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981"))

	overdueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444")).
			Bold(true)

	pendingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F59E0B"))

	completedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")).
			Strikethrough(true)

	activeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981"))

	// Dashboard shell styles
	navbarStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#A1662F")).
			Padding(0, 1)

	sidebarStyle = lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(lipgloss.Color("#A1662F"))

	sidebarItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#9CA3AF"))

	sidebarActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#C77B3F"))

	contentStyle = lipgloss.NewStyle().
			Padding(1, 2)

	cardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#C77B3F")).
			Padding(0, 2).
			MarginRight(2)

	selectedRowStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#C77B3F"))
)

// invoiceStatusStyle picks the style for an invoice status badge.
func invoiceStatusStyle(status string) lipgloss.Style {
	switch status {
	case "paid":
		return paidStyle
	case "overdue":
		return overdueStyle
	default:
		return pendingStyle
	}
}

// projectStatusStyle picks the style for a project status badge.
func projectStatusStyle(status string) lipgloss.Style {
	if status == "completed" {
		return completedStyle
	}
	return activeStyle
}
