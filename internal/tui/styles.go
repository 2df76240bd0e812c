package tui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles used by the views.
type Styles struct {
	Nav       lipgloss.Style
	NavItem   lipgloss.Style
	NavActive lipgloss.Style
	Card      lipgloss.Style
	Title     lipgloss.Style
	Body      lipgloss.Style
	Label     lipgloss.Style
	Error     lipgloss.Style
	Button    lipgloss.Style
	Secondary lipgloss.Style
	Hint      lipgloss.Style
}

// DefaultStyles mirrors the web palette: dark nav bar, indigo buttons, red
// inline errors.
func DefaultStyles() Styles {
	return Styles{
		Nav: lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Padding(0, 2),
		NavItem: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#1F2937")).
			Padding(0, 1),
		NavActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A5B4FC")).
			Background(lipgloss.Color("#1F2937")).
			Bold(true).
			Padding(0, 1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#6366F1")).
			Padding(1, 3).
			MarginTop(1),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#111827")).
			MarginBottom(1),
		Body: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#374151")),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#374151")).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#DC2626")),
		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#4F46E5")).
			Bold(true).
			Padding(0, 2),
		Secondary: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#6B7280")).
			Bold(true).
			Padding(0, 2),
		Hint: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9CA3AF")).
			Italic(true),
	}
}
