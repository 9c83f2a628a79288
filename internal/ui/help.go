package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	theme := ThemeFor(m.view.Theme)
	styles := theme.Styles()

	sections := []helpSection{
		{
			title: "Navigation",
			items: []helpItem{
				{"h/j/k/l", "Move between cards"},
				{"arrows", "Move between cards"},
				{"g/G", "First/last card"},
				{"pgup/pgdown", "Scroll"},
			},
		},
		{
			title: "Search",
			items: []helpItem{
				{"/", "Search by name"},
				{"esc", "Leave/clear search"},
			},
		},
		{
			title: "Cards",
			items: []helpItem{
				{"enter/space", "View more / hide details"},
				{"y", "Copy email"},
				{"o", "Open website"},
			},
		},
		{
			title: "General",
			items: []helpItem{
				{"T", "Toggle theme"},
				{"?", "Toggle help"},
				{"q/ctrl+c", "Quit"},
			},
		},
	}

	var b strings.Builder

	b.WriteString(styles.BoldText.Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Accent)).
		Width(14)
	for i, section := range sections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")

		for _, item := range section.items {
			b.WriteString(keyStyle.Render(item.key))
			b.WriteString(styles.Text.Render(item.desc))
			b.WriteString("\n")
		}

		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.BorderFocus)).
		Padding(1, 2).
		Width(44)

	return lipgloss.Place(
		m.contentWidth(),
		m.contentHeight(),
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(lipgloss.Color(theme.Background)),
	)
}

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}
