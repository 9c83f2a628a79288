package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderMain renders the Ready screen: header, search, cards, footer.
func (m Model) renderMain() string {
	theme := ThemeFor(m.view.Theme)
	width := m.contentWidth()

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderSearchBar())
	b.WriteString("\n")
	b.WriteString(NewBgStyle(theme.Background).Spaces(width))
	b.WriteString("\n")
	b.WriteString(m.renderCards())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderHeader renders the title bar with the theme toggle on the right.
func (m Model) renderHeader() string {
	theme := ThemeFor(m.view.Theme)
	styles := theme.Styles().WithBackground(theme.Surface)
	bg := NewBgStyle(theme.Surface)
	width := m.contentWidth()

	title := bg.Spaces(1) + bg.Render(directoryTitle, styles.Title)
	toggle := styles.Button.Render(ThemeToggleLabel(m.view.Theme)) + bg.Spaces(1)

	return bg.FillLine(bg.Between(title, toggle, width), width)
}

// renderSearchBar renders the search input bound to the query.
func (m Model) renderSearchBar() string {
	theme := ThemeFor(m.view.Theme)
	bg := NewBgStyle(theme.Surface)
	width := m.contentWidth()

	return bg.FillLine(bg.Spaces(1)+m.search.View(), width)
}

// renderCards renders the card viewport, or a notice when nothing matches.
func (m Model) renderCards() string {
	theme := ThemeFor(m.view.Theme)
	styles := theme.Styles().WithBackground(theme.Background)
	width := m.contentWidth()
	height := viewportHeightFor(m.contentHeight())

	if len(m.view.Visible()) == 0 {
		text := "No profiles"
		if m.view.Query != "" {
			text = "No profiles match " + `"` + m.view.Query + `"`
		}
		empty := styles.MutedText.Render(text)
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, empty,
			lipgloss.WithWhitespaceBackground(lipgloss.Color(theme.Background)))
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(theme.Background)).
		Width(width).
		Height(height).
		Render(m.viewport.View())
}

// renderFooter shows the match count, any notice and the short help.
func (m Model) renderFooter() string {
	theme := ThemeFor(m.view.Theme)
	styles := theme.Styles().WithBackground(theme.Surface)
	bg := NewBgStyle(theme.Surface)
	width := m.contentWidth()

	left := bg.Spaces(1) + bg.Render(footerSummary(len(m.view.Visible()), len(m.view.Records)), styles.Text)
	if m.view.Query != "" {
		left += bg.Spaces(2) + bg.Render("Search: "+m.view.Query, styles.MutedText)
	}
	if m.notice != "" {
		left += bg.Spaces(2) + bg.Render(m.notice, styles.AccentText)
	}

	right := ""
	if room := width - lipgloss.Width(left) - 4; room > 20 {
		h := m.help
		h.Width = room
		right = h.View(m.keys) + bg.Spaces(1)
	}
	return bg.FillLine(bg.Between(left, right, width), width)
}

// renderLoading shows only the loading indicator.
func (m Model) renderLoading() string {
	theme := ThemeFor(m.view.Theme)
	styles := theme.Styles().WithBackground(theme.Background)
	content := m.spinner.View() + styles.Text.Render(" Loading...")
	return m.placeCentered(content, theme)
}

// renderFailed shows only the failure message.
func (m Model) renderFailed() string {
	theme := ThemeFor(m.view.Theme)
	styles := theme.Styles().WithBackground(theme.Background)
	return m.placeCentered(styles.DangerText.Render(m.view.Message), theme)
}

func (m Model) placeCentered(content string, theme Theme) string {
	return lipgloss.Place(
		m.contentWidth(),
		m.contentHeight(),
		lipgloss.Center,
		lipgloss.Center,
		content,
		lipgloss.WithWhitespaceBackground(lipgloss.Color(theme.Background)),
	)
}
