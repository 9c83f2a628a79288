package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/roster/internal/source"
)

// Card toggle labels.
const (
	labelViewMore    = "View More"
	labelHideDetails = "Hide Details"
)

func toggleLabel(expanded bool) string {
	if expanded {
		return labelHideDetails
	}
	return labelViewMore
}

func cardHeading(p source.Person) string {
	return fmt.Sprintf("%d. %s", p.ID, p.Name)
}

// primaryLines are always shown on a card.
func primaryLines(p source.Person) []string {
	return []string{
		"Email: " + p.Email,
		"Company: " + p.CompanyName(),
		"City: " + p.City(),
	}
}

// detailLines are shown only while a card is expanded.
func detailLines(p source.Person) []string {
	return []string{
		"Phone: " + p.Phone,
		"Website: " + p.Website,
		"Username: " + p.Username,
	}
}

// websiteURL turns a bare website field into something a browser can open.
func websiteURL(site string) string {
	site = strings.TrimSpace(site)
	if site == "" {
		return ""
	}
	if strings.Contains(site, "://") {
		return site
	}
	return "https://" + site
}

// grid is the rendered card area plus the line span of each card row.
type grid struct {
	content string
	rowTop  []int
	rowEnd  []int // exclusive
	cols    int
}

// rowOf returns the grid row holding card index i.
func (g grid) rowOf(i int) int {
	if g.cols <= 0 {
		return 0
	}
	return i / g.cols
}

// renderCard renders one person card at the given outer width.
func (m Model) renderCard(p source.Person, width int, selected bool) string {
	theme := ThemeFor(m.view.Theme)
	styles := theme.Styles().WithBackground(theme.CardBg)
	bg := NewBgStyle(theme.CardBg)

	// Border takes two columns, padding another two.
	inner := width - 4
	if inner < 1 {
		inner = 1
	}

	expanded := m.view.IsExpanded(p.ID)
	lines := []string{bg.Render(truncate(cardHeading(p), inner), styles.BoldText)}
	for _, line := range primaryLines(p) {
		lines = append(lines, bg.Render(truncate(line, inner), styles.Text))
	}
	if expanded {
		for _, line := range detailLines(p) {
			lines = append(lines, bg.Render(truncate(line, inner), styles.MutedText))
		}
	}
	lines = append(lines, "", styles.Button.Render(toggleLabel(expanded)))

	style := styles.Card
	if selected {
		style = styles.CardSelected
	}
	return style.Width(width - 2).Render(strings.Join(lines, "\n"))
}

// renderGrid lays the visible cards out in rows sized to the terminal.
func (m Model) renderGrid(records []source.Person) grid {
	width := m.contentWidth()
	cols := columnsFor(width)
	cardWidth := cardWidthFor(width)
	g := grid{cols: cols}

	var rows []string
	line := 0
	for start := 0; start < len(records); start += cols {
		end := start + cols
		if end > len(records) {
			end = len(records)
		}
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cards = append(cards, m.renderCard(records[i], cardWidth, i == m.selected))
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
		h := lipgloss.Height(row)
		g.rowTop = append(g.rowTop, line)
		g.rowEnd = append(g.rowEnd, line+h)
		line += h
		rows = append(rows, row)
	}
	g.content = strings.Join(rows, "\n")
	return g
}
