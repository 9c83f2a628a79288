package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/roster/internal/state"
)

// Theme defines colors for one presentation mode.
type Theme struct {
	Name string

	// Base colors
	Background string // page background
	Surface    string // header and footer bars
	CardBg     string // card body

	// Border colors
	Border      string // card border
	BorderFocus string // selected card border

	// Text colors
	Text   string
	Muted  string
	Faint  string
	Accent string
	Danger string

	// Button colors (theme toggle and card toggles)
	ButtonBg     string
	ButtonText   string
	ButtonBorder string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Background: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		BoldText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Bold(true),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Bold(true),

		Button: lipgloss.NewStyle().
			Background(lipgloss.Color(t.ButtonBg)).
			Foreground(lipgloss.Color(t.ButtonText)).
			Padding(0, 1),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			BorderBackground(lipgloss.Color(t.Background)).
			Background(lipgloss.Color(t.CardBg)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			BorderBackground(lipgloss.Color(t.Background)).
			Background(lipgloss.Color(t.CardBg)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Background lipgloss.Style

	// Text
	Text       lipgloss.Style
	BoldText   lipgloss.Style
	MutedText  lipgloss.Style
	FaintText  lipgloss.Style
	AccentText lipgloss.Style
	DangerText lipgloss.Style

	// Components
	Title        lipgloss.Style
	Button       lipgloss.Style
	Card         lipgloss.Style
	CardSelected lipgloss.Style
}

// WithBackground returns a copy of Styles whose text styles paint bgColor
// instead of inheriting the terminal background.
func (s Styles) WithBackground(bgColor string) Styles {
	bg := lipgloss.Color(bgColor)
	return Styles{
		Background: s.Background.Background(bg),

		Text:       s.Text.Background(bg),
		BoldText:   s.BoldText.Background(bg),
		MutedText:  s.MutedText.Background(bg),
		FaintText:  s.FaintText.Background(bg),
		AccentText: s.AccentText.Background(bg),
		DangerText: s.DangerText.Background(bg),

		Title: s.Title.Background(bg),
		// Buttons and cards keep their own fills.
		Button:       s.Button,
		Card:         s.Card,
		CardSelected: s.CardSelected,
	}
}

var themes = map[state.Theme]Theme{
	state.Light: lightTheme(),
	state.Dark:  darkTheme(),
}

// ThemeFor returns the palette for a session theme flag.
func ThemeFor(t state.Theme) Theme {
	if th, ok := themes[t]; ok {
		return th
	}
	return lightTheme()
}

// ThemeToggleLabel names the theme the toggle switches to.
func ThemeToggleLabel(t state.Theme) string {
	if t == state.Dark {
		return "Light Mode"
	}
	return "Dark Mode"
}

func lightTheme() Theme {
	// Tailwind blue page with near-black buttons.
	return Theme{
		Name: "Light",

		Background: "#bfdbfe", // blue-200
		Surface:    "#93c5fd", // blue-300
		CardBg:     "#dbeafe", // blue-100

		Border:      "#60a5fa", // blue-400
		BorderFocus: "#1d4ed8", // blue-700

		Text:   "#0f172a", // slate-900
		Muted:  "#334155", // slate-700
		Faint:  "#64748b", // slate-500
		Accent: "#1d4ed8", // blue-700
		Danger: "#ef4444", // red-500

		ButtonBg:     "#010101",
		ButtonText:   "#ffffff",
		ButtonBorder: "#d1d5db", // gray-300
	}
}

func darkTheme() Theme {
	return Theme{
		Name: "Dark",

		Background: "#010101",
		Surface:    "#171717", // neutral-900
		CardBg:     "#010101",

		Border:      "#525252", // neutral-600
		BorderFocus: "#f1f1f1",

		Text:   "#f1f1f1",
		Muted:  "#d4d4d4", // neutral-300
		Faint:  "#a3a3a3", // neutral-400
		Accent: "#93c5fd", // blue-300
		Danger: "#ef4444", // red-500

		ButtonBg:     "#010101",
		ButtonText:   "#ffffff",
		ButtonBorder: "#f1f1f1",
	}
}
