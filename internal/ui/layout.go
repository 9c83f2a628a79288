package ui

// Card grid sizing.
const (
	// CardMinWidth is the narrowest a card may render, borders included.
	CardMinWidth = 32

	// MaxColumns caps the grid on very wide terminals.
	MaxColumns = 5
)

// Screen chrome around the card viewport.
const (
	headerHeight = 3 // title bar, search bar, spacer
	footerHeight = 1
)

// Fallback size used until the first WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// columnsFor returns how many cards fit side by side in width.
func columnsFor(width int) int {
	cols := width / CardMinWidth
	if cols < 1 {
		return 1
	}
	if cols > MaxColumns {
		return MaxColumns
	}
	return cols
}

// cardWidthFor returns the rendered width of one card, borders included.
func cardWidthFor(width int) int {
	cols := columnsFor(width)
	w := width / cols
	if w < CardMinWidth {
		// Narrower than one card; shrink rather than overflow.
		w = width
	}
	if w < 8 {
		w = 8
	}
	return w
}

// viewportHeightFor returns the lines left for cards under the chrome.
func viewportHeightFor(height int) int {
	h := height - headerHeight - footerHeight
	if h < 1 {
		return 1
	}
	return h
}
