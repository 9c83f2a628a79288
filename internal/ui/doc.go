// Package ui provides the terminal user interface for roster.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. The Model holds a state.View and applies
// its pure transitions in response to messages, so rendering is a function
// of the current View plus a little presentation state (terminal size,
// selected card, search focus, help overlay).
//
// # Package Structure
//
//   - app.go: Model, Update loop, key handling and Run
//   - header.go: title bar, search bar, footer and the Loading/Failed screens
//   - cards.go: card content and the responsive card grid
//   - help.go: keyboard shortcut overlay
//   - theme.go: Light and Dark palettes and their Lipgloss styles
//   - plain.go: text and JSON rendering for non-interactive runs
//
// # Load Lifecycle
//
// Init starts the spinner and the one-shot load command together. The load
// result arrives as a loadedMsg; once applied the spinner stops ticking and
// the View never leaves Ready or Failed again.
//
// # Keyboard Shortcuts
//
//   - / focuses search, esc leaves it (or clears the query when unfocused)
//   - h/j/k/l and arrow keys move between cards
//   - enter or space toggles the selected card
//   - y copies the selected card's email, o opens its website
//   - T toggles the theme, ? shows help, q quits
package ui
