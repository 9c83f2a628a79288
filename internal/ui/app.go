package ui

import (
	"context"
	"errors"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/browser"
	"github.com/rs/zerolog"

	"github.com/five82/roster/internal/source"
	"github.com/five82/roster/internal/state"
)

var errNoLoader = errors.New("no loader configured")

// Options configures the UI.
type Options struct {
	Context  context.Context
	Load     func(context.Context) state.LoadResult
	Logger   zerolog.Logger
	CopyText func(string) error // defaults to the system clipboard
	OpenURL  func(string) error // defaults to the system browser
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx      context.Context
	load     func(context.Context) state.LoadResult
	copyText func(string) error
	openURL  func(string) error
	logger   zerolog.Logger

	// Session state
	view state.View

	// Components
	keys     keyMap
	help     help.Model
	spinner  spinner.Model
	search   textinput.Model
	viewport viewport.Model

	// UI state
	width     int
	height    int
	searching bool
	selected  int // index into view.Visible()
	showHelp  bool
	notice    string
}

// New creates a new Bubble Tea model in the Loading state.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	copyText := opts.CopyText
	if copyText == nil {
		copyText = clipboard.WriteAll
	}

	openURL := opts.OpenURL
	if openURL == nil {
		openURL = browser.OpenURL
	}

	search := textinput.New()
	search.Placeholder = "Search..."
	search.Prompt = "> "

	m := Model{
		ctx:      ctx,
		load:     opts.Load,
		copyText: copyText,
		openURL:  openURL,
		logger:   opts.Logger,
		view:     state.New(),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		search:   search,
		viewport: viewport.New(defaultWidth, viewportHeightFor(defaultHeight)),
		width:    defaultWidth,
		height:   defaultHeight,
	}
	m.applyTheme()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadCmd(m.ctx, m.load))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.viewport.Width = m.contentWidth()
		m.viewport.Height = viewportHeightFor(msg.Height)
		m.refresh()
		return m, nil

	case spinner.TickMsg:
		// Stop ticking once the load has settled.
		if m.view.Status != state.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case loadedMsg:
		m.view = m.view.Apply(state.LoadResult(msg))
		m.logger.Debug().
			Str("status", m.view.Status.String()).
			Int("records", len(m.view.Records)).
			Msg("view state settled")
		m.refresh()
		return m, nil

	case actionMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Str("arg", msg.arg).Msg(msg.failed)
			m.notice = msg.failed
		} else {
			m.notice = msg.done
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.showHelp {
		return m.renderHelp()
	}

	switch m.view.Status {
	case state.Failed:
		return m.renderFailed()
	case state.Ready:
		return m.renderMain()
	default:
		return m.renderLoading()
	}
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	m.notice = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.ToggleTheme):
		m.view = m.view.ToggleTheme()
		m.applyTheme()
		m.refresh()
		return m, nil
	}

	// The remaining keys act on cards.
	if m.view.Status != state.Ready {
		return m, nil
	}
	return m.handleCardKey(msg)
}

// handleSearchKey feeds keys to the search input while it has focus.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ClearSearch), key.Matches(msg, m.keys.Confirm):
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.setQuery(m.search.Value())
	return m, cmd
}

// handleCardKey processes navigation and card actions.
func (m Model) handleCardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := len(m.view.Visible())
	cols := columnsFor(m.contentWidth())

	switch {
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		cmd := m.search.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.ClearSearch):
		if m.view.Query != "" {
			m.search.SetValue("")
			m.setQuery("")
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleCard):
		if p, ok := m.selectedPerson(); ok {
			m.view = m.view.Toggle(p.ID)
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keys.CopyEmail):
		if p, ok := m.selectedPerson(); ok && p.Email != "" {
			return m, actionCmd(m.copyText, p.Email, "Copied "+p.Email, "Copy failed")
		}
		return m, nil

	case key.Matches(msg, m.keys.OpenWebsite):
		if p, ok := m.selectedPerson(); ok {
			if u := websiteURL(p.Website); u != "" {
				return m, actionCmd(m.openURL, u, "Opened "+u, "Open failed")
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.viewport.ViewUp()
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.viewport.ViewDown()
		return m, nil
	}

	if count == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.selected-cols >= 0 {
			m.selected -= cols
		}
	case key.Matches(msg, m.keys.Down):
		if m.selected+cols < count {
			m.selected += cols
		}
	case key.Matches(msg, m.keys.Left):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Right):
		if m.selected < count-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Top):
		m.selected = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selected = count - 1
	default:
		return m, nil
	}
	m.refresh()
	return m, nil
}

// setQuery applies a new search query, keeping the selected card when it is
// still visible.
func (m *Model) setQuery(query string) {
	selectedID := 0
	if p, ok := m.selectedPerson(); ok {
		selectedID = p.ID
	}

	m.view = m.view.WithQuery(query)

	visible := m.view.Visible()
	m.selected = 0
	for i, p := range visible {
		if p.ID == selectedID {
			m.selected = i
			break
		}
	}
	m.refresh()
}

func (m Model) selectedPerson() (source.Person, bool) {
	visible := m.view.Visible()
	if m.selected < 0 || m.selected >= len(visible) {
		return source.Person{}, false
	}
	return visible[m.selected], true
}

// refresh re-renders the card grid into the viewport and scrolls the
// selected card into view.
func (m *Model) refresh() {
	if m.view.Status != state.Ready {
		return
	}
	visible := m.view.Visible()
	if m.selected >= len(visible) {
		m.selected = len(visible) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}

	g := m.renderGrid(visible)
	m.viewport.SetContent(g.content)
	if len(visible) == 0 {
		m.viewport.GotoTop()
		return
	}

	row := g.rowOf(m.selected)
	top, end := g.rowTop[row], g.rowEnd[row]
	switch {
	case top < m.viewport.YOffset:
		m.viewport.SetYOffset(top)
	case end > m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(end - m.viewport.Height)
	}
}

// applyTheme restyles the bubbles components for the current theme.
func (m *Model) applyTheme() {
	theme := ThemeFor(m.view.Theme)
	surface := lipgloss.Color(theme.Surface)

	m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))

	m.search.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent)).Background(surface)
	m.search.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Text)).Background(surface)
	m.search.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Faint)).Background(surface)

	m.help.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))
	m.help.Styles.ShortDesc = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Muted))
	m.help.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Faint))
}

func (m Model) contentWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}
	return m.width
}

func (m Model) contentHeight() int {
	if m.height <= 0 {
		return defaultHeight
	}
	return m.height
}

// Messages

type loadedMsg state.LoadResult

// actionMsg reports the outcome of a side effect on the selected card.
type actionMsg struct {
	arg    string
	done   string
	failed string
	err    error
}

// Commands

func loadCmd(ctx context.Context, load func(context.Context) state.LoadResult) tea.Cmd {
	return func() tea.Msg {
		if load == nil {
			return loadedMsg(state.LoadResult{Err: errNoLoader})
		}
		return loadedMsg(load(ctx))
	}
}

func actionCmd(fn func(string) error, arg, done, failed string) tea.Cmd {
	return func() tea.Msg {
		return actionMsg{arg: arg, done: done, failed: failed, err: fn(arg)}
	}
}

// Run starts the Bubble Tea program. The load is cancelled when the program
// exits.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	opts.Context = ctx

	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
