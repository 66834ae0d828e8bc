package ui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/reel/internal/catalog"
	"github.com/five82/reel/internal/filter"
	"github.com/five82/reel/internal/inbox"
	"github.com/five82/reel/internal/logging"
	"github.com/five82/reel/internal/prefs"
)

// View represents the current active view.
type View int

const (
	ViewBrowse View = iota
	ViewDetail
	ViewRequest
	ViewFeedback
)

const defaultLatest = 5

// Options configures the UI.
type Options struct {
	Catalog    catalog.Catalog
	Inbox      *inbox.Store
	ShowSearch bool
	Latest     int
	ThemeName  string
	PrefsPath  string
}

// detailState holds the title shown in the detail view.
type detailState struct {
	entry   catalog.Entry
	episode int
}

// flash is the one-line outcome message under the list.
type flash struct {
	text string
	err  bool
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	catalog   catalog.Catalog
	inbox     *inbox.Store
	prefsPath string
	keys      keyMap

	// Filter state. search is nil when the search field is disabled, which
	// leaves controller nil as well.
	results    *filter.Results
	controller *filter.Controller
	search     *textinput.Model
	latest     []catalog.Entry

	// UI state
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool

	// Browse state
	selected int
	list     viewport.Model

	// Detail state
	detail detailState

	// Inbox form
	form  *textinput.Model
	flash flash

	help help.Model
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	latest := opts.Latest
	if latest <= 0 {
		latest = defaultLatest
	}

	m := Model{
		catalog:     opts.Catalog,
		inbox:       opts.Inbox,
		prefsPath:   prefsPath,
		keys:        DefaultKeyMap(),
		results:     buildResults(opts.Catalog),
		latest:      opts.Catalog.Latest(latest),
		theme:       GetTheme(themeName),
		currentView: ViewBrowse,
		list:        viewport.New(0, 0),
		help:        help.New(),
	}

	if opts.ShowSearch {
		m.search = newSearchInput()
	} else {
		m.keys = m.keys.withoutSearch()
	}
	m.controller = activateFilter(m.search, m.results)
	m.applyTheme()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	switch m.currentView {
	case ViewDetail:
		return m.renderDetail()
	case ViewRequest, ViewFeedback:
		return m.renderForm()
	default:
		return m.renderBrowse()
	}
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.currentView {
	case ViewRequest, ViewFeedback:
		return m.handleFormKey(msg)
	case ViewDetail:
		return m.handleDetailKey(msg)
	}

	if m.searchFocused() {
		return m.handleSearchKey(msg)
	}
	return m.handleBrowseKey(msg)
}

// handleBrowseKey processes keyboard input for the card list.
func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil

	case key.Matches(msg, m.keys.Search):
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.ClearSearch):
		m.clearSearch()
		return m, nil

	case key.Matches(msg, m.keys.Request):
		return m, m.openForm(inbox.KindRequest)

	case key.Matches(msg, m.keys.Feedback):
		return m, m.openForm(inbox.KindFeedback)

	case key.Matches(msg, m.keys.Open):
		m.openDetail()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.flash = flash{}
		return m, nil
	}

	m.moveSelection(msg)
	return m, nil
}

// cycleTheme switches to the next theme and persists the choice.
func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.applyTheme()
	if m.prefsPath != "" {
		if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
			logging.Warnf("save prefs: %v", err)
		}
	}
	m.refreshList()
}

// applyTheme restyles the bubbles components for the current theme.
func (m *Model) applyTheme() {
	styles := m.theme.Styles()

	m.help.Styles.ShortKey = styles.AccentText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
	m.help.Styles.FullKey = styles.AccentText
	m.help.Styles.FullDesc = styles.MutedText
	m.help.Styles.FullSeparator = styles.FaintText
	m.help.Styles.Ellipsis = styles.FaintText

	for _, in := range []*textinput.Model{m.search, m.form} {
		if in == nil {
			continue
		}
		in.PromptStyle = styles.AccentText
		in.TextStyle = styles.Text
		in.PlaceholderStyle = styles.FaintText
	}
}

// layout sizes the list viewport from the window and the fixed chrome.
func (m *Model) layout() {
	m.help.Width = m.width

	used := 1 // header
	if m.search != nil {
		used += 3 // bordered search field
	}
	if len(m.latest) > 0 {
		used += 2
	}
	used += 1 // list title
	used += 1 // flash
	used += m.helpHeight()

	m.list.Width = m.width
	m.list.Height = max(m.height-used, 1)
	if m.search != nil {
		m.search.Width = max(m.width-len(m.search.Prompt)-6, 10)
	}
	m.refreshList()
}

func (m Model) helpHeight() int {
	if !m.help.ShowAll {
		return 1
	}
	rows := 0
	for _, col := range m.keys.FullHelp() {
		rows = max(rows, len(col))
	}
	return rows
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
