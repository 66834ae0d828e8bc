package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/reel/internal/filter"
	"github.com/five82/reel/internal/i18n"
	"github.com/five82/reel/internal/logging"
)

// searchField exposes the live text input to the filter controller.
type searchField struct {
	input *textinput.Model
}

func (s searchField) Value() string {
	return s.input.Value()
}

func newSearchInput() *textinput.Model {
	in := textinput.New()
	in.Prompt = i18n.T("search.prompt")
	in.Placeholder = i18n.T("search.placeholder")
	return &in
}

// activateFilter binds the controller to the search field. Without a field
// the controller is nil and every pass is a no-op.
func activateFilter(search *textinput.Model, results *filter.Results) *filter.Controller {
	var input filter.Input
	if search != nil {
		input = searchField{input: search}
	}
	return filter.Activate(input, results.Items(), results,
		filter.WithPlaceholder(i18n.T("empty.no_results")))
}

func (m Model) searchFocused() bool {
	return m.search != nil && m.search.Focused()
}

// handleSearchKey routes keys to the focused search field. Every change of
// the field's value runs exactly one filter pass.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Confirm):
		m.search.Blur()
		return m, nil

	case key.Matches(msg, m.keys.ClearSearch):
		m.clearSearch()
		return m, nil
	}

	before := m.search.Value()
	updated, cmd := m.search.Update(msg)
	*m.search = updated
	if m.search.Value() != before {
		m.runFilter()
	}
	return m, cmd
}

// clearSearch empties the field, running a pass when that changed it.
func (m *Model) clearSearch() {
	if m.search == nil || m.search.Value() == "" {
		return
	}
	m.search.SetValue("")
	m.runFilter()
}

// runFilter performs one pass and keeps the selection on a visible card.
func (m *Model) runFilter() {
	res := m.controller.HandleInput()
	logging.Debugf("filter pass %d: q=%q visible=%d/%d", m.controller.Passes(), res.Query, res.Visible, res.Total)
	m.selected = 0
	m.refreshList()
}
