package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/reel/internal/catalog"
	"github.com/five82/reel/internal/filter"
	"github.com/five82/reel/internal/i18n"
)

// buildResults creates one card per catalog entry in display order.
func buildResults(cat catalog.Catalog) *filter.Results {
	entries := cat.Entries()
	cards := make([]*filter.Card, 0, len(entries))
	for _, e := range entries {
		cards = append(cards, filter.NewCard(e.Name, e.SearchName(), e.Year))
	}
	return filter.NewResults(cards)
}

// moveSelection handles list navigation among visible cards.
func (m *Model) moveSelection(msg tea.KeyMsg) {
	count := len(m.results.Visible())
	if count == 0 {
		return
	}

	switch {
	case key.Matches(msg, m.keys.Down):
		if m.selected < count-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Top):
		m.selected = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selected = count - 1
	default:
		return
	}
	m.refreshList()
}

// selectedEntry returns the catalog entry under the cursor.
func (m Model) selectedEntry() (catalog.Entry, bool) {
	visible := m.results.Visible()
	if m.selected < 0 || m.selected >= len(visible) {
		return catalog.Entry{}, false
	}
	return m.catalog.Lookup(visible[m.selected].Key)
}

// refreshList redraws the list viewport and scrolls the selection into view.
func (m *Model) refreshList() {
	visible := len(m.results.Visible())
	if m.selected >= visible {
		m.selected = max(visible-1, 0)
	}

	m.list.SetContent(strings.Join(m.listLines(), "\n"))

	if m.list.Height <= 0 {
		return
	}
	switch {
	case m.selected < m.list.YOffset:
		m.list.SetYOffset(m.selected)
	case m.selected >= m.list.YOffset+m.list.Height:
		m.list.SetYOffset(m.selected - m.list.Height + 1)
	}
}

// listLines renders the results container's children: visible cards in
// order followed by the placeholder when present.
func (m Model) listLines() []string {
	styles := m.theme.Styles()

	if len(m.results.Cards()) == 0 {
		return []string{styles.Placeholder.Render(i18n.T("empty.catalog"))}
	}

	children := m.results.Children()
	lines := make([]string, 0, len(children))
	row := 0
	for _, child := range children {
		if child.IsPlaceholder() {
			lines = append(lines, "  "+styles.Placeholder.Render(child.Placeholder))
			continue
		}
		lines = append(lines, m.cardLine(child.Card, row == m.selected, styles))
		row++
	}
	return lines
}

func (m Model) cardLine(card *filter.Card, selected bool, styles Styles) string {
	name := card.Key
	year := ""
	if entry, ok := m.catalog.Lookup(card.Key); ok {
		year = entry.Year
	}

	if selected {
		text := "> " + name
		if year != "" {
			text += "  " + year
		}
		return styles.Selected.Width(max(m.width, 1)).Render(text)
	}

	line := "  " + styles.Text.Render(name)
	if year != "" {
		line += "  " + styles.MutedText.Render(year)
	}
	return line
}

// renderBrowse renders the header, search field, latest strip, list and footer.
func (m Model) renderBrowse() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if m.search != nil {
		panel := styles.Panel
		if m.search.Focused() {
			panel = styles.FocusPanel
		}
		b.WriteString(panel.Width(max(m.width-2, 1)).Render(m.search.View()))
		b.WriteString("\n")
	}

	if len(m.latest) > 0 {
		b.WriteString(m.renderLatest())
		b.WriteString("\n")
	}

	b.WriteString(styles.AccentText.Bold(true).Render(i18n.T("list.title")))
	b.WriteString("\n")
	b.WriteString(m.list.View())
	b.WriteString("\n")
	b.WriteString(m.renderFlash())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}
