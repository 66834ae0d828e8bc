package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/reel/internal/i18n"
	"github.com/five82/reel/internal/logging"
)

// openDetail switches to the detail view for the selected card.
func (m *Model) openDetail() {
	entry, ok := m.selectedEntry()
	if !ok {
		return
	}
	logging.Debugf("open %q", entry.Name)
	m.detail = detailState{entry: entry}
	m.currentView = ViewDetail
}

// handleDetailKey processes keyboard input for the detail view.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	episodes := len(m.detail.entry.Episodes)

	switch {
	case key.Matches(msg, m.keys.Escape):
		m.currentView = ViewBrowse
		m.refreshList()
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
	case key.Matches(msg, m.keys.Down):
		if m.detail.episode < episodes-1 {
			m.detail.episode++
		}
	case key.Matches(msg, m.keys.Up):
		if m.detail.episode > 0 {
			m.detail.episode--
		}
	case key.Matches(msg, m.keys.Top):
		m.detail.episode = 0
	case key.Matches(msg, m.keys.Bottom):
		m.detail.episode = max(episodes-1, 0)
	}
	return m, nil
}

// renderDetail renders the selected title with its episodes.
func (m Model) renderDetail() string {
	styles := m.theme.Styles()
	entry := m.detail.entry
	width := max(m.width-4, 20)

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	b.WriteString(styles.AccentText.Bold(true).Render(entry.Name))
	if entry.Year != "" {
		b.WriteString("  ")
		b.WriteString(styles.MutedText.Render(i18n.T("detail.year") + ":"))
		b.WriteString(" ")
		b.WriteString(styles.Year.Render(entry.Year))
	}
	b.WriteString("\n\n")

	if desc := strings.TrimSpace(entry.Description); desc != "" {
		b.WriteString(styles.Text.Width(width).Render(desc))
		b.WriteString("\n\n")
	}

	b.WriteString(styles.AccentText.Bold(true).Render(i18n.T("detail.episodes")))
	b.WriteString("\n")
	if len(entry.Episodes) == 0 {
		b.WriteString(styles.Placeholder.Render(i18n.T("detail.no_episodes")))
		b.WriteString("\n")
	}
	for i, ep := range entry.Episodes {
		if i == m.detail.episode {
			b.WriteString(styles.Selected.Render("> " + ep.Label))
		} else {
			b.WriteString("  " + styles.Text.Render(ep.Label))
		}
		b.WriteString("\n")
	}

	if url := m.watchURL(); url != "" {
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render(i18n.T("detail.watch") + ": "))
		b.WriteString(styles.InfoText.Render(url))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return lipgloss.NewStyle().MaxWidth(max(m.width, 1)).Render(b.String())
}

// watchURL returns the embed URL of the selected episode.
func (m Model) watchURL() string {
	entry := m.detail.entry
	label := ""
	if m.detail.episode >= 0 && m.detail.episode < len(entry.Episodes) {
		label = entry.Episodes[m.detail.episode].Label
	}
	ep, ok := entry.Episode(label)
	if !ok {
		return ""
	}
	return ep.URL
}
