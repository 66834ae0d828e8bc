package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/reel/internal/i18n"
)

// renderHeader renders the title bar with visible and total counts.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	total := len(m.results.Cards())
	visible := len(m.results.Visible())

	parts := []string{
		styles.Logo.Render(i18n.T("app.title")),
		bg.Render(i18n.T("header.count", visible, total), styles.Text),
		bg.Render(i18n.T("header.theme", m.theme.Name), styles.FaintText),
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(max(m.width, 1)).
		Padding(0, 1).
		Render(bg.Join(parts, "  │  "))
}

// renderLatest renders the strip of newest titles.
func (m Model) renderLatest() string {
	styles := m.theme.Styles()

	names := make([]string, 0, len(m.latest))
	for _, e := range m.latest {
		label := styles.Text.Render(e.Name)
		if e.Year != "" {
			label += " " + styles.MutedText.Render(e.Year)
		}
		names = append(names, label)
	}

	title := styles.AccentText.Bold(true).Render(i18n.T("latest.title"))
	return title + "\n" + lipgloss.NewStyle().MaxWidth(max(m.width, 1)).Render(strings.Join(names, styles.FaintText.Render(" · ")))
}

// renderFlash renders the outcome of the last inbox submission.
func (m Model) renderFlash() string {
	if m.flash.text == "" {
		return ""
	}
	styles := m.theme.Styles()
	if m.flash.err {
		return styles.DangerText.Render(m.flash.text)
	}
	return styles.SuccessText.Render(m.flash.text)
}

// renderFooter renders the key help.
func (m Model) renderFooter() string {
	return m.help.View(m.keys)
}
