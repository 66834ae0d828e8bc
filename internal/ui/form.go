package ui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/reel/internal/i18n"
	"github.com/five82/reel/internal/inbox"
	"github.com/five82/reel/internal/logging"
)

// openForm shows the request or feedback form.
func (m *Model) openForm(kind inbox.Kind) tea.Cmd {
	in := textinput.New()
	in.Prompt = "> "
	in.Placeholder = i18n.T("inbox." + string(kind) + ".placeholder")
	in.Width = max(m.width-8, 20)
	if kind == inbox.KindFeedback {
		in.CharLimit = inbox.MaxFeedbackLen
		m.currentView = ViewFeedback
	} else {
		in.CharLimit = inbox.MaxRequestLen
		m.currentView = ViewRequest
	}

	m.form = &in
	m.flash = flash{}
	m.applyTheme()
	return m.form.Focus()
}

func (m Model) formKind() inbox.Kind {
	if m.currentView == ViewFeedback {
		return inbox.KindFeedback
	}
	return inbox.KindRequest
}

func (m *Model) closeForm() {
	m.form = nil
	m.currentView = ViewBrowse
	m.refreshList()
}

// handleFormKey processes keyboard input for the inbox forms.
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.flash = flash{}
		m.closeForm()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		m.submitForm()
		return m, nil
	}

	updated, cmd := m.form.Update(msg)
	*m.form = updated
	return m, cmd
}

// submitForm sends the form text to the inbox. The form stays open when the
// submission is rejected so the text can be corrected.
func (m *Model) submitForm() {
	kind := m.formKind()
	if m.inbox == nil {
		m.flash = flash{text: i18n.T("inbox.err.save"), err: true}
		return
	}

	rec, err := m.inbox.Submit(kind, m.form.Value())
	if err != nil {
		logging.Infof("%s rejected: %v", kind, err)
		m.flash = flash{text: inboxErrorText(kind, err), err: true}
		return
	}

	logging.Infof("%s submitted by %s", kind, rec.Submitter)
	m.flash = flash{text: i18n.T("inbox." + string(kind) + ".ok")}
	m.closeForm()
}

// inboxErrorText maps an inbox error to a localized message.
func inboxErrorText(kind inbox.Kind, err error) string {
	suffix := "_" + string(kind)
	switch {
	case errors.Is(err, inbox.ErrEmpty):
		return i18n.T("inbox.err.empty" + suffix)
	case errors.Is(err, inbox.ErrTooShort):
		return i18n.T("inbox.err.too_short" + suffix)
	case errors.Is(err, inbox.ErrTooLong):
		return i18n.T("inbox.err.too_long" + suffix)
	case errors.Is(err, inbox.ErrHourlyLimit):
		return i18n.T("inbox.err.hourly" + suffix)
	case errors.Is(err, inbox.ErrDailyLimit):
		return i18n.T("inbox.err.daily" + suffix)
	default:
		logging.Errorf("inbox: %v", err)
		return i18n.T("inbox.err.save")
	}
}

// renderForm renders the open inbox form.
func (m Model) renderForm() string {
	styles := m.theme.Styles()
	kind := m.formKind()

	body := styles.AccentText.Bold(true).Render(i18n.T("inbox."+string(kind)+".title")) +
		"\n\n" + m.form.View() + "\n\n" +
		styles.FaintText.Render(i18n.T("inbox.hint"))

	return m.renderHeader() + "\n\n" +
		styles.FocusPanel.Width(max(m.width-2, 20)).Render(body) + "\n" +
		m.renderFlash()
}
