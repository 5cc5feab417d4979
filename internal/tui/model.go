// Package tui is the terminal front end for a chat session: transcript
// viewport, input line, typing indicator, theme toggle and transcript
// export.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sakhiai/internal/markup"
	"sakhiai/internal/models"
	"sakhiai/internal/session"
)

type replyMsg struct {
	reply string
	err   error
}

// revealMsg fires after the short UX delay between reply arrival and the
// bubble appearing.
type revealMsg struct {
	reply string
}

type Model struct {
	session  *session.Session
	stateDir string
	theme    Theme

	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model

	width  int
	height int
	ready  bool

	statusMsg string
}

func New(sess *session.Session, stateDir string) Model {
	ti := textinput.New()
	ti.Placeholder = "Ask SakhiAI anything…"
	ti.CharLimit = 2000
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		session:  sess,
		stateDir: stateDir,
		theme:    themeByName(sess.Theme()),
		input:    ti,
		spinner:  sp,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		headerHeight := 4
		footerHeight := 3
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
		m.refreshTranscript()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if m.session.State() != session.StateAwaitingReply {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case replyMsg:
		if m.session.State() != session.StateAwaitingReply {
			// The chat was cleared while the request was in flight.
			return m, nil
		}
		// Typing indicator goes away now; the bubble lands after the fixed
		// delay unless the round trip itself failed.
		if msg.err != nil {
			m.session.Resolve("", msg.err)
			m.refreshTranscript()
			m.input.Focus()
			return m, nil
		}
		delay := m.session.ReplyDelay()
		if delay <= 0 {
			return m.reveal(msg.reply)
		}
		reply := msg.reply
		return m, tea.Tick(delay, func(time.Time) tea.Msg {
			return revealMsg{reply: reply}
		})

	case revealMsg:
		if m.session.State() != session.StateAwaitingReply {
			return m, nil
		}
		return m.reveal(msg.reply)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	awaiting := m.session.State() == session.StateAwaitingReply

	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "ctrl+l":
		// Always available, even mid-request.
		m.session.ClearChat()
		m.statusMsg = ""
		m.input.Reset()
		m.input.Focus()
		m.refreshTranscript()
		return m, nil

	case "ctrl+t":
		m.theme = themeByName(m.session.ToggleTheme())
		m.refreshTranscript()
		return m, nil

	case "ctrl+e":
		if m.session.OnboardingVisible() {
			return m, nil
		}
		path, err := exportTranscript(m.stateDir, m.session.History(), m.theme.Name)
		if err != nil {
			m.statusMsg = "Export failed"
		} else {
			m.statusMsg = "Saved " + path
		}
		return m, nil

	case "enter":
		if awaiting {
			return m, nil
		}
		return m.submit()
	}

	if awaiting {
		// Input is disabled while a request is in flight.
		return m, nil
	}

	// With an empty input on the onboarding view, number keys pick a
	// suggestion chip.
	if m.input.Value() == "" {
		if chips := m.session.Suggestions(); chips != nil {
			if i := suggestionIndex(msg.String(), len(chips)); i >= 0 {
				m.input.SetValue(chips[i])
				m.input.CursorEnd()
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())

	snapshot, ok := m.session.Submit(text)
	if !ok {
		return m, nil
	}

	m.input.Reset()
	m.input.Blur()
	m.statusMsg = ""
	m.refreshTranscript()

	sess := m.session
	send := func() tea.Msg {
		reply, err := sess.Send(context.Background(), text, snapshot)
		return replyMsg{reply: reply, err: err}
	}

	return m, tea.Batch(m.spinner.Tick, send)
}

func (m Model) reveal(reply string) (tea.Model, tea.Cmd) {
	m.session.Resolve(reply, nil)
	m.refreshTranscript()
	m.input.Focus()
	return m, textinput.Blink
}

func (m *Model) refreshTranscript() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.transcript())
	m.viewport.GotoBottom()
}

func (m Model) transcript() string {
	if m.session.OnboardingVisible() {
		return m.onboardingView()
	}

	var sb strings.Builder
	for _, turn := range m.session.History() {
		sb.WriteString(m.renderTurn(turn))
		sb.WriteString("\n\n")
	}
	return sb.String()
}

func (m Model) renderTurn(turn models.Turn) string {
	width := m.viewport.Width
	if width <= 0 {
		width = 80
	}

	if turn.Sender == models.SenderUser {
		label := m.theme.UserLabel.Render("You")
		// User text stays literal; it never goes through the renderer.
		body := m.theme.UserBubble.Width(width).Render(turn.Text)
		return label + "\n" + body
	}

	label := m.theme.AILabel.Render("SakhiAI")
	body := m.theme.AIBubble.Width(width).Render(presentMarkup(markup.Render(turn.Text), m.theme))
	return label + "\n" + body
}

func (m Model) onboardingView() string {
	var sb strings.Builder

	sb.WriteString(m.theme.AIBubble.Render("Hi, I'm SakhiAI. Ask me anything — private questions welcome."))
	sb.WriteString("\n\n")
	sb.WriteString(m.theme.Help.Render("Try one of these (press the number):"))
	sb.WriteString("\n")
	for i, chip := range m.session.Suggestions() {
		sb.WriteString(m.theme.Suggestion.Render(fmt.Sprintf("  %d. %s", i+1, chip)))
		sb.WriteString("\n")
	}

	return sb.String()
}

func (m Model) View() string {
	if !m.ready {
		return "Starting SakhiAI…"
	}

	header := m.theme.Header.Render("SakhiAI") + "  " +
		m.theme.Affirm.Render(m.session.Affirmation())

	var footer string
	if m.session.State() == session.StateAwaitingReply {
		footer = m.theme.Typing.Render(m.spinner.View() + "SakhiAI is typing…")
	} else {
		footer = m.input.View()
	}

	help := m.theme.Help.Render("enter send · ctrl+l clear · ctrl+t theme · ctrl+e export · esc quit")
	if m.statusMsg != "" {
		help = m.theme.Help.Render(m.statusMsg)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		m.viewport.View(),
		"",
		footer,
		help,
	)
}

func suggestionIndex(key string, n int) int {
	if len(key) != 1 || key[0] < '1' {
		return -1
	}
	i := int(key[0] - '1')
	if i >= n {
		return -1
	}
	return i
}
