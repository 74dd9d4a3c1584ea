package scenes

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/finhealth/internal/advisor"
	"github.com/rgehrsitz/finhealth/internal/tui/tuimsg"
	"github.com/rgehrsitz/finhealth/internal/tui/tuistyles"
)

// ChatModel is the advisory chat scene. Questions run as commands so the
// update loop never blocks on the network.
type ChatModel struct {
	session  *advisor.Session
	history  []advisor.Message // copied only when no Ask is in flight
	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model
	pending  string // question awaiting a reply
	lastErr  error
	width    int
	height   int
}

func NewChatModel(session *advisor.Session) *ChatModel {
	ti := textinput.New()
	ti.Placeholder = "Ask about your financial plan..."
	ti.Prompt = "> "
	ti.CharLimit = 500

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(tuistyles.ColorPrimary)

	m := &ChatModel{
		session:  session,
		history:  sessionHistory(session),
		input:    ti,
		viewport: viewport.New(80, 16),
		spinner:  sp,
		width:    80,
		height:   20,
	}
	m.refresh()
	return m
}

// Focus gives the input the cursor
func (m *ChatModel) Focus() tea.Cmd {
	return m.input.Focus()
}

func (m *ChatModel) Pending() bool { return m.pending != "" }

// LastErr is the error behind the most recent fallback reply, if any
func (m *ChatModel) LastErr() error { return m.lastErr }

func (m *ChatModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = max(height-3, 3)
	m.input.Width = max(width-4, 10)
	m.refresh()
}

// Update handles messages for the chat scene
func (m *ChatModel) Update(msg tea.Msg) (*ChatModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tuimsg.ChatReplyMsg:
		m.pending = ""
		m.lastErr = msg.Err
		m.history = sessionHistory(m.session)
		m.refresh()
		return m, nil

	case spinner.TickMsg:
		if !m.Pending() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.refresh()
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
			return m, m.send()
		case key.Matches(msg, key.NewBinding(key.WithKeys("pgup", "pgdown"))):
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *ChatModel) send() tea.Cmd {
	question := strings.TrimSpace(m.input.Value())
	if question == "" || m.Pending() || m.session == nil {
		return nil
	}
	m.pending = question
	m.input.Reset()
	m.refresh()
	return tea.Batch(askCmd(m.session, question), m.spinner.Tick)
}

func askCmd(s *advisor.Session, question string) tea.Cmd {
	return func() tea.Msg {
		reply, err := s.Ask(context.Background(), question)
		return tuimsg.ChatReplyMsg{Question: question, Reply: reply, Err: err}
	}
}

func sessionHistory(s *advisor.Session) []advisor.Message {
	if s == nil {
		return nil
	}
	return s.History()
}

// Transcript renders the conversation, including a pending question
func (m *ChatModel) Transcript() string {
	if m.session == nil {
		return tuistyles.InfoStyle.Render("Complete an analysis to chat with the advisor.")
	}

	wrap := lipgloss.NewStyle().Width(max(m.width-2, 20))
	var lines []string
	for _, msg := range m.history {
		lines = append(lines, wrap.Render(renderChatLine(msg.Role, msg.Content)))
	}
	if m.pending != "" {
		lines = append(lines,
			wrap.Render(renderChatLine(advisor.RoleUser, m.pending)),
			m.spinner.View()+" "+tuistyles.SubtitleStyle.Render("Thinking..."))
	}
	return strings.Join(lines, "\n\n")
}

func renderChatLine(role advisor.Role, content string) string {
	if role == advisor.RoleUser {
		return tuistyles.UserBubbleStyle.Render("You: ") + content
	}
	return tuistyles.HelpKeyStyle.Render("Advisor: ") + tuistyles.AdvisorBubbleStyle.Render(content)
}

func (m *ChatModel) refresh() {
	m.viewport.SetContent(m.Transcript())
	m.viewport.GotoBottom()
}

// View renders the chat scene
func (m *ChatModel) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewport.View(),
		tuistyles.ActiveBorderStyle.Padding(0, 1).Render(m.input.View()),
		tuistyles.HelpDescStyle.Render("Enter: send • PgUp/PgDn: scroll • Esc: dashboard"),
	)
}
