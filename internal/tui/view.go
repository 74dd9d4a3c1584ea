package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.loading {
		return m.renderLoading()
	}

	if m.err != nil {
		return m.renderError()
	}

	var content string
	switch m.currentScene {
	case SceneForm:
		content = m.form.View()
	case SceneDashboard:
		content = m.dashboard.View()
	case SceneChat:
		content = m.chat.View()
	case SceneHelp:
		content = m.renderHelp()
	default:
		content = "Unknown scene"
	}

	return m.renderApp(content)
}

// renderApp wraps content with title bar and status bar
func (m Model) renderApp(content string) string {
	contentHeight := m.height - 4 // title (2) + status (1) + padding (1)
	if contentHeight < 1 {
		contentHeight = 1
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		lipgloss.NewStyle().Height(contentHeight).Render(content),
		m.renderStatusBar(),
	)
}

// renderTitleBar renders the application title and breadcrumb
func (m Model) renderTitleBar() string {
	breadcrumb := m.currentScene.String()
	if m.profileName != "" {
		breadcrumb = fmt.Sprintf("%s / %s", breadcrumb, m.profileName)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		TitleStyle.Render("FinHealth - Financial Health Check"),
		SubtitleStyle.Render(breadcrumb),
	)
}

// renderStatusBar renders the shortcuts available in the current scene
func (m Model) renderStatusBar() string {
	var shortcuts []string
	switch m.currentScene {
	case SceneForm:
		shortcuts = []string{
			formatShortcut("enter", "next"),
			formatShortcut("esc", "back"),
			formatShortcut("?", "help"),
		}
	case SceneDashboard:
		shortcuts = []string{
			formatShortcut("c", "chat"),
			formatShortcut("n", "new analysis"),
			formatShortcut("↑/↓", "scroll"),
			formatShortcut("?", "help"),
			formatShortcut("q", "quit"),
		}
	case SceneChat:
		shortcuts = []string{
			formatShortcut("enter", "send"),
			formatShortcut("esc", "dashboard"),
		}
	case SceneHelp:
		shortcuts = []string{
			formatShortcut("esc", "back"),
			formatShortcut("q", "quit"),
		}
	}
	shortcuts = append(shortcuts, formatShortcut("ctrl+c", "quit"))

	return StatusBarStyle.Width(m.width).Render(strings.Join(shortcuts, " • "))
}

func formatShortcut(key, desc string) string {
	return StatusKeyStyle.Render(key) + " " + desc
}

func (m Model) renderLoading() string {
	message := m.loadingMessage
	if message == "" {
		message = "Loading..."
	}
	return m.renderApp(BorderStyle.Render("⠋ " + message))
}

func (m Model) renderError() string {
	content := ErrorStyle.Render(
		fmt.Sprintf("Error: %s\n\nPress any key to continue...", m.err.Error()),
	)
	return m.renderApp(content)
}

func (m Model) renderHelp() string {
	helpText := `FinHealth - Financial Health Check

FORM:
  Tab/↓    Next field
  ↑        Previous field
  Enter    Next step; on the last step, evaluate
  Esc      Previous step

DASHBOARD:
  ↑/↓      Scroll
  c        Chat with the advisor
  n        Start a new analysis
  q        Quit

CHAT:
  Enter    Send question
  PgUp/Dn  Scroll history
  Esc      Back to dashboard

ANYWHERE:
  ?        Show this help
  Ctrl+C   Quit

Blank fields count as zero. Amounts may include commas.`

	return BorderStyle.Render(helpText)
}
