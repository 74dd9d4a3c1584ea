package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case NavigateMsg:
		if msg.Scene != m.currentScene {
			m.previousScene = m.currentScene
			m.currentScene = msg.Scene
		}
		return m, nil

	case QuitMsg:
		return m, tea.Quit

	case ErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil

	case SnapshotLoadedMsg:
		m.loading = false
		m.profileName = msg.ProfileName
		m.form.SetData(msg.Data)
		return m, nil

	case SubmitMsg:
		m = m.evaluate(msg.Data)
		return m, navigate(SceneDashboard)

	case ChatReplyMsg, spinner.TickMsg:
		// Replies arrive even after the user has left the chat scene
		var cmd tea.Cmd
		m.chat, cmd = m.chat.Update(msg)
		return m, cmd
	}

	return m.updateCurrentScene(msg)
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Any key dismisses an error
	if m.err != nil {
		m.err = nil
		return m, nil
	}
	if m.loading {
		return m, nil
	}

	switch msg.String() {
	case "?":
		// The chat input accepts '?' as text
		if m.currentScene != SceneChat && m.currentScene != SceneHelp {
			return m, navigate(SceneHelp)
		}

	case "esc":
		return m.back()

	case "q":
		if m.currentScene == SceneDashboard || m.currentScene == SceneHelp {
			return m, tea.Quit
		}

	case "n":
		if m.currentScene == SceneDashboard {
			return m, tea.Batch(m.form.Reset(), navigate(SceneForm))
		}

	case "c":
		if m.currentScene == SceneDashboard {
			return m, tea.Batch(m.chat.Focus(), navigate(SceneChat))
		}
	}

	return m.updateCurrentScene(msg)
}

// back goes to the scene the current one was opened from
func (m Model) back() (tea.Model, tea.Cmd) {
	switch m.currentScene {
	case SceneHelp:
		prev := m.previousScene
		if prev == SceneHelp {
			prev = SceneForm
		}
		return m, navigate(prev)
	case SceneChat:
		return m, navigate(SceneDashboard)
	case SceneForm:
		m.form.PrevStep()
	}
	return m, nil
}

// updateCurrentScene delegates updates to the current scene's model
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentScene {
	case SceneForm:
		m.form, cmd = m.form.Update(msg)
	case SceneDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	case SceneChat:
		m.chat, cmd = m.chat.Update(msg)
	}
	return m, cmd
}

func navigate(scene Scene) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Scene: scene}
	}
}
