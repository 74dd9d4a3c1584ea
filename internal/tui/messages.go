package tui

import (
	"github.com/rgehrsitz/finhealth/internal/tui/tuimsg"
)

// Scene represents different screens in the TUI
type Scene int

const (
	SceneForm Scene = iota
	SceneDashboard
	SceneChat
	SceneHelp
)

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// QuitMsg signals the application should exit
type QuitMsg struct{}

// Messages shared with the scenes
type (
	ErrorMsg          = tuimsg.ErrorMsg
	SnapshotLoadedMsg = tuimsg.SnapshotLoadedMsg
	SubmitMsg         = tuimsg.SubmitMsg
	ChatReplyMsg      = tuimsg.ChatReplyMsg
)
