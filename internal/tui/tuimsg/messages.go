package tuimsg

import (
	"github.com/rgehrsitz/finhealth/internal/domain"
)

// SnapshotLoadedMsg carries a profile read from a snapshot file
type SnapshotLoadedMsg struct {
	ProfileName string
	Data        domain.FinancialData
}

// SubmitMsg is sent once when the form's final step is confirmed
type SubmitMsg struct {
	Data domain.FinancialData
}

// ChatReplyMsg carries the advisor's answer. Reply holds the fallback text
// when Err is set.
type ChatReplyMsg struct {
	Question string
	Reply    string
	Err      error
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}
