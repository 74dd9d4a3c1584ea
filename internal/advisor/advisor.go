// Package advisor holds the conversational advice collaborator. It reads
// evaluation results and never feeds anything back into scoring.
package advisor

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnavailable is wrapped by every failure to obtain advice
var ErrUnavailable = errors.New("advisor unavailable")

// ErrNotConfigured means no provider or API key is set up. It wraps
// ErrUnavailable.
var ErrNotConfigured = fmt.Errorf("%w: advisor is not configured", ErrUnavailable)

// Role identifies the author of a chat message
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	// RoleAI is the conversation-level name for advisor replies
	RoleAI Role = "ai"
)

// Message is one turn of a conversation
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Advisor answers a conversation with a single reply
type Advisor interface {
	GetAdvice(ctx context.Context, messages []Message) (string, error)
}

// WireRole maps a conversation role onto the chat-completions vocabulary
func WireRole(r Role) Role {
	switch r {
	case RoleAI, RoleAssistant:
		return RoleAssistant
	case RoleSystem:
		return RoleSystem
	default:
		return RoleUser
	}
}

// conversationRole restricts a stored turn to the user or the advisor.
// System instructions only ever come from the session itself.
func conversationRole(r Role) Role {
	switch r {
	case RoleAI, RoleAssistant:
		return RoleAI
	default:
		return RoleUser
	}
}

// Disabled is an Advisor that is never available
type Disabled struct{}

func (Disabled) GetAdvice(context.Context, []Message) (string, error) {
	return "", ErrNotConfigured
}
