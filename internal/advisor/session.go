package advisor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rgehrsitz/finhealth/internal/calculation"
	"github.com/rgehrsitz/finhealth/internal/domain"
)

// FallbackReply is shown when the advisor cannot be reached
const FallbackReply = "I'm sorry, I'm having trouble connecting to my brain right now. Please try again in a moment."

// Greeting opens every new session
func Greeting(result *domain.FinancialResult) string {
	return fmt.Sprintf("Hello! I've analyzed your financial health. Your score is %d/100 with a %s risk level. How can I help you improve your roadmap today?",
		result.Score, result.RiskLevel)
}

// Session keeps the conversation about one evaluated snapshot
type Session struct {
	mu      sync.Mutex
	advisor Advisor
	data    domain.FinancialData
	result  *domain.FinancialResult
	history []Message
	logger  calculation.Logger
}

// NewSession starts a conversation seeded with the greeting
func NewSession(a Advisor, data domain.FinancialData, result *domain.FinancialResult) *Session {
	return RestoreSession(a, data, result, nil)
}

// RestoreSession resumes a conversation from earlier turns. An empty
// history is seeded with the greeting. Restored turns keep only the user and
// advisor roles; anything else is treated as a user turn.
func RestoreSession(a Advisor, data domain.FinancialData, result *domain.FinancialResult, history []Message) *Session {
	if result == nil {
		result = &domain.FinancialResult{}
	}
	s := &Session{
		advisor: a,
		data:    data,
		result:  result.Clone(),
		logger:  calculation.NopLogger{},
	}
	if len(history) == 0 {
		s.history = []Message{{Role: RoleAI, Content: Greeting(result)}}
	} else {
		s.history = make([]Message, len(history))
		for i, m := range history {
			s.history[i] = Message{Role: conversationRole(m.Role), Content: m.Content}
		}
	}
	return s
}

// SetLogger sets the logger used to report advisor failures
func (s *Session) SetLogger(l calculation.Logger) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l == nil {
		s.logger = calculation.NopLogger{}
		return
	}
	s.logger = l
}

// History returns a copy of the conversation so far
func (s *Session) History() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Message(nil), s.history...)
}

// Ask sends a question and records the reply. Blank questions are ignored
// and return an empty reply. When the advisor fails, the fallback reply is
// recorded and returned together with the cause.
func (s *Session) Ask(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	messages := make([]Message, 0, len(s.history)+2)
	messages = append(messages, Message{Role: RoleSystem, Content: BuildSystemPrompt(s.data, s.result)})
	for _, m := range s.history {
		messages = append(messages, Message{Role: WireRole(m.Role), Content: m.Content})
	}
	messages = append(messages, Message{Role: RoleUser, Content: question})

	s.history = append(s.history, Message{Role: RoleUser, Content: question})

	reply, err := s.advisor.GetAdvice(ctx, messages)
	if err != nil {
		if errors.Is(err, ErrNotConfigured) {
			s.logger.Warnf("advisor not configured, using fallback reply: %v", err)
		} else {
			s.logger.Errorf("chat error: %v", err)
		}
		s.history = append(s.history, Message{Role: RoleAI, Content: FallbackReply})
		return FallbackReply, err
	}

	s.history = append(s.history, Message{Role: RoleAI, Content: reply})
	return reply, nil
}
