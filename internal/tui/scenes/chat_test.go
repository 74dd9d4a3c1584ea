package scenes

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/finhealth/internal/advisor"
	"github.com/rgehrsitz/finhealth/internal/calculation"
	"github.com/rgehrsitz/finhealth/internal/tui/tuimsg"
)

type stubAdvisor struct {
	mu    sync.Mutex
	reply string
	err   error
	calls int
}

func (s *stubAdvisor) GetAdvice(_ context.Context, _ []advisor.Message) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return "", fmt.Errorf("%w: %v", advisor.ErrUnavailable, s.err)
	}
	return s.reply, nil
}

func newTestChat(adv advisor.Advisor) *ChatModel {
	data := healthySnapshot()
	session := advisor.NewSession(adv, data, calculation.Evaluate(data))
	c := NewChatModel(session)
	c.Focus()
	return c
}

func replyFrom(t *testing.T, msgs []tea.Msg) tuimsg.ChatReplyMsg {
	t.Helper()
	for _, msg := range msgs {
		if r, ok := msg.(tuimsg.ChatReplyMsg); ok {
			return r
		}
	}
	require.FailNow(t, "no ChatReplyMsg produced")
	return tuimsg.ChatReplyMsg{}
}

func TestChatShowsGreeting(t *testing.T) {
	c := newTestChat(&stubAdvisor{})

	assert.Contains(t, c.Transcript(), "Your score is 100/100")
	assert.False(t, c.Pending())
}

func TestChatWithoutSession(t *testing.T) {
	c := NewChatModel(nil)
	c.Focus()

	c, _ = c.Update(typeKeys("hello"))
	_, cmd := c.Update(enterKey)

	assert.Nil(t, cmd)
	assert.Contains(t, c.Transcript(), "Complete an analysis")
}

func TestChatAskRoundTrip(t *testing.T) {
	adv := &stubAdvisor{reply: "Keep your SIP running."}
	c := newTestChat(adv)

	c, _ = c.Update(typeKeys("What next?"))
	c, cmd := c.Update(enterKey)
	require.NotNil(t, cmd)

	assert.True(t, c.Pending())
	assert.Contains(t, c.Transcript(), "What next?")
	assert.Contains(t, c.Transcript(), "Thinking...")

	// A second question is ignored while one is in flight
	c, _ = c.Update(typeKeys("again"))
	_, again := c.Update(enterKey)
	assert.Nil(t, again)

	reply := replyFrom(t, runCmd(cmd))
	assert.Equal(t, "What next?", reply.Question)
	assert.Equal(t, "Keep your SIP running.", reply.Reply)
	assert.NoError(t, reply.Err)

	c, _ = c.Update(reply)
	assert.False(t, c.Pending())
	assert.NotContains(t, c.Transcript(), "Thinking...")
	assert.Contains(t, c.Transcript(), "Keep your SIP running.")
	assert.Equal(t, 1, adv.calls)
}

func TestChatFallbackOnAdvisorError(t *testing.T) {
	c := newTestChat(&stubAdvisor{err: errors.New("connection refused")})

	c, _ = c.Update(typeKeys("Help?"))
	c, cmd := c.Update(enterKey)

	reply := replyFrom(t, runCmd(cmd))
	assert.ErrorIs(t, reply.Err, advisor.ErrUnavailable)
	assert.Equal(t, advisor.FallbackReply, reply.Reply)

	c, _ = c.Update(reply)
	assert.ErrorIs(t, c.LastErr(), advisor.ErrUnavailable)
	assert.Contains(t, c.Transcript(), "trouble connecting")
}

func TestChatBlankQuestionIgnored(t *testing.T) {
	adv := &stubAdvisor{reply: "unused"}
	c := newTestChat(adv)

	c, _ = c.Update(typeKeys("   "))
	_, cmd := c.Update(enterKey)

	assert.Nil(t, cmd)
	assert.False(t, c.Pending())
	assert.Equal(t, 0, adv.calls)
}
