package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThreads_NewStartsWithOneThread(t *testing.T) {
	th := NewThreads()

	assert.Equal(t, "chat1", th.Active())
	assert.Equal(t, []string{"chat1"}, th.Names())
	assert.Empty(t, th.Messages("chat1"))
}

func TestThreads_NewThreadBecomesActive(t *testing.T) {
	th := NewThreads()
	name := th.New()

	assert.Equal(t, "chat2", name)
	assert.Equal(t, "chat2", th.Active())
	assert.Equal(t, []string{"chat1", "chat2"}, th.Names())
}

func TestThreads_SwitchSwapsHistory(t *testing.T) {
	th := NewThreads()
	th.Append("chat1", ChatMessage{Role: "user", Content: "first"})
	th.New()
	th.Append("chat2", ChatMessage{Role: "user", Content: "second"})

	assert.True(t, th.Switch("chat1"))
	assert.Equal(t, "chat1", th.Active())
	assert.Equal(t, "first", th.Messages(th.Active())[0].Content)

	assert.False(t, th.Switch("nope"))
	assert.Equal(t, "chat1", th.Active())
}

func TestThreads_NextCycles(t *testing.T) {
	th := NewThreads()
	th.New()
	th.New()
	th.Switch("chat1")

	assert.Equal(t, "chat2", th.Next())
	assert.Equal(t, "chat3", th.Next())
	assert.Equal(t, "chat1", th.Next())
}

func TestThreads_AppendPreservesOrder(t *testing.T) {
	th := NewThreads()
	th.Append("chat1", ChatMessage{Role: "user", Content: "a"})
	th.Append("chat1", ChatMessage{Role: "assistant", Content: "b"})
	th.Append("unknown", ChatMessage{Role: "user", Content: "dropped"})

	msgs := th.Messages("chat1")
	assert.Len(t, msgs, 2)
	assert.Equal(t, "a", msgs[0].Content)
	assert.Equal(t, "b", msgs[1].Content)
	assert.Empty(t, th.Messages("unknown"))
}
