package hook

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected Event
	}{
		{
			name:     "empty payload",
			input:    "  \n",
			expected: Event{Kind: KindCompletion},
		},
		{
			name:     "stop event",
			input:    `{"session_id":"abc","hook_event_name":"Stop","stop_hook_active":false}`,
			expected: Event{Kind: KindCompletion, Name: "Stop"},
		},
		{
			name:     "subagent stop with task",
			input:    `{"hook_event_name":"SubagentStop","task":"refactor parser"}`,
			expected: Event{Kind: KindCompletion, Name: "SubagentStop", Task: "refactor parser"},
		},
		{
			name:     "notification event",
			input:    `{"hook_event_name":"Notification","message":"Waiting for your input"}`,
			expected: Event{Kind: KindNotification, Name: "Notification", Message: "Waiting for your input"},
		},
		{
			name:     "notification with title",
			input:    `{"title":"Build","message":"green"}`,
			expected: Event{Kind: KindNotification, Title: "Build", Message: "green"},
		},
		{
			name:     "explicit error field",
			input:    `{"hook_event_name":"PostToolUse","tool_name":"Bash","error":"disk full"}`,
			expected: Event{Kind: KindError, Name: "PostToolUse", Task: "Bash", Error: "disk full"},
		},
		{
			name:     "error event falls back to message",
			input:    `{"hook_event_name":"PostToolUseFailure","message":"command failed"}`,
			expected: Event{Kind: KindError, Name: "PostToolUseFailure", Message: "command failed", Error: "command failed"},
		},
		{
			name:     "unknown event",
			input:    `{"hook_event_name":"SessionStart"}`,
			expected: Event{Kind: KindCompletion, Name: "SessionStart"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ev, err := Parse([]byte(tc.input))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, ev)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte(`{"hook_event_name":`))
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestRead(t *testing.T) {
	ev, err := Read(strings.NewReader(`{"hook_event_name":"Stop"}`))
	require.NoError(t, err)
	assert.Equal(t, KindCompletion, ev.Kind)

	_, err = Read(strings.NewReader(strings.Repeat(" ", maxPayload+1)))
	assert.Error(t, err)
}
