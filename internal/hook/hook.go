// Package hook turns JSON hook payloads into notification events.
package hook

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tidwall/gjson"
)

// maxPayload caps how much of stdin is read.
const maxPayload = 1 << 20

// Kind is the notification an event maps to.
type Kind int

const (
	// KindCompletion announces a finished task.
	KindCompletion Kind = iota
	// KindNotification carries an explicit title and message.
	KindNotification
	// KindError announces a failure.
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindNotification:
		return "notification"
	case KindError:
		return "error"
	default:
		return "completion"
	}
}

// Event is the notification-relevant part of a hook payload.
type Event struct {
	Kind    Kind
	Name    string
	Title   string
	Message string
	Task    string
	Error   string
}

// ErrInvalidPayload is returned for input that is not JSON.
var ErrInvalidPayload = errors.New("hook payload is not valid JSON")

// Read reads and parses a payload from r.
func Read(r io.Reader) (Event, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxPayload+1))
	if err != nil {
		return Event{}, err
	}
	if len(data) > maxPayload {
		return Event{}, fmt.Errorf("hook payload exceeds %d bytes", maxPayload)
	}
	return Parse(data)
}

// Parse maps a payload to an Event. An empty payload is a plain completion.
func Parse(data []byte) (Event, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return Event{Kind: KindCompletion}, nil
	}
	if !gjson.ValidBytes(data) {
		return Event{}, ErrInvalidPayload
	}

	fields := gjson.GetManyBytes(data, "hook_event_name", "title", "message", "error", "task", "tool_name")
	ev := Event{
		Name:    fields[0].String(),
		Title:   fields[1].String(),
		Message: fields[2].String(),
		Error:   fields[3].String(),
		Task:    fields[4].String(),
	}
	if ev.Task == "" {
		ev.Task = fields[5].String()
	}

	switch {
	case ev.Error != "" || strings.Contains(ev.Name, "Error") || strings.Contains(ev.Name, "Failure"):
		ev.Kind = KindError
		if ev.Error == "" {
			ev.Error = ev.Message
		}
	case ev.Name == "Stop" || ev.Name == "SubagentStop":
		ev.Kind = KindCompletion
	case ev.Name == "Notification" || ev.Message != "":
		ev.Kind = KindNotification
	default:
		ev.Kind = KindCompletion
	}
	return ev, nil
}
