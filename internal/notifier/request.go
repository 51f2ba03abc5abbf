package notifier

import (
	"fmt"
	"strings"
	"time"
)

// Duration is the display-duration hint of a notification.
type Duration int

const (
	// Short shows the balloon for five seconds. It is the zero value.
	Short Duration = iota
	// Long shows the balloon for ten seconds.
	Long
)

// ParseDuration parses "short" or "long". The empty string means Short.
func ParseDuration(s string) (Duration, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "short":
		return Short, nil
	case "long":
		return Long, nil
	default:
		return Short, fmt.Errorf("unknown display duration %q (want short or long)", s)
	}
}

func (d Duration) String() string {
	if d == Long {
		return "long"
	}
	return "short"
}

// BalloonTimeout is how long the balloon tip stays visible.
func (d Duration) BalloonTimeout() time.Duration {
	if d == Long {
		return 10 * time.Second
	}
	return 5 * time.Second
}

// Request is a single notification to deliver.
type Request struct {
	Title    string
	Message  string
	Duration Duration
}

// Result reports the outcome of a send. Err is set when OK is false.
type Result struct {
	OK  bool
	Err error
}

// Kind classifies why a notification could not be delivered.
type Kind int

const (
	// KindSpawn means the interpreter could not be started.
	KindSpawn Kind = iota
	// KindExit means the interpreter ran but exited non-zero.
	KindExit
	// KindTimeout means the interpreter did not finish in time.
	KindTimeout
	// KindCanceled means the caller's context was canceled.
	KindCanceled
)

func (k Kind) String() string {
	switch k {
	case KindSpawn:
		return "spawn"
	case KindExit:
		return "exit"
	case KindTimeout:
		return "timeout"
	case KindCanceled:
		return "canceled"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// DeliveryError is returned when a notification could not be delivered.
type DeliveryError struct {
	Kind     Kind
	ExitCode int
	Output   string
	Timeout  time.Duration
	Err      error
}

func (e *DeliveryError) Error() string {
	switch e.Kind {
	case KindExit:
		if out := strings.TrimSpace(e.Output); out != "" {
			return fmt.Sprintf("notifier exited with code %d: %s", e.ExitCode, out)
		}
		return fmt.Sprintf("notifier exited with code %d", e.ExitCode)
	case KindTimeout:
		return fmt.Sprintf("notifier timed out after %s", e.Timeout)
	case KindCanceled:
		return "notification canceled"
	default:
		return fmt.Sprintf("failed to start notifier: %v", e.Err)
	}
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
