package notifier

import (
	"context"
	"fmt"
	"log/slog"
)

const (
	// DefaultCompletionTitle is the title of completion notifications.
	DefaultCompletionTitle = "Task Complete"
	// DefaultErrorTitle is the title of error notifications.
	DefaultErrorTitle = "Task Error"
)

// Backend delivers a single notification. A nil error means it was shown.
type Backend interface {
	Deliver(ctx context.Context, req Request) error
}

// Notifier builds notification requests and hands them to a Backend.
type Notifier struct {
	backend         Backend
	completionTitle string
	errorTitle      string
	duration        Duration
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithCompletionTitle overrides the title used by SendCompletion.
func WithCompletionTitle(title string) Option {
	return func(n *Notifier) {
		if title != "" {
			n.completionTitle = title
		}
	}
}

// WithErrorTitle overrides the title used by SendError.
func WithErrorTitle(title string) Option {
	return func(n *Notifier) {
		if title != "" {
			n.errorTitle = title
		}
	}
}

// WithDuration sets the display duration of completion notifications.
func WithDuration(d Duration) Option {
	return func(n *Notifier) {
		n.duration = d
	}
}

// New returns a Notifier that delivers through backend.
func New(backend Backend, opts ...Option) *Notifier {
	n := &Notifier{
		backend:         backend,
		completionTitle: DefaultCompletionTitle,
		errorTitle:      DefaultErrorTitle,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Send delivers req. It never panics; every failure is reported in the
// Result and logged.
func (n *Notifier) Send(ctx context.Context, req Request) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("notification backend panicked: %v", r)
			slog.Error("Failed to send notification", "title", req.Title, "err", err)
			res = Result{Err: err}
		}
	}()

	if err := n.backend.Deliver(ctx, req); err != nil {
		slog.Error("Failed to send notification", "title", req.Title, "err", err)
		return Result{Err: err}
	}
	slog.Debug("Notification sent", "title", req.Title, "duration", req.Duration)
	return Result{OK: true}
}

// SendCompletion announces that a task finished. An empty task yields a
// generic message.
func (n *Notifier) SendCompletion(ctx context.Context, task string) Result {
	return n.Send(ctx, n.CompletionRequest(task))
}

// SendError announces an error. It is shown with the Long duration.
func (n *Notifier) SendError(ctx context.Context, errMsg string) Result {
	return n.Send(ctx, n.ErrorRequest(errMsg))
}

// CompletionRequest is the request SendCompletion sends.
func (n *Notifier) CompletionRequest(task string) Request {
	message := "The task completed successfully."
	if task != "" {
		message = fmt.Sprintf("Task \"%s\" has completed.", task)
	}
	return Request{Title: n.completionTitle, Message: message, Duration: n.duration}
}

// ErrorRequest is the request SendError sends.
func (n *Notifier) ErrorRequest(errMsg string) Request {
	return Request{
		Title:    n.errorTitle,
		Message:  "An error occurred: " + errMsg,
		Duration: Long,
	}
}
