package notifier

import (
	"context"
	"errors"
	"time"

	"github.com/gen2brain/beeep"
)

// Local delivers notifications through the desktop notification service of
// the machine the binary runs on.
type Local struct {
	// Icon is an optional icon path.
	Icon string
	// Timeout bounds each delivery. Zero means DefaultTimeout.
	Timeout time.Duration

	notify func(title, message, icon string) error
}

// NewLocal returns a beeep-backed Local backend.
func NewLocal(timeout time.Duration) *Local {
	return &Local{
		Timeout: timeout,
		notify: func(title, message, icon string) error {
			return beeep.Notify(title, message, icon)
		},
	}
}

// Deliver shows req using beeep. beeep does not take a context, so a
// delivery that outlives the timeout is abandoned and reported as failed.
func (l *Local) Deliver(ctx context.Context, req Request) error {
	timeout := l.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- l.notify(sanitize(req.Title), sanitize(req.Message), l.Icon)
	}()

	select {
	case err := <-done:
		if err != nil {
			return &DeliveryError{Kind: KindSpawn, Err: err}
		}
		return nil
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.Canceled) {
			return &DeliveryError{Kind: KindCanceled, Err: ctx.Err()}
		}
		return &DeliveryError{Kind: KindTimeout, Timeout: timeout, Err: ctx.Err()}
	}
}
