package notifier

import (
	"context"
	"os/exec"
)

// execer is an interface to allow mocking of exec.CommandContext.
type execer interface {
	CommandContext(ctx context.Context, name string, arg ...string) *exec.Cmd
}

type realExecer struct{}

func (e *realExecer) CommandContext(ctx context.Context, name string, arg ...string) *exec.Cmd {
	return exec.CommandContext(ctx, name, arg...)
}
