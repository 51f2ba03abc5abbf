package notifier

import (
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"time"
)

const (
	// DefaultPowerShellPath is where WSL2 mounts the Windows PowerShell binary.
	DefaultPowerShellPath = "/mnt/c/Windows/System32/WindowsPowerShell/v1.0/powershell.exe"
	// DefaultTimeout bounds a single PowerShell invocation.
	DefaultTimeout = 15 * time.Second

	// linger keeps the tray icon alive a little past the balloon timeout.
	linger = time.Second
	// waitDelay caps how long Wait blocks on pipes after the child is killed.
	waitDelay = time.Second
)

// PowerShell delivers notifications by running Windows PowerShell from WSL.
type PowerShell struct {
	// Path is the interpreter executable.
	Path string
	// Timeout bounds each invocation. Zero means DefaultTimeout.
	Timeout time.Duration
	// EncodeCommand passes the script with -EncodedCommand instead of -Command.
	EncodeCommand bool

	execer execer
}

// NewPowerShell returns a PowerShell backend for the given interpreter.
func NewPowerShell(path string, timeout time.Duration, encode bool) *PowerShell {
	if path == "" {
		path = DefaultPowerShellPath
	}
	return &PowerShell{
		Path:          path,
		Timeout:       timeout,
		EncodeCommand: encode,
		execer:        &realExecer{},
	}
}

// Command returns the argv used to deliver req, interpreter path first.
func (p *PowerShell) Command(req Request) ([]string, error) {
	script := BuildScript(req)
	args := []string{p.Path, "-NoProfile", "-NonInteractive"}
	if !p.EncodeCommand {
		return append(args, "-Command", script), nil
	}
	encoded, err := encodeCommand(script)
	if err != nil {
		return nil, err
	}
	return append(args, "-EncodedCommand", encoded), nil
}

// Deliver runs PowerShell and waits for it, at most Timeout.
func (p *PowerShell) Deliver(ctx context.Context, req Request) error {
	argv, err := p.Command(req)
	if err != nil {
		return &DeliveryError{Kind: KindSpawn, Err: err}
	}

	timeout := p.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	e := p.execer
	if e == nil {
		e = &realExecer{}
	}
	cmd := e.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.WaitDelay = waitDelay

	slog.Debug("Running PowerShell", "path", argv[0], "timeout", timeout)
	output, err := cmd.CombinedOutput()
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return &DeliveryError{Kind: KindTimeout, Timeout: timeout, Output: string(output), Err: ctx.Err()}
	case errors.Is(ctx.Err(), context.Canceled):
		return &DeliveryError{Kind: KindCanceled, Output: string(output), Err: ctx.Err()}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &DeliveryError{
			Kind:     KindExit,
			ExitCode: exitErr.ExitCode(),
			Output:   string(output),
			Err:      err,
		}
	}
	return &DeliveryError{Kind: KindSpawn, Err: err}
}
