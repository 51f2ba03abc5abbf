package cmd

import (
	"fmt"

	"github.com/mblarsen/wsl-notify/internal/notifier"
	"github.com/spf13/cobra"
)

// reportedError is an error that has already been shown to the user. It
// still makes the process exit non-zero.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string {
	return e.err.Error()
}

func (e *reportedError) Unwrap() error {
	return e.err
}

// reportResult prints the outcome of a send and turns failure into an error.
func reportResult(cmd *cobra.Command, res notifier.Result) error {
	if !res.OK {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Failed to send notification.")
		return &reportedError{err: fmt.Errorf("notification could not be delivered: %w", res.Err)}
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Notification sent.")
	return nil
}
