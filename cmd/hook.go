package cmd

import (
	"fmt"
	"log/slog"

	"github.com/mblarsen/wsl-notify/internal/hook"
	"github.com/mblarsen/wsl-notify/internal/notifier"
	"github.com/spf13/cobra"
)

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Send a notification described by a JSON hook payload on stdin.",
	Long: `Reads a JSON hook payload from stdin and sends the matching notification.

Stop and SubagentStop events send a completion notification, payloads with an
"error" field or an error event name send an error notification, and
Notification events (or any payload with a "message") are shown as is.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ev, err := hook.Read(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read hook payload: %w", err)
		}
		slog.Debug("Received hook event", "name", ev.Name, "kind", ev.Kind)

		n, err := newNotifier(cfg)
		if err != nil {
			return err
		}

		var res notifier.Result
		switch ev.Kind {
		case hook.KindError:
			res = n.SendError(cmd.Context(), ev.Error)
		case hook.KindNotification:
			d, err := cfg.DisplayDuration()
			if err != nil {
				return err
			}
			title := ev.Title
			if title == "" {
				title = cfg.CompletionTitle
			}
			res = n.Send(cmd.Context(), notifier.Request{Title: title, Message: ev.Message, Duration: d})
		default:
			res = n.SendCompletion(cmd.Context(), ev.Task)
		}
		return reportResult(cmd, res)
	},
}

func init() {
	rootCmd.AddCommand(hookCmd)
}
