package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/mblarsen/wsl-notify/internal/config"
	"github.com/mblarsen/wsl-notify/internal/notifier"
	"github.com/spf13/cobra"
)

var version = "dev"

const usageLine = "Usage: wsl-notify [task] | wsl-notify [title] [message]"

// cfg is the effective configuration, loaded before any command runs.
var cfg = config.Default()

var rootCmd = &cobra.Command{
	Use:   "wsl-notify [task] | [title message]",
	Short: "Send a Windows desktop notification from WSL2.",
	Long: `wsl-notify shows a balloon notification on the Windows host by running
Windows PowerShell from inside a WSL2 distribution.

With no arguments it sends a generic completion notification, with one
argument it names the completed task, and with two arguments it sends an
explicit title and message. Arguments that collide with a subcommand name
can be passed after "--".`,
	Args:              validateArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: preRun,
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := newNotifier(cfg)
		if err != nil {
			return err
		}

		var res notifier.Result
		switch len(args) {
		case 0:
			res = n.SendCompletion(cmd.Context(), "")
		case 1:
			res = n.SendCompletion(cmd.Context(), args[0])
		default:
			d, err := cfg.DisplayDuration()
			if err != nil {
				return err
			}
			res = n.Send(cmd.Context(), notifier.Request{Title: args[0], Message: args[1], Duration: d})
		}
		return reportResult(cmd, res)
	},
}

func validateArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 2 {
		fmt.Fprintln(cmd.ErrOrStderr(), usageLine)
		return &reportedError{err: fmt.Errorf("accepts at most 2 args, received %d", len(args))}
	}
	return nil
}

// preRun loads the configuration, applies flag overrides and sets up logging.
func preRun(cmd *cobra.Command, args []string) error {
	c, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cfg = c
	setupLogger(cmd, cfg)
	return nil
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to a config file (default $XDG_CONFIG_HOME/wsl-notify/config.toml).")
	flags.Duration("timeout", notifier.DefaultTimeout, "Give up on PowerShell after this long.")
	flags.String("duration", "", "Display duration of the balloon: short or long.")
	flags.String("powershell", "", "Path to the Windows powershell.exe.")
	flags.String("backend", "", "Notification backend: powershell or local.")
	flags.String("log-level", "", "Log level: debug, info, warn or error.")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	err := fang.Execute(context.Background(), rootCmd,
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(handleError),
	)
	if err != nil {
		os.Exit(1)
	}
}

func handleError(w io.Writer, styles fang.Styles, err error) {
	var reported *reportedError
	if errors.As(err, &reported) {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}
