package cmd

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mblarsen/wsl-notify/internal/config"
	"github.com/spf13/cobra"
)

// setupLogger installs a tint handler on stderr. WSL_NOTIFY_LOG_LEVEL wins
// over the config file; --log-level was already folded into c.
func setupLogger(cmd *cobra.Command, c *config.Config) {
	logLevel, err := c.Level()
	if err != nil {
		logLevel = slog.LevelWarn
	}
	if levelStr := os.Getenv("WSL_NOTIFY_LOG_LEVEL"); levelStr != "" && !cmd.Flags().Changed("log-level") {
		var l slog.Level
		if err := l.UnmarshalText([]byte(levelStr)); err == nil {
			logLevel = l
		}
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(cmd.ErrOrStderr(), &tint.Options{
			Level:      logLevel,
			TimeFormat: time.Kitchen,
			NoColor:    os.Getenv("NO_COLOR") != "",
		}),
	))
}
