package cmd

import (
	"fmt"

	"github.com/mblarsen/wsl-notify/internal/config"
	"github.com/mblarsen/wsl-notify/internal/notifier"
	"github.com/mblarsen/wsl-notify/internal/xdgpath"
	"github.com/spf13/cobra"
)

// Overridable for testing.
var newBackend = func(c *config.Config) (notifier.Backend, error) {
	timeout, err := c.TimeoutDuration()
	if err != nil {
		return nil, err
	}
	switch c.Backend {
	case config.BackendLocal:
		return notifier.NewLocal(timeout), nil
	default:
		return notifier.NewPowerShell(c.PowerShellPath, timeout, c.EncodedCommand), nil
	}
}

func newNotifier(c *config.Config) (*notifier.Notifier, error) {
	backend, err := newBackend(c)
	if err != nil {
		return nil, err
	}
	d, err := c.DisplayDuration()
	if err != nil {
		return nil, err
	}
	return notifier.New(backend,
		notifier.WithCompletionTitle(c.CompletionTitle),
		notifier.WithErrorTitle(c.ErrorTitle),
		notifier.WithDuration(d),
	), nil
}

// configPath returns the --config value or the default location.
func configPath(cmd *cobra.Command) (path string, explicit bool, err error) {
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		return p, true, nil
	}
	path, err = xdgpath.ConfigPath(config.FileName)
	if err != nil {
		return "", false, fmt.Errorf("failed to get config path: %w", err)
	}
	return path, false, nil
}

// loadConfig reads the config file and applies any flags the user set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, explicit, err := configPath(cmd)
	if err != nil {
		return nil, err
	}

	var c *config.Config
	if explicit {
		c, err = config.Load(path)
	} else {
		c, err = config.LoadOrDefault(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("timeout") {
		timeout, _ := flags.GetDuration("timeout")
		c.Timeout = timeout.String()
	}
	if flags.Changed("duration") {
		c.Duration, _ = flags.GetString("duration")
	}
	if flags.Changed("powershell") {
		c.PowerShellPath, _ = flags.GetString("powershell")
	}
	if flags.Changed("backend") {
		c.Backend, _ = flags.GetString("backend")
	}
	if flags.Changed("log-level") {
		c.LogLevel, _ = flags.GetString("log-level")
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
