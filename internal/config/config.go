package config

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/mblarsen/wsl-notify/internal/notifier"
	"gopkg.in/yaml.v3"
)

// FileName is the default config file name.
const FileName = "config.toml"

// Backends.
const (
	BackendPowerShell = "powershell"
	BackendLocal      = "local"
)

// Formats.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// Config represents the structure of the wsl-notify config file.
type Config struct {
	Backend         string `toml:"backend" yaml:"backend"`
	PowerShellPath  string `toml:"powershell_path" yaml:"powershell_path"`
	Timeout         string `toml:"timeout" yaml:"timeout"`
	Duration        string `toml:"duration" yaml:"duration"`
	EncodedCommand  bool   `toml:"encoded_command" yaml:"encoded_command"`
	CompletionTitle string `toml:"completion_title" yaml:"completion_title"`
	ErrorTitle      string `toml:"error_title" yaml:"error_title"`
	LogLevel        string `toml:"log_level" yaml:"log_level"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Backend:         BackendPowerShell,
		PowerShellPath:  notifier.DefaultPowerShellPath,
		Timeout:         notifier.DefaultTimeout.String(),
		Duration:        notifier.Short.String(),
		CompletionTitle: notifier.DefaultCompletionTitle,
		ErrorTitle:      notifier.DefaultErrorTitle,
		LogLevel:        "warn",
	}
}

// Load reads the config file at path on top of the defaults, then applies a
// sibling local override (config.local.toml for config.toml) if one exists.
func Load(path string) (*Config, error) {
	cfg := Default()
	if err := decodeFile(path, cfg); err != nil {
		return nil, err
	}

	localPath := LocalPath(path)
	if _, err := os.Stat(localPath); err == nil {
		slog.Debug("Applying local config override", "path", localPath)
		if err := decodeFile(localPath, cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault is like Load but returns the defaults when path does not exist.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		slog.Debug("No config file found, using defaults", "path", path)
		return Default(), nil
	}
	return Load(path)
}

// LocalPath returns the override path for a config file.
func LocalPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + ".local" + ext
}

// FormatFor picks the file format from the path extension.
func FormatFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func decodeFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if FormatFor(path) == FormatYAML {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && err != io.EOF {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return nil
	}

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	return nil
}

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendPowerShell:
		if c.PowerShellPath == "" {
			return fmt.Errorf("powershell_path is required for backend '%s'", c.Backend)
		}
	case BackendLocal:
	default:
		return fmt.Errorf("unknown backend '%s'", c.Backend)
	}

	if _, err := c.TimeoutDuration(); err != nil {
		return err
	}
	if _, err := c.DisplayDuration(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// TimeoutDuration parses Timeout. It must be positive.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout '%s': %w", c.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("timeout must be positive, got '%s'", c.Timeout)
	}
	return d, nil
}

// DisplayDuration parses Duration.
func (c *Config) DisplayDuration() (notifier.Duration, error) {
	return notifier.ParseDuration(c.Duration)
}

// Level parses LogLevel. Empty means warn.
func (c *Config) Level() (slog.Level, error) {
	if c.LogLevel == "" {
		return slog.LevelWarn, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level '%s': %w", c.LogLevel, err)
	}
	return l, nil
}

// Encode writes c to w in the given format.
func (c *Config) Encode(w io.Writer, format string) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML, "":
		return toml.NewEncoder(w).Encode(c)
	default:
		return fmt.Errorf("unknown format '%s' (want toml or yaml)", format)
	}
}
