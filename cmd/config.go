package cmd

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/mblarsen/wsl-notify/internal/config"
	"github.com/mblarsen/wsl-notify/internal/fileutil"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the wsl-notify configuration.",
	Long:  `Manage the wsl-notify configuration.`,
	// Only set up logging here, so a broken config file can still be replaced.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger(cmd, config.Default())
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file.",
	Long:  `Writes the default configuration to the config path. An existing file is left alone unless --force is given.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _, err := configPath(cmd)
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")
		if format == "" {
			format = config.FormatFor(path)
		}
		force, _ := cmd.Flags().GetBool("force")

		var buf bytes.Buffer
		if err := config.Default().Encode(&buf, format); err != nil {
			return err
		}
		if _, err := fileutil.AtomicWriteFile(path, buf.Bytes(), 0644, force); err != nil {
			if errors.Is(err, fileutil.ErrExists) {
				return fmt.Errorf("config file %s already exists, use --force to overwrite it", path)
			}
			return fmt.Errorf("failed to write config: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote default configuration to %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration.",
	Long:  `Prints the configuration after applying the config file, its local override and any flags.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")
		return c.Encode(cmd.OutOrStdout(), format)
	},
}

func init() {
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing config file.")
	configInitCmd.Flags().String("format", "", "File format: toml or yaml (default from the file extension).")
	configShowCmd.Flags().String("format", config.FormatTOML, "Output format: toml or yaml.")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
