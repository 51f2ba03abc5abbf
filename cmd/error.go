package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

var errorCmd = &cobra.Command{
	Use:   "error <message>...",
	Short: "Send an error notification.",
	Long:  `Sends an error notification whose message embeds the given text. Error notifications stay on screen longer.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := newNotifier(cfg)
		if err != nil {
			return err
		}
		return reportResult(cmd, n.SendError(cmd.Context(), strings.Join(args, " ")))
	},
}

func init() {
	rootCmd.AddCommand(errorCmd)
}
