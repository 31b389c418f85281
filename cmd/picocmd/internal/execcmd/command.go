package execcmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sipeed/picocmd/cmd/picocmd/internal"
)

func NewExecCommand() *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "exec [line]",
		Short: "Execute a single command line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			line := message
			if len(args) == 1 {
				line = args[0]
			}
			if strings.TrimSpace(line) == "" {
				return fmt.Errorf("nothing to execute: pass a line or --message")
			}

			cfg, err := internal.LoadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			reply := internal.NewExecutor(cfg).Execute(line)
			if reply != "" {
				fmt.Fprintln(cmd.OutOrStdout(), reply)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Command line to execute")

	return cmd
}
