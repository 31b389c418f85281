package repl

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sipeed/picocmd/cmd/picocmd/internal"
	"github.com/sipeed/picocmd/pkg/logger"
)

func NewReplCommand() *cobra.Command {
	var (
		debug    bool
		catalyst string
	)

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Read command lines interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := internal.LoadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if debug {
				logger.SetLevel(logger.DEBUG)
			}
			if catalyst != "" {
				cfg.Catalyst = catalyst
			}
			return interactiveMode(internal.NewExecutor(cfg), cfg)
		},
	}

	cmd.Flags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")
	cmd.Flags().StringVarP(&catalyst, "catalyst", "c", "", "Override the command prefix")

	return cmd
}
