package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sipeed/picocmd/cmd/picocmd/internal/execcmd"
	"github.com/sipeed/picocmd/cmd/picocmd/internal/repl"
	"github.com/sipeed/picocmd/cmd/picocmd/internal/version"
)

func NewPicocmdCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "picocmd",
		Short: "Prefix-triggered text command dispatcher",
		Example: `  picocmd exec ".test 5 7"
  picocmd repl --catalyst "!"`,
		SilenceUsage: true,
	}

	cmd.AddCommand(
		repl.NewReplCommand(),
		execcmd.NewExecCommand(),
		version.NewVersionCommand(),
	)

	return cmd
}

func main() {
	if err := NewPicocmdCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
