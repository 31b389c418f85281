package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/uuid"

	"github.com/sipeed/picocmd/pkg/commands"
	"github.com/sipeed/picocmd/pkg/config"
	"github.com/sipeed/picocmd/pkg/logger"
)

func interactiveMode(exec commands.Executor, cfg *config.Config) error {
	session := uuid.NewString()
	logger.InfoCF("repl", "Session started", map[string]any{"session": session})

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.REPL.Prompt,
		HistoryFile:     cfg.REPL.HistoryFile,
		HistoryLimit:    cfg.REPL.HistoryLimit,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Printf("Error initializing readline: %v\n", err)
		fmt.Println("Falling back to simple input mode...")
		return simpleInteractiveMode(exec, os.Stdin, os.Stdout, cfg.REPL.Prompt)
	}
	defer rl.Close()

	fmt.Printf("Type %shelp for commands, exit to quit.\n", cfg.Catalyst)
	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt || err == io.EOF {
				fmt.Println("Goodbye!")
				logger.InfoCF("repl", "Session ended", map[string]any{"session": session})
				return nil
			}
			fmt.Printf("Error reading input: %v\n", err)
			continue
		}
		if done := handleLine(exec, rl.Stdout(), line); done {
			logger.InfoCF("repl", "Session ended", map[string]any{"session": session})
			return nil
		}
	}
}

// simpleInteractiveMode reads lines from in until EOF or exit.
func simpleInteractiveMode(exec commands.Executor, in io.Reader, out io.Writer, prompt string) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			return scanner.Err()
		}
		if done := handleLine(exec, out, scanner.Text()); done {
			return nil
		}
	}
}

func handleLine(exec commands.Executor, out io.Writer, line string) bool {
	input := strings.TrimSpace(line)
	switch input {
	case "":
		return false
	case "exit", "quit":
		fmt.Fprintln(out, "Goodbye!")
		return true
	}
	if reply := exec.Execute(input); reply != "" {
		fmt.Fprintln(out, reply)
	}
	return false
}
