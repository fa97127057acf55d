package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Ask setup questions in natural language",
	Long: `Ask CONFIGO free-form questions about development environment setup.

With a message argument, prints a single answer. Without one, starts a
simple question/answer loop; exit with "quit" or Ctrl-D.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}

		if !deps.bridge.Chat.Available() {
			color.New(color.Faint).Println("No LLM backend configured; answers are canned. Set ANTHROPIC_API_KEY for real ones.")
		}

		if len(args) > 0 {
			answer, err := deps.bridge.Chat.Chat(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return fmt.Errorf("chat: %w", err)
			}
			fmt.Println(answer)
			return nil
		}

		scanner := bufio.NewScanner(os.Stdin)
		prompt := color.New(color.Bold)
		for {
			prompt.Print("you> ")
			if !scanner.Scan() {
				fmt.Println()
				return scanner.Err()
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if line == "quit" || line == "exit" {
				return nil
			}

			answer, err := deps.bridge.Chat.Chat(cmd.Context(), line)
			if err != nil {
				color.Red("chat: %v", err)
				continue
			}
			fmt.Println(answer)
		}
	},
}
