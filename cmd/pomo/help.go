package main

import (
	"fmt"
	"strings"

	"github.com/amonks/pomodoro/internal/markdown"
	"github.com/amonks/pomodoro/internal/ui"
	"github.com/spf13/cobra"
)

const keyHelpWidth = 80

var helpCmd = &cobra.Command{
	Use:   "help [command]",
	Short: "Help about any command",
	Args:  cobra.ArbitraryArgs,
	RunE:  runHelp,
}

var helpKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show the keys available while a phase is running",
	Args:  cobra.NoArgs,
	RunE:  runHelpKeys,
}

func init() {
	rootCmd.SetHelpCommand(helpCmd)
	helpCmd.AddCommand(helpKeysCmd)
}

func runHelp(cmd *cobra.Command, args []string) error {
	root := cmd.Root()
	if len(args) == 0 {
		return root.Help()
	}

	target, _, err := root.Find(args)
	if err != nil || target == nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Unknown help topic %q\n", strings.Join(args, " "))
		return root.Help()
	}

	return target.Help()
}

func runHelpKeys(cmd *cobra.Command, args []string) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), markdown.Render(keyHelpWidth, ui.KeyHelp))
	return err
}
