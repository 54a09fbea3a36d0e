package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var flagCount int

var challengeCmd = &cobra.Command{
	Use:   "challenge",
	Short: "Fetch challenge words and print them",
	Long: `Ask the word backend for challenge words and print them, exactly as
challenge mode would receive them. When the backend is unreachable or no
API key is set, the printed words come from the fallback table.

Examples:
  hangman challenge
  hangman challenge --count 3
  GEMINI_API_KEY=... hangman challenge --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runChallenge,
}

func init() {
	challengeCmd.Flags().IntVar(&flagCount, "count", 1, "Number of challenges to fetch")
}

func runChallenge(cmd *cobra.Command, _ []string) {
	a, err := setup(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer a.closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()
	for i := 0; i < flagCount && ctx.Err() == nil; i++ {
		ch := a.provider.Next(ctx)
		fmt.Fprintf(out, "Wort:      %s\n", ch.Word)
		if ch.Category != "" {
			fmt.Fprintf(out, "Kategorie: %s\n", ch.Category)
		}
		if ch.Hint != "" {
			fmt.Fprintf(out, "Hinweis:   %s\n", ch.Hint)
		}
		if i < flagCount-1 {
			fmt.Fprintln(out)
		}
	}
}
