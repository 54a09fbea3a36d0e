package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/platform/tui"
	"github.com/vovakirdan/tui-hangman/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing. Without a mode, a menu lets you pick one.

Modes:
  classic    - Guess all configured words on one board
  challenge  - Guess a fresh word with hint and category (needs GEMINI_API_KEY,
               falls back to the built-in words without it)

Controls:
  A-Z, Ä, Ö, Ü, ß  - Guess a letter
  Enter            - New round
  Tab              - New challenge word
  + / -            - Zoom
  Ctrl+S           - Screenshot to ~/.hangman/screenshots
  ?                - Toggle help
  Esc              - Back to menu
  Ctrl+C           - Quit

Difficulty options:
  easy    - 8 lives
  normal  - 6 lives
  hard    - 4 lives

Examples:
  hangman play
  hangman play classic --difficulty easy
  hangman play challenge --log hangman.log --log-level debug
  hangman play classic --config ./my-words.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	mode := ""
	if len(args) == 1 {
		mode = args[0]
		if !registry.Exists(mode) {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", mode)
			fmt.Fprintln(os.Stderr, "Run 'hangman list' to see available modes.")
			os.Exit(1)
		}
	}

	// Logs stay out of the alternate screen unless --log is given
	a, err := setup(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer a.closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runErr := tui.Run(tui.Options{
		Config: core.RuntimeConfig{
			ScreenW: width,
			ScreenH: height,
			Seed:    flagSeed,
		},
		Provider: a.provider,
		Logger:   a.logger,
		Mode:     mode,
	})
	if runErr != nil {
		a.logger.Error("game crashed", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		a.closeLog()
		os.Exit(1)
	}
}
