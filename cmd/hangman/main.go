// hangman is a terminal Galgenraten (German hangman) game.
//
// Usage:
//
//	hangman list              - List available modes
//	hangman play [mode]       - Play a mode, or pick one from the menu
//	hangman serve             - Start SSH server for remote play
//	hangman challenge         - Fetch one challenge word and print it
//	hangman config            - Print the default configuration
//
// Global flags:
//
//	--config <path>      - Custom config YAML
//	--difficulty <name>  - easy (8 lives), normal (6), hard (4)
//	--seed <value>       - RNG seed for reproducible fallback words
//	--log <path>         - Append logs to this file
//	--log-level <level>  - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-hangman/internal/games/hangman"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagSeed       int64
	flagLogPath    string
	flagLogLevel   string
)

func main() {
	// A local .env may carry GEMINI_API_KEY; it is optional
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hangman",
	Short: "Galgenraten - German hangman in your terminal",
	Long: `Galgenraten is the classic hangman game with German words,
umlauts and the capital sharp S included.

Available commands:
  list       - Show all available modes
  play       - Play a mode directly, or pick one from the menu
  serve      - Start SSH server for remote play
  challenge  - Fetch one challenge word and print it
  config     - Print the default configuration

Examples:
  hangman play
  hangman play classic --difficulty hard
  GEMINI_API_KEY=... hangman play challenge
  hangman serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Append logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(challengeCmd)
	rootCmd.AddCommand(configCmd)
}
