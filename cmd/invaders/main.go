// invaders is a fixed-timestep space shooter for the terminal.
//
// Usage:
//
//	invaders                 - Play (same as "invaders play")
//	invaders play            - Play in this terminal
//	invaders serve           - Start an SSH server, one game per connection
//	invaders scores          - Print persisted highscores
//	invaders sprites         - List sprite ids available to --sprites files
//
// Global flags:
//
//	--fps <rate>      - Logic frames per second (default: 60)
//	--seed <value>    - RNG seed for reproducible rounds
//	--db <path>       - Highscore database (default: ~/.invaders/scores.db)
//	--config <path>   - Tuning YAML layered over the defaults
//	--sprites <path>  - Sprite YAML overriding or adding art
//	--mute            - Disable sound and music
//	--log <path>      - Write a debug log
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagSprites string
	flagMute    bool
	flagLog     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Nature Invaders - a space shooter in your terminal",
	Long: `Nature Invaders is a fixed-timestep arcade shooter drawn with
terminal cells. Clear the 55-strong formation before it shoots you down.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  scores   - View persisted highscores
  sprites  - List sprite ids

Examples:
  invaders
  invaders play --mute --seed 42
  invaders serve --ssh :2222
  invaders scores --csv > scores.csv`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Logic frames per second")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.invaders/scores.db", "Path to highscore database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagSprites, "sprites", "", "Path to custom sprite YAML")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound and music")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Write a debug log to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(spritesCmd)
}

// fatal prints an error and exits with status 1.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
