package main

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/invaders/internal/platform/tui"
	"github.com/vovakirdan/invaders/internal/storage"
)

var (
	flagScoresLimit int
	flagCSV         bool
	flagBrowse      bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show persisted highscores",
	Long: `Display the best persisted highscores.

Examples:
  invaders scores
  invaders scores --limit 25
  invaders scores --csv > scores.csv
  invaders scores --browse`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagCSV, "csv", false, "Write scores as CSV to stdout")
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Browse scores interactively")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every persisted score")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("opening scores database: %v", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.Clear(); err != nil {
			fatal("%v", err)
		}
		fmt.Println("Highscores cleared.")
	case flagBrowse:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fatal("%v", err)
		}
	case flagCSV:
		scores, err := store.TopHighscores(flagScoresLimit)
		if err != nil {
			fatal("%v", err)
		}
		if err := gocsv.Marshal(scores, os.Stdout); err != nil {
			fatal("writing csv: %v", err)
		}
	default:
		printScores(store)
	}
}

func printScores(store *storage.Store) {
	scores, err := store.TopHighscores(flagScoresLimit)
	if err != nil {
		fatal("%v", err)
	}

	fmt.Println("Nature Invaders - Highscores")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'invaders play' to set the first highscore!")
		return
	}

	fmt.Printf("  %-4s  %-15s  %-6s  %s\n", "Rank", "Name", "Score", "Date")
	fmt.Printf("  %-4s  %-15s  %-6s  %s\n", "----", "----", "-----", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-15s  %-6d  %s\n", i+1, e.Name, e.Score, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.Stats(); err == nil {
		fmt.Println()
		fmt.Printf("Games: %d  Best: %d  Average: %.1f\n", stats.Games, stats.HighScore, stats.AvgScore)
	}
}
