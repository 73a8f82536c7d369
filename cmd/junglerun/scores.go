package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/junglerun/internal/games/jungle"
	"github.com/vovakirdan/junglerun/internal/storage"
)

var (
	flagLimit  int
	flagRecent bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best runs with the level reached, then overall stats.

Examples:
  junglerun scores
  junglerun scores --limit 5
  junglerun scores --recent`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the latest runs instead of the best")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	return printScores(os.Stdout, store, flagLimit, flagRecent)
}

func printScores(w io.Writer, store *storage.Store, limit int, recent bool) error {
	var (
		runs []storage.Run
		err  error
	)
	title := "High Scores"
	if recent {
		title = "Recent Runs"
		runs, err = store.RecentRuns(jungle.ID, limit)
	} else {
		runs, err = store.TopRuns(jungle.ID, limit)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintf(w, "%s - Jungle Run\n\n", title)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'junglerun play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-8s  %-5s  %-6s  %-10s  %-8s  %s\n", "Rank", "Score", "Level", "Result", "Difficulty", "Time", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-5s  %-6s  %-10s  %-8s  %s\n", "----", "-----", "-----", "------", "----------", "----", "----")
	for i, r := range runs {
		result := "died"
		if r.Won {
			result = "won"
		}
		difficulty := r.Difficulty
		if difficulty == "" {
			difficulty = "-"
		}
		fmt.Fprintf(w, "  %-4d  %-8d  %-5d  %-6s  %-10s  %-8s  %s\n",
			i+1, r.Score, r.Level, result, difficulty, r.Duration.Round(time.Second), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(jungle.ID)
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d  Runs: %d  Wins: %d  Deepest level: %d  Played: %s\n",
		stats.HighScore, stats.Runs, stats.Wins, stats.BestLevel, stats.PlayTime.Round(time.Second))
	return nil
}
