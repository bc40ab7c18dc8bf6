package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-doodle/internal/platform/tui"
	"github.com/vovakirdan/tui-doodle/internal/registry"
	"github.com/vovakirdan/tui-doodle/internal/storage"
)

var (
	flagScoresLimit int
	flagRecent      bool
	flagPlain       bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display the best runs recorded in the scores database.

In a terminal the interactive scoreboard opens; tab switches between
the top and the most recent runs. Pipe the output or pass --plain
for a text table.

Examples:
  doodle scores
  doodle scores --recent --plain
  doodle scores --limit 5
  doodle scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to print in plain mode")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the latest runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a text table even in a terminal")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the whole run history")
}

func runScores(_ *cobra.Command, _ []string) error {
	const gameID = "doodle"

	info, ok := registry.Get(gameID)
	if !ok {
		return errors.New("doodle game is not registered")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Println("Run history cleared.")
		return nil
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, err := term.GetSize(fd); err == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, gameID, info.Title, width, height)
	}

	return printScores(store, gameID, info.Title)
}

// printScores writes a plain text table of runs.
func printScores(store *storage.Store, gameID, title string) error {
	var (
		runs []storage.Run
		err  error
	)
	if flagRecent {
		runs, err = store.RecentRuns(gameID, flagScoresLimit)
	} else {
		runs, err = store.TopScores(gameID, flagScoresLimit)
	}
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'doodle play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %-20s  %s\n", "Rank", "Score", "Time", "Seed", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %-20s  %s\n", "----", "-----", "----", "----", "----")

	for i, r := range runs {
		d := r.Duration(flagFPS)
		fmt.Printf("  %-4d  %-10d  %-8s  %-20d  %s\n",
			i+1, r.Score, fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60),
			r.Seed, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	best, err := store.HighScore(gameID)
	if err != nil {
		return err
	}
	count, err := store.CountRuns(gameID)
	if err != nil {
		return err
	}
	fmt.Printf("Best: %d over %d runs\n", best, count)
	return nil
}
