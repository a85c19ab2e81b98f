package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ringflip/internal/config"
	"github.com/vovakirdan/ringflip/internal/ledger"
	"github.com/vovakirdan/ringflip/internal/platform/tui"
)

var (
	flagScoresDifficulty string
	flagClear            bool
	flagInteractive      bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best scores and run history",
	Long: `Display today's, this week's and the all-time best for a difficulty,
followed by the top 10 recorded runs.

Examples:
  ringflip scores
  ringflip scores --difficulty hard
  ringflip scores -i                     # Browse all difficulties
  ringflip scores --difficulty easy --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresDifficulty, "difficulty", "", "Difficulty: easy, medium, hard")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all runs and bests for the difficulty")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the interactive scoreboard")
}

func runScores(_ *cobra.Command, _ []string) error {
	a, err := setup("", flagScoresDifficulty)
	if err != nil {
		return err
	}
	defer a.Close()

	if a.store == nil {
		return errors.New("scores database unavailable")
	}
	level := a.level

	if flagClear {
		if err := a.store.ClearScores(level); err != nil {
			return err
		}
		if err := a.store.DeletePrefs(ledger.KeyPrefix(level)); err != nil {
			return err
		}
		fmt.Printf("Cleared all %s scores.\n", level)
		return nil
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(tui.Env{Store: a.store, Ledger: a.ledger, Logger: a.logger}, level, width, height)
	}

	return printScores(a, level)
}

func printScores(a *app, level config.DifficultyLevel) error {
	stats := a.ledger.Stats(level)
	scores, err := a.store.TopScores(level, 10)
	if err != nil {
		return fmt.Errorf("cannot retrieve scores: %w", err)
	}

	fmt.Printf("Best Scores - %s\n", level)
	fmt.Println()
	fmt.Printf("  Today's Best:   %d\n", stats.DailyBest)
	fmt.Printf("  Week's Best:    %d\n", stats.WeeklyBest)
	fmt.Printf("  All-Time Best:  %d\n", stats.AllTimeBest)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'ringflip play' to set the first score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	if h, err := a.store.History(level); err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Average: %.1f\n", h.GamesCount, h.AvgScore)
	}
	return nil
}
