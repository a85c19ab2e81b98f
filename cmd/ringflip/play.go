package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ringflip/internal/audio"
	"github.com/vovakirdan/ringflip/internal/core"
	"github.com/vovakirdan/ringflip/internal/platform/tui"
)

var (
	flagDifficulty string
	flagSound      bool
	flagVolume     float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Ring Flip",
	Long: `Start the game on the difficulty panel.

Controls:
  Up/Down    - Pick difficulty (home panel)
  Space/Up   - Jump (also left click)
  Enter      - Start / restart
  P          - Pause
  R          - Restart (after game over)
  B/Esc      - Back to home (after game over)
  Tab        - Scoreboard (home or game over)
  Ctrl+S     - Save a text screenshot
  Q/Ctrl+C   - Quit

Examples:
  ringflip play
  ringflip play --difficulty easy
  ringflip play --sound --volume 0.5
  ringflip play --seed 42 --config ./my-rings.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Preselected difficulty: easy, medium, hard")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects (also RINGFLIP_SOUND=1)")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.7, "Sound volume from 0 to 1")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	a, err := setup(defaultTUILog, flagDifficulty)
	if err != nil {
		return err
	}
	defer a.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := a.newGame(a.logger.WithPrefix("game"))
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	var sound *audio.Manager
	if flagSound || (!cmd.Flags().Changed("sound") && a.env.Sound) {
		sound = audio.NewManager(flagVolume, a.logger.WithPrefix("audio"))
		if err := sound.Initialize(); err != nil {
			a.logger.Warn("sound disabled", "error", err)
			sound = nil
		}
		defer sound.Cleanup()
	}

	env := tui.Env{
		Store:  a.store,
		Ledger: a.ledger,
		Sound:  sound,
		Logger: a.logger.WithPrefix("tui"),
	}
	if err := tui.Run(game, env, cfg); err != nil {
		return fmt.Errorf("cannot run game: %w", err)
	}
	return nil
}
