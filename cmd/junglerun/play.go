package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/junglerun/internal/audio"
	"github.com/vovakirdan/junglerun/internal/config"
	"github.com/vovakirdan/junglerun/internal/core"
	"github.com/vovakirdan/junglerun/internal/levels"
	"github.com/vovakirdan/junglerun/internal/platform/tui"
	"github.com/vovakirdan/junglerun/internal/storage"
)

var (
	flagWatch bool
	flagMute  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Jungle Run",
	Long: `Start a run at the given level.

Controls:
  Left/Right, A/D  - Move
  Up/W/Space       - Jump (press again in the air to double jump)
  J/X/F            - Shoot
  P/Esc            - Pause
  R                - Restart (after game over or win)
  M                - Mute
  Ctrl+S           - Screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Two extra lives, slower enemies
  normal - Tuning from the config file
  hard   - Three hearts, faster enemies
  fixed  - Enemy speed does not grow with the level

Examples:
  junglerun play
  junglerun play --difficulty hard --level 10
  junglerun play --config ./my-jungle.yaml
  junglerun play --levels-dir ./levels --watch`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addSessionFlags(playCmd)
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload --levels-dir files when they change")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with the terminal bell silenced")
}

func runPlay(_ *cobra.Command, _ []string) error {
	preset, err := difficultyPreset()
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	seed := runSeed()
	return playSession(store, runtimeConfig(seed), preset, seed)
}

// playSession runs one interactive session until the player quits.
func playSession(store *storage.Store, rc core.RuntimeConfig, preset config.DifficultyPreset, seed int64) error {
	restore := redirectLogs()
	defer restore()

	// The bell shares the terminal with the UI, so it goes through stderr
	// in single-byte writes.
	bell := audio.NewBellSink(os.Stderr, 16)
	defer bell.Close()

	game, err := newGame(preset, seed, bell)
	if err != nil {
		return err
	}
	game.SetMuted(flagMute)

	opts := tui.Options{
		Store:     store,
		Logger:    logger,
		Config:    rc,
		LevelsDir: flagLevelsDir,
	}
	if flagWatch && flagLevelsDir != "" {
		watcher, err := levels.NewWatcher(flagLevelsDir)
		if err != nil {
			return fmt.Errorf("cannot watch %s: %w", flagLevelsDir, err)
		}
		defer watcher.Close()
		opts.Watcher = watcher
	}

	if err := tui.Run(game, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	if err := game.Err(); err != nil {
		logger.Warn("run ended on a level that failed to load", "err", err)
	}
	if dropped := bell.Dropped(); dropped > 0 {
		logger.Debug("audio cues dropped", "count", dropped)
	}
	return nil
}
