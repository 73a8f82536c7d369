package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/junglerun/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Jungle Run with the title menu",
	Long: `Start Jungle Run in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select. The difficulty line
cycles through the presets. After a run you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  junglerun menu
  junglerun menu --fps 30
  junglerun menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	addSessionFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	preset, err := difficultyPreset()
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig(flagSeed)

	// Menu loop
	for {
		result, err := tui.RunMenu(store, cfg, preset)
		if err != nil {
			return err
		}
		cfg = result.Config
		preset = result.Difficulty

		switch result.Choice {
		case tui.ChoiceScores:
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		case tui.ChoicePlay:
			// Every run from the menu gets a fresh seed unless one is pinned
			seed := runSeed()
			cfg.Seed = seed
			if err := playSession(store, cfg, preset, seed); err != nil {
				return err
			}

		default:
			return nil
		}
	}
}
