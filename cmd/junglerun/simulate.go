package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/junglerun/internal/games/jungle"
	"github.com/vovakirdan/junglerun/internal/sim"
)

var (
	flagSeconds   float64
	flagFrameMS   float64
	flagAllEvents bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the game headless with the autopilot",
	Long: `Run the game without a terminal UI. The autopilot walks toward the
nearest enemy, shoots and jumps; every event is printed as it happens and
the final state and snapshot hash are printed at the end.

The same seed, level and frame size always produce the same hash.

Examples:
  junglerun simulate
  junglerun simulate --seconds 300 --seed 42
  junglerun simulate --frame-ms 50 --level 10 --all-events`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	addSessionFlags(simulateCmd)
	simulateCmd.Flags().Float64Var(&flagSeconds, "seconds", 60, "Simulated wall time to run")
	simulateCmd.Flags().Float64Var(&flagFrameMS, "frame-ms", 1000.0/60, "Frame length in milliseconds")
	simulateCmd.Flags().BoolVar(&flagAllEvents, "all-events", false, "Also print jump and shoot events")
}

func runSimulate(_ *cobra.Command, _ []string) error {
	if flagSeconds <= 0 || flagFrameMS <= 0 {
		return fmt.Errorf("--seconds and --frame-ms must be positive")
	}
	preset, err := difficultyPreset()
	if err != nil {
		return err
	}

	// Simulations are reproducible by default
	seed := flagSeed
	if seed == 0 {
		seed = 1
	}
	game, err := newGame(preset, seed, nil)
	if err != nil {
		return err
	}

	return simulate(os.Stdout, game, time.Duration(flagSeconds*float64(time.Second)),
		time.Duration(flagFrameMS*float64(time.Millisecond)), flagAllEvents)
}

// simulate drives the game with the autopilot and reports to w.
func simulate(w io.Writer, game *jungle.Game, total, frame time.Duration, allEvents bool) error {
	snap := game.Snapshot()
	fmt.Fprintf(w, "seed %d  difficulty %s  level %d %q\n\n", game.Seed(), displayPreset(game), snap.Level, snap.LevelName)
	fmt.Fprintf(w, "  %7s  %-15s  %s\n", "tick", "event", "detail")
	fmt.Fprintf(w, "  %7s  %-15s  %s\n", "----", "-----", "------")

	pilot := jungle.NewAutopilot()
	var elapsed time.Duration
	for elapsed < total && !game.State().Finished() {
		res := game.Frame(frame, pilot.Intent(game.Snapshot()))
		elapsed += frame
		for _, ev := range res.Events {
			switch ev.Kind {
			case sim.EventJump, sim.EventShoot:
				if !allEvents {
					continue
				}
			case sim.EventLevelComplete:
				logger.Info("level complete", "level", ev.Level, "tick", ev.Tick)
			}
			fmt.Fprintf(w, "  %7d  %-15s  %s\n", ev.Tick, ev.Kind, eventDetail(ev))
		}
	}

	st := game.State()
	snap = game.Snapshot()
	outcome := "running"
	switch {
	case st.Won:
		outcome = "won"
	case st.GameOver:
		outcome = "game over"
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "outcome: %s after %s of play (%d ticks)\n", outcome, game.Played().Round(time.Millisecond), snap.Tick)
	fmt.Fprintf(w, "score:   %d\n", st.Score)
	fmt.Fprintf(w, "level:   %d %q\n", st.Level, snap.LevelName)
	fmt.Fprintf(w, "health:  %d/%d  extra lives %d\n", st.Health, st.MaxHealth, st.ExtraLives)
	fmt.Fprintf(w, "hash:    %016x\n", snap.Hash())

	if err := game.Err(); err != nil {
		return fmt.Errorf("run stopped on a broken level: %w", err)
	}
	if st.GameOver {
		logger.Info("game over", "level", st.Level, "score", st.Score)
	}
	return nil
}

func displayPreset(game *jungle.Game) string {
	if p := game.Difficulty(); p != "" {
		return string(p)
	}
	return "default"
}

func eventDetail(ev sim.Event) string {
	switch ev.Kind {
	case sim.EventShoot:
		if ev.Powered {
			return fmt.Sprintf("dir=%+.0f powered", ev.Dir)
		}
		return fmt.Sprintf("dir=%+.0f", ev.Dir)
	case sim.EventEnemyDeath:
		return fmt.Sprintf("%s +%d at (%.0f, %.0f)", ev.Enemy, ev.Score, ev.X, ev.Y)
	case sim.EventPowerUp:
		return fmt.Sprintf("%s at (%.0f, %.0f)", ev.PowerUp, ev.X, ev.Y)
	case sim.EventHit:
		return fmt.Sprintf("at (%.0f, %.0f)", ev.X, ev.Y)
	case sim.EventLevelComplete, sim.EventGameOver, sim.EventWin:
		return fmt.Sprintf("level %d", ev.Level)
	}
	return ""
}
