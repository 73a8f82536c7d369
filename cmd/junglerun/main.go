// junglerun is a fixed-timestep side-scrolling action game for the terminal.
//
// Usage:
//
//	junglerun menu              - Title menu: play, pick difficulty, view scores
//	junglerun play              - Play directly
//	junglerun simulate          - Headless autopilot run, prints events
//	junglerun levels list       - List the level catalog
//	junglerun levels show <n>   - Dump a level as YAML
//	junglerun levels validate   - Check that every platform is reachable
//	junglerun scores            - Show high scores
//
// Global flags:
//
//	--fps <rate>        - Frontend frame rate (default: 60)
//	--seed <value>      - RNG seed for generated levels and effects
//	--db <path>         - Database path (default: ~/.junglerun/scores.db)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "junglerun",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "junglerun",
	Short: "Jungle Run - a side-scrolling shooter in your terminal",
	Long: `Jungle Run is a side-scrolling action game for the terminal. Clear each
level of enemies to move on; every tenth level ends with a boss.

Available commands:
  menu      - Title menu
  play      - Play directly
  simulate  - Headless autopilot run
  levels    - Inspect and validate levels
  scores    - View high scores

Examples:
  junglerun menu
  junglerun play --difficulty hard
  junglerun simulate --seconds 120 --seed 42
  junglerun levels validate --from 1 --to 100
  junglerun scores --limit 5`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogger,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frontend frame rate (the simulation tick is fixed)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.junglerun/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
}

func setupLogger(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)
	return nil
}
