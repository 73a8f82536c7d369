package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/junglerun/internal/audio"
	"github.com/vovakirdan/junglerun/internal/config"
	"github.com/vovakirdan/junglerun/internal/core"
	"github.com/vovakirdan/junglerun/internal/games/jungle"
	"github.com/vovakirdan/junglerun/internal/levels"
	"github.com/vovakirdan/junglerun/internal/storage"
)

// Session flags shared by menu, play and simulate
var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
	flagLevelsDir  string
)

func addSessionFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().IntVar(&flagLevel, "level", 1, "Level to start at")
	cmd.Flags().StringVar(&flagLevelsDir, "levels-dir", "", "Directory of YAML/TMX level files that replace built-in levels")
}

// difficultyPreset validates the --difficulty flag. Empty keeps the config
// values as they are.
func difficultyPreset() (config.DifficultyPreset, error) {
	if flagDifficulty == "" {
		return "", nil
	}
	p := config.ParsePreset(flagDifficulty)
	if p == "" {
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	return p, nil
}

// runSeed returns the --seed value, or a time-based seed when unset.
func runSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// loadOverrides reads the --levels-dir files. Broken files are logged and
// skipped; the rest of the directory still loads.
func loadOverrides() []levels.Descriptor {
	if flagLevelsDir == "" {
		return nil
	}
	descs, errs := levels.NewLoader(flagLevelsDir).LoadAll()
	for _, err := range errs {
		logger.Warn("level file skipped", "err", err)
	}
	logger.Info("level overrides loaded", "dir", flagLevelsDir, "levels", len(descs))
	return descs
}

// newGame builds a session from the flags.
func newGame(preset config.DifficultyPreset, seed int64, sink audio.Sink) (*jungle.Game, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	return jungle.New(jungle.Options{
		Config:     cfg,
		Difficulty: preset,
		Seed:       seed,
		StartLevel: flagLevel,
		Overrides:  loadOverrides(),
		Audio:      sink,
		Logger:     logger,
	})
}

// openStore opens the scores database. The game still works without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// runtimeConfig sizes the frontend to the terminal.
func runtimeConfig(seed int64) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = seed
	return cfg
}

// redirectLogs moves the logger to a file while the terminal UI owns the
// screen. The returned function restores stderr.
func redirectLogs() func() {
	home, err := os.UserHomeDir()
	if err != nil {
		return func() {}
	}
	path := filepath.Join(home, ".junglerun", "junglerun.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return func() {}
	}
	logger.SetOutput(f)
	return func() {
		logger.SetOutput(os.Stderr)
		f.Close()
	}
}
