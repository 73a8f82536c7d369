package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/junglerun/internal/core"
	"github.com/vovakirdan/junglerun/internal/games/jungle"
	"github.com/vovakirdan/junglerun/internal/levels"
	"github.com/vovakirdan/junglerun/internal/storage"
)

// Footer heights below the game frame.
const (
	helpRows     = 1
	fullHelpRows = 4
)

// Options configures the play model.
type Options struct {
	Store      *storage.Store  // nil disables run history
	Logger     *log.Logger     // nil discards
	Config     core.RuntimeConfig
	LevelsDir  string          // Override directory reloaded on change
	Watcher    *levels.Watcher // nil disables hot reload
	HoldWindow time.Duration   // 0 uses the default
}

// Model is the Bubble Tea model for a Jungle Run session.
type Model struct {
	game      *jungle.Game
	screen    *core.Screen
	store     *storage.Store
	log       *log.Logger
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	input     heldInput
	watcher   *levels.Watcher
	levelsDir string
	lastTick  time.Time
	now       func() time.Time
	quitting  bool
	runSaved  bool // Whether the finished run has been recorded
}

// NewModel creates a Bubble Tea model for the given game.
func NewModel(game *jungle.Game, opts Options) Model {
	cfg := opts.Config
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		def := core.DefaultConfig()
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpRows, 1)),
		store:     opts.Store,
		log:       logger,
		config:    cfg,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		input:     newHeldInput(opts.HoldWindow),
		watcher:   opts.Watcher,
		levelsDir: opts.LevelsDir,
		now:       time.Now,
	}
}

// Init starts the frame loop and the level watcher.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.config.TickRate), waitForLevelChange(m.watcher))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case levelsChangedMsg:
		m.reloadLevels(msg.path)
		return m, waitForLevelChange(m.watcher)

	case watcherErrMsg:
		m.log.Warn("level watcher failed", "err", msg.err)
		return m, waitForLevelChange(m.watcher)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionScreenshot:
		if path, err := m.saveScreenshot(); err != nil {
			m.log.Warn("cannot save screenshot", "err", err)
		} else {
			m.log.Info("screenshot saved", "path", path)
		}
	case core.ActionPause:
		m.game.TogglePause()
		m.input.Clear()
	case core.ActionRestart:
		if m.game.State().Finished() {
			m.restart()
		}
	case core.ActionMute:
		m.game.SetMuted(!m.game.Muted())
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.resizeScreen()
	default:
		m.input.Press(action, m.now())
	}
	return m, nil
}

// handleResize processes window resize events. The world is independent of
// the terminal size, so the session keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.resizeScreen()
	return m, nil
}

// resizeScreen fits the game frame above the help footer.
func (m *Model) resizeScreen() {
	rows := helpRows
	if m.help.ShowAll {
		rows = fullHelpRows
	}
	m.screen.Resize(m.config.ScreenW, max(m.config.ScreenH-rows, 1))
}

// handleTick runs one frame with the wall time since the previous one.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var elapsed time.Duration
	if !m.lastTick.IsZero() {
		elapsed = max(now.Sub(m.lastTick), 0)
	}
	m.lastTick = now

	m.game.Frame(elapsed, m.input.Intent(now))

	// Record the run once per session
	if m.game.State().Finished() && !m.runSaved {
		m.saveRun()
	}

	return m, tickCmd(m.config.TickRate)
}

func (m *Model) restart() {
	if err := m.game.Reset(); err != nil {
		m.log.Error("cannot restart", "err", err)
		return
	}
	m.runSaved = false
	m.input.Clear()
}

func (m *Model) saveRun() {
	m.runSaved = true
	st := m.game.State()
	if m.store == nil || (st.Score == 0 && !st.Won) {
		return
	}
	run := storage.Run{
		GameID:     m.game.ID(),
		Score:      st.Score,
		Level:      st.Level,
		Won:        st.Won,
		Difficulty: string(m.game.Difficulty()),
		Seed:       m.game.Seed(),
		Duration:   m.game.Played(),
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.log.Warn("cannot save run", "err", err)
		return
	}
	m.log.Debug("run saved", "score", run.Score, "level", run.Level, "won", run.Won)
}

// reloadLevels reloads every override file after a change in the directory.
// Files that fail to load are skipped and logged.
func (m *Model) reloadLevels(changed string) {
	if m.levelsDir == "" {
		return
	}
	descs, errs := levels.NewLoader(m.levelsDir).LoadAll()
	for _, err := range errs {
		m.log.Warn("level file skipped", "err", err)
	}
	m.log.Debug("level file changed", "path", changed)
	m.game.SetOverrides(descs)
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".junglerun", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	return path, os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	footer := m.help.View(m.keys)
	if m.game.Muted() {
		footer += "  [muted]"
	}
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(footer)
}

// Run starts the Bubble Tea program for the given game.
func Run(game *jungle.Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
