package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/junglerun/internal/config"
	"github.com/vovakirdan/junglerun/internal/core"
	"github.com/vovakirdan/junglerun/internal/games/jungle"
	"github.com/vovakirdan/junglerun/internal/storage"
)

// MenuChoice is what the player picked on the title menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceScores
	ChoiceQuit
)

// menuItem is one line of the title menu.
type menuItem int

const (
	itemPlay menuItem = iota
	itemDifficulty
	itemScores
	itemQuit
)

var menuItems = []menuItem{itemPlay, itemDifficulty, itemScores, itemQuit}

// difficultyCycle is the order the difficulty line steps through.
var difficultyCycle = []config.DifficultyPreset{
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyFixed,
	config.DifficultyEasy,
}

// MenuModel is the Bubble Tea model for the title menu.
type MenuModel struct {
	cursor     int
	width      int
	height     int
	highScore  int
	config     core.RuntimeConfig
	difficulty config.DifficultyPreset
	keys       MenuKeyMap
	help       help.Model
	choice     MenuChoice
}

// NewMenuModel creates a new menu model. The high score line is read once
// from the store when there is one.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, difficulty config.DifficultyPreset) MenuModel {
	if difficulty == "" {
		difficulty = config.DifficultyNormal
	}
	m := MenuModel{
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		config:     cfg,
		difficulty: difficulty,
		keys:       DefaultMenuKeyMap(),
		help:       help.New(),
	}
	if store != nil {
		if high, err := store.HighScore(jungle.ID); err == nil {
			m.highScore = high
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case MenuActionQuit, MenuActionBack:
		m.choice = ChoiceQuit
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case MenuActionScores:
		m.choice = ChoiceScores
		return m, tea.Quit

	case MenuActionSelect:
		switch menuItems[m.cursor] {
		case itemPlay:
			m.choice = ChoicePlay
			return m, tea.Quit
		case itemDifficulty:
			m.difficulty = nextDifficulty(m.difficulty)
		case itemScores:
			m.choice = ChoiceScores
			return m, tea.Quit
		case itemQuit:
			m.choice = ChoiceQuit
			return m, tea.Quit
		}
	}

	return m, nil
}

func nextDifficulty(p config.DifficultyPreset) config.DifficultyPreset {
	for i, d := range difficultyCycle {
		if d == p {
			return difficultyCycle[(i+1)%len(difficultyCycle)]
		}
	}
	return difficultyCycle[0]
}

func (m MenuModel) label(item menuItem) string {
	switch item {
	case itemPlay:
		return "Play"
	case itemDifficulty:
		return fmt.Sprintf("Difficulty: %s", m.difficulty)
	case itemScores:
		return "High Scores"
	default:
		return "Quit"
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice != ChoiceNone {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	subtleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("J U N G L E   R U N"), m.width))
	b.WriteString("\n\n")

	best := "No runs yet"
	if m.highScore > 0 {
		best = fmt.Sprintf("Best score: %d", m.highScore)
	}
	b.WriteString(centerText(subtleStyle.Render(best), m.width))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		line := "  " + m.label(item)
		style := lipgloss.NewStyle()
		if i == m.cursor {
			line = "> " + m.label(item)
			style = activeStyle
		}
		b.WriteString(centerText(style.Render(line), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(subtleStyle.Render(m.help.View(m.keys)))
	b.WriteString("\n")

	return b.String()
}

// centerText centers text within given width. Styled text is measured by
// its visible width.
func centerText(text string, width int) string {
	visible := lipgloss.Width(text)
	if visible >= width {
		return text
	}
	return strings.Repeat(" ", (width-visible)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice     MenuChoice
	Difficulty config.DifficultyPreset
	Config     core.RuntimeConfig // Carries size changes seen by the menu
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, difficulty config.DifficultyPreset) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(store, cfg, difficulty),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg, Difficulty: difficulty}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.choice == ChoiceNone {
		return MenuResult{Choice: ChoiceQuit, Config: cfg, Difficulty: difficulty}, nil
	}
	return MenuResult{Choice: m.choice, Difficulty: m.difficulty, Config: m.config}, nil
}
