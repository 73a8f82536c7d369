package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/junglerun/internal/levels"
)

// levelsChangedMsg reports a changed level file.
type levelsChangedMsg struct {
	path string
}

// watcherErrMsg reports a watcher failure.
type watcherErrMsg struct {
	err error
}

// waitForLevelChange blocks on the watcher until the next change or error.
// Returns nil when there is nothing to watch.
func waitForLevelChange(w *levels.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			return levelsChangedMsg{path: path}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return watcherErrMsg{err: err}
		}
	}
}
