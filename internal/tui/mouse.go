package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/akyairhashvil/searchhist/internal/config"
)

// paneHit is a click resolved to a row of the results or history pane.
type paneHit struct {
	pane     int
	row      int
	onDelete bool
}

// handleMouse selects a result on left click. In the history pane a click
// on the delete mark removes that entry; anywhere else on the row moves the
// cursor there.
func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	hit, ok := m.hitTest(msg.X, msg.Y)
	if !ok {
		return m, nil
	}

	switch hit.pane {
	case config.FocusResults:
		m.search.Cursor = hit.row
		next, cmd, _ := m.handleSelectResult()
		return next, cmd
	case config.FocusHistory:
		m.hist.Cursor = hit.row
		focusCmd := m.setFocus(config.FocusHistory)
		if !hit.onDelete {
			return m, focusCmd
		}
		next, cmd, _ := m.handleDeleteEntry()
		return next, tea.Batch(focusCmd, cmd)
	}
	return m, nil
}

// hitTest maps screen coordinates to a pane row using the same sections
// View renders.
func (m Model) hitTest(x, y int) (paneHit, bool) {
	top := m.theme.Base.GetMarginTop()
	// Content starts after the outer margin, the pane border and its padding.
	col := x - m.theme.Base.GetMarginLeft() - 2

	for _, s := range m.sections() {
		h := lipgloss.Height(s.view)
		if y < top || y >= top+h {
			top += h
			continue
		}
		line := y - top - 1
		switch s.pane {
		case config.FocusResults:
			return m.hitResults(line)
		case config.FocusHistory:
			return m.hitHistory(line, col)
		}
		return paneHit{}, false
	}
	return paneHit{}, false
}

func (m Model) hitResults(line int) (paneHit, bool) {
	if !m.search.Selectable() {
		return paneHit{}, false
	}
	start, end := visibleWindow(m.search.Cursor, len(m.search.Results), config.MaxVisibleResults)
	if line < 0 || line >= end-start {
		return paneHit{}, false
	}
	return paneHit{pane: config.FocusResults, row: start + line}, true
}

func (m Model) hitHistory(line, col int) (paneHit, bool) {
	// Line 0 is the pane header.
	line--
	start, end := visibleWindow(m.hist.Cursor, len(m.hist.Entries), config.MaxVisibleHistory)
	if line < 0 || line >= end-start {
		return paneHit{}, false
	}
	row := start + line
	width := ansi.StringWidth(m.historyRow(row, false))
	return paneHit{
		pane:     config.FocusHistory,
		row:      row,
		onDelete: col >= width-2 && col < width,
	}, true
}
