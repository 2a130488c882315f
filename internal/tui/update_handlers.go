package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/akyairhashvil/searchhist/internal/config"
	"github.com/akyairhashvil/searchhist/internal/util"
)

func (m Model) handleQuit() (Model, tea.Cmd, bool) {
	return m, tea.Quit, true
}

func (m Model) handleClearInput() (Model, tea.Cmd, bool) {
	m.search.Input.Reset()
	m.search.nextSeq()
	m.search.Hide()
	return m, m.setFocus(config.FocusInput), true
}

func (m Model) handleClearHistory() (Model, tea.Cmd, bool) {
	if err := m.history.Clear(m.ctx); err != nil {
		m.logger.Error("clear history", zap.Error(err))
		m.setStatusError(fmt.Sprintf("Error clearing history: %v", err))
		return m, nil, true
	}
	m.hist.Reset()
	m.setStatus("History cleared")
	var cmd tea.Cmd
	if m.focus == config.FocusHistory {
		cmd = m.setFocus(config.FocusInput)
	}
	return m, cmd, true
}

// handleSubmit saves the field value as typed. Unlike selecting a result it
// leaves the result list and focus alone.
func (m Model) handleSubmit() (Model, tea.Cmd, bool) {
	value := m.search.Input.Value()
	if util.IsBlank(value) {
		return m, nil, true
	}
	m.record(value)
	return m, nil, true
}

func (m Model) handleIntoResults() (Model, tea.Cmd, bool) {
	if !m.search.Selectable() {
		return m, nil, false
	}
	return m, m.setFocus(config.FocusResults), true
}

// focusOrder lists the panes tab cycles through, skipping hidden ones.
func (m Model) focusOrder() []int {
	order := []int{config.FocusInput}
	if m.search.Selectable() {
		order = append(order, config.FocusResults)
	}
	if m.hist.Visible {
		order = append(order, config.FocusHistory)
	}
	return order
}

func (m Model) cycleFocus(step int) (Model, tea.Cmd, bool) {
	order := m.focusOrder()
	idx := 0
	for i, f := range order {
		if f == m.focus {
			idx = i
			break
		}
	}
	idx = (idx + step + len(order)) % len(order)
	return m, m.setFocus(order[idx]), true
}

func (m Model) handleNextFocus() (Model, tea.Cmd, bool) { return m.cycleFocus(1) }

func (m Model) handlePrevFocus() (Model, tea.Cmd, bool) { return m.cycleFocus(-1) }

func (m Model) handleBack() (Model, tea.Cmd, bool) {
	return m, m.setFocus(config.FocusInput), true
}

func (m Model) handleCursorUp() (Model, tea.Cmd, bool) {
	switch m.focus {
	case config.FocusResults:
		m.search.Cursor = util.ClampIndex(m.search.Cursor-1, len(m.search.Results))
	case config.FocusHistory:
		m.hist.Cursor = util.ClampIndex(m.hist.Cursor-1, len(m.hist.Entries))
	}
	return m, nil, true
}

func (m Model) handleCursorDown() (Model, tea.Cmd, bool) {
	switch m.focus {
	case config.FocusResults:
		m.search.Cursor = util.ClampIndex(m.search.Cursor+1, len(m.search.Results))
	case config.FocusHistory:
		m.hist.Cursor = util.ClampIndex(m.hist.Cursor+1, len(m.hist.Entries))
	}
	return m, nil, true
}

// handleSelectResult puts the chosen title in the field, records it, and
// hides the result list.
func (m Model) handleSelectResult() (Model, tea.Cmd, bool) {
	item, ok := m.search.Current()
	if !ok {
		return m, nil, true
	}
	m.search.Input.SetValue(item.Title)
	m.search.Input.CursorEnd()
	cmd := m.setFocus(config.FocusInput)
	m.record(item.Title)
	m.search.Hide()
	return m, cmd, true
}

// handleReplay runs the search again for the history row under the cursor.
func (m Model) handleReplay() (Model, tea.Cmd, bool) {
	entry, ok := m.hist.Current()
	if !ok {
		return m, nil, true
	}
	m.search.Input.SetValue(entry.Title)
	m.search.Input.CursorEnd()
	focusCmd := m.setFocus(config.FocusInput)
	var queryCmd tea.Cmd
	m, queryCmd = m.queryChanged(entry.Title)
	return m, tea.Batch(focusCmd, queryCmd), true
}

// handleDeleteEntry removes the row under the cursor from the store and then
// from the pane, without rebuilding the rest of the pane. Whether the pane
// stays visible follows the stored map, not the rows on screen.
func (m Model) handleDeleteEntry() (Model, tea.Cmd, bool) {
	entry, ok := m.hist.Current()
	if !ok {
		return m, nil, true
	}
	removed, h, err := m.history.Delete(m.ctx, entry.Title)
	if err != nil {
		m.logger.Error("delete history entry", zap.String("title", entry.Title), zap.Error(err))
		m.setStatusError(fmt.Sprintf("Error deleting entry: %v", err))
		return m, nil, true
	}
	if !removed {
		return m, nil, true
	}
	if h.Len() == 0 {
		m.hist.Reset()
		return m, m.setFocus(config.FocusInput), true
	}
	m.hist.RemoveAt(m.hist.Cursor)
	if !m.hist.Visible {
		m.hist.Render(h)
	}
	return m, nil, true
}

// record upserts title and re-renders the history pane from the result.
func (m *Model) record(title string) {
	h, err := m.history.Upsert(m.ctx, title)
	if err != nil {
		m.logger.Error("save history entry", zap.String("title", title), zap.Error(err))
		m.setStatusError(fmt.Sprintf("Error saving history: %v", err))
		return
	}
	m.hist.Render(h)
	m.setStatus("")
}
