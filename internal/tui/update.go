package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/akyairhashvil/searchhist/internal/config"
	"github.com/akyairhashvil/searchhist/internal/util"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case resultsMsg:
		return m.handleResults(msg)

	case fetchFailedMsg:
		m.logger.Warn("fetch collection",
			zap.String("query", msg.query),
			zap.Int("seq", msg.seq),
			zap.Error(msg.err),
		)
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if next, cmd, handled := m.registry.Handle(m, msg); handled {
			return next, cmd
		}
		return m.updateInput(msg)
	}

	return m.updateInput(msg)
}

// updateInput forwards msg to the search field and runs the query pipeline
// when the field's value changed.
func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.focus != config.FocusInput {
		if _, ok := msg.(tea.KeyMsg); ok {
			return m, nil
		}
	}
	before := m.search.Input.Value()
	var inputCmd tea.Cmd
	m.search.Input, inputCmd = m.search.Input.Update(msg)
	if m.search.Input.Value() == before {
		return m, inputCmd
	}
	var queryCmd tea.Cmd
	m, queryCmd = m.queryChanged(m.search.Input.Value())
	return m, tea.Batch(inputCmd, queryCmd)
}

// queryChanged is the entry point of the query pipeline. A blank value hides
// the result list without a request; anything else starts one fetch.
func (m Model) queryChanged(value string) (Model, tea.Cmd) {
	seq := m.search.nextSeq()
	if util.IsBlank(value) {
		m.search.Hide()
		if m.focus != config.FocusInput {
			return m, m.setFocus(config.FocusInput)
		}
		return m, nil
	}
	m.logger.Debug("query", zap.String("value", value), zap.Int("seq", seq))
	return m, fetchCmd(m.ctx, m.fetcher, seq, value)
}

func (m Model) handleResults(msg resultsMsg) (Model, tea.Cmd) {
	if m.dropStale && msg.seq != m.search.issued {
		m.logger.Debug("stale results dropped",
			zap.Int("seq", msg.seq),
			zap.Int("latest", m.search.issued),
		)
		return m, nil
	}
	m.search.Show(msg.items)
	if m.focus == config.FocusResults && !m.search.Selectable() {
		return m, m.setFocus(config.FocusInput)
	}
	return m, nil
}
