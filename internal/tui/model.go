// Package tui is the terminal search surface: a search field backed by the
// remote collection, a result list, and the persisted search history.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/akyairhashvil/searchhist/internal/config"
	"github.com/akyairhashvil/searchhist/internal/history"
	"github.com/akyairhashvil/searchhist/internal/models"
	"github.com/akyairhashvil/searchhist/internal/remote"
)

type Options struct {
	// DropStale discards any response that is not for the newest request.
	// When false the last response to arrive is rendered.
	DropStale bool
	Theme     string
}

// Model is the single controller owning all UI state. It is built once its
// collaborators exist and is the only thing that touches them.
type Model struct {
	ctx      context.Context
	fetcher  remote.Fetcher
	history  history.Recorder
	logger   *zap.Logger
	keys     KeyMap
	registry *HandlerRegistry
	help     help.Model
	theme    Theme

	search    SearchManager
	hist      HistoryPane
	focus     int
	dropStale bool

	status      string
	statusIsErr bool
	width       int
	height      int
}

func NewModel(ctx context.Context, fetcher remote.Fetcher, recorder history.Recorder, logger *zap.Logger, opts Options) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	ti := textinput.New()
	ti.Placeholder = "Search..."
	ti.CharLimit = config.MaxQueryLength
	ti.Width = config.InputWidth
	ti.Focus()

	m := Model{
		ctx:       ctx,
		fetcher:   fetcher,
		history:   recorder,
		logger:    logger,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		theme:     ThemeByName(opts.Theme),
		search:    NewSearchManager(ti),
		focus:     config.FocusInput,
		dropStale: opts.DropStale,
		width:     config.DefaultPaneWidth,
	}
	m.registerBindings()

	h, err := recorder.Load(ctx)
	if err != nil {
		m.logger.Error("load history", zap.Error(err))
		m.setStatusError("History unavailable: " + err.Error())
	} else {
		m.hist.Render(h)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Accessors used by the command layer and tests.

func (m Model) Query() string { return m.search.Input.Value() }

func (m Model) Focus() int { return m.focus }

func (m Model) ResultsVisible() bool { return m.search.Visible }

func (m Model) Results() []models.CandidateItem { return m.search.Results }

func (m Model) HistoryVisible() bool { return m.hist.Visible }

func (m Model) HistoryEntries() []models.HistoryEntry { return m.hist.Entries }

func (m Model) Status() string { return m.status }

func (m *Model) setStatus(msg string) {
	m.status = msg
	m.statusIsErr = false
}

func (m *Model) setStatusError(msg string) {
	m.status = msg
	m.statusIsErr = true
}

// setFocus moves focus and keeps the text field's cursor in step with it.
func (m *Model) setFocus(target int) tea.Cmd {
	m.focus = target
	if target == config.FocusInput {
		return m.search.Input.Focus()
	}
	m.search.Input.Blur()
	return nil
}
