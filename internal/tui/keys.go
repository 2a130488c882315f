package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/akyairhashvil/searchhist/internal/config"
)

type KeyMap struct {
	Quit         key.Binding
	NextFocus    key.Binding
	PrevFocus    key.Binding
	Back         key.Binding
	Submit       key.Binding
	IntoResults  key.Binding
	Up           key.Binding
	Down         key.Binding
	Select       key.Binding
	Replay       key.Binding
	Delete       key.Binding
	ClearInput   key.Binding
	ClearHistory key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:         key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		NextFocus:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next pane")),
		PrevFocus:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev pane")),
		Back:         key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back to search")),
		Submit:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save search")),
		IntoResults:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "results")),
		Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:         key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Replay:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search again")),
		Delete:       key.NewBinding(key.WithKeys("d", "delete", "backspace"), key.WithHelp("d", "delete")),
		ClearInput:   key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear input")),
		ClearHistory: key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "clear history")),
	}
}

func (m *Model) registerBindings() {
	k := m.keys
	r := NewHandlerRegistry()

	r.Register(KeyBinding{Binding: k.Quit, Handler: Model.handleQuit, Priority: 100})
	r.Register(KeyBinding{Binding: k.ClearInput, Handler: Model.handleClearInput, Priority: 90})
	r.Register(KeyBinding{Binding: k.ClearHistory, Handler: Model.handleClearHistory, Priority: 90})
	r.Register(KeyBinding{Binding: k.NextFocus, Handler: Model.handleNextFocus, Priority: 80})
	r.Register(KeyBinding{Binding: k.PrevFocus, Handler: Model.handlePrevFocus, Priority: 80})

	r.Register(KeyBinding{Binding: k.Submit, Handler: Model.handleSubmit, Focus: []int{config.FocusInput}})
	r.Register(KeyBinding{Binding: k.IntoResults, Handler: Model.handleIntoResults, Focus: []int{config.FocusInput}})

	r.Register(KeyBinding{Binding: k.Up, Handler: Model.handleCursorUp, Focus: []int{config.FocusResults, config.FocusHistory}})
	r.Register(KeyBinding{Binding: k.Down, Handler: Model.handleCursorDown, Focus: []int{config.FocusResults, config.FocusHistory}})
	r.Register(KeyBinding{Binding: k.Back, Handler: Model.handleBack, Focus: []int{config.FocusResults, config.FocusHistory}})
	r.Register(KeyBinding{Binding: k.Select, Handler: Model.handleSelectResult, Focus: []int{config.FocusResults}})

	r.Register(KeyBinding{Binding: k.Replay, Handler: Model.handleReplay, Focus: []int{config.FocusHistory}})
	r.Register(KeyBinding{Binding: k.Delete, Handler: Model.handleDeleteEntry, Focus: []int{config.FocusHistory}})

	m.registry = r
}
