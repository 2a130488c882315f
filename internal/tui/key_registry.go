package tui

import (
	"sort"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type KeyHandler func(m Model) (Model, tea.Cmd, bool)

type KeyBinding struct {
	Binding  key.Binding
	Handler  KeyHandler
	Focus    []int
	Priority int
}

// AppliesToFocus reports whether the binding is live for a focus target.
// A binding without targets applies everywhere.
func (b KeyBinding) AppliesToFocus(focus int) bool {
	if len(b.Focus) == 0 {
		return true
	}
	for _, f := range b.Focus {
		if f == focus {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

// Handle dispatches msg to the first matching binding for the model's focus.
// Every pane is served from this one dispatcher, so rows rendered later need
// no handlers of their own.
func (r *HandlerRegistry) Handle(m Model, msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if !b.Binding.Enabled() || !b.AppliesToFocus(m.focus) {
			continue
		}
		if key.Matches(msg, b.Binding) {
			next, cmd, handled := b.Handler(m)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

// BindingsForFocus lists the documented bindings live for focus, one per help key.
func (r *HandlerRegistry) BindingsForFocus(focus int) []key.Binding {
	seen := make(map[string]bool)
	var out []key.Binding
	for _, b := range r.bindings {
		if !b.AppliesToFocus(focus) {
			continue
		}
		h := b.Binding.Help()
		if h.Desc == "" || seen[h.Key] {
			continue
		}
		seen[h.Key] = true
		out = append(out, b.Binding)
	}
	return out
}
