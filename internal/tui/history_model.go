package tui

import "github.com/akyairhashvil/searchhist/internal/models"

// HistoryPane is the rendered copy of the persisted history.
type HistoryPane struct {
	Entries []models.HistoryEntry
	Visible bool
	Cursor  int
}

// Render rebuilds the pane from h. An empty map hides the pane.
func (p *HistoryPane) Render(h *models.HistoryMap) {
	if h.Len() == 0 {
		p.Reset()
		return
	}
	p.Entries = h.Entries()
	p.Visible = true
	if p.Cursor >= len(p.Entries) {
		p.Cursor = len(p.Entries) - 1
	}
}

// RemoveAt drops one row in place without rebuilding the pane.
func (p *HistoryPane) RemoveAt(i int) {
	if i < 0 || i >= len(p.Entries) {
		return
	}
	p.Entries = append(p.Entries[:i], p.Entries[i+1:]...)
	if len(p.Entries) == 0 {
		p.Reset()
		return
	}
	if p.Cursor >= len(p.Entries) {
		p.Cursor = len(p.Entries) - 1
	}
}

func (p *HistoryPane) Reset() {
	p.Entries = nil
	p.Visible = false
	p.Cursor = 0
}

func (p HistoryPane) Current() (models.HistoryEntry, bool) {
	if !p.Visible || p.Cursor < 0 || p.Cursor >= len(p.Entries) {
		return models.HistoryEntry{}, false
	}
	return p.Entries[p.Cursor], true
}
