package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/akyairhashvil/searchhist/internal/models"
)

// SearchManager holds the search field and the result list rendered for it.
type SearchManager struct {
	Input   textinput.Model
	Results []models.CandidateItem
	Visible bool
	Cursor  int

	// issued is the sequence number of the newest request sent.
	issued int
}

func NewSearchManager(input textinput.Model) SearchManager {
	return SearchManager{
		Input: input,
	}
}

func (s *SearchManager) nextSeq() int {
	s.issued++
	return s.issued
}

// Show replaces the rendered list. An empty slice renders the placeholder row.
func (s *SearchManager) Show(items []models.CandidateItem) {
	s.Results = items
	s.Visible = true
	s.Cursor = 0
}

// Hide clears and hides the result list.
func (s *SearchManager) Hide() {
	s.Results = nil
	s.Visible = false
	s.Cursor = 0
}

// Selectable reports whether there is at least one row that can be activated.
func (s SearchManager) Selectable() bool {
	return s.Visible && len(s.Results) > 0
}

func (s SearchManager) Current() (models.CandidateItem, bool) {
	if !s.Selectable() || s.Cursor < 0 || s.Cursor >= len(s.Results) {
		return models.CandidateItem{}, false
	}
	return s.Results[s.Cursor], true
}
