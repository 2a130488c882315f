package testutil

import "github.com/akyairhashvil/searchhist/internal/models"

// DefaultTime is the timestamp builders use unless told otherwise.
const DefaultTime = "2024-03-05, 2:07:09 PM"

// HistoryEntryBuilder provides fluent API for creating test history entries.
type HistoryEntryBuilder struct {
	entry models.HistoryEntry
}

func NewHistoryEntry() *HistoryEntryBuilder {
	return &HistoryEntryBuilder{
		entry: models.HistoryEntry{
			Title: "Test Search",
			Time:  DefaultTime,
		},
	}
}

func (b *HistoryEntryBuilder) WithTitle(title string) *HistoryEntryBuilder {
	b.entry.Title = title
	return b
}

func (b *HistoryEntryBuilder) WithTime(at string) *HistoryEntryBuilder {
	b.entry.Time = at
	return b
}

func (b *HistoryEntryBuilder) Build() models.HistoryEntry {
	return b.entry
}

// CandidateBuilder provides fluent API for creating remote collection items.
type CandidateBuilder struct {
	item models.CandidateItem
}

func NewCandidate() *CandidateBuilder {
	return &CandidateBuilder{
		item: models.CandidateItem{
			UserID: 1,
			ID:     1,
			Title:  "Test Item",
		},
	}
}

func (b *CandidateBuilder) WithTitle(title string) *CandidateBuilder {
	b.item.Title = title
	return b
}

func (b *CandidateBuilder) WithID(id int) *CandidateBuilder {
	b.item.ID = id
	return b
}

func (b *CandidateBuilder) WithCompleted(done bool) *CandidateBuilder {
	b.item.Completed = done
	return b
}

func (b *CandidateBuilder) Build() models.CandidateItem {
	return b.item
}

// Collection builds one item per title with sequential IDs.
func Collection(titles ...string) []models.CandidateItem {
	items := make([]models.CandidateItem, 0, len(titles))
	for i, title := range titles {
		items = append(items, NewCandidate().WithID(i+1).WithTitle(title).Build())
	}
	return items
}

// History builds a history map holding one entry per title, in order.
func History(titles ...string) *models.HistoryMap {
	h := models.NewHistoryMap()
	for _, title := range titles {
		h.Set(title, NewHistoryEntry().WithTitle(title).Build())
	}
	return h
}
