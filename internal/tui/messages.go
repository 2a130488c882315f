package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/searchhist/internal/models"
	"github.com/akyairhashvil/searchhist/internal/remote"
)

// resultsMsg carries the filtered collection for the query typed at seq.
type resultsMsg struct {
	seq   int
	query string
	items []models.CandidateItem
}

type fetchFailedMsg struct {
	seq   int
	query string
	err   error
}

// fetchCmd fetches the collection and filters it by the query captured when
// the keystroke happened.
func fetchCmd(ctx context.Context, f remote.Fetcher, seq int, query string) tea.Cmd {
	return func() tea.Msg {
		items, err := remote.Search(ctx, f, query)
		if err != nil {
			return fetchFailedMsg{seq: seq, query: query, err: err}
		}
		return resultsMsg{seq: seq, query: query, items: items}
	}
}
