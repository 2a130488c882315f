package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/akyairhashvil/searchhist/internal/config"
)

// noPane marks sections that are not clickable.
const noPane = -1

type section struct {
	pane int
	view string
}

// sections lists what View stacks, top to bottom. Mouse hit testing walks
// the same list.
func (m Model) sections() []section {
	out := []section{
		{noPane, m.theme.Header.Render("Search")},
		{noPane, m.theme.Input.Render(m.search.Input.View())},
	}
	if m.search.Visible {
		out = append(out, section{config.FocusResults, m.renderResults()})
	}
	if m.hist.Visible {
		out = append(out, section{config.FocusHistory, m.renderHistory()})
	}
	if m.status != "" {
		style := m.theme.Dim
		if m.statusIsErr {
			style = m.theme.Error
		}
		out = append(out, section{noPane, style.Render(m.status)})
	}
	out = append(out, section{noPane, m.help.ShortHelpView(m.registry.BindingsForFocus(m.focus))})
	return out
}

func (m Model) View() string {
	secs := m.sections()
	views := make([]string, 0, len(secs))
	for _, s := range secs {
		views = append(views, s.view)
	}
	return m.theme.Base.Render(lipgloss.JoinVertical(lipgloss.Left, views...))
}

func (m Model) paneWidth() int {
	w := m.width - 4
	if w < config.MinPaneWidth {
		w = config.MinPaneWidth
	}
	return w
}

func (m Model) paneStyle(focused bool) lipgloss.Style {
	border := m.theme.Border
	if focused {
		border = m.theme.FocusBorder
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(m.paneWidth())
}

func (m Model) renderResults() string {
	focused := m.focus == config.FocusResults
	contentWidth := m.paneWidth() - 2

	if len(m.search.Results) == 0 {
		return m.paneStyle(focused).Render(m.theme.Placeholder.Render(config.NoResultsText))
	}

	start, end := visibleWindow(m.search.Cursor, len(m.search.Results), config.MaxVisibleResults)
	lines := make([]string, 0, end-start+1)
	for i := start; i < end; i++ {
		title := truncate(m.search.Results[i].Title, contentWidth-2)
		if focused && i == m.search.Cursor {
			lines = append(lines, m.theme.Focused.Render("> "+title))
			continue
		}
		lines = append(lines, "  "+m.highlightMatch(title))
	}
	if hidden := len(m.search.Results) - (end - start); hidden > 0 {
		lines = append(lines, m.theme.Dim.Render(fmt.Sprintf("  … %d more", hidden)))
	}
	return m.paneStyle(focused).Render(strings.Join(lines, "\n"))
}

// highlightMatch styles the part of title that matched the current query.
func (m Model) highlightMatch(title string) string {
	q := m.search.Input.Value()
	if q == "" || !strings.HasPrefix(title, q) {
		return m.theme.Result.Render(title)
	}
	return m.theme.Highlight.Render(q) + m.theme.Result.Render(title[len(q):])
}

func (m Model) historyTitleWidth() int {
	return m.paneWidth() - 2 - config.TimeColumnWidth - 6
}

// historyRow renders row i: title, padding, time, delete mark.
func (m Model) historyRow(i int, focused bool) string {
	titleWidth := m.historyTitleWidth()
	e := m.hist.Entries[i]
	title := truncate(e.Title, titleWidth)
	pad := titleWidth - ansi.StringWidth(title)
	if pad < 1 {
		pad = 1
	}
	prefix := "  "
	titleStyle := m.theme.Result
	if focused && i == m.hist.Cursor {
		prefix = "> "
		titleStyle = m.theme.Focused
	}
	return titleStyle.Render(prefix+title) +
		strings.Repeat(" ", pad) +
		m.theme.HistoryTime.Render(e.Time) + " " +
		m.theme.Delete.Render("✕")
}

func (m Model) renderHistory() string {
	focused := m.focus == config.FocusHistory

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		m.theme.Header.Render("Search history"),
		m.theme.Dim.Render("  [ctrl+x clear]"),
	)
	lines := []string{header}

	start, end := visibleWindow(m.hist.Cursor, len(m.hist.Entries), config.MaxVisibleHistory)
	for i := start; i < end; i++ {
		lines = append(lines, m.historyRow(i, focused))
	}
	return m.paneStyle(focused).Render(strings.Join(lines, "\n"))
}

// visibleWindow returns the [start, end) slice of n rows to show so that the
// cursor stays on screen.
func visibleWindow(cursor, n, max int) (int, int) {
	if n <= max {
		return 0, n
	}
	start := cursor - max/2
	if start < 0 {
		start = 0
	}
	if start+max > n {
		start = n - max
	}
	return start, start + max
}

func truncate(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}
