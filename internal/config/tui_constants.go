package config

// Layout constants.
const (
	// MinPaneWidth is the narrowest a results or history pane will render.
	MinPaneWidth = 20

	// DefaultPaneWidth is used before the first WindowSizeMsg arrives.
	DefaultPaneWidth = 60

	// InputWidth is the visible width of the search field.
	InputWidth = 40

	// TimeColumnWidth reserves space for "2006-01-02, 12:00:00 PM".
	TimeColumnWidth = 24
)

// Display limits.
const (
	// MaxVisibleResults limits result rows shown before scrolling.
	MaxVisibleResults = 10

	// MaxVisibleHistory limits history rows shown before scrolling.
	MaxVisibleHistory = 10

	// TruncationSuffix appended to truncated titles.
	TruncationSuffix = "…"

	// NoResultsText is the placeholder row for an empty match set.
	NoResultsText = "No results."
)

// Input constraints.
const (
	// MaxQueryLength is the search field character limit.
	MaxQueryLength = 200
)
