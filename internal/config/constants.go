package config

import "time"

// Remote collection.
const (
	DefaultEndpoint    = "https://jsonplaceholder.typicode.com/todos"
	DefaultHTTPTimeout = 30 * time.Second
)

// Persistence.
const (
	AppName     = "searchhist"
	DBFileName  = "searchhist.db"
	LogFileName = "searchhist.log"
	// ExportDirName is the default export folder inside the data directory.
	ExportDirName = "exports"
	// HistoryKey is the single key the history map is stored under.
	HistoryKey = "todos"
)

// Focus targets for the terminal surface.
const (
	FocusInput = iota
	FocusResults
	FocusHistory
)
