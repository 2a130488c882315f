package util

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DataDir holds the database, the log and default exports for app.
func DataDir(app string) string {
	if base := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); base != "" {
		return filepath.Join(base, app)
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return filepath.Join(home, ".local", "share", app)
	}
	return filepath.Join(".", app)
}

// ExportPath names a dated history export in dir, such as
// search-history-2024-03-05.pdf. Existing files are never reused: a numeric
// suffix is added until the name is free.
func ExportPath(dir, ext string, at time.Time) string {
	base := "search-history-" + at.Format("2006-01-02")
	path := filepath.Join(dir, base+"."+ext)
	for n := 2; fileExists(path); n++ {
		path = filepath.Join(dir, fmt.Sprintf("%s-%d.%s", base, n, ext))
	}
	return path
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
