package util

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDataDir_UsesXDGDataHome(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_DATA_HOME", base)
	if got, want := DataDir("searchhist"), filepath.Join(base, "searchhist"); got != want {
		t.Fatalf("DataDir = %q, want %q", got, want)
	}
}

func TestDataDir_FallsBackToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("HOME", home)
	if got, want := DataDir("searchhist"), filepath.Join(home, ".local", "share", "searchhist"); got != want {
		t.Fatalf("DataDir = %q, want %q", got, want)
	}
}

func TestExportPath(t *testing.T) {
	dir := t.TempDir()
	at := time.Date(2024, 3, 5, 10, 0, 0, 0, time.Local)

	first := ExportPath(dir, "pdf", at)
	if want := filepath.Join(dir, "search-history-2024-03-05.pdf"); first != want {
		t.Fatalf("ExportPath = %q, want %q", first, want)
	}
	if err := os.WriteFile(first, []byte("x"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	second := ExportPath(dir, "pdf", at)
	if want := filepath.Join(dir, "search-history-2024-03-05-2.pdf"); second != want {
		t.Fatalf("ExportPath = %q, want %q", second, want)
	}
}
