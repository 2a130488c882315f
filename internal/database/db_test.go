package database

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func setupTestDB(t *testing.T, ctx context.Context) *Database {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")
	db, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	return db
}

func TestOpen_MigrationsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if err := db.SetSetting(ctx, "k", "v"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("db close failed: %v", err)
	}
	reopened, err := Open(ctx, db.Path())
	if err != nil {
		t.Fatalf("Open second run failed: %v", err)
	}
	defer reopened.Close()
	value, ok, err := reopened.GetSetting(ctx, "k")
	if err != nil || !ok || value != "v" {
		t.Fatalf("expected persisted value, got %q ok=%v err=%v", value, ok, err)
	}
}

func TestOpen_CreatesParentDirectory(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "dir", "test.db")
	db, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected database file to exist: %v", err)
	}
}

func TestOpen_CorruptedFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "garbage.db")
	junk := make([]byte, 4096)
	for i := range junk {
		junk[i] = byte(i % 251)
	}
	if err := os.WriteFile(path, junk, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	db, err := Open(ctx, path)
	if err == nil {
		_ = db.Close()
		t.Fatalf("expected error opening a non-database file")
	}
	if !errors.Is(err, ErrDatabaseCorrupted) {
		t.Fatalf("expected ErrDatabaseCorrupted, got %v", err)
	}
	var opErr *OpError
	if !errors.As(err, &opErr) {
		t.Fatalf("expected OpError, got %T", err)
	}
}

func TestSettingsCRUD(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	if _, ok, err := db.GetSetting(ctx, "todos"); err != nil || ok {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}
	if err := db.SetSetting(ctx, "todos", "{}"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	if err := db.SetSetting(ctx, "todos", `{"a":{"title":"a","time":"t"}}`); err != nil {
		t.Fatalf("SetSetting overwrite failed: %v", err)
	}
	value, ok, err := db.GetSetting(ctx, "todos")
	if err != nil || !ok {
		t.Fatalf("GetSetting failed: ok=%v err=%v", ok, err)
	}
	if value != `{"a":{"title":"a","time":"t"}}` {
		t.Fatalf("unexpected value %q", value)
	}
	if err := db.DeleteSetting(ctx, "todos"); err != nil {
		t.Fatalf("DeleteSetting failed: %v", err)
	}
	if _, ok, _ := db.GetSetting(ctx, "todos"); ok {
		t.Fatalf("expected key to be gone after delete")
	}
	if err := db.DeleteSetting(ctx, "todos"); err != nil {
		t.Fatalf("deleting a missing key should not fail: %v", err)
	}
}

func TestSettingsClosedDatabase(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	_ = db.Close()

	err := db.SetSetting(ctx, "todos", "{}")
	var opErr *OpError
	if !errors.As(err, &opErr) {
		t.Fatalf("expected OpError, got %v", err)
	}
	if opErr.Op != "set" || opErr.Key != "todos" {
		t.Fatalf("unexpected OpError %+v", opErr)
	}
}

func TestOpError(t *testing.T) {
	var nilErr *OpError
	if nilErr.Error() != "" {
		t.Fatalf("nil OpError should render empty")
	}
	base := errors.New("boom")
	err := &OpError{Op: "get", Resource: "setting", Key: "todos", Err: base}
	if err.Error() != `get setting "todos": boom` {
		t.Fatalf("Error() = %q", err.Error())
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected Unwrap to expose base error")
	}
	if wrapSettingErr("get", "k", nil) != nil {
		t.Fatalf("wrapSettingErr(nil) should be nil")
	}
}
