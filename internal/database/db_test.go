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
	if err := db.Close(); err != nil {
		t.Fatalf("db close failed: %v", err)
	}
	again, err := Open(ctx, db.Path())
	if err != nil {
		t.Fatalf("Open second run failed: %v", err)
	}
	if err := again.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
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
	_, err := Open(ctx, path)
	if err == nil {
		t.Fatalf("expected error opening garbage file")
	}
	if !errors.Is(err, ErrDatabaseCorrupted) {
		t.Fatalf("expected ErrDatabaseCorrupted, got %v", err)
	}
	var opErr *OpError
	if !errors.As(err, &opErr) {
		t.Fatalf("expected OpError, got %T", err)
	}
}

func TestCloseNilSafe(t *testing.T) {
	var db *Database
	if err := db.Close(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestOpErrorFormatting(t *testing.T) {
	base := errors.New("boom")
	err := &OpError{Op: "save", Resource: "stats", Key: "2026-10-15", Err: base}
	if got := err.Error(); got != "save stats 2026-10-15: boom" {
		t.Fatalf("Error() = %q", got)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected Unwrap to expose base error")
	}
	noKey := &OpError{Op: "open", Resource: "database", Err: base}
	if got := noKey.Error(); got != "open database: boom" {
		t.Fatalf("Error() = %q", got)
	}
	if wrapStatsErr("save", "x", nil) != nil {
		t.Fatalf("expected nil wrap for nil error")
	}
}
