package sqlite

import (
	"path/filepath"
	"testing"
)

func TestNewDBReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "views.db")

	db, err := NewDB(Config{Path: path})
	if err != nil {
		t.Fatalf("failed to create database: %v", err)
	}
	if _, err := db.Exec("INSERT INTO saved_views (name, view_config) VALUES ('kept', '{}')"); err != nil {
		t.Fatalf("failed to insert view: %v", err)
	}
	db.Close()

	// a second open must not re-run the schema
	db, err = NewDB(Config{Path: path})
	if err != nil {
		t.Fatalf("failed to reopen database: %v", err)
	}
	defer db.Close()

	var version, count int
	if err := db.Get(&version, "PRAGMA user_version"); err != nil {
		t.Fatalf("failed to read version: %v", err)
	}
	if version != len(migrations) {
		t.Errorf("user_version = %d, want %d", version, len(migrations))
	}
	if err := db.Get(&count, "SELECT COUNT(*) FROM saved_views"); err != nil {
		t.Fatalf("failed to count views: %v", err)
	}
	if count != 1 {
		t.Errorf("saved_views has %d rows, want 1", count)
	}
}

func TestNewDBRejectsNewerSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "views.db")

	db, err := NewDB(Config{Path: path})
	if err != nil {
		t.Fatalf("failed to create database: %v", err)
	}
	if _, err := db.Exec("PRAGMA user_version = 99"); err != nil {
		t.Fatalf("failed to bump version: %v", err)
	}
	db.Close()

	if _, err := NewDB(Config{Path: path}); err == nil {
		t.Error("expected error for a schema newer than the build")
	}
}
