package repositories

import (
	"database/sql"
	"io"
	"slices"
	"testing"

	"github.com/desertthunder/songbreeze/internal/shared"
	"github.com/desertthunder/songbreeze/internal/store"
)

// setupTestDB creates an in-memory SQLite database with migrations applied
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(shared.MemoryDatabase)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	shared.ConfigureDatabase(db, 1, 1)

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

func TestSourceRepository(t *testing.T) {
	t.Run("Read empty", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		sources, err := NewSourceRepository(db, "test").Read()
		if err != nil {
			t.Fatalf("failed to read sources: %v", err)
		}
		if sources == nil || len(sources) != 0 {
			t.Errorf("expected empty non-nil list, got %#v", sources)
		}
	})

	t.Run("Write then Read keeps order and duplicates", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewSourceRepository(db, "test")
		want := []string{"/b", "/a", "/b"}
		if err := repo.Write(want); err != nil {
			t.Fatalf("failed to write sources: %v", err)
		}

		got, err := repo.Read()
		if err != nil {
			t.Fatalf("failed to read sources: %v", err)
		}
		if !slices.Equal(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("Write replaces previous rows", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewSourceRepository(db, "test")
		if err := repo.Write([]string{"/a", "/b", "/c"}); err != nil {
			t.Fatalf("failed to write sources: %v", err)
		}
		if err := repo.Write([]string{"/c"}); err != nil {
			t.Fatalf("failed to rewrite sources: %v", err)
		}

		got, _ := repo.Read()
		if !slices.Equal(got, []string{"/c"}) {
			t.Errorf("expected [/c], got %v", got)
		}
	})

	t.Run("Import only seeds an empty table", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewSourceRepository(db, "test")
		imported, err := repo.Import([]string{"/a"})
		if err != nil || !imported {
			t.Fatalf("Import() = %v, %v", imported, err)
		}

		imported, err = repo.Import([]string{"/x", "/y"})
		if err != nil || imported {
			t.Fatalf("second Import() = %v, %v", imported, err)
		}

		got, _ := repo.Read()
		if !slices.Equal(got, []string{"/a"}) {
			t.Errorf("expected [/a], got %v", got)
		}
	})

	t.Run("Read without schema fails", func(t *testing.T) {
		db, err := shared.NewDatabase(shared.MemoryDatabase)
		if err != nil {
			t.Fatalf("failed to create database: %v", err)
		}
		defer db.Close()

		if _, err := NewSourceRepository(db, "test").Read(); err == nil {
			t.Error("expected error reading without migrations")
		}
	})

	t.Run("backs a write-through ListStore", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewSourceRepository(db, "test")
		s := store.New(repo, shared.NewLogger(io.Discard))
		if _, err := s.Load(); err != nil {
			t.Fatalf("failed to load: %v", err)
		}

		s.Append("~/music")
		s.Append("/home/x")
		s.Remove(0)

		reloaded, err := store.New(repo, shared.NewLogger(io.Discard)).Load()
		if err != nil {
			t.Fatalf("failed to reload: %v", err)
		}
		if !slices.Equal(reloaded, []string{"/home/x"}) {
			t.Errorf("expected [/home/x], got %v", reloaded)
		}
	})
}
