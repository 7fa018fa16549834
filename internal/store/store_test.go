package store

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/desertthunder/songbreeze/internal/shared"
	tu "github.com/desertthunder/songbreeze/internal/testing"
)

func quietStore(b Backend) *ListStore {
	return New(b, shared.NewLogger(io.Discard))
}

func newJSONStore(t *testing.T, content string) (*ListStore, string) {
	t.Helper()
	path := tu.MustWriteFile(t, t.TempDir(), "source.json", content)
	s := quietStore(NewJSONBackend(path))
	if _, err := s.Load(); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	return s, path
}

func TestListStore(t *testing.T) {
	t.Run("Load", func(t *testing.T) {
		s, _ := newJSONStore(t, `{"sources": ["~/music", "/srv/audio"]}`)

		if got := s.Items(); !slices.Equal(got, []string{"~/music", "/srv/audio"}) {
			t.Errorf("unexpected items: %v", got)
		}
	})

	t.Run("Load corrupt record", func(t *testing.T) {
		path := tu.MustWriteFile(t, t.TempDir(), "source.json", `{"sources": [`)
		s := quietStore(NewJSONBackend(path))

		_, err := s.Load()
		if !errors.Is(err, shared.ErrStoreCorrupt) {
			t.Fatalf("expected ErrStoreCorrupt, got %v", err)
		}
		if s.Len() != 0 {
			t.Errorf("expected no items after failed load, got %d", s.Len())
		}
	})

	t.Run("Load empty file", func(t *testing.T) {
		s, _ := newJSONStore(t, "  \n")
		if s.Len() != 0 {
			t.Errorf("expected empty list, got %v", s.Items())
		}
	})

	t.Run("Load missing file", func(t *testing.T) {
		s := quietStore(NewJSONBackend(filepath.Join(t.TempDir(), "missing.json")))
		if _, err := s.Load(); err == nil {
			t.Error("expected error for missing record")
		}
	})

	t.Run("Append writes through", func(t *testing.T) {
		s, path := newJSONStore(t, `{"sources": ["~/music"]}`)

		ok, err := s.Append("/home/x")
		if err != nil || !ok {
			t.Fatalf("Append() = %v, %v", ok, err)
		}

		reloaded := quietStore(NewJSONBackend(path))
		items, err := reloaded.Load()
		if err != nil {
			t.Fatalf("failed to reload: %v", err)
		}
		if items[len(items)-1] != "/home/x" {
			t.Errorf("expected last element /home/x, got %v", items)
		}
		if !strings.Contains(tu.MustReadFile(t, path), "\n  \"sources\"") {
			t.Errorf("expected indented record, got %s", tu.MustReadFile(t, path))
		}
	})

	t.Run("Append empty is a no-op", func(t *testing.T) {
		backend := &tu.MemoryBackend{Items: []string{"a"}}
		s := quietStore(backend)
		s.Load()

		ok, err := s.Append("")
		if err != nil || ok {
			t.Fatalf("Append(\"\") = %v, %v", ok, err)
		}
		if backend.Writes != 0 {
			t.Errorf("expected no writes, got %d", backend.Writes)
		}
	})

	t.Run("Remove writes through", func(t *testing.T) {
		s, path := newJSONStore(t, `{"sources": ["a", "b", "c"]}`)

		ok, err := s.Remove(1)
		if err != nil || !ok {
			t.Fatalf("Remove() = %v, %v", ok, err)
		}

		items, err := quietStore(NewJSONBackend(path)).Load()
		if err != nil {
			t.Fatalf("failed to reload: %v", err)
		}
		if !slices.Equal(items, []string{"a", "c"}) {
			t.Errorf("expected [a c], got %v", items)
		}
	})

	t.Run("Remove out of range is a no-op", func(t *testing.T) {
		backend := &tu.MemoryBackend{Items: []string{"a"}}
		s := quietStore(backend)
		s.Load()

		for _, idx := range []int{-1, 1, 10} {
			ok, err := s.Remove(idx)
			if err != nil || ok {
				t.Errorf("Remove(%d) = %v, %v", idx, ok, err)
			}
		}
		if backend.Writes != 0 {
			t.Errorf("expected no writes, got %d", backend.Writes)
		}
	})

	t.Run("Write failure keeps memory and record aligned", func(t *testing.T) {
		backend := &tu.MemoryBackend{Items: []string{"a"}}
		s := quietStore(backend)
		s.Load()
		backend.WriteErr = errors.New("disk full")

		if _, err := s.Append("b"); !errors.Is(err, shared.ErrStoreWrite) {
			t.Fatalf("expected ErrStoreWrite, got %v", err)
		}
		if _, err := s.Remove(0); !errors.Is(err, shared.ErrStoreWrite) {
			t.Fatalf("expected ErrStoreWrite, got %v", err)
		}
		if !slices.Equal(s.Items(), []string{"a"}) {
			t.Errorf("expected memory unchanged, got %v", s.Items())
		}
	})

	t.Run("Items returns a copy", func(t *testing.T) {
		s := quietStore(&tu.MemoryBackend{Items: []string{"a"}})
		s.Load()

		items := s.Items()
		items[0] = "mutated"
		if got, _ := s.At(0); got != "a" {
			t.Errorf("expected store unchanged, got %s", got)
		}
	})
}

func TestJSONBackend(t *testing.T) {
	t.Run("InitJSONRecord", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "source.json")
		if err := InitJSONRecord(path); err != nil {
			t.Fatalf("InitJSONRecord() error = %v", err)
		}

		items, err := NewJSONBackend(path).Read()
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		if len(items) != 0 {
			t.Errorf("expected empty list, got %v", items)
		}
	})

	t.Run("Write leaves no temp files", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "source.json")
		if err := NewJSONBackend(path).Write([]string{"a"}); err != nil {
			t.Fatalf("Write() error = %v", err)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("ReadDir() error = %v", err)
		}
		if len(entries) != 1 {
			t.Errorf("expected only the record in %s, got %d entries", dir, len(entries))
		}
	})

	t.Run("Write into missing directory fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nope", "source.json")
		if err := NewJSONBackend(path).Write([]string{"a"}); err == nil {
			t.Error("expected error writing into a missing directory")
		}
	})

	t.Run("null sources", func(t *testing.T) {
		path := tu.MustWriteFile(t, t.TempDir(), "source.json", `{"sources": null}`)
		items, err := NewJSONBackend(path).Read()
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		if items == nil || len(items) != 0 {
			t.Errorf("expected empty non-nil list, got %#v", items)
		}
	})
}
