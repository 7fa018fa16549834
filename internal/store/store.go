package store

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/songbreeze/internal/shared"
)

// Backend reads and writes the whole list as one record.
type Backend interface {
	Read() ([]string, error)    // Read returns the persisted list, wrapping [shared.ErrStoreCorrupt] when it cannot be parsed
	Write(items []string) error // Write replaces the persisted list with items
	Location() string           // Location describes where the record lives, for logs and the settings view
}

// ListStore is an ordered string list with write-through persistence.
type ListStore struct {
	backend Backend
	items   []string
	logger  *log.Logger
}

// New creates a ListStore over backend. A nil logger falls back to [shared.NewLogger].
func New(backend Backend, logger *log.Logger) *ListStore {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &ListStore{backend: backend, logger: logger}
}

// Load replaces the in-memory list with the backend's record.
//
// On error the previous contents are kept; callers must not continue with a half-loaded list.
func (s *ListStore) Load() ([]string, error) {
	items, err := s.backend.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", s.backend.Location(), err)
	}

	s.items = items
	s.logger.Debug("loaded list", "location", s.backend.Location(), "count", len(items))
	return s.Items(), nil
}

// Items returns a copy of the list.
func (s *ListStore) Items() []string {
	return slices.Clone(s.items)
}

// Len returns the number of items.
func (s *ListStore) Len() int { return len(s.items) }

// At returns the item at index and whether index is in range.
func (s *ListStore) At(index int) (string, bool) {
	if index < 0 || index >= len(s.items) {
		return "", false
	}
	return s.items[index], true
}

// Location describes the backing record.
func (s *ListStore) Location() string { return s.backend.Location() }

// Append adds item to the end of the list and persists the whole list.
//
// Empty items are ignored and report false.
func (s *ListStore) Append(item string) (bool, error) {
	if item == "" {
		return false, nil
	}

	next := append(slices.Clone(s.items), item)
	if err := s.save(next); err != nil {
		return false, err
	}

	s.logger.Info("added item", "item", item, "count", len(s.items))
	return true, nil
}

// Remove deletes the item at index and persists the whole list.
//
// Out of range indexes are ignored and report false.
func (s *ListStore) Remove(index int) (bool, error) {
	if index < 0 || index >= len(s.items) {
		return false, nil
	}

	removed := s.items[index]
	next := slices.Delete(slices.Clone(s.items), index, index+1)
	if err := s.save(next); err != nil {
		return false, err
	}

	s.logger.Info("removed item", "item", removed, "index", index, "count", len(s.items))
	return true, nil
}

// save writes next through to the backend and only then adopts it as the in-memory list.
func (s *ListStore) save(next []string) error {
	if err := s.backend.Write(next); err != nil {
		return fmt.Errorf("%w: %s: %v", shared.ErrStoreWrite, s.backend.Location(), err)
	}
	s.items = next
	return nil
}
