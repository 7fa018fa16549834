// Package library loads the playlist record and probes each referenced song.
//
// Loading is read-only: the playlist set is built once at startup and kept in memory.
// The "Default" playlist always exists and sorts first; the rest are ordered by name.
package library

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/desertthunder/songbreeze/internal/models"
	"github.com/desertthunder/songbreeze/internal/shared"
)

// Library is the in-memory playlist set.
type Library struct {
	Playlists []models.Playlist
	Dropped   int // Dropped counts song paths that did not exist at load time
}

// Default returns the library used when no playlist record exists: a single empty Default playlist.
func Default() *Library {
	return &Library{Playlists: []models.Playlist{{Name: models.DefaultPlaylist}}}
}

// Load reads the playlist record at path.
//
// A missing file yields [Default]. A malformed record returns an error wrapping [shared.ErrStoreCorrupt];
// choosing whether to substitute the default is left to the caller.
func Load(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read playlist record: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return Default(), nil
	}

	var record models.PlaylistRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", shared.ErrStoreCorrupt, path, err)
	}

	return FromRecord(record), nil
}

// FromRecord builds the playlist set from a decoded record.
//
// Every name in Names and every key of Playlists becomes a playlist. Default takes Playlists["Default"]
// when present and otherwise the library-wide Songs list.
func FromRecord(record models.PlaylistRecord) *Library {
	paths := make(map[string][]string, len(record.Playlists)+1)
	for _, name := range record.Names {
		if name != "" {
			paths[name] = nil
		}
	}
	for name, songs := range record.Playlists {
		if name != "" {
			paths[name] = songs
		}
	}
	if _, ok := record.Playlists[models.DefaultPlaylist]; !ok {
		paths[models.DefaultPlaylist] = record.Songs
	}

	lib := &Library{Playlists: make([]models.Playlist, 0, len(paths))}
	for name, songPaths := range paths {
		playlist := models.Playlist{Name: name, Songs: make([]models.Song, 0, len(songPaths))}
		for _, p := range songPaths {
			song, ok := models.ProbeSong(p)
			if !ok {
				lib.Dropped++
				continue
			}
			playlist.Songs = append(playlist.Songs, song)
		}
		lib.Playlists = append(lib.Playlists, playlist)
	}

	sort.Slice(lib.Playlists, func(i, j int) bool {
		a, b := lib.Playlists[i].Name, lib.Playlists[j].Name
		if a == models.DefaultPlaylist || b == models.DefaultPlaylist {
			return a == models.DefaultPlaylist && b != models.DefaultPlaylist
		}
		return a < b
	})

	return lib
}

// Find returns the playlist with the given name.
func (l *Library) Find(name string) (*models.Playlist, error) {
	for i := range l.Playlists {
		if l.Playlists[i].Name == name {
			return &l.Playlists[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, name)
}

// SongCount returns the number of songs across all playlists.
func (l *Library) SongCount() int {
	n := 0
	for _, p := range l.Playlists {
		n += len(p.Songs)
	}
	return n
}
