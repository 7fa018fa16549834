// package models defines the data model for the music library
package models

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
)

// DefaultPlaylist is the name of the playlist that always exists and always sorts first.
const DefaultPlaylist = "Default"

// Song is the metadata of one audio file, derived from a filesystem probe.
type Song struct {
	Name   string // Name is the file's base name
	Path   string // Path is the location the song was loaded from
	Size   int64  // Size is the file size in bytes
	Format string // Format is the lower-cased extension without the dot
	Title  string // Title comes from embedded tags, when present
	Artist string // Artist comes from embedded tags, when present
	Album  string // Album comes from embedded tags, when present
}

// DisplayName prefers the tagged title over the file name.
func (s Song) DisplayName() string {
	if s.Title != "" {
		if s.Artist != "" {
			return fmt.Sprintf("%s - %s", s.Artist, s.Title)
		}
		return s.Title
	}
	return s.Name
}

// Playlist is a named ordered collection of songs. Name is the unique key.
type Playlist struct {
	Name  string
	Songs []Song
}

// IsEmpty reports whether the playlist has no songs.
func (p Playlist) IsEmpty() bool { return len(p.Songs) == 0 }

// SourceRecord is the persisted shape of the source list.
type SourceRecord struct {
	Sources []string `json:"sources"`
}

// PlaylistRecord is the persisted shape of the playlist set.
type PlaylistRecord struct {
	Names     []string            `json:"names"`
	Songs     []string            `json:"songs"`
	Playlists map[string][]string `json:"playlists"`
}

// ProbeSong builds a [Song] from the file at path.
//
// It reports false when the path does not exist, cannot be read, or is a directory.
// Tag metadata is best effort: files without readable tags still produce a Song.
func ProbeSong(path string) (Song, bool) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return Song{}, false
	}

	song := Song{
		Name:   info.Name(),
		Path:   path,
		Size:   info.Size(),
		Format: formatOf(path),
	}

	f, err := os.Open(path)
	if err != nil {
		return song, true
	}
	defer f.Close()

	if m, err := tag.ReadFrom(f); err == nil {
		song.Title = strings.TrimSpace(m.Title())
		song.Artist = strings.TrimSpace(m.Artist())
		song.Album = strings.TrimSpace(m.Album())
		if song.Format == "" {
			song.Format = strings.ToLower(string(m.FileType()))
		}
	}

	return song, true
}

func formatOf(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}
