package state

import "github.com/desertthunder/songbreeze/internal/models"

// Focus is the pane of the Home tab that receives navigation keys.
type Focus int

const (
	FocusLeft  Focus = iota // playlists
	FocusMid                // songs of the selected playlist
	FocusRight              // song detail, inert
)

func (f Focus) String() string {
	switch f {
	case FocusLeft:
		return "playlists"
	case FocusMid:
		return "songs"
	case FocusRight:
		return "detail"
	default:
		return "unknown"
	}
}

// PlaylistBrowser tracks the playlist selection and, per playlist, the song selection.
//
// Song selections are keyed by playlist name rather than position, so they stay attached to their playlist
// if the set is ever reordered.
type PlaylistBrowser struct {
	playlists []models.Playlist
	selected  Selection
	songs     map[string]*Selection
	focus     Focus
}

// NewPlaylistBrowser creates a browser focused on the playlist pane with the first playlist selected.
func NewPlaylistBrowser(playlists []models.Playlist) *PlaylistBrowser {
	b := &PlaylistBrowser{
		playlists: playlists,
		songs:     make(map[string]*Selection, len(playlists)),
	}
	for _, p := range playlists {
		b.songs[p.Name] = &Selection{}
	}
	b.selected.Fit(len(playlists))
	return b
}

// Playlists returns the playlist set in display order.
func (b *PlaylistBrowser) Playlists() []models.Playlist { return b.playlists }

// Focus returns the focused pane.
func (b *PlaylistBrowser) Focus() Focus { return b.focus }

// PlaylistIndex returns the selected playlist index.
func (b *PlaylistBrowser) PlaylistIndex() (int, bool) { return b.selected.Index() }

// SelectedPlaylist returns the selected playlist.
func (b *PlaylistBrowser) SelectedPlaylist() (*models.Playlist, bool) {
	i, ok := b.selected.Index()
	if !ok || i >= len(b.playlists) {
		return nil, false
	}
	return &b.playlists[i], true
}

// SongIndex returns the song selection of the named playlist.
func (b *PlaylistBrowser) SongIndex(playlist string) (int, bool) {
	if sel, ok := b.songs[playlist]; ok {
		return sel.Index()
	}
	return 0, false
}

// SelectedSong returns the selected song of the selected playlist.
func (b *PlaylistBrowser) SelectedSong() (*models.Song, bool) {
	p, ok := b.SelectedPlaylist()
	if !ok {
		return nil, false
	}
	i, ok := b.SongIndex(p.Name)
	if !ok || i >= len(p.Songs) {
		return nil, false
	}
	return &p.Songs[i], true
}

// Next moves the selection of the focused level forward, wrapping.
func (b *PlaylistBrowser) Next() {
	switch b.focus {
	case FocusLeft:
		b.selected.Next(len(b.playlists))
	case FocusMid:
		if p, ok := b.SelectedPlaylist(); ok {
			b.songSelection(p.Name).Next(len(p.Songs))
		}
	}
}

// Previous moves the selection of the focused level backward, wrapping.
func (b *PlaylistBrowser) Previous() {
	switch b.focus {
	case FocusLeft:
		b.selected.Previous(len(b.playlists))
	case FocusMid:
		if p, ok := b.SelectedPlaylist(); ok {
			b.songSelection(p.Name).Previous(len(p.Songs))
		}
	}
}

// Enter drills from the playlist pane into the selected playlist's songs.
//
// It reports false, changing nothing, unless the playlist pane is focused and the selected playlist has songs.
func (b *PlaylistBrowser) Enter() bool {
	if b.focus != FocusLeft {
		return false
	}
	p, ok := b.SelectedPlaylist()
	if !ok || p.IsEmpty() {
		return false
	}

	b.focus = FocusMid
	b.songSelection(p.Name).Select(0, len(p.Songs))
	return true
}

// Exit returns from the song pane to the playlist pane, clearing the song selection of the selected playlist.
func (b *PlaylistBrowser) Exit() bool {
	if b.focus != FocusMid {
		return false
	}

	b.focus = FocusLeft
	if p, ok := b.SelectedPlaylist(); ok {
		b.songSelection(p.Name).Clear()
	}
	return true
}

// Reset focuses the playlist pane and clears every song selection.
func (b *PlaylistBrowser) Reset() {
	b.focus = FocusLeft
	for _, sel := range b.songs {
		sel.Clear()
	}
}

func (b *PlaylistBrowser) songSelection(name string) *Selection {
	sel, ok := b.songs[name]
	if !ok {
		sel = &Selection{}
		b.songs[name] = sel
	}
	return sel
}
