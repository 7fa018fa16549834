package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/desertthunder/songbreeze/internal/models"
	"github.com/desertthunder/songbreeze/internal/state"
)

// paneChrome is the border width and height a pane adds around its content.
const paneChrome = 2

// renderHome draws the playlist, song and detail panes side by side, highlighting the focused one.
func renderHome(_ *Model, c state.TabController, width, height int) string {
	home, ok := c.(*state.HomeController)
	if !ok {
		return ""
	}
	b := home.Browser()

	paneWidth := max(width/3-paneChrome, 1)
	paneHeight := max(height-paneChrome, 1)

	names := make([]string, len(b.Playlists()))
	for i, p := range b.Playlists() {
		names[i] = fmt.Sprintf("%s (%d)", p.Name, len(p.Songs))
	}
	selected, hasSel := b.PlaylistIndex()
	left := listView{rows: names, selected: selected, hasSel: hasSel, width: paneWidth, height: paneHeight - 1, empty: "no playlists"}

	var songs []string
	var songSel int
	var songHasSel bool
	title := "Songs"
	if p, ok := b.SelectedPlaylist(); ok {
		title = p.Name
		songs = make([]string, len(p.Songs))
		for i, s := range p.Songs {
			songs[i] = s.DisplayName()
		}
		songSel, songHasSel = b.SongIndex(p.Name)
	}
	mid := listView{rows: songs, selected: songSel, hasSel: songHasSel, width: paneWidth, height: paneHeight - 1, empty: "no songs"}

	var detail string
	if song, ok := b.SelectedSong(); ok {
		detail = songDetail(*song, paneWidth)
	} else if p, ok := b.SelectedPlaylist(); ok {
		detail = truncate(fmt.Sprintf("%d songs", len(p.Songs)), paneWidth)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		pane("Playlists", left.render(), b.Focus() == state.FocusLeft, paneWidth, paneHeight),
		pane(title, mid.render(), b.Focus() == state.FocusMid, paneWidth, paneHeight),
		pane("Detail", detail, b.Focus() == state.FocusRight, paneWidth, paneHeight),
	)
}

// renderSources draws the source list with its persistence location.
func renderSources(_ *Model, c state.TabController, width, height int) string {
	sources, ok := c.(*state.SourcesController)
	if !ok {
		return ""
	}

	innerWidth := max(width-paneChrome, 1)
	innerHeight := max(height-paneChrome, 1)

	selected, hasSel := sources.Selected()
	list := listView{
		rows:     sources.Sources(),
		selected: selected,
		hasSel:   hasSel,
		width:    innerWidth,
		height:   innerHeight - 2,
		empty:    "no sources, press a to add one",
	}
	location := styles.help.Render(truncate("stored in "+sources.Location(), innerWidth))
	content := lipgloss.JoinVertical(lipgloss.Left, list.render(), "", location)
	return pane("Sources", content, true, innerWidth, innerHeight)
}

// renderSettings draws the effective configuration as aligned name/value rows.
func renderSettings(_ *Model, c state.TabController, width, height int) string {
	settings, ok := c.(*state.SettingsController)
	if !ok {
		return ""
	}

	innerWidth := max(width-paneChrome, 1)
	innerHeight := max(height-paneChrome, 1)

	nameWidth := 0
	for _, s := range settings.Settings() {
		nameWidth = max(nameWidth, len(s.Name))
	}

	rows := make([]string, 0, len(settings.Settings()))
	for _, s := range settings.Settings() {
		rows = append(rows, truncate(fmt.Sprintf("%-*s  %s", nameWidth, s.Name, s.Value), innerWidth))
	}
	if len(rows) == 0 {
		rows = append(rows, styles.help.Render("no settings"))
	}
	return pane("Settings", strings.Join(rows, "\n"), true, innerWidth, innerHeight)
}

func songDetail(s models.Song, width int) string {
	fields := []struct{ name, value string }{
		{"title", s.Title},
		{"artist", s.Artist},
		{"album", s.Album},
		{"format", s.Format},
		{"size", formatSize(s.Size)},
		{"path", s.Path},
	}

	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		lines = append(lines, truncate(fmt.Sprintf("%-6s %s", f.name, f.value), width))
	}
	return strings.Join(lines, "\n")
}

func formatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// pane wraps content in a titled border of the given inner size.
func pane(title, content string, focused bool, width, height int) string {
	style := styles.pane
	if focused {
		style = styles.paneOn
	}
	heading := styles.title.Render(truncate(title, width))
	body := lipgloss.JoinVertical(lipgloss.Left, heading, content)
	return style.Width(width).Height(height).MaxHeight(height + paneChrome).Render(body)
}
