package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	marker   = "> "
	ellipsis = "…"
)

// listView renders rows into a fixed box, marking the selected row and scrolling it into view.
type listView struct {
	rows     []string
	selected int
	hasSel   bool
	width    int
	height   int
	empty    string
}

func (l listView) render() string {
	if l.width < 1 || l.height < 1 {
		return ""
	}
	if len(l.rows) == 0 {
		return styles.help.Render(truncate(l.empty, l.width))
	}

	start := l.window()
	end := min(start+l.height, len(l.rows))

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, l.row(i))
	}
	return strings.Join(lines, "\n")
}

// window returns the first visible row so the selected row stays inside the box.
func (l listView) window() int {
	if !l.hasSel || l.selected < l.height {
		return 0
	}
	return l.selected - l.height + 1
}

func (l listView) row(i int) string {
	text := truncate(l.rows[i], max(l.width-runewidth.StringWidth(marker), 1))
	if l.hasSel && i == l.selected {
		return styles.selected.Render(marker + text)
	}
	return strings.Repeat(" ", runewidth.StringWidth(marker)) + text
}

// truncate shortens s to at most width terminal cells.
func truncate(s string, width int) string {
	if width < 1 {
		return ""
	}
	return runewidth.Truncate(s, width, ellipsis)
}
