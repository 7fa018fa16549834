// package formatter provides functions to export playlist data to various formats (CSV, M3U, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/desertthunder/songbreeze/internal/models"
	"github.com/desertthunder/songbreeze/internal/shared"
)

// Format names an export format.
type Format string

const (
	FormatCSV      Format = "csv"
	FormatM3U      Format = "m3u"
	FormatMarkdown Format = "markdown"
	FormatText     Format = "text"
)

// Formats lists the supported formats in help order.
var Formats = []Format{FormatCSV, FormatM3U, FormatMarkdown, FormatText}

// ParseFormat resolves a format name, accepting common aliases ("md", "txt", "m3u8").
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "csv":
		return FormatCSV, nil
	case "m3u", "m3u8":
		return FormatM3U, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "text", "txt", "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: unknown format %q", shared.ErrInvalidArgument, name)
	}
}

// Extension returns the file extension used for the format, including the dot.
func (f Format) Extension() string {
	switch f {
	case FormatCSV:
		return ".csv"
	case FormatM3U:
		return ".m3u"
	case FormatMarkdown:
		return ".md"
	default:
		return ".txt"
	}
}

// Export renders the playlist in the given format.
func Export(p models.Playlist, format Format) ([]byte, error) {
	switch format {
	case FormatCSV:
		return ExportToCSV(p)
	case FormatM3U:
		return ExportToM3U(p)
	case FormatMarkdown:
		return ExportToMarkdown(p)
	case FormatText:
		return ExportToText(p)
	default:
		return nil, fmt.Errorf("%w: unknown format %q", shared.ErrInvalidArgument, format)
	}
}

// ExportToCSV converts a playlist to CSV format with columns: Name, Title, Artist, Album, Format, Size, Path
func ExportToCSV(p models.Playlist) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Name", "Title", "Artist", "Album", "Format", "Size", "Path"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, song := range p.Songs {
		record := []string{
			song.Name,
			song.Title,
			song.Artist,
			song.Album,
			song.Format,
			strconv.FormatInt(song.Size, 10),
			song.Path,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToM3U converts a playlist to an extended M3U playlist. Durations are unknown and written as -1.
func ExportToM3U(p models.Playlist) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("#EXTM3U\n")
	buf.WriteString(fmt.Sprintf("#PLAYLIST:%s\n", p.Name))
	for _, song := range p.Songs {
		buf.WriteString(fmt.Sprintf("#EXTINF:-1,%s\n", song.DisplayName()))
		buf.WriteString(song.Path + "\n")
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a playlist to Markdown format
func ExportToMarkdown(p models.Playlist) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", p.Name))
	buf.WriteString(fmt.Sprintf("**Songs**: %d\n\n", len(p.Songs)))

	buf.WriteString("## Songs\n\n")
	for i, song := range p.Songs {
		albumPart := ""
		if song.Album != "" {
			albumPart = fmt.Sprintf(" (%s)", song.Album)
		}
		buf.WriteString(fmt.Sprintf("%d. %s%s `%s`\n", i+1, song.DisplayName(), albumPart, song.Path))
	}

	return buf.Bytes(), nil
}

// ExportToText converts a playlist to plain text format
func ExportToText(p models.Playlist) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Playlist: %s\n", p.Name))
	buf.WriteString(fmt.Sprintf("Songs: %d\n\n", len(p.Songs)))

	for i, song := range p.Songs {
		buf.WriteString(fmt.Sprintf("%d. %s\n", i+1, song.DisplayName()))
	}

	return buf.Bytes(), nil
}

// WriteExport exports a playlist to a file.
//
// Defaults to {playlist name}{extension} in the working directory. Parent directories are created.
func WriteExport(p models.Playlist, format Format, path string) (string, error) {
	if path == "" {
		path = FileName(p.Name) + format.Extension()
	}

	data, err := Export(p, format)
	if err != nil {
		return "", fmt.Errorf("failed to generate %s: %w", format, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s file: %w", format, err)
	}

	return path, nil
}

// FileName replaces characters that are unsafe in file names.
func FileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "playlist"
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, name)
}
