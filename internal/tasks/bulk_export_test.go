package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/songbreeze/internal/formatter"
	"github.com/desertthunder/songbreeze/internal/models"
	tu "github.com/desertthunder/songbreeze/internal/testing"
)

func makePlaylists(n int) []models.Playlist {
	playlists := make([]models.Playlist, n)
	for i := range playlists {
		playlists[i] = models.Playlist{
			Name: fmt.Sprintf("playlist%d", i+1),
			Songs: []models.Song{
				{Name: "a.mp3", Path: "/music/a.mp3", Format: "mp3"},
				{Name: "b.flac", Path: "/music/b.flac", Format: "flac"},
			},
		}
	}
	return playlists
}

func TestBulkExport_SuccessfulExport(t *testing.T) {
	tests := []struct {
		name          string
		format        formatter.Format
		playlistCount int
		wantExt       string
	}{
		{name: "single playlist csv export", format: formatter.FormatCSV, playlistCount: 1, wantExt: ".csv"},
		{name: "multiple playlists m3u export", format: formatter.FormatM3U, playlistCount: 3, wantExt: ".m3u"},
		{name: "markdown export", format: formatter.FormatMarkdown, playlistCount: 2, wantExt: ".md"},
		{name: "text export", format: formatter.FormatText, playlistCount: 5, wantExt: ".txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()

			result, err := BulkExport(context.Background(), nil, makePlaylists(tt.playlistCount), BulkExportOpts{
				Format:     tt.format,
				OutputDir:  tempDir,
				NumWorkers: 2,
			})
			if err != nil {
				t.Fatalf("BulkExport failed: %v", err)
			}

			if result.SuccessfulExports != tt.playlistCount {
				t.Errorf("expected %d successful exports, got %d", tt.playlistCount, result.SuccessfulExports)
			}
			if result.FailedExports != 0 {
				t.Errorf("expected no failures, got %d", result.FailedExports)
			}

			for _, res := range result.Results {
				if !strings.HasSuffix(res.File, tt.wantExt) {
					t.Errorf("expected %s file, got %s", tt.wantExt, res.File)
				}
				tu.AssertFileExists(t, res.File)
			}

			if result.Results[0].PlaylistName != "playlist1" {
				t.Errorf("expected results sorted by name, got %s first", result.Results[0].PlaylistName)
			}
		})
	}
}

func TestBulkExport_Manifest(t *testing.T) {
	tempDir := t.TempDir()

	result, err := BulkExport(context.Background(), nil, makePlaylists(2), BulkExportOpts{
		Format:    formatter.FormatCSV,
		OutputDir: tempDir,
	})
	if err != nil {
		t.Fatalf("BulkExport failed: %v", err)
	}

	if result.ManifestPath != filepath.Join(tempDir, manifestName) {
		t.Errorf("unexpected manifest path: %s", result.ManifestPath)
	}

	var manifest BulkExportResult
	if err := json.Unmarshal([]byte(tu.MustReadFile(t, result.ManifestPath)), &manifest); err != nil {
		t.Fatalf("manifest is not valid JSON: %v", err)
	}
	if manifest.TotalPlaylists != 2 || manifest.SuccessfulExports != 2 {
		t.Errorf("unexpected manifest counts: %+v", manifest)
	}
	if manifest.Format != formatter.FormatCSV {
		t.Errorf("expected csv format in manifest, got %s", manifest.Format)
	}
}

func TestBulkExport_PartialFailures(t *testing.T) {
	tempDir := t.TempDir()

	// A directory where the export file should go makes that one write fail.
	blocked := filepath.Join(tempDir, "playlist2.txt")
	if err := os.Mkdir(blocked, 0755); err != nil {
		t.Fatalf("failed to create blocking directory: %v", err)
	}

	result, err := BulkExport(context.Background(), nil, makePlaylists(3), BulkExportOpts{
		Format:    formatter.FormatText,
		OutputDir: tempDir,
	})
	if err != nil {
		t.Fatalf("BulkExport failed: %v", err)
	}

	if result.SuccessfulExports != 2 || result.FailedExports != 1 {
		t.Fatalf("expected 2 successes and 1 failure, got %d/%d", result.SuccessfulExports, result.FailedExports)
	}

	failed := result.Results[1]
	if failed.Success || failed.Error == nil || failed.ErrorMessage == "" {
		t.Errorf("expected playlist2 to carry its error, got %+v", failed)
	}
}

func TestBulkExport_CollidingFileNames(t *testing.T) {
	tempDir := t.TempDir()
	playlists := []models.Playlist{
		{Name: "rock/pop", Songs: []models.Song{{Name: "a.mp3", Path: "/music/a.mp3"}}},
		{Name: "rock_pop", Songs: []models.Song{{Name: "b.mp3", Path: "/music/b.mp3"}, {Name: "c.mp3", Path: "/music/c.mp3"}}},
		{Name: "Rock_Pop", Songs: []models.Song{{Name: "d.mp3", Path: "/music/d.mp3"}}},
	}

	result, err := BulkExport(context.Background(), nil, playlists, BulkExportOpts{
		Format:     formatter.FormatText,
		OutputDir:  tempDir,
		NumWorkers: 1,
	})
	if err != nil {
		t.Fatalf("BulkExport failed: %v", err)
	}
	if result.SuccessfulExports != 3 {
		t.Fatalf("expected 3 successful exports, got %d", result.SuccessfulExports)
	}

	files := map[string]string{}
	for _, res := range result.Results {
		files[res.PlaylistName] = res.File
	}

	tests := []struct {
		playlist string
		file     string
		song     string
	}{
		{"rock/pop", "rock_pop.txt", "a.mp3"},
		{"rock_pop", "rock_pop-2.txt", "b.mp3"},
		{"Rock_Pop", "Rock_Pop-3.txt", "d.mp3"},
	}
	for _, tt := range tests {
		t.Run(tt.playlist, func(t *testing.T) {
			want := filepath.Join(tempDir, tt.file)
			if files[tt.playlist] != want {
				t.Errorf("expected %s, got %s", want, files[tt.playlist])
			}
			if !strings.Contains(tu.MustReadFile(t, want), tt.song) {
				t.Errorf("expected %s to hold %s", tt.file, tt.song)
			}
		})
	}
}

func TestUniqueFileNames(t *testing.T) {
	playlists := []models.Playlist{{Name: "a"}, {Name: "a-2"}, {Name: "a"}, {Name: ""}, {Name: " "}}

	got := uniqueFileNames(playlists, ".m3u")
	want := []string{"a.m3u", "a-2.m3u", "a-3.m3u", "playlist.m3u", "playlist-2.m3u"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("file %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestBulkExport_DefaultOptions(t *testing.T) {
	t.Chdir(t.TempDir())

	result, err := BulkExport(context.Background(), nil, makePlaylists(1), BulkExportOpts{})
	if err != nil {
		t.Fatalf("BulkExport failed: %v", err)
	}

	if !strings.HasPrefix(result.OutputDirectory, "songbreeze_export_") {
		t.Errorf("expected default output directory, got %s", result.OutputDirectory)
	}
	if result.Format != formatter.FormatText {
		t.Errorf("expected text format by default, got %s", result.Format)
	}
	tu.AssertDirExists(t, result.OutputDirectory)
}

func TestBulkExport_WorkerPoolLimits(t *testing.T) {
	tests := []struct {
		name    string
		workers int
	}{
		{"zero workers uses default", 0},
		{"negative workers uses default", -3},
		{"too many workers is capped", 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := BulkExport(context.Background(), nil, makePlaylists(12), BulkExportOpts{
				OutputDir:  t.TempDir(),
				NumWorkers: tt.workers,
			})
			if err != nil {
				t.Fatalf("BulkExport failed: %v", err)
			}
			if result.SuccessfulExports != 12 {
				t.Errorf("expected 12 exports, got %d", result.SuccessfulExports)
			}
		})
	}
}

func TestBulkExport_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := BulkExport(ctx, nil, makePlaylists(20), BulkExportOpts{OutputDir: t.TempDir()})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if result == nil || result.SuccessfulExports == 20 {
		t.Errorf("expected an interrupted run, got %+v", result)
	}
}

func TestBulkExport_ProgressUpdates(t *testing.T) {
	prog := make(chan ProgressUpdate, 10)

	_, err := BulkExport(context.Background(), prog, makePlaylists(3), BulkExportOpts{OutputDir: t.TempDir()})
	if err != nil {
		t.Fatalf("BulkExport failed: %v", err)
	}
	close(prog)

	var exports, manifests int
	for update := range prog {
		switch update.Phase {
		case ExportPlaylist:
			exports++
			if update.Total != 3 {
				t.Errorf("expected total 3, got %d", update.Total)
			}
		case WriteManifest:
			manifests++
		}
	}
	if exports != 3 || manifests != 1 {
		t.Errorf("expected 3 export updates and 1 manifest update, got %d and %d", exports, manifests)
	}
}

func TestSendProgress_NeverBlocks(t *testing.T) {
	prog := make(chan ProgressUpdate)
	sendProgress(prog, ProgressUpdate{Message: "dropped"})
	sendProgress(nil, ProgressUpdate{Message: "ignored"})
}
