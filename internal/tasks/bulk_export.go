package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/desertthunder/songbreeze/internal/formatter"
	"github.com/desertthunder/songbreeze/internal/models"
)

const (
	defaultWorkers = 4
	maxWorkers     = 10
	manifestName   = "export_manifest.json"
)

// BulkExportOpts contains configuration for bulk playlist exports.
type BulkExportOpts struct {
	Format     formatter.Format // Export format
	OutputDir  string           // Base output directory (default: songbreeze_export_{epoch})
	NumWorkers int              // Concurrent workers (default: 4, capped at 10)
}

// PlaylistExportResult is the outcome of exporting one playlist.
type PlaylistExportResult struct {
	PlaylistName string `json:"playlist"`
	Songs        int    `json:"songs"`
	File         string `json:"file,omitempty"`
	Success      bool   `json:"success"`
	Error        error  `json:"-"`
	ErrorMessage string `json:"error,omitempty"`
}

// BulkExportResult summarizes a bulk export and is written as the manifest.
type BulkExportResult struct {
	Format            formatter.Format       `json:"format"`
	OutputDirectory   string                 `json:"output_directory"`
	TotalPlaylists    int                    `json:"total_playlists"`
	SuccessfulExports int                    `json:"successful_exports"`
	FailedExports     int                    `json:"failed_exports"`
	Results           []PlaylistExportResult `json:"results"`
	ManifestPath      string                 `json:"-"`
}

// BulkExport exports playlists concurrently and writes a manifest summarizing the results.
//
// Playlists that fail are recorded in the result; only a failure to create the output directory or
// to write the manifest is returned as an error. Cancelling ctx stops handing out further playlists.
func BulkExport(ctx context.Context, prog chan<- ProgressUpdate, playlists []models.Playlist, opts BulkExportOpts) (*BulkExportResult, error) {
	if opts.OutputDir == "" {
		opts.OutputDir = fmt.Sprintf("songbreeze_export_%d", time.Now().Unix())
	}
	if opts.NumWorkers <= 0 {
		opts.NumWorkers = defaultWorkers
	}
	opts.NumWorkers = min(opts.NumWorkers, maxWorkers)
	if opts.Format == "" {
		opts.Format = formatter.FormatText
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	result := &BulkExportResult{
		Format:          opts.Format,
		OutputDirectory: opts.OutputDir,
		TotalPlaylists:  len(playlists),
		Results:         make([]PlaylistExportResult, 0, len(playlists)),
	}

	files := uniqueFileNames(playlists, opts.Format.Extension())
	jobs := make(chan exportJob)
	results := make(chan PlaylistExportResult, len(playlists))

	var wg sync.WaitGroup
	for i := 0; i < opts.NumWorkers; i++ {
		wg.Add(1)
		go exportWorker(&wg, jobs, results, opts)
	}

	go func() {
		defer close(jobs)
		for i, p := range playlists {
			if ctx.Err() != nil {
				return
			}
			select {
			case <-ctx.Done():
				return
			case jobs <- exportJob{playlist: p, path: filepath.Join(opts.OutputDir, files[i])}:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	completed := 0
	for res := range results {
		completed++
		result.Results = append(result.Results, res)

		if res.Success {
			result.SuccessfulExports++
			sendProgress(prog, exportCompletedUpdate(completed, len(playlists), res.PlaylistName, res.File))
		} else {
			result.FailedExports++
			sendProgress(prog, exportFailedUpdate(completed, len(playlists), res.PlaylistName, res.Error))
		}
	}

	sort.Slice(result.Results, func(i, j int) bool {
		return result.Results[i].PlaylistName < result.Results[j].PlaylistName
	})

	manifestPath := filepath.Join(opts.OutputDir, manifestName)
	if err := writeManifest(result, manifestPath); err != nil {
		return result, fmt.Errorf("export completed but failed to write manifest: %w", err)
	}
	result.ManifestPath = manifestPath
	sendProgress(prog, manifestUpdate(manifestPath))

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("export interrupted: %w", err)
	}
	return result, nil
}

type exportJob struct {
	playlist models.Playlist
	path     string
}

// uniqueFileNames maps each playlist to a file name no other playlist in the run shares.
//
// Names that sanitize to the same file get "-2", "-3", ... suffixes in playlist order. Comparison ignores
// case so the names also stay distinct on case-insensitive filesystems.
func uniqueFileNames(playlists []models.Playlist, ext string) []string {
	names := make([]string, len(playlists))
	taken := make(map[string]bool, len(playlists))
	for i, p := range playlists {
		base := formatter.FileName(p.Name)
		name := base + ext
		for n := 2; taken[strings.ToLower(name)]; n++ {
			name = fmt.Sprintf("%s-%d%s", base, n, ext)
		}
		taken[strings.ToLower(name)] = true
		names[i] = name
	}
	return names
}

// exportWorker is a worker goroutine that exports playlists from the jobs channel.
func exportWorker(wg *sync.WaitGroup, jobs <-chan exportJob, results chan<- PlaylistExportResult, opts BulkExportOpts) {
	defer wg.Done()

	for job := range jobs {
		results <- exportSinglePlaylist(job, opts)
	}
}

// exportSinglePlaylist writes one playlist to the path assigned by the feeder.
func exportSinglePlaylist(job exportJob, opts BulkExportOpts) PlaylistExportResult {
	p := job.playlist
	result := PlaylistExportResult{PlaylistName: p.Name, Songs: len(p.Songs)}

	file, err := formatter.WriteExport(p, opts.Format, job.path)
	if err != nil {
		result.Error = fmt.Errorf("%s export failed: %w", opts.Format, err)
		result.ErrorMessage = result.Error.Error()
		return result
	}

	result.File = file
	result.Success = true
	return result
}

func writeManifest(result *BulkExportResult, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
