package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/songbreeze/internal/formatter"
	"github.com/desertthunder/songbreeze/internal/shared"
	"github.com/desertthunder/songbreeze/internal/tasks"
	"github.com/urfave/cli/v3"
)

type playlistSummary struct {
	Name  string `json:"name"`
	Songs int    `json:"songs"`
}

// PlaylistsList prints every playlist with its song count.
func (r *Runner) PlaylistsList(ctx context.Context, cmd *cli.Command) error {
	config, err := r.loadConfig()
	if err != nil {
		return err
	}

	lib, warning, err := r.loadLibrary(config)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		summaries := make([]playlistSummary, len(lib.Playlists))
		for i, p := range lib.Playlists {
			summaries[i] = playlistSummary{Name: p.Name, Songs: len(p.Songs)}
		}
		return r.writeJSON(summaries, cmd.Bool("pretty"))
	}

	if warning != "" {
		r.writePlain("warning: %s\n", warning)
	}
	r.writePlainHeader(fmt.Sprintf("Playlists (%d songs)", lib.SongCount()))
	for _, p := range lib.Playlists {
		r.writePlain("%-24s %d songs\n", p.Name, len(p.Songs))
	}
	if lib.Dropped > 0 {
		r.writePlain("\n%d songs skipped because their files are missing\n", lib.Dropped)
	}
	return nil
}

// PlaylistsExport writes one playlist in the requested format, to --output or stdout.
func (r *Runner) PlaylistsExport(ctx context.Context, cmd *cli.Command) error {
	name := cmd.String("name")
	if name == "" {
		return fmt.Errorf("%w: --name", shared.ErrMissingArgument)
	}

	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	config, err := r.loadConfig()
	if err != nil {
		return err
	}

	lib, _, err := r.loadLibrary(config)
	if err != nil {
		return err
	}

	playlist, err := lib.Find(name)
	if err != nil {
		return err
	}

	if output := cmd.String("output"); output != "" {
		path, err := formatter.WriteExport(*playlist, format, output)
		if err != nil {
			return err
		}
		r.logger.Info("exported playlist", "name", name, "format", format, "path", path)
		return r.writePlain("✓ exported %s to %s\n", name, path)
	}

	data, err := formatter.Export(*playlist, format)
	if err != nil {
		return err
	}
	if _, err := r.output.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// PlaylistsExportAll writes every playlist into one directory, with a manifest of the run.
func (r *Runner) PlaylistsExportAll(ctx context.Context, cmd *cli.Command) error {
	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	config, err := r.loadConfig()
	if err != nil {
		return err
	}

	lib, _, err := r.loadLibrary(config)
	if err != nil {
		return err
	}

	progressCh := make(chan tasks.ProgressUpdate, 50)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progressCh {
			switch update.Phase {
			case tasks.ExportPlaylist:
				r.writePlain("   %s\n", update.Message)
			case tasks.WriteManifest:
				r.writePlain("\n📝 %s\n", update.Message)
			}
		}
	}()

	result, err := tasks.BulkExport(ctx, progressCh, lib.Playlists, tasks.BulkExportOpts{
		Format:     format,
		OutputDir:  cmd.String("dir"),
		NumWorkers: int(cmd.Int("workers")),
	})
	close(progressCh)
	<-done

	if err != nil {
		return err
	}

	r.writePlainHeader("Export Complete!")
	r.writePlain("Directory: %s\n", result.OutputDirectory)
	r.writePlain("Exported: %d/%d playlists\n", result.SuccessfulExports, result.TotalPlaylists)

	if result.FailedExports > 0 {
		r.writePlain("\nFailed to export %d playlists:\n", result.FailedExports)
		for _, res := range result.Results {
			if !res.Success {
				r.writePlain("  - %s: %s\n", res.PlaylistName, res.ErrorMessage)
			}
		}
	}
	return nil
}
