package main

import (
	"context"
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/songbreeze/internal/shared"
	"github.com/desertthunder/songbreeze/internal/state"
	"github.com/desertthunder/songbreeze/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive terminal UI, initializing missing files first.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	if err := r.initialize(cmd.Bool("yes")); err != nil {
		return err
	}

	config, err := r.loadConfig()
	if err != nil {
		return err
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	logPath, err := config.LogPath()
	if err != nil {
		return err
	}
	fileLogger, err := shared.NewFileLogger(logPath)
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	shared.SetLogLevel(fileLogger, shared.ParseLogLevel(config.Log.Level))
	r.SetLogger(shared.WithLogger(fileLogger, "session", shared.GenerateID()))

	sources, closeStore, err := r.openSourceStore(config)
	if err != nil {
		return err
	}
	defer closeStore()

	lib, warning, err := r.loadLibrary(config)
	if err != nil {
		return err
	}

	keys := state.NewKeyMap()
	app := state.NewApp(keys, r.logger,
		state.NewHomeController(state.NewPlaylistBrowser(lib.Playlists), keys),
		state.NewSourcesController(sources, keys),
		state.NewSettingsController(r.settings(config, sources.Location())),
	)

	model := ui.NewModel(app, r.logger,
		ui.WithTick(config.TickInterval()),
		ui.WithStatus(ui.LevelError, warning),
		ui.WithStatus(ui.LevelWarn, droppedStatus(lib.Dropped)),
	)
	r.logger.Info("starting TUI", "sources", sources.Len(), "playlists", len(lib.Playlists))

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	if err := model.Err(); err != nil {
		return err
	}
	r.logger.Info("TUI closed")
	return nil
}

// droppedStatus reports songs left out of the library because their files are gone.
func droppedStatus(dropped int) string {
	if dropped == 0 {
		return ""
	}
	return fmt.Sprintf("%d songs skipped because their files are missing", dropped)
}

// settings lists the effective configuration for the Settings tab.
func (r *Runner) settings(config *shared.Config, sourcesLocation string) []state.Setting {
	dir, _ := config.Dir()
	playlists, _ := config.PlaylistsPath()
	logPath, _ := config.LogPath()

	return []state.Setting{
		{Name: "config", Value: r.configPathOrDefault()},
		{Name: "library.dir", Value: dir},
		{Name: "store.driver", Value: config.Store.Driver},
		{Name: "sources", Value: sourcesLocation},
		{Name: "playlists", Value: playlists},
		{Name: "ui.tick_ms", Value: strconv.FormatInt(config.TickInterval().Milliseconds(), 10)},
		{Name: "log.path", Value: logPath},
		{Name: "log.level", Value: shared.ParseLogLevel(config.Log.Level).String()},
	}
}

func (r *Runner) configPathOrDefault() string {
	path, err := r.resolveConfigPath()
	if err != nil {
		return "unknown"
	}
	return path
}
