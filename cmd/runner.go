package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/songbreeze/internal/library"
	"github.com/desertthunder/songbreeze/internal/repositories"
	"github.com/desertthunder/songbreeze/internal/shared"
	"github.com/desertthunder/songbreeze/internal/store"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	configPath string
	logger     *log.Logger
	output     io.Writer
	input      *bufio.Reader
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	ConfigPath string
	Logger     *log.Logger
	Output     io.Writer
	Input      io.Reader
}

// NewRunner creates a new Runner with the provided configuration
//
// A nil Config is loaded from ConfigPath on first use.
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Input == nil {
		opts.Input = os.Stdin
	}

	return &Runner{
		config:     opts.Config,
		configPath: opts.ConfigPath,
		logger:     opts.Logger,
		output:     opts.Output,
		input:      bufio.NewReader(opts.Input),
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		initCommand, tuiCommand, sourcesCommand, playlistsCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// before applies the root flags shared by every command.
func (r *Runner) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if path := cmd.String("config"); path != "" {
		r.configPath = path
	}
	if cmd.Bool("debug") {
		shared.SetLogLevel(r.logger, log.DebugLevel)
	}
	return ctx, nil
}

// SetLogger replaces the logger, e.g. with a file logger while the TUI owns the terminal.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

// resolveConfigPath returns the --config path, or the per-user default.
func (r *Runner) resolveConfigPath() (string, error) {
	if r.configPath != "" {
		return shared.ExpandHome(r.configPath)
	}
	return shared.DefaultConfigPath()
}

// loadConfig returns the runner's configuration, reading it from disk once.
func (r *Runner) loadConfig() (*shared.Config, error) {
	if r.config != nil {
		return r.config, nil
	}

	path, err := r.resolveConfigPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s (run 'songbreeze init')", shared.ErrMissingConfig, path)
	}

	config, err := shared.LoadConfig(path)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("loaded config", "path", path, "driver", config.Store.Driver)
	r.config = config
	return config, nil
}

// openSourceStore opens and loads the source list on the configured backend.
//
// With the SQLite driver an existing JSON record seeds an empty table. The returned closer releases the backend.
func (r *Runner) openSourceStore(config *shared.Config) (*store.ListStore, func() error, error) {
	jsonPath, err := config.SourcesPath()
	if err != nil {
		return nil, nil, err
	}

	var backend store.Backend
	closer := func() error { return nil }

	switch config.Store.Driver {
	case shared.DriverSQLite:
		db, err := shared.OpenDatabase(config)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open database: %w", err)
		}
		closer = db.Close

		dbPath, _ := config.DatabasePath()
		repo := repositories.NewSourceRepository(db, dbPath)
		if err := r.importSources(repo, jsonPath); err != nil {
			db.Close()
			return nil, nil, err
		}
		backend = repo
	default:
		backend = store.NewJSONBackend(jsonPath)
	}

	s := store.New(backend, r.logger)
	if _, err := s.Load(); err != nil {
		closer()
		return nil, nil, err
	}
	return s, closer, nil
}

func (r *Runner) importSources(repo *repositories.SourceRepository, jsonPath string) error {
	if _, err := os.Stat(jsonPath); err != nil {
		return nil
	}

	items, err := store.NewJSONBackend(jsonPath).Read()
	if err != nil {
		r.logger.Warn("skipping import of unreadable source record", "path", jsonPath, "error", err)
		return nil
	}

	imported, err := repo.Import(items)
	if err != nil {
		return fmt.Errorf("failed to import sources: %w", err)
	}
	if imported {
		r.logger.Info("imported sources into database", "from", jsonPath, "count", len(items))
	}
	return nil
}

// loadLibrary reads the playlist record. A corrupt record is replaced by the default library and reported
// through the returned warning.
func (r *Runner) loadLibrary(config *shared.Config) (*library.Library, string, error) {
	path, err := config.PlaylistsPath()
	if err != nil {
		return nil, "", err
	}

	lib, err := library.Load(path)
	switch {
	case errors.Is(err, shared.ErrStoreCorrupt):
		r.logger.Warn("playlist record is corrupt, using default playlist", "path", path, "error", err)
		return library.Default(), fmt.Sprintf("playlist record %s is unreadable, showing the Default playlist", path), nil
	case err != nil:
		return nil, "", err
	}

	if lib.Dropped > 0 {
		r.logger.Warn("dropped missing songs", "path", path, "count", lib.Dropped)
	}
	return lib, "", nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
