package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/desertthunder/songbreeze/internal/models"
	"github.com/desertthunder/songbreeze/internal/shared"
	"github.com/urfave/cli/v3"
)

// SourcesList prints the persisted source directories with their indices.
func (r *Runner) SourcesList(ctx context.Context, cmd *cli.Command) error {
	config, err := r.loadConfig()
	if err != nil {
		return err
	}

	s, closeStore, err := r.openSourceStore(config)
	if err != nil {
		return err
	}
	defer closeStore()

	if cmd.Bool("json") {
		return r.writeJSON(models.SourceRecord{Sources: s.Items()}, cmd.Bool("pretty"))
	}

	r.writePlainHeader(fmt.Sprintf("Sources (%s)", s.Location()))
	if s.Len() == 0 {
		return r.writePlain("no sources, add one with 'songbreeze sources add <path>'\n")
	}
	for i, src := range s.Items() {
		r.writePlain("%3d  %s\n", i, src)
	}
	return nil
}

// SourcesAdd appends a source directory.
func (r *Runner) SourcesAdd(ctx context.Context, cmd *cli.Command) error {
	path := cmd.StringArg("path")
	if path == "" {
		return fmt.Errorf("%w: path", shared.ErrMissingArgument)
	}

	config, err := r.loadConfig()
	if err != nil {
		return err
	}

	s, closeStore, err := r.openSourceStore(config)
	if err != nil {
		return err
	}
	defer closeStore()

	if _, err := s.Append(path); err != nil {
		return err
	}
	r.logger.Info("added source", "path", path, "count", s.Len())
	return r.writePlain("✓ added %s\n", path)
}

// SourcesRemove deletes the source at the given index.
func (r *Runner) SourcesRemove(ctx context.Context, cmd *cli.Command) error {
	arg := cmd.StringArg("index")
	if arg == "" {
		return fmt.Errorf("%w: index", shared.ErrMissingArgument)
	}
	index, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("%w: index %q is not a number", shared.ErrInvalidArgument, arg)
	}

	config, err := r.loadConfig()
	if err != nil {
		return err
	}

	s, closeStore, err := r.openSourceStore(config)
	if err != nil {
		return err
	}
	defer closeStore()

	path, ok := s.At(index)
	if !ok {
		return fmt.Errorf("%w: index %d out of range [0, %d)", shared.ErrInvalidArgument, index, s.Len())
	}
	if _, err := s.Remove(index); err != nil {
		return err
	}
	r.logger.Info("removed source", "path", path, "count", s.Len())
	return r.writePlain("✓ removed %s\n", path)
}
