package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/desertthunder/songbreeze/internal/shared"
	"github.com/desertthunder/songbreeze/internal/store"
	"github.com/urfave/cli/v3"
)

// Init creates whatever of the library directory, config file and source record is missing.
func (r *Runner) Init(ctx context.Context, cmd *cli.Command) error {
	if err := r.initialize(cmd.Bool("yes")); err != nil {
		return err
	}
	r.writePlain("✓ songbreeze is ready\n")
	return nil
}

// initialize asks before creating each missing item. Declining any of them returns [shared.ErrInitDeclined]
// after printing "please init it first".
func (r *Runner) initialize(assumeYes bool) error {
	configPath, err := r.resolveConfigPath()
	if err != nil {
		return err
	}

	if err := r.ensure(filepath.Dir(configPath), "directory", assumeYes, func(path string) error {
		return os.MkdirAll(path, 0755)
	}); err != nil {
		return err
	}

	if err := r.ensure(configPath, "config file", assumeYes, shared.CreateConfigFile); err != nil {
		return err
	}

	config, err := r.loadConfig()
	if err != nil {
		return err
	}

	dir, err := config.Dir()
	if err != nil {
		return err
	}
	if err := r.ensure(dir, "library directory", assumeYes, func(path string) error {
		return os.MkdirAll(path, 0755)
	}); err != nil {
		return err
	}

	if config.Store.Driver != shared.DriverJSON {
		return nil
	}

	sourcesPath, err := config.SourcesPath()
	if err != nil {
		return err
	}
	return r.ensure(sourcesPath, "source list", assumeYes, store.InitJSONRecord)
}

// ensure runs create for path when nothing exists there, after confirmation.
func (r *Runner) ensure(path, what string, assumeYes bool, create func(string) error) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to check %s: %w", what, err)
	}

	if !assumeYes {
		ok, err := r.confirm(fmt.Sprintf("%s %s does not exist, create it? [y/n] ", what, path))
		if err != nil {
			return err
		}
		if !ok {
			r.writePlain("please init it first\n")
			return fmt.Errorf("%w: %s", shared.ErrInitDeclined, what)
		}
	}

	if err := create(path); err != nil {
		return fmt.Errorf("failed to create %s: %w", what, err)
	}
	r.logger.Info("created", "what", what, "path", path)
	return nil
}

// confirm prints question and reads one answer line. Only "y" and "yes" accept; end of input declines.
func (r *Runner) confirm(question string) (bool, error) {
	if err := r.writePlain("%s", question); err != nil {
		return false, err
	}

	line, err := r.input.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
