// submodule cmd contains command definitions
package main

import (
	"fmt"
	"strings"

	"github.com/desertthunder/songbreeze/internal/formatter"
	"github.com/urfave/cli/v3"
)

// rootFlags are declared on the root command and inherited by every subcommand.
func rootFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to configuration file (default ~/.songbreeze/config.toml)",
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logging",
		},
		&cli.BoolFlag{
			Name:    "yes",
			Aliases: []string{"y"},
			Usage:   "Create missing files without asking",
		},
	}
}

func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output raw JSON",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Pretty-print output",
		},
	}
}

// initCommand creates the library directory, config file and source record
func initCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "init",
		Usage:  "Create the library directory, config file and source list",
		Action: r.Init,
	}
}

// tuiCommand launches the terminal interface
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "tui",
		Usage:  "Browse playlists and edit sources in the terminal interface",
		Action: r.TUI,
	}
}

// sourcesCommand handles source directory operations
func sourcesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "sources",
		Aliases: []string{"src"},
		Usage:   "Manage source directories",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List source directories",
				Flags:  outputFlags(),
				Action: r.SourcesList,
			},
			{
				Name:  "add",
				Usage: "Add a source directory",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "path"},
				},
				Action: r.SourcesAdd,
			},
			{
				Name:    "rm",
				Aliases: []string{"remove"},
				Usage:   "Remove the source directory at an index",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "index"},
				},
				Action: r.SourcesRemove,
			},
		},
	}
}

// playlistsCommand handles playlist operations
func playlistsCommand(r *Runner) *cli.Command {
	formats := make([]string, len(formatter.Formats))
	for i, f := range formatter.Formats {
		formats[i] = string(f)
	}

	return &cli.Command{
		Name:    "playlists",
		Aliases: []string{"pl"},
		Usage:   "Inspect and export playlists",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List playlists and their song counts",
				Flags:  outputFlags(),
				Action: r.PlaylistsList,
			},
			{
				Name:  "export",
				Usage: "Export a playlist",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "name",
						Aliases:  []string{"n"},
						Usage:    "Playlist name",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   fmt.Sprintf("Export format (%s)", strings.Join(formats, ", ")),
						Value:   string(formatter.FormatText),
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (default stdout)",
					},
				},
				Action: r.PlaylistsExport,
			},
			{
				Name:  "export-all",
				Usage: "Export every playlist into a directory",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   fmt.Sprintf("Export format (%s)", strings.Join(formats, ", ")),
						Value:   string(formatter.FormatText),
					},
					&cli.StringFlag{
						Name:    "dir",
						Aliases: []string{"d"},
						Usage:   "Output directory (default songbreeze_export_{epoch})",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Concurrent workers",
						Value: 4,
					},
				},
				Action: r.PlaylistsExportAll,
			},
		},
	}
}
