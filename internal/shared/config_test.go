package shared

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Library.Dir != "~/.songbreeze" {
			t.Errorf("expected library dir ~/.songbreeze, got %s", config.Library.Dir)
		}

		if config.Library.SourcesFile != "source.json" {
			t.Errorf("expected sources file source.json, got %s", config.Library.SourcesFile)
		}

		if config.Store.Driver != DriverJSON {
			t.Errorf("expected store driver json, got %s", config.Store.Driver)
		}

		if config.TickInterval() != 100*time.Millisecond {
			t.Errorf("expected tick interval 100ms, got %v", config.TickInterval())
		}

		if err := config.Validate(); err != nil {
			t.Errorf("default config should validate: %v", err)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Database.Path != defaultConfig.Database.Path {
			t.Errorf("created config database path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[library]
dir = "` + tmpDir + `"
sources_file = "sources.json"

[store]
driver = "sqlite"

[database]
path = "/custom/path.db"

[ui]
tick_ms = 250
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Store.Driver != DriverSQLite {
			t.Errorf("expected driver sqlite, got %s", config.Store.Driver)
		}

		if config.TickInterval() != 250*time.Millisecond {
			t.Errorf("expected tick interval 250ms, got %v", config.TickInterval())
		}

		if config.Library.PlaylistsFile != "playlist.json" {
			t.Errorf("expected unset keys to keep defaults, got playlists file %q", config.Library.PlaylistsFile)
		}

		sources, err := config.SourcesPath()
		if err != nil {
			t.Fatalf("SourcesPath() error = %v", err)
		}
		if sources != filepath.Join(tmpDir, "sources.json") {
			t.Errorf("expected sources path in library dir, got %s", sources)
		}

		dbPath, err := config.DatabasePath()
		if err != nil {
			t.Fatalf("DatabasePath() error = %v", err)
		}
		if dbPath != "/custom/path.db" {
			t.Errorf("expected absolute database path untouched, got %s", dbPath)
		}
	})

	t.Run("LoadConfig rejects unknown driver", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(configPath, []byte("[store]\ndriver = \"redis\"\n"), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("LoadConfig rejects empty paths", func(t *testing.T) {
		tests := []struct {
			name    string
			content string
		}{
			{"playlists file", "[library]\nplaylists_file = \"\"\n"},
			{"sources file", "[library]\nsources_file = \" \"\n"},
			{"library dir", "[library]\ndir = \"\"\n"},
			{"log path", "[log]\npath = \"\"\n"},
			{"database path with sqlite", "[store]\ndriver = \"sqlite\"\n[database]\npath = \"\"\n"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				configPath := filepath.Join(t.TempDir(), "config.toml")
				if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
					t.Fatalf("failed to write test config: %v", err)
				}

				if _, err := LoadConfig(configPath); !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("expected ErrInvalidConfig, got %v", err)
				}
			})
		}
	})

	t.Run("Validate ignores database path with json driver", func(t *testing.T) {
		config := DefaultConfig()
		config.Database.Path = ""
		if err := config.Validate(); err != nil {
			t.Errorf("expected valid config, got %v", err)
		}
	})

	t.Run("LoadConfig rejects malformed TOML", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(configPath, []byte("[store\ndriver = "), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("LoadConfig missing file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
			t.Error("expected error for missing config file")
		}
	})
}
