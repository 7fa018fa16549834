package shared

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

const (
	// DriverJSON stores the source list as a JSON record.
	DriverJSON = "json"
	// DriverSQLite stores the source list in a SQLite table.
	DriverSQLite = "sqlite"

	defaultTick = 100 * time.Millisecond
)

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Library  LibraryConfig  `toml:"library"`
	Store    StoreConfig    `toml:"store"`
	Database DatabaseConfig `toml:"database"`
	UI       UIConfig       `toml:"ui"`
	Log      LogConfig      `toml:"log"`
}

// LibraryConfig locates the persisted records.
type LibraryConfig struct {
	Dir           string `toml:"dir"`
	SourcesFile   string `toml:"sources_file"`
	PlaylistsFile string `toml:"playlists_file"`
}

// StoreConfig selects the source list backend.
type StoreConfig struct {
	Driver string `toml:"driver"`
}

// DatabaseConfig contains database connection settings.
type DatabaseConfig struct {
	Path         string `toml:"path"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// UIConfig contains terminal interface settings.
type UIConfig struct {
	TickMS int `toml:"tick_ms"`
}

// LogConfig contains log file settings.
type LogConfig struct {
	Path  string `toml:"path"`
	Level string `toml:"level"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %v", ErrInvalidConfig, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// DefaultConfigPath returns the per-user config file location.
func DefaultConfigPath() (string, error) {
	dir, err := DefaultConfig().Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks the values that cannot be defaulted.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverJSON, DriverSQLite:
	default:
		return fmt.Errorf("%w: unknown store driver %q", ErrInvalidConfig, c.Store.Driver)
	}

	type field struct{ key, value string }
	required := []field{
		{"library.dir", c.Library.Dir},
		{"library.sources_file", c.Library.SourcesFile},
		{"library.playlists_file", c.Library.PlaylistsFile},
		{"log.path", c.Log.Path},
	}
	if c.Store.Driver == DriverSQLite {
		required = append(required, field{"database.path", c.Database.Path})
	}

	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidConfig, r.key)
		}
	}
	return nil
}

// Dir returns the library directory with "~" expanded.
func (c *Config) Dir() (string, error) {
	return ExpandHome(c.Library.Dir)
}

// SourcesPath returns the location of the source list record.
func (c *Config) SourcesPath() (string, error) {
	return c.resolve(c.Library.SourcesFile)
}

// PlaylistsPath returns the location of the playlist record.
func (c *Config) PlaylistsPath() (string, error) {
	return c.resolve(c.Library.PlaylistsFile)
}

// DatabasePath returns the SQLite database location.
func (c *Config) DatabasePath() (string, error) {
	return c.resolve(c.Database.Path)
}

// LogPath returns the TUI log file location.
func (c *Config) LogPath() (string, error) {
	return c.resolve(c.Log.Path)
}

// TickInterval returns the idle redraw interval.
func (c *Config) TickInterval() time.Duration {
	if c.UI.TickMS <= 0 {
		return defaultTick
	}
	return time.Duration(c.UI.TickMS) * time.Millisecond
}

// resolve joins relative paths onto the library directory.
func (c *Config) resolve(name string) (string, error) {
	name, err := ExpandHome(name)
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(name) {
		return name, nil
	}

	dir, err := c.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}
