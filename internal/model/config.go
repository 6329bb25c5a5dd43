package model

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// StorageConfig controls where progress data is kept.
type StorageConfig struct {
	// Path is the SQLite database file. ":memory:" keeps data in RAM.
	Path string `mapstructure:"path" yaml:"path"`
}

// LogConfig controls the slog output of the application.
type LogConfig struct {
	// File receives log output. The TUI owns stdout, so an empty value
	// discards logs while the TUI runs.
	File  string `mapstructure:"file" yaml:"file"`
	Level string `mapstructure:"level" yaml:"level"`
}

// DisplayConfig holds UI/rendering preferences.
type DisplayConfig struct {
	// VisibleDays is how many day columns the grid shows at once.
	VisibleDays int `mapstructure:"visible_days" yaml:"visible_days"`
	// CellWidth is the rendered width of a day cell.
	CellWidth int `mapstructure:"cell_width" yaml:"cell_width"`
}

// TrackerConfig holds tracker behavior settings.
type TrackerConfig struct {
	// StartMonth is the month selected at startup; 0 selects the current month.
	StartMonth int `mapstructure:"start_month" yaml:"start_month"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Storage StorageConfig `mapstructure:"storage" yaml:"storage"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
	Display DisplayConfig `mapstructure:"display" yaml:"display"`
	Tracker TrackerConfig `mapstructure:"tracker" yaml:"tracker"`
}

// configDir returns ~/.config/routinetracker, or "." when the home
// directory cannot be resolved.
func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "routinetracker")
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/routinetracker/config.yaml.
func DefaultConfigPath() string {
	return filepath.Join(configDir(), "config.yaml")
}

// defaultAppConfig returns a sensible default configuration.
func defaultAppConfig() *AppConfig {
	return &AppConfig{
		Storage: StorageConfig{
			Path: filepath.Join(configDir(), "progress.db"),
		},
		Log: LogConfig{
			File:  filepath.Join(configDir(), "routinetracker.log"),
			Level: "info",
		},
		Display: DisplayConfig{
			VisibleDays: 7,
			CellWidth:   10,
		},
		Tracker: TrackerConfig{
			StartMonth: 0,
		},
	}
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// Values can be overridden by ROUTINE_* environment variables, e.g.
// ROUTINE_STORAGE_PATH. If the file does not exist, defaults are used.
func LoadConfig(path string) (*AppConfig, error) {
	defaults := defaultAppConfig()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("ROUTINE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set defaults so missing keys resolve to sensible values. Registering
	// every key also lets AutomaticEnv see it during Unmarshal.
	v.SetDefault("storage.path", defaults.Storage.Path)
	v.SetDefault("log.file", defaults.Log.File)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("display.visible_days", defaults.Display.VisibleDays)
	v.SetDefault("display.cell_width", defaults.Display.CellWidth)
	v.SetDefault("tracker.start_month", defaults.Tracker.StartMonth)

	if err := v.ReadInConfig(); err != nil {
		_, isPathErr := err.(*os.PathError)
		_, isNotFound := err.(viper.ConfigFileNotFoundError)
		if !isPathErr && !isNotFound {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := &AppConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Display.VisibleDays <= 0 {
		cfg.Display.VisibleDays = defaults.Display.VisibleDays
	}
	if cfg.Display.CellWidth <= 0 {
		cfg.Display.CellWidth = defaults.Display.CellWidth
	}
	if cfg.Tracker.StartMonth != 0 && !ValidMonth(cfg.Tracker.StartMonth) {
		return nil, fmt.Errorf("tracker.start_month must be 0 or 1-12, got %d", cfg.Tracker.StartMonth)
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("storage", cfg.Storage)
	v.Set("log", cfg.Log)
	v.Set("display", cfg.Display)
	v.Set("tracker", cfg.Tracker)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
