package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. BOOKLIKE_TRANSITION_MS
const EnvPrefix = "BOOKLIKE"

// Config represents the application configuration
type Config struct {
	Version       int     `mapstructure:"version"`
	Book          string  `mapstructure:"book"`       // manifest path, empty for the demo book
	StateFile     string  `mapstructure:"state_file"` // persisted reading position
	LogFile       string  `mapstructure:"log_file"`
	LogLevel      string  `mapstructure:"log_level"`
	TransitionMs  int     `mapstructure:"transition_ms"`
	NoTransitions bool    `mapstructure:"no_transitions"`
	LongPressMs   int     `mapstructure:"long_press_ms"`
	PulseMs       int     `mapstructure:"pulse_ms"`
	FrameMs       int     `mapstructure:"frame_ms"`
	ScrubMargin   float64 `mapstructure:"scrub_margin"`
	Page          int     `mapstructure:"page"`  // initial pair, -1 to resume
	Theme         string  `mapstructure:"theme"` // initial theme, empty to resume
}

// Transition is the length of one page rotation
func (c *Config) Transition() time.Duration {
	return time.Duration(c.TransitionMs) * time.Millisecond
}

// LongPress is how long a pager must be held to reveal the scrubber
func (c *Config) LongPress() time.Duration {
	return time.Duration(c.LongPressMs) * time.Millisecond
}

// Pulse is how long the back pager pulses after opening at the first pair
func (c *Config) Pulse() time.Duration {
	return time.Duration(c.PulseMs) * time.Millisecond
}

// FrameInterval is the animation frame period
func (c *Config) FrameInterval() time.Duration {
	return time.Duration(c.FrameMs) * time.Millisecond
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
	flags    *pflag.FlagSet
}

// RegisterFlags adds the command line flags that override configuration
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP("config", "c", "", "path to config file")
	fs.IntP("page", "p", -1, "open at this page pair")
	fs.StringP("theme", "t", "", `color theme, e.g. "selenized dark"`)
	fs.Bool("no-transitions", false, "turn pages without animation")
	fs.String("log-level", "", "log level (debug, info, warn, error)")
}

// NewConfigService creates a config service reading the default config
// file, or the one named by a --config flag in flags. flags may be nil.
func NewConfigService(flags *pflag.FlagSet) ConfigService {
	path := DefaultPath()
	if flags != nil {
		if f := flags.Lookup("config"); f != nil && f.Value.String() != "" {
			path = f.Value.String()
		}
	}
	return &configService{filePath: path, flags: flags}
}

// DefaultPath returns the config file location under the user config dir
func DefaultPath() string {
	return filepath.Join(configDir(), "config.toml")
}

func configDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		dir, err = os.UserHomeDir()
		if err != nil {
			dir = "."
		}
		dir = filepath.Join(dir, ".config")
	}
	return filepath.Join(dir, "booklike")
}

// Path returns the file Load reads
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, environment and flags.
// A missing file yields the defaults.
func (cs *configService) Load() (*Config, error) {
	return cs.load(cs.filePath, false)
}

// LoadFromPath loads configuration from a specific path, which must exist
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	return cs.load(path, true)
}

func (cs *configService) load(path string, required bool) (*Config, error) {
	v, err := cs.newViper()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if required || !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.normalize()
	return &cfg, nil
}

func (cs *configService) newViper() (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cs.flags != nil {
		for key, flag := range map[string]string{
			"page":           "page",
			"theme":          "theme",
			"no_transitions": "no-transitions",
			"log_level":      "log-level",
		} {
			f := cs.flags.Lookup(flag)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", flag, err)
			}
		}
	}
	return v, nil
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("version", config.Version)
	v.Set("book", config.Book)
	v.Set("state_file", config.StateFile)
	v.Set("log_file", config.LogFile)
	v.Set("log_level", config.LogLevel)
	v.Set("transition_ms", config.TransitionMs)
	v.Set("no_transitions", config.NoTransitions)
	v.Set("long_press_ms", config.LongPressMs)
	v.Set("pulse_ms", config.PulseMs)
	v.Set("frame_ms", config.FrameMs)
	v.Set("scrub_margin", config.ScrubMargin)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	dir := configDir()
	return &Config{
		Version:      1,
		StateFile:    filepath.Join(dir, "state.toml"),
		LogFile:      filepath.Join(dir, "booklike.log"),
		LogLevel:     "info",
		TransitionMs: 300,
		LongPressMs:  1000,
		PulseMs:      7000,
		FrameMs:      16,
		ScrubMargin:  1,
		Page:         -1,
	}
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("version", d.Version)
	v.SetDefault("book", d.Book)
	v.SetDefault("state_file", d.StateFile)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("transition_ms", d.TransitionMs)
	v.SetDefault("no_transitions", d.NoTransitions)
	v.SetDefault("long_press_ms", d.LongPressMs)
	v.SetDefault("pulse_ms", d.PulseMs)
	v.SetDefault("frame_ms", d.FrameMs)
	v.SetDefault("scrub_margin", d.ScrubMargin)
	v.SetDefault("page", d.Page)
	v.SetDefault("theme", d.Theme)
}

// normalize replaces unusable timings with the defaults
func (c *Config) normalize() {
	d := DefaultConfig()
	if c.TransitionMs <= 0 {
		c.TransitionMs = d.TransitionMs
	}
	if c.LongPressMs <= 0 {
		c.LongPressMs = d.LongPressMs
	}
	if c.PulseMs < 0 {
		c.PulseMs = d.PulseMs
	}
	if c.FrameMs <= 0 {
		c.FrameMs = d.FrameMs
	}
	if c.ScrubMargin < 0 {
		c.ScrubMargin = 0
	}
	if c.Page < -1 {
		c.Page = -1
	}
}
