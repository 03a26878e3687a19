// Package config holds the process-wide widget settings.
//
// Settings are initialized once, typically at program start from a YAML or
// TOML file, and injected into widgets at construction. Widgets never read
// the global after they are built.
package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/go-futura/futura/pkg/errors"
)

// Duration is a time.Duration that reads and writes Go duration strings
// such as "500ms" in both YAML and TOML.
type Duration time.Duration

// UnmarshalText parses a Go duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Settings configures caret, click, batching and entry behaviour.
type Settings struct {
	BlinkPeriod     Duration `yaml:"blink_period" toml:"blink_period"`
	BlinkEnabled    bool     `yaml:"blink_enabled" toml:"blink_enabled"`
	ClickWindow     Duration `yaml:"click_window" toml:"click_window"`
	ClickSlop       float64  `yaml:"click_slop" toml:"click_slop"`
	LabelUpdateRate int      `yaml:"label_update_rate" toml:"label_update_rate"`
	EntryUpdateRate int      `yaml:"entry_update_rate" toml:"entry_update_rate"`
	HistoryEnabled  bool     `yaml:"history_enabled" toml:"history_enabled"`
	HistoryLimit    int      `yaml:"history_limit" toml:"history_limit"`
	TitleCase       bool     `yaml:"title_case" toml:"title_case"`
	MaxLength       int      `yaml:"max_length" toml:"max_length"`
	// WordModifier is the modifier that turns character motions into word
	// motions: "ctrl" or "alt".
	WordModifier string `yaml:"word_modifier" toml:"word_modifier"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		BlinkPeriod:     Duration(500 * time.Millisecond),
		BlinkEnabled:    true,
		ClickWindow:     Duration(500 * time.Millisecond),
		ClickSlop:       4,
		LabelUpdateRate: 2,
		EntryUpdateRate: 1,
		HistoryEnabled:  true,
		HistoryLimit:    64,
		WordModifier:    "ctrl",
	}
}

// Validate reports the first invalid field.
func (s Settings) Validate() error {
	switch {
	case s.BlinkPeriod < 0:
		return fmt.Errorf("blink_period must not be negative, got %s", s.BlinkPeriod.Std())
	case s.ClickWindow < 0:
		return fmt.Errorf("click_window must not be negative, got %s", s.ClickWindow.Std())
	case s.ClickSlop < 0:
		return fmt.Errorf("click_slop must not be negative, got %v", s.ClickSlop)
	case s.LabelUpdateRate < 0 || s.EntryUpdateRate < 0:
		return fmt.Errorf("update rates must not be negative")
	case s.HistoryLimit < 0:
		return fmt.Errorf("history_limit must not be negative, got %d", s.HistoryLimit)
	case s.MaxLength < 0:
		return fmt.Errorf("max_length must not be negative, got %d", s.MaxLength)
	}
	switch s.WordModifier {
	case "ctrl", "alt":
	default:
		return fmt.Errorf("word_modifier must be ctrl or alt, got %q", s.WordModifier)
	}
	return nil
}

// Load reads settings from path, starting from Default. The format is
// chosen by extension: .yaml, .yml or .toml.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, configError(fmt.Errorf("failed to read %s: %w", filepath.Base(path), err))
	}
	return Parse(data, filepath.Ext(path))
}

// LoadOptional is like Load but returns Default when path does not exist.
func LoadOptional(path string) (Settings, error) {
	s, err := Load(path)
	if err != nil && stderrors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return s, err
}

// Parse decodes data in the format named by ext on top of Default.
func Parse(data []byte, ext string) (Settings, error) {
	s := Default()
	var err error
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &s)
	case ".toml":
		err = toml.Unmarshal(data, &s)
	default:
		return Settings{}, configError(fmt.Errorf("unsupported config format %q", ext))
	}
	if err != nil {
		return Settings{}, configError(fmt.Errorf("failed to parse settings: %w", err))
	}
	if err := s.Validate(); err != nil {
		return Settings{}, configError(err)
	}
	return s, nil
}

// Encode writes s in the format named by ext.
func Encode(s Settings, ext string) ([]byte, error) {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return yaml.Marshal(s)
	case ".toml":
		return toml.Marshal(s)
	default:
		return nil, configError(fmt.Errorf("unsupported config format %q", ext))
	}
}

func configError(err error) error {
	return &errors.FuturaError{Op: "config.Load", Kind: errors.KindConfig, Err: err, Timestamp: time.Now()}
}

var (
	mu          sync.RWMutex
	current     = Default()
	initialized bool
)

// Init installs s as the process-wide settings. Only the first call takes
// effect; it reports whether this call did.
func Init(s Settings) bool {
	mu.Lock()
	defer mu.Unlock()
	if initialized {
		return false
	}
	current = s
	initialized = true
	return true
}

// Current returns the process-wide settings, or Default before Init.
func Current() Settings {
	mu.RLock()
	defer mu.RUnlock()
	return current
}
