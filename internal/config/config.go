// Package config loads editor configuration from TOML files and
// supports live reload through a file watcher.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/blockdown/internal/block"
)

// Configuration errors.
var (
	// ErrInvalidBlockType indicates an unknown default block type.
	ErrInvalidBlockType = errors.New("invalid block type")

	// ErrInvalidTrigger indicates a disabled trigger that no block
	// kind declares.
	ErrInvalidTrigger = errors.New("unknown trigger")

	// ErrInvalidTabWidth indicates a non-positive tab width.
	ErrInvalidTabWidth = errors.New("invalid tab width")
)

// Config holds editor settings.
type Config struct {
	// DefaultBlock is the kind new blocks start as.
	DefaultBlock string `toml:"default_block"`

	// DisabledTriggers lists markdown triggers that must not convert
	// blocks while typing.
	DisabledTriggers []string `toml:"disabled_triggers"`

	// ToolbarScript is the path of a Lua toolbar script, empty for the
	// built-in no-op toolbar.
	ToolbarScript string `toml:"toolbar_script"`

	// TabWidth is the display width of a tab character inside code
	// blocks.
	TabWidth int `toml:"tab_width"`

	// LogLevel is the minimum log level: debug, info, warn, error.
	LogLevel string `toml:"log_level"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		DefaultBlock: block.Paragraph.String(),
		TabWidth:     4,
		LogLevel:     "info",
	}
}

// Load reads configuration from path. A missing file is not an error;
// defaults are returned. Settings absent from the file keep their
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("validating config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c Config) Validate() error {
	if _, ok := block.TypeFromString(c.DefaultBlock); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidBlockType, c.DefaultBlock)
	}
	for _, trigger := range c.DisabledTriggers {
		if !knownTrigger(trigger) {
			return fmt.Errorf("%w: %q", ErrInvalidTrigger, trigger)
		}
	}
	if c.TabWidth < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidTabWidth, c.TabWidth)
	}
	return nil
}

// DefaultBlockType resolves the configured default block kind.
func (c Config) DefaultBlockType() block.Type {
	t, _ := block.TypeFromString(c.DefaultBlock)
	return t
}

// TriggerEnabled reports whether a markdown trigger is active.
func (c Config) TriggerEnabled(trigger string) bool {
	for _, d := range c.DisabledTriggers {
		if d == trigger {
			return false
		}
	}
	return true
}

// knownTrigger reports whether any block kind declares the trigger.
func knownTrigger(trigger string) bool {
	for _, t := range []block.Type{
		block.H1, block.H2, block.H3, block.Code,
		block.TaskList, block.UnorderedList, block.OrderedList,
	} {
		for _, known := range block.MarkdownTriggers(t) {
			if known == trigger {
				return true
			}
		}
	}
	return false
}
