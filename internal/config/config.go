// Package config loads dashboard settings from defaults, a TOML file,
// DEVDASH_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"devdash/internal/ui"
)

const (
	// ConfigEnv points at an explicit config file.
	ConfigEnv = "DEVDASH_CONFIG"
	envPrefix = "DEVDASH"
)

// Config holds application configuration.
type Config struct {
	Layout   LayoutConfig   `mapstructure:"layout"`
	Panels   PanelsConfig   `mapstructure:"panels"`
	Terminal TerminalConfig `mapstructure:"terminal"`
	Log      LogConfig      `mapstructure:"log"`
}

// LayoutConfig holds the fixed extents, in character cells.
type LayoutConfig struct {
	LeftWidth    int `mapstructure:"left_width"`
	RightWidth   int `mapstructure:"right_width"`
	BottomHeight int `mapstructure:"bottom_height"`
}

// PanelsConfig holds per-panel placement and the initially active panel.
type PanelsConfig struct {
	Active      string      `mapstructure:"active"`
	FileTree    PanelConfig `mapstructure:"filetree"`
	Diagnostics PanelConfig `mapstructure:"diagnostics"`
	Terminal    PanelConfig `mapstructure:"terminal"`
}

// PanelConfig places one panel.
type PanelConfig struct {
	Position string `mapstructure:"position"` // left, right, bottom, floating
	Visible  bool   `mapstructure:"visible"`
	Key      string `mapstructure:"key"` // toggle shortcut, e.g. ctrl+e
}

// TerminalConfig configures the terminal panel's output feed.
type TerminalConfig struct {
	Scrollback int    `mapstructure:"scrollback"`
	Exec       string `mapstructure:"exec"` // shell command whose output is streamed; empty for none
}

// LogConfig configures the debug log. The terminal belongs to the UI, so logs
// go to a file or nowhere.
type LogConfig struct {
	File string `mapstructure:"file"`
}

// FlagKeys maps command-line flag names to config keys.
var FlagKeys = map[string]string{
	"left-width":    "layout.left_width",
	"right-width":   "layout.right_width",
	"bottom-height": "layout.bottom_height",
	"exec":          "terminal.exec",
	"log-file":      "log.file",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("layout.left_width", 30)
	v.SetDefault("layout.right_width", 30)
	v.SetDefault("layout.bottom_height", 10)

	v.SetDefault("panels.active", "filetree")
	v.SetDefault("panels.filetree.position", "left")
	v.SetDefault("panels.filetree.visible", true)
	v.SetDefault("panels.filetree.key", "ctrl+e")
	v.SetDefault("panels.diagnostics.position", "bottom")
	v.SetDefault("panels.diagnostics.visible", false)
	v.SetDefault("panels.diagnostics.key", "ctrl+d")
	v.SetDefault("panels.terminal.position", "bottom")
	v.SetDefault("panels.terminal.visible", false)
	v.SetDefault("panels.terminal.key", "ctrl+t")

	v.SetDefault("terminal.scrollback", 1000)
	v.SetDefault("terminal.exec", "")
	v.SetDefault("log.file", "")
}

// Load reads configuration. path, when non-empty, names the config file and
// must exist; otherwise DEVDASH_CONFIG or $XDG_CONFIG_HOME/devdash/config.toml
// is used if present. flags may be nil; only flags the user set override.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv(ConfigEnv)
	}
	if path != "" {
		v.SetConfigFile(path)
	} else if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "devdash"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range FlagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks extents and panel positions.
func (c Config) Validate() error {
	var errs []error
	if c.Layout.LeftWidth < 0 {
		errs = append(errs, fmt.Errorf("layout.left_width must be >= 0, got %d", c.Layout.LeftWidth))
	}
	if c.Layout.RightWidth < 0 {
		errs = append(errs, fmt.Errorf("layout.right_width must be >= 0, got %d", c.Layout.RightWidth))
	}
	if c.Layout.BottomHeight < 0 {
		errs = append(errs, fmt.Errorf("layout.bottom_height must be >= 0, got %d", c.Layout.BottomHeight))
	}
	for name, p := range map[string]PanelConfig{
		"filetree":    c.Panels.FileTree,
		"diagnostics": c.Panels.Diagnostics,
		"terminal":    c.Panels.Terminal,
	} {
		if _, err := ui.ParsePosition(p.Position); err != nil {
			errs = append(errs, fmt.Errorf("panels.%s.position: %w", name, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
