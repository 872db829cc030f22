package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/LFroesch/fx/internal/handlers"
	"github.com/LFroesch/fx/internal/logger"
)

const (
	appName        = "fx"
	configFileName = "config.toml"
	themesDirName  = "themes"
)

// Config mirrors config.toml.
type Config struct {
	Layout       Layout       `toml:"layout"`
	Appearance   Appearance   `toml:"appearance"`
	Behavior     Behavior     `toml:"behavior"`
	FileHandlers FileHandlers `toml:"file_handlers"`
	Keybindings  Keybindings  `toml:"keybindings"`

	// Path is the file the config was read from, empty for defaults.
	Path string `toml:"-"`
}

type Layout struct {
	Panels     int    `toml:"panels"`
	Mode       string `toml:"mode"`
	ShowHidden bool   `toml:"show_hidden"`
}

type Appearance struct {
	Theme       string `toml:"theme"`
	Icons       bool   `toml:"icons"`
	BorderStyle string `toml:"border_style"`
}

type Behavior struct {
	SortDirsFirst bool `toml:"sort_dirs_first"`
	CaseSensitive bool `toml:"case_sensitive"`
}

type FileHandlers struct {
	Default string          `toml:"default"`
	Rules   []handlers.Rule `toml:"rules"`
}

type Keybindings struct {
	Quit []string `toml:"quit"`
	Open []string `toml:"open"`
	Up   []string `toml:"up"`
}

var borderStyles = []string{"rounded", "normal", "thick", "double", "hidden"}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Layout:     Layout{Panels: 3, Mode: "miller"},
		Appearance: Appearance{Theme: "catppuccin", Icons: true, BorderStyle: "rounded"},
		Behavior:   Behavior{SortDirsFirst: true},
		FileHandlers: FileHandlers{
			Default: "xdg-open",
		},
		Keybindings: Keybindings{
			Quit: []string{"q", "ESC"},
			Open: []string{"l", "RIGHT", "ENTER"},
			Up:   []string{"k", "UP"},
		},
	}
}

// sample returns the config written by --init-config.
func sample() *Config {
	cfg := Default()
	cfg.FileHandlers.Rules = []handlers.Rule{
		{Extensions: []string{"cpp", "h", "c"}, Command: "nvim", Terminal: true},
		{Pattern: "*.md", Command: "glow"},
		{MimeType: "image/*", Command: "kitty +kitten icat"},
	}
	return cfg
}

// Dir returns the per-user config directory, <user config dir>/fx.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}
	return filepath.Join(base, appName), nil
}

// FindRoot returns ./config when it exists, otherwise the user config directory if it exists.
func FindRoot() (string, bool) {
	if cwd, err := os.Getwd(); err == nil {
		local := filepath.Join(cwd, "config")
		if isDir(local) {
			return local, true
		}
	}
	if dir, err := Dir(); err == nil && isDir(dir) {
		return dir, true
	}
	return "", false
}

// Load finds and reads config.toml. It never fails: problems are logged and defaults returned.
func Load() *Config {
	root, ok := FindRoot()
	if !ok {
		logger.Info("No config directory found, using defaults")
		return Default()
	}

	path := filepath.Join(root, configFileName)
	cfg, err := LoadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Info("No config file at %s, using defaults", path)
		} else {
			logger.Warn("Failed to load config %s: %v, using defaults", path, err)
		}
		return Default()
	}
	return cfg
}

// LoadFile reads one config file over the defaults and clamps out-of-range values.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	for _, key := range meta.Undecoded() {
		logger.Warn("Unknown config key %s in %s", key.String(), path)
	}
	cfg.Path = path
	cfg.validate()
	return cfg, nil
}

func (c *Config) validate() {
	def := Default()

	if c.Layout.Panels < 1 {
		logger.Warn("panels too low (%d), using minimum of 1", c.Layout.Panels)
		c.Layout.Panels = 1
	} else if c.Layout.Panels > 5 {
		logger.Warn("panels too high (%d), using maximum of 5", c.Layout.Panels)
		c.Layout.Panels = 5
	}

	if c.Layout.Mode == "" {
		c.Layout.Mode = def.Layout.Mode
	}
	if c.Appearance.Theme == "" {
		c.Appearance.Theme = def.Appearance.Theme
	}
	if !contains(borderStyles, c.Appearance.BorderStyle) {
		logger.Warn("Unknown border_style %q, using %q", c.Appearance.BorderStyle, def.Appearance.BorderStyle)
		c.Appearance.BorderStyle = def.Appearance.BorderStyle
	}
	if c.FileHandlers.Default == "" {
		c.FileHandlers.Default = def.FileHandlers.Default
	}

	rules := c.FileHandlers.Rules[:0]
	for i, rule := range c.FileHandlers.Rules {
		if rule.Command == "" {
			logger.Warn("Dropping file handler rule %d: empty command", i)
			continue
		}
		rules = append(rules, rule)
	}
	c.FileHandlers.Rules = rules
}

// Save encodes cfg as TOML to path, creating parent directories.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		logger.Error("Failed to create config directory %s: %v", filepath.Dir(path), err)
		return fmt.Errorf("cannot create config directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		logger.Error("Failed to write config file %s: %v", path, err)
		return fmt.Errorf("cannot write config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// Init lays out root with a themes directory and a sample config.toml.
// An existing config.toml is left untouched.
func Init(root string) (string, error) {
	if err := os.MkdirAll(filepath.Join(root, themesDirName), 0755); err != nil {
		return "", fmt.Errorf("cannot create themes directory: %w", err)
	}

	path := filepath.Join(root, configFileName)
	if _, err := os.Stat(path); err == nil {
		return path, fmt.Errorf("config already exists at %s", path)
	}
	if err := Save(sample(), path); err != nil {
		return "", err
	}
	return path, nil
}

// InitGlobal runs Init in the user config directory.
func InitGlobal() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return Init(dir)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
