// Package config loads the optional xiform.yaml next to a project's go.mod.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/xiform/xiform/pkg/graphics"
	"github.com/xiform/xiform/pkg/terminal"
	"github.com/xiform/xiform/pkg/textedit"
	"github.com/xiform/xiform/pkg/widgets"
)

// FileName is the configuration file looked up in the project directory.
const FileName = "xiform.yaml"

// Config represents the optional xiform.yaml configuration.
type Config struct {
	App      AppConfig      `yaml:"app"`
	Window   WindowConfig   `yaml:"window"`
	Toolkit  ToolkitConfig  `yaml:"toolkit"`
	Terminal TerminalConfig `yaml:"terminal"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
}

// WindowConfig sizes the drawing surface.
type WindowConfig struct {
	Width      int    `yaml:"width,omitempty"`
	Height     int    `yaml:"height,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// ToolkitConfig holds widget sizing limits.
type ToolkitConfig struct {
	Capacity      int `yaml:"capacity,omitempty"`
	EntryCapacity int `yaml:"entry_capacity,omitempty"`
	GlyphAdvance  int `yaml:"glyph_advance,omitempty"`
	Padding       int `yaml:"padding,omitempty"`
}

// TerminalConfig sets the surface units covered by one terminal cell.
type TerminalConfig struct {
	CellWidth  int `yaml:"cell_width,omitempty"`
	CellHeight int `yaml:"cell_height,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root          string
	ModulePath    string
	AppName       string
	Width         int
	Height        int
	Background    graphics.Color
	Capacity      int
	EntryCapacity int
	GlyphAdvance  int
	Padding       int
	CellWidth     int
	CellHeight    int
}

// LoadOptional reads xiform.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads xiform.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	modPath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modPath, dir)
	}

	background := graphics.ColorWhite
	if s := strings.TrimSpace(cfg.Window.Background); s != "" {
		background, err = graphics.ParseHex(s)
		if err != nil {
			return nil, fmt.Errorf("window.background: %w", err)
		}
	}

	r := &Resolved{
		Root:          dir,
		ModulePath:    modPath,
		AppName:       appName,
		Width:         orDefault(cfg.Window.Width, 800),
		Height:        orDefault(cfg.Window.Height, 600),
		Background:    background,
		Capacity:      orDefault(cfg.Toolkit.Capacity, widgets.DefaultCapacity),
		EntryCapacity: orDefault(cfg.Toolkit.EntryCapacity, textedit.DefaultCapacity),
		GlyphAdvance:  orDefault(cfg.Toolkit.GlyphAdvance, widgets.DefaultGlyphAdvance),
		Padding:       orDefault(cfg.Toolkit.Padding, widgets.DefaultPadding),
		CellWidth:     orDefault(cfg.Terminal.CellWidth, terminal.CellWidth),
		CellHeight:    orDefault(cfg.Terminal.CellHeight, terminal.CellHeight),
	}
	if err := r.validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

func (r *Resolved) validate() error {
	switch {
	case r.Width < 1 || r.Height < 1:
		return fmt.Errorf("window size %dx%d must be positive", r.Width, r.Height)
	case r.Capacity < 1:
		return fmt.Errorf("toolkit.capacity %d must be positive", r.Capacity)
	case r.EntryCapacity < 2:
		return fmt.Errorf("toolkit.entry_capacity %d must be at least 2", r.EntryCapacity)
	case r.GlyphAdvance < 1:
		return fmt.Errorf("toolkit.glyph_advance %d must be positive", r.GlyphAdvance)
	case r.Padding < 0:
		return fmt.Errorf("toolkit.padding %d must not be negative", r.Padding)
	case r.CellWidth < 1 || r.CellHeight < 1:
		return fmt.Errorf("terminal cell %dx%d must be positive", r.CellWidth, r.CellHeight)
	}
	return nil
}

// FindProjectRoot walks up from the current directory to find go.mod. If
// there is none, the current directory is used.
func FindProjectRoot() (string, error) {
	start, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := start
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return start, nil
		}
		dir = parent
	}
}

// modulePath returns the module path from dir/go.mod, or "" if there is
// no go.mod.
func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modName, _, ok := module.SplitPathVersion(modulePath); ok && modName != "" {
		parts := strings.Split(modName, "/")
		base = parts[len(parts)-1]
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "xiform_app"
	}
	return base
}
