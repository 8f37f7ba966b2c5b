package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"github.com/five82/facet/internal/style"
)

// Config captures the settings facet reads from config.toml.
type Config struct {
	ExposureBind  string
	DataDir       string
	MemoryPath    string
	SnapshotPath  string
	LogFile       string
	LogLevel      string
	Accessibility bool
	Mode          style.RenderMode
	Locale        language.Tag
	Width         float64
	Height        float64
}

const (
	defaultConfigPath   = "~/.config/facet/config.toml"
	defaultDataDir      = "~/.local/share/facet"
	defaultExposureBind = "127.0.0.1:8081"
	defaultLogLevel     = "info"
	defaultWidth        = 1280
	defaultHeight       = 800
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Defaults returns the configuration used when no file exists.
func Defaults() Config {
	cfg := Config{
		ExposureBind:  defaultExposureBind,
		DataDir:       mustExpand(defaultDataDir),
		LogLevel:      defaultLogLevel,
		Accessibility: true,
		Mode:          style.ModeTerminal,
		Locale:        language.English,
		Width:         defaultWidth,
		Height:        defaultHeight,
	}
	cfg.derivePaths()
	return cfg
}

// Load locates and parses the facet config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		ExposureBind  string  `toml:"exposure_bind"`
		DataDir       string  `toml:"data_dir"`
		MemoryPath    string  `toml:"memory_path"`
		LogFile       string  `toml:"log_file"`
		LogLevel      string  `toml:"log_level"`
		Accessibility *bool   `toml:"accessibility"`
		Mode          string  `toml:"render_mode"`
		Locale        string  `toml:"locale"`
		Width         float64 `toml:"width"`
		Height        float64 `toml:"height"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if bind := strings.TrimSpace(raw.ExposureBind); bind != "" {
		cfg.ExposureBind = bind
	}
	if dir := strings.TrimSpace(raw.DataDir); dir != "" {
		cfg.DataDir = mustExpand(dir)
	}
	cfg.derivePaths()
	if p := strings.TrimSpace(raw.MemoryPath); p != "" {
		cfg.MemoryPath = mustExpand(p)
	}
	if p := strings.TrimSpace(raw.LogFile); p != "" {
		cfg.LogFile = mustExpand(p)
	}
	if lvl := strings.TrimSpace(raw.LogLevel); lvl != "" {
		cfg.LogLevel = strings.ToLower(lvl)
	}
	if raw.Accessibility != nil {
		cfg.Accessibility = *raw.Accessibility
	}
	if m := strings.TrimSpace(raw.Mode); m != "" {
		mode, ok := style.ParseRenderMode(m)
		if !ok {
			return Config{}, fmt.Errorf("parse config: unknown render_mode %q", m)
		}
		cfg.Mode = mode
	}
	if l := strings.TrimSpace(raw.Locale); l != "" {
		tag, err := language.Parse(l)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: locale %q: %w", l, err)
		}
		cfg.Locale = tag
	}
	if raw.Width > 0 {
		cfg.Width = raw.Width
	}
	if raw.Height > 0 {
		cfg.Height = raw.Height
	}

	return cfg, nil
}

// Size returns the describe/render viewport as a style.Size.
func (c Config) Size() style.Size {
	return style.Size{Width: c.Width, Height: c.Height}
}

func (c *Config) derivePaths() {
	c.MemoryPath = filepath.Join(c.DataDir, "memory.db")
	c.SnapshotPath = filepath.Join(c.DataDir, "current_view.json")
	c.LogFile = filepath.Join(c.DataDir, "facet.log")
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
