// Package prefs handles facet user preferences persistence.
// Preferences are stored in ~/.config/facet/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/facet/internal/style"
)

// Prefs holds user preferences for the preview.
type Prefs struct {
	Theme style.ThemeKind  `toml:"theme"`
	Tone  style.Tone       `toml:"tone"`
	Mode  style.RenderMode `toml:"mode"`
}

const defaultPrefsPath = "~/.config/facet/prefs.toml"

// Defaults returns the preferences used when nothing is stored.
func Defaults() Prefs {
	return Prefs{Theme: style.ThemePeak, Tone: style.ToneDark, Mode: style.ModeTerminal}
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from the given path, falling back to defaults if
// missing. Unreadable files and unknown values degrade to defaults field by
// field; Load never fails.
func Load(path string) (Prefs, error) {
	prefs := Defaults()

	resolved, err := resolvePath(path)
	if err != nil {
		return prefs, nil
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return prefs, nil
		}
		return prefs, nil // Graceful degradation
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return prefs, nil // Graceful degradation
	}

	var raw struct {
		Theme string `toml:"theme"`
		Tone  string `toml:"tone"`
		Mode  string `toml:"mode"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return prefs, nil // Graceful degradation
	}

	if kind, ok := style.ParseThemeKind(strings.TrimSpace(raw.Theme)); ok {
		prefs.Theme = kind
	}
	if tone, ok := style.ParseTone(strings.TrimSpace(raw.Tone)); ok {
		prefs.Tone = tone
	}
	if mode, ok := style.ParseRenderMode(strings.TrimSpace(raw.Mode)); ok {
		prefs.Mode = mode
	}

	return prefs, nil
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
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
