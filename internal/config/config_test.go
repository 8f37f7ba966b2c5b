package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/language"

	"github.com/five82/facet/internal/style"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ExposureBind != defaultExposureBind {
		t.Fatalf("ExposureBind = %q, want %q", cfg.ExposureBind, defaultExposureBind)
	}

	wantDataDir, err := expandPath(defaultDataDir)
	if err != nil {
		t.Fatalf("expandPath(defaultDataDir) returned error: %v", err)
	}
	if cfg.DataDir != wantDataDir {
		t.Fatalf("DataDir = %q, want %q", cfg.DataDir, wantDataDir)
	}
	if cfg.MemoryPath != filepath.Join(wantDataDir, "memory.db") {
		t.Fatalf("MemoryPath = %q", cfg.MemoryPath)
	}
	if cfg.SnapshotPath != filepath.Join(wantDataDir, "current_view.json") {
		t.Fatalf("SnapshotPath = %q", cfg.SnapshotPath)
	}
	if !cfg.Accessibility || cfg.Mode != style.ModeTerminal || cfg.Locale != language.English {
		t.Fatalf("unexpected defaults: %#v", cfg)
	}
	if cfg.Size() != (style.Size{Width: 1280, Height: 800}) {
		t.Fatalf("Size = %v, want 1280x800", cfg.Size())
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
exposure_bind = "  10.0.0.5:9999  "
data_dir = "  ~/.facet  "
log_level = " DEBUG "
accessibility = false
render_mode = "neural"
locale = "de-DE"
width = 800
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ExposureBind != "10.0.0.5:9999" {
		t.Fatalf("ExposureBind = %q, want %q", cfg.ExposureBind, "10.0.0.5:9999")
	}
	if !strings.HasPrefix(cfg.DataDir, home) {
		t.Fatalf("DataDir = %q, want it under HOME %q", cfg.DataDir, home)
	}
	if cfg.LogFile != filepath.Join(cfg.DataDir, "facet.log") {
		t.Fatalf("LogFile = %q, want it under DataDir", cfg.LogFile)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.Accessibility {
		t.Fatalf("Accessibility = true, want false")
	}
	if cfg.Mode != style.ModeNeural {
		t.Fatalf("Mode = %v, want Neural", cfg.Mode)
	}
	if cfg.Locale != language.MustParse("de-DE") {
		t.Fatalf("Locale = %v, want de-DE", cfg.Locale)
	}
	if cfg.Width != 800 || cfg.Height != defaultHeight {
		t.Fatalf("viewport = %vx%v, want 800x%d", cfg.Width, cfg.Height, defaultHeight)
	}
}

func TestLoad_ExplicitPathsOverrideDataDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
memory_path = "~/mem/facet.db"
log_file = "~/logs/facet.log"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.MemoryPath != filepath.Join(home, "mem/facet.db") {
		t.Fatalf("MemoryPath = %q", cfg.MemoryPath)
	}
	if cfg.LogFile != filepath.Join(home, "logs/facet.log") {
		t.Fatalf("LogFile = %q", cfg.LogFile)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
exposure_bind = "   "
data_dir = ""
render_mode = " "
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ExposureBind != defaultExposureBind {
		t.Fatalf("ExposureBind = %q, want %q", cfg.ExposureBind, defaultExposureBind)
	}
	wantDataDir, err := expandPath(defaultDataDir)
	if err != nil {
		t.Fatalf("expandPath(defaultDataDir) returned error: %v", err)
	}
	if cfg.DataDir != wantDataDir {
		t.Fatalf("DataDir = %q, want %q", cfg.DataDir, wantDataDir)
	}
	if cfg.Mode != style.ModeTerminal {
		t.Fatalf("Mode = %v, want Terminal", cfg.Mode)
	}
}

func TestLoad_InvalidValuesFail(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"toml", `exposure_bind = [`, "parse config"},
		{"mode", `render_mode = "hologram"`, "render_mode"},
		{"locale", `locale = "not a locale!"`, "locale"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.body), 0o600); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatalf("Load returned nil error, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Load error = %q, want it to mention %q", err.Error(), tt.want)
			}
		})
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
