package dispatch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"time"
	"unicode/utf8"
)

// Tools performs the side effects agents may request. Implementations must
// honor ctx cancellation.
type Tools interface {
	Shell(ctx context.Context, command string) (string, error)
	ReadFile(ctx context.Context, path string) (string, error)
	WriteFile(ctx context.Context, path, content string) error
	WebSearch(ctx context.Context, query string) (string, error)
}

const (
	defaultShellTimeout = 30 * time.Second
	defaultMaxOutput    = 64 * 1024
)

// ErrOutsideRoot is returned for paths that leave the tool root.
var ErrOutsideRoot = errors.New("path escapes tool root")

// LocalTools runs tools on the local machine, confined to Root. Web search
// needs a provider and reports errors.ErrUnsupported.
type LocalTools struct {
	Root      string
	Timeout   time.Duration
	MaxOutput int
}

var _ Tools = LocalTools{}

// Shell runs command with sh -c in Root and returns combined output.
func (t LocalTools) Shell(ctx context.Context, command string) (string, error) {
	timeout := t.Timeout
	if timeout <= 0 {
		timeout = defaultShellTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Dir = t.Root
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	text := t.truncate(out.String())
	if err != nil {
		return text, fmt.Errorf("run shell command: %w", err)
	}
	return text, nil
}

// ReadFile returns the contents of path, relative to Root.
func (t LocalTools) ReadFile(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	root, rel, err := t.open(path)
	if err != nil {
		return "", err
	}
	defer root.Close()
	data, err := root.ReadFile(rel)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return t.truncate(string(data)), nil
}

// WriteFile writes content to path, relative to Root, creating parents.
func (t LocalTools) WriteFile(ctx context.Context, path, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	root, rel, err := t.open(path)
	if err != nil {
		return err
	}
	defer root.Close()
	if err := root.MkdirAll(filepath.Dir(rel), 0o755); err != nil {
		return fmt.Errorf("create parent dir: %w", err)
	}
	if err := root.WriteFile(rel, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

func (LocalTools) WebSearch(context.Context, string) (string, error) {
	return "", fmt.Errorf("web search: %w", errors.ErrUnsupported)
}

// open returns Root as an os.Root together with path relative to it. The
// os.Root refuses symlinks that leave it; resolve reports them up front so
// callers see ErrOutsideRoot.
func (t LocalTools) open(path string) (*os.Root, string, error) {
	dir, rel, err := t.resolve(path)
	if err != nil {
		return nil, "", err
	}
	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, "", fmt.Errorf("open tool root: %w", err)
	}
	return root, rel, nil
}

func (t LocalTools) resolve(path string) (dir, rel string, err error) {
	dir = t.Root
	if dir == "" {
		dir = "."
	}
	if dir, err = filepath.Abs(dir); err != nil {
		return "", "", fmt.Errorf("tool root: %w", err)
	}
	rel = path
	if filepath.IsAbs(path) {
		if rel, err = filepath.Rel(dir, path); err != nil {
			return "", "", fmt.Errorf("%q: %w", path, ErrOutsideRoot)
		}
	}
	if !filepath.IsLocal(rel) {
		return "", "", fmt.Errorf("%q: %w", path, ErrOutsideRoot)
	}
	if err := confined(dir, filepath.Join(dir, rel)); err != nil {
		return "", "", fmt.Errorf("%q: %w", path, err)
	}
	return dir, rel, nil
}

// confined follows symlinks along target, or its nearest existing parent,
// and checks the result still lies under dir.
func confined(dir, target string) error {
	realDir, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return fmt.Errorf("tool root: %w", err)
	}
	for {
		resolved, err := filepath.EvalSymlinks(target)
		if err == nil {
			rel, err := filepath.Rel(realDir, resolved)
			if err != nil || !filepath.IsLocal(rel) {
				return ErrOutsideRoot
			}
			return nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		parent := filepath.Dir(target)
		if parent == target || target == dir {
			return nil
		}
		target = parent
	}
}

func (t LocalTools) truncate(s string) string {
	limit := t.MaxOutput
	if limit <= 0 {
		limit = defaultMaxOutput
	}
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "\n[truncated]"
}
