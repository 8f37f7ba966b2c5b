package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/five82/facet/internal/a11y"
	"github.com/five82/facet/internal/catalog"
	"github.com/five82/facet/internal/semantic"
	"github.com/five82/facet/internal/state"
	"github.com/five82/facet/internal/style"
)

const (
	defaultExportInterval = 250 * time.Millisecond
	maxBackoff            = 30 * time.Second
)

// Exporter publishes the screen whenever the store revision changes. Each
// publish feeds the accessibility bridge and writes the semantic tree to
// Path so agents without HTTP access can read it.
type Exporter struct {
	Store    *state.Store
	Bridge   *a11y.Bridge
	Path     string
	Size     style.Size
	Interval time.Duration
	Logger   *zap.Logger

	last      uint64
	published bool
	failures  int
}

// Run polls the store until ctx is cancelled. Write failures back off
// exponentially and never stop the loop.
func (e *Exporter) Run(ctx context.Context) error {
	interval := e.Interval
	if interval <= 0 {
		interval = defaultExportInterval
	}
	log := e.Logger
	if log == nil {
		log = zap.NewNop()
	}

	timer := time.NewTimer(0)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		}
		if err := e.Refresh(); err != nil {
			e.failures++
			log.Warn("view export failed", zap.Int("failures", e.failures), zap.Error(err))
		} else {
			e.failures = 0
		}
		timer.Reset(calculateBackoff(e.failures, interval))
	}
}

// Refresh publishes the current snapshot if it changed since the last
// successful publish.
func (e *Exporter) Refresh() error {
	snap := e.Store.Snapshot()
	if e.published && snap.Revision == e.last {
		return nil
	}
	node := catalog.Describe(snap, catalog.Context(snap, e.size()))
	if e.Bridge != nil {
		e.Bridge.Update(node)
	}
	if e.Path != "" {
		if err := writeView(e.Path, node); err != nil {
			return err
		}
	}
	e.last = snap.Revision
	e.published = true
	return nil
}

func (e *Exporter) size() style.Size {
	if e.Size.Width <= 0 || e.Size.Height <= 0 {
		return style.Size{Width: 1280, Height: 800}
	}
	return e.Size
}

// writeView replaces path atomically with the indented tree.
func writeView(path string, node semantic.Node) error {
	data, err := node.MarshalIndent()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create view dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".current_view-*.json")
	if err != nil {
		return fmt.Errorf("create view file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write view file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close view file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace view file: %w", err)
	}
	return nil
}

// calculateBackoff doubles base for every consecutive failure, capped at
// maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	d := base
	for i := 0; i < failures; i++ {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	return d
}
