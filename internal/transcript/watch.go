package transcript

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/five82/facet/internal/protocol"
)

const defaultDebounce = 100 * time.Millisecond

// Update is delivered after the transcript changes.
type Update struct {
	Snapshot Snapshot
	// New holds the actions that were not present in the previous update.
	// It restarts from the first action when the file shrinks.
	New []protocol.Action
}

// WatchOptions tunes Watch. The zero value is usable.
type WatchOptions struct {
	Debounce time.Duration
	Logger   *zap.Logger
}

// Watch re-parses the transcript at path whenever it changes and calls fn
// with the result. The current contents are delivered first. Bursts of
// writes inside the debounce window produce one update. Watch blocks until
// ctx is cancelled and then returns nil.
func Watch(ctx context.Context, path string, fn func(Update), opts WatchOptions) error {
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve transcript path: %w", err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory so the file may be created, replaced or renamed.
	dir := filepath.Dir(abs)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	log.Debug("watching transcript", zap.String("path", abs))

	t := &tracker{path: abs, fn: fn, log: log}
	t.emit()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || ev.Op == fsnotify.Chmod {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("transcript watcher error", zap.Error(err))
		case <-fire:
			fire = nil
			t.emit()
		}
	}
}

type tracker struct {
	path string
	fn   func(Update)
	log  *zap.Logger
	seen int
	size int
}

func (t *tracker) emit() {
	snap, err := Load(t.path)
	if err != nil {
		t.log.Warn("transcript reload failed", zap.String("path", t.path), zap.Error(err))
		return
	}
	actions := snap.Actions()
	if len(snap.Text) < t.size {
		t.seen = 0
	}
	t.size = len(snap.Text)

	var fresh []protocol.Action
	if len(actions) > t.seen {
		fresh = actions[t.seen:]
	}
	t.seen = len(actions)
	t.log.Debug("transcript reloaded",
		zap.Int("bytes", t.size),
		zap.Int("actions", len(actions)),
		zap.Int("new", len(fresh)))
	t.fn(Update{Snapshot: snap, New: fresh})
}
