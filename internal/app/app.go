package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/five82/facet/internal/a11y"
	"github.com/five82/facet/internal/catalog"
	"github.com/five82/facet/internal/config"
	"github.com/five82/facet/internal/dispatch"
	"github.com/five82/facet/internal/exposure"
	"github.com/five82/facet/internal/logging"
	"github.com/five82/facet/internal/memory"
	"github.com/five82/facet/internal/prefs"
	"github.com/five82/facet/internal/semantic"
	"github.com/five82/facet/internal/state"
	"github.com/five82/facet/internal/transcript"
	"github.com/five82/facet/internal/ui"
)

// Options configure a facet runtime.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/facet/prefs.toml
	// TranscriptPath, when set, is watched for agent output and every new
	// action in it is dispatched.
	TranscriptPath string
	Verbose        bool
	// Interactive routes logs to a file so they never reach the terminal UI.
	Interactive bool
}

// Runtime holds everything a facet session shares between the preview, the
// exposure server and the exporter.
type Runtime struct {
	Config     config.Config
	Prefs      prefs.Prefs
	Log        *zap.Logger
	Store      *state.Store
	Memory     *memory.Store
	Dispatcher *dispatch.Dispatcher
	Bridge     *a11y.Bridge
	Tree       *a11y.Tree

	prefsPath      string
	transcriptPath string
}

// Open loads configuration and preferences, opens the memory database and
// wires the dispatcher. Callers must Close the runtime.
func Open(opts Options) (*Runtime, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level := cfg.LogLevel
	if opts.Verbose {
		level = "debug"
	}
	// Headless commands log to stderr.
	var logFile string
	if opts.Interactive {
		logFile = cfg.LogFile
		if logFile == "" {
			logFile = filepath.Join(cfg.DataDir, "facet.log")
		}
	}
	log, err := logging.New(level, logFile)
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		log.Warn("load preferences", zap.Error(err))
	}

	mem, err := memory.Open(cfg.MemoryPath, log)
	if err != nil {
		_ = log.Sync()
		return nil, fmt.Errorf("open memory: %w", err)
	}

	root, err := os.Getwd()
	if err != nil {
		root = "."
	}

	initial := state.Defaults()
	initial.ThemeKind = userPrefs.Theme
	initial.Tone = userPrefs.Tone
	initial.Mode = userPrefs.Mode
	store := state.NewStore(initial)

	bridge := a11y.NewBridge(log.Named("a11y"))
	bridge.SetEnabled(cfg.Accessibility)
	tree := &a11y.Tree{}
	bridge.AddVisitor(tree)
	bridge.Handle(func(ev a11y.Event) error {
		log.Debug("accessibility update",
			zap.Stringer("kind", ev.Kind),
			zap.Int("nodes", tree.Len()),
			zap.Int("focusable", len(tree.Focusable())))
		return nil
	})

	d := dispatch.New(dispatch.Options{
		Store:  store,
		Memory: mem,
		Tools:  dispatch.LocalTools{Root: root},
		Logger: log.Named("dispatch"),
	})

	return &Runtime{
		Config:         cfg,
		Prefs:          userPrefs,
		Log:            log,
		Store:          store,
		Memory:         mem,
		Dispatcher:     d,
		Bridge:         bridge,
		Tree:           tree,
		prefsPath:      opts.PrefsPath,
		transcriptPath: opts.TranscriptPath,
	}, nil
}

// Close releases the memory database and flushes logs.
func (r *Runtime) Close() error {
	err := r.Memory.Close()
	_ = r.Log.Sync()
	return err
}

// Describe returns the semantic tree of the current screen.
func (r *Runtime) Describe() semantic.Node {
	snap := r.Store.Snapshot()
	return catalog.Describe(snap, catalog.Context(snap, r.Config.Size()))
}

// Serve runs the headless services until ctx is cancelled or one of them
// fails.
func (r *Runtime) Serve(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	if err := r.startServices(ctx, g); err != nil {
		return err
	}
	return g.Wait()
}

// Run boots the interactive preview alongside the headless services. When
// the user quits, the services are stopped.
func Run(ctx context.Context, opts Options) error {
	opts.Interactive = true
	rt, err := Open(opts)
	if err != nil {
		return err
	}
	defer func() { _ = rt.Close() }()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)
	if err := rt.startServices(ctx, g); err != nil {
		return err
	}
	g.Go(func() error {
		defer cancel()
		return ui.Run(ui.Options{
			Context:    ctx,
			Dispatcher: rt.Dispatcher,
			Size:       rt.Config.Size(),
			Locale:     rt.Config.Locale,
			Prefs:      rt.Prefs,
			PrefsPath:  rt.prefsPath,
		})
	})
	return g.Wait()
}

func (r *Runtime) startServices(ctx context.Context, g *errgroup.Group) error {
	srv, err := exposure.NewServer(exposure.Options{
		Bind:       r.Config.ExposureBind,
		Dispatcher: r.Dispatcher,
		View:       r.Describe,
		Logger:     r.Log.Named("exposure"),
	})
	if err != nil {
		return fmt.Errorf("init exposure server: %w", err)
	}
	g.Go(func() error {
		if err := srv.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("exposure server: %w", err)
		}
		return nil
	})

	exp := &Exporter{
		Store:  r.Store,
		Bridge: r.Bridge,
		Path:   r.Config.SnapshotPath,
		Size:   r.Config.Size(),
		Logger: r.Log.Named("export"),
	}
	g.Go(func() error { return exp.Run(ctx) })

	if r.transcriptPath != "" {
		g.Go(func() error {
			return r.followTranscript(ctx, r.transcriptPath)
		})
	}
	return nil
}

// followTranscript dispatches the actions an agent appends to path.
func (r *Runtime) followTranscript(ctx context.Context, path string) error {
	log := r.Log.Named("transcript")
	err := transcript.Watch(ctx, path, func(u transcript.Update) {
		for _, a := range u.New {
			res := r.Dispatcher.Dispatch(ctx, a)
			log.Debug("transcript action",
				zap.String("action", a.Tag()),
				zap.Stringer("outcome", res.Outcome),
				zap.Error(res.Err))
		}
	}, transcript.WatchOptions{Logger: log})
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("watch transcript: %w", err)
	}
	return nil
}

// Export writes the current view once and returns the path written.
func (r *Runtime) Export() (string, error) {
	exp := &Exporter{Store: r.Store, Bridge: r.Bridge, Path: r.Config.SnapshotPath, Size: r.Config.Size()}
	if err := exp.Refresh(); err != nil {
		return "", err
	}
	return r.Config.SnapshotPath, nil
}
