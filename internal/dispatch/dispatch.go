// Package dispatch applies decoded agent actions to the session state.
//
// Protected actions are never applied directly: they become the single
// pending Neural Sudo request, replacing any earlier one, until a human
// approves or denies it.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/five82/facet/internal/backend"
	"github.com/five82/facet/internal/protocol"
	"github.com/five82/facet/internal/semantic"
	"github.com/five82/facet/internal/state"
)

var (
	// ErrNoPending is returned by Approve and Deny when nothing is waiting.
	ErrNoPending = errors.New("dispatch: no pending protected action")
	// ErrNoTools is reported when a tool action arrives without a Tools
	// implementation.
	ErrNoTools = errors.New("dispatch: tools unavailable")
	// ErrNoMemory is reported when Memorize arrives without a memory store.
	ErrNoMemory = errors.New("dispatch: memory unavailable")
)

// Memory persists Memorize payloads.
type Memory interface {
	Save(ctx context.Context, rec semantic.Record) (semantic.Record, error)
}

// Outcome says what happened to a dispatched action.
type Outcome int

const (
	Applied Outcome = iota
	Held
	Ignored
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case Held:
		return "held"
	case Ignored:
		return "ignored"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result reports one dispatched action. Segment is the "[result:<tool>]"
// text for tool and memory actions, ready to be fed back to the agent.
type Result struct {
	Action  protocol.Action
	Outcome Outcome
	Segment string
	Err     error
}

// Options configures a Dispatcher. Store is required.
type Options struct {
	Store  *state.Store
	Memory Memory
	Tools  Tools
	Logger *zap.Logger
}

// Dispatcher routes actions to state, memory and tools.
type Dispatcher struct {
	store  *state.Store
	memory Memory
	tools  Tools
	log    *zap.Logger
	now    func() time.Time
}

// New returns a Dispatcher.
func New(opts Options) *Dispatcher {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	store := opts.Store
	if store == nil {
		store = &state.Store{}
	}
	return &Dispatcher{
		store:  store,
		memory: opts.Memory,
		tools:  opts.Tools,
		log:    log,
		now:    time.Now,
	}
}

// Store returns the state store actions are applied to.
func (d *Dispatcher) Store() *state.Store { return d.store }

// DispatchText parses agent text, records its prose and dispatches every
// action in order.
func (d *Dispatcher) DispatchText(ctx context.Context, text string) []Result {
	if prose := protocol.StripActions(text); prose != "" {
		d.store.Log(state.EntryText, prose)
	}
	actions := protocol.ParseText(text)
	results := make([]Result, 0, len(actions))
	for _, a := range actions {
		results = append(results, d.Dispatch(ctx, a))
	}
	return results
}

// Dispatch applies a, or holds it when it is protected.
func (d *Dispatcher) Dispatch(ctx context.Context, a protocol.Action) Result {
	if a == nil {
		return Result{Outcome: Ignored}
	}
	if reason := protocol.ProtectionReason(a); reason != "" {
		d.hold(a, reason)
		return Result{Action: a, Outcome: Held}
	}
	return d.apply(ctx, a)
}

func (d *Dispatcher) hold(a protocol.Action, reason string) {
	d.log.Warn("neural sudo: holding protected action",
		zap.String("action", a.Tag()),
		zap.String("reason", reason))
	d.store.Update(func(s *state.Snapshot) {
		if s.HasPending {
			s.Entries = append(s.Entries, state.Entry{
				At:   d.now(),
				Kind: state.EntryWarning,
				Text: "superseded pending " + s.Pending.Action.Tag(),
			})
		}
		s.Pending = state.Pending{Action: a, Reason: reason, At: d.now()}
		s.HasPending = true
		s.Entries = append(s.Entries, state.Entry{At: d.now(), Kind: state.EntrySudo, Text: reason})
	})
}

// Pending returns the protected action awaiting approval.
func (d *Dispatcher) Pending() (state.Pending, bool) {
	snap := d.store.Snapshot()
	return snap.Pending, snap.HasPending
}

// Approve applies the pending action and clears it.
func (d *Dispatcher) Approve(ctx context.Context) (Result, error) {
	p, ok := d.take()
	if !ok {
		return Result{}, ErrNoPending
	}
	d.log.Info("neural sudo: approved", zap.String("action", p.Action.Tag()))
	d.store.Log(state.EntrySudo, "approved "+p.Action.Tag())
	return d.apply(ctx, p.Action), nil
}

// Deny drops the pending action and returns it.
func (d *Dispatcher) Deny() (state.Pending, error) {
	p, ok := d.take()
	if !ok {
		return state.Pending{}, ErrNoPending
	}
	d.log.Info("neural sudo: denied", zap.String("action", p.Action.Tag()))
	d.store.Log(state.EntrySudo, "denied "+p.Action.Tag())
	return p, nil
}

func (d *Dispatcher) take() (state.Pending, bool) {
	var (
		p  state.Pending
		ok bool
	)
	d.store.Update(func(s *state.Snapshot) {
		p, ok = s.Pending, s.HasPending
		s.Pending = state.Pending{}
		s.HasPending = false
	})
	return p, ok
}

func (d *Dispatcher) apply(ctx context.Context, a protocol.Action) Result {
	d.log.Debug("applying action", zap.String("action", a.Tag()))
	switch a := a.(type) {
	case protocol.Navigate:
		d.set(a, func(s *state.Snapshot) { s.Page = a.Page })
	case protocol.SetButtonVariant:
		d.set(a, func(s *state.Snapshot) { s.ButtonVariant = a.Variant })
	case protocol.SetButtonIntent:
		d.set(a, func(s *state.Snapshot) { s.ButtonIntent = a.Intent })
	case protocol.SetThemeKind:
		d.set(a, func(s *state.Snapshot) { s.ThemeKind = a.Kind })
	case protocol.SetThemeTone:
		d.set(a, func(s *state.Snapshot) { s.Tone = a.Tone })
	case protocol.SetLabMode:
		d.set(a, func(s *state.Snapshot) { s.Mode = a.Mode })
	case protocol.Teleport:
		d.transform(a, a.Target, func(t *backend.Transform) { t.Position = backend.Vec3{X: a.X, Y: a.Y, Z: a.Z} })
	case protocol.Rotate:
		d.transform(a, a.Target, func(t *backend.Transform) { t.Rotation = backend.Vec3{X: a.X, Y: a.Y, Z: a.Z} })
	case protocol.Scale:
		d.transform(a, a.Target, func(t *backend.Transform) { t.Scale = backend.One.Scale(a.Factor) })
	case protocol.Memorize:
		return d.memorize(ctx, a)
	case protocol.Shell, protocol.ReadFile, protocol.WriteFile, protocol.WebSearch:
		return d.runTool(ctx, a)
	case protocol.Unknown:
		d.log.Warn("unknown action", zap.String("raw", a.Raw))
		d.store.Log(state.EntryWarning, "unknown action: "+a.Raw)
		return Result{Action: a, Outcome: Ignored}
	default:
		d.store.Log(state.EntryWarning, "unhandled action: "+a.Tag())
		return Result{Action: a, Outcome: Ignored}
	}
	return Result{Action: a, Outcome: Applied}
}

func (d *Dispatcher) set(a protocol.Action, fn func(*state.Snapshot)) {
	d.store.Update(func(s *state.Snapshot) {
		fn(s)
		s.Entries = append(s.Entries, state.Entry{At: d.now(), Kind: state.EntryAction, Text: describe(a)})
	})
}

func (d *Dispatcher) transform(a protocol.Action, target string, fn func(*backend.Transform)) {
	d.set(a, func(s *state.Snapshot) {
		t := s.TransformFor(target)
		fn(&t)
		if s.Transforms == nil {
			s.Transforms = make(map[string]backend.Transform)
		}
		s.Transforms[target] = t
	})
}

func (d *Dispatcher) memorize(ctx context.Context, a protocol.Memorize) Result {
	if d.memory == nil {
		return d.fail(a, "memorize", ErrNoMemory)
	}
	rec, err := d.memory.Save(ctx, semantic.Record{Content: a.Content, Timestamp: d.now().UTC()})
	if err != nil {
		return d.fail(a, "memorize", err)
	}
	return d.succeed(a, "memorize", map[string]string{"id": rec.ID})
}

func (d *Dispatcher) runTool(ctx context.Context, a protocol.Action) Result {
	name := toolName(a)
	if d.tools == nil {
		return d.fail(a, name, ErrNoTools)
	}
	var (
		out any
		err error
	)
	switch a := a.(type) {
	case protocol.Shell:
		var s string
		s, err = d.tools.Shell(ctx, a.Command)
		out = map[string]string{"output": s}
	case protocol.ReadFile:
		var s string
		s, err = d.tools.ReadFile(ctx, a.Path)
		out = map[string]string{"path": a.Path, "content": s}
	case protocol.WriteFile:
		err = d.tools.WriteFile(ctx, a.Path, a.Content)
		out = map[string]string{"written": a.Path}
	case protocol.WebSearch:
		var s string
		s, err = d.tools.WebSearch(ctx, a.Query)
		out = map[string]string{"query": a.Query, "results": s}
	}
	if err != nil {
		return d.fail(a, name, err)
	}
	return d.succeed(a, name, out)
}

func (d *Dispatcher) succeed(a protocol.Action, tool string, value any) Result {
	seg, err := protocol.FormatResult(tool, value)
	if err != nil {
		return d.fail(a, tool, err)
	}
	d.store.Update(func(s *state.Snapshot) {
		s.Entries = append(s.Entries,
			state.Entry{At: d.now(), Kind: state.EntryAction, Text: describe(a)},
			state.Entry{At: d.now(), Kind: state.EntryResult, Text: seg})
	})
	return Result{Action: a, Outcome: Applied, Segment: seg}
}

func (d *Dispatcher) fail(a protocol.Action, tool string, err error) Result {
	d.log.Warn("action failed", zap.String("action", a.Tag()), zap.Error(err))
	seg, _ := protocol.FormatResult(tool, map[string]string{"error": err.Error()})
	d.store.Update(func(s *state.Snapshot) {
		s.Entries = append(s.Entries,
			state.Entry{At: d.now(), Kind: state.EntryWarning, Text: fmt.Sprintf("%s failed: %v", a.Tag(), err)},
			state.Entry{At: d.now(), Kind: state.EntryResult, Text: seg})
	})
	return Result{Action: a, Outcome: Failed, Segment: seg, Err: err}
}

func toolName(a protocol.Action) string {
	switch a.(type) {
	case protocol.Shell:
		return "shell"
	case protocol.ReadFile:
		return "read_file"
	case protocol.WriteFile:
		return "write_file"
	case protocol.WebSearch:
		return "web_search"
	default:
		return "unknown"
	}
}

func describe(a protocol.Action) string {
	if s, err := protocol.Format(a); err == nil {
		return s
	}
	return a.Tag()
}
