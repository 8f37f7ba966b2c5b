package dispatch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/five82/facet/internal/backend"
	"github.com/five82/facet/internal/protocol"
	"github.com/five82/facet/internal/semantic"
	"github.com/five82/facet/internal/state"
	"github.com/five82/facet/internal/style"
)

type fakeTools struct {
	calls []string
	err   error
}

func (f *fakeTools) Shell(_ context.Context, command string) (string, error) {
	f.calls = append(f.calls, "shell:"+command)
	return "out:" + command, f.err
}

func (f *fakeTools) ReadFile(_ context.Context, path string) (string, error) {
	f.calls = append(f.calls, "read:"+path)
	return "contents", f.err
}

func (f *fakeTools) WriteFile(_ context.Context, path, content string) error {
	f.calls = append(f.calls, "write:"+path+"="+content)
	return f.err
}

func (f *fakeTools) WebSearch(_ context.Context, query string) (string, error) {
	f.calls = append(f.calls, "search:"+query)
	return "hits", f.err
}

type fakeMemory struct {
	saved []semantic.Record
	err   error
}

func (f *fakeMemory) Save(_ context.Context, rec semantic.Record) (semantic.Record, error) {
	if f.err != nil {
		return semantic.Record{}, f.err
	}
	rec.ID = "rec-1"
	f.saved = append(f.saved, rec)
	return rec, nil
}

func newTestDispatcher(t *testing.T) (*Dispatcher, *fakeTools, *fakeMemory) {
	t.Helper()
	tools := &fakeTools{}
	mem := &fakeMemory{}
	d := New(Options{Store: state.NewStore(state.Defaults()), Tools: tools, Memory: mem})
	return d, tools, mem
}

func TestDispatchAppliesStateActions(t *testing.T) {
	d, _, _ := newTestDispatcher(t)
	ctx := context.Background()

	results := d.DispatchText(ctx, `Switching. [action: {"SetThemeKind": "Mountain"})] `+
		`[action: {"SetThemeTone": "light"})] [action: {"SetLabMode": "Spatial"})] `+
		`[action: {"Navigate": "Introduction"})] [action: {"SetButtonVariant": "Outline"})] `+
		`[action: {"SetButtonIntent": "Danger"})]`)
	require.Len(t, results, 6)
	for _, r := range results {
		assert.Equal(t, Applied, r.Outcome, r.Action.Tag())
	}

	snap := d.Store().Snapshot()
	assert.Equal(t, style.ThemeMountain, snap.ThemeKind)
	assert.Equal(t, style.ToneLight, snap.Tone)
	assert.Equal(t, style.ModeSpatial, snap.Mode)
	assert.Equal(t, protocol.PageIntroduction, snap.Page)
	assert.Equal(t, style.VariantOutline, snap.ButtonVariant)
	assert.Equal(t, style.IntentDanger, snap.ButtonIntent)

	require.NotEmpty(t, snap.Entries)
	assert.Equal(t, state.EntryText, snap.Entries[0].Kind)
	assert.Equal(t, "Switching.", snap.Entries[0].Text)
}

func TestDispatchSpatialTransformsPerTarget(t *testing.T) {
	d, _, _ := newTestDispatcher(t)
	ctx := context.Background()

	d.Dispatch(ctx, protocol.Teleport{Target: "hero", X: 1, Y: 2, Z: 3})
	d.Dispatch(ctx, protocol.Scale{Target: "hero", Factor: 2})
	d.Dispatch(ctx, protocol.Rotate{Target: "cube", Y: 90})

	snap := d.Store().Snapshot()
	hero := snap.TransformFor("hero")
	assert.Equal(t, backend.Vec3{X: 1, Y: 2, Z: 3}, hero.Position)
	assert.Equal(t, backend.Vec3{X: 2, Y: 2, Z: 2}, hero.Scale)

	cube := snap.TransformFor("cube")
	assert.Equal(t, backend.Vec3{Y: 90}, cube.Rotation)
	assert.Equal(t, backend.One, cube.Scale)
}

func TestProtectedActionsAreHeld(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	tools := &fakeTools{}
	d := New(Options{Tools: tools, Logger: zap.New(core)})
	ctx := context.Background()

	r := d.Dispatch(ctx, protocol.Shell{Command: "ls"})
	assert.Equal(t, Held, r.Outcome)
	assert.Empty(t, tools.calls)

	p, ok := d.Pending()
	require.True(t, ok)
	assert.Equal(t, protocol.Shell{Command: "ls"}, p.Action)
	assert.Equal(t, "Execute shell command: `ls`", p.Reason)
	assert.Equal(t, 1, logs.FilterMessage("neural sudo: holding protected action").Len())

	res, err := d.Approve(ctx)
	require.NoError(t, err)
	assert.Equal(t, Applied, res.Outcome)
	assert.Equal(t, `[result:shell] {"output":"out:ls"}`, res.Segment)
	assert.Equal(t, []string{"shell:ls"}, tools.calls)

	_, ok = d.Pending()
	assert.False(t, ok)
	_, err = d.Approve(ctx)
	assert.ErrorIs(t, err, ErrNoPending)
}

func TestNewerProtectedActionReplacesPending(t *testing.T) {
	d, _, _ := newTestDispatcher(t)
	ctx := context.Background()

	d.Dispatch(ctx, protocol.Navigate{Page: protocol.PageRoadmap})
	d.Dispatch(ctx, protocol.Navigate{Page: protocol.PageSettingsAI})

	p, ok := d.Pending()
	require.True(t, ok)
	assert.Equal(t, protocol.Navigate{Page: protocol.PageSettingsAI}, p.Action)
	assert.Equal(t, protocol.PageLanding, d.Store().Snapshot().Page)

	denied, err := d.Deny()
	require.NoError(t, err)
	assert.Equal(t, p.Action, denied.Action)
	assert.Equal(t, protocol.PageLanding, d.Store().Snapshot().Page)

	_, err = d.Deny()
	assert.ErrorIs(t, err, ErrNoPending)

	var superseded bool
	for _, e := range d.Store().Snapshot().Entries {
		if e.Kind == state.EntryWarning && strings.Contains(e.Text, "superseded") {
			superseded = true
		}
	}
	assert.True(t, superseded)
}

func TestApproveNavigation(t *testing.T) {
	d, _, _ := newTestDispatcher(t)
	ctx := context.Background()

	d.DispatchText(ctx, `[action: {"Navigate": "Roadmap"})]`)
	_, err := d.Approve(ctx)
	require.NoError(t, err)
	assert.Equal(t, protocol.PageRoadmap, d.Store().Snapshot().Page)
}

func TestToolActions(t *testing.T) {
	d, tools, _ := newTestDispatcher(t)
	ctx := context.Background()

	results := []Result{
		d.Dispatch(ctx, protocol.ReadFile{Path: "go.mod"}),
		d.Dispatch(ctx, protocol.WriteFile{Path: "a.txt", Content: "hi"}),
		d.Dispatch(ctx, protocol.WebSearch{Query: "bbolt"}),
	}
	assert.Equal(t, []string{"read:go.mod", "write:a.txt=hi", "search:bbolt"}, tools.calls)
	assert.Equal(t, `[result:read_file] {"content":"contents","path":"go.mod"}`, results[0].Segment)
	assert.Equal(t, `[result:write_file] {"written":"a.txt"}`, results[1].Segment)
	assert.Equal(t, `[result:web_search] {"query":"bbolt","results":"hits"}`, results[2].Segment)

	parts := protocol.SplitTextAndActions(results[0].Segment)
	require.Len(t, parts, 1)
	assert.IsType(t, protocol.ToolResultPart{}, parts[0])
}

func TestToolFailureIsReported(t *testing.T) {
	d, tools, _ := newTestDispatcher(t)
	tools.err = errors.New("disk full")

	r := d.Dispatch(context.Background(), protocol.WriteFile{Path: "a", Content: "b"})
	assert.Equal(t, Failed, r.Outcome)
	assert.EqualError(t, r.Err, "disk full")
	assert.Equal(t, `[result:write_file] {"error":"disk full"}`, r.Segment)
}

func TestMissingCollaborators(t *testing.T) {
	d := New(Options{})
	ctx := context.Background()

	r := d.Dispatch(ctx, protocol.ReadFile{Path: "x"})
	assert.ErrorIs(t, r.Err, ErrNoTools)

	r = d.Dispatch(ctx, protocol.Memorize{Content: "x"})
	assert.ErrorIs(t, r.Err, ErrNoMemory)

	assert.Equal(t, Ignored, d.Dispatch(ctx, nil).Outcome)
}

func TestMemorize(t *testing.T) {
	d, _, mem := newTestDispatcher(t)

	r := d.Dispatch(context.Background(), protocol.Memorize{Content: "likes tea"})
	assert.Equal(t, Applied, r.Outcome)
	assert.Equal(t, `[result:memorize] {"id":"rec-1"}`, r.Segment)
	require.Len(t, mem.saved, 1)
	assert.Equal(t, "likes tea", mem.saved[0].Content)
}

func TestUnknownActionsBecomeWarnings(t *testing.T) {
	d, _, _ := newTestDispatcher(t)

	results := d.DispatchText(context.Background(), `[action: {"Launch": "rocket"})]`)
	require.Len(t, results, 1)
	assert.Equal(t, Ignored, results[0].Outcome)

	entries := d.Store().Snapshot().Entries
	require.NotEmpty(t, entries)
	last := entries[len(entries)-1]
	assert.Equal(t, state.EntryWarning, last.Kind)
	assert.Contains(t, last.Text, "Launch")
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "held", Held.String())
	assert.Equal(t, "unknown", Outcome(42).String())
}

func TestLocalTools(t *testing.T) {
	root := t.TempDir()
	tools := LocalTools{Root: root}
	ctx := context.Background()

	require.NoError(t, tools.WriteFile(ctx, "sub/note.txt", "hello"))
	got, err := tools.ReadFile(ctx, "sub/note.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)

	_, err = tools.ReadFile(ctx, "../escape.txt")
	assert.ErrorIs(t, err, ErrOutsideRoot)
	_, err = tools.ReadFile(ctx, filepath.Join(os.TempDir(), "elsewhere"))
	assert.ErrorIs(t, err, ErrOutsideRoot)

	out, err := tools.Shell(ctx, "cat sub/note.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", out)

	_, err = tools.WebSearch(ctx, "x")
	assert.ErrorIs(t, err, errors.ErrUnsupported)

	small := LocalTools{Root: root, MaxOutput: 3}
	got, err = small.ReadFile(ctx, "sub/note.txt")
	require.NoError(t, err)
	assert.Equal(t, "hel\n[truncated]", got)
}

func TestLocalToolsTruncatesOnRuneBoundary(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "accents.txt"), []byte("aéé"), 0o644))

	tools := LocalTools{Root: root, MaxOutput: 2}
	got, err := tools.ReadFile(context.Background(), "accents.txt")
	require.NoError(t, err)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, "a\n[truncated]", got)

	tools.MaxOutput = 3
	got, err = tools.ReadFile(context.Background(), "accents.txt")
	require.NoError(t, err)
	assert.Equal(t, "aé\n[truncated]", got)
}

func TestLocalToolsRejectsSymlinkEscape(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(outside, "secret.txt"), []byte("secret"), 0o644))
	require.NoError(t, os.Symlink(outside, filepath.Join(root, "link")))
	require.NoError(t, os.Symlink(filepath.Join(outside, "secret.txt"), filepath.Join(root, "secret.txt")))

	tools := LocalTools{Root: root}
	ctx := context.Background()

	_, err := tools.ReadFile(ctx, "link/secret.txt")
	assert.ErrorIs(t, err, ErrOutsideRoot)
	_, err = tools.ReadFile(ctx, "secret.txt")
	assert.ErrorIs(t, err, ErrOutsideRoot)

	err = tools.WriteFile(ctx, "link/new.txt", "x")
	assert.ErrorIs(t, err, ErrOutsideRoot)
	err = tools.WriteFile(ctx, "link/deeper/new.txt", "x")
	assert.ErrorIs(t, err, ErrOutsideRoot)
	assert.NoFileExists(t, filepath.Join(outside, "new.txt"))
	assert.NoDirExists(t, filepath.Join(outside, "deeper"))

	require.NoError(t, os.Mkdir(filepath.Join(root, "inner"), 0o755))
	require.NoError(t, os.Symlink("inner", filepath.Join(root, "alias")))
	require.NoError(t, tools.WriteFile(ctx, "alias/ok.txt", "fine"))
	got, err := tools.ReadFile(ctx, "inner/ok.txt")
	require.NoError(t, err)
	assert.Equal(t, "fine", got)
}
