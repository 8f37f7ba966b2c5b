package ui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/facet/internal/dispatch"
	"github.com/five82/facet/internal/prefs"
	"github.com/five82/facet/internal/protocol"
	"github.com/five82/facet/internal/state"
	"github.com/five82/facet/internal/style"
)

func newTestModel(t *testing.T) (Model, *state.Store, string) {
	t.Helper()
	store := state.NewStore(state.Defaults())
	path := filepath.Join(t.TempDir(), "prefs.toml")
	m := New(Options{
		Dispatcher: dispatch.New(dispatch.Options{Store: store}),
		PrefsPath:  path,
		Prefs:      prefs.Defaults(),
	})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(Model), store, path
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends msg and feeds dispatch and snapshot results back into the
// model until it settles.
func press(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(Model)
	for i := 0; cmd != nil && i < 4; i++ {
		out := cmd()
		switch out.(type) {
		case dispatchedMsg, snapshotMsg:
		default:
			return m
		}
		next, cmd = m.Update(out)
		m = next.(Model)
	}
	return m
}

func TestViewBeforeWindowSize(t *testing.T) {
	m := New(Options{})
	if got := m.View(); got != "Loading..." {
		t.Fatalf("View() = %q, want Loading...", got)
	}
}

func TestViewShowsPreview(t *testing.T) {
	m, store, _ := newTestModel(t)
	m = press(t, m, snapshotMsg(store.Snapshot()))

	view := m.View()
	for _, want := range []string{"facet", "One tree. Every surface.", "Terminal"} {
		if !strings.Contains(view, want) {
			t.Fatalf("View() missing %q:\n%s", want, view)
		}
	}
}

func TestModeKeyCyclesRenderModeAndSavesPrefs(t *testing.T) {
	m, store, path := newTestModel(t)
	before := store.Snapshot().Mode

	m = press(t, m, keyRunes("m"))

	want := before.Next()
	if got := store.Snapshot().Mode; got != want {
		t.Fatalf("mode = %v, want %v", got, want)
	}
	if m.snapshot.Mode != want {
		t.Fatalf("model mode = %v, want %v", m.snapshot.Mode, want)
	}
	saved, err := prefs.Load(path)
	if err != nil {
		t.Fatalf("prefs.Load: %v", err)
	}
	if saved.Mode != want {
		t.Fatalf("saved mode = %v, want %v", saved.Mode, want)
	}
}

func TestThemeKeys(t *testing.T) {
	m, store, _ := newTestModel(t)
	start := store.Snapshot()

	m = press(t, m, keyRunes("T"))
	m = press(t, m, keyRunes("t"))

	snap := store.Snapshot()
	if snap.ThemeKind != start.ThemeKind.Next() {
		t.Fatalf("theme = %v, want %v", snap.ThemeKind, start.ThemeKind.Next())
	}
	if snap.Tone != start.Tone.Toggle() {
		t.Fatalf("tone = %v, want %v", snap.Tone, start.Tone.Toggle())
	}
	if m.status != "SetThemeTone applied" {
		t.Fatalf("status = %q", m.status)
	}
}

func TestProtectedNavigationNeedsApproval(t *testing.T) {
	m, store, _ := newTestModel(t)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if got := store.Snapshot().Page; got != protocol.PageIntroduction {
		t.Fatalf("page = %v, want Introduction", got)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.snapshot.HasPending {
		t.Fatalf("roadmap navigation should be held")
	}
	if view := m.View(); !strings.Contains(view, "Approval required") ||
		!strings.Contains(view, "Accessing vision-critical roadmap data") {
		t.Fatalf("sudo dialog not shown:\n%s", view)
	}

	// Other keys are swallowed while the dialog is open.
	m = press(t, m, keyRunes("m"))
	if store.Snapshot().Mode != state.Defaults().Mode {
		t.Fatalf("mode changed behind the dialog")
	}

	m = press(t, m, keyRunes("n"))
	if m.snapshot.HasPending {
		t.Fatalf("deny should clear the pending action")
	}
	if got := store.Snapshot().Page; got != protocol.PageIntroduction {
		t.Fatalf("page = %v after deny, want Introduction", got)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = press(t, m, keyRunes("y"))
	if got := store.Snapshot().Page; got != protocol.PageRoadmap {
		t.Fatalf("page = %v after approve, want Roadmap", got)
	}
	if m.snapshot.HasPending {
		t.Fatalf("approve should clear the pending action")
	}
}

func TestPrevPageWraps(t *testing.T) {
	m, store, _ := newTestModel(t)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})

	// Wrapping backwards from Introduction lands on the protected AI page.
	if !m.snapshot.HasPending {
		t.Fatalf("expected SettingsAI navigation to be held")
	}
	if got := m.snapshot.Pending.Action; got != (protocol.Navigate{Page: protocol.PageSettingsAI}) {
		t.Fatalf("pending = %#v", got)
	}
	if got := store.Snapshot().Page; got != protocol.PageIntroduction {
		t.Fatalf("page = %v, want Introduction", got)
	}
}

func TestInputDispatchesAgentText(t *testing.T) {
	m, store, _ := newTestModel(t)

	next, _ := m.Update(keyRunes("i"))
	m = next.(Model)
	if !m.inputActive {
		t.Fatalf("input should be active")
	}
	next, _ = m.Update(keyRunes(`Colors now. [action: {"Navigate": "Colors"})]`))
	m = next.(Model)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.inputActive {
		t.Fatalf("input should close after enter")
	}
	snap := store.Snapshot()
	if snap.Page != protocol.PageColors {
		t.Fatalf("page = %v, want Colors", snap.Page)
	}
	if m.status != "Navigate applied" {
		t.Fatalf("status = %q", m.status)
	}
	if len(snap.Entries) == 0 || snap.Entries[0].Text != "Colors now." {
		t.Fatalf("prose not logged: %#v", snap.Entries)
	}
}

func TestInputEscapeCancels(t *testing.T) {
	m, store, _ := newTestModel(t)
	before := store.Revision()

	next, _ := m.Update(keyRunes("i"))
	m = next.(Model)
	next, _ = m.Update(keyRunes("q"))
	m = next.(Model)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEscape})

	if m.inputActive || m.input.Value() != "" {
		t.Fatalf("escape should close and clear input")
	}
	if store.Revision() != before {
		t.Fatalf("nothing should be dispatched")
	}
}

func TestTextWithoutActions(t *testing.T) {
	m, _, _ := newTestModel(t)
	next, _ := m.Update(keyRunes("i"))
	m = next.(Model)
	next, _ = m.Update(keyRunes("just chatting"))
	m = next.(Model)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.status != "no actions found" {
		t.Fatalf("status = %q", m.status)
	}
}

func TestHelpOverlay(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = press(t, m, keyRunes("?"))
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Fatalf("help overlay not shown")
	}
	m = press(t, m, keyRunes("x"))
	if m.showHelp {
		t.Fatalf("any key should close help")
	}
}

func TestDeviceSizeCycles(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = press(t, m, keyRunes("d"))
	if got := style.DeviceForWidth(m.sizes[m.sizeIdx].Width); got != style.DeviceTablet {
		t.Fatalf("device = %v, want Tablet", got)
	}
	if !strings.Contains(m.renderHeader(), "Tablet") {
		t.Fatalf("header should name the device")
	}
	m = press(t, m, keyRunes("d"))
	m = press(t, m, keyRunes("d"))
	if m.sizeIdx != 0 {
		t.Fatalf("sizeIdx = %d, want wrap to 0", m.sizeIdx)
	}
}

func TestQuit(t *testing.T) {
	m, _, _ := newTestModel(t)
	_, cmd := m.Update(keyRunes("q"))
	if cmd == nil {
		t.Fatalf("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("quit command did not produce QuitMsg")
	}
}

func TestApproveWithoutPending(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.handleDispatched(dispatchedMsg{err: dispatch.ErrNoPending})
	if m.status != "nothing to approve" || m.statusErr {
		t.Fatalf("status = %q err=%v", m.status, m.statusErr)
	}
}
