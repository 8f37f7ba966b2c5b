package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"

	"github.com/five82/facet/internal/catalog"
	"github.com/five82/facet/internal/dispatch"
	"github.com/five82/facet/internal/prefs"
	"github.com/five82/facet/internal/protocol"
	"github.com/five82/facet/internal/state"
	"github.com/five82/facet/internal/style"
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Dispatcher *dispatch.Dispatcher
	// Size is the virtual window the catalog is laid out for. Zero uses
	// 1280x800.
	Size      style.Size
	Locale    language.Tag
	PollTick  time.Duration
	Prefs     prefs.Prefs
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx        context.Context
	dispatcher *dispatch.Dispatcher
	store      *state.Store
	prefsPath  string
	saved      prefs.Prefs
	pollTick   time.Duration
	locale     language.Tag
	sizes      []style.Size
	sizeIdx    int

	// UI state
	keys     keyMap
	help     help.Model
	styles   Styles
	width    int
	height   int
	ready    bool
	showHelp bool

	// Data state
	snapshot    state.Snapshot
	lastUpdated time.Time

	preview     viewport.Model
	input       textinput.Model
	inputActive bool

	status    string
	statusErr bool
}

var defaultSize = style.Size{Width: 1280, Height: 800}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	d := opts.Dispatcher
	if d == nil {
		d = dispatch.New(dispatch.Options{})
	}
	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = 250 * time.Millisecond
	}
	size := opts.Size
	if size.Width <= 0 || size.Height <= 0 {
		size = defaultSize
	}
	locale := opts.Locale
	if locale == language.Und {
		locale = language.English
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	ti := textinput.New()
	ti.Placeholder = `agent text, e.g. [action: {"Navigate": "Colors"})]`
	ti.Prompt = "> "
	ti.CharLimit = 4096

	snap := d.Store().Snapshot()
	return Model{
		ctx:        ctx,
		dispatcher: d,
		store:      d.Store(),
		prefsPath:  prefsPath,
		saved:      opts.Prefs,
		pollTick:   pollTick,
		locale:     locale,
		sizes: []style.Size{
			size,
			{Width: 820, Height: 1180},
			{Width: 390, Height: 844},
		},
		keys:     DefaultKeyMap(),
		help:     help.New(),
		styles:   NewStyles(snap.Tokens()),
		snapshot: snap,
		input:    ti,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(m.pollTick),
		fetchSnapshotCmd(m.store),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.preview = viewport.New(m.previewWidth(), m.previewHeight())
		}
		m.ready = true
		m.preview.Width = m.previewWidth()
		m.preview.Height = m.previewHeight()
		m.help.Width = m.width
		m.input.Width = max(m.width-4, 10)
		m.updatePreview()
		return m, nil

	case tickMsg:
		return m, tea.Batch(fetchSnapshotCmd(m.store), tickCmd(m.pollTick))

	case snapshotMsg:
		snap := state.Snapshot(msg)
		if m.lastUpdated.IsZero() || snap.Revision != m.snapshot.Revision {
			m.applySnapshot(snap)
		}
		return m, nil

	case dispatchedMsg:
		m.handleDispatched(msg)
		return m, fetchSnapshotCmd(m.store)
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.snapshot.HasPending {
		return m.renderSudo(m.snapshot.Pending)
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if m.inputActive {
		return m.handleInputKey(msg)
	}
	// The approval dialog is modal.
	if m.snapshot.HasPending {
		switch {
		case key.Matches(msg, m.keys.Approve):
			return m, approveCmd(m.ctx, m.dispatcher)
		case key.Matches(msg, m.keys.Deny):
			return m, denyCmd(m.dispatcher)
		case msg.String() == "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.CycleTheme):
		return m, dispatchCmd(m.ctx, m.dispatcher, protocol.SetThemeKind{Kind: m.snapshot.ThemeKind.Next()})
	case key.Matches(msg, m.keys.ToggleTone):
		return m, dispatchCmd(m.ctx, m.dispatcher, protocol.SetThemeTone{Tone: m.snapshot.Tone.Toggle()})
	case key.Matches(msg, m.keys.CycleMode):
		return m, dispatchCmd(m.ctx, m.dispatcher, protocol.SetLabMode{Mode: m.snapshot.Mode.Next()})
	case key.Matches(msg, m.keys.CycleSize):
		m.sizeIdx = (m.sizeIdx + 1) % len(m.sizes)
		m.updatePreview()
	case key.Matches(msg, m.keys.NextPage):
		return m, dispatchCmd(m.ctx, m.dispatcher, protocol.Navigate{Page: m.adjacentPage(1)})
	case key.Matches(msg, m.keys.PrevPage):
		return m, dispatchCmd(m.ctx, m.dispatcher, protocol.Navigate{Page: m.adjacentPage(-1)})
	case key.Matches(msg, m.keys.Input):
		m.inputActive = true
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Down):
		m.preview.ScrollDown(1)
	case key.Matches(msg, m.keys.Up):
		m.preview.ScrollUp(1)
	case key.Matches(msg, m.keys.Top):
		m.preview.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.preview.GotoBottom()
	case key.Matches(msg, m.keys.HalfPageDown):
		m.preview.HalfPageDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.preview.HalfPageUp()
	}
	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.inputActive = false
		m.input.Blur()
		m.input.Reset()
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		text := strings.TrimSpace(m.input.Value())
		m.inputActive = false
		m.input.Blur()
		m.input.Reset()
		if text == "" {
			return m, nil
		}
		return m, dispatchTextCmd(m.ctx, m.dispatcher, text)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// adjacentPage steps through the sidebar order. Pages outside it start
// from the first entry.
func (m Model) adjacentPage(step int) protocol.Page {
	nav := catalog.Navigation
	for i, p := range nav {
		if p == m.snapshot.Page {
			return nav[(i+step+len(nav))%len(nav)]
		}
	}
	return nav[0]
}

func (m *Model) applySnapshot(snap state.Snapshot) {
	m.snapshot = snap
	m.lastUpdated = time.Now()
	m.styles = NewStyles(snap.Tokens())
	m.updatePreview()
	m.savePrefs()
}

// savePrefs persists appearance changes, whatever their source.
func (m *Model) savePrefs() {
	current := prefs.Prefs{Theme: m.snapshot.ThemeKind, Tone: m.snapshot.Tone, Mode: m.snapshot.Mode}
	if current == m.saved {
		return
	}
	if err := prefs.Save(m.prefsPath, current); err != nil {
		m.setStatus(fmt.Sprintf("save preferences: %v", err), true)
		return
	}
	m.saved = current
}

func (m *Model) handleDispatched(msg dispatchedMsg) {
	if msg.err != nil {
		if errors.Is(msg.err, dispatch.ErrNoPending) {
			m.setStatus("nothing to approve", false)
			return
		}
		m.setStatus(msg.err.Error(), true)
		return
	}
	if len(msg.results) == 0 {
		m.setStatus("no actions found", false)
		return
	}
	parts := make([]string, 0, len(msg.results))
	failed := false
	for _, res := range msg.results {
		tag := "?"
		if res.Action != nil {
			tag = res.Action.Tag()
		}
		parts = append(parts, tag+" "+res.Outcome.String())
		failed = failed || res.Outcome == dispatch.Failed
	}
	m.setStatus(strings.Join(parts, ", "), failed)
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m Model) renderContext() style.Context {
	ctx := catalog.Context(m.snapshot, m.sizes[m.sizeIdx])
	return ctx.WithLocale(m.locale)
}

func (m *Model) updatePreview() {
	if !m.ready {
		return
	}
	out, err := catalog.Render(m.snapshot, m.snapshot.Mode, m.renderContext())
	if err != nil {
		out = m.styles.DangerText.Render(err.Error())
	}
	m.preview.SetContent(out)
}

func (m Model) previewWidth() int { return max(m.width-2, 10) }

// previewHeight leaves room for header, frame, activity, input and footer.
func (m Model) previewHeight() int { return max(m.height-6, 3) }

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.styles.Frame.Width(m.previewWidth()).Render(m.preview.View()))
	b.WriteString("\n")
	b.WriteString(m.renderActivity())
	b.WriteString("\n")
	if m.inputActive {
		b.WriteString(m.input.View())
	} else {
		b.WriteString(m.renderStatus())
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) renderHeader() string {
	styles := m.styles
	snap := m.snapshot
	size := m.sizes[m.sizeIdx]
	parts := []string{
		styles.Logo.Render("facet"),
		styles.Text.Bold(true).Render(snap.Page.DisplayName()),
		styles.Badge.Render(snap.Mode.String()),
		styles.IntentStyle(snap.Tokens(), style.IntentInfo).Render(fmt.Sprintf("%s %s", snap.ThemeKind, snap.Tone)),
		styles.MutedText.Render(fmt.Sprintf("%s %.0fx%.0f", style.DeviceForWidth(size.Width), size.Width, size.Height)),
		styles.FaintText.Render(fmt.Sprintf("rev %d", snap.Revision)),
	}
	return styles.Header.Width(m.width).Render(strings.Join(parts, "  "))
}

// renderActivity shows the newest log entry.
func (m Model) renderActivity() string {
	entries := m.snapshot.Entries
	if len(entries) == 0 {
		return m.styles.FaintText.Render("no activity yet")
	}
	e := entries[len(entries)-1]
	line := fmt.Sprintf("%s %s %s", e.At.Format("15:04:05"), padRight(e.Kind.String(), 8), e.Text)
	line = truncate(strings.ReplaceAll(line, "\n", " "), max(m.width, 20))
	if e.Kind == state.EntryWarning {
		return m.styles.WarningText.Render(line)
	}
	return m.styles.MutedText.Render(line)
}

func (m Model) renderStatus() string {
	if m.snapshot.LastError != nil {
		return m.styles.DangerText.Render(truncate(m.snapshot.LastError.Error(), max(m.width, 20)))
	}
	text := ternary(m.status == "", "ready", m.status)
	if m.statusErr {
		return m.styles.DangerText.Render(text)
	}
	return m.styles.InfoText.Render(text)
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type dispatchedMsg struct {
	results []dispatch.Result
	err     error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func dispatchCmd(ctx context.Context, d *dispatch.Dispatcher, a protocol.Action) tea.Cmd {
	return func() tea.Msg {
		return dispatchedMsg{results: []dispatch.Result{d.Dispatch(ctx, a)}}
	}
}

func dispatchTextCmd(ctx context.Context, d *dispatch.Dispatcher, text string) tea.Cmd {
	return func() tea.Msg {
		return dispatchedMsg{results: d.DispatchText(ctx, text)}
	}
}

func approveCmd(ctx context.Context, d *dispatch.Dispatcher) tea.Cmd {
	return func() tea.Msg {
		res, err := d.Approve(ctx)
		if err != nil {
			return dispatchedMsg{err: err}
		}
		return dispatchedMsg{results: []dispatch.Result{res}}
	}
}

func denyCmd(d *dispatch.Dispatcher) tea.Cmd {
	return func() tea.Msg {
		p, err := d.Deny()
		if err != nil {
			return dispatchedMsg{err: err}
		}
		return dispatchedMsg{results: []dispatch.Result{{Action: p.Action, Outcome: dispatch.Ignored}}}
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
