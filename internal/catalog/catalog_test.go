package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/facet/internal/backend"
	"github.com/five82/facet/internal/backend/ai"
	"github.com/five82/facet/internal/backend/canvas"
	"github.com/five82/facet/internal/backend/spatial"
	"github.com/five82/facet/internal/backend/term"
	"github.com/five82/facet/internal/protocol"
	"github.com/five82/facet/internal/semantic"
	"github.com/five82/facet/internal/state"
	"github.com/five82/facet/internal/style"
)

func ctxWidth(w float64) style.Context {
	return style.NewContext(style.DefaultTokens(), style.Size{Width: w, Height: 800})
}

func snapAt(p protocol.Page) state.Snapshot {
	snap := state.Defaults()
	snap.Page = p
	return snap
}

func TestEveryPageRendersOnEveryBackend(t *testing.T) {
	ctx := ctxWidth(1280)
	for _, p := range protocol.Pages() {
		t.Run(p.String(), func(t *testing.T) {
			snap := snapAt(p)

			desc := Screen[string](snap).Describe(ctx)
			require.NoError(t, desc.Validate())

			out := Screen[string](snap).Render(ctx, term.New[Msg]())
			assert.Contains(t, term.Strip(out), p.DisplayName())

			node := Screen[semantic.Node](snap).Render(ctx, ai.New[Msg]())
			assert.NoError(t, node.Validate())

			scene := Screen[spatial.Node[Msg]](snap).Render(ctx, spatial.New[Msg]())
			assert.NotEmpty(t, scene.Role)

			graph := Screen[canvas.Node[Msg]](snap).Render(ctx, canvas.New[Msg]())
			assert.Greater(t, graph.Count(), 1)
		})
	}
}

func TestProtectedPagesAreMarked(t *testing.T) {
	ctx := ctxWidth(1280)
	for _, p := range []protocol.Page{protocol.PageRoadmap, protocol.PageSettingsAI} {
		desc := Page[string](snapAt(p)).Describe(ctx)
		assert.True(t, desc.Protected, p.String())
		assert.Equal(t, protocol.ProtectionReason(protocol.Navigate{Page: p}), desc.ProtectionReason)
	}
	assert.False(t, Page[string](snapAt(protocol.PageColors)).Describe(ctx).Protected)
}

func TestSidebarHiddenOnMobile(t *testing.T) {
	snap := snapAt(protocol.PageIntroduction)

	_, ok := Screen[string](snap).Describe(ctxWidth(1280)).FindByTag("sidebar")
	assert.True(t, ok)

	_, ok = Screen[string](snap).Describe(ctxWidth(400)).FindByTag("sidebar")
	assert.False(t, ok)
}

func TestSidebarProtectsGuardedPages(t *testing.T) {
	desc := Screen[string](snapAt(protocol.PageLanding)).Describe(ctxWidth(1280))
	sidebar, ok := desc.FindByTag("sidebar")
	require.True(t, ok)

	var protected []string
	sidebar.Walk(func(_ int, n semantic.Node) bool {
		if n.Protected {
			protected = append(protected, n.ProtectionReason)
		}
		return true
	})
	assert.ElementsMatch(t, []string{
		"Accessing vision-critical roadmap data",
		"Accessing AI configuration and API keys",
	}, protected)
}

func TestCanvasControlsEmitActions(t *testing.T) {
	ctx := ctxWidth(1280)
	snap := snapAt(protocol.PageButton)
	snap.ButtonIntent = style.IntentWarning

	graph := Screen[canvas.Node[Msg]](snap).Render(ctx, canvas.New[Msg]())
	var got []Msg
	sink := backend.Sink[Msg](func(m Msg) { got = append(got, m) })

	require.True(t, graph.Press("lab_preview", sink))
	require.True(t, graph.Type("search", "bbolt", sink))
	assert.Equal(t, []Msg{
		protocol.SetButtonIntent{Intent: style.IntentWarning},
		protocol.WebSearch{Query: "bbolt"},
	}, got)
}

func TestButtonLabReflectsState(t *testing.T) {
	snap := snapAt(protocol.PageButton)
	snap.ButtonVariant = style.VariantOutline
	snap.ButtonIntent = style.IntentDanger

	out := term.Strip(Page[string](snap).Render(ctxWidth(1280), term.New[Msg]()))
	assert.Contains(t, out, "Preview")
	for _, v := range style.Variants() {
		assert.Contains(t, out, v.String())
	}
}

func TestSpatialActionsMoveTaggedViews(t *testing.T) {
	snap := snapAt(protocol.PageLanding)
	snap.Transforms = map[string]backend.Transform{
		HeroTarget: {Position: backend.Vec3{X: 5, Y: 1, Z: 2}, Scale: backend.One},
	}

	scene := Page[spatial.Node[Msg]](snap).Render(ctxWidth(1280), spatial.New[Msg]())
	var moved bool
	scene.Walk(func(_ int, n spatial.Node[Msg]) {
		if n.Transform.Position.X == 5 && n.Transform.Position.Z == 2 {
			moved = true
		}
	})
	assert.True(t, moved)

	desc := Page[string](snap).Describe(ctxWidth(1280))
	hero, ok := desc.FindByTag(HeroTarget)
	require.True(t, ok)
	assert.NotEmpty(t, hero.Children)
}

func TestAPISchemaListsEveryVariant(t *testing.T) {
	out := term.Strip(Page[string](snapAt(protocol.PageAPISchema)).Render(ctxWidth(1280), term.New[Msg]()))
	for _, v := range protocol.Variants() {
		assert.True(t, strings.Contains(out, v.Tag), v.Tag)
	}
}

func TestAPISchemaDocumentsApproval(t *testing.T) {
	desc := Page[string](snapAt(protocol.PageAPISchema)).Describe(ctxWidth(1280))
	docs := map[string]bool{}
	desc.Walk(func(_ int, n semantic.Node) bool {
		if n.Documentation != "" {
			docs[n.Documentation] = true
		}
		return true
	})
	assert.True(t, docs["Protected: always"], "shell row")
	assert.True(t, docs["Protected: when the page is Roadmap or SettingsAI"], "navigate row")
}

func TestPlaceholderForUndocumentedPages(t *testing.T) {
	desc := Page[string](snapAt(protocol.PageCommunity)).Describe(ctxWidth(1280))
	_, ok := desc.FindDeep(func(n semantic.Node) bool {
		return strings.Contains(n.Content, "Community is documented elsewhere")
	})
	assert.True(t, ok)
}

func TestRenderEveryMode(t *testing.T) {
	snap := snapAt(protocol.PageShapes)
	ctx := Context(snap, style.Size{Width: 1280, Height: 800})

	for _, mode := range style.RenderModes() {
		t.Run(mode.String(), func(t *testing.T) {
			out, err := Render(snap, mode, ctx)
			require.NoError(t, err)
			assert.NotEmpty(t, out)
		})
	}

	neural, err := Render(snap, style.ModeNeural, ctx)
	require.NoError(t, err)
	node, err := semantic.Unmarshal([]byte(neural))
	require.NoError(t, err)
	assert.NoError(t, node.Validate())
	assert.NoError(t, Describe(snap, ctx).Validate())

	canvasOut, err := Render(snap, style.ModeCanvas, ctx)
	require.NoError(t, err)
	assert.Contains(t, canvasOut, "role:")

	_, err = Render(snap, style.RenderMode(99), ctx)
	assert.Error(t, err)
}

func TestContextUsesSnapshotTheme(t *testing.T) {
	snap := state.Defaults()
	snap.ThemeKind = style.ThemeMono
	snap.Tone = style.ToneLight

	ctx := Context(snap, style.Size{Width: 390, Height: 844})
	assert.Equal(t, style.ThemeMono, ctx.Theme.Kind)
	assert.Equal(t, style.ToneLight, ctx.Theme.Tone)
	assert.Equal(t, style.DeviceMobile, ctx.Device)
}
