package ai

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/facet/internal/backend"
	"github.com/five82/facet/internal/semantic"
	"github.com/five82/facet/internal/style"
)

type msg string

func testCtx() style.Context {
	return style.NewContext(style.DefaultTokens(), style.Size{Width: 800, Height: 600})
}

func TestStacksIncrementDepth(t *testing.T) {
	b := New[msg]()
	ctx := testCtx()

	inner := b.VStack([]semantic.Node{b.Text(backend.TextParams{Content: "a"}, ctx)}, backend.StackParams{}, ctx)
	outer := b.HStack([]semantic.Node{inner, b.Divider(ctx)}, backend.StackParams{}, ctx)

	require.Len(t, outer.Children, 2)
	assert.Equal(t, "hstack", outer.Role)
	assert.Equal(t, 1.0, outer.Children[0].DepthOr(-1))
	assert.Equal(t, 1.0, outer.Children[1].DepthOr(-1))
	assert.Equal(t, 1.0, outer.Children[0].Children[0].DepthOr(-1))

	wrapped := b.Wrap([]semantic.Node{semantic.New("x").WithDepth(2)}, backend.WrapParams{}, ctx)
	assert.Equal(t, 3.0, wrapped.Children[0].DepthOr(0))
}

func TestZStackAndGridKeepDepth(t *testing.T) {
	b := New[msg]()
	ctx := testCtx()
	kids := []semantic.Node{semantic.New("a"), semantic.New("b")}

	z := b.ZStack(kids, backend.ZStackParams{}, ctx)
	assert.Nil(t, z.Children[0].Depth)

	g := b.Grid(kids, backend.GridParams{Columns: 3}, ctx)
	assert.Equal(t, "grid", g.Role)
	assert.Equal(t, "columns: 3", g.Label)
}

func TestButtonNode(t *testing.T) {
	b := New[msg]()
	ctx := testCtx()
	press := msg("save")

	got := b.Button(b.Text(backend.TextParams{Content: "Save"}, ctx), backend.ButtonParams[msg]{
		ID:      "save",
		OnPress: &press,
		Variant: style.VariantGhost,
		Intent:  style.IntentDanger,
	}, ctx)

	want := semantic.New("button").
		WithID("save").
		WithLabel("Ghost_Danger").
		WithChildren(semantic.New("text").WithContent("Save"))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("button mismatch (-want +got):\n%s", diff)
	}
}

func TestControls(t *testing.T) {
	b := New[msg]()
	ctx := testCtx()

	item := b.SidebarItem(backend.SidebarItemParams[msg]{Title: "Home", Icon: "house", Selected: true}, ctx)
	assert.Equal(t, "Home", item.Label)
	assert.Equal(t, "house", item.Content)
	require.Len(t, item.Children, 1)
	assert.Equal(t, "selected", item.Children[0].Label)
	assert.Equal(t, "true", item.Children[0].Content)

	in := b.TextInput(backend.TextInputParams[msg]{Value: "abc"}, ctx)
	assert.Equal(t, "abc", in.Label)
	assert.Equal(t, "abc", in.Content)

	secret := b.TextInput(backend.TextInputParams[msg]{Value: "sk-123", Secure: true}, ctx)
	assert.NotContains(t, secret.Content, "sk-123")

	assert.Equal(t, "0.25", b.Slider(backend.SliderParams[msg]{Max: 1, Value: 0.25}, ctx).Content)

	tg := b.Toggle(backend.ToggleParams[msg]{Label: "Wifi"}, ctx)
	assert.Equal(t, "Wifi", tg.Label)
	assert.Equal(t, "false", tg.Content)
}

func TestShapesAndMedia(t *testing.T) {
	b := New[msg]()
	ctx := testCtx()

	c := b.Circle(backend.CircleParams{Radius: 12.5, Color: "#ff0000"}, ctx)
	assert.Equal(t, "r=12.5", c.Label)
	assert.Equal(t, "#ff0000", c.Color)

	assert.Equal(t, "points=2", b.Path(backend.PathParams{Points: make([]backend.Point, 2)}, ctx).Label)
	assert.Equal(t, "settings", b.Icon(backend.IconParams{Name: "settings"}, ctx).Label)
	assert.Equal(t, "a.png", b.Image(backend.MediaParams{Path: "a.png"}, ctx).Content)
	assert.Equal(t, "b.mp4", b.Video(backend.MediaParams{Path: "b.mp4"}, ctx).Content)
	assert.Equal(t, "https://x.dev", b.WebView(backend.WebViewParams{URL: "https://x.dev"}, ctx).Content)
}

func TestWrappers(t *testing.T) {
	b := New[msg]()
	ctx := testCtx()
	leaf := semantic.New("text").WithContent("x")

	assert.Equal(t, leaf, b.Container(leaf, backend.ContainerParams{}, ctx))
	assert.Equal(t, leaf, b.ScrollView(leaf, backend.ScrollParams{}, ctx))
	assert.Equal(t, leaf, b.MouseArea(leaf, backend.MouseAreaParams[msg]{}, ctx))
	assert.Equal(t, "explains x", b.WithTooltip(leaf, "explains x", ctx).Documentation)

	sec := b.Section("Intro", leaf, backend.SectionParams{}, ctx)
	assert.Equal(t, "section", sec.Role)
	assert.Equal(t, "Intro", sec.Label)

	moved := b.SpatialModifier(leaf, backend.Transform{Position: backend.Vec3{Z: 4}, Scale: backend.Vec3{X: 2, Y: 2, Z: 2}}, ctx)
	assert.Equal(t, 4.0, moved.DepthOr(0))
	require.NotNil(t, moved.Scale)
	assert.Equal(t, [3]float64{2, 2, 2}, *moved.Scale)
}

func TestSemanticNodePassesThrough(t *testing.T) {
	b := New[msg]()
	n := semantic.New("chart").WithLabel("sales").Protect("")
	assert.Equal(t, n, b.SemanticNode(n, testCtx()))
}
