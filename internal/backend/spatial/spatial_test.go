package spatial

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/facet/internal/backend"
	"github.com/five82/facet/internal/semantic"
	"github.com/five82/facet/internal/style"
)

type msg string

func testCtx() style.Context {
	return style.NewContext(style.DefaultTokens(), style.Size{Width: 1280, Height: 720})
}

func TestFromSizeIsCentered(t *testing.T) {
	b := FromSize(4, 2, 1)
	assert.Equal(t, backend.Vec3{X: -2, Y: -1, Z: -0.5}, b.Min)
	assert.Equal(t, backend.Vec3{X: 2, Y: 1, Z: 0.5}, b.Max)
	assert.Equal(t, backend.Vec3{}, b.Center())
	assert.Equal(t, backend.Vec3{X: 4, Y: 2, Z: 1}, b.Size())
	assert.True(t, b.Contains(backend.Vec3{X: 2, Y: 0, Z: 0}))
	assert.False(t, b.Contains(backend.Vec3{X: 2.1, Y: 0, Z: 0}))
}

func TestIntersectRay(t *testing.T) {
	box := FromSize(2, 2, 2)

	tests := []struct {
		name   string
		ray    Ray
		want   float64
		wantOK bool
	}{
		{"front", NewRay(backend.Vec3{Z: 10}, backend.Vec3{Z: -1}), 9, true},
		{"inside reports exit", NewRay(backend.Vec3{}, backend.Vec3{X: 1}), 1, true},
		{"pointing away", NewRay(backend.Vec3{Z: 10}, backend.Vec3{Z: 1}), 0, false},
		{"parallel miss", NewRay(backend.Vec3{X: 5, Z: 10}, backend.Vec3{Z: -1}), 0, false},
		{"oblique", NewRay(backend.Vec3{X: -10, Y: 0, Z: 0}, backend.Vec3{X: 1, Y: 0.05}), 9.0 * backend.Vec3{X: 1, Y: 0.05}.Len(), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := box.IntersectRay(tt.ray)
			require.Equal(t, tt.wantOK, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestZeroBoxNeverHitFromFront(t *testing.T) {
	_, ok := FromSize(0, 0, 0).IntersectRay(NewRay(backend.Vec3{X: 1, Z: 10}, backend.Vec3{Z: -1}))
	assert.False(t, ok)
}

func TestVStackLayout(t *testing.T) {
	b := New[msg]()
	ctx := testCtx()

	n := b.VStack([]Node[msg]{
		b.Text(backend.TextParams{Content: "ab"}, ctx),
		b.Text(backend.TextParams{Content: "abcd"}, ctx),
	}, backend.StackParams{Spacing: 5}, ctx)

	assert.Equal(t, "vstack", n.Role)
	assert.Equal(t, LayoutVertical, n.Layout)
	assert.Equal(t, 40.0, n.Width)
	assert.Equal(t, 50.0, n.Height)
	require.Len(t, n.Children, 2)
	assert.Equal(t, backend.Vec3{Y: 0, Z: 1}, n.Children[0].Transform.Position)
	assert.Equal(t, backend.Vec3{Y: 25, Z: 1}, n.Children[1].Transform.Position)
}

func TestHStackLayout(t *testing.T) {
	b := New[msg]()
	ctx := testCtx()

	n := b.HStack([]Node[msg]{
		b.Circle(backend.CircleParams{Radius: 5}, ctx),
		b.Divider(ctx),
	}, backend.StackParams{}, ctx)

	assert.Equal(t, 110.0, n.Width)
	assert.Equal(t, 10.0, n.Height)
	assert.Equal(t, backend.Vec3{X: 10, Z: 1}, n.Children[1].Transform.Position)
}

func TestZStackAndGrid(t *testing.T) {
	b := New[msg]()
	ctx := testCtx()
	dot := b.Circle(backend.CircleParams{Radius: 5}, ctx)

	z := b.ZStack([]Node[msg]{dot, dot}, backend.ZStackParams{}, ctx)
	assert.Equal(t, 0.0, z.Children[0].Transform.Position.Z)
	assert.Equal(t, 1.0, z.Children[1].Transform.Position.Z)
	assert.Equal(t, 2.0, z.Depth)

	g := b.Grid([]Node[msg]{dot, dot, dot}, backend.GridParams{Columns: 2}, ctx)
	assert.Equal(t, LayoutGrid, g.Layout)
	assert.Equal(t, 20.0, g.Width)
	assert.Equal(t, 20.0, g.Height)
	assert.Equal(t, backend.Vec3{X: 10, Z: 1}, g.Children[1].Transform.Position)
	assert.Equal(t, backend.Vec3{Y: 10, Z: 1}, g.Children[2].Transform.Position)
}

func TestFixedFootprints(t *testing.T) {
	b := New[msg]()
	ctx := testCtx()

	cases := []struct {
		node Node[msg]
		w, h float64
	}{
		{b.SidebarItem(backend.SidebarItemParams[msg]{Title: "x"}, ctx), 200, 40},
		{b.TextInput(backend.TextInputParams[msg]{}, ctx), 200, 40},
		{b.Slider(backend.SliderParams[msg]{}, ctx), 200, 20},
		{b.Toggle(backend.ToggleParams[msg]{}, ctx), 100, 40},
		{b.Image(backend.MediaParams{}, ctx), 100, 100},
		{b.Video(backend.MediaParams{}, ctx), 100, 100},
		{b.WebView(backend.WebViewParams{}, ctx), 100, 100},
		{b.Icon(backend.IconParams{Size: 24}, ctx), 24, 24},
		{b.Divider(ctx), 100, 1},
		{b.Rectangle(backend.RectangleParams{Width: style.Fixed(30), Height: style.Fixed(10)}, ctx), 30, 10},
	}
	for _, c := range cases {
		assert.Equal(t, c.w, c.node.Width, c.node.Role)
		assert.Equal(t, c.h, c.node.Height, c.node.Role)
	}
	assert.Equal(t, 0.0, b.Space(backend.SpaceParams{}, ctx).Depth)
}

func TestButtonHitTest(t *testing.T) {
	b := New[msg]()
	ctx := testCtx()
	press := msg("go")

	button := b.Button(b.Text(backend.TextParams{Content: "abcd"}, ctx), backend.ButtonParams[msg]{ID: "go", OnPress: &press}, ctx)
	scene := b.VStack([]Node[msg]{button}, backend.StackParams{}, ctx)

	hit, ok := scene.HitTest(NewRay(backend.Vec3{Z: 10}, backend.Vec3{Z: -1}))
	require.True(t, ok)
	assert.Equal(t, "button", hit.Role)
	assert.InDelta(t, 8.5, hit.Distance, 1e-9)
	assert.InDelta(t, 1.5, hit.Point.Z, 1e-9)
	require.NotNil(t, hit.Message)
	assert.Equal(t, press, *hit.Message)

	_, ok = scene.HitTest(NewRay(backend.Vec3{X: 100, Z: 10}, backend.Vec3{Z: -1}))
	assert.False(t, ok)

	var got []msg
	sink := backend.Sink[msg](func(m msg) { got = append(got, m) })
	assert.True(t, scene.Dispatch(NewRay(backend.Vec3{Z: 10}, backend.Vec3{Z: -1}), sink))
	assert.Equal(t, []msg{"go"}, got)
}

func TestHitTestPicksClosestChild(t *testing.T) {
	b := New[msg]()
	ctx := testCtx()
	back, front := msg("back"), msg("front")

	scene := b.ZStack([]Node[msg]{
		b.MouseArea(b.Circle(backend.CircleParams{Radius: 5}, ctx), backend.MouseAreaParams[msg]{OnPress: &back}, ctx),
		b.MouseArea(b.Circle(backend.CircleParams{Radius: 5}, ctx), backend.MouseAreaParams[msg]{OnPress: &front}, ctx),
	}, backend.ZStackParams{}, ctx)

	hit, ok := scene.HitTest(NewRay(backend.Vec3{Z: 10}, backend.Vec3{Z: -1}))
	require.True(t, ok)
	require.NotNil(t, hit.Message)
	assert.Equal(t, front, *hit.Message)
}

func TestToggleDeliversFlippedState(t *testing.T) {
	b := New[msg]()
	n := b.Toggle(backend.ToggleParams[msg]{Active: true, OnToggle: func(on bool) msg {
		if on {
			return "on"
		}
		return "off"
	}}, testCtx())
	require.NotNil(t, n.OnPress)
	assert.Equal(t, msg("off"), *n.OnPress)
}

func TestSpatialModifierAndBillboard(t *testing.T) {
	b := New[msg]()
	ctx := testCtx()
	ctx.Billboarding = true

	n := b.Text(backend.TextParams{Content: "x"}, ctx)
	n.Transform.Position = backend.Vec3{X: 1}
	moved := b.SpatialModifier(n, backend.Transform{
		Position: backend.Vec3{Y: 2, Z: 3},
		Rotation: backend.Vec3{Y: 45},
		Scale:    backend.Vec3{X: 2, Y: 2, Z: 2},
	}, ctx)
	assert.Equal(t, backend.Vec3{X: 1, Y: 2, Z: 3}, moved.Transform.Position)
	assert.Equal(t, backend.Vec3{Y: 45}, moved.Transform.Rotation)
	assert.Equal(t, backend.Vec3{X: 2, Y: 2, Z: 2}, moved.Transform.Scale)

	kept := b.SpatialModifier(n, backend.Transform{}, ctx)
	assert.Equal(t, backend.One, kept.Transform.Scale)

	assert.True(t, b.Slider(backend.SliderParams[msg]{}, ctx).Billboarding)
	assert.True(t, b.Button(n, backend.ButtonParams[msg]{ID: "b"}, ctx.WithFocus("b")).Focused)
}

func TestStripAndJSON(t *testing.T) {
	b := New[msg]()
	ctx := testCtx()
	press := msg("x")

	scene := b.VStack([]Node[msg]{
		b.Button(b.Text(backend.TextParams{Content: "a"}, ctx), backend.ButtonParams[msg]{OnPress: &press}, ctx),
		b.SemanticNode(semantic.New("chart"), ctx),
	}, backend.StackParams{}, ctx)

	plain := Strip(scene)
	require.Len(t, plain.Children, 2)
	assert.Nil(t, plain.Children[0].OnPress)
	assert.Equal(t, "chart", plain.Children[1].Role)

	data, err := json.Marshal(plain)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"layout":"vertical"`)

	count := 0
	scene.Walk(func(int, Node[msg]) { count++ })
	assert.Equal(t, 3, count)
}
