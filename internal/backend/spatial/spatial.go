// Package spatial renders view trees as 3D scene graphs that can be hit
// tested with rays.
//
// Stacks position children along one axis and lift them one unit towards the
// viewer. Sizes are rough estimates: text is ten units per byte wide and
// twenty high, controls use fixed footprints.
package spatial

import (
	"math"

	"github.com/five82/facet/internal/backend"
	"github.com/five82/facet/internal/semantic"
	"github.com/five82/facet/internal/style"
)

const (
	charWidth      = 10.0
	lineHeight     = 20.0
	dividerLength  = 100.0
	controlWidth   = 200.0
	controlHeight  = 40.0
	sliderHeight   = 20.0
	toggleWidth    = 100.0
	mediaFootprint = 100.0
)

// Backend produces spatial nodes. The zero value is ready to use.
type Backend[M any] struct{}

var _ backend.Backend[struct{}, Node[struct{}]] = Backend[struct{}]{}

// New returns a spatial backend for message type M.
func New[M any]() Backend[M] { return Backend[M]{} }

func fixedOr(l style.Length, def float64) float64 {
	if l.IsFixed() {
		return l.Value
	}
	return def
}

func withBillboard[M any](n Node[M], ctx style.Context) Node[M] {
	n.Billboarding = ctx.Billboarding
	return n
}

func (Backend[M]) SemanticNode(node semantic.Node, _ style.Context) Node[M] {
	n := sized[M](node.Role, 0, 0)
	n.Depth = node.DepthOr(0)
	return n
}

func (Backend[M]) VStack(children []Node[M], p backend.StackParams, _ style.Context) Node[M] {
	var y, width float64
	nodes := make([]Node[M], len(children))
	for i, c := range children {
		c.Transform.Position.Y = y
		c.Transform.Position.Z = 1
		y += c.Height + p.Spacing
		width = math.Max(width, c.Width)
		nodes[i] = c
	}
	return Node[M]{
		Role:      "vstack",
		Width:     width,
		Height:    y,
		Depth:     1,
		Transform: backend.Identity(),
		Bounds:    FromSize(width, y, 1),
		Layout:    LayoutVertical,
		Children:  nodes,
	}
}

func (Backend[M]) HStack(children []Node[M], p backend.StackParams, _ style.Context) Node[M] {
	var x, height float64
	nodes := make([]Node[M], len(children))
	for i, c := range children {
		c.Transform.Position.X = x
		c.Transform.Position.Z = 1
		x += c.Width + p.Spacing
		height = math.Max(height, c.Height)
		nodes[i] = c
	}
	return Node[M]{
		Role:      "hstack",
		Width:     x,
		Height:    height,
		Depth:     1,
		Transform: backend.Identity(),
		Bounds:    FromSize(x, height, 1),
		Layout:    LayoutHorizontal,
		Children:  nodes,
	}
}

func (Backend[M]) Wrap(children []Node[M], _ backend.WrapParams, _ style.Context) Node[M] {
	n := sized[M]("wrap", 0, 0)
	n.Layout = LayoutWrap
	n.Children = children
	return n
}

// ZStack layers children one unit apart on the z axis, first child furthest
// back.
func (Backend[M]) ZStack(children []Node[M], _ backend.ZStackParams, _ style.Context) Node[M] {
	var width, height float64
	nodes := make([]Node[M], len(children))
	for i, c := range children {
		c.Transform.Position.Z = float64(i)
		width = math.Max(width, c.Width)
		height = math.Max(height, c.Height)
		nodes[i] = c
	}
	depth := float64(max(len(children), 1))
	n := sized[M]("zstack", width, height)
	n.Depth = depth
	n.Bounds = FromSize(width, height, depth)
	n.Layout = LayoutDepth
	n.Children = nodes
	return n
}

// Grid places children in rows of p.Columns cells sized to the largest
// child.
func (Backend[M]) Grid(children []Node[M], p backend.GridParams, _ style.Context) Node[M] {
	cols := max(p.Columns, 1)
	var cellW, cellH float64
	for _, c := range children {
		cellW = math.Max(cellW, c.Width)
		cellH = math.Max(cellH, c.Height)
	}
	nodes := make([]Node[M], len(children))
	for i, c := range children {
		c.Transform.Position.X = float64(i%cols) * (cellW + p.Spacing)
		c.Transform.Position.Y = float64(i/cols) * (cellH + p.Spacing)
		c.Transform.Position.Z = 1
		nodes[i] = c
	}
	rows := (len(children) + cols - 1) / cols
	width := float64(min(cols, len(children))) * (cellW + p.Spacing)
	height := float64(rows) * (cellH + p.Spacing)
	n := sized[M]("grid", width, height)
	n.Layout = LayoutGrid
	n.Children = nodes
	return n
}

func (Backend[M]) Text(p backend.TextParams, _ style.Context) Node[M] {
	return sized[M]("text", float64(len(p.Content))*charWidth, lineHeight)
}

func (Backend[M]) RichText(p backend.RichTextParams, _ style.Context) Node[M] {
	return sized[M]("rich_text", float64(len(p.PlainText()))*charWidth, lineHeight)
}

func (Backend[M]) Markdown(p backend.MarkdownParams, _ style.Context) Node[M] {
	width := p.Width
	if width <= 0 {
		width = controlWidth
	}
	return sized[M]("markdown", width, lineHeight)
}

func (Backend[M]) Icon(p backend.IconParams, _ style.Context) Node[M] {
	return sized[M]("icon", p.Size, p.Size)
}

func (Backend[M]) Divider(_ style.Context) Node[M] {
	return sized[M]("divider", dividerLength, 1)
}

func (Backend[M]) Space(p backend.SpaceParams, _ style.Context) Node[M] {
	return sized[M]("space", fixedOr(p.Width, 0), fixedOr(p.Height, 0))
}

func (Backend[M]) Circle(p backend.CircleParams, _ style.Context) Node[M] {
	return sized[M]("circle", p.Radius*2, p.Radius*2)
}

func (Backend[M]) Arc(p backend.ArcParams, _ style.Context) Node[M] {
	return sized[M]("arc", p.Radius*2, p.Radius*2)
}

func (Backend[M]) Path(_ backend.PathParams, _ style.Context) Node[M] {
	return sized[M]("path", 0, 0)
}

func (Backend[M]) Capsule(p backend.CapsuleParams, _ style.Context) Node[M] {
	return sized[M]("capsule", fixedOr(p.Width, 0), fixedOr(p.Height, 0))
}

func (Backend[M]) Rectangle(p backend.RectangleParams, _ style.Context) Node[M] {
	return sized[M]("rectangle", fixedOr(p.Width, 0), fixedOr(p.Height, 0))
}

// Button turns the rendered content into a pressable node.
func (Backend[M]) Button(content Node[M], p backend.ButtonParams[M], ctx style.Context) Node[M] {
	content.Role = "button"
	content.OnPress = p.OnPress
	content.Focused = ctx.IsFocused(p.ID)
	return withBillboard(content, ctx)
}

func (Backend[M]) SidebarItem(p backend.SidebarItemParams[M], ctx style.Context) Node[M] {
	n := sized[M]("sidebar_item", controlWidth, controlHeight)
	n.OnPress = p.OnSelect
	n.Focused = p.Selected
	return withBillboard(n, ctx)
}

func (Backend[M]) TextInput(p backend.TextInputParams[M], ctx style.Context) Node[M] {
	n := sized[M]("text_input", controlWidth, controlHeight)
	n.Focused = ctx.IsFocused(p.ID)
	return withBillboard(n, ctx)
}

func (Backend[M]) Slider(_ backend.SliderParams[M], ctx style.Context) Node[M] {
	return withBillboard(sized[M]("slider", controlWidth, sliderHeight), ctx)
}

// Toggle presses deliver the flipped state.
func (Backend[M]) Toggle(p backend.ToggleParams[M], ctx style.Context) Node[M] {
	n := sized[M]("toggle", toggleWidth, controlHeight)
	if p.OnToggle != nil {
		m := p.OnToggle(!p.Active)
		n.OnPress = &m
	}
	return withBillboard(n, ctx)
}

func (Backend[M]) Image(p backend.MediaParams, _ style.Context) Node[M] {
	return sized[M]("image", fixedOr(p.Width, mediaFootprint), fixedOr(p.Height, mediaFootprint))
}

func (Backend[M]) Video(p backend.MediaParams, _ style.Context) Node[M] {
	return sized[M]("video", fixedOr(p.Width, mediaFootprint), fixedOr(p.Height, mediaFootprint))
}

func (Backend[M]) WebView(p backend.WebViewParams, _ style.Context) Node[M] {
	return sized[M]("web_view", fixedOr(p.Width, mediaFootprint), fixedOr(p.Height, mediaFootprint))
}

func (Backend[M]) Container(content Node[M], _ backend.ContainerParams, _ style.Context) Node[M] {
	return content
}

func (Backend[M]) ScrollView(content Node[M], _ backend.ScrollParams, _ style.Context) Node[M] {
	return content
}

// MouseArea makes content pressable unless it already carries a message.
func (Backend[M]) MouseArea(content Node[M], p backend.MouseAreaParams[M], _ style.Context) Node[M] {
	if content.OnPress == nil {
		content.OnPress = p.OnPress
	}
	return content
}

func (Backend[M]) WithTooltip(content Node[M], _ string, _ style.Context) Node[M] {
	return content
}

func (Backend[M]) GlassCard(content Node[M], _ backend.CardParams, _ style.Context) Node[M] {
	return content
}

func (Backend[M]) Section(_ string, content Node[M], _ backend.SectionParams, _ style.Context) Node[M] {
	return content
}

// SpatialModifier offsets the content and replaces its rotation and scale.
// A zero scale leaves the existing scale in place.
func (Backend[M]) SpatialModifier(content Node[M], t backend.Transform, _ style.Context) Node[M] {
	content.Transform.Position = content.Transform.Position.Add(t.Position)
	content.Transform.Rotation = t.Rotation
	if t.Scale != (backend.Vec3{}) {
		content.Transform.Scale = t.Scale
	}
	return content
}
