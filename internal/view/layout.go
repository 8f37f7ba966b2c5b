package view

import (
	"fmt"

	"github.com/five82/facet/internal/backend"
	"github.com/five82/facet/internal/semantic"
	"github.com/five82/facet/internal/style"
)

// Axis is the main axis of a Stack.
type Axis int

const (
	Vertical Axis = iota
	Horizontal
)

// Stack lays children out along one axis.
type Stack[M, R any] struct {
	axis     Axis
	children []View[M, R]
	params   backend.StackParams
}

// NewVStack returns a vertical stack.
func NewVStack[M, R any](children ...View[M, R]) Stack[M, R] {
	return Stack[M, R]{axis: Vertical, children: children}
}

// NewHStack returns a horizontal stack.
func NewHStack[M, R any](children ...View[M, R]) Stack[M, R] {
	return Stack[M, R]{axis: Horizontal, children: children}
}

func (s Stack[M, R]) Push(v ...View[M, R]) Stack[M, R] {
	s.children = appendView(s.children, v...)
	return s
}

func (s Stack[M, R]) Spacing(v float64) Stack[M, R] {
	s.params.Spacing = v
	return s
}

func (s Stack[M, R]) Padding(p style.Padding) Stack[M, R] {
	s.params.Padding = p
	return s
}

func (s Stack[M, R]) Width(l style.Length) Stack[M, R] {
	s.params.Width = l
	return s
}

func (s Stack[M, R]) Height(l style.Length) Stack[M, R] {
	s.params.Height = l
	return s
}

func (s Stack[M, R]) AlignX(a style.Alignment) Stack[M, R] {
	s.params.AlignX = a
	return s
}

func (s Stack[M, R]) AlignY(a style.Alignment) Stack[M, R] {
	s.params.AlignY = a
	return s
}

// Len returns the number of children.
func (s Stack[M, R]) Len() int { return len(s.children) }

func (s Stack[M, R]) Render(ctx style.Context, b backend.Backend[M, R]) R {
	children := renderAll(s.children, ctx, b)
	if s.axis == Horizontal {
		return b.HStack(children, s.params, ctx)
	}
	return b.VStack(children, s.params, ctx)
}

func (s Stack[M, R]) Describe(ctx style.Context) semantic.Node {
	role := "vstack"
	if s.axis == Horizontal {
		role = "hstack"
	}
	return semantic.New(role).WithChildren(describeAll(s.children, ctx)...)
}

// ZStack layers children on top of each other, first child at the back.
type ZStack[M, R any] struct {
	children []View[M, R]
	params   backend.ZStackParams
}

func NewZStack[M, R any](children ...View[M, R]) ZStack[M, R] {
	return ZStack[M, R]{children: children}
}

func (z ZStack[M, R]) Push(v ...View[M, R]) ZStack[M, R] {
	z.children = appendView(z.children, v...)
	return z
}

func (z ZStack[M, R]) Width(l style.Length) ZStack[M, R] {
	z.params.Width = l
	return z
}

func (z ZStack[M, R]) Height(l style.Length) ZStack[M, R] {
	z.params.Height = l
	return z
}

func (z ZStack[M, R]) Align(a style.Alignment) ZStack[M, R] {
	z.params.Alignment = a
	return z
}

func (z ZStack[M, R]) Render(ctx style.Context, b backend.Backend[M, R]) R {
	return b.ZStack(renderAll(z.children, ctx, b), z.params, ctx)
}

func (z ZStack[M, R]) Describe(ctx style.Context) semantic.Node {
	return semantic.New("zstack").WithChildren(describeAll(z.children, ctx)...)
}

// Wrap flows children horizontally and breaks into new runs when space runs
// out.
type Wrap[M, R any] struct {
	children []View[M, R]
	params   backend.WrapParams
}

func NewWrap[M, R any](children ...View[M, R]) Wrap[M, R] {
	return Wrap[M, R]{children: children}
}

func (w Wrap[M, R]) Push(v ...View[M, R]) Wrap[M, R] {
	w.children = appendView(w.children, v...)
	return w
}

func (w Wrap[M, R]) Spacing(v float64) Wrap[M, R] {
	w.params.Spacing = v
	return w
}

func (w Wrap[M, R]) RunSpacing(v float64) Wrap[M, R] {
	w.params.RunSpacing = v
	return w
}

func (w Wrap[M, R]) Padding(p style.Padding) Wrap[M, R] {
	w.params.Padding = p
	return w
}

func (w Wrap[M, R]) Render(ctx style.Context, b backend.Backend[M, R]) R {
	return b.Wrap(renderAll(w.children, ctx, b), w.params, ctx)
}

func (w Wrap[M, R]) Describe(ctx style.Context) semantic.Node {
	return semantic.New("wrap").WithChildren(describeAll(w.children, ctx)...)
}

// Grid breakpoints in logical units. A width below the first breakpoint gets
// one column and every breakpoint crossed adds one more.
var gridBreakpoints = [...]float64{600, 900, 1200, 1600}

// Columns returns the responsive column count for a container width.
func Columns(width float64) int {
	cols := 1
	for _, bp := range gridBreakpoints {
		if width < bp {
			break
		}
		cols++
	}
	return cols
}

// DefaultGridSpacing separates grid cells when no spacing is set.
const DefaultGridSpacing = 20.0

// Grid is a responsive grid whose column count follows the context width.
type Grid[M, R any] struct {
	children []View[M, R]
	spacing  float64
}

func NewGrid[M, R any](children ...View[M, R]) Grid[M, R] {
	return Grid[M, R]{children: children, spacing: DefaultGridSpacing}
}

func (g Grid[M, R]) Push(v ...View[M, R]) Grid[M, R] {
	g.children = appendView(g.children, v...)
	return g
}

func (g Grid[M, R]) Spacing(v float64) Grid[M, R] {
	g.spacing = v
	return g
}

func (g Grid[M, R]) Render(ctx style.Context, b backend.Backend[M, R]) R {
	params := backend.GridParams{Columns: Columns(ctx.Size.Width), Spacing: g.spacing}
	return b.Grid(renderAll(g.children, ctx, b), params, ctx)
}

func (g Grid[M, R]) Describe(ctx style.Context) semantic.Node {
	return semantic.New("grid").
		WithLabel(fmt.Sprintf("responsive_columns: %d", Columns(ctx.Size.Width))).
		WithChildren(describeAll(g.children, ctx)...)
}

// ScrollView makes its content scrollable.
type ScrollView[M, R any] struct {
	content View[M, R]
	params  backend.ScrollParams
}

func NewScrollView[M, R any](content View[M, R]) ScrollView[M, R] {
	return ScrollView[M, R]{content: content, params: backend.ScrollParams{ShowIndicators: true}}
}

func (s ScrollView[M, R]) ID(id string) ScrollView[M, R] {
	s.params.ID = id
	return s
}

func (s ScrollView[M, R]) Direction(d style.ScrollDirection) ScrollView[M, R] {
	s.params.Direction = d
	return s
}

func (s ScrollView[M, R]) Height(l style.Length) ScrollView[M, R] {
	s.params.Height = l
	return s
}

func (s ScrollView[M, R]) HideIndicators() ScrollView[M, R] {
	s.params.ShowIndicators = false
	return s
}

func (s ScrollView[M, R]) Render(ctx style.Context, b backend.Backend[M, R]) R {
	inner := ctx
	inner.InScroll = true
	return b.ScrollView(orEmpty(s.content).Render(inner, b), s.params, ctx)
}

func (s ScrollView[M, R]) Describe(ctx style.Context) semantic.Node {
	inner := ctx
	inner.InScroll = true
	return semantic.New("scroll_view").WithID(s.params.ID).WithChildren(orEmpty(s.content).Describe(inner))
}

// Container decorates a single child.
type Container[M, R any] struct {
	content View[M, R]
	params  backend.ContainerParams
}

func NewContainer[M, R any](content View[M, R]) Container[M, R] {
	return Container[M, R]{content: content}
}

func (c Container[M, R]) Padding(p style.Padding) Container[M, R] {
	c.params.Padding = p
	return c
}

func (c Container[M, R]) Width(l style.Length) Container[M, R] {
	c.params.Width = l
	return c
}

func (c Container[M, R]) Height(l style.Length) Container[M, R] {
	c.params.Height = l
	return c
}

func (c Container[M, R]) Background(col style.Color) Container[M, R] {
	c.params.Background = col
	return c
}

func (c Container[M, R]) Border(width float64, col style.Color) Container[M, R] {
	c.params.BorderWidth = width
	c.params.BorderColor = col
	return c
}

func (c Container[M, R]) Radius(r float64) Container[M, R] {
	c.params.Radius = r
	return c
}

func (c Container[M, R]) Shadow(s backend.Shadow) Container[M, R] {
	c.params.Shadow = &s
	return c
}

func (c Container[M, R]) Center() Container[M, R] {
	c.params.AlignX = style.AlignCenter
	c.params.AlignY = style.AlignCenter
	return c
}

func (c Container[M, R]) Render(ctx style.Context, b backend.Backend[M, R]) R {
	return b.Container(orEmpty(c.content).Render(ctx, b), c.params, ctx)
}

func (c Container[M, R]) Describe(ctx style.Context) semantic.Node {
	return semantic.New("container").WithChildren(orEmpty(c.content).Describe(ctx))
}

// Card is an opaque surface with a border and a shadow taken from the theme.
type Card[M, R any] struct {
	content View[M, R]
	padding style.Padding
	width   style.Length
}

func NewCard[M, R any](content View[M, R]) Card[M, R] {
	return Card[M, R]{content: content, padding: style.Uniform(16), width: style.Fill}
}

func (c Card[M, R]) Padding(p style.Padding) Card[M, R] {
	c.padding = p
	return c
}

func (c Card[M, R]) Width(l style.Length) Card[M, R] {
	c.width = l
	return c
}

func (c Card[M, R]) params(ctx style.Context) backend.ContainerParams {
	t := ctx.Theme
	return backend.ContainerParams{
		Padding:     c.padding,
		Width:       c.width,
		Background:  t.Surface,
		Radius:      t.Radius,
		BorderWidth: 1,
		BorderColor: t.Border,
		Shadow:      &backend.Shadow{Color: t.Background, OffsetY: 2, Blur: t.ShadowBlur},
	}
}

func (c Card[M, R]) Render(ctx style.Context, b backend.Backend[M, R]) R {
	return b.Container(orEmpty(c.content).Render(ctx, b), c.params(ctx), ctx)
}

func (c Card[M, R]) Describe(ctx style.Context) semantic.Node {
	return semantic.New("card").WithChildren(orEmpty(c.content).Describe(ctx))
}

// GlassCard is a translucent card rendered by the backend's glass primitive.
type GlassCard[M, R any] struct {
	content View[M, R]
	params  backend.CardParams
}

func NewGlassCard[M, R any](content View[M, R]) GlassCard[M, R] {
	return GlassCard[M, R]{content: content}
}

func (g GlassCard[M, R]) Padding(p style.Padding) GlassCard[M, R] {
	g.params.Padding = p
	return g
}

func (g GlassCard[M, R]) Width(l style.Length) GlassCard[M, R] {
	g.params.Width = l
	return g
}

func (g GlassCard[M, R]) Render(ctx style.Context, b backend.Backend[M, R]) R {
	return b.GlassCard(orEmpty(g.content).Render(ctx, b), g.params, ctx)
}

func (g GlassCard[M, R]) Describe(ctx style.Context) semantic.Node {
	return semantic.New("glass_card").WithChildren(orEmpty(g.content).Describe(ctx))
}

// Section is titled content.
type Section[M, R any] struct {
	title   string
	content View[M, R]
	params  backend.SectionParams
}

func NewSection[M, R any](title string, content View[M, R]) Section[M, R] {
	return Section[M, R]{title: title, content: content}
}

func (s Section[M, R]) Width(l style.Length) Section[M, R] {
	s.params.Width = l
	return s
}

func (s Section[M, R]) Render(ctx style.Context, b backend.Backend[M, R]) R {
	return b.Section(s.title, orEmpty(s.content).Render(ctx, b), s.params, ctx)
}

func (s Section[M, R]) Describe(ctx style.Context) semantic.Node {
	return semantic.New("section").WithLabel(s.title).WithChildren(orEmpty(s.content).Describe(ctx))
}

// FormStyle selects how form sections are framed.
type FormStyle int

const (
	FormGrouped FormStyle = iota
	FormPlain
)

// FormSpacing separates form sections.
const FormSpacing = 24.0

// Form stacks sections vertically. Grouped forms frame every section in a
// card.
type Form[M, R any] struct {
	sections []View[M, R]
	style    FormStyle
}

func NewForm[M, R any](sections ...View[M, R]) Form[M, R] {
	return Form[M, R]{sections: sections}
}

func (f Form[M, R]) Push(v ...View[M, R]) Form[M, R] {
	f.sections = appendView(f.sections, v...)
	return f
}

func (f Form[M, R]) Style(s FormStyle) Form[M, R] {
	f.style = s
	return f
}

func (f Form[M, R]) Render(ctx style.Context, b backend.Backend[M, R]) R {
	rows := make([]R, len(f.sections))
	for i, s := range f.sections {
		if f.style == FormGrouped {
			rows[i] = NewCard(s).Render(ctx, b)
			continue
		}
		rows[i] = orEmpty(s).Render(ctx, b)
	}
	return b.VStack(rows, backend.StackParams{Spacing: FormSpacing, Width: style.Fill}, ctx)
}

func (f Form[M, R]) Describe(ctx style.Context) semantic.Node {
	return semantic.New("form").
		WithAccessibility(semantic.NewAccessibility(semantic.RoleGroup, "")).
		WithChildren(describeAll(f.sections, ctx)...)
}
