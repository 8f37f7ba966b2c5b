package view

import (
	"fmt"

	"github.com/five82/facet/internal/backend"
	"github.com/five82/facet/internal/semantic"
	"github.com/five82/facet/internal/style"
)

// Tagged gives a view a neural tag that agents can target. Rendering is
// unchanged.
type Tagged[M, R any] struct {
	inner View[M, R]
	tag   string
}

// Tag wraps v with a neural tag.
func Tag[M, R any](v View[M, R], tag string) Tagged[M, R] {
	return Tagged[M, R]{inner: v, tag: tag}
}

func (t Tagged[M, R]) Render(ctx style.Context, b backend.Backend[M, R]) R {
	return orEmpty(t.inner).Render(ctx, b)
}

func (t Tagged[M, R]) Describe(ctx style.Context) semantic.Node {
	return orEmpty(t.inner).Describe(ctx).WithTag(t.tag)
}

// Documented attaches developer help text, shown as a tooltip where the
// backend supports one.
type Documented[M, R any] struct {
	inner View[M, R]
	doc   string
}

func Document[M, R any](v View[M, R], doc string) Documented[M, R] {
	return Documented[M, R]{inner: v, doc: doc}
}

func (d Documented[M, R]) Render(ctx style.Context, b backend.Backend[M, R]) R {
	return b.WithTooltip(orEmpty(d.inner).Render(ctx, b), d.doc, ctx)
}

func (d Documented[M, R]) Describe(ctx style.Context) semantic.Node {
	return orEmpty(d.inner).Describe(ctx).WithDocumentation(d.doc)
}

// Sudo marks a view as requiring human confirmation before an agent may act
// on it.
type Sudo[M, R any] struct {
	inner  View[M, R]
	reason string
}

func Protect[M, R any](v View[M, R], reason string) Sudo[M, R] {
	return Sudo[M, R]{inner: v, reason: reason}
}

func (s Sudo[M, R]) Render(ctx style.Context, b backend.Backend[M, R]) R {
	return orEmpty(s.inner).Render(ctx, b)
}

func (s Sudo[M, R]) Describe(ctx style.Context) semantic.Node {
	return orEmpty(s.inner).Describe(ctx).Protect(s.reason)
}

// PhysicalDepth lifts a view towards the viewer by z units.
type PhysicalDepth[M, R any] struct {
	inner View[M, R]
	z     float64
}

func Lift[M, R any](v View[M, R], z float64) PhysicalDepth[M, R] {
	return PhysicalDepth[M, R]{inner: v, z: z}
}

func (p PhysicalDepth[M, R]) Render(ctx style.Context, b backend.Backend[M, R]) R {
	t := backend.Identity()
	t.Position.Z = p.z
	return b.SpatialModifier(orEmpty(p.inner).Render(ctx, b), t, ctx)
}

func (p PhysicalDepth[M, R]) Describe(ctx style.Context) semantic.Node {
	return orEmpty(p.inner).Describe(ctx).WithDepth(p.z)
}

// Billboard makes spatial content turn to face the viewer. The state is
// appended to the neural tag so observers can see it.
type Billboard[M, R any] struct {
	inner  View[M, R]
	active bool
}

func Billboarded[M, R any](v View[M, R], active bool) Billboard[M, R] {
	return Billboard[M, R]{inner: v, active: active}
}

func (bb Billboard[M, R]) Render(ctx style.Context, b backend.Backend[M, R]) R {
	ctx.Billboarding = bb.active
	return orEmpty(bb.inner).Render(ctx, b)
}

func (bb Billboard[M, R]) Describe(ctx style.Context) semantic.Node {
	n := orEmpty(bb.inner).Describe(ctx)
	return n.WithTag(fmt.Sprintf("%s:spatial:billboard:%t", n.NeuralTag, bb.active))
}

// Transformed places a view in 3D space.
type Transformed[M, R any] struct {
	inner View[M, R]
	t     backend.Transform
}

func Transform[M, R any](v View[M, R], t backend.Transform) Transformed[M, R] {
	return Transformed[M, R]{inner: v, t: t}
}

func (tv Transformed[M, R]) Render(ctx style.Context, b backend.Backend[M, R]) R {
	return b.SpatialModifier(orEmpty(tv.inner).Render(ctx, b), tv.t, ctx)
}

func (tv Transformed[M, R]) Describe(ctx style.Context) semantic.Node {
	n := orEmpty(tv.inner).Describe(ctx)
	n = n.WithDepth(n.DepthOr(0) + tv.t.Position.Z)
	if s := tv.t.Scale; s != (backend.Vec3{}) && s != backend.One {
		n = n.WithScale(s.X, s.Y, s.Z)
	}
	return n
}

// Tap sends a message when the wrapped view is pressed.
type Tap[M, R any] struct {
	inner View[M, R]
	msg   M
}

func OnTap[M, R any](v View[M, R], msg M) Tap[M, R] {
	return Tap[M, R]{inner: v, msg: msg}
}

func (tp Tap[M, R]) Render(ctx style.Context, b backend.Backend[M, R]) R {
	m := tp.msg
	return b.MouseArea(orEmpty(tp.inner).Render(ctx, b), backend.MouseAreaParams[M]{OnPress: &m}, ctx)
}

func (tp Tap[M, R]) Describe(ctx style.Context) semantic.Node {
	return orEmpty(tp.inner).Describe(ctx)
}

// Responsive picks a view by device class at render time.
func Responsive[M, R any](pick func(style.DeviceType) View[M, R]) Func[M, R] {
	return func(ctx style.Context) View[M, R] {
		return pick(ctx.Device)
	}
}
