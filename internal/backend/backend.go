package backend

import (
	"math"

	"github.com/five82/facet/internal/semantic"
	"github.com/five82/facet/internal/style"
)

// Backend is the capability surface every render target implements. M is the
// application message type carried by interactive primitives and R is the
// value the backend produces.
//
// Every method is a pure function of its arguments. Implementations must not
// panic on zero parameters and return an empty value when there is nothing
// meaningful to produce.
type Backend[M, R any] interface {
	SemanticNode(node semantic.Node, ctx style.Context) R

	VStack(children []R, p StackParams, ctx style.Context) R
	HStack(children []R, p StackParams, ctx style.Context) R
	Wrap(children []R, p WrapParams, ctx style.Context) R
	ZStack(children []R, p ZStackParams, ctx style.Context) R
	Grid(children []R, p GridParams, ctx style.Context) R

	Text(p TextParams, ctx style.Context) R
	RichText(p RichTextParams, ctx style.Context) R
	Markdown(p MarkdownParams, ctx style.Context) R
	Icon(p IconParams, ctx style.Context) R
	Divider(ctx style.Context) R
	Space(p SpaceParams, ctx style.Context) R

	Circle(p CircleParams, ctx style.Context) R
	Arc(p ArcParams, ctx style.Context) R
	Path(p PathParams, ctx style.Context) R
	Capsule(p CapsuleParams, ctx style.Context) R
	Rectangle(p RectangleParams, ctx style.Context) R

	Button(content R, p ButtonParams[M], ctx style.Context) R
	SidebarItem(p SidebarItemParams[M], ctx style.Context) R
	TextInput(p TextInputParams[M], ctx style.Context) R
	Slider(p SliderParams[M], ctx style.Context) R
	Toggle(p ToggleParams[M], ctx style.Context) R

	Image(p MediaParams, ctx style.Context) R
	Video(p MediaParams, ctx style.Context) R
	WebView(p WebViewParams, ctx style.Context) R

	Container(content R, p ContainerParams, ctx style.Context) R
	ScrollView(content R, p ScrollParams, ctx style.Context) R
	MouseArea(content R, p MouseAreaParams[M], ctx style.Context) R
	WithTooltip(content R, tooltip string, ctx style.Context) R
	GlassCard(content R, p CardParams, ctx style.Context) R
	Section(title string, content R, p SectionParams, ctx style.Context) R
	SpatialModifier(content R, t Transform, ctx style.Context) R
}

// Sink receives messages emitted by interactive primitives.
type Sink[M any] func(M)

// Send delivers m. A nil sink drops it.
func (s Sink[M]) Send(m M) {
	if s != nil {
		s(m)
	}
}

// SendPtr delivers *m when m is non-nil. It reports whether a message was
// delivered.
func (s Sink[M]) SendPtr(m *M) bool {
	if m == nil || s == nil {
		return false
	}
	s(*m)
	return true
}

// Vec3 is a 3-component vector.
type Vec3 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Add returns v+o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v-o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Mul returns v scaled component-wise by o.
func (v Vec3) Mul(o Vec3) Vec3 { return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }

// Scale returns v*f.
func (v Vec3) Scale(f float64) Vec3 { return Vec3{v.X * f, v.Y * f, v.Z * f} }

// Len is the Euclidean length.
func (v Vec3) Len() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Axis returns component i (0=X, 1=Y, 2=Z).
func (v Vec3) Axis(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// One is the unit scale.
var One = Vec3{1, 1, 1}

// Transform places content in 3D space.
type Transform struct {
	Position Vec3 `json:"position" yaml:"position"`
	Rotation Vec3 `json:"rotation" yaml:"rotation"`
	Scale    Vec3 `json:"scale" yaml:"scale"`
}

// Identity is the transform that leaves content unchanged.
func Identity() Transform {
	return Transform{Scale: One}
}

// Compose applies o on top of t: positions and rotations add, scales
// multiply.
func (t Transform) Compose(o Transform) Transform {
	return Transform{
		Position: t.Position.Add(o.Position),
		Rotation: t.Rotation.Add(o.Rotation),
		Scale:    t.Scale.Mul(o.Scale),
	}
}
