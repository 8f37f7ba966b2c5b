package spatial

import "github.com/five82/facet/internal/backend"

// Layout is how a node arranges its children.
type Layout int

const (
	LayoutVertical Layout = iota
	LayoutHorizontal
	LayoutWrap
	LayoutDepth
	LayoutGrid
)

var layoutNames = []string{"vertical", "horizontal", "wrap", "depth", "grid"}

func (l Layout) String() string {
	if l < 0 || int(l) >= len(layoutNames) {
		return "vertical"
	}
	return layoutNames[l]
}

func (l Layout) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

// Node is one element of the spatial scene graph. Positions in Transform are
// relative to the parent.
type Node[M any] struct {
	Role         string            `json:"role" yaml:"role"`
	Width        float64           `json:"width" yaml:"width"`
	Height       float64           `json:"height" yaml:"height"`
	Depth        float64           `json:"depth" yaml:"depth"`
	Transform    backend.Transform `json:"transform" yaml:"transform"`
	Bounds       BoundingBox3D     `json:"bounds" yaml:"bounds"`
	Layout       Layout            `json:"layout" yaml:"layout"`
	Focused      bool              `json:"focused,omitempty" yaml:"focused,omitempty"`
	Billboarding bool              `json:"billboarding,omitempty" yaml:"billboarding,omitempty"`
	OnPress      *M                `json:"-" yaml:"-"`
	Children     []Node[M]         `json:"children,omitempty" yaml:"children,omitempty"`
}

func sized[M any](role string, width, height float64) Node[M] {
	depth := 1.0
	if width == 0 && height == 0 {
		depth = 0
	}
	return Node[M]{
		Role:      role,
		Width:     width,
		Height:    height,
		Depth:     depth,
		Transform: backend.Identity(),
		Bounds:    FromSize(width, height, depth),
	}
}

// Hit is the result of a successful hit test.
type Hit[M any] struct {
	Distance float64
	Point    backend.Vec3
	Role     string
	Message  *M
}

// HitTest casts r against the node and its descendants. The closest child hit
// wins; when no child is hit but the node's own bounds are, the node itself is
// reported.
func (n Node[M]) HitTest(r Ray) (Hit[M], bool) {
	local := Ray{Origin: r.Origin.Sub(n.Transform.Position), Direction: r.Direction}
	dist, ok := n.Bounds.IntersectRay(local)
	if !ok {
		return Hit[M]{}, false
	}

	var best Hit[M]
	found := false
	for _, child := range n.Children {
		hit, ok := child.HitTest(local)
		if !ok {
			continue
		}
		if !found || hit.Distance < best.Distance {
			best, found = hit, true
		}
	}
	if found {
		best.Point = best.Point.Add(n.Transform.Position)
		return best, true
	}
	return Hit[M]{
		Distance: dist,
		Point:    r.At(dist),
		Role:     n.Role,
		Message:  n.OnPress,
	}, true
}

// Dispatch hit tests r and sends the hit node's press message to sink. It
// reports whether a message was delivered.
func (n Node[M]) Dispatch(r Ray, sink backend.Sink[M]) bool {
	hit, ok := n.HitTest(r)
	if !ok {
		return false
	}
	return sink.SendPtr(hit.Message)
}

// Walk visits n and its descendants depth first.
func (n Node[M]) Walk(fn func(depth int, node Node[M])) {
	n.walk(0, fn)
}

func (n Node[M]) walk(depth int, fn func(int, Node[M])) {
	fn(depth, n)
	for _, c := range n.Children {
		c.walk(depth+1, fn)
	}
}

// Strip returns a copy of the graph with every message removed, suitable for
// serialization or sharing across message types.
func Strip[M any](n Node[M]) Node[struct{}] {
	out := Node[struct{}]{
		Role:         n.Role,
		Width:        n.Width,
		Height:       n.Height,
		Depth:        n.Depth,
		Transform:    n.Transform,
		Bounds:       n.Bounds,
		Layout:       n.Layout,
		Focused:      n.Focused,
		Billboarding: n.Billboarding,
	}
	if len(n.Children) > 0 {
		out.Children = make([]Node[struct{}], len(n.Children))
		for i, c := range n.Children {
			out.Children[i] = Strip(c)
		}
	}
	return out
}
