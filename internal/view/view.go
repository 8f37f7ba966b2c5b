package view

import (
	"slices"

	"github.com/five82/facet/internal/backend"
	"github.com/five82/facet/internal/semantic"
	"github.com/five82/facet/internal/style"
)

// View is a node of the declarative tree. M is the application message type
// and R the value produced by the backend the tree is rendered with.
//
// Render and Describe must be deterministic: calling either twice with the
// same context yields structurally equal results.
type View[M, R any] interface {
	Render(ctx style.Context, b backend.Backend[M, R]) R
	Describe(ctx style.Context) semantic.Node
}

func renderAll[M, R any](children []View[M, R], ctx style.Context, b backend.Backend[M, R]) []R {
	out := make([]R, len(children))
	for i, c := range children {
		out[i] = orEmpty(c).Render(ctx, b)
	}
	return out
}

func describeAll[M, R any](children []View[M, R], ctx style.Context) []semantic.Node {
	out := make([]semantic.Node, len(children))
	for i, c := range children {
		out[i] = orEmpty(c).Describe(ctx)
	}
	return out
}

// orEmpty stands in Empty for a missing view.
func orEmpty[M, R any](v View[M, R]) View[M, R] {
	if v == nil {
		return Empty[M, R]{}
	}
	return v
}

// appendView adds v to a copy of children so builders sharing a prefix never
// see each other's additions.
func appendView[M, R any](children []View[M, R], v ...View[M, R]) []View[M, R] {
	return append(slices.Clip(children), v...)
}

// Semantic adapts a pre-built semantic node into a view. Every backend
// renders it through SemanticNode and Describe returns it unchanged.
type Semantic[M, R any] struct {
	Node semantic.Node
}

func (s Semantic[M, R]) Render(ctx style.Context, b backend.Backend[M, R]) R {
	return b.SemanticNode(s.Node, ctx)
}

func (s Semantic[M, R]) Describe(style.Context) semantic.Node {
	return s.Node.Clone()
}

// Func builds a view from the context at render time. It is the escape hatch
// for layouts that depend on device class or size.
type Func[M, R any] func(ctx style.Context) View[M, R]

func (f Func[M, R]) resolve(ctx style.Context) View[M, R] {
	if f == nil {
		return Empty[M, R]{}
	}
	if v := f(ctx); v != nil {
		return v
	}
	return Empty[M, R]{}
}

func (f Func[M, R]) Render(ctx style.Context, b backend.Backend[M, R]) R {
	return f.resolve(ctx).Render(ctx, b)
}

func (f Func[M, R]) Describe(ctx style.Context) semantic.Node {
	return f.resolve(ctx).Describe(ctx)
}

// Empty renders as zero size space and describes as an empty node.
type Empty[M, R any] struct{}

func (Empty[M, R]) Render(ctx style.Context, b backend.Backend[M, R]) R {
	return b.Space(backend.SpaceParams{Width: style.Fixed(0), Height: style.Fixed(0)}, ctx)
}

func (Empty[M, R]) Describe(style.Context) semantic.Node {
	return semantic.New("empty")
}
