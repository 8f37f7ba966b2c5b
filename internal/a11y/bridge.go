// Package a11y turns semantic tree updates into accessibility events.
//
// A Bridge broadcasts one NodeUpdated event per Update to its handlers, then
// walks the whole tree calling visitors. Tree is the visitor that maintains a
// flat platform accessibility tree. Dispatch is synchronous; handlers and
// visitors must not register or unregister anything while Update runs.
package a11y

import (
	"go.uber.org/zap"

	"github.com/five82/facet/internal/semantic"
)

// EventKind identifies what happened to a node.
type EventKind int

const (
	NodeUpdated EventKind = iota
)

func (k EventKind) String() string {
	switch k {
	case NodeUpdated:
		return "node_updated"
	default:
		return "unknown"
	}
}

// Event is delivered to every handler.
type Event struct {
	Kind EventKind
	Node semantic.Node
}

// Handler receives bridge events. A returned error is logged and does not
// stop other handlers.
type Handler func(Event) error

// Visitor is called for the root and every descendant, parents first.
// path holds the child index at each level and is empty for the root; it is
// only valid for the duration of the call.
type Visitor interface {
	Visit(path []int, n semantic.Node)
}

// VisitorFunc adapts a function to Visitor.
type VisitorFunc func(path []int, n semantic.Node)

func (f VisitorFunc) Visit(path []int, n semantic.Node) { f(path, n) }

// Bridge fans semantic updates out to platform integrations.
type Bridge struct {
	log      *zap.Logger
	enabled  bool
	handlers []Handler
	visitors []Visitor
}

// NewBridge returns an enabled bridge. A nil logger discards output.
func NewBridge(log *zap.Logger) *Bridge {
	if log == nil {
		log = zap.NewNop()
	}
	return &Bridge{log: log, enabled: true}
}

// Handle registers h. Handlers run in registration order.
func (b *Bridge) Handle(h Handler) {
	if h != nil {
		b.handlers = append(b.handlers, h)
	}
}

// AddVisitor registers v for the traversal that follows every broadcast.
func (b *Bridge) AddVisitor(v Visitor) {
	if v != nil {
		b.visitors = append(b.visitors, v)
	}
}

func (b *Bridge) SetEnabled(on bool) { b.enabled = on }

func (b *Bridge) Enabled() bool { return b.enabled }

// Update publishes root. It does nothing while the bridge is disabled.
func (b *Bridge) Update(root semantic.Node) {
	if !b.enabled {
		return
	}
	ev := Event{Kind: NodeUpdated, Node: root}
	for i, h := range b.handlers {
		if err := h(ev); err != nil {
			b.log.Debug("accessibility handler failed",
				zap.Int("handler", i),
				zap.String("role", root.Role),
				zap.Error(err))
		}
	}
	if len(b.visitors) == 0 {
		return
	}
	visited := 0
	b.walk(root, make([]int, 0, 8), &visited)
	b.log.Debug("accessibility tree visited", zap.Int("nodes", visited))
}

func (b *Bridge) walk(n semantic.Node, path []int, visited *int) {
	*visited++
	for _, v := range b.visitors {
		v.Visit(path, n)
	}
	for i, child := range n.Children {
		b.walk(child, append(path, i), visited)
	}
}
