package canvas

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/five82/facet/internal/backend"
	"github.com/five82/facet/internal/style"
)

// Node is one element of the retained scene graph. Every visual property is
// resolved against the theme when the node is built, so a graph can be
// painted or inspected without the context that produced it.
type Node[M any] struct {
	Kind    string `yaml:"kind"`
	ID      string `yaml:"id,omitempty"`
	Role    string `yaml:"role,omitempty"`
	Text    string `yaml:"text,omitempty"`
	Axis    string `yaml:"axis,omitempty"`
	Columns int    `yaml:"columns,omitempty"`

	Width   string        `yaml:"width,omitempty"`
	Height  string        `yaml:"height,omitempty"`
	Spacing float64       `yaml:"spacing,omitempty"`
	Padding style.Padding `yaml:"padding,omitempty"`
	AlignX  string        `yaml:"align_x,omitempty"`
	AlignY  string        `yaml:"align_y,omitempty"`

	Foreground  style.Color     `yaml:"foreground,omitempty"`
	Background  style.Color     `yaml:"background,omitempty"`
	BorderColor style.Color     `yaml:"border_color,omitempty"`
	BorderWidth float64         `yaml:"border_width,omitempty"`
	Radius      float64         `yaml:"radius,omitempty"`
	Opacity     float64         `yaml:"opacity,omitempty"`
	Shadow      *backend.Shadow `yaml:"shadow,omitempty"`
	FontSize    float64         `yaml:"font_size,omitempty"`
	Bold        bool            `yaml:"bold,omitempty"`
	Monospace   bool            `yaml:"monospace,omitempty"`

	Tooltip   string             `yaml:"tooltip,omitempty"`
	Focused   bool               `yaml:"focused,omitempty"`
	Active    bool               `yaml:"active,omitempty"`
	Value     string             `yaml:"value,omitempty"`
	Transform *backend.Transform `yaml:"transform,omitempty"`
	Children  []Node[M]          `yaml:"children,omitempty"`

	OnPress  *M                    `yaml:"-"`
	OnChange func(string) M        `yaml:"-"`
	OnSubmit *M                    `yaml:"-"`
	OnSlide  func(float64) M       `yaml:"-"`
	OnToggle func(bool) M          `yaml:"-"`
	OnMove   func(backend.Point) M `yaml:"-"`
}

// Find returns the first node in depth-first order with the given id.
func (n Node[M]) Find(id string) (Node[M], bool) {
	if id == "" {
		return Node[M]{}, false
	}
	if n.ID == id {
		return n, true
	}
	for _, c := range n.Children {
		if found, ok := c.Find(id); ok {
			return found, true
		}
	}
	return Node[M]{}, false
}

// Press activates the node with the given id. Toggles flip their state;
// everything else sends its press message.
func (n Node[M]) Press(id string, sink backend.Sink[M]) bool {
	target, ok := n.Find(id)
	if !ok {
		return false
	}
	if target.OnToggle != nil {
		sink.Send(target.OnToggle(!target.Active))
		return sink != nil
	}
	if sink.SendPtr(target.OnPress) {
		return true
	}
	return sink.SendPtr(target.OnSubmit)
}

// Type replaces the value of the text field with the given id.
func (n Node[M]) Type(id, value string, sink backend.Sink[M]) bool {
	target, ok := n.Find(id)
	if !ok || target.OnChange == nil || sink == nil {
		return false
	}
	sink.Send(target.OnChange(value))
	return true
}

// Slide moves the slider with the given id to value.
func (n Node[M]) Slide(id string, value float64, sink backend.Sink[M]) bool {
	target, ok := n.Find(id)
	if !ok || target.OnSlide == nil || sink == nil {
		return false
	}
	sink.Send(target.OnSlide(value))
	return true
}

// Count returns the number of nodes in the graph.
func (n Node[M]) Count() int {
	total := 1
	for _, c := range n.Children {
		total += c.Count()
	}
	return total
}

// Dump serializes the graph as YAML. Handlers are omitted.
func Dump[M any](n Node[M]) ([]byte, error) {
	out, err := yaml.Marshal(n)
	if err != nil {
		return nil, fmt.Errorf("dump canvas graph: %w", err)
	}
	return out, nil
}
