package a11y

import (
	"fmt"
	"strings"

	"github.com/five82/facet/internal/semantic"
)

// Node is one element of the platform accessibility tree.
type Node struct {
	ID        int             `json:"id"`
	Parent    int             `json:"parent"`
	Role      semantic.Role   `json:"role"`
	Label     string          `json:"label,omitempty"`
	Hint      string          `json:"hint,omitempty"`
	Value     string          `json:"value,omitempty"`
	States    semantic.States `json:"states,omitempty"`
	Hidden    bool            `json:"hidden,omitempty"`
	Disabled  bool            `json:"disabled,omitempty"`
	Protected bool            `json:"protected,omitempty"`
	Tag       string          `json:"tag,omitempty"`
	Depth     int             `json:"depth"`
}

// Tree flattens semantic trees into platform nodes in document order. It is
// rebuilt from scratch whenever the bridge visits a new root. The root has
// Parent -1.
type Tree struct {
	nodes []Node
	// stack holds the index of the last node seen at each depth.
	stack []int
}

func (t *Tree) Visit(path []int, n semantic.Node) {
	depth := len(path)
	if depth == 0 {
		t.nodes = t.nodes[:0]
		t.stack = t.stack[:0]
	}
	parent := -1
	if depth > 0 && depth <= len(t.stack) {
		parent = t.stack[depth-1]
	}

	pn := platformNode(n)
	pn.ID = len(t.nodes)
	pn.Parent = parent
	pn.Depth = depth
	t.nodes = append(t.nodes, pn)

	t.stack = append(t.stack[:min(depth, len(t.stack))], pn.ID)
}

// Nodes returns a copy of the current tree.
func (t *Tree) Nodes() []Node {
	out := make([]Node, len(t.nodes))
	copy(out, t.nodes)
	return out
}

func (t *Tree) Len() int { return len(t.nodes) }

// Children returns the direct children of id.
func (t *Tree) Children(id int) []Node {
	var out []Node
	for _, n := range t.nodes {
		if n.Parent == id && n.ID != id {
			out = append(out, n)
		}
	}
	return out
}

// Find returns the first node with the given role and label.
func (t *Tree) Find(role semantic.Role, label string) (Node, bool) {
	for _, n := range t.nodes {
		if n.Role == role && n.Label == label {
			return n, true
		}
	}
	return Node{}, false
}

// Focusable lists the nodes a screen reader would stop on.
func (t *Tree) Focusable() []Node {
	var out []Node
	for _, n := range t.nodes {
		if n.Hidden || n.Disabled {
			continue
		}
		switch n.Role {
		case semantic.RoleButton, semantic.RoleCheckBox, semantic.RoleSwitch, semantic.RoleSlider,
			semantic.RoleTextField, semantic.RoleLink, semantic.RoleTab:
			out = append(out, n)
		}
	}
	return out
}

// String renders the tree one node per line, indented by depth.
func (t *Tree) String() string {
	var b strings.Builder
	for _, n := range t.nodes {
		if n.Role == semantic.RoleNone && n.Label == "" {
			continue
		}
		b.WriteString(strings.Repeat("  ", n.Depth))
		b.WriteString(n.Role.String())
		if n.Label != "" {
			fmt.Fprintf(&b, " %q", n.Label)
		}
		if n.Value != "" {
			fmt.Fprintf(&b, " = %q", n.Value)
		}
		var flags []string
		flags = append(flags, n.States.Names()...)
		if n.Disabled {
			flags = append(flags, "disabled")
		}
		if n.Protected {
			flags = append(flags, "protected")
		}
		if len(flags) > 0 {
			fmt.Fprintf(&b, " [%s]", strings.Join(flags, ", "))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func platformNode(n semantic.Node) Node {
	pn := Node{
		Hidden:    n.Hidden,
		Disabled:  n.Disabled,
		Protected: n.Protected,
		Tag:       n.NeuralTag,
	}
	if a := n.Accessibility; a != nil {
		pn.Role = a.Role
		pn.Label = a.Label
		pn.Hint = a.Hint
		pn.Value = a.Value
		pn.States = a.States
		pn.Hidden = pn.Hidden || a.Hidden
		pn.Disabled = pn.Disabled || a.Disabled
	} else {
		pn.Role = RoleFor(n.Role)
	}
	if pn.Label == "" {
		pn.Label = n.Label
	}
	if pn.Label == "" {
		pn.Label = n.Content
	}
	if pn.Hint == "" {
		pn.Hint = n.Documentation
	}
	return pn
}

var roleMap = map[string]semantic.Role{
	"button":       semantic.RoleButton,
	"toggle":       semantic.RoleSwitch,
	"slider":       semantic.RoleSlider,
	"text_input":   semantic.RoleTextField,
	"text":         semantic.RoleStaticText,
	"rich_text":    semantic.RoleStaticText,
	"markdown":     semantic.RoleStaticText,
	"badge":        semantic.RoleStaticText,
	"section":      semantic.RoleGroup,
	"image":        semantic.RoleImage,
	"video":        semantic.RoleImage,
	"icon":         semantic.RoleImage,
	"web_view":     semantic.RoleGroup,
	"scroll_view":  semantic.RoleScrollView,
	"sidebar_item": semantic.RoleTab,
	"vstack":       semantic.RoleGroup,
	"hstack":       semantic.RoleGroup,
	"zstack":       semantic.RoleGroup,
	"wrap":         semantic.RoleGroup,
	"grid":         semantic.RoleList,
	"form":         semantic.RoleGroup,
	"card":         semantic.RoleGroup,
	"glass_card":   semantic.RoleGroup,
	"container":    semantic.RoleGroup,
	"action":       semantic.RoleButton,
}

// RoleFor maps a semantic role name to an accessibility role. Unmapped and
// decorative roles map to RoleNone.
func RoleFor(role string) semantic.Role {
	return roleMap[strings.ToLower(role)]
}
