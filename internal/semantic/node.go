package semantic

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/gowebpki/jcs"
)

// Node is the AI and accessibility facing description of one UI element.
// Empty fields are omitted from the JSON form; only the role is always
// written.
type Node struct {
	Role             string         `json:"r"`
	ID               string         `json:"id,omitempty"`
	Label            string         `json:"l,omitempty"`
	Content          string         `json:"c,omitempty"`
	Children         []Node         `json:"ch,omitempty"`
	NeuralTag        string         `json:"t,omitempty"`
	Documentation    string         `json:"d,omitempty"`
	Accessibility    *Accessibility `json:"a,omitempty"`
	Disabled         bool           `json:"dis,omitempty"`
	Hidden           bool           `json:"hid,omitempty"`
	Protected        bool           `json:"p,omitempty"`
	ProtectionReason string         `json:"pr,omitempty"`
	Depth            *float64       `json:"z,omitempty"`
	Scale            *[3]float64    `json:"s,omitempty"`
	Color            string         `json:"col,omitempty"`
}

// New returns a node with the given role.
func New(role string) Node {
	return Node{Role: role}
}

func (n Node) WithID(id string) Node {
	n.ID = id
	return n
}

func (n Node) WithLabel(label string) Node {
	n.Label = label
	return n
}

func (n Node) WithContent(content string) Node {
	n.Content = content
	return n
}

// WithChildren appends children after any existing ones.
func (n Node) WithChildren(children ...Node) Node {
	n.Children = append(slices.Clip(n.Children), children...)
	return n
}

func (n Node) WithTag(tag string) Node {
	n.NeuralTag = tag
	return n
}

func (n Node) WithDocumentation(doc string) Node {
	n.Documentation = doc
	return n
}

func (n Node) WithAccessibility(a Accessibility) Node {
	n.Accessibility = &a
	return n
}

func (n Node) WithColor(hex string) Node {
	n.Color = hex
	return n
}

func (n Node) WithDepth(z float64) Node {
	n.Depth = &z
	return n
}

func (n Node) WithScale(x, y, z float64) Node {
	n.Scale = &[3]float64{x, y, z}
	return n
}

// Protect marks the node as requiring human approval. An empty reason is
// replaced with a generic one so the node stays valid.
func (n Node) Protect(reason string) Node {
	if strings.TrimSpace(reason) == "" {
		reason = "Requires confirmation"
	}
	n.Protected = true
	n.ProtectionReason = reason
	return n
}

func (n Node) Disable() Node {
	n.Disabled = true
	return n
}

func (n Node) Hide() Node {
	n.Hidden = true
	return n
}

// DepthOr returns the depth or def when unset.
func (n Node) DepthOr(def float64) float64 {
	if n.Depth == nil {
		return def
	}
	return *n.Depth
}

// IsZero reports whether n carries no data at all.
func (n Node) IsZero() bool {
	return n.Role == "" && n.ID == "" && n.Label == "" && n.Content == "" &&
		len(n.Children) == 0 && n.NeuralTag == "" && n.Documentation == "" &&
		n.Accessibility == nil && !n.Disabled && !n.Hidden && !n.Protected &&
		n.ProtectionReason == "" && n.Depth == nil && n.Scale == nil && n.Color == ""
}

// FindDeep returns the first node in pre-order, n included, that satisfies
// pred.
func (n Node) FindDeep(pred func(Node) bool) (Node, bool) {
	if pred(n) {
		return n, true
	}
	for _, child := range n.Children {
		if found, ok := child.FindDeep(pred); ok {
			return found, true
		}
	}
	return Node{}, false
}

// FindByTag looks up a node by neural tag.
func (n Node) FindByTag(tag string) (Node, bool) {
	if tag == "" {
		return Node{}, false
	}
	return n.FindDeep(func(c Node) bool { return c.NeuralTag == tag })
}

// Walk visits n and every descendant in pre-order. depth is zero for n.
// Returning false from fn skips the node's children.
func (n Node) Walk(fn func(depth int, node Node) bool) {
	n.walk(0, fn)
}

func (n Node) walk(depth int, fn func(int, Node) bool) {
	if !fn(depth, n) {
		return
	}
	for _, child := range n.Children {
		child.walk(depth+1, fn)
	}
}

// Count returns the number of nodes in the tree rooted at n.
func (n Node) Count() int {
	total := 0
	n.Walk(func(int, Node) bool {
		total++
		return true
	})
	return total
}

// Clone returns a deep copy of n.
func (n Node) Clone() Node {
	out := n
	if n.Accessibility != nil {
		a := *n.Accessibility
		out.Accessibility = &a
	}
	if n.Depth != nil {
		z := *n.Depth
		out.Depth = &z
	}
	if n.Scale != nil {
		s := *n.Scale
		out.Scale = &s
	}
	if n.Children != nil {
		out.Children = make([]Node, len(n.Children))
		for i, child := range n.Children {
			out.Children[i] = child.Clone()
		}
	}
	return out
}

// Validate checks the tree invariants and returns every violation joined.
func (n Node) Validate() error {
	var errs []error
	n.validate("root", &errs)
	return errors.Join(errs...)
}

func (n Node) validate(path string, errs *[]error) {
	if strings.TrimSpace(n.Role) == "" {
		*errs = append(*errs, fmt.Errorf("%s: empty role", path))
	}
	if n.Protected && strings.TrimSpace(n.ProtectionReason) == "" {
		*errs = append(*errs, fmt.Errorf("%s: protected node without reason", path))
	}
	if n.Accessibility != nil && !n.Accessibility.Role.Valid() {
		*errs = append(*errs, fmt.Errorf("%s: invalid accessibility role %d", path, int(n.Accessibility.Role)))
	}
	for i, child := range n.Children {
		child.validate(fmt.Sprintf("%s/ch[%d]", path, i), errs)
	}
}

// Marshal returns the compact JSON form.
func (n Node) Marshal() ([]byte, error) {
	b, err := json.Marshal(n)
	if err != nil {
		return nil, fmt.Errorf("marshal semantic node: %w", err)
	}
	return b, nil
}

// MarshalIndent returns the compact-key JSON form, indented for humans.
func (n Node) MarshalIndent() ([]byte, error) {
	b, err := json.MarshalIndent(n, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal semantic node: %w", err)
	}
	return b, nil
}

// Fingerprint is the hex SHA-256 of the RFC 8785 canonical JSON form. Two
// structurally equal trees always share a fingerprint.
func (n Node) Fingerprint() (string, error) {
	raw, err := n.Marshal()
	if err != nil {
		return "", err
	}
	canonical, err := jcs.Transform(raw)
	if err != nil {
		return "", fmt.Errorf("canonicalize semantic node: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

// Unmarshal decodes the compact JSON form.
func Unmarshal(data []byte) (Node, error) {
	var n Node
	if err := json.Unmarshal(data, &n); err != nil {
		return Node{}, fmt.Errorf("decode semantic node: %w", err)
	}
	return n, nil
}
