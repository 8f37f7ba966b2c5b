package semantic

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Role is the platform accessibility role of an element.
type Role int

const (
	RoleNone Role = iota
	RoleButton
	RoleCheckBox
	RoleSwitch
	RoleSlider
	RoleTextField
	RoleStaticText
	RoleHeading
	RoleImage
	RoleLink
	RoleList
	RoleListItem
	RoleGroup
	RoleScrollView
	RoleTab
	RoleToolbar
	RoleDialog
	RoleProgressIndicator
	RoleWindow
)

var roleNames = []string{
	"None", "Button", "CheckBox", "Switch", "Slider", "TextField", "StaticText",
	"Heading", "Image", "Link", "List", "ListItem", "Group", "ScrollView", "Tab",
	"Toolbar", "Dialog", "ProgressIndicator", "Window",
}

func (r Role) String() string {
	if r < 0 || int(r) >= len(roleNames) {
		return "Unknown"
	}
	return roleNames[r]
}

// Valid reports whether r is one of the declared roles.
func (r Role) Valid() bool { return r >= 0 && int(r) < len(roleNames) }

// ParseRole matches a role name case-insensitively.
func ParseRole(s string) (Role, bool) {
	for i, name := range roleNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return Role(i), true
		}
	}
	return RoleNone, false
}

func (r Role) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("invalid accessibility role %d", int(r))
	}
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(b []byte) error {
	v, ok := ParseRole(string(b))
	if !ok {
		return fmt.Errorf("unknown accessibility role %q", b)
	}
	*r = v
	return nil
}

// States is a set of accessibility state flags.
type States uint16

const (
	StateChecked States = 1 << iota
	StateSelected
	StateExpanded
	StateFocused
	StateBusy
	StateReadOnly
	StateRequired
)

var stateNames = []struct {
	flag States
	name string
}{
	{StateChecked, "checked"},
	{StateSelected, "selected"},
	{StateExpanded, "expanded"},
	{StateFocused, "focused"},
	{StateBusy, "busy"},
	{StateReadOnly, "read_only"},
	{StateRequired, "required"},
}

// Has reports whether every flag in f is set.
func (s States) Has(f States) bool { return s&f == f }

// Names lists the set flags in declaration order.
func (s States) Names() []string {
	var out []string
	for _, st := range stateNames {
		if s.Has(st.flag) {
			out = append(out, st.name)
		}
	}
	return out
}

// MarshalJSON writes the set flags as a list of names.
func (s States) MarshalJSON() ([]byte, error) {
	names := s.Names()
	if names == nil {
		names = []string{}
	}
	return json.Marshal(names)
}

// UnmarshalJSON reads a list of names.
func (s *States) UnmarshalJSON(b []byte) error {
	var names []string
	if err := json.Unmarshal(b, &names); err != nil {
		return err
	}
	var out States
	for _, name := range names {
		found := false
		for _, st := range stateNames {
			if strings.EqualFold(st.name, name) {
				out |= st.flag
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("unknown accessibility state %q", name)
		}
	}
	*s = out
	return nil
}

// Accessibility is the platform-facing descriptor attached to a node.
type Accessibility struct {
	Role     Role   `json:"role"`
	Label    string `json:"label,omitempty"`
	Hint     string `json:"hint,omitempty"`
	Value    string `json:"value,omitempty"`
	States   States `json:"states,omitempty"`
	Hidden   bool   `json:"hidden,omitempty"`
	Disabled bool   `json:"disabled,omitempty"`
}

// NewAccessibility returns a descriptor with a role and label.
func NewAccessibility(role Role, label string) Accessibility {
	return Accessibility{Role: role, Label: label}
}

// WithHint returns a copy with the hint set.
func (a Accessibility) WithHint(hint string) Accessibility {
	a.Hint = hint
	return a
}

// WithValue returns a copy with the value set.
func (a Accessibility) WithValue(value string) Accessibility {
	a.Value = value
	return a
}

// WithState returns a copy with the flags added.
func (a Accessibility) WithState(f States) Accessibility {
	a.States |= f
	return a
}
