package view

import (
	"strconv"

	"github.com/five82/facet/internal/backend"
	"github.com/five82/facet/internal/semantic"
	"github.com/five82/facet/internal/style"
)

// Button is pressable content. A button without a message is described as
// disabled.
type Button[M, R any] struct {
	content View[M, R]
	p       backend.ButtonParams[M]
}

func NewButton[M, R any](content View[M, R]) Button[M, R] {
	return Button[M, R]{content: content}
}

// NewLabelButton returns a button whose content is a text label.
func NewLabelButton[M, R any](label string) Button[M, R] {
	return NewButton[M, R](NewText[M, R](label))
}

func (b Button[M, R]) ID(id string) Button[M, R] {
	b.p.ID = id
	return b
}

func (b Button[M, R]) OnPress(m M) Button[M, R] {
	b.p.OnPress = &m
	return b
}

func (b Button[M, R]) Variant(v style.Variant) Button[M, R] {
	b.p.Variant = v
	return b
}

func (b Button[M, R]) Intent(i style.Intent) Button[M, R] {
	b.p.Intent = i
	return b
}

func (b Button[M, R]) Width(l style.Length) Button[M, R] {
	b.p.Width = l
	return b
}

func (b Button[M, R]) Compact() Button[M, R] {
	b.p.Compact = true
	return b
}

func (b Button[M, R]) Render(ctx style.Context, be backend.Backend[M, R]) R {
	return be.Button(orEmpty(b.content).Render(ctx, be), b.p, ctx)
}

func (b Button[M, R]) Describe(ctx style.Context) semantic.Node {
	inner := orEmpty(b.content).Describe(ctx)
	label := inner.Content
	if label == "" {
		label = inner.Label
	}
	a := semantic.NewAccessibility(semantic.RoleButton, label)
	if ctx.IsFocused(b.p.ID) {
		a = a.WithState(semantic.StateFocused)
	}
	n := semantic.New("button").
		WithID(b.p.ID).
		WithLabel(label).
		WithAccessibility(a).
		WithChildren(inner)
	if b.p.OnPress == nil {
		n = n.Disable()
	}
	return n
}

// Toggle is an on/off switch.
type Toggle[M, R any] struct {
	p backend.ToggleParams[M]
}

func NewToggle[M, R any](label string, active bool, onToggle func(bool) M) Toggle[M, R] {
	return Toggle[M, R]{p: backend.ToggleParams[M]{Label: label, Active: active, OnToggle: onToggle}}
}

func (t Toggle[M, R]) Render(ctx style.Context, b backend.Backend[M, R]) R {
	return b.Toggle(t.p, ctx)
}

func (t Toggle[M, R]) Describe(style.Context) semantic.Node {
	a := semantic.NewAccessibility(semantic.RoleSwitch, t.p.Label)
	if t.p.Active {
		a = a.WithState(semantic.StateChecked)
	}
	return semantic.New("toggle").
		WithLabel(t.p.Label).
		WithContent(strconv.FormatBool(t.p.Active)).
		WithAccessibility(a)
}

// Slider picks a value in [min, max].
type Slider[M, R any] struct {
	p backend.SliderParams[M]
}

func NewSlider[M, R any](lo, hi, value float64, onChange func(float64) M) Slider[M, R] {
	return Slider[M, R]{p: backend.SliderParams[M]{Min: lo, Max: hi, Value: value, OnChange: onChange}}
}

func (s Slider[M, R]) Render(ctx style.Context, b backend.Backend[M, R]) R {
	return b.Slider(s.p, ctx)
}

func (s Slider[M, R]) Describe(style.Context) semantic.Node {
	value := strconv.FormatFloat(s.p.Value, 'f', -1, 64)
	return semantic.New("slider").
		WithLabel(strconv.FormatFloat(s.p.Min, 'f', -1, 64) + ".." + strconv.FormatFloat(s.p.Max, 'f', -1, 64)).
		WithContent(value).
		WithAccessibility(semantic.NewAccessibility(semantic.RoleSlider, "").WithValue(value))
}

// TextInput is a single line text field.
type TextInput[M, R any] struct {
	p backend.TextInputParams[M]
}

func NewTextInput[M, R any](value, placeholder string, onChange func(string) M) TextInput[M, R] {
	return TextInput[M, R]{p: backend.TextInputParams[M]{Value: value, Placeholder: placeholder, OnChange: onChange}}
}

func (t TextInput[M, R]) ID(id string) TextInput[M, R] {
	t.p.ID = id
	return t
}

func (t TextInput[M, R]) OnSubmit(m M) TextInput[M, R] {
	t.p.OnSubmit = &m
	return t
}

func (t TextInput[M, R]) Secure() TextInput[M, R] {
	t.p.Secure = true
	return t
}

func (t TextInput[M, R]) Variant(v style.Variant) TextInput[M, R] {
	t.p.Variant = v
	return t
}

func (t TextInput[M, R]) Render(ctx style.Context, b backend.Backend[M, R]) R {
	return b.TextInput(t.p, ctx)
}

func (t TextInput[M, R]) Describe(ctx style.Context) semantic.Node {
	value := t.p.Value
	if t.p.Secure && value != "" {
		value = "***"
	}
	a := semantic.NewAccessibility(semantic.RoleTextField, t.p.Placeholder).WithValue(value)
	if ctx.IsFocused(t.p.ID) {
		a = a.WithState(semantic.StateFocused)
	}
	return semantic.New("text_input").
		WithID(t.p.ID).
		WithLabel(t.p.Placeholder).
		WithContent(value).
		WithAccessibility(a)
}

// SidebarItem is a navigation row.
type SidebarItem[M, R any] struct {
	p backend.SidebarItemParams[M]
}

func NewSidebarItem[M, R any](title, icon string, selected bool) SidebarItem[M, R] {
	return SidebarItem[M, R]{p: backend.SidebarItemParams[M]{Title: title, Icon: icon, Selected: selected}}
}

func (s SidebarItem[M, R]) OnSelect(m M) SidebarItem[M, R] {
	s.p.OnSelect = &m
	return s
}

func (s SidebarItem[M, R]) Render(ctx style.Context, b backend.Backend[M, R]) R {
	return b.SidebarItem(s.p, ctx)
}

func (s SidebarItem[M, R]) Describe(style.Context) semantic.Node {
	a := semantic.NewAccessibility(semantic.RoleTab, s.p.Title)
	if s.p.Selected {
		a = a.WithState(semantic.StateSelected)
	}
	return semantic.New("sidebar_item").
		WithLabel(s.p.Title).
		WithContent(s.p.Icon).
		WithAccessibility(a)
}
