package style

import "golang.org/x/text/language"

// Context is the environment a view is rendered or described in. It is a
// plain value supplied by the caller; views never construct one.
type Context struct {
	// Theme holds color and geometry tokens.
	Theme Tokens
	// Device is the hardware class.
	Device DeviceType
	// Size is the space available to the root view.
	Size Size
	// SafeArea is the inset reserved by the platform.
	SafeArea Padding
	// FocusedID is the id of the focused control, if any.
	FocusedID string
	// Locale drives locale-aware text transforms.
	Locale language.Tag
	// Scale is the display scaling factor. Zero means 1.
	Scale float64
	// Billboarding makes spatial nodes face the viewer.
	Billboarding bool
	// InScroll is set while rendering inside a scroll view.
	InScroll bool
}

// NewContext returns a context for the given tokens and size with the device
// class derived from the width.
func NewContext(tokens Tokens, size Size) Context {
	return Context{
		Theme:  tokens,
		Device: DeviceForWidth(size.Width),
		Size:   size,
		Locale: language.English,
		Scale:  1,
	}
}

// WithSize returns a copy of c sized to s.
func (c Context) WithSize(s Size) Context {
	c.Size = s
	return c
}

// WithWidth returns a copy of c with only the width replaced.
func (c Context) WithWidth(w float64) Context {
	c.Size.Width = w
	return c
}

// WithFocus returns a copy of c with id focused.
func (c Context) WithFocus(id string) Context {
	c.FocusedID = id
	return c
}

// WithTheme returns a copy of c using tokens.
func (c Context) WithTheme(tokens Tokens) Context {
	c.Theme = tokens
	return c
}

// WithLocale returns a copy of c using tag.
func (c Context) WithLocale(tag language.Tag) Context {
	c.Locale = tag
	return c
}

// IsFocused reports whether id is the focused control. An empty id is never
// focused.
func (c Context) IsFocused(id string) bool {
	return id != "" && c.FocusedID == id
}

// IsDark reports whether the active tone is dark.
func (c Context) IsDark() bool { return c.Theme.Tone == ToneDark }

// ScaleFactor returns Scale, treating zero as 1.
func (c Context) ScaleFactor() float64 {
	if c.Scale <= 0 {
		return 1
	}
	return c.Scale
}

// ContentWidth is the available width minus the safe area.
func (c Context) ContentWidth() float64 {
	w := c.Size.Width - c.SafeArea.Horizontal()
	if w < 0 {
		return 0
	}
	return w
}
