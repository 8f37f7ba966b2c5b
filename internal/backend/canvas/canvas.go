// Package canvas builds a retained scene graph for graphical front ends.
//
// It is the only backend that owns full styling: colors, borders, radii and
// font sizes are resolved from the context's theme tokens while the graph is
// built. Interactive nodes keep their messages and can be driven through
// Press, Type and Slide, which is how tests and headless front ends exercise
// a view.
package canvas

import (
	"fmt"

	"github.com/five82/facet/internal/backend"
	"github.com/five82/facet/internal/semantic"
	"github.com/five82/facet/internal/style"
)

// BaseFontSize is the body text size before display scaling.
const BaseFontSize = 14.0

// Backend produces canvas nodes. The zero value is ready to use.
type Backend[M any] struct{}

var _ backend.Backend[struct{}, Node[struct{}]] = Backend[struct{}]{}

// New returns a canvas backend for message type M.
func New[M any]() Backend[M] { return Backend[M]{} }

func fontSize(size float64, ctx style.Context) float64 {
	if size <= 0 {
		size = BaseFontSize
	}
	return size * ctx.ScaleFactor()
}

func lengthString(l style.Length) string {
	if l == (style.Length{}) {
		return ""
	}
	return l.String()
}

func stack[M any](axis string, children []Node[M], p backend.StackParams) Node[M] {
	return Node[M]{
		Kind:     "stack",
		Axis:     axis,
		Spacing:  p.Spacing,
		Padding:  p.Padding,
		Width:    lengthString(p.Width),
		Height:   lengthString(p.Height),
		AlignX:   p.AlignX.String(),
		AlignY:   p.AlignY.String(),
		Children: children,
	}
}

// SemanticNode renders an opaque placeholder labelled with the node's role.
func (Backend[M]) SemanticNode(node semantic.Node, ctx style.Context) Node[M] {
	return Node[M]{
		Kind:       "placeholder",
		ID:         node.ID,
		Role:       node.Role,
		Text:       node.Label,
		Foreground: ctx.Theme.Muted,
		FontSize:   fontSize(0, ctx),
	}
}

func (Backend[M]) VStack(children []Node[M], p backend.StackParams, _ style.Context) Node[M] {
	return stack("vertical", children, p)
}

func (Backend[M]) HStack(children []Node[M], p backend.StackParams, _ style.Context) Node[M] {
	return stack("horizontal", children, p)
}

func (Backend[M]) Wrap(children []Node[M], p backend.WrapParams, _ style.Context) Node[M] {
	n := stack("wrap", children, p.StackParams)
	n.Kind = "wrap"
	return n
}

func (Backend[M]) ZStack(children []Node[M], p backend.ZStackParams, _ style.Context) Node[M] {
	return Node[M]{
		Kind:     "stack",
		Axis:     "depth",
		Width:    lengthString(p.Width),
		Height:   lengthString(p.Height),
		AlignX:   p.Alignment.String(),
		AlignY:   p.Alignment.String(),
		Children: children,
	}
}

func (Backend[M]) Grid(children []Node[M], p backend.GridParams, _ style.Context) Node[M] {
	return Node[M]{
		Kind:     "grid",
		Columns:  max(p.Columns, 1),
		Spacing:  p.Spacing,
		Children: children,
	}
}

// Text resolves its color from the explicit color, then the intent, then the
// dim flag, then the theme's text color.
func (Backend[M]) Text(p backend.TextParams, ctx style.Context) Node[M] {
	fg := ctx.Theme.Text
	switch {
	case !p.Color.IsZero():
		fg = p.Color
	case p.Intent != nil:
		fg = ctx.Theme.IntentColor(*p.Intent)
	case p.Dim:
		fg = ctx.Theme.Muted
	}
	return Node[M]{
		Kind:       "text",
		Text:       p.Content,
		Foreground: fg,
		FontSize:   fontSize(p.Size, ctx),
		Bold:       p.Bold,
		Monospace:  p.Monospace,
		Width:      lengthString(p.Width),
		AlignX:     p.Alignment.String(),
	}
}

func (b Backend[M]) RichText(p backend.RichTextParams, ctx style.Context) Node[M] {
	spans := make([]Node[M], len(p.Spans))
	for i, s := range p.Spans {
		size := s.Size
		if size <= 0 {
			size = p.Size
		}
		spans[i] = b.Text(backend.TextParams{
			Content:   s.Content,
			Size:      size,
			Color:     s.Color,
			Bold:      s.Bold,
			Dim:       s.Dim,
			Monospace: s.Monospace,
		}, ctx)
	}
	return Node[M]{
		Kind:     "rich_text",
		Text:     p.PlainText(),
		Width:    lengthString(p.Width),
		AlignX:   p.Alignment.String(),
		Children: spans,
	}
}

func (Backend[M]) Markdown(p backend.MarkdownParams, ctx style.Context) Node[M] {
	n := Node[M]{
		Kind:       "markdown",
		Text:       p.Source,
		Foreground: ctx.Theme.Text,
		FontSize:   fontSize(0, ctx),
	}
	if p.Width > 0 {
		n.Width = style.Fixed(p.Width).String()
	}
	return n
}

func (Backend[M]) Icon(p backend.IconParams, ctx style.Context) Node[M] {
	fg := p.Color
	if fg.IsZero() {
		fg = ctx.Theme.Text
	}
	return Node[M]{Kind: "icon", Text: p.Name, Foreground: fg, FontSize: fontSize(p.Size, ctx)}
}

func (Backend[M]) Divider(ctx style.Context) Node[M] {
	return Node[M]{Kind: "divider", Background: ctx.Theme.BorderMuted, Height: style.Fixed(1).String(), Width: style.Fill.String()}
}

func (Backend[M]) Space(p backend.SpaceParams, _ style.Context) Node[M] {
	return Node[M]{Kind: "space", Width: lengthString(p.Width), Height: lengthString(p.Height)}
}

func colorOr(c, def style.Color) style.Color {
	if c.IsZero() {
		return def
	}
	return c
}

func (Backend[M]) Circle(p backend.CircleParams, ctx style.Context) Node[M] {
	d := style.Fixed(p.Radius * 2).String()
	return Node[M]{Kind: "circle", Width: d, Height: d, Radius: p.Radius, Background: colorOr(p.Color, ctx.Theme.Primary)}
}

func (Backend[M]) Arc(p backend.ArcParams, ctx style.Context) Node[M] {
	d := style.Fixed(p.Radius * 2).String()
	return Node[M]{
		Kind:        "arc",
		Width:       d,
		Height:      d,
		Radius:      p.Radius,
		Text:        fmt.Sprintf("%g..%g", p.StartAngle, p.EndAngle),
		BorderColor: colorOr(p.Color, ctx.Theme.Primary),
	}
}

func (Backend[M]) Path(p backend.PathParams, ctx style.Context) Node[M] {
	return Node[M]{
		Kind:        "path",
		Text:        fmt.Sprintf("%d points", len(p.Points)),
		BorderColor: colorOr(p.Color, ctx.Theme.Text),
		BorderWidth: p.Width,
	}
}

func (Backend[M]) Capsule(p backend.CapsuleParams, ctx style.Context) Node[M] {
	n := Node[M]{
		Kind:       "capsule",
		Width:      lengthString(p.Width),
		Height:     lengthString(p.Height),
		Background: colorOr(p.Color, ctx.Theme.SurfaceAlt),
	}
	if p.Height.IsFixed() {
		n.Radius = p.Height.Value / 2
	}
	return n
}

func (Backend[M]) Rectangle(p backend.RectangleParams, ctx style.Context) Node[M] {
	return Node[M]{
		Kind:        "rectangle",
		Width:       lengthString(p.Width),
		Height:      lengthString(p.Height),
		Background:  colorOr(p.Color, ctx.Theme.Surface),
		Radius:      p.Radius,
		BorderWidth: p.BorderWidth,
		BorderColor: p.BorderColor,
	}
}

// Button styling follows the variant: solid fills with the intent color,
// soft uses the alternate surface, outline draws an intent colored border,
// the rest are bare.
func (Backend[M]) Button(content Node[M], p backend.ButtonParams[M], ctx style.Context) Node[M] {
	accent := ctx.Theme.IntentColor(p.Intent)
	n := Node[M]{
		Kind:     "button",
		ID:       p.ID,
		Role:     p.Variant.String() + "_" + p.Intent.String(),
		Width:    lengthString(p.Width),
		Height:   lengthString(p.Height),
		Radius:   ctx.Theme.Radius,
		Padding:  style.Symmetric(8, 16),
		Focused:  ctx.IsFocused(p.ID),
		OnPress:  p.OnPress,
		Children: []Node[M]{content},
	}
	if p.Compact || p.Variant == style.VariantCompact {
		n.Padding = style.Symmetric(4, 8)
	}
	switch p.Variant {
	case style.VariantSolid:
		n.Background = accent
		n.Foreground = ctx.Theme.Background
	case style.VariantSoft:
		n.Background = ctx.Theme.SurfaceAlt
		n.Foreground = accent
	case style.VariantOutline:
		n.BorderColor = accent
		n.BorderWidth = 1
		n.Foreground = accent
	default:
		n.Foreground = accent
	}
	if n.Focused {
		n.BorderColor = ctx.Theme.BorderFocus
		n.BorderWidth = max(n.BorderWidth, 2)
	}
	return n
}

func (Backend[M]) SidebarItem(p backend.SidebarItemParams[M], ctx style.Context) Node[M] {
	n := Node[M]{
		Kind:       "sidebar_item",
		ID:         "sidebar:" + p.Title,
		Text:       p.Title,
		Value:      p.Icon,
		Active:     p.Selected,
		Foreground: ctx.Theme.Text,
		Radius:     ctx.Theme.Radius,
		Padding:    style.Symmetric(6, 12),
		OnPress:    p.OnSelect,
	}
	if p.Selected {
		n.Background = ctx.Theme.FocusBg
		n.Foreground = ctx.Theme.Primary
		n.Bold = true
	}
	return n
}

func (Backend[M]) TextInput(p backend.TextInputParams[M], ctx style.Context) Node[M] {
	n := Node[M]{
		Kind:        "text_input",
		ID:          p.ID,
		Text:        p.Placeholder,
		Value:       p.Value,
		Foreground:  ctx.Theme.Text,
		Background:  ctx.Theme.Surface,
		BorderColor: ctx.Theme.Border,
		BorderWidth: 1,
		Radius:      ctx.Theme.Radius,
		FontSize:    fontSize(0, ctx),
		Focused:     ctx.IsFocused(p.ID),
		OnChange:    p.OnChange,
		OnSubmit:    p.OnSubmit,
	}
	if p.Secure {
		n.Role = "secure"
	}
	if n.Focused {
		n.BorderColor = ctx.Theme.BorderFocus
	}
	return n
}

func (Backend[M]) Slider(p backend.SliderParams[M], ctx style.Context) Node[M] {
	return Node[M]{
		Kind:       "slider",
		ID:         "slider",
		Value:      fmt.Sprintf("%g", p.Value),
		Text:       fmt.Sprintf("%g..%g", p.Min, p.Max),
		Foreground: ctx.Theme.Primary,
		Background: ctx.Theme.SurfaceAlt,
		OnSlide:    p.OnChange,
	}
}

func (Backend[M]) Toggle(p backend.ToggleParams[M], ctx style.Context) Node[M] {
	n := Node[M]{
		Kind:       "toggle",
		ID:         "toggle:" + p.Label,
		Text:       p.Label,
		Active:     p.Active,
		Foreground: ctx.Theme.Text,
		Background: ctx.Theme.SurfaceAlt,
		OnToggle:   p.OnToggle,
	}
	if p.Active {
		n.Background = ctx.Theme.Primary
	}
	return n
}

func media[M any](kind, src string, w, h style.Length, radius float64) Node[M] {
	return Node[M]{Kind: kind, Value: src, Width: lengthString(w), Height: lengthString(h), Radius: radius}
}

func (Backend[M]) Image(p backend.MediaParams, _ style.Context) Node[M] {
	return media[M]("image", p.Path, p.Width, p.Height, p.Radius)
}

func (Backend[M]) Video(p backend.MediaParams, _ style.Context) Node[M] {
	return media[M]("video", p.Path, p.Width, p.Height, p.Radius)
}

func (Backend[M]) WebView(p backend.WebViewParams, _ style.Context) Node[M] {
	return media[M]("web_view", p.URL, p.Width, p.Height, p.Radius)
}

func (Backend[M]) Container(content Node[M], p backend.ContainerParams, _ style.Context) Node[M] {
	return Node[M]{
		Kind:        "container",
		Padding:     p.Padding,
		Width:       lengthString(p.Width),
		Height:      lengthString(p.Height),
		Background:  p.Background,
		Radius:      p.Radius,
		BorderWidth: p.BorderWidth,
		BorderColor: p.BorderColor,
		Shadow:      p.Shadow,
		AlignX:      p.AlignX.String(),
		AlignY:      p.AlignY.String(),
		Children:    []Node[M]{content},
	}
}

func (Backend[M]) ScrollView(content Node[M], p backend.ScrollParams, _ style.Context) Node[M] {
	return Node[M]{
		Kind:     "scroll",
		ID:       p.ID,
		Axis:     p.Direction.String(),
		Width:    lengthString(p.Width),
		Height:   lengthString(p.Height),
		Active:   p.ShowIndicators,
		Children: []Node[M]{content},
	}
}

func (Backend[M]) MouseArea(content Node[M], p backend.MouseAreaParams[M], _ style.Context) Node[M] {
	return Node[M]{
		Kind:     "mouse_area",
		OnPress:  p.OnPress,
		OnSubmit: p.OnRelease,
		OnMove:   p.OnMove,
		Children: []Node[M]{content},
	}
}

func (Backend[M]) WithTooltip(content Node[M], tooltip string, _ style.Context) Node[M] {
	content.Tooltip = tooltip
	return content
}

func (Backend[M]) GlassCard(content Node[M], p backend.CardParams, ctx style.Context) Node[M] {
	padding := p.Padding
	if padding.IsZero() {
		padding = style.Uniform(ctx.Theme.Spacing)
	}
	return Node[M]{
		Kind:        "card",
		Padding:     padding,
		Width:       lengthString(p.Width),
		Height:      lengthString(p.Height),
		Background:  ctx.Theme.Surface,
		Opacity:     ctx.Theme.GlassOpacity,
		BorderColor: ctx.Theme.BorderMuted,
		BorderWidth: 1,
		Radius:      ctx.Theme.Radius,
		Shadow:      &backend.Shadow{Color: ctx.Theme.Background, OffsetY: 4, Blur: ctx.Theme.ShadowBlur},
		Children:    []Node[M]{content},
	}
}

func (Backend[M]) Section(title string, content Node[M], p backend.SectionParams, ctx style.Context) Node[M] {
	heading := Node[M]{
		Kind:       "text",
		Text:       title,
		Foreground: ctx.Theme.Muted,
		FontSize:   fontSize(BaseFontSize*0.85, ctx),
		Bold:       true,
	}
	return Node[M]{
		Kind:     "section",
		Text:     title,
		Width:    lengthString(p.Width),
		Height:   lengthString(p.Height),
		Spacing:  ctx.Theme.Spacing,
		Children: []Node[M]{heading, content},
	}
}

func (Backend[M]) SpatialModifier(content Node[M], t backend.Transform, _ style.Context) Node[M] {
	if content.Transform != nil {
		t = content.Transform.Compose(t)
	}
	content.Transform = &t
	return content
}
