// Package ai renders view trees as semantic.Node trees for language models.
package ai

import (
	"fmt"
	"strconv"

	"github.com/five82/facet/internal/backend"
	"github.com/five82/facet/internal/semantic"
	"github.com/five82/facet/internal/style"
)

// Backend produces semantic nodes. The zero value is ready to use.
type Backend[M any] struct{}

var _ backend.Backend[struct{}, semantic.Node] = Backend[struct{}]{}

// New returns an AI backend for message type M.
func New[M any]() Backend[M] { return Backend[M]{} }

// deepen pushes every child one level further from the viewer.
func deepen(children []semantic.Node) []semantic.Node {
	out := make([]semantic.Node, len(children))
	for i, c := range children {
		out[i] = c.WithDepth(c.DepthOr(0) + 1)
	}
	return out
}

func container(role string, children []semantic.Node) semantic.Node {
	return semantic.New(role).WithChildren(children...)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (Backend[M]) SemanticNode(node semantic.Node, _ style.Context) semantic.Node {
	return node
}

func (Backend[M]) VStack(children []semantic.Node, _ backend.StackParams, _ style.Context) semantic.Node {
	return container("vstack", deepen(children))
}

func (Backend[M]) HStack(children []semantic.Node, _ backend.StackParams, _ style.Context) semantic.Node {
	return container("hstack", deepen(children))
}

func (Backend[M]) Wrap(children []semantic.Node, _ backend.WrapParams, _ style.Context) semantic.Node {
	return container("wrap", deepen(children))
}

func (Backend[M]) ZStack(children []semantic.Node, _ backend.ZStackParams, _ style.Context) semantic.Node {
	return container("zstack", children)
}

func (Backend[M]) Grid(children []semantic.Node, p backend.GridParams, _ style.Context) semantic.Node {
	return container("grid", children).WithLabel(fmt.Sprintf("columns: %d", p.Columns))
}

func (Backend[M]) Text(p backend.TextParams, _ style.Context) semantic.Node {
	return semantic.New("text").WithContent(p.Content)
}

func (Backend[M]) RichText(p backend.RichTextParams, _ style.Context) semantic.Node {
	return semantic.New("rich_text").WithContent(p.PlainText())
}

func (Backend[M]) Markdown(p backend.MarkdownParams, _ style.Context) semantic.Node {
	return semantic.New("markdown").WithContent(p.Source)
}

func (Backend[M]) Icon(p backend.IconParams, _ style.Context) semantic.Node {
	return semantic.New("icon").WithLabel(p.Name)
}

func (Backend[M]) Divider(_ style.Context) semantic.Node {
	return semantic.New("divider")
}

func (Backend[M]) Space(_ backend.SpaceParams, _ style.Context) semantic.Node {
	return semantic.New("space")
}

func (Backend[M]) Circle(p backend.CircleParams, _ style.Context) semantic.Node {
	return semantic.New("circle").
		WithLabel("r=" + formatFloat(p.Radius)).
		WithColor(string(p.Color))
}

func (Backend[M]) Arc(p backend.ArcParams, _ style.Context) semantic.Node {
	return semantic.New("arc").
		WithLabel(fmt.Sprintf("r=%s, start=%s, end=%s",
			formatFloat(p.Radius), formatFloat(p.StartAngle), formatFloat(p.EndAngle))).
		WithColor(string(p.Color))
}

func (Backend[M]) Path(p backend.PathParams, _ style.Context) semantic.Node {
	return semantic.New("path").
		WithLabel(fmt.Sprintf("points=%d", len(p.Points))).
		WithColor(string(p.Color))
}

func (Backend[M]) Capsule(p backend.CapsuleParams, _ style.Context) semantic.Node {
	return semantic.New("capsule").WithColor(string(p.Color))
}

func (Backend[M]) Rectangle(p backend.RectangleParams, _ style.Context) semantic.Node {
	return semantic.New("rectangle").WithColor(string(p.Color))
}

// Button labels the node "Variant_Intent" and keeps the rendered content as
// its only child.
func (Backend[M]) Button(content semantic.Node, p backend.ButtonParams[M], _ style.Context) semantic.Node {
	return semantic.New("button").
		WithID(p.ID).
		WithLabel(p.Variant.String() + "_" + p.Intent.String()).
		WithChildren(content)
}

func (Backend[M]) SidebarItem(p backend.SidebarItemParams[M], _ style.Context) semantic.Node {
	state := semantic.New("state").
		WithLabel("selected").
		WithContent(strconv.FormatBool(p.Selected))
	return semantic.New("sidebar_item").
		WithLabel(p.Title).
		WithContent(p.Icon).
		WithChildren(state)
}

// TextInput reports the value as both label and content. Secure fields never
// expose their value.
func (Backend[M]) TextInput(p backend.TextInputParams[M], _ style.Context) semantic.Node {
	value := p.Value
	if p.Secure && value != "" {
		value = "***"
	}
	return semantic.New("text_input").WithID(p.ID).WithLabel(value).WithContent(value)
}

func (Backend[M]) Slider(p backend.SliderParams[M], _ style.Context) semantic.Node {
	return semantic.New("slider").WithContent(formatFloat(p.Value))
}

func (Backend[M]) Toggle(p backend.ToggleParams[M], _ style.Context) semantic.Node {
	return semantic.New("toggle").
		WithLabel(p.Label).
		WithContent(strconv.FormatBool(p.Active))
}

func (Backend[M]) Image(p backend.MediaParams, _ style.Context) semantic.Node {
	return semantic.New("image").WithContent(p.Path)
}

func (Backend[M]) Video(p backend.MediaParams, _ style.Context) semantic.Node {
	return semantic.New("video").WithContent(p.Path)
}

func (Backend[M]) WebView(p backend.WebViewParams, _ style.Context) semantic.Node {
	return semantic.New("web_view").WithContent(p.URL)
}

func (Backend[M]) Container(content semantic.Node, _ backend.ContainerParams, _ style.Context) semantic.Node {
	return content
}

func (Backend[M]) ScrollView(content semantic.Node, _ backend.ScrollParams, _ style.Context) semantic.Node {
	return content
}

func (Backend[M]) MouseArea(content semantic.Node, _ backend.MouseAreaParams[M], _ style.Context) semantic.Node {
	return content
}

func (Backend[M]) WithTooltip(content semantic.Node, tooltip string, _ style.Context) semantic.Node {
	if tooltip == "" {
		return content
	}
	return content.WithDocumentation(tooltip)
}

func (Backend[M]) GlassCard(content semantic.Node, _ backend.CardParams, _ style.Context) semantic.Node {
	return semantic.New("card").WithChildren(content)
}

func (Backend[M]) Section(title string, content semantic.Node, _ backend.SectionParams, _ style.Context) semantic.Node {
	return semantic.New("section").WithLabel(title).WithChildren(content)
}

// SpatialModifier records the transform's depth and scale on the node.
func (Backend[M]) SpatialModifier(content semantic.Node, t backend.Transform, _ style.Context) semantic.Node {
	out := content.WithDepth(content.DepthOr(0) + t.Position.Z)
	if t.Scale != (backend.Vec3{}) {
		out = out.WithScale(t.Scale.X, t.Scale.Y, t.Scale.Z)
	}
	return out
}
