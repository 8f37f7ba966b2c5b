package view

import (
	"strconv"

	"github.com/five82/facet/internal/backend"
	"github.com/five82/facet/internal/semantic"
	"github.com/five82/facet/internal/style"
)

// Text is a run of plain text.
type Text[M, R any] struct {
	p backend.TextParams
}

func NewText[M, R any](content string) Text[M, R] {
	return Text[M, R]{p: backend.TextParams{Content: content}}
}

func (t Text[M, R]) Size(v float64) Text[M, R] {
	t.p.Size = v
	return t
}

func (t Text[M, R]) Bold() Text[M, R] {
	t.p.Bold = true
	return t
}

func (t Text[M, R]) Dim() Text[M, R] {
	t.p.Dim = true
	return t
}

func (t Text[M, R]) Intent(i style.Intent) Text[M, R] {
	t.p.Intent = &i
	return t
}

func (t Text[M, R]) Color(c style.Color) Text[M, R] {
	t.p.Color = c
	return t
}

func (t Text[M, R]) Monospace() Text[M, R] {
	t.p.Monospace = true
	return t
}

func (t Text[M, R]) Width(l style.Length) Text[M, R] {
	t.p.Width = l
	return t
}

func (t Text[M, R]) Align(a style.Alignment) Text[M, R] {
	t.p.Alignment = a
	return t
}

// Content returns the text.
func (t Text[M, R]) Content() string { return t.p.Content }

func (t Text[M, R]) Render(ctx style.Context, b backend.Backend[M, R]) R {
	return b.Text(t.p, ctx)
}

func (t Text[M, R]) Describe(style.Context) semantic.Node {
	return semantic.New("text").WithContent(t.p.Content)
}

// RichText is a paragraph of individually styled spans.
type RichText[M, R any] struct {
	p backend.RichTextParams
}

func NewRichText[M, R any](spans ...backend.Span) RichText[M, R] {
	return RichText[M, R]{p: backend.RichTextParams{Spans: spans}}
}

func (t RichText[M, R]) Size(v float64) RichText[M, R] {
	t.p.Size = v
	return t
}

func (t RichText[M, R]) Render(ctx style.Context, b backend.Backend[M, R]) R {
	return b.RichText(t.p, ctx)
}

func (t RichText[M, R]) Describe(style.Context) semantic.Node {
	return semantic.New("rich_text").WithContent(t.p.PlainText())
}

// Markdown is a block of Markdown source.
type Markdown[M, R any] struct {
	p backend.MarkdownParams
}

func NewMarkdown[M, R any](source string) Markdown[M, R] {
	return Markdown[M, R]{p: backend.MarkdownParams{Source: source}}
}

func (m Markdown[M, R]) Width(w float64) Markdown[M, R] {
	m.p.Width = w
	return m
}

func (m Markdown[M, R]) Render(ctx style.Context, b backend.Backend[M, R]) R {
	return b.Markdown(m.p, ctx)
}

func (m Markdown[M, R]) Describe(style.Context) semantic.Node {
	return semantic.New("markdown").WithContent(m.p.Source)
}

// DefaultIconSize is used when an icon has no explicit size.
const DefaultIconSize = 16.0

// Icon is a named glyph.
type Icon[M, R any] struct {
	p backend.IconParams
}

func NewIcon[M, R any](name string) Icon[M, R] {
	return Icon[M, R]{p: backend.IconParams{Name: name, Size: DefaultIconSize}}
}

func (i Icon[M, R]) Size(v float64) Icon[M, R] {
	i.p.Size = v
	return i
}

func (i Icon[M, R]) Color(c style.Color) Icon[M, R] {
	i.p.Color = c
	return i
}

func (i Icon[M, R]) Render(ctx style.Context, b backend.Backend[M, R]) R {
	return b.Icon(i.p, ctx)
}

func (i Icon[M, R]) Describe(style.Context) semantic.Node {
	return semantic.New("icon").WithLabel(i.p.Name)
}

// Divider is a thin separator line.
type Divider[M, R any] struct{}

func (Divider[M, R]) Render(ctx style.Context, b backend.Backend[M, R]) R {
	return b.Divider(ctx)
}

func (Divider[M, R]) Describe(style.Context) semantic.Node {
	return semantic.New("divider")
}

// Space is empty room.
type Space[M, R any] struct {
	p backend.SpaceParams
}

func NewSpace[M, R any](width, height style.Length) Space[M, R] {
	return Space[M, R]{p: backend.SpaceParams{Width: width, Height: height}}
}

func (s Space[M, R]) Render(ctx style.Context, b backend.Backend[M, R]) R {
	return b.Space(s.p, ctx)
}

func (s Space[M, R]) Describe(style.Context) semantic.Node {
	return semantic.New("space")
}

// Circle is a filled circle.
type Circle[M, R any] struct {
	p backend.CircleParams
}

func NewCircle[M, R any](radius float64) Circle[M, R] {
	return Circle[M, R]{p: backend.CircleParams{Radius: radius}}
}

func (c Circle[M, R]) Color(col style.Color) Circle[M, R] {
	c.p.Color = col
	return c
}

func (c Circle[M, R]) Render(ctx style.Context, b backend.Backend[M, R]) R {
	return b.Circle(c.p, ctx)
}

func (c Circle[M, R]) Describe(style.Context) semantic.Node {
	return semantic.New("circle").
		WithLabel("r=" + strconv.FormatFloat(c.p.Radius, 'f', -1, 64)).
		WithColor(string(c.p.Color))
}

// Arc is part of a circle outline.
type Arc[M, R any] struct {
	p backend.ArcParams
}

func NewArc[M, R any](radius, start, end float64) Arc[M, R] {
	return Arc[M, R]{p: backend.ArcParams{Radius: radius, StartAngle: start, EndAngle: end}}
}

func (a Arc[M, R]) Color(col style.Color) Arc[M, R] {
	a.p.Color = col
	return a
}

func (a Arc[M, R]) Render(ctx style.Context, b backend.Backend[M, R]) R {
	return b.Arc(a.p, ctx)
}

func (a Arc[M, R]) Describe(style.Context) semantic.Node {
	return semantic.New("arc").WithColor(string(a.p.Color))
}

// Path is a stroked polyline.
type Path[M, R any] struct {
	p backend.PathParams
}

func NewPath[M, R any](points ...backend.Point) Path[M, R] {
	return Path[M, R]{p: backend.PathParams{Points: points, Width: 1}}
}

func (p Path[M, R]) Color(col style.Color) Path[M, R] {
	p.p.Color = col
	return p
}

func (p Path[M, R]) Stroke(w float64) Path[M, R] {
	p.p.Width = w
	return p
}

func (p Path[M, R]) Render(ctx style.Context, b backend.Backend[M, R]) R {
	return b.Path(p.p, ctx)
}

func (p Path[M, R]) Describe(style.Context) semantic.Node {
	return semantic.New("path").
		WithLabel("points=" + strconv.Itoa(len(p.p.Points))).
		WithColor(string(p.p.Color))
}

// Capsule is a fully rounded bar.
type Capsule[M, R any] struct {
	p backend.CapsuleParams
}

func NewCapsule[M, R any](width, height style.Length) Capsule[M, R] {
	return Capsule[M, R]{p: backend.CapsuleParams{Width: width, Height: height}}
}

func (c Capsule[M, R]) Color(col style.Color) Capsule[M, R] {
	c.p.Color = col
	return c
}

func (c Capsule[M, R]) Render(ctx style.Context, b backend.Backend[M, R]) R {
	return b.Capsule(c.p, ctx)
}

func (c Capsule[M, R]) Describe(style.Context) semantic.Node {
	return semantic.New("capsule").WithColor(string(c.p.Color))
}

// Rectangle is a box with optional rounding and border.
type Rectangle[M, R any] struct {
	p backend.RectangleParams
}

func NewRectangle[M, R any](width, height style.Length) Rectangle[M, R] {
	return Rectangle[M, R]{p: backend.RectangleParams{Width: width, Height: height}}
}

func (r Rectangle[M, R]) Color(col style.Color) Rectangle[M, R] {
	r.p.Color = col
	return r
}

func (r Rectangle[M, R]) Radius(v float64) Rectangle[M, R] {
	r.p.Radius = v
	return r
}

func (r Rectangle[M, R]) Border(width float64, col style.Color) Rectangle[M, R] {
	r.p.BorderWidth = width
	r.p.BorderColor = col
	return r
}

func (r Rectangle[M, R]) Render(ctx style.Context, b backend.Backend[M, R]) R {
	return b.Rectangle(r.p, ctx)
}

func (r Rectangle[M, R]) Describe(style.Context) semantic.Node {
	return semantic.New("rectangle").WithColor(string(r.p.Color))
}

// Media is an image or a video.
type Media[M, R any] struct {
	video bool
	p     backend.MediaParams
}

func NewImage[M, R any](path string) Media[M, R] {
	return Media[M, R]{p: backend.MediaParams{Path: path}}
}

func NewVideo[M, R any](path string) Media[M, R] {
	return Media[M, R]{video: true, p: backend.MediaParams{Path: path}}
}

func (m Media[M, R]) Size(width, height style.Length) Media[M, R] {
	m.p.Width = width
	m.p.Height = height
	return m
}

func (m Media[M, R]) Radius(v float64) Media[M, R] {
	m.p.Radius = v
	return m
}

func (m Media[M, R]) Render(ctx style.Context, b backend.Backend[M, R]) R {
	if m.video {
		return b.Video(m.p, ctx)
	}
	return b.Image(m.p, ctx)
}

func (m Media[M, R]) Describe(style.Context) semantic.Node {
	if m.video {
		return semantic.New("video").WithLabel(m.p.Path)
	}
	return semantic.New("image").
		WithLabel(m.p.Path).
		WithAccessibility(semantic.NewAccessibility(semantic.RoleImage, m.p.Path))
}

// WebView embeds a web page.
type WebView[M, R any] struct {
	p backend.WebViewParams
}

func NewWebView[M, R any](url string) WebView[M, R] {
	return WebView[M, R]{p: backend.WebViewParams{URL: url, Width: style.Fill, Height: style.Fill}}
}

func (w WebView[M, R]) Size(width, height style.Length) WebView[M, R] {
	w.p.Width = width
	w.p.Height = height
	return w
}

func (w WebView[M, R]) Render(ctx style.Context, b backend.Backend[M, R]) R {
	return b.WebView(w.p, ctx)
}

func (w WebView[M, R]) Describe(style.Context) semantic.Node {
	return semantic.New("web_view").WithLabel(w.p.URL)
}

// Badge is a small pill of intent colored text.
type Badge[M, R any] struct {
	label  string
	intent style.Intent
}

func NewBadge[M, R any](label string) Badge[M, R] {
	return Badge[M, R]{label: label, intent: style.IntentNeutral}
}

func (b Badge[M, R]) Intent(i style.Intent) Badge[M, R] {
	b.intent = i
	return b
}

func (b Badge[M, R]) Render(ctx style.Context, be backend.Backend[M, R]) R {
	label := NewText[M, R](b.label).Size(11).Bold().Intent(b.intent)
	return NewContainer[M, R](label).
		Padding(style.Symmetric(2, 8)).
		Radius(999).
		Border(1, ctx.Theme.IntentColor(b.intent)).
		Render(ctx, be)
}

func (b Badge[M, R]) Describe(style.Context) semantic.Node {
	return semantic.New("badge").WithLabel(b.label)
}
