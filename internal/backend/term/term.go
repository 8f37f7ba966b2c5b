// Package term renders view trees as ANSI strings.
//
// Layout is flattened: vertical stacks join children with newlines,
// horizontal stacks and wraps with a single space, grids with " | " inside a
// row. Intents map to a fixed table of ANSI foreground codes and unknown icon
// names fall back to a hollow circle.
package term

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"

	"github.com/five82/facet/internal/backend"
	"github.com/five82/facet/internal/semantic"
	"github.com/five82/facet/internal/style"
)

const (
	reset        = "\x1b[0m"
	dividerWidth = 20
	sliderSlots  = 7
	inputMaxCols = 32
	markdownWrap = 80
)

// Backend renders to strings. The zero value is ready to use.
type Backend[M any] struct{}

var _ backend.Backend[struct{}, string] = Backend[struct{}]{}

// New returns a terminal backend for message type M.
func New[M any]() Backend[M] { return Backend[M]{} }

var intentCodes = map[style.Intent]string{
	style.IntentPrimary:   "34",
	style.IntentSecondary: "30",
	style.IntentAccent:    "35",
	style.IntentSuccess:   "32",
	style.IntentWarning:   "33",
	style.IntentDanger:    "31",
	style.IntentInfo:      "36",
	style.IntentNeutral:   "0",
}

// IntentCode returns the ANSI foreground code for an intent.
func IntentCode(i style.Intent) string {
	if code, ok := intentCodes[i]; ok {
		return code
	}
	return "0"
}

var icons = map[string]string{
	"settings":      "⚙",
	"terminal":      "❯",
	"chevron_right": "›",
	"chevron_left":  "‹",
	"search":        "⌕",
	"home":          "⌂",
	"check":         "✓",
	"close":         "✕",
	"star":          "★",
	"info":          "ℹ",
	"warning":       "⚠",
	"sparkles":      "✦",
	"folder":        "▤",
	"lock":          "⚿",
}

// FallbackIcon is used for icon names without a glyph.
const FallbackIcon = "○"

// Glyph returns the terminal glyph for an icon name.
func Glyph(name string) string {
	if g, ok := icons[strings.ToLower(strings.TrimSpace(name))]; ok {
		return g
	}
	return FallbackIcon
}

func wrapCode(code, s string) string {
	return "\x1b[" + code + "m" + s + reset
}

func truecolor(c style.Color, s string) string {
	r, g, b, ok := c.RGB()
	if !ok {
		return s
	}
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s%s", r, g, b, s, reset)
}

func emphasize(s string, bold, dim bool) string {
	switch {
	case bold:
		return wrapCode("1", s)
	case dim:
		return wrapCode("2", s)
	default:
		return s
	}
}

func (Backend[M]) SemanticNode(node semantic.Node, _ style.Context) string {
	return fmt.Sprintf("(SEMANTIC: %s)", node.Role)
}

func (Backend[M]) VStack(children []string, _ backend.StackParams, _ style.Context) string {
	return strings.Join(children, "\n")
}

func (Backend[M]) HStack(children []string, _ backend.StackParams, _ style.Context) string {
	return strings.Join(children, " ")
}

func (Backend[M]) Wrap(children []string, _ backend.WrapParams, _ style.Context) string {
	return strings.Join(children, " ")
}

func (Backend[M]) ZStack(children []string, _ backend.ZStackParams, _ style.Context) string {
	return strings.Join(children, "\n")
}

// Grid lays children out row by row. A non-positive column count renders a
// single row.
func (Backend[M]) Grid(children []string, p backend.GridParams, _ style.Context) string {
	cols := p.Columns
	if cols <= 0 {
		cols = len(children)
	}
	if cols == 0 {
		return ""
	}
	rows := make([]string, 0, (len(children)+cols-1)/cols)
	for start := 0; start < len(children); start += cols {
		end := min(start+cols, len(children))
		rows = append(rows, strings.Join(children[start:end], " | "))
	}
	return strings.Join(rows, "\n")
}

func (Backend[M]) Text(p backend.TextParams, _ style.Context) string {
	out := emphasize(p.Content, p.Bold, p.Dim)
	switch {
	case p.Intent != nil:
		out = wrapCode(IntentCode(*p.Intent), out)
	case !p.Color.IsZero():
		out = truecolor(p.Color, out)
	}
	return out
}

func (Backend[M]) RichText(p backend.RichTextParams, _ style.Context) string {
	var b strings.Builder
	for _, span := range p.Spans {
		s := emphasize(span.Content, span.Bold, span.Dim)
		if !span.Color.IsZero() {
			s = truecolor(span.Color, s)
		}
		b.WriteString(s)
	}
	return b.String()
}

// Markdown renders through glamour with the standard style matching the
// context tone. Rendering failures fall back to the raw source.
func (Backend[M]) Markdown(p backend.MarkdownParams, ctx style.Context) string {
	if strings.TrimSpace(p.Source) == "" {
		return ""
	}
	wrap := markdownWrap
	if p.Width > 0 {
		wrap = int(p.Width)
	}
	styleName := "light"
	if ctx.IsDark() {
		styleName = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(styleName),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return p.Source
	}
	out, err := r.Render(p.Source)
	if err != nil {
		return p.Source
	}
	return strings.Trim(out, "\n")
}

func (Backend[M]) Icon(p backend.IconParams, _ style.Context) string {
	return wrapCode("36", Glyph(p.Name))
}

func (Backend[M]) Divider(_ style.Context) string {
	return strings.Repeat("─", dividerWidth)
}

func (Backend[M]) Space(_ backend.SpaceParams, _ style.Context) string {
	return " "
}

func (Backend[M]) Circle(_ backend.CircleParams, _ style.Context) string { return "O" }

func (Backend[M]) Arc(_ backend.ArcParams, _ style.Context) string { return "C" }

func (Backend[M]) Path(p backend.PathParams, _ style.Context) string {
	return fmt.Sprintf("~ (%d pts)", len(p.Points))
}

func (Backend[M]) Capsule(_ backend.CapsuleParams, _ style.Context) string { return "=" }

func (Backend[M]) Rectangle(_ backend.RectangleParams, _ style.Context) string { return "█" }

func (Backend[M]) Button(content string, p backend.ButtonParams[M], ctx style.Context) string {
	if ctx.IsFocused(p.ID) {
		return fmt.Sprintf("> [ %s ] <", content)
	}
	return fmt.Sprintf("  [ %s ]  ", content)
}

func (Backend[M]) SidebarItem(p backend.SidebarItemParams[M], _ style.Context) string {
	if p.Selected {
		return wrapCode("1;34", "▸ "+p.Title)
	}
	return "  " + p.Title
}

func (Backend[M]) TextInput(p backend.TextInputParams[M], _ style.Context) string {
	value := runewidth.Truncate(p.Value, inputMaxCols, "…")
	secure := ""
	if p.Secure {
		secure = "***"
		value = strings.Repeat("•", runewidth.StringWidth(value))
	}
	return fmt.Sprintf("[Input:%s:%s:%s]", value, p.Placeholder, secure)
}

func (Backend[M]) Slider(p backend.SliderParams[M], _ style.Context) string {
	pos := min(max(int(math.Round(p.Fraction()*float64(sliderSlots-1))), 0), sliderSlots-1)
	track := []rune(strings.Repeat("-", sliderSlots))
	track[pos] = 'X'
	return fmt.Sprintf("[%s] %.2f", string(track), p.Value)
}

func (Backend[M]) Toggle(p backend.ToggleParams[M], _ style.Context) string {
	state := "OFF"
	if p.Active {
		state = "ON"
	}
	return fmt.Sprintf("%s [%s]", p.Label, state)
}

func (Backend[M]) Image(p backend.MediaParams, _ style.Context) string {
	return fmt.Sprintf("[IMG: %s]", p.Path)
}

func (Backend[M]) Video(p backend.MediaParams, _ style.Context) string {
	return fmt.Sprintf("[VIDEO: %s]", p.Path)
}

func (Backend[M]) WebView(p backend.WebViewParams, _ style.Context) string {
	return fmt.Sprintf("[WEB: %s]", p.URL)
}

// Container draws a border only when one is requested.
func (Backend[M]) Container(content string, p backend.ContainerParams, _ style.Context) string {
	if p.BorderWidth <= 0 {
		return content
	}
	box := lipgloss.NewStyle().Border(lipgloss.NormalBorder())
	if !p.BorderColor.IsZero() {
		box = box.BorderForeground(lipgloss.Color(string(p.BorderColor)))
	}
	return box.Render(content)
}

func (Backend[M]) ScrollView(content string, _ backend.ScrollParams, _ style.Context) string {
	return content
}

func (Backend[M]) MouseArea(content string, _ backend.MouseAreaParams[M], _ style.Context) string {
	return content
}

func (Backend[M]) WithTooltip(content, tooltip string, _ style.Context) string {
	if tooltip == "" {
		return content
	}
	return fmt.Sprintf("%s (Tooltip: %s)", content, tooltip)
}

func (Backend[M]) GlassCard(content string, _ backend.CardParams, ctx style.Context) string {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(string(ctx.Theme.Border))).
		Padding(0, 1)
	return card.Render(content)
}

func (Backend[M]) Section(title, content string, _ backend.SectionParams, ctx style.Context) string {
	heading := cases.Upper(ctx.Locale).String(title)
	return wrapCode("1;2", "# "+heading) + "\n" + content
}

func (Backend[M]) SpatialModifier(content string, _ backend.Transform, _ style.Context) string {
	return content
}

// Strip removes ANSI escape sequences, for output that is not a terminal.
func Strip(s string) string { return ansi.Strip(s) }

// Width is the printable cell width of the widest line of s.
func Width(s string) int {
	widest := 0
	for line := range strings.SplitSeq(s, "\n") {
		widest = max(widest, ansi.StringWidth(line))
	}
	return widest
}
