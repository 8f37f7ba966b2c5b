package catalog

import (
	"fmt"
	"strings"

	"github.com/five82/facet/internal/backend"
	"github.com/five82/facet/internal/protocol"
	"github.com/five82/facet/internal/state"
	"github.com/five82/facet/internal/style"
	"github.com/five82/facet/internal/view"
)

// Page returns the content of snap.Page. Pages without a dedicated
// demonstration get a generic placeholder.
func Page[R any](snap state.Snapshot) view.View[Msg, R] {
	switch snap.Page {
	case protocol.PageLanding:
		return landing[R](snap)
	case protocol.PageIntroduction:
		return introduction[R]()
	case protocol.PageRoadmap:
		return roadmap[R]()
	case protocol.PageColors:
		return colors[R]()
	case protocol.PageTypography, protocol.PageText:
		return typography[R]()
	case protocol.PageLayout, protocol.PageVStack, protocol.PageHStack, protocol.PageZStack:
		return layout[R]()
	case protocol.PageButton, protocol.PageShowcaseButtons:
		return buttonLab[R](snap)
	case protocol.PageShapes:
		return shapes[R](snap)
	case protocol.PageShowcaseInputs, protocol.PageShowcaseToggles, protocol.PageShowcaseSliders:
		return inputs[R](snap)
	case protocol.PageAppearance:
		return appearance[R](snap)
	case protocol.PageAPISchema:
		return apiSchema[R]()
	case protocol.PageSettingsAI:
		return settingsAI[R]()
	case protocol.PageImage, protocol.PageVideo, protocol.PageWebView:
		return media[R]()
	default:
		return placeholder[R](snap.Page)
	}
}

func landing[R any](snap state.Snapshot) view.View[Msg, R] {
	var k view.Kit[Msg, R]
	hero := k.VStack(
		k.Text("One tree. Every surface.").Size(40).Bold(),
		k.Text("Describe an interface once and render it to pixels, terminals, agents and space.").Dim(),
	).Spacing(8)
	return k.VStack(
		place[R](snap, HeroTarget, k.Lift(hero, 2)),
		k.HStack(
			k.Button("Get started").OnPress(protocol.Navigate{Page: protocol.PageIntroduction}).Intent(style.IntentPrimary),
			k.Protect(
				k.Button("Roadmap").OnPress(protocol.Navigate{Page: protocol.PageRoadmap}).Variant(style.VariantOutline),
				reasonFor(protocol.PageRoadmap)),
		).Spacing(12),
		k.Grid(
			feature[R]("Canvas", "Retained scene graph with theme-driven styling."),
			feature[R]("Terminal", "ANSI output with cards and markdown."),
			feature[R]("Neural", "Compact semantic documents for agents."),
			feature[R]("Spatial", "3D node graph with ray hit testing."),
		).Spacing(16),
	).Spacing(24)
}

func feature[R any](title, body string) view.View[Msg, R] {
	var k view.Kit[Msg, R]
	return k.Card(k.VStack(k.Text(title).Bold(), k.Text(body).Dim()).Spacing(4))
}

func introduction[R any]() view.View[Msg, R] {
	var k view.Kit[Msg, R]
	return k.VStack(
		k.Markdown(`Views are **values**. A view is rendered by a backend and described as a semantic tree.

- Render produces backend output.
- Describe produces the document agents read.
- Both are pure and repeatable.`),
		k.Document(
			k.Text("Agents act by embedding [action: {...})] markers in their replies.").Monospace(),
			"The action protocol accepted from agents"),
	).Spacing(12)
}

func roadmap[R any]() view.View[Msg, R] {
	var k view.Kit[Msg, R]
	return k.Protect(
		k.Section("Vision", k.VStack(
			k.Text("Spatial layouts for headsets"),
			k.Text("Voice-first navigation"),
			k.Text("Shared scene graphs between agents"),
		).Spacing(4)),
		reasonFor(protocol.PageRoadmap))
}

func colors[R any]() view.View[Msg, R] {
	return view.Func[Msg, R](func(ctx style.Context) view.View[Msg, R] {
		var k view.Kit[Msg, R]
		swatches := make([]view.View[Msg, R], 0, len(style.Intents()))
		for _, in := range style.Intents() {
			c := ctx.Theme.IntentColor(in)
			swatches = append(swatches, k.VStack(
				k.Rectangle(style.Fixed(64), style.Fixed(40)).Color(c).Radius(ctx.Theme.Radius),
				k.Text(in.String()).Bold(),
				k.Text(string(c)).Monospace().Dim(),
			).Spacing(4))
		}
		return k.Grid(swatches...).Spacing(12)
	})
}

func typography[R any]() view.View[Msg, R] {
	var k view.Kit[Msg, R]
	return k.VStack(
		k.Text("Display").Size(40).Bold(),
		k.Text("Title").Size(28).Bold(),
		k.Text("Headline").Size(20),
		k.Text("Body text reads comfortably at the default size."),
		k.Text("Caption").Size(12).Dim(),
		k.RichText(
			backend.Span{Content: "Rich ", Bold: true},
			backend.Span{Content: "text ", Color: "#22c55e"},
			backend.Span{Content: "spans", Monospace: true},
		),
	).Spacing(8)
}

func layout[R any]() view.View[Msg, R] {
	var k view.Kit[Msg, R]
	cell := func(s string) view.View[Msg, R] { return k.Container(k.Text(s)).Padding(style.Uniform(8)) }
	return k.VStack(
		k.Section("VStack", k.VStack(cell("top"), cell("middle"), cell("bottom")).Spacing(4)),
		k.Section("HStack", k.HStack(cell("left"), cell("center"), cell("right")).Spacing(4)),
		k.Section("ZStack", k.ZStack(
			k.Rectangle(style.Fixed(120), style.Fixed(60)).Radius(8),
			k.Text("overlay"),
		).Align(style.AlignCenter)),
		k.Section("Responsive grid", k.Grid(cell("1"), cell("2"), cell("3"), cell("4"), cell("5"), cell("6"))),
	).Spacing(16)
}

func buttonLab[R any](snap state.Snapshot) view.View[Msg, R] {
	var k view.Kit[Msg, R]
	preview := k.Button("Preview").ID("lab_preview").
		Variant(snap.ButtonVariant).
		Intent(snap.ButtonIntent).
		OnPress(protocol.SetButtonIntent{Intent: snap.ButtonIntent})

	variants := make([]view.View[Msg, R], 0, len(style.Variants()))
	for _, v := range style.Variants() {
		variants = append(variants, k.Button(v.String()).Variant(v).Compact().
			OnPress(protocol.SetButtonVariant{Variant: v}))
	}
	intents := make([]view.View[Msg, R], 0, len(style.Intents()))
	for _, in := range style.Intents() {
		intents = append(intents, k.Button(in.String()).Intent(in).Compact().
			OnPress(protocol.SetButtonIntent{Intent: in}))
	}
	return k.VStack(
		k.Card(k.Container(preview).Center()),
		k.Section("Variant", k.Wrap(variants...).Spacing(8)),
		k.Section("Intent", k.Wrap(intents...).Spacing(8)),
	).Spacing(16)
}

func shapes[R any](snap state.Snapshot) view.View[Msg, R] {
	var k view.Kit[Msg, R]
	cube := k.Rectangle(style.Fixed(48), style.Fixed(48)).Radius(4)
	return k.VStack(
		k.Wrap(
			k.Circle(20),
			view.NewArc[Msg, R](20, 0, 270),
			view.NewPath[Msg, R](backend.Point{X: 0, Y: 0}, backend.Point{X: 20, Y: 30}, backend.Point{X: 40, Y: 0}).Stroke(2),
			k.Capsule(style.Fixed(80), style.Fixed(24)),
			place[R](snap, CubeTarget, k.OnTap(k.Billboard(cube, true), protocol.Rotate{Target: CubeTarget, Y: 45})),
		).Spacing(16),
		k.Slider(0.5, 3, snap.TransformFor(CubeTarget).Scale.X, func(v float64) Msg {
			return protocol.Scale{Target: CubeTarget, Factor: v}
		}),
	).Spacing(16)
}

func inputs[R any](snap state.Snapshot) view.View[Msg, R] {
	var k view.Kit[Msg, R]
	return k.Form(
		k.Section("Text", k.TextInput("", "Remember something", func(s string) Msg {
			return protocol.Memorize{Content: s}
		}).ID("memorize")),
		k.Section("Toggles", k.VStack(
			k.Toggle("Dark mode", snap.Tone == style.ToneDark, func(on bool) Msg {
				if on {
					return protocol.SetThemeTone{Tone: style.ToneDark}
				}
				return protocol.SetThemeTone{Tone: style.ToneLight}
			}),
		)),
		k.Section("Sliders", k.Slider(0.5, 3, snap.TransformFor(HeroTarget).Scale.X, func(v float64) Msg {
			return protocol.Scale{Target: HeroTarget, Factor: v}
		})),
	).Style(view.FormGrouped)
}

func appearance[R any](snap state.Snapshot) view.View[Msg, R] {
	var k view.Kit[Msg, R]
	kinds := make([]view.View[Msg, R], 0, len(style.ThemeKinds()))
	for _, kind := range style.ThemeKinds() {
		b := k.Button(kind.String()).Compact().OnPress(protocol.SetThemeKind{Kind: kind})
		if kind == snap.ThemeKind {
			b = b.Intent(style.IntentPrimary)
		} else {
			b = b.Variant(style.VariantGhost)
		}
		kinds = append(kinds, b)
	}
	modes := make([]view.View[Msg, R], 0, len(style.RenderModes()))
	for _, m := range style.RenderModes() {
		modes = append(modes, k.SidebarItem(m.String(), "", m == snap.Mode).OnSelect(protocol.SetLabMode{Mode: m}))
	}
	return k.VStack(
		k.Section("Theme", k.Wrap(kinds...).Spacing(8)),
		k.Section("Tone", k.Toggle("Dark", snap.Tone == style.ToneDark, func(bool) Msg {
			return protocol.SetThemeTone{Tone: snap.Tone.Toggle()}
		})),
		k.Section("Render mode", k.HStack(modes...).Spacing(4)),
	).Spacing(16)
}

func apiSchema[R any]() view.View[Msg, R] {
	var k view.Kit[Msg, R]
	rows := make([]view.View[Msg, R], 0, len(protocol.Variants()))
	for _, v := range protocol.Variants() {
		line := k.HStack(
			k.Text(v.Tag).Bold().Width(style.Fixed(160)),
			k.Text(v.Example).Monospace(),
		).Spacing(8)
		if v.Protected != "" {
			rows = append(rows, k.Document(line, "Protected: "+v.Protected))
			continue
		}
		rows = append(rows, k.Document(line, "Aliases: "+strings.Join(v.Aliases, ", ")))
	}
	return k.Scroll(k.VStack(rows...).Spacing(4))
}

func settingsAI[R any]() view.View[Msg, R] {
	var k view.Kit[Msg, R]
	return k.Protect(
		k.Form(
			k.Section("Provider", k.Text("Configured outside facet")),
			k.Section("API key", k.TextInput("", "sk-...", nil).Secure().ID("api_key")),
		).Style(view.FormGrouped),
		reasonFor(protocol.PageSettingsAI))
}

func reasonFor(p protocol.Page) string {
	return protocol.ProtectionReason(protocol.Navigate{Page: p})
}

func media[R any]() view.View[Msg, R] {
	var k view.Kit[Msg, R]
	return k.VStack(
		k.Image("assets/hero.png").Size(style.Fixed(320), style.Fixed(180)).Radius(12),
		k.Video("assets/intro.mp4").Size(style.Fill, style.Fixed(200)),
		k.WebView("https://example.com"),
	).Spacing(12)
}

func placeholder[R any](p protocol.Page) view.View[Msg, R] {
	var k view.Kit[Msg, R]
	return k.Card(k.VStack(
		k.Icon("info"),
		k.Text(fmt.Sprintf("%s is documented elsewhere.", p.DisplayName())),
		k.Button("Back to introduction").Variant(style.VariantGhost).
			OnPress(protocol.Navigate{Page: protocol.PageIntroduction}),
	).Spacing(8))
}
