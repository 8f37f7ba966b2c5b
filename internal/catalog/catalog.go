// Package catalog holds the demonstration pages. Each page is written once
// against view.Kit and instantiated for any backend by choosing R.
//
// Controls emit protocol actions, so a press in any backend flows through
// the same dispatcher (and the same Neural Sudo gate) as agent text.
package catalog

import (
	"fmt"

	"github.com/five82/facet/internal/protocol"
	"github.com/five82/facet/internal/state"
	"github.com/five82/facet/internal/style"
	"github.com/five82/facet/internal/view"
)

// Msg is the message type of every catalog view.
type Msg = protocol.Action

// HeroTarget and CubeTarget are the tags spatial actions address.
const (
	HeroTarget = "hero"
	CubeTarget = "cube"
)

// Navigation lists the pages shown in the sidebar, in order.
var Navigation = []protocol.Page{
	protocol.PageIntroduction,
	protocol.PageRoadmap,
	protocol.PageColors,
	protocol.PageTypography,
	protocol.PageLayout,
	protocol.PageButton,
	protocol.PageShapes,
	protocol.PageShowcaseInputs,
	protocol.PageAppearance,
	protocol.PageAPISchema,
	protocol.PageSettingsAI,
}

var navIcons = map[protocol.Page]string{
	protocol.PageIntroduction:   "book",
	protocol.PageRoadmap:        "map",
	protocol.PageColors:         "palette",
	protocol.PageTypography:     "text",
	protocol.PageLayout:         "grid",
	protocol.PageButton:         "cursor",
	protocol.PageShapes:         "shapes",
	protocol.PageShowcaseInputs: "keyboard",
	protocol.PageAppearance:     "sun",
	protocol.PageAPISchema:      "code",
	protocol.PageSettingsAI:     "sparkles",
}

// Screen is the full application view: sidebar, header and the current page.
// The sidebar is dropped on mobile widths.
func Screen[R any](snap state.Snapshot) view.View[Msg, R] {
	var k view.Kit[Msg, R]
	body := k.VStack(header[R](snap), k.Divider(), Page[R](snap)).Spacing(16).Width(style.Fill)
	return k.Responsive(func(d style.DeviceType) view.View[Msg, R] {
		if d == style.DeviceMobile {
			return body
		}
		return k.HStack(sidebar[R](snap), body).Spacing(24)
	})
}

func header[R any](snap state.Snapshot) view.View[Msg, R] {
	var k view.Kit[Msg, R]
	title := k.Tag(k.Text(snap.Page.DisplayName()).Size(28).Bold(), "page_title")
	badges := k.Wrap(
		k.Badge(fmt.Sprintf("%s %s", snap.ThemeKind, snap.Tone)).Intent(style.IntentInfo),
		k.Badge(snap.Mode.String()).Intent(style.IntentAccent),
	).Spacing(8)
	search := k.TextInput("", "Search the web", func(q string) Msg { return protocol.WebSearch{Query: q} }).ID("search")
	return k.HStack(title, badges, search).Spacing(16).AlignY(style.AlignCenter)
}

func sidebar[R any](snap state.Snapshot) view.View[Msg, R] {
	var k view.Kit[Msg, R]
	items := make([]view.View[Msg, R], 0, len(Navigation))
	for _, p := range Navigation {
		item := k.SidebarItem(p.DisplayName(), navIcons[p], p == snap.Page).
			OnSelect(protocol.Navigate{Page: p})
		if reason := protocol.ProtectionReason(protocol.Navigate{Page: p}); reason != "" {
			items = append(items, k.Protect(item, reason))
			continue
		}
		items = append(items, item)
	}
	return k.Tag(k.VStack(items...).Spacing(4).Width(style.Fixed(220)), "sidebar")
}

// place wraps v with its tag and the transform spatial actions gave it.
func place[R any](snap state.Snapshot, tag string, v view.View[Msg, R]) view.View[Msg, R] {
	var k view.Kit[Msg, R]
	return k.Transform(k.Tag(v, tag), snap.TransformFor(tag))
}
