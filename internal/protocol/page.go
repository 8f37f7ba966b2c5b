package protocol

import (
	"fmt"
	"strings"
)

// Page is a navigation destination an agent can request.
type Page int

const (
	PageLanding Page = iota
	PageIntroduction
	PageRoadmap
	PageCommunity
	PageIntelligence

	PageOverview
	PageArchitecture
	PageProjectStructure
	PageCustomizations
	PageBasicSizing
	PageColors
	PageTypography
	PageLayout
	PageAccessibility

	PageText
	PageIcon
	PageDivider
	PageButton
	PageShapes
	PageImage
	PageVideo
	PageWebView

	PageVStack
	PageHStack
	PageZStack
	PageOverlay
	PageScrollView
	PageCard

	PageSidebar
	PageTabbar
	PageModal
	PageNavigationSplit
	PageSection
	PageDataTable

	PageAPISchema

	PageShowcaseButtons
	PageShowcaseInputs
	PageShowcaseToggles
	PageShowcaseSliders
	PageShowcasePickers

	PageAppearance
	PageScaling
	PageShortcuts
	PageAbout
	PageUpdates
	PageSettingsAI
)

type pageInfo struct {
	name    string
	display string
	aliases []string
}

var pages = []pageInfo{
	{"Landing", "Landing", nil},
	{"Introduction", "Introduction", []string{"intro", "start"}},
	{"Roadmap", "Roadmap", nil},
	{"Community", "Community", nil},
	{"Intelligence", "Intelligence", []string{"ai_overview"}},

	{"Overview", "Overview", nil},
	{"Architecture", "Architecture", nil},
	{"ProjectStructure", "Project Structure", []string{"project structure", "project-structure"}},
	{"Customizations", "Customizations", nil},
	{"BasicSizing", "Basic Sizing", []string{"basic sizing", "sizing"}},
	{"Colors", "Colors", nil},
	{"Typography", "Typography", nil},
	{"Layout", "Layout", nil},
	{"Accessibility", "Accessibility", nil},

	{"Text", "Text", nil},
	{"Icon", "Icon", nil},
	{"Divider", "Divider", nil},
	{"Button", "Button", nil},
	{"Shapes", "Shapes", nil},
	{"Image", "Image", nil},
	{"Video", "Video", nil},
	{"WebView", "WebView", []string{"web_view"}},

	{"VStack", "VStack", nil},
	{"HStack", "HStack", nil},
	{"ZStack", "ZStack", nil},
	{"Overlay", "Overlay", nil},
	{"ScrollView", "ScrollView", nil},
	{"Card", "Card", nil},

	{"Sidebar", "Sidebar", nil},
	{"Tabbar", "Tabbar", nil},
	{"Modal", "Modal", nil},
	{"NavigationSplit", "NavigationSplit", []string{"navigation-split", "navigation_split"}},
	{"Section", "Section", nil},
	{"DataTable", "Data Table", []string{"table", "data-table"}},

	{"ApiSchema", "API Schema", []string{"api schema", "api-schema"}},

	{"ShowcaseButtons", "Buttons", []string{"buttons"}},
	{"ShowcaseInputs", "Inputs", []string{"inputs"}},
	{"ShowcaseToggles", "Toggles", []string{"toggles"}},
	{"ShowcaseSliders", "Sliders", []string{"sliders"}},
	{"ShowcasePickers", "Pickers", []string{"pickers"}},

	{"Appearance", "Appearance", []string{"theme"}},
	{"Scaling", "Scaling", nil},
	{"Shortcuts", "Shortcuts", nil},
	{"About", "About", nil},
	{"Updates", "Updates", nil},
	{"SettingsAI", "AI", []string{"ai", "settings_ai"}},
}

// String returns the canonical tag used on the wire.
func (p Page) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Page(%d)", int(p))
	}
	return pages[p].name
}

// DisplayName is the title shown in navigation.
func (p Page) DisplayName() string {
	if !p.Valid() {
		return p.String()
	}
	return pages[p].display
}

func (p Page) Valid() bool { return p >= 0 && int(p) < len(pages) }

// Pages lists every page in navigation order.
func Pages() []Page {
	out := make([]Page, len(pages))
	for i := range out {
		out[i] = Page(i)
	}
	return out
}

// ParsePage matches a page by tag, case-insensitively, or by one of its
// aliases.
func ParsePage(s string) (Page, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, info := range pages {
		if strings.ToLower(info.name) == key {
			return Page(i), true
		}
		for _, alias := range info.aliases {
			if alias == key {
				return Page(i), true
			}
		}
	}
	return 0, false
}

func (p Page) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("invalid page %d", int(p))
	}
	return []byte(p.String()), nil
}

func (p *Page) UnmarshalText(b []byte) error {
	v, ok := ParsePage(string(b))
	if !ok {
		return fmt.Errorf("unknown page %q", b)
	}
	*p = v
	return nil
}
