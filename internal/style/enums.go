package style

import "strings"

// Intent is the semantic color role of an element.
type Intent int

const (
	IntentPrimary Intent = iota
	IntentSecondary
	IntentAccent
	IntentSuccess
	IntentWarning
	IntentDanger
	IntentInfo
	IntentNeutral
)

var intentNames = []string{"Primary", "Secondary", "Accent", "Success", "Warning", "Danger", "Info", "Neutral"}

func (i Intent) String() string { return nameOf(intentNames, int(i)) }

// Intents lists every intent in declaration order.
func Intents() []Intent {
	out := make([]Intent, len(intentNames))
	for i := range out {
		out[i] = Intent(i)
	}
	return out
}

// ParseIntent matches an intent name case-insensitively.
func ParseIntent(s string) (Intent, bool) {
	i, ok := lookup(intentNames, s, nil)
	return Intent(i), ok
}

// Variant is the visual weight of a control.
type Variant int

const (
	VariantSolid Variant = iota
	VariantSoft
	VariantOutline
	VariantGhost
	VariantCompact
	VariantPlain
)

var variantNames = []string{"Solid", "Soft", "Outline", "Ghost", "Compact", "Plain"}

func (v Variant) String() string { return nameOf(variantNames, int(v)) }

// Variants lists every variant in declaration order.
func Variants() []Variant {
	out := make([]Variant, len(variantNames))
	for i := range out {
		out[i] = Variant(i)
	}
	return out
}

// ParseVariant matches a variant name case-insensitively.
func ParseVariant(s string) (Variant, bool) {
	i, ok := lookup(variantNames, s, nil)
	return Variant(i), ok
}

// Tone is the light or dark flavor of a theme.
type Tone int

const (
	ToneLight Tone = iota
	ToneDark
)

var toneNames = []string{"Light", "Dark"}

func (t Tone) String() string { return nameOf(toneNames, int(t)) }

// Toggle returns the opposite tone.
func (t Tone) Toggle() Tone {
	if t == ToneDark {
		return ToneLight
	}
	return ToneDark
}

// ParseTone matches a tone name case-insensitively.
func ParseTone(s string) (Tone, bool) {
	i, ok := lookup(toneNames, s, nil)
	return Tone(i), ok
}

// ThemeKind names a design language.
type ThemeKind int

const (
	ThemeCupertino ThemeKind = iota
	ThemeSmart
	ThemeMaterial
	ThemeFluent
	ThemeHighContrast
	ThemeMountain
	ThemePeak
	ThemeMono
)

var themeKindNames = []string{"Cupertino", "Smart", "Material", "Fluent", "HighContrast", "Mountain", "Peak", "Mono"}

var themeKindAliases = map[string]int{"high_contrast": int(ThemeHighContrast)}

func (k ThemeKind) String() string { return nameOf(themeKindNames, int(k)) }

// ThemeKinds lists every theme kind in cycling order.
func ThemeKinds() []ThemeKind {
	out := make([]ThemeKind, len(themeKindNames))
	for i := range out {
		out[i] = ThemeKind(i)
	}
	return out
}

// Next returns the theme kind after k, wrapping around.
func (k ThemeKind) Next() ThemeKind {
	return ThemeKind((int(k) + 1) % len(themeKindNames))
}

// ParseThemeKind matches a theme kind case-insensitively, including
// "high_contrast".
func ParseThemeKind(s string) (ThemeKind, bool) {
	i, ok := lookup(themeKindNames, s, themeKindAliases)
	return ThemeKind(i), ok
}

// RenderMode selects which backend a lab or preview shows.
type RenderMode int

const (
	ModeCanvas RenderMode = iota
	ModeTerminal
	ModeNeural
	ModeSpatial
)

var renderModeNames = []string{"Canvas", "Terminal", "Neural", "Spatial"}

func (m RenderMode) String() string { return nameOf(renderModeNames, int(m)) }

// RenderModes lists every mode in cycling order.
func RenderModes() []RenderMode {
	out := make([]RenderMode, len(renderModeNames))
	for i := range out {
		out[i] = RenderMode(i)
	}
	return out
}

// Next returns the mode after m, wrapping around.
func (m RenderMode) Next() RenderMode {
	return RenderMode((int(m) + 1) % len(renderModeNames))
}

// ParseRenderMode matches a render mode case-insensitively.
func ParseRenderMode(s string) (RenderMode, bool) {
	i, ok := lookup(renderModeNames, s, nil)
	return RenderMode(i), ok
}

// DeviceType is the class of hardware the view is shown on.
type DeviceType int

const (
	DeviceDesktop DeviceType = iota
	DeviceTablet
	DeviceMobile
	DeviceTV
	DeviceHeadset
)

var deviceNames = []string{"Desktop", "Tablet", "Mobile", "TV", "Headset"}

func (d DeviceType) String() string { return nameOf(deviceNames, int(d)) }

// DeviceForWidth classifies a window width.
func DeviceForWidth(width float64) DeviceType {
	switch {
	case width <= 0:
		return DeviceDesktop
	case width < 600:
		return DeviceMobile
	case width < 1024:
		return DeviceTablet
	default:
		return DeviceDesktop
	}
}

func nameOf(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return "Unknown"
	}
	return names[i]
}

func lookup(names []string, s string, aliases map[string]int) (int, bool) {
	trimmed := strings.TrimSpace(s)
	for i, name := range names {
		if strings.EqualFold(name, trimmed) {
			return i, true
		}
	}
	if i, ok := aliases[strings.ToLower(trimmed)]; ok {
		return i, true
	}
	return 0, false
}
