package style

import (
	"strconv"
	"strings"
)

// Color is a hex color such as "#719cd6". The empty color means "inherit".
type Color string

// IsZero reports whether the color is unset.
func (c Color) IsZero() bool { return strings.TrimSpace(string(c)) == "" }

// RGB decodes #rgb or #rrggbb. ok is false for anything else.
func (c Color) RGB() (r, g, b uint8, ok bool) {
	hex := strings.TrimPrefix(strings.TrimSpace(string(c)), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}

// Tokens are the resolved design values for one theme kind and tone.
type Tokens struct {
	Kind ThemeKind
	Tone Tone

	// Surfaces
	Background Color
	Surface    Color
	SurfaceAlt Color
	FocusBg    Color

	// Borders
	Border      Color
	BorderMuted Color
	BorderFocus Color

	// Text
	Text  Color
	Muted Color
	Faint Color

	// Intents
	Primary   Color
	Secondary Color
	Accent    Color
	Success   Color
	Warning   Color
	Danger    Color
	Info      Color
	Neutral   Color

	// Geometry
	Radius       float64
	Spacing      float64
	ShadowBlur   float64
	GlassOpacity float64
}

// IntentColor returns the color assigned to an intent.
func (t Tokens) IntentColor(i Intent) Color {
	switch i {
	case IntentSecondary:
		return t.Secondary
	case IntentAccent:
		return t.Accent
	case IntentSuccess:
		return t.Success
	case IntentWarning:
		return t.Warning
	case IntentDanger:
		return t.Danger
	case IntentInfo:
		return t.Info
	case IntentNeutral:
		return t.Neutral
	default:
		return t.Primary
	}
}

// Theme resolves tokens for a theme kind and tone. Unknown kinds fall back to
// Peak.
func Theme(kind ThemeKind, tone Tone) Tokens {
	build, ok := palettes[kind]
	if !ok {
		kind, build = ThemePeak, palettes[ThemePeak]
	}
	t := build(tone)
	t.Kind = kind
	t.Tone = tone
	return t
}

// DefaultTokens is the Peak theme in dark tone.
func DefaultTokens() Tokens { return Theme(ThemePeak, ToneDark) }

var palettes = map[ThemeKind]func(Tone) Tokens{
	ThemeCupertino:    cupertino,
	ThemeSmart:        smart,
	ThemeMaterial:     material,
	ThemeFluent:       fluent,
	ThemeHighContrast: highContrast,
	ThemeMountain:     mountain,
	ThemePeak:         peak,
	ThemeMono:         mono,
}

func geometry(t Tokens, radius, spacing, blur, glass float64) Tokens {
	t.Radius = radius
	t.Spacing = spacing
	t.ShadowBlur = blur
	t.GlassOpacity = glass
	return t
}

func peak(tone Tone) Tokens {
	// Warm stone palette; the dark tone follows Kanagawa.
	if tone == ToneDark {
		return geometry(Tokens{
			Background: "#16161D", Surface: "#1F1F28", SurfaceAlt: "#2A2A37", FocusBg: "#2A2A37",
			Border: "#54546D", BorderMuted: "#2A2A37", BorderFocus: "#7E9CD8",
			Text: "#DCD7BA", Muted: "#C8C093", Faint: "#727169",
			Primary: "#7E9CD8", Secondary: "#54546D", Accent: "#957FB8", Success: "#98BB6C",
			Warning: "#E6C384", Danger: "#E46876", Info: "#7FB4CA", Neutral: "#727169",
		}, 12, 16, 24, 0.72)
	}
	return geometry(Tokens{
		Background: "#F5F1EA", Surface: "#FBF8F3", SurfaceAlt: "#EDE6DA", FocusBg: "#E4DACB",
		Border: "#D6CBB8", BorderMuted: "#EDE6DA", BorderFocus: "#8A6F4E",
		Text: "#2B2620", Muted: "#6B6256", Faint: "#9A8F80",
		Primary: "#8A6F4E", Secondary: "#B8AA94", Accent: "#B4637A", Success: "#4F7A3A",
		Warning: "#B7791F", Danger: "#B23A48", Info: "#3D7A8A", Neutral: "#9A8F80",
	}, 12, 16, 18, 0.8)
}

func cupertino(tone Tone) Tokens {
	if tone == ToneDark {
		return geometry(Tokens{
			Background: "#000000", Surface: "#1C1C1E", SurfaceAlt: "#2C2C2E", FocusBg: "#3A3A3C",
			Border: "#38383A", BorderMuted: "#2C2C2E", BorderFocus: "#0A84FF",
			Text: "#FFFFFF", Muted: "#98989D", Faint: "#636366",
			Primary: "#0A84FF", Secondary: "#636366", Accent: "#BF5AF2", Success: "#30D158",
			Warning: "#FFD60A", Danger: "#FF453A", Info: "#64D2FF", Neutral: "#8E8E93",
		}, 10, 12, 20, 0.7)
	}
	return geometry(Tokens{
		Background: "#F2F2F7", Surface: "#FFFFFF", SurfaceAlt: "#E5E5EA", FocusBg: "#D1D1D6",
		Border: "#C6C6C8", BorderMuted: "#E5E5EA", BorderFocus: "#007AFF",
		Text: "#000000", Muted: "#3C3C43", Faint: "#8E8E93",
		Primary: "#007AFF", Secondary: "#8E8E93", Accent: "#AF52DE", Success: "#34C759",
		Warning: "#FF9500", Danger: "#FF3B30", Info: "#5AC8FA", Neutral: "#8E8E93",
	}, 10, 12, 16, 0.75)
}

func smart(tone Tone) Tokens {
	// Nightfox based control-panel palette.
	if tone == ToneDark {
		return geometry(Tokens{
			Background: "#131a24", Surface: "#192330", SurfaceAlt: "#212e3f", FocusBg: "#29394f",
			Border: "#39506d", BorderMuted: "#212e3f", BorderFocus: "#719cd6",
			Text: "#cdcecf", Muted: "#738091", Faint: "#71839b",
			Primary: "#719cd6", Secondary: "#39506d", Accent: "#9d79d6", Success: "#81b29a",
			Warning: "#dbc074", Danger: "#c94f6d", Info: "#63cdcf", Neutral: "#738091",
		}, 16, 16, 28, 0.65)
	}
	return geometry(Tokens{
		Background: "#f6f2ee", Surface: "#fbfaf9", SurfaceAlt: "#e4dcd4", FocusBg: "#dbd1dd",
		Border: "#bdbfc9", BorderMuted: "#e4dcd4", BorderFocus: "#2848a9",
		Text: "#3d2b5a", Muted: "#643f61", Faint: "#824d5b",
		Primary: "#2848a9", Secondary: "#bdbfc9", Accent: "#6e33ce", Success: "#396847",
		Warning: "#ac5402", Danger: "#a5222f", Info: "#287980", Neutral: "#824d5b",
	}, 16, 16, 22, 0.7)
}

func material(tone Tone) Tokens {
	if tone == ToneDark {
		return geometry(Tokens{
			Background: "#121212", Surface: "#1E1E1E", SurfaceAlt: "#2C2C2C", FocusBg: "#333333",
			Border: "#3C3C3C", BorderMuted: "#2C2C2C", BorderFocus: "#BB86FC",
			Text: "#E1E1E1", Muted: "#A0A0A0", Faint: "#6F6F6F",
			Primary: "#BB86FC", Secondary: "#03DAC6", Accent: "#CF6679", Success: "#81C784",
			Warning: "#FFB74D", Danger: "#CF6679", Info: "#4FC3F7", Neutral: "#9E9E9E",
		}, 4, 8, 12, 0.9)
	}
	return geometry(Tokens{
		Background: "#FAFAFA", Surface: "#FFFFFF", SurfaceAlt: "#F5F5F5", FocusBg: "#E0E0E0",
		Border: "#E0E0E0", BorderMuted: "#F5F5F5", BorderFocus: "#6200EE",
		Text: "#212121", Muted: "#616161", Faint: "#9E9E9E",
		Primary: "#6200EE", Secondary: "#03DAC6", Accent: "#B00020", Success: "#388E3C",
		Warning: "#F57C00", Danger: "#B00020", Info: "#0288D1", Neutral: "#9E9E9E",
	}, 4, 8, 8, 0.95)
}

func fluent(tone Tone) Tokens {
	if tone == ToneDark {
		return geometry(Tokens{
			Background: "#202020", Surface: "#2B2B2B", SurfaceAlt: "#323232", FocusBg: "#3D3D3D",
			Border: "#454545", BorderMuted: "#323232", BorderFocus: "#60CDFF",
			Text: "#FFFFFF", Muted: "#C5C5C5", Faint: "#8A8A8A",
			Primary: "#60CDFF", Secondary: "#454545", Accent: "#D08CFF", Success: "#6CCB5F",
			Warning: "#FCE100", Danger: "#FF99A4", Info: "#60CDFF", Neutral: "#8A8A8A",
		}, 8, 12, 16, 0.8)
	}
	return geometry(Tokens{
		Background: "#F3F3F3", Surface: "#FFFFFF", SurfaceAlt: "#F9F9F9", FocusBg: "#EBEBEB",
		Border: "#E5E5E5", BorderMuted: "#F9F9F9", BorderFocus: "#005FB8",
		Text: "#1A1A1A", Muted: "#5D5D5D", Faint: "#8A8A8A",
		Primary: "#005FB8", Secondary: "#E5E5E5", Accent: "#8764B8", Success: "#0F7B0F",
		Warning: "#9D5D00", Danger: "#C42B1C", Info: "#005FB8", Neutral: "#8A8A8A",
	}, 8, 12, 12, 0.85)
}

func highContrast(tone Tone) Tokens {
	if tone == ToneDark {
		return geometry(Tokens{
			Background: "#000000", Surface: "#000000", SurfaceAlt: "#1A1A1A", FocusBg: "#1AEBFF",
			Border: "#FFFFFF", BorderMuted: "#FFFFFF", BorderFocus: "#FFFF00",
			Text: "#FFFFFF", Muted: "#FFFFFF", Faint: "#C0C0C0",
			Primary: "#FFFF00", Secondary: "#FFFFFF", Accent: "#1AEBFF", Success: "#3FF23F",
			Warning: "#FFFF00", Danger: "#FF6060", Info: "#1AEBFF", Neutral: "#FFFFFF",
		}, 0, 12, 0, 1)
	}
	return geometry(Tokens{
		Background: "#FFFFFF", Surface: "#FFFFFF", SurfaceAlt: "#F0F0F0", FocusBg: "#37006E",
		Border: "#000000", BorderMuted: "#000000", BorderFocus: "#37006E",
		Text: "#000000", Muted: "#000000", Faint: "#3F3F3F",
		Primary: "#00009F", Secondary: "#000000", Accent: "#37006E", Success: "#005A00",
		Warning: "#6A4A00", Danger: "#A00000", Info: "#00009F", Neutral: "#000000",
	}, 0, 12, 0, 1)
}

func mountain(tone Tone) Tokens {
	// Tailwind slate and sky ramps.
	if tone == ToneDark {
		return geometry(Tokens{
			Background: "#020617", Surface: "#0f172a", SurfaceAlt: "#1e293b", FocusBg: "#283548",
			Border: "#334155", BorderMuted: "#1e293b", BorderFocus: "#38bdf8",
			Text: "#f1f5f9", Muted: "#94a3b8", Faint: "#64748b",
			Primary: "#38bdf8", Secondary: "#334155", Accent: "#06b6d4", Success: "#22c55e",
			Warning: "#f59e0b", Danger: "#ef4444", Info: "#06b6d4", Neutral: "#64748b",
		}, 14, 16, 32, 0.6)
	}
	return geometry(Tokens{
		Background: "#f8fafc", Surface: "#ffffff", SurfaceAlt: "#f1f5f9", FocusBg: "#e2e8f0",
		Border: "#cbd5e1", BorderMuted: "#e2e8f0", BorderFocus: "#0284c7",
		Text: "#0f172a", Muted: "#475569", Faint: "#94a3b8",
		Primary: "#0284c7", Secondary: "#cbd5e1", Accent: "#0891b2", Success: "#16a34a",
		Warning: "#d97706", Danger: "#dc2626", Info: "#0891b2", Neutral: "#94a3b8",
	}, 14, 16, 24, 0.7)
}

func mono(tone Tone) Tokens {
	if tone == ToneDark {
		return geometry(Tokens{
			Background: "#0A0A0A", Surface: "#141414", SurfaceAlt: "#1F1F1F", FocusBg: "#2A2A2A",
			Border: "#3A3A3A", BorderMuted: "#1F1F1F", BorderFocus: "#FFFFFF",
			Text: "#FAFAFA", Muted: "#A3A3A3", Faint: "#737373",
			Primary: "#FAFAFA", Secondary: "#737373", Accent: "#D4D4D4", Success: "#D4D4D4",
			Warning: "#A3A3A3", Danger: "#FFFFFF", Info: "#D4D4D4", Neutral: "#737373",
		}, 6, 12, 10, 0.85)
	}
	return geometry(Tokens{
		Background: "#FFFFFF", Surface: "#FAFAFA", SurfaceAlt: "#F5F5F5", FocusBg: "#E5E5E5",
		Border: "#D4D4D4", BorderMuted: "#F5F5F5", BorderFocus: "#0A0A0A",
		Text: "#0A0A0A", Muted: "#525252", Faint: "#A3A3A3",
		Primary: "#0A0A0A", Secondary: "#A3A3A3", Accent: "#404040", Success: "#262626",
		Warning: "#525252", Danger: "#0A0A0A", Info: "#404040", Neutral: "#A3A3A3",
	}, 6, 12, 8, 0.9)
}
