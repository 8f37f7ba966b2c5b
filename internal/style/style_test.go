package style

import (
	"testing"

	"golang.org/x/text/language"
)

func TestThemeFallsBackToPeak(t *testing.T) {
	got := Theme(ThemeKind(99), ToneDark)
	if got.Kind != ThemePeak {
		t.Fatalf("Theme(99).Kind = %v, want Peak", got.Kind)
	}
	if got.Tone != ToneDark {
		t.Fatalf("Theme(99).Tone = %v, want Dark", got.Tone)
	}
}

func TestEveryThemeDefinesIntentColors(t *testing.T) {
	for _, kind := range ThemeKinds() {
		for _, tone := range []Tone{ToneLight, ToneDark} {
			tokens := Theme(kind, tone)
			for _, intent := range Intents() {
				c := tokens.IntentColor(intent)
				if _, _, _, ok := c.RGB(); !ok {
					t.Fatalf("%v/%v intent %v color %q is not hex", kind, tone, intent, c)
				}
			}
			if _, _, _, ok := tokens.Background.RGB(); !ok {
				t.Fatalf("%v/%v background %q is not hex", kind, tone, tokens.Background)
			}
		}
	}
}

func TestThemeKindNextWraps(t *testing.T) {
	if got := ThemeMono.Next(); got != ThemeCupertino {
		t.Fatalf("Mono.Next() = %v, want Cupertino", got)
	}
	if got := ThemePeak.Next(); got != ThemeMono {
		t.Fatalf("Peak.Next() = %v, want Mono", got)
	}
}

func TestParseNames(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ThemeKind
		ok    bool
	}{
		{"exact", "Peak", ThemePeak, true},
		{"lower", "peak", ThemePeak, true},
		{"compact alias", "highcontrast", ThemeHighContrast, true},
		{"snake alias", "high_contrast", ThemeHighContrast, true},
		{"padded", "  Mono ", ThemeMono, true},
		{"unknown", "Sepia", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseThemeKind(tt.input)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Fatalf("ParseThemeKind(%q) = %v, %v; want %v, %v", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}

	if m, ok := ParseRenderMode("SPATIAL"); !ok || m != ModeSpatial {
		t.Fatalf("ParseRenderMode(SPATIAL) = %v, %v", m, ok)
	}
	if tone, ok := ParseTone("dark"); !ok || tone != ToneDark {
		t.Fatalf("ParseTone(dark) = %v, %v", tone, ok)
	}
	if _, ok := ParseIntent("loud"); ok {
		t.Fatalf("ParseIntent(loud) should fail")
	}
}

func TestEnumTextRoundTrip(t *testing.T) {
	var kind ThemeKind
	if err := kind.UnmarshalText([]byte("fluent")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	b, _ := kind.MarshalText()
	if string(b) != "Fluent" {
		t.Fatalf("MarshalText = %q, want Fluent", b)
	}
	if err := kind.UnmarshalText([]byte("nope")); err == nil {
		t.Fatalf("UnmarshalText(nope) should fail")
	}
}

func TestLengthResolve(t *testing.T) {
	if got := Fixed(40).Resolve(100, 10); got != 40 {
		t.Fatalf("Fixed.Resolve = %v, want 40", got)
	}
	if got := Fill.Resolve(100, 10); got != 100 {
		t.Fatalf("Fill.Resolve = %v, want 100", got)
	}
	if got := Fill.Resolve(0, 10); got != 10 {
		t.Fatalf("Fill.Resolve without space = %v, want 10", got)
	}
	if got := Shrink.Resolve(100, 10); got != 10 {
		t.Fatalf("Shrink.Resolve = %v, want 10", got)
	}
	if got := Fixed(-3); got.Value != 0 {
		t.Fatalf("Fixed(-3).Value = %v, want 0", got.Value)
	}
	if Fixed(12.5).String() != "fixed(12.5)" {
		t.Fatalf("String = %q", Fixed(12.5).String())
	}
}

func TestColorRGB(t *testing.T) {
	r, g, b, ok := Color("#0af").RGB()
	if !ok || r != 0x00 || g != 0xaa || b != 0xff {
		t.Fatalf("RGB(#0af) = %d %d %d %v", r, g, b, ok)
	}
	if _, _, _, ok := Color("blue").RGB(); ok {
		t.Fatalf("RGB(blue) should fail")
	}
	if !Color(" ").IsZero() {
		t.Fatalf("blank color should be zero")
	}
}

func TestContextHelpers(t *testing.T) {
	ctx := NewContext(DefaultTokens(), Size{Width: 480, Height: 800})
	if ctx.Device != DeviceMobile {
		t.Fatalf("Device = %v, want Mobile", ctx.Device)
	}
	if ctx.Locale != language.English {
		t.Fatalf("Locale = %v, want en", ctx.Locale)
	}
	if ctx.IsFocused("") {
		t.Fatalf("empty id must never be focused")
	}
	focused := ctx.WithFocus("save")
	if !focused.IsFocused("save") || ctx.IsFocused("save") {
		t.Fatalf("WithFocus must copy the context")
	}
	ctx.SafeArea = Symmetric(0, 20)
	if got := ctx.ContentWidth(); got != 440 {
		t.Fatalf("ContentWidth = %v, want 440", got)
	}
	if (Context{}).ScaleFactor() != 1 {
		t.Fatalf("zero scale should read as 1")
	}
}
