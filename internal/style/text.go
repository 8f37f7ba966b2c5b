package style

import "fmt"

// Text marshaling lets the enums round-trip through TOML prefs and JSON
// snapshots by name.

func (i Intent) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

func (i *Intent) UnmarshalText(b []byte) error {
	v, ok := ParseIntent(string(b))
	if !ok {
		return fmt.Errorf("unknown intent %q", b)
	}
	*i = v
	return nil
}

func (v Variant) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (v *Variant) UnmarshalText(b []byte) error {
	parsed, ok := ParseVariant(string(b))
	if !ok {
		return fmt.Errorf("unknown variant %q", b)
	}
	*v = parsed
	return nil
}

func (t Tone) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *Tone) UnmarshalText(b []byte) error {
	v, ok := ParseTone(string(b))
	if !ok {
		return fmt.Errorf("unknown tone %q", b)
	}
	*t = v
	return nil
}

func (k ThemeKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *ThemeKind) UnmarshalText(b []byte) error {
	v, ok := ParseThemeKind(string(b))
	if !ok {
		return fmt.Errorf("unknown theme kind %q", b)
	}
	*k = v
	return nil
}

func (m RenderMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *RenderMode) UnmarshalText(b []byte) error {
	v, ok := ParseRenderMode(string(b))
	if !ok {
		return fmt.Errorf("unknown render mode %q", b)
	}
	*m = v
	return nil
}
