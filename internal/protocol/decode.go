package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/five82/facet/internal/style"
)

var (
	// ErrUnknownTag is returned for payloads whose tag matches no variant.
	ErrUnknownTag = errors.New("unknown action tag")
	// ErrMissingField is returned when a struct variant lacks a field.
	ErrMissingField = errors.New("missing field")
)

// VariantInfo describes one action variant for schema and instruction
// documents.
type VariantInfo struct {
	Tag     string   `json:"tag"`
	Aliases []string `json:"aliases,omitempty"`
	// Fields is empty when the variant carries a single value.
	Fields []string `json:"fields,omitempty"`
	// Values lists the accepted names for enum valued variants.
	Values    []string `json:"values,omitempty"`
	Protected string   `json:"protected,omitempty"`
	Example   string   `json:"example"`
}

type variant struct {
	info   VariantInfo
	decode func(json.RawMessage) (Action, error)
}

func names[T fmt.Stringer](all []T) []string {
	out := make([]string, len(all))
	for i, v := range all {
		out[i] = v.String()
	}
	return out
}

var variants = []variant{
	{
		info: VariantInfo{Tag: "Navigate", Aliases: []string{"navigate", "goto"}, Values: names(Pages()),
			Protected: "when the page is Roadmap or SettingsAI", Example: `{"Navigate": "Introduction"}`},
		decode: enumValue(ParsePage, "page", func(p Page) Action { return Navigate{Page: p} }),
	},
	{
		info: VariantInfo{Tag: "SetButtonVariant", Aliases: []string{"setbuttonvariant", "set_button_variant"},
			Values: names(style.Variants()), Example: `{"SetButtonVariant": "Outline"}`},
		decode: enumValue(style.ParseVariant, "variant", func(v style.Variant) Action { return SetButtonVariant{Variant: v} }),
	},
	{
		info: VariantInfo{Tag: "SetButtonIntent", Aliases: []string{"setbuttonintent", "set_button_intent"},
			Values: names(style.Intents()), Example: `{"SetButtonIntent": "Danger"}`},
		decode: enumValue(style.ParseIntent, "intent", func(i style.Intent) Action { return SetButtonIntent{Intent: i} }),
	},
	{
		info: VariantInfo{Tag: "SetThemeKind", Aliases: []string{"setthemekind", "set_theme_kind"},
			Values: names(style.ThemeKinds()), Example: `{"SetThemeKind": "Peak"}`},
		decode: enumValue(style.ParseThemeKind, "theme kind", func(k style.ThemeKind) Action { return SetThemeKind{Kind: k} }),
	},
	{
		info: VariantInfo{Tag: "SetThemeTone", Aliases: []string{"setthemetone", "set_theme_tone"},
			Values: []string{style.ToneLight.String(), style.ToneDark.String()}, Example: `{"SetThemeTone": "Dark"}`},
		decode: enumValue(style.ParseTone, "tone", func(t style.Tone) Action { return SetThemeTone{Tone: t} }),
	},
	{
		info: VariantInfo{Tag: "SetLabMode", Aliases: []string{"setlabmode", "set_lab_mode"},
			Values: names(style.RenderModes()), Example: `{"SetLabMode": "Spatial"}`},
		decode: enumValue(style.ParseRenderMode, "render mode", func(m style.RenderMode) Action { return SetLabMode{Mode: m} }),
	},
	{
		info: VariantInfo{Tag: "Shell", Aliases: []string{"shell"}, Protected: "always",
			Example: `{"Shell": "ls -la"}`},
		decode: stringValue(func(s string) Action { return Shell{Command: s} }),
	},
	{
		info:   VariantInfo{Tag: "Memorize", Aliases: []string{"memorize", "remember"}, Example: `{"Memorize": "The user prefers dark mode"}`},
		decode: stringValue(func(s string) Action { return Memorize{Content: s} }),
	},
	{
		info: VariantInfo{Tag: "Teleport", Aliases: []string{"teleport"}, Fields: []string{"target", "x", "y", "z"},
			Example: `{"Teleport": {"target": "hero", "x": 0, "y": 1.5, "z": -2}}`},
		decode: decodeTeleport,
	},
	{
		info: VariantInfo{Tag: "Scale", Aliases: []string{"scale"}, Fields: []string{"target", "factor"},
			Example: `{"Scale": {"target": "hero", "factor": 2}}`},
		decode: decodeScale,
	},
	{
		info: VariantInfo{Tag: "Rotate", Aliases: []string{"rotate"}, Fields: []string{"target", "x", "y", "z"},
			Example: `{"Rotate": {"target": "hero", "x": 0, "y": 90, "z": 0}}`},
		decode: decodeRotate,
	},
	{
		info:   VariantInfo{Tag: "WebSearch", Aliases: []string{"websearch", "web_search"}, Example: `{"WebSearch": "bubbletea viewport"}`},
		decode: stringValue(func(s string) Action { return WebSearch{Query: s} }),
	},
	{
		info:   VariantInfo{Tag: "ReadFile", Aliases: []string{"readfile", "read_file"}, Example: `{"ReadFile": "README.md"}`},
		decode: stringValue(func(s string) Action { return ReadFile{Path: s} }),
	},
	{
		info: VariantInfo{Tag: "WriteFile", Aliases: []string{"writefile", "write_file"}, Fields: []string{"path", "content"},
			Example: `{"WriteFile": {"path": "notes.md", "content": "hello"}}`},
		decode: decodeWriteFile,
	},
	{
		info:   VariantInfo{Tag: "Unknown", Aliases: []string{"unknown"}, Example: `{"Unknown": "anything"}`},
		decode: stringValue(func(s string) Action { return Unknown{Raw: s} }),
	},
}

// Variants describes every action variant in declaration order.
func Variants() []VariantInfo {
	out := make([]VariantInfo, len(variants))
	for i, v := range variants {
		out[i] = v.info
	}
	return out
}

func lookupVariant(tag string) (variant, bool) {
	key := strings.TrimSpace(tag)
	for _, v := range variants {
		if strings.EqualFold(v.info.Tag, key) {
			return v, true
		}
		for _, alias := range v.info.Aliases {
			if strings.EqualFold(alias, key) {
				return v, true
			}
		}
	}
	return variant{}, false
}

// Decode parses one externally tagged payload such as
// {"SetThemeTone": "dark"}. Tags and enum values match case-insensitively.
func Decode(payload string) (Action, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(strings.TrimSpace(payload)), &obj); err != nil {
		return nil, fmt.Errorf("decode action: %w", err)
	}
	if len(obj) != 1 {
		return nil, fmt.Errorf("decode action: want exactly one tag, got %d", len(obj))
	}
	var (
		tag  string
		body json.RawMessage
	)
	for k, raw := range obj {
		tag, body = k, raw
	}
	v, ok := lookupVariant(tag)
	if !ok {
		return nil, fmt.Errorf("decode action %q: %w", tag, ErrUnknownTag)
	}
	a, err := v.decode(body)
	if err != nil {
		return nil, fmt.Errorf("decode %s action: %w", v.info.Tag, err)
	}
	return a, nil
}

// decodeOrUnknown never fails: payloads that do not decode are kept raw.
func decodeOrUnknown(payload string) Action {
	a, err := Decode(payload)
	if err != nil {
		return Unknown{Raw: payload}
	}
	return a
}

func unmarshalString(raw json.RawMessage) (string, error) {
	if string(raw) == "null" {
		return "", errors.New("expected a string, got null")
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", err
	}
	return s, nil
}

func stringValue(build func(string) Action) func(json.RawMessage) (Action, error) {
	return func(raw json.RawMessage) (Action, error) {
		s, err := unmarshalString(raw)
		if err != nil {
			return nil, err
		}
		return build(s), nil
	}
}

func enumValue[T any](parse func(string) (T, bool), what string, build func(T) Action) func(json.RawMessage) (Action, error) {
	return func(raw json.RawMessage) (Action, error) {
		s, err := unmarshalString(raw)
		if err != nil {
			return nil, err
		}
		v, ok := parse(s)
		if !ok {
			return nil, fmt.Errorf("unknown %s %q", what, s)
		}
		return build(v), nil
	}
}

type fieldSet map[string]json.RawMessage

func decodeFields(raw json.RawMessage) (fieldSet, error) {
	var fs fieldSet
	if err := json.Unmarshal(raw, &fs); err != nil {
		return nil, err
	}
	if fs == nil {
		return nil, errors.New("expected an object")
	}
	return fs, nil
}

func field[T any](fs fieldSet, name string) (T, error) {
	var v T
	for k, raw := range fs {
		if strings.EqualFold(k, name) {
			if err := json.Unmarshal(raw, &v); err != nil {
				return v, fmt.Errorf("field %s: %w", name, err)
			}
			return v, nil
		}
	}
	return v, fmt.Errorf("%w %s", ErrMissingField, name)
}

func decodeXYZ(fs fieldSet) (target string, x, y, z float64, err error) {
	if target, err = field[string](fs, "target"); err != nil {
		return
	}
	if x, err = field[float64](fs, "x"); err != nil {
		return
	}
	if y, err = field[float64](fs, "y"); err != nil {
		return
	}
	z, err = field[float64](fs, "z")
	return
}

func decodeTeleport(raw json.RawMessage) (Action, error) {
	fs, err := decodeFields(raw)
	if err != nil {
		return nil, err
	}
	target, x, y, z, err := decodeXYZ(fs)
	if err != nil {
		return nil, err
	}
	return Teleport{Target: target, X: x, Y: y, Z: z}, nil
}

func decodeRotate(raw json.RawMessage) (Action, error) {
	fs, err := decodeFields(raw)
	if err != nil {
		return nil, err
	}
	target, x, y, z, err := decodeXYZ(fs)
	if err != nil {
		return nil, err
	}
	return Rotate{Target: target, X: x, Y: y, Z: z}, nil
}

func decodeScale(raw json.RawMessage) (Action, error) {
	fs, err := decodeFields(raw)
	if err != nil {
		return nil, err
	}
	target, err := field[string](fs, "target")
	if err != nil {
		return nil, err
	}
	factor, err := field[float64](fs, "factor")
	if err != nil {
		return nil, err
	}
	return Scale{Target: target, Factor: factor}, nil
}

func decodeWriteFile(raw json.RawMessage) (Action, error) {
	fs, err := decodeFields(raw)
	if err != nil {
		return nil, err
	}
	path, err := field[string](fs, "path")
	if err != nil {
		return nil, err
	}
	content, err := field[string](fs, "content")
	if err != nil {
		return nil, err
	}
	return WriteFile{Path: path, Content: content}, nil
}
