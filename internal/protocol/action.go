package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/five82/facet/internal/semantic"
	"github.com/five82/facet/internal/style"
)

// Action is a UI command requested by an agent. The set of implementations
// is closed.
type Action interface {
	// Tag is the canonical variant name used on the wire.
	Tag() string
	isAction()
}

type Navigate struct{ Page Page }

type SetButtonVariant struct{ Variant style.Variant }

type SetButtonIntent struct{ Intent style.Intent }

type SetThemeKind struct{ Kind style.ThemeKind }

type SetThemeTone struct{ Tone style.Tone }

// SetLabMode switches the backend shown by the preview.
type SetLabMode struct{ Mode style.RenderMode }

// Shell runs a command through the host's tool layer. Always protected.
type Shell struct{ Command string }

// Memorize stores content in the memory database.
type Memorize struct{ Content string }

// Teleport moves a spatial target to an absolute position.
type Teleport struct {
	Target  string
	X, Y, Z float64
}

type Scale struct {
	Target string
	Factor float64
}

// Rotate sets a spatial target's rotation in degrees.
type Rotate struct {
	Target  string
	X, Y, Z float64
}

type WebSearch struct{ Query string }

type ReadFile struct{ Path string }

type WriteFile struct {
	Path    string
	Content string
}

// Unknown keeps a payload that did not decode into any other variant.
type Unknown struct{ Raw string }

func (Navigate) Tag() string { return "Navigate" }
func (SetButtonVariant) Tag() string { return "SetButtonVariant" }
func (SetButtonIntent) Tag() string { return "SetButtonIntent" }
func (SetThemeKind) Tag() string { return "SetThemeKind" }
func (SetThemeTone) Tag() string { return "SetThemeTone" }
func (SetLabMode) Tag() string { return "SetLabMode" }
func (Shell) Tag() string { return "Shell" }
func (Memorize) Tag() string { return "Memorize" }
func (Teleport) Tag() string { return "Teleport" }
func (Scale) Tag() string { return "Scale" }
func (Rotate) Tag() string { return "Rotate" }
func (WebSearch) Tag() string { return "WebSearch" }
func (ReadFile) Tag() string { return "ReadFile" }
func (WriteFile) Tag() string { return "WriteFile" }
func (Unknown) Tag() string { return "Unknown" }

func (Navigate) isAction() {}
func (SetButtonVariant) isAction() {}
func (SetButtonIntent) isAction() {}
func (SetThemeKind) isAction() {}
func (SetThemeTone) isAction() {}
func (SetLabMode) isAction() {}
func (Shell) isAction() {}
func (Memorize) isAction() {}
func (Teleport) isAction() {}
func (Scale) isAction() {}
func (Rotate) isAction() {}
func (WebSearch) isAction() {}
func (ReadFile) isAction() {}
func (WriteFile) isAction() {}
func (Unknown) isAction() {}

// IsProtected reports whether a must be approved by a human before it runs.
func IsProtected(a Action) bool {
	return ProtectionReason(a) != ""
}

// ProtectionReason explains why a needs approval. It is empty for actions
// that run without confirmation.
func ProtectionReason(a Action) string {
	switch a := a.(type) {
	case Shell:
		return fmt.Sprintf("Execute shell command: `%s`", a.Command)
	case Navigate:
		switch a.Page {
		case PageRoadmap:
			return "Accessing vision-critical roadmap data"
		case PageSettingsAI:
			return "Accessing AI configuration and API keys"
		}
	}
	return ""
}

// Marshal encodes a in the externally tagged form the parser accepts, for
// example {"Navigate":"Introduction"}.
func Marshal(a Action) ([]byte, error) {
	var body any
	switch a := a.(type) {
	case Navigate:
		body = a.Page.String()
	case SetButtonVariant:
		body = a.Variant.String()
	case SetButtonIntent:
		body = a.Intent.String()
	case SetThemeKind:
		body = a.Kind.String()
	case SetThemeTone:
		body = a.Tone.String()
	case SetLabMode:
		body = a.Mode.String()
	case Shell:
		body = a.Command
	case Memorize:
		body = a.Content
	case Teleport:
		body = map[string]any{"target": a.Target, "x": a.X, "y": a.Y, "z": a.Z}
	case Scale:
		body = map[string]any{"target": a.Target, "factor": a.Factor}
	case Rotate:
		body = map[string]any{"target": a.Target, "x": a.X, "y": a.Y, "z": a.Z}
	case WebSearch:
		body = a.Query
	case ReadFile:
		body = a.Path
	case WriteFile:
		body = map[string]any{"path": a.Path, "content": a.Content}
	case Unknown:
		body = a.Raw
	default:
		return nil, fmt.Errorf("marshal action: unsupported type %T", a)
	}
	b, err := json.Marshal(map[string]any{a.Tag(): body})
	if err != nil {
		return nil, fmt.Errorf("marshal %s action: %w", a.Tag(), err)
	}
	return b, nil
}

// Format returns a as an inline marker, ready to embed in agent text.
func Format(a Action) (string, error) {
	b, err := Marshal(a)
	if err != nil {
		return "", err
	}
	return actionMarker + string(escapeBrackets(b)) + ")]", nil
}

// FormatResult renders a tool result segment that SplitTextAndActions reads
// back as a ToolResultPart.
func FormatResult(tool string, value any) (string, error) {
	b, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("encode %s result: %w", tool, err)
	}
	return resultMarker + tool + "] " + string(escapeBrackets(b)), nil
}

// escapeBrackets rewrites square brackets inside JSON strings as \u escapes
// so string content can never open a marker or terminate one. Structural
// brackets are left alone.
func escapeBrackets(b []byte) []byte {
	out := make([]byte, 0, len(b))
	inString, escaped := false, false
	for _, c := range b {
		switch {
		case escaped:
			escaped = false
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case inString && c == '[':
			out = append(out, `\u005b`...)
			continue
		case inString && c == ']':
			out = append(out, `\u005d`...)
			continue
		}
		out = append(out, c)
	}
	return out
}

// Describe returns the semantic form of a. Protected actions carry their
// reason so observers see the same gate a human does.
func Describe(a Action) semantic.Node {
	n := semantic.New("action").WithLabel(a.Tag())
	if b, err := Marshal(a); err == nil {
		n = n.WithContent(string(b))
	}
	if reason := ProtectionReason(a); reason != "" {
		n = n.Protect(reason)
	}
	return n
}
