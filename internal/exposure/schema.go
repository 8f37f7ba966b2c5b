package exposure

import (
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/five82/facet/internal/protocol"
	"github.com/five82/facet/internal/style"
)

const (
	// ProtocolVersion is the version of the exposure API.
	ProtocolVersion = "1.0.0"
	// VersionHeader carries ProtocolVersion on every response.
	VersionHeader = "X-Facet-Protocol"

	maxActions = 64
)

// Schema is the body of GET /schema.
type Schema struct {
	Version     string                 `json:"version"`
	Actions     []protocol.VariantInfo `json:"actions"`
	Pages       []string               `json:"pages"`
	RenderModes []string               `json:"render_modes"`
	Syntax      string                 `json:"syntax"`
}

// BuildSchema describes the current action protocol.
func BuildSchema() Schema {
	pages := make([]string, 0, len(protocol.Pages()))
	for _, p := range protocol.Pages() {
		pages = append(pages, p.String())
	}
	modes := make([]string, 0, len(style.RenderModes()))
	for _, m := range style.RenderModes() {
		modes = append(modes, m.String())
	}
	return Schema{
		Version:     ProtocolVersion,
		Actions:     protocol.Variants(),
		Pages:       pages,
		RenderModes: modes,
		Syntax:      `[action: {"<Tag>": <value>})]`,
	}
}

// Instructions renders the agent facing protocol description.
func Instructions() string {
	var b strings.Builder
	b.WriteString("# Facet action protocol\n\n")
	b.WriteString("Embed actions in ordinary text as `[action: {\"<Tag>\": <value>})]`. ")
	b.WriteString("Tags and enum values are case-insensitive. ")
	b.WriteString("Tool results come back as `[result:<tool>] <json>`.\n\n")
	b.WriteString("| Action | Example | Values | Approval |\n")
	b.WriteString("|---|---|---|---|\n")
	for _, v := range protocol.Variants() {
		values := strings.Join(v.Values, ", ")
		if len(v.Fields) > 0 {
			values = "fields: " + strings.Join(v.Fields, ", ")
		}
		approval := "none"
		if v.Protected != "" {
			approval = v.Protected
		}
		fmt.Fprintf(&b, "| %s | `%s` | %s | %s |\n", v.Tag, v.Example, values, approval)
	}
	b.WriteString("\nProtected actions wait for the user to approve them before they run.\n")
	return b.String()
}

var actionsSchema = fmt.Sprintf(`{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["actions"],
  "additionalProperties": false,
  "properties": {
    "actions": {
      "type": "array",
      "minItems": 1,
      "maxItems": %d,
      "items": {
        "type": "object",
        "minProperties": 1,
        "maxProperties": 1,
        "additionalProperties": {
          "anyOf": [
            {"type": "string"},
            {"type": "object"}
          ]
        }
      }
    }
  }
}`, maxActions)

const textSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["text"],
  "additionalProperties": false,
  "properties": {
    "text": {"type": "string", "minLength": 1}
  }
}`

func compileSchema(name, doc string) (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	schemaURL := fmt.Sprintf("https://facet.schemas.local/exposure/%s.schema.json", name)
	if err := c.AddResource(schemaURL, strings.NewReader(doc)); err != nil {
		return nil, fmt.Errorf("load %s schema: %w", name, err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile %s schema: %w", name, err)
	}
	return compiled, nil
}
