package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/five82/facet/internal/backend/ai"
	"github.com/five82/facet/internal/backend/canvas"
	"github.com/five82/facet/internal/backend/spatial"
	"github.com/five82/facet/internal/backend/term"
	"github.com/five82/facet/internal/semantic"
	"github.com/five82/facet/internal/state"
	"github.com/five82/facet/internal/style"
)

// Render draws the screen for snap with the backend selected by mode and
// returns it as text: ANSI for the terminal, indented JSON for the neural
// tree and YAML for the spatial and canvas graphs.
func Render(snap state.Snapshot, mode style.RenderMode, ctx style.Context) (string, error) {
	switch mode {
	case style.ModeTerminal:
		return Screen[string](snap).Render(ctx, term.New[Msg]()), nil
	case style.ModeNeural:
		node := Screen[semantic.Node](snap).Render(ctx, ai.New[Msg]())
		out, err := node.MarshalIndent()
		if err != nil {
			return "", err
		}
		return string(out), nil
	case style.ModeSpatial:
		scene := Screen[spatial.Node[Msg]](snap).Render(ctx, spatial.New[Msg]())
		out, err := yaml.Marshal(spatial.Strip(scene))
		if err != nil {
			return "", fmt.Errorf("dump spatial scene: %w", err)
		}
		return string(out), nil
	case style.ModeCanvas:
		graph := Screen[canvas.Node[Msg]](snap).Render(ctx, canvas.New[Msg]())
		out, err := canvas.Dump(graph)
		if err != nil {
			return "", err
		}
		return string(out), nil
	default:
		return "", fmt.Errorf("unsupported render mode %v", mode)
	}
}

// Describe returns the semantic tree agents see for snap.
func Describe(snap state.Snapshot, ctx style.Context) semantic.Node {
	return Screen[string](snap).Describe(ctx)
}

// Context builds the rendering context for snap at the given size.
func Context(snap state.Snapshot, size style.Size) style.Context {
	return style.NewContext(snap.Tokens(), size)
}
