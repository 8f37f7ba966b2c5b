package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/facet/internal/catalog"
	"github.com/five82/facet/internal/protocol"
	"github.com/five82/facet/internal/state"
	"github.com/five82/facet/internal/style"
)

type renderOptions struct {
	page   string
	mode   string
	theme  string
	tone   string
	width  float64
	height float64
}

func newRenderCmd(g *globalOptions) *cobra.Command {
	var o renderOptions
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one catalog page to stdout",
		Long: `Render one catalog page headlessly. Terminal mode prints styled text,
neural mode prints the semantic tree as JSON, spatial mode prints the scene
as YAML and canvas mode prints the draw command list.`,
		Example: `  facet render --page Colors
  facet render --page Roadmap --mode neural --width 390`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, g, o)
		},
	}
	cmd.Flags().StringVar(&o.page, "page", protocol.PageLanding.String(), "page to render")
	cmd.Flags().StringVar(&o.mode, "mode", "", "render mode: canvas, terminal, neural or spatial (default from config)")
	cmd.Flags().StringVar(&o.theme, "theme", "", "theme kind")
	cmd.Flags().StringVar(&o.tone, "tone", "", "light or dark")
	cmd.Flags().Float64Var(&o.width, "width", 0, "viewport width (default from config)")
	cmd.Flags().Float64Var(&o.height, "height", 0, "viewport height (default from config)")
	return cmd
}

func runRender(cmd *cobra.Command, g *globalOptions, o renderOptions) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}

	snap := state.Defaults()
	page, ok := protocol.ParsePage(o.page)
	if !ok {
		return fmt.Errorf("unknown page %q", o.page)
	}
	snap.Page = page

	mode := cfg.Mode
	if o.mode != "" {
		if mode, ok = style.ParseRenderMode(o.mode); !ok {
			return fmt.Errorf("unknown render mode %q", o.mode)
		}
	}
	snap.Mode = mode
	if o.theme != "" {
		if snap.ThemeKind, ok = style.ParseThemeKind(o.theme); !ok {
			return fmt.Errorf("unknown theme %q", o.theme)
		}
	}
	if o.tone != "" {
		if snap.Tone, ok = style.ParseTone(o.tone); !ok {
			return fmt.Errorf("unknown tone %q", o.tone)
		}
	}

	size := cfg.Size()
	if o.width > 0 {
		size.Width = o.width
	}
	if o.height > 0 {
		size.Height = o.height
	}

	ctx := catalog.Context(snap, size).WithLocale(cfg.Locale)
	out, err := catalog.Render(snap, mode, ctx)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	_, err = fmt.Fprintln(w, plain(w, out))
	return err
}
