package main

import (
	"io"
	"os"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/five82/facet/internal/app"
	"github.com/five82/facet/internal/config"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	prefsPath  string
	verbose    bool
}

func (g *globalOptions) appOptions() app.Options {
	return app.Options{
		ConfigPath: g.configPath,
		PrefsPath:  g.prefsPath,
		Verbose:    g.verbose,
	}
}

func (g *globalOptions) loadConfig() (config.Config, error) {
	return config.Load(g.configPath)
}

func newRootCmd() *cobra.Command {
	g := &globalOptions{}
	var transcriptPath string

	root := &cobra.Command{
		Use:   "facet",
		Short: "Declarative UI engine with an agent action protocol",
		Long: `Facet describes one screen tree and renders it to a terminal, a canvas,
a spatial scene or a semantic tree for AI agents. Agents drive the UI by
embedding [action: {...})] markers in their text; protected actions wait
for approval.

Running facet with no subcommand opens the interactive preview.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := g.appOptions()
			opts.TranscriptPath = transcriptPath
			return app.Run(cmd.Context(), opts)
		},
	}
	root.PersistentFlags().StringVar(&g.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	root.PersistentFlags().StringVar(&g.prefsPath, "prefs", "", "preferences file")
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "enable debug logging")
	root.Flags().StringVar(&transcriptPath, "transcript", "", "follow an agent transcript and dispatch its actions")

	root.AddCommand(
		newRenderCmd(g),
		newParseCmd(),
		newWatchCmd(),
		newServeCmd(g),
		newExportCmd(g),
		newInspectCmd(g),
		newMemoryCmd(g),
	)
	return root
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// plain strips escape sequences when w is not a terminal.
func plain(w io.Writer, s string) string {
	if isTerminal(w) {
		return s
	}
	return ansi.Strip(s)
}
