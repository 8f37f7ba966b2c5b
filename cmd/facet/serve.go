package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/facet/internal/app"
)

func newServeCmd(g *globalOptions) *cobra.Command {
	var transcriptPath string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the exposure API and view exporter without the preview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := g.appOptions()
			opts.TranscriptPath = transcriptPath
			rt, err := app.Open(opts)
			if err != nil {
				return err
			}
			defer func() { _ = rt.Close() }()
			return rt.Serve(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&transcriptPath, "transcript", "", "follow an agent transcript and dispatch its actions")
	return cmd
}

func newExportCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write the current view to the snapshot file once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := app.Open(g.appOptions())
			if err != nil {
				return err
			}
			defer func() { _ = rt.Close() }()
			path, err := rt.Export()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}
}
